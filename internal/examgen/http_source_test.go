package examgen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPSourceFetch(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/generate-exam" {
			t.Errorf("path = %s, want /generate-exam", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`[{"question": "Q1", "options": ["a", "b"], "correct_answer": "a"}]`))
	}))
	defer srv.Close()

	source := NewHTTPSource(srv.URL, "tok123")
	questions, err := source.Fetch(context.Background(), Request{
		Semester: 2, Subject: "Maths", MCQCount: 12, SubjectiveCount: 3,
	})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("len(questions) = %d, want 1", len(questions))
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotBody["mcq_count"] != 12.0 || gotBody["subjective_count"] != 3.0 {
		t.Errorf("request body = %v", gotBody)
	}
}

func TestHTTPSourceLegacyFallback(t *testing.T) {
	var legacyBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/generate-exam":
			http.Error(w, "not found", http.StatusNotFound)
		case "/generate-quiz":
			json.NewDecoder(r.Body).Decode(&legacyBody)
			w.Write([]byte(`{"questions": [{"question": "Q1", "options": ["a", "b"], "correct_answer": "b"}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	source := NewHTTPSource(srv.URL, "")
	questions, err := source.Fetch(context.Background(), Request{
		Semester: 2, Subject: "Maths", MCQCount: 12, SubjectiveCount: 3,
	})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("len(questions) = %d, want 1", len(questions))
	}
	if legacyBody["count"] != 15.0 {
		t.Errorf("legacy count = %v, want 15", legacyBody["count"])
	}
}

func TestHTTPSourceBothEndpointsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	source := NewHTTPSource(srv.URL, "")
	_, err := source.Fetch(context.Background(), Request{Semester: 1, Subject: "Maths", MCQCount: 5})
	if err == nil {
		t.Fatal("want error when both endpoints fail")
	}
}

func TestHTTPSourceUnrecognizedPayloadYieldsEmptySet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": "something else"}`))
	}))
	defer srv.Close()

	source := NewHTTPSource(srv.URL, "")
	questions, err := source.Fetch(context.Background(), Request{Semester: 1, Subject: "Maths", MCQCount: 5})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(questions) != 0 {
		t.Errorf("len(questions) = %d, want 0", len(questions))
	}
}
