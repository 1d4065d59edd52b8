package examgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sauravjha/bcabuddy/internal/exam"
	"github.com/sauravjha/bcabuddy/internal/llm"
)

func TestLLMSourceFetch(t *testing.T) {
	content := `{"questions": [
		{"question": "What does SQL stand for?", "type": "mcq", "options": ["Structured Query Language", "Simple Query Language", "Sequential Query Language", "Standard Query Language"], "correct_answer": "Structured Query Language", "max_marks": 1},
		{"question": "Explain ACID properties.", "type": "subjective", "options": [], "correct_answer": "", "max_marks": 8}
	]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	source := NewLLMSource(mock, DefaultConfig())

	questions, err := source.Fetch(context.Background(), Request{
		Semester:        3,
		Subject:         "DBMS",
		MCQCount:        1,
		SubjectiveCount: 1,
	})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("len(questions) = %d, want 2", len(questions))
	}
	if questions[0].Kind != exam.KindMCQ || questions[1].Kind != exam.KindSubjective {
		t.Errorf("kinds = %q, %q; want mcq, subjective", questions[0].Kind, questions[1].Kind)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != ExamSchema {
		t.Error("request did not carry the exam schema")
	}
	userMsg := req.Messages[0].Content
	for _, want := range []string{"Semester: 3", "Subject: DBMS", "MCQ questions: 1", "Subjective questions: 1"} {
		if !strings.Contains(userMsg, want) {
			t.Errorf("user message missing %q:\n%s", want, userMsg)
		}
	}
}

func TestLLMSourceFetchEmptyResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)})
	source := NewLLMSource(mock, DefaultConfig())

	_, err := source.Fetch(context.Background(), Request{Semester: 1, Subject: "Maths", MCQCount: 5})
	if err == nil {
		t.Fatal("Fetch with empty question set: want error, got nil")
	}
}

func TestLLMSourceFetchProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue yields provider unavailable
	source := NewLLMSource(mock, DefaultConfig())

	_, err := source.Fetch(context.Background(), Request{Semester: 1, Subject: "Maths", MCQCount: 5})
	if err == nil {
		t.Fatal("Fetch with failing provider: want error, got nil")
	}
}
