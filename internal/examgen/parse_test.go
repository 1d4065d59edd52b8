package examgen

import (
	"testing"

	"github.com/sauravjha/bcabuddy/internal/exam"
)

func TestParsePayloadBareArray(t *testing.T) {
	payload := `[
		{"question": "What is a foreign key?", "type": "mcq", "options": ["A constraint", "A table", "A view", "An index"], "correct_answer": "A constraint"},
		{"question": "Explain normalization.", "type": "subjective", "options": [], "max_marks": 8}
	]`

	questions := ParsePayload([]byte(payload))
	if len(questions) != 2 {
		t.Fatalf("len(questions) = %d, want 2", len(questions))
	}
	if questions[0].Kind != exam.KindMCQ {
		t.Errorf("questions[0].Kind = %q, want mcq", questions[0].Kind)
	}
	if questions[1].Kind != exam.KindSubjective {
		t.Errorf("questions[1].Kind = %q, want subjective", questions[1].Kind)
	}
	if questions[1].MaxMarks != 8 {
		t.Errorf("questions[1].MaxMarks = %d, want 8", questions[1].MaxMarks)
	}
}

func TestParsePayloadWrappedObject(t *testing.T) {
	payload := `{"questions": [{"question": "Q1", "options": ["a", "b"], "correct_answer": "a"}]}`

	questions := ParsePayload([]byte(payload))
	if len(questions) != 1 {
		t.Fatalf("len(questions) = %d, want 1", len(questions))
	}
	if questions[0].Text != "Q1" {
		t.Errorf("Text = %q, want Q1", questions[0].Text)
	}
}

func TestParsePayloadDoublyEncodedQuestions(t *testing.T) {
	payload := `{"questions": "[{\"question\": \"Q1\", \"options\": [\"a\", \"b\"], \"correct_answer\": \"b\"}]"}`

	questions := ParsePayload([]byte(payload))
	if len(questions) != 1 {
		t.Fatalf("len(questions) = %d, want 1", len(questions))
	}
	if questions[0].CorrectAnswer != "b" {
		t.Errorf("CorrectAnswer = %q, want b", questions[0].CorrectAnswer)
	}
}

func TestParsePayloadUnrecognizedShapes(t *testing.T) {
	for _, payload := range []string{
		`{"data": []}`,
		`"just a string"`,
		`42`,
		`{}`,
		`not json at all`,
	} {
		if got := ParsePayload([]byte(payload)); len(got) != 0 {
			t.Errorf("ParsePayload(%q) = %d questions, want 0", payload, len(got))
		}
	}
}

func TestParsePayloadLegacyFieldNames(t *testing.T) {
	// Older backends used "answer" or "correct", sometimes numeric, and
	// "question_type" for the kind label.
	payload := `[
		{"question": "Q1", "options": ["x", "y", "z"], "answer": 2, "question_type": "mcq"},
		{"question": "Q2", "options": ["x", "y"], "correct": "y"}
	]`

	questions := ParsePayload([]byte(payload))
	if len(questions) != 2 {
		t.Fatalf("len(questions) = %d, want 2", len(questions))
	}
	if questions[0].CorrectAnswer != "2" {
		t.Errorf("numeric answer flattened to %q, want \"2\"", questions[0].CorrectAnswer)
	}
	if exam.ResolveCorrectAnswer(questions[0]) != "z" {
		t.Errorf("resolved answer = %q, want z", exam.ResolveCorrectAnswer(questions[0]))
	}
	if questions[1].CorrectAnswer != "y" {
		t.Errorf("CorrectAnswer = %q, want y", questions[1].CorrectAnswer)
	}
}

func TestParsePayloadSkipsEmptyQuestions(t *testing.T) {
	payload := `[
		{"question": "   ", "options": ["a"]},
		{"question": "Real question", "options": ["a", "b"], "correct_answer": "a"}
	]`

	questions := ParsePayload([]byte(payload))
	if len(questions) != 1 {
		t.Fatalf("len(questions) = %d, want 1", len(questions))
	}
}

func TestParsePayloadSubjectiveDefaultMarks(t *testing.T) {
	payload := `[{"question": "Explain paging.", "type": "subjective", "options": []}]`

	questions := ParsePayload([]byte(payload))
	if len(questions) != 1 {
		t.Fatal("expected 1 question")
	}
	if questions[0].MaxMarks != exam.DefaultMaxMarks {
		t.Errorf("MaxMarks = %d, want %d", questions[0].MaxMarks, exam.DefaultMaxMarks)
	}
}
