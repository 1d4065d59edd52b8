package examgen

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/sauravjha/bcabuddy/internal/exam"
)

// rawQuestion mirrors the question payload shapes seen across backend
// versions. Older backends used "correct" or "answer" for the correct
// option and "question_type" or "kind" for the type label.
type rawQuestion struct {
	Question      string          `json:"question"`
	Options       []string        `json:"options"`
	CorrectAnswer json.RawMessage `json:"correct_answer"`
	Correct       json.RawMessage `json:"correct"`
	Answer        json.RawMessage `json:"answer"`
	Type          string          `json:"type"`
	QuestionType  string          `json:"question_type"`
	Kind          string          `json:"kind"`
	MaxMarks      int             `json:"max_marks"`
}

// ParsePayload decodes a question payload in any of the tolerated
// shapes: a bare JSON array, an object with a "questions" array, or an
// object whose "questions" field is itself a JSON-encoded string. Any
// other shape yields an empty set.
func ParsePayload(data []byte) []exam.Question {
	var arr []rawQuestion
	if err := json.Unmarshal(data, &arr); err == nil {
		return ingest(arr)
	}

	var wrapped struct {
		Questions json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil || len(wrapped.Questions) == 0 {
		return nil
	}

	if err := json.Unmarshal(wrapped.Questions, &arr); err == nil {
		return ingest(arr)
	}

	// Doubly encoded: "questions" is a string holding the JSON array.
	var inner string
	if err := json.Unmarshal(wrapped.Questions, &inner); err != nil {
		return nil
	}
	if err := json.Unmarshal([]byte(inner), &arr); err != nil {
		return nil
	}
	return ingest(arr)
}

func ingest(raw []rawQuestion) []exam.Question {
	questions := make([]exam.Question, 0, len(raw))
	for _, r := range raw {
		text := strings.TrimSpace(r.Question)
		if text == "" {
			continue
		}

		label := r.Type
		if label == "" {
			label = r.QuestionType
		}
		if label == "" {
			label = r.Kind
		}

		q := exam.Question{
			Text:          text,
			Kind:          exam.InferKind(label, r.Options),
			Options:       r.Options,
			CorrectAnswer: correctAnswerString(r),
			MaxMarks:      r.MaxMarks,
		}
		if q.Kind == exam.KindSubjective && q.MaxMarks <= 0 {
			q.MaxMarks = exam.DefaultMaxMarks
		}
		questions = append(questions, q)
	}
	return questions
}

// correctAnswerString flattens the correct-answer field, which may be a
// JSON string or a bare number, under any of its historical names.
func correctAnswerString(r rawQuestion) string {
	for _, raw := range []json.RawMessage{r.CorrectAnswer, r.Correct, r.Answer} {
		if len(raw) == 0 || string(raw) == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
		var n float64
		if err := json.Unmarshal(raw, &n); err == nil {
			return strconv.Itoa(int(n))
		}
	}
	return ""
}
