package examgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an examiner writing mock exam papers for BCA (Bachelor of Computer Applications) students.

Rules:
- Generate exactly the requested number of MCQ and subjective questions for the given semester and subject.
- Use plain ASCII text. No LaTeX, no Unicode symbols. Code snippets may use standard programming syntax.
- Every question must be self-contained and answerable without external material.
- For mcq questions, provide exactly 4 options where exactly one is correct. Distractors should reflect common misconceptions, not random values.
- For mcq questions, set correct_answer to the full text of the correct option and max_marks to 1.
- For subjective questions, leave options empty, leave correct_answer empty, and set max_marks between 5 and 10 based on depth.
- Cover different areas of the syllabus; do not cluster questions on a single topic.`

// buildUserMessage constructs the user message for an exam request.
func buildUserMessage(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Semester: %d\n", req.Semester)
	fmt.Fprintf(&b, "Subject: %s\n", req.Subject)
	fmt.Fprintf(&b, "MCQ questions: %d\n", req.MCQCount)
	fmt.Fprintf(&b, "Subjective questions: %d\n", req.SubjectiveCount)

	return b.String()
}
