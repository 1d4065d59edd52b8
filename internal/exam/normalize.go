package exam

import (
	"regexp"
	"strconv"
	"strings"
)

// letterPrefix matches a single option-letter prefix like "A) ", "b. " or
// "C- " at the start of an answer string.
var letterPrefix = regexp.MustCompile(`^[A-Da-d][)\].:\-]\s*`)

// whitespaceRun matches one or more consecutive whitespace characters.
var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize converts an answer string to its canonical, comparison-ready
// form: trimmed, option-letter prefix stripped, internal whitespace runs
// collapsed to a single space, lowercased. Two answers are equal iff their
// canonical forms are identical. Normalize is idempotent.
func Normalize(value string) string {
	s := strings.TrimSpace(value)
	s = letterPrefix.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.ToLower(s)
}

// ResolveCorrectAnswer resolves the authoritative correct-answer text for
// an MCQ. The stored value may be an index, an option letter, or the
// option text itself; all three forms resolve to the same option. When
// nothing matches, the raw value is returned verbatim so a question with
// malformed answer data still renders instead of crashing the session.
func ResolveCorrectAnswer(q Question) string {
	raw := strings.TrimSpace(q.CorrectAnswer)
	if raw == "" {
		return ""
	}

	// Numeric index into the options list.
	if idx, err := strconv.Atoi(raw); err == nil {
		if idx >= 0 && idx < len(q.Options) {
			return q.Options[idx]
		}
		return raw
	}

	// Single option letter A-D.
	if len(raw) == 1 {
		c := raw[0]
		if c >= 'a' && c <= 'd' {
			c -= 'a' - 'A'
		}
		if c >= 'A' && c <= 'D' {
			if idx := int(c - 'A'); idx < len(q.Options) {
				return q.Options[idx]
			}
			return raw
		}
	}

	// Canonical text match against the options.
	norm := Normalize(raw)
	for _, opt := range q.Options {
		if Normalize(opt) == norm {
			return opt
		}
	}

	return raw
}

// IsCorrect reports whether the selected answer matches the question's
// resolved correct answer under canonical comparison.
func IsCorrect(selected string, q Question) bool {
	return Normalize(selected) == Normalize(ResolveCorrectAnswer(q))
}
