// Package weaktopic tracks recurring weak areas and schedules their
// reviews with expanding intervals.
package weaktopic

import "strings"

// Fingerprint derives a stable topic identity from a question prompt:
// the first six whitespace-separated tokens, joined by single spaces.
// The tokens are kept verbatim so the fingerprint stays readable as a
// topic label. An empty prompt fingerprints to "general".
func Fingerprint(question string) string {
	text := strings.TrimSpace(question)
	if text == "" {
		return "general"
	}
	tokens := strings.Fields(text)
	if len(tokens) > 6 {
		tokens = tokens[:6]
	}
	return strings.Join(tokens, " ")
}

// Key builds the upsert identity for a weak topic within a subject.
func Key(subject, fingerprint string) string {
	return subject + "__" + fingerprint
}
