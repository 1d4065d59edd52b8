package exam

import "strings"

// Stats holds the computed statistics for one attempt. MCQ and subjective
// questions are partitioned: only MCQs contribute to the percent figures,
// subjective items are tracked as attempted/skipped counts and graded
// individually after finalize.
type Stats struct {
	// MCQTotal is the number of MCQ questions in the set.
	MCQTotal int

	// Attempted is the number of MCQs with a non-empty response.
	Attempted int

	// Correct and Incorrect partition the attempted MCQs.
	Correct   int
	Incorrect int

	// Skipped is MCQTotal - Attempted.
	Skipped int

	// PercentTotal is the headline score: correct over all MCQs, so
	// skipped questions count against the denominator. 0 when no MCQs.
	PercentTotal float64

	// PercentAttempted is correct over attempted MCQs only. 0 when
	// nothing was attempted.
	PercentAttempted float64

	SubjectiveTotal     int
	SubjectiveAttempted int
	SubjectiveSkipped   int
}

// TotalQuestions returns the size of the full question set.
func (s Stats) TotalQuestions() int {
	return s.MCQTotal + s.SubjectiveTotal
}

// Score computes attempt statistics from a question set and a response
// map keyed by question index. A missing key means not attempted; the
// session state layer guarantees whitespace-only responses are never
// stored, but Score tolerates them anyway.
func Score(questions []Question, responses map[int]string) Stats {
	var st Stats

	for idx, q := range questions {
		resp, ok := responses[idx]
		answered := ok && strings.TrimSpace(resp) != ""

		if q.Kind == KindSubjective {
			st.SubjectiveTotal++
			if answered {
				st.SubjectiveAttempted++
			} else {
				st.SubjectiveSkipped++
			}
			continue
		}

		st.MCQTotal++
		if !answered {
			st.Skipped++
			continue
		}

		st.Attempted++
		if IsCorrect(resp, q) {
			st.Correct++
		} else {
			st.Incorrect++
		}
	}

	if st.MCQTotal > 0 {
		st.PercentTotal = float64(st.Correct) / float64(st.MCQTotal) * 100
	}
	if st.Attempted > 0 {
		st.PercentAttempted = float64(st.Correct) / float64(st.Attempted) * 100
	}

	return st
}
