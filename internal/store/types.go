package store

import "time"

// Storage keys for the typed logs. The names match the layout the web
// frontend persisted, so an export/import between the two stays readable.
const (
	keyAttempts   = "bcabuddy_exam_attempts"
	keyReviews    = "bcabuddy_review_items"
	keyWeakTopics = "bcabuddy_weak_topics"
)

// maxLogEntries caps every typed log; the oldest entries are dropped.
const maxLogEntries = 200

// Attempt is one finalized exam attempt.
type Attempt struct {
	PercentTotal    float64   `json:"percentTotal"`
	Correct         int       `json:"correct"`
	Incorrect       int       `json:"incorrect"`
	Skipped         int       `json:"skipped"`
	Total           int       `json:"total"`
	Subject         string    `json:"subject"`
	Semester        int       `json:"semester"`
	DurationMinutes int       `json:"duration_minutes"`
	At              time.Time `json:"at"`
}

// ReviewItem is one reviewable mistake from an attempt. MCQ items carry a
// tip; graded subjective items carry feedback and scores.
type ReviewItem struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Subject    string `json:"subject"`
	Semester   int    `json:"semester"`
	Question   string `json:"question"`
	UserAnswer string `json:"user_answer"`

	// SupremeAnswer is the authoritative answer: the correct option for
	// MCQs, the model answer for graded subjective items.
	SupremeAnswer string `json:"supreme_answer"`

	Tip string `json:"tip,omitempty"`

	Feedback          string    `json:"feedback,omitempty"`
	MissedPoints      []string  `json:"missed_points,omitempty"`
	SuggestedKeywords []string  `json:"suggested_keywords,omitempty"`
	Score             float64   `json:"score,omitempty"`
	MaxMarks          int       `json:"max_marks,omitempty"`
	At                time.Time `json:"at"`
}

// WeakTopic is one tracked weak area with its review schedule.
type WeakTopic struct {
	// Key is subject + "__" + topic fingerprint; the upsert identity.
	Key     string `json:"key"`
	Topic   string `json:"topic"`
	Subject string `json:"subject"`

	// Source tags where the miss came from ("exam-mcq", "exam-subjective").
	Source string `json:"source"`

	// LastInterval is the current review interval in days.
	LastInterval int `json:"last_interval"`

	DueAt     time.Time `json:"due_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
