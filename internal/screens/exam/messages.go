package exam

import (
	"time"

	examcore "github.com/sauravjha/bcabuddy/internal/exam"
)

// questionsLoadedMsg is sent when the question fetch completes.
type questionsLoadedMsg struct {
	Questions []examcore.Question
	Err       error
}

// timerTickMsg drives the one-second countdown. Gen guards against stale
// ticks after a pause/resume cycle.
type timerTickMsg struct {
	Gen int
}

// spinnerTickMsg animates the loading indicator.
type spinnerTickMsg time.Time

// attemptSavedMsg is sent when attempt persistence completes.
type attemptSavedMsg struct {
	Err error
}
