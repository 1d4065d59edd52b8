package exam

import "testing"

func TestDurationForCount(t *testing.T) {
	cases := []struct {
		count int
		want  int
	}{
		{15, 45},
		{30, 45},
		{50, 90},
		{10, 20},
		{100, 20},
		{0, 20},
	}
	for _, tc := range cases {
		if got := DurationForCount(tc.count); got != tc.want {
			t.Errorf("DurationForCount(%d) = %d, want %d", tc.count, got, tc.want)
		}
	}
}

func TestCountSplit(t *testing.T) {
	cases := []struct {
		total    int
		wantMCQ  int
		wantSubj int
	}{
		{15, 12, 3},
		{30, 24, 6},
		{50, 40, 10},
		{1, 1, 0},
		{2, 2, 0},
		{3, 2, 1},
	}
	for _, tc := range cases {
		gotMCQ, gotSubj := CountSplit(tc.total)
		if gotMCQ != tc.wantMCQ || gotSubj != tc.wantSubj {
			t.Errorf("CountSplit(%d) = (%d, %d), want (%d, %d)",
				tc.total, gotMCQ, gotSubj, tc.wantMCQ, tc.wantSubj)
		}
	}
}

func activeState(t *testing.T, n int) *State {
	t.Helper()
	s := NewState()
	s.Begin(3, "Operating Systems", n)
	questions := make([]Question, n)
	for i := range questions {
		questions[i] = mcq("question", "A", "A", "B")
	}
	if !s.StartWith(questions) {
		t.Fatal("StartWith failed for a non-empty question set")
	}
	return s
}

func TestStartWithEmptySetFailsLoad(t *testing.T) {
	s := NewState()
	s.Begin(1, "Maths", 15)
	if s.StartWith(nil) {
		t.Error("StartWith(nil) = true, want false")
	}
	if s.Phase != PhaseError {
		t.Errorf("Phase = %v, want PhaseError", s.Phase)
	}
}

func TestStartWithTruncatesAndSeedsTimer(t *testing.T) {
	s := NewState()
	s.Begin(3, "DBMS", 15)
	questions := make([]Question, 40)
	for i := range questions {
		questions[i] = mcq("q", "A", "A", "B")
	}
	s.StartWith(questions)

	if got, want := len(s.Questions), 15; got != want {
		t.Errorf("len(Questions) = %d, want %d", got, want)
	}
	if got, want := s.RemainingSec, 45*60; got != want {
		t.Errorf("RemainingSec = %d, want %d", got, want)
	}
	if s.Phase != PhaseActive {
		t.Errorf("Phase = %v, want PhaseActive", s.Phase)
	}
}

func TestSetResponseWhitespaceClears(t *testing.T) {
	s := activeState(t, 3)

	s.SetResponse(0, "B) Paris")
	if !s.Answered(0) {
		t.Fatal("Answered(0) = false after SetResponse")
	}

	s.SetResponse(0, "   \t ")
	if s.Answered(0) {
		t.Error("Answered(0) = true after whitespace-only overwrite, want false")
	}
	if got := s.AnsweredCount(); got != 0 {
		t.Errorf("AnsweredCount() = %d, want 0", got)
	}
}

func TestToggleMarkIndependentOfAnswers(t *testing.T) {
	s := activeState(t, 3)
	s.SetResponse(1, "A")

	s.ToggleMark(1)
	if !s.Marked[1] {
		t.Error("Marked[1] = false after toggle, want true")
	}
	if !s.Answered(1) {
		t.Error("marking cleared the answer")
	}

	s.ToggleMark(1)
	if s.Marked[1] {
		t.Error("Marked[1] = true after second toggle, want false")
	}
	if !s.Answered(1) {
		t.Error("unmarking cleared the answer")
	}
}

func TestTickPausedAndExpired(t *testing.T) {
	s := activeState(t, 3)
	s.RemainingSec = 2

	if s.Tick() {
		t.Error("Tick() at 2s = expired, want running")
	}

	s.Paused = true
	if s.Tick() {
		t.Error("Tick() while paused = expired, want no-op")
	}
	if got, want := s.RemainingSec, 1; got != want {
		t.Errorf("RemainingSec after paused tick = %d, want %d", got, want)
	}

	s.Paused = false
	if !s.Tick() {
		t.Error("Tick() at 1s = running, want expired")
	}

	// The clamp holds at zero.
	s.Tick()
	if s.RemainingSec != 0 {
		t.Errorf("RemainingSec = %d, want 0", s.RemainingSec)
	}
}

func TestNavigateBounds(t *testing.T) {
	s := activeState(t, 3)
	s.Navigate(2)
	if got, want := s.Current, 2; got != want {
		t.Errorf("Current = %d, want %d", got, want)
	}
	s.Navigate(7)
	if got, want := s.Current, 2; got != want {
		t.Errorf("Current after out-of-range Navigate = %d, want %d", got, want)
	}
	s.Navigate(-1)
	if got, want := s.Current, 2; got != want {
		t.Errorf("Current after negative Navigate = %d, want %d", got, want)
	}
}
