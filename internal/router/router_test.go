package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sauravjha/bcabuddy/internal/screen"
)

type fakeScreen struct {
	name    string
	initRan bool
}

func (f *fakeScreen) Init() tea.Cmd {
	f.initRan = true
	return nil
}
func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (f *fakeScreen) View(int, int) string                    { return f.name }
func (f *fakeScreen) Title() string                           { return f.name }

func activeName(t *testing.T, r *Router) string {
	t.Helper()
	if r.Active() == nil {
		t.Fatal("no active screen")
	}
	return r.Active().Title()
}

func TestPushStacksAndInits(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	exam := &fakeScreen{name: "exam"}

	r.Push(exam)

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	if got := activeName(t, r); got != "exam" {
		t.Errorf("active = %q, want exam", got)
	}
	if !exam.initRan {
		t.Error("pushed screen was not initialized")
	}
}

func TestPopReturnsToPrevious(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "history"})

	r.Pop()

	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}
	if got := activeName(t, r); got != "home" {
		t.Errorf("active = %q, want home", got)
	}
}

func TestPopKeepsBottomScreen(t *testing.T) {
	r := New(&fakeScreen{name: "home"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d after pop at bottom, want 1", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "exam"})

	results := &fakeScreen{name: "results"}
	r.Replace(results)

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	if got := activeName(t, r); got != "results" {
		t.Errorf("active = %q, want results", got)
	}
	if !results.initRan {
		t.Error("replacement screen was not initialized")
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&fakeScreen{name: "home"})

	r.Update(PushScreenMsg{Screen: &fakeScreen{name: "exam"}})
	if got := activeName(t, r); got != "exam" {
		t.Fatalf("active after push msg = %q, want exam", got)
	}

	results := &fakeScreen{name: "results"}
	r.Update(ReplaceScreenMsg{Screen: results})
	if got := activeName(t, r); got != "results" {
		t.Fatalf("active after replace msg = %q, want results", got)
	}
	if !results.initRan {
		t.Error("replacement screen was not initialized")
	}

	r.Update(PopScreenMsg{})
	if got := activeName(t, r); got != "home" {
		t.Errorf("active after pop msg = %q, want home", got)
	}
}
