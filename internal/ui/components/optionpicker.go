package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sauravjha/bcabuddy/internal/ui/theme"
)

// OptionPicker is an MCQ option selector. Unlike a quiz widget it never
// grades: enter records the highlighted option as the current answer and
// the student may change or clear it until the exam is submitted.
type OptionPicker struct {
	Options []string

	// Cursor is the highlighted option.
	Cursor int

	// Chosen is the recorded answer index, -1 when unanswered.
	Chosen int
}

// NewOptionPicker creates a picker over the given options. A previously
// recorded answer index restores both the chosen mark and the cursor.
func NewOptionPicker(options []string, chosen int) OptionPicker {
	cursor := 0
	if chosen >= 0 && chosen < len(options) {
		cursor = chosen
	} else {
		chosen = -1
	}
	return OptionPicker{
		Options: options,
		Cursor:  cursor,
		Chosen:  chosen,
	}
}

// Init returns nil.
func (p OptionPicker) Init() tea.Cmd {
	return nil
}

// Update handles navigation and selection. It reports whether the chosen
// answer changed so the caller can persist the response.
func (p OptionPicker) Update(msg tea.Msg) (OptionPicker, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, false
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if p.Cursor > 0 {
			p.Cursor--
		}
	case "down", "j":
		if p.Cursor < len(p.Options)-1 {
			p.Cursor++
		}
	case "enter", " ":
		if p.Chosen == p.Cursor {
			p.Chosen = -1 // toggling off clears the answer
		} else {
			p.Chosen = p.Cursor
		}
		return p, true
	case "a", "b", "c", "d", "1", "2", "3", "4":
		idx := optionIndex(key)
		if idx >= 0 && idx < len(p.Options) {
			p.Cursor = idx
			p.Chosen = idx
			return p, true
		}
	}

	return p, false
}

func optionIndex(key string) int {
	switch key {
	case "a", "1":
		return 0
	case "b", "2":
		return 1
	case "c", "3":
		return 2
	case "d", "4":
		return 3
	}
	return -1
}

// Value returns the chosen option's text, or "" when unanswered.
func (p OptionPicker) Value() string {
	if p.Chosen < 0 || p.Chosen >= len(p.Options) {
		return ""
	}
	return p.Options[p.Chosen]
}

// View renders the option list.
func (p OptionPicker) View() string {
	labels := []string{"A", "B", "C", "D", "E", "F"}

	var s string
	for i, opt := range p.Options {
		label := "?"
		if i < len(labels) {
			label = labels[i]
		}

		prefix := "  "
		if i == p.Cursor {
			prefix = "▸ "
		}
		marker := "( )"
		if i == p.Chosen {
			marker = "(●)"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case i == p.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		case i == p.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
