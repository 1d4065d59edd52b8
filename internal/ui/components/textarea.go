package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// AnswerArea wraps bubbles/textarea for subjective answers.
type AnswerArea struct {
	Model textarea.Model
}

// NewAnswerArea creates a focused multi-line answer box seeded with any
// previously recorded answer.
func NewAnswerArea(value string, width, height int) AnswerArea {
	ta := textarea.New()
	ta.Placeholder = "Write your answer here..."
	ta.SetValue(value)
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.Focus()
	return AnswerArea{Model: ta}
}

// Init returns the initial command.
func (a AnswerArea) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages.
func (a AnswerArea) Update(msg tea.Msg) (AnswerArea, tea.Cmd) {
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the answer box.
func (a AnswerArea) View() string {
	return a.Model.View()
}

// Value returns the current answer text.
func (a AnswerArea) Value() string {
	return a.Model.Value()
}
