package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/sauravjha/bcabuddy/internal/ui/theme"
)

// Button renders as active or inactive and fires OnPress on enter
// while active.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{Label: label, Active: active, OnPress: onPress}
}

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active || b.OnPress == nil {
		return b, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return b, b.OnPress()
	}
	return b, nil
}

func (b Button) View() string {
	label := "  ▸ " + b.Label + " "
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
