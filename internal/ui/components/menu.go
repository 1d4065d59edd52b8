package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sauravjha/bcabuddy/internal/ui/theme"
)

// MenuItem is one entry in a vertical menu. A Disabled item is shown
// but skipped during navigation.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu tracks the selection in a vertical menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

func (m Menu) Init() tea.Cmd {
	return nil
}

// Update moves the selection with up/down (or k/j) and fires the
// selected item's action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// move shifts the selection by step, skipping disabled items and
// stopping at the ends.
func (m *Menu) move(step int) {
	for i := m.Selected + step; i >= 0 && i < len(m.Items); i += step {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) View() string {
	var b strings.Builder
	selStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	itemStyle := lipgloss.NewStyle().Foreground(theme.Text)

	for i, item := range m.Items {
		if i == m.Selected {
			b.WriteString(selStyle.Render("  ▸ " + item.Label))
		} else {
			b.WriteString(itemStyle.Render("    " + item.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
