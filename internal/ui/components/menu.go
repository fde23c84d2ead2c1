package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// MenuItem represents a single item in a menu.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a horizontal row of actions navigated with ←/→.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first item selected.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles keyboard navigation and activation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "left", "h", "shift+tab":
		if m.Selected > 0 {
			m.Selected--
		}
	case "right", "l", "tab":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case "enter", "space":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			if action := m.Items[m.Selected].Action; action != nil {
				return m, action()
			}
		}
	}
	return m, nil
}

// View renders the menu as a row of buttons.
func (m Menu) View() string {
	parts := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		b := Button{Label: item.Label, Focused: i == m.Selected}
		parts = append(parts, b.View())
	}
	return strings.Join(parts, "   ")
}
