package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sprout/internal/ui/theme"
)

// ScoreChoices are the selector options in display order. The empty string
// is "no score entered".
var ScoreChoices = []string{"", "0", "1", "2", "3", "4"}

// ScoreSelector picks one of ScoreChoices for a checklist item.
type ScoreSelector struct {
	Selected int
	Focused  bool
}

// NewScoreSelector creates a selector positioned on value. Values that are
// not a choice position it on the empty choice.
func NewScoreSelector(value string, focused bool) ScoreSelector {
	sel := 0
	for i, c := range ScoreChoices {
		if c == value {
			sel = i
			break
		}
	}
	return ScoreSelector{Selected: sel, Focused: focused}
}

// Value returns the raw selected value, "" when empty.
func (s ScoreSelector) Value() string {
	return ScoreChoices[s.Selected]
}

// Score returns the selected score, or false when the empty choice is
// selected.
func (s ScoreSelector) Score() (int, bool) {
	if s.Selected <= 0 {
		return 0, false
	}
	return s.Selected - 1, true
}

// Update handles ←/→ cycling, digit shortcuts and clearing. It reports
// whether the selection changed.
func (s ScoreSelector) Update(msg tea.Msg) (ScoreSelector, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.Focused {
		return s, false
	}

	prev := s.Selected
	switch key := kmsg.String(); key {
	case "right", "l", "+", "=":
		if s.Selected < len(ScoreChoices)-1 {
			s.Selected++
		}
	case "left", "h", "-":
		if s.Selected > 0 {
			s.Selected--
		}
	case "backspace", "delete", "x":
		s.Selected = 0
	default:
		for i, c := range ScoreChoices {
			if c != "" && c == key {
				s.Selected = i
				break
			}
		}
	}
	return s, s.Selected != prev
}

// View renders the choices as chips, e.g. "— 0 1 [2] 3 4".
func (s ScoreSelector) View() string {
	parts := make([]string, len(ScoreChoices))
	for i, c := range ScoreChoices {
		label := c
		if label == "" {
			label = "—"
		}
		switch {
		case i == s.Selected && s.Focused:
			parts[i] = theme.ChipActive.Render(" " + label + " ")
		case i == s.Selected:
			parts[i] = theme.ChipChosen.Render("[" + label + "]")
		default:
			parts[i] = theme.ChipIdle.Render(" " + label + " ")
		}
	}
	return strings.Join(parts, "")
}
