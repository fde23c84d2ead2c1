package form

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/sprout/internal/ui/layout"
)

// keyMap holds the screen-level bindings. Score editing keys belong to the
// selector component.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextDomain key.Binding
	PrevDomain key.Binding
	Calculate  key.Binding
	Reset      key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑↓", "Navigate"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		NextDomain: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "Domain"),
		),
		PrevDomain: key.NewBinding(
			key.WithKeys("shift+tab"),
		),
		Calculate: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Calculate"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// hints turns bindings into footer hints, skipping ones without help text.
func hints(bindings ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return out
}
