package summary

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprout/internal/router"
	"github.com/abhisek/sprout/internal/scoring"
	"github.com/abhisek/sprout/internal/screen"
	"github.com/abhisek/sprout/internal/ui/components"
	"github.com/abhisek/sprout/internal/ui/layout"
	"github.com/abhisek/sprout/internal/ui/theme"
)

// SummaryScreen displays the assessment summary last calculated by the
// engine.
type SummaryScreen struct {
	engine *scoring.Engine
	menu   components.Menu
	reset  key.Binding
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(engine *scoring.Engine) *SummaryScreen {
	s := &SummaryScreen{
		engine: engine,
		reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reset All"),
		),
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Back to Checklist", Action: router.PopCmd},
		{Label: "Reset All", Action: s.resetAll},
	})
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Assessment Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: s.reset.Help().Key, Description: s.reset.Help().Desc},
		{Key: "Esc", Description: "Back"},
	}
}

// resetAll clears the engine, which also discards the displayed summary,
// and returns to the form.
func (s *SummaryScreen) resetAll() tea.Cmd {
	s.engine.Reset()
	return router.PopCmd()
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, s.reset) {
		return s, s.resetAll()
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	sum, ok := s.engine.Summary()
	if !ok {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No summary yet. Go back and calculate results."))
	}

	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder

	b.WriteString(center(theme.Title.Render("Assessment Summary")))
	b.WriteString("\n\n")

	b.WriteString(center(theme.Body.Render(
		fmt.Sprintf("Total Score: %d / %d", sum.TotalScore, sum.MaxScore))))
	b.WriteString("\n")
	b.WriteString(center(theme.Hint.Render(
		fmt.Sprintf("%d of %d items answered", sum.Answered, s.engine.Catalog().ItemCount()))))
	b.WriteString("\n\n")

	barWidth := min(width-8, 64)
	b.WriteString(center(components.NewProgressBar("Progress", 0, sum.Percent(), barWidth).View()))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", barWidth))
	b.WriteString(center(theme.Hint.Render("Domains")))
	b.WriteString("\n")
	b.WriteString(center(divider))
	b.WriteString("\n")

	labels := make([]string, len(sum.Domains))
	labelWidth := 0
	for i, d := range sum.Domains {
		labels[i] = domainLabel(d)
		labelWidth = max(labelWidth, lipgloss.Width(labels[i]))
	}

	for i, d := range sum.Domains {
		b.WriteString(center(components.NewProgressBar(labels[i], labelWidth, d.Percent, barWidth).View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center(s.menu.View()))

	return b.String()
}

// domainLabel renders "Motor Skills  7/12 pts".
func domainLabel(d scoring.DomainResult) string {
	return fmt.Sprintf("%s  %d/%d pts", d.Name, d.Score, d.MaxScore())
}
