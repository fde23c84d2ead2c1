package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/sprout/internal/router"
	"github.com/abhisek/sprout/internal/scoring"
	"github.com/abhisek/sprout/internal/screen"
	"github.com/abhisek/sprout/internal/screens/form"
	"github.com/abhisek/sprout/internal/ui/layout"
)

// Options holds dependencies for the app.
type Options struct {
	Engine *scoring.Engine
	Logger zerolog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	engine *scoring.Engine
	log    zerolog.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel rooted at the checklist form.
func newAppModel(opts Options) AppModel {
	return AppModel{
		router: router.New(form.New(opts.Engine)),
		engine: opts.Engine,
		log:    opts.Logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.PopCmd()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if content := m.render(); content != "" {
		v.SetContent(content)
	}
	return v
}

// render composes the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, layout.Progress{
		Answered: m.engine.Answered(),
		Total:    m.engine.Catalog().ItemCount(),
	}, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	opts.Logger.Info().
		Str("assessment_id", opts.Engine.ID()).
		Int("items", opts.Engine.Catalog().ItemCount()).
		Msg("starting checklist")

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		opts.Logger.Error().Err(err).Msg("program exited with error")
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}

	if sum, ok := opts.Engine.Summary(); ok {
		opts.Logger.Info().
			Int("total_score", sum.TotalScore).
			Int("percent", sum.Percent()).
			Msg("session ended with a calculated summary")
	}
	return nil
}
