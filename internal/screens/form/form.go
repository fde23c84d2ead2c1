package form

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/sprout/internal/router"
	"github.com/abhisek/sprout/internal/scoring"
	"github.com/abhisek/sprout/internal/screen"
	"github.com/abhisek/sprout/internal/screens/summary"
	"github.com/abhisek/sprout/internal/ui/components"
	"github.com/abhisek/sprout/internal/ui/layout"
	"github.com/abhisek/sprout/internal/ui/theme"
)

type rowKind int

const (
	rowDomainHeader rowKind = iota
	rowItem
	rowAction
)

type row struct {
	kind   rowKind
	domain string
	index  int
	label  string
	button int // index into FormScreen.buttons for rowAction
}

const (
	buttonCalculate = iota
	buttonReset
)

// selectorWidth is the rendered width of a ScoreSelector (six 3-cell chips).
const selectorWidth = 18

// FormScreen is the checklist form: one score selector per skill item plus
// the calculate and reset actions.
type FormScreen struct {
	engine       *scoring.Engine
	rows         []row
	buttons      []components.Button
	cursor       int
	scrollOffset int
	status       string
	keys         keyMap
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)
var _ screen.Resumer = (*FormScreen)(nil)

// New creates the form for the engine's catalog.
func New(engine *scoring.Engine) *FormScreen {
	s := &FormScreen{
		engine: engine,
		keys:   defaultKeyMap(),
	}
	s.buttons = []components.Button{
		components.NewButton("Calculate Results", s.calculate),
		components.NewButton("Reset All", s.reset),
	}

	for _, d := range engine.Catalog().Domains() {
		s.rows = append(s.rows, row{kind: rowDomainHeader, domain: d.Name})
		for i, item := range d.Items {
			s.rows = append(s.rows, row{kind: rowItem, domain: d.Name, index: i, label: item})
		}
	}
	s.rows = append(s.rows,
		row{kind: rowAction, button: buttonCalculate},
		row{kind: rowAction, button: buttonReset},
	)

	// Start on the first item.
	s.cursor = 0
	s.moveCursor(1)
	return s
}

func (s *FormScreen) Init() tea.Cmd {
	return nil
}

func (s *FormScreen) Title() string {
	return "Skill Checklist"
}

// KeyHints returns the key binding hints for the footer.
func (s *FormScreen) KeyHints() []layout.KeyHint {
	h := []layout.KeyHint{
		{Key: "←→/0-4", Description: "Score"},
	}
	return append(h, hints(s.keys.Up, s.keys.NextDomain, s.keys.Calculate, s.keys.Reset, s.keys.Quit)...)
}

// Resume refreshes the status line when returning from the summary screen.
func (s *FormScreen) Resume() tea.Cmd {
	if _, ok := s.engine.Summary(); !ok && s.engine.Answered() == 0 {
		s.status = "All scores cleared."
	} else {
		s.status = ""
	}
	return nil
}

func (s *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, s.keys.Up):
		s.moveCursor(-1)
		return s, nil
	case key.Matches(kmsg, s.keys.Down):
		s.moveCursor(1)
		return s, nil
	case key.Matches(kmsg, s.keys.NextDomain):
		s.nextDomain()
		return s, nil
	case key.Matches(kmsg, s.keys.PrevDomain):
		s.prevDomain()
		return s, nil
	case key.Matches(kmsg, s.keys.Calculate):
		return s, s.calculate()
	case key.Matches(kmsg, s.keys.Reset):
		return s, s.reset()
	case key.Matches(kmsg, s.keys.Quit):
		return s, tea.Quit
	}

	r := s.rows[s.cursor]
	switch r.kind {
	case rowItem:
		s.editItem(r, kmsg)
	case rowAction:
		var cmd tea.Cmd
		s.buttons[r.button], cmd = s.buttons[r.button].Update(kmsg)
		return s, cmd
	}
	return s, nil
}

// editItem feeds a key to the item's selector and forwards any change to the
// engine. The selector only offers valid scores, so no parsing is needed.
func (s *FormScreen) editItem(r row, msg tea.KeyPressMsg) {
	sel := components.NewScoreSelector(selectorValue(s.engine.Entry(r.domain, r.index)), true)
	sel, changed := sel.Update(msg)
	if !changed {
		return
	}

	v, ok := sel.Score()
	if !ok {
		s.engine.Clear(r.domain, r.index)
		s.status = ""
		return
	}
	if err := s.engine.Set(r.domain, r.index, v); err != nil {
		s.status = err.Error()
		return
	}
	s.status = ""
}

func (s *FormScreen) calculate() tea.Cmd {
	s.engine.Calculate()
	s.status = ""
	return router.PushCmd(summary.New(s.engine))
}

func (s *FormScreen) reset() tea.Cmd {
	s.engine.Reset()
	s.status = "All scores cleared."
	return nil
}

// selectorValue maps an entry to the selector choice it shows.
func selectorValue(e scoring.Entry) string {
	if !e.IsSet() {
		return ""
	}
	return strconv.Itoa(e.Value)
}

// selectable reports whether the cursor can rest on row i.
func (s *FormScreen) selectable(i int) bool {
	return s.rows[i].kind != rowDomainHeader
}

// moveCursor moves the cursor by delta, skipping domain headers.
func (s *FormScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.selectable(next) {
			s.setCursor(next)
			return
		}
		next += delta
	}
}

func (s *FormScreen) setCursor(i int) {
	s.cursor = i
	for b := range s.buttons {
		s.buttons[b].Focused = false
	}
	if r := s.rows[i]; r.kind == rowAction {
		s.buttons[r.button].Focused = true
	}
}

// nextDomain jumps to the first item of the next domain, or to the actions
// after the last one.
func (s *FormScreen) nextDomain() {
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowDomainHeader {
			s.setCursor(i + 1)
			return
		}
		if s.rows[i].kind == rowAction {
			s.setCursor(i)
			return
		}
	}
}

// prevDomain jumps to the first item of the current domain, or of the
// previous domain when already there.
func (s *FormScreen) prevDomain() {
	headers := make([]int, 0)
	for i := 0; i < len(s.rows); i++ {
		if s.rows[i].kind == rowDomainHeader {
			headers = append(headers, i)
		}
	}
	for j := len(headers) - 1; j >= 0; j-- {
		if headers[j]+1 < s.cursor {
			s.setCursor(headers[j] + 1)
			return
		}
	}
}

// adjustScroll keeps the cursor, and the header above it, in view.
func (s *FormScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	top := s.cursor
	for top > 0 && s.rows[top-1].kind == rowDomainHeader {
		top--
	}
	if top < s.scrollOffset {
		s.scrollOffset = top
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *FormScreen) View(width, height int) string {
	// Last two lines are a spacer and the status line.
	listHeight := height - 2
	if listHeight < 1 {
		listHeight = 1
	}
	s.adjustScroll(listHeight)

	lines := make([]string, 0, listHeight+2)
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < listHeight; i++ {
		r := s.rows[i]
		switch r.kind {
		case rowDomainHeader:
			lines = append(lines, s.renderDomainHeader(r.domain))
		case rowItem:
			lines = append(lines, s.renderItemRow(r, i == s.cursor, width))
		case rowAction:
			lines = append(lines, "    "+s.buttons[r.button].View())
		}
	}
	for len(lines) < listHeight {
		lines = append(lines, "")
	}

	lines = append(lines, "", s.renderStatus())
	return strings.Join(lines, "\n")
}

func (s *FormScreen) renderDomainHeader(domain string) string {
	d, _ := s.engine.Catalog().Domain(domain)
	answered := 0
	for i := range d.Items {
		if s.engine.Entry(domain, i).IsSet() {
			answered++
		}
	}
	name := theme.DomainHeading.Render(strings.ToUpper(domain))
	count := theme.Hint.Render(fmt.Sprintf("  %d/%d", answered, d.Len()))
	return "  " + name + count
}

func (s *FormScreen) renderItemRow(r row, selected bool, width int) string {
	entry := s.engine.Entry(r.domain, r.index)

	labelWidth := width - 6 - selectorWidth - 2
	if labelWidth < 10 {
		labelWidth = 10
	}
	label := ansi.Truncate(r.label, labelWidth, "…")

	var labelStyle lipgloss.Style
	switch {
	case selected:
		labelStyle = theme.Selected
	case entry.IsSet():
		labelStyle = theme.Unselected
	default:
		labelStyle = theme.Unanswered
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	sel := components.NewScoreSelector(selectorValue(entry), selected)
	return fmt.Sprintf("  %s%s  %s",
		cursor,
		labelStyle.Width(labelWidth).Render(label),
		sel.View(),
	)
}

func (s *FormScreen) renderStatus() string {
	if s.status != "" {
		return "  " + lipgloss.NewStyle().Foreground(theme.Accent).Render(s.status)
	}
	if sum, ok := s.engine.Summary(); ok {
		return "  " + theme.Hint.Render(fmt.Sprintf(
			"Last result: %d / %d (%d%%) — press c to recalculate",
			sum.TotalScore, sum.MaxScore, sum.Percent()))
	}
	return "  " + theme.Hint.Render("No results yet — press c to calculate")
}
