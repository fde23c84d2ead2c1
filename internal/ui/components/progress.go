package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprout/internal/ui/theme"
)

// ProgressBar displays a horizontal bar for a whole-number percentage.
type ProgressBar struct {
	Label      string
	LabelWidth int
	Percent    int
	Width      int
}

// NewProgressBar creates a new progress bar. labelWidth pads the label so a
// column of bars lines up; 0 uses the label's own width.
func NewProgressBar(label string, labelWidth, percent, width int) ProgressBar {
	return ProgressBar{
		Label:      label,
		LabelWidth: labelWidth,
		Percent:    percent,
		Width:      width,
	}
}

// filledCells returns how many of barWidth cells a percentage fills.
func filledCells(percent, barWidth int) int {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return barWidth * percent / 100
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		w := p.LabelWidth
		if w < lipgloss.Width(p.Label) {
			w = lipgloss.Width(p.Label)
		}
		result += lipgloss.NewStyle().Foreground(theme.Text).Width(w).Render(p.Label) + "  "
	}

	const percentWidth = 6 // "  100%"
	barWidth := p.Width - lipgloss.Width(result) - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := filledCells(p.Percent, barWidth)
	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%5d%%", p.Percent))

	return result
}
