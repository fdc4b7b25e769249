package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/multiz/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar. Filled overrides the
// default fill style, e.g. to turn a countdown red.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
	Filled      *lipgloss.Style
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += theme.Body.Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fillStyle := theme.ProgressFilled
	if p.Filled != nil {
		fillStyle = *p.Filled
	}
	filledStr := fillStyle.Render(strings.Repeat(" ", filled))
	emptyStr := theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}

// CountdownBar renders the remaining time of a timed question. The bar
// turns amber below half and red in the last quarter.
func CountdownBar(remaining, total, width int) string {
	if total <= 0 {
		return ""
	}
	pct := float64(remaining) / float64(total)
	style := theme.ProgressFilled
	switch {
	case pct <= 0.25:
		style = lipgloss.NewStyle().Background(theme.Error)
	case pct <= 0.5:
		style = lipgloss.NewStyle().Background(theme.Warning)
	}
	bar := NewProgressBar(fmt.Sprintf("⏱ %2ds", remaining), pct, false, width)
	bar.Filled = &style
	return bar.View()
}
