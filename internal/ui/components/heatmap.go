package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/multiz/internal/progress"
	"github.com/abhisek/multiz/internal/ui/theme"
)

const heatmapCellWidth = 5

// HeatmapCell is what a heatmap shows for one factor pair.
type HeatmapCell struct {
	Label string
	Shade progress.Shade
}

// Heatmap renders a GridSize x GridSize table with the first factor on
// the rows and the second factor on the columns.
type Heatmap struct {
	Title string
	Cell  func(row, col int) HeatmapCell
}

// View renders the heatmap with its axis labels.
func (h Heatmap) View() string {
	axis := lipgloss.NewStyle().Foreground(theme.TextDim).Width(heatmapCellWidth).Align(lipgloss.Center)

	var b strings.Builder
	if h.Title != "" {
		b.WriteString(theme.Selected.Render(h.Title) + "\n")
	}
	b.WriteString(axis.Render("×"))
	for c := 1; c <= progress.GridSize; c++ {
		b.WriteString(axis.Render(fmt.Sprint(c)))
	}
	b.WriteString("\n")

	for r := 0; r < progress.GridSize; r++ {
		b.WriteString(axis.Render(fmt.Sprint(r + 1)))
		for c := 0; c < progress.GridSize; c++ {
			cell := h.Cell(r, c)
			b.WriteString(ShadeStyle(cell.Shade).
				Width(heatmapCellWidth).
				Align(lipgloss.Center).
				Render(cell.Label))
		}
		if r < progress.GridSize-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// ShadeStyle maps a heatmap shade to its cell style.
func ShadeStyle(s progress.Shade) lipgloss.Style {
	if int(s) < 0 || int(s) >= len(theme.Shades) {
		return theme.Shades[0]
	}
	return theme.Shades[s]
}

// AccuracyHeatmap builds the accuracy view of a report.
func AccuracyHeatmap(rep progress.Report) Heatmap {
	return Heatmap{
		Title: "Accuracy",
		Cell: func(r, c int) HeatmapCell {
			cell := rep.Heatmap[r][c]
			if cell.Total == 0 {
				return HeatmapCell{Label: "·"}
			}
			return HeatmapCell{
				Label: fmt.Sprintf("%.0f", cell.Percentage),
				Shade: progress.AccuracyShade(cell),
			}
		},
	}
}

// TimingHeatmap builds the answer time view of a report.
func TimingHeatmap(rep progress.Report) Heatmap {
	lo, hi, _ := rep.TimingBounds()
	return Heatmap{
		Title: "Seconds per answer",
		Cell: func(r, c int) HeatmapCell {
			cell := rep.Timing[r][c]
			if !cell.HasData {
				return HeatmapCell{Label: "·"}
			}
			return HeatmapCell{
				Label: fmt.Sprintf("%.1f", cell.AverageSeconds),
				Shade: progress.TimingShade(cell, lo, hi),
			}
		},
	}
}
