package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/multiz/internal/equation"
	"github.com/abhisek/multiz/internal/progress"
	"github.com/abhisek/multiz/internal/session"
	"github.com/abhisek/multiz/internal/ui/theme"
)

func TestShadeStyleOutOfRange(t *testing.T) {
	assert.Equal(t, theme.Shades[0].GetBackground(), ShadeStyle(progress.Shade(42)).GetBackground())
	assert.Equal(t, theme.Shades[0].GetBackground(), ShadeStyle(progress.Shade(-1)).GetBackground())
}

func TestAccuracyHeatmapLabels(t *testing.T) {
	now := time.Now()
	answers := []session.Answer{{
		ID:         "a",
		Question:   equation.Question{Equation: equation.New(3, 4), Unknown: equation.Product},
		Value:      12,
		Outcome:    session.Correct,
		StartedAt:  now.Add(-2 * time.Second),
		FinishedAt: now,
		SessionID:  "s",
	}}
	rep := progress.Aggregate(answers, progress.PeriodAllTime, "s", now)

	h := AccuracyHeatmap(rep)
	assert.Equal(t, "100", h.Cell(2, 3).Label)
	assert.Equal(t, progress.ShadeBest, h.Cell(2, 3).Shade)
	assert.Equal(t, "·", h.Cell(0, 0).Label)

	tm := TimingHeatmap(rep)
	assert.Equal(t, "2.0", tm.Cell(2, 3).Label)

	view := h.View()
	assert.True(t, strings.Contains(view, "Accuracy"))
	assert.Equal(t, progress.GridSize+2, strings.Count(view, "\n")+1)
}
