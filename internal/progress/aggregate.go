// Package progress aggregates the answer log into accuracy and timing
// heatmaps for the progress views.
package progress

import (
	"math"
	"slices"
	"time"

	"github.com/abhisek/multiz/internal/session"
)

// GridSize is the number of factors covered by each heatmap axis (1..10).
const GridSize = 10

// RecentSamples is how many attempts per factor pair feed the timing cell.
const RecentSamples = 3

// Cell is one accuracy heatmap entry.
type Cell struct {
	Total      int
	Correct    int
	Percentage float64
}

// TimingCell is one timing heatmap entry. HasData is false when the pair
// has no attempts in the period.
type TimingCell struct {
	Times          []float64
	AverageSeconds float64
	HasData        bool
}

// Summary totals the filtered answers, including factors outside the grid.
type Summary struct {
	TotalQuestions     int
	CorrectCount       int
	IncorrectCount     int
	AccuracyPercentage float64
}

// Report is the result of Aggregate.
type Report struct {
	Period  Period
	Heatmap [GridSize][GridSize]Cell
	Timing  [GridSize][GridSize]TimingCell
	Summary Summary
}

// Aggregate builds a report over answers for period. Ignored answers are
// excluded. Heatmaps are indexed by (first factor-1, second factor-1).
func Aggregate(answers []session.Answer, period Period, sessionID string, now time.Time) Report {
	rep := Report{Period: period}
	filtered := Filter(answers, period, sessionID, now, false)

	var recent [GridSize][GridSize][]session.Answer
	for _, a := range filtered {
		rep.Summary.TotalQuestions++
		if a.IsCorrect() {
			rep.Summary.CorrectCount++
		} else {
			rep.Summary.IncorrectCount++
		}

		i, j, ok := cellIndex(a)
		if !ok {
			continue
		}
		c := &rep.Heatmap[i][j]
		c.Total++
		if a.IsCorrect() {
			c.Correct++
		}
		recent[i][j] = append(recent[i][j], a)
	}

	if rep.Summary.TotalQuestions > 0 {
		rep.Summary.AccuracyPercentage = float64(rep.Summary.CorrectCount) / float64(rep.Summary.TotalQuestions) * 100
	}

	for i := range GridSize {
		for j := range GridSize {
			c := &rep.Heatmap[i][j]
			if c.Total > 0 {
				c.Percentage = float64(c.Correct) / float64(c.Total) * 100
			}
			rep.Timing[i][j] = timingCell(recent[i][j])
		}
	}
	return rep
}

func cellIndex(a session.Answer) (int, int, bool) {
	i := a.Question.FirstFactor - 1
	j := a.Question.SecondFactor - 1
	if i < 0 || i >= GridSize || j < 0 || j >= GridSize {
		return 0, 0, false
	}
	return i, j, true
}

func timingCell(attempts []session.Answer) TimingCell {
	if len(attempts) == 0 {
		return TimingCell{}
	}
	slices.SortStableFunc(attempts, func(a, b session.Answer) int {
		return b.FinishedAt.Compare(a.FinishedAt)
	})
	if len(attempts) > RecentSamples {
		attempts = attempts[:RecentSamples]
	}

	cell := TimingCell{HasData: true, Times: make([]float64, len(attempts))}
	var sum float64
	for k, a := range attempts {
		cell.Times[k] = a.Elapsed().Seconds()
		sum += cell.Times[k]
	}
	cell.AverageSeconds = sum / float64(len(attempts))
	return cell
}

// TimingBounds returns the fastest and slowest sample across all timing
// cells. ok is false when no cell has data.
func (r Report) TimingBounds() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := range GridSize {
		for j := range GridSize {
			for _, t := range r.Timing[i][j].Times {
				lo = min(lo, t)
				hi = max(hi, t)
				ok = true
			}
		}
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}

// Review returns the answers within period, ignored ones included, most
// recent first.
func Review(answers []session.Answer, period Period, sessionID string, now time.Time) []session.Answer {
	out := Filter(answers, period, sessionID, now, true)
	slices.SortStableFunc(out, func(a, b session.Answer) int {
		return b.FinishedAt.Compare(a.FinishedAt)
	})
	return out
}
