package session

import (
	"math"
	"time"
)

// Stats are the running counts for a session.
type Stats struct {
	Total         int
	Correct       int
	Incorrect     int
	Percentage    int
	AnsweredCount int
}

// computeStats derives Stats from the answers so far. Percentage is 100 when
// nothing has been answered yet.
func computeStats(total int, answers []Answer) Stats {
	st := Stats{Total: total, AnsweredCount: len(answers)}
	for _, a := range answers {
		if a.IsCorrect() {
			st.Correct++
		} else {
			st.Incorrect++
		}
	}
	st.Percentage = 100
	if st.AnsweredCount > 0 {
		st.Percentage = int(math.Round(float64(st.Correct) / float64(st.AnsweredCount) * 100))
	}
	return st
}

// Summary holds the data displayed on the summary screen.
type Summary struct {
	Stats
	Duration       time.Duration
	AverageSeconds float64
	BestStreak     int
	TimedOut       int
}

// BuildSummary creates a Summary from the game's answers.
func BuildSummary(g *Game) Summary {
	answers := g.Answers()
	sum := Summary{Stats: g.Stats()}
	if len(answers) == 0 {
		return sum
	}

	var total time.Duration
	streak := 0
	for _, a := range answers {
		total += a.Elapsed()
		if a.TimedOut() {
			sum.TimedOut++
		}
		if a.IsCorrect() {
			streak++
			sum.BestStreak = max(sum.BestStreak, streak)
		} else {
			streak = 0
		}
	}
	sum.AverageSeconds = total.Seconds() / float64(len(answers))
	sum.Duration = answers[len(answers)-1].FinishedAt.Sub(answers[0].StartedAt)
	return sum
}
