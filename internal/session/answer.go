package session

import (
	"time"

	"github.com/abhisek/multiz/internal/equation"
	"github.com/google/uuid"
)

// Outcome is the result of a resolved question.
type Outcome string

const (
	Correct   Outcome = "correct"
	Incorrect Outcome = "incorrect"
)

// TimeoutValue is recorded as the submitted value when the timer expires.
const TimeoutValue = -1

// Answer records how one question was resolved. Only IgnoredForStats may
// change after creation.
type Answer struct {
	ID              string            `json:"id"`
	Question        equation.Question `json:"question"`
	Value           int               `json:"value"`
	Outcome         Outcome           `json:"outcome"`
	StartedAt       time.Time         `json:"startedAt"`
	FinishedAt      time.Time         `json:"finishedAt"`
	SessionID       string            `json:"sessionId"`
	IgnoredForStats bool              `json:"ignored"`
}

// IsCorrect reports whether the answer was correct.
func (a Answer) IsCorrect() bool {
	return a.Outcome == Correct
}

// TimedOut reports whether the answer was recorded by a timer expiry.
func (a Answer) TimedOut() bool {
	return a.Value == TimeoutValue && a.Outcome == Incorrect
}

// Elapsed returns the time taken to answer.
func (a Answer) Elapsed() time.Duration {
	return a.FinishedAt.Sub(a.StartedAt)
}

// NewSessionID returns a fresh session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

func newAnswerID() string {
	return uuid.NewString()
}
