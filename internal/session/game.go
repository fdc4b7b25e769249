package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/abhisek/multiz/internal/equation"
	"github.com/abhisek/multiz/internal/settings"
)

var (
	// ErrNilSettings is returned when a game is created without settings.
	ErrNilSettings = errors.New("game settings are required")

	// ErrNoQuestion is returned when there is no current question to answer.
	ErrNoQuestion = errors.New("no current question")

	// ErrAlreadyAnswered is returned when the current question already has an
	// answer. It wraps ErrNoQuestion.
	ErrAlreadyAnswered = fmt.Errorf("%w: current question already answered", ErrNoQuestion)

	// ErrUnanswered is returned when advancing past an unanswered question.
	ErrUnanswered = errors.New("current question has not been answered")

	// ErrNoMoreQuestions is returned when advancing from the last question.
	ErrNoMoreQuestions = errors.New("no more questions")
)

// State is the lifecycle phase of a game.
type State int

const (
	NotStarted State = iota
	InProgress
	Completed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Game is one play session: an ordered list of questions, the index of the
// current one and the answers recorded so far.
type Game struct {
	settings  *settings.GameSettings
	questions []equation.Question
	index     int
	answers   []Answer
	sessionID string
}

// NewGame builds the questions for s and starts a game under sessionID.
func NewGame(ctx context.Context, s *settings.GameSettings, b *Builder, sessionID string) (*Game, error) {
	g := &Game{}
	if err := g.Create(ctx, s, b, sessionID); err != nil {
		return nil, err
	}
	return g, nil
}

// Create replaces the game's state with a freshly built session. The index
// is reset and previous answers are dropped.
func (g *Game) Create(ctx context.Context, s *settings.GameSettings, b *Builder, sessionID string) error {
	if s == nil {
		return ErrNilSettings
	}
	questions, err := b.Questions(ctx, *s)
	if err != nil {
		return fmt.Errorf("build session: %w", err)
	}
	cp := s.Clone()
	g.settings = &cp
	g.questions = questions
	g.index = 0
	g.answers = nil
	g.sessionID = sessionID
	return nil
}

// Settings returns the settings the game was built with.
func (g *Game) Settings() *settings.GameSettings {
	return g.settings
}

// SessionID returns the id stamped on every answer.
func (g *Game) SessionID() string {
	return g.sessionID
}

// Questions returns a copy of the question sequence.
func (g *Game) Questions() []equation.Question {
	return slices.Clone(g.questions)
}

// Answers returns a copy of the recorded answers.
func (g *Game) Answers() []Answer {
	return slices.Clone(g.answers)
}

// Index returns the 0-based position of the current question.
func (g *Game) Index() int {
	return g.index
}

// CurrentQuestion returns the question at the current index.
func (g *Game) CurrentQuestion() (equation.Question, bool) {
	if g.index < 0 || g.index >= len(g.questions) {
		return equation.Question{}, false
	}
	return g.questions[g.index], true
}

// CurrentAnswered reports whether the current question has an answer.
func (g *Game) CurrentAnswered() bool {
	return len(g.answers) > g.index
}

// Submit evaluates value against the current question's unknown and records
// the answer. It does not advance.
func (g *Game) Submit(value int, startedAt, finishedAt time.Time) (Answer, error) {
	q, ok := g.CurrentQuestion()
	if !ok {
		return Answer{}, ErrNoQuestion
	}
	if g.CurrentAnswered() {
		return Answer{}, ErrAlreadyAnswered
	}
	outcome := Incorrect
	if value == q.Answer() {
		outcome = Correct
	}
	return g.record(q, value, outcome, startedAt, finishedAt), nil
}

// Timeout records the timeout sentinel for the current question. The elapsed
// time is the configured timer duration and the outcome is always incorrect.
func (g *Game) Timeout(startedAt time.Time) (Answer, error) {
	q, ok := g.CurrentQuestion()
	if !ok {
		return Answer{}, ErrNoQuestion
	}
	if g.CurrentAnswered() {
		return Answer{}, ErrAlreadyAnswered
	}
	finishedAt := startedAt.Add(time.Duration(g.settings.TimerSeconds) * time.Second)
	return g.record(q, TimeoutValue, Incorrect, startedAt, finishedAt), nil
}

func (g *Game) record(q equation.Question, value int, outcome Outcome, startedAt, finishedAt time.Time) Answer {
	a := Answer{
		ID:         newAnswerID(),
		Question:   q,
		Value:      value,
		Outcome:    outcome,
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
		SessionID:  g.sessionID,
	}
	g.answers = append(g.answers, a)
	return a
}

// Advance moves to the next question. Callers check IsCompleted first.
func (g *Game) Advance() error {
	if g.index+1 >= len(g.questions) {
		return ErrNoMoreQuestions
	}
	if !g.CurrentAnswered() {
		return ErrUnanswered
	}
	g.index++
	return nil
}

// IsCompleted reports whether every question has an answer.
func (g *Game) IsCompleted() bool {
	return len(g.answers) >= len(g.questions)
}

// State reports the lifecycle phase.
func (g *Game) State() State {
	switch {
	case g.settings == nil:
		return NotStarted
	case g.IsCompleted():
		return Completed
	default:
		return InProgress
	}
}

// DisplayText renders the current question with its unknown hidden. It is
// empty when there is no current question.
func (g *Game) DisplayText() string {
	q, ok := g.CurrentQuestion()
	if !ok {
		return ""
	}
	return q.DisplayText()
}

// Stats returns the running totals.
func (g *Game) Stats() Stats {
	return computeStats(len(g.questions), g.answers)
}
