package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/multiz/internal/equation"
	"github.com/abhisek/multiz/internal/settings"
)

var t0 = time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)

func newTestGame(t *testing.T, s settings.GameSettings) *Game {
	t.Helper()
	g, err := NewGame(context.Background(), &s, testBuilder(), "sess-1")
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestGame_HappyPath(t *testing.T) {
	g := newTestGame(t, happySettings())
	if got := len(g.Questions()); got != 3 {
		t.Fatalf("questions = %d, want 3", got)
	}
	if g.State() != InProgress {
		t.Errorf("State = %v, want in_progress", g.State())
	}

	for i := 0; i < 3; i++ {
		q, ok := g.CurrentQuestion()
		if !ok {
			t.Fatalf("no current question at %d", i)
		}
		a, err := g.Submit(q.Product, t0, t0.Add(2*time.Second))
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if a.Outcome != Correct {
			t.Errorf("answer %d outcome = %s, want correct", i, a.Outcome)
		}
		if a.SessionID != "sess-1" {
			t.Errorf("SessionID = %q, want sess-1", a.SessionID)
		}
		if a.ID == "" {
			t.Error("answer has no id")
		}
		if i < 2 {
			if err := g.Advance(); err != nil {
				t.Fatalf("Advance: %v", err)
			}
		}
	}

	if !g.IsCompleted() {
		t.Error("IsCompleted = false, want true")
	}
	if g.State() != Completed {
		t.Errorf("State = %v, want completed", g.State())
	}
	want := Stats{Total: 3, Correct: 3, Incorrect: 0, Percentage: 100, AnsweredCount: 3}
	if got := g.Stats(); got != want {
		t.Errorf("Stats = %+v, want %+v", got, want)
	}
}

func TestGame_ZeroAnsweredPercentage(t *testing.T) {
	g := newTestGame(t, happySettings())
	st := g.Stats()
	if st.Percentage != 100 {
		t.Errorf("Percentage = %d, want 100", st.Percentage)
	}
	if st.AnsweredCount != 0 || st.Total != 3 {
		t.Errorf("Stats = %+v", st)
	}
}

func TestGame_StatsIdempotent(t *testing.T) {
	g := newTestGame(t, happySettings())
	q, _ := g.CurrentQuestion()
	if _, err := g.Submit(q.Product+1, t0, t0.Add(time.Second)); err != nil {
		t.Fatal(err)
	}
	a, b := g.Stats(), g.Stats()
	if a != b {
		t.Errorf("Stats changed between calls: %+v vs %+v", a, b)
	}
	if a.Percentage != 0 || a.Incorrect != 1 {
		t.Errorf("Stats = %+v", a)
	}
}

func TestGame_PercentageRounds(t *testing.T) {
	st := computeStats(3, []Answer{{Outcome: Correct}, {Outcome: Correct}, {Outcome: Incorrect}})
	if st.Percentage != 67 {
		t.Errorf("Percentage = %d, want 67", st.Percentage)
	}
}

func TestGame_SubmitTwiceFails(t *testing.T) {
	g := newTestGame(t, happySettings())
	q, _ := g.CurrentQuestion()
	if _, err := g.Submit(q.Product, t0, t0); err != nil {
		t.Fatal(err)
	}
	_, err := g.Submit(q.Product, t0, t0)
	if !errors.Is(err, ErrAlreadyAnswered) || !errors.Is(err, ErrNoQuestion) {
		t.Errorf("err = %v, want ErrAlreadyAnswered wrapping ErrNoQuestion", err)
	}
}

func TestGame_AdvanceErrors(t *testing.T) {
	g := newTestGame(t, happySettings())
	if err := g.Advance(); !errors.Is(err, ErrUnanswered) {
		t.Errorf("Advance before answering = %v, want ErrUnanswered", err)
	}

	for i := 0; i < 3; i++ {
		q, _ := g.CurrentQuestion()
		if _, err := g.Submit(q.Answer(), t0, t0); err != nil {
			t.Fatal(err)
		}
		if i < 2 {
			if err := g.Advance(); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := g.Advance(); !errors.Is(err, ErrNoMoreQuestions) {
		t.Errorf("Advance past last = %v, want ErrNoMoreQuestions", err)
	}
	if g.Index() != 2 {
		t.Errorf("Index = %d, want 2", g.Index())
	}
}

func TestGame_MonotonicIndex(t *testing.T) {
	s := happySettings()
	s.QuestionsCount = 6
	g := newTestGame(t, s)

	prev := g.Index()
	ops := []string{"advance", "submit", "submit", "advance", "advance", "submit", "advance", "submit", "advance", "submit", "advance", "submit", "advance", "submit", "advance", "advance"}
	for _, op := range ops {
		switch op {
		case "submit":
			_, _ = g.Submit(1, t0, t0)
		case "advance":
			_ = g.Advance()
		}
		if g.Index() < prev {
			t.Fatalf("index decreased from %d to %d", prev, g.Index())
		}
		if g.Index() > len(g.Questions()) {
			t.Fatalf("index %d exceeds %d questions", g.Index(), len(g.Questions()))
		}
		if len(g.Answers()) > len(g.Questions()) {
			t.Fatalf("%d answers for %d questions", len(g.Answers()), len(g.Questions()))
		}
		prev = g.Index()
	}
}

func TestGame_Timeout(t *testing.T) {
	s := happySettings()
	s.TimerSeconds = 5
	g := newTestGame(t, s)

	var c Countdown
	tok := c.Start(s.TimerSeconds)
	expired := false
	for i := 0; i < 10 && !expired; i++ {
		expired = c.Tick(tok)
	}
	if !expired {
		t.Fatal("countdown never expired")
	}

	a, err := g.Timeout(t0)
	if err != nil {
		t.Fatalf("Timeout: %v", err)
	}
	if a.Outcome != Incorrect {
		t.Errorf("Outcome = %s, want incorrect", a.Outcome)
	}
	if a.Value != TimeoutValue || !a.TimedOut() {
		t.Errorf("Value = %d, want timeout sentinel", a.Value)
	}
	if a.Elapsed() != 5*time.Second {
		t.Errorf("Elapsed = %v, want 5s", a.Elapsed())
	}
}

func TestGame_NilSettings(t *testing.T) {
	_, err := NewGame(context.Background(), nil, testBuilder(), "x")
	if !errors.Is(err, ErrNilSettings) {
		t.Errorf("err = %v, want ErrNilSettings", err)
	}
}

func TestGame_EmptySession(t *testing.T) {
	s := happySettings()
	s.Ranges.Product = equation.NumberRange{Min: 200, Max: 300}
	g := newTestGame(t, s)

	if !g.IsCompleted() {
		t.Error("empty session should be completed")
	}
	if g.DisplayText() != "" {
		t.Errorf("DisplayText = %q, want empty", g.DisplayText())
	}
	if _, err := g.Submit(1, t0, t0); !errors.Is(err, ErrNoQuestion) {
		t.Errorf("Submit err = %v, want ErrNoQuestion", err)
	}
	if _, err := g.Timeout(t0); !errors.Is(err, ErrNoQuestion) {
		t.Errorf("Timeout err = %v, want ErrNoQuestion", err)
	}
}

func TestGame_CreateResets(t *testing.T) {
	s := happySettings()
	g := newTestGame(t, s)
	q, _ := g.CurrentQuestion()
	_, _ = g.Submit(q.Answer(), t0, t0)
	_ = g.Advance()

	if err := g.Create(context.Background(), &s, testBuilder(), "sess-2"); err != nil {
		t.Fatal(err)
	}
	if g.Index() != 0 || len(g.Answers()) != 0 || g.SessionID() != "sess-2" {
		t.Errorf("after Create: index=%d answers=%d session=%q", g.Index(), len(g.Answers()), g.SessionID())
	}
}

func TestGame_SettingsAreCopied(t *testing.T) {
	s := happySettings()
	g := newTestGame(t, s)
	s.UnknownRoles[0] = equation.FirstFactor
	if g.Settings().UnknownRoles[0] != equation.Product {
		t.Error("game shares settings with caller")
	}
}

func TestZeroGame_NotStarted(t *testing.T) {
	var g Game
	if g.State() != NotStarted {
		t.Errorf("State = %v, want not_started", g.State())
	}
	if g.Snapshot() != nil {
		t.Error("Snapshot of unstarted game should be nil")
	}
}

func TestBuildSummary(t *testing.T) {
	s := happySettings()
	s.TimerSeconds = 10
	g := newTestGame(t, s)

	q, _ := g.CurrentQuestion()
	_, _ = g.Submit(q.Answer(), t0, t0.Add(2*time.Second))
	_ = g.Advance()
	q, _ = g.CurrentQuestion()
	_, _ = g.Submit(q.Answer(), t0.Add(3*time.Second), t0.Add(7*time.Second))
	_ = g.Advance()
	_, _ = g.Timeout(t0.Add(8 * time.Second))

	sum := BuildSummary(g)
	if sum.BestStreak != 2 {
		t.Errorf("BestStreak = %d, want 2", sum.BestStreak)
	}
	if sum.TimedOut != 1 {
		t.Errorf("TimedOut = %d, want 1", sum.TimedOut)
	}
	if sum.AverageSeconds != (2.0+4.0+10.0)/3 {
		t.Errorf("AverageSeconds = %v", sum.AverageSeconds)
	}
	if sum.Duration != 18*time.Second {
		t.Errorf("Duration = %v, want 18s", sum.Duration)
	}
}
