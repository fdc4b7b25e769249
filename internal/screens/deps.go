// Package screens holds what every drill screen shares: the store
// repositories, the effective settings and the current session.
package screens

import (
	"context"
	"log/slog"
	"time"

	"github.com/abhisek/multiz/internal/rewards"
	"github.com/abhisek/multiz/internal/session"
	"github.com/abhisek/multiz/internal/settings"
	"github.com/abhisek/multiz/internal/store"
	"github.com/abhisek/multiz/internal/ui/layout"
)

// Deps is shared by pointer between the screens of one program run.
type Deps struct {
	State   store.StateRepo
	Answers store.AnswerRepo
	Rewards store.RewardRepo
	Builder *session.Builder
	Tracker *rewards.Tracker

	Settings  settings.GameSettings
	SessionID string

	// Game is the in-flight drill, nil when none is running.
	Game *session.Game

	Now func() time.Time
}

// Clock returns the current time.
func (d *Deps) Clock() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Status summarises the session for the header.
func (d *Deps) Status() layout.Status {
	var st layout.Status
	if d.Tracker != nil {
		st.Streak = d.Tracker.Streak()
	}
	if d.Game != nil {
		stats := d.Game.Stats()
		st.Correct = stats.Correct
		st.Answered = stats.AnsweredCount
	}
	return st
}

// HasGameInProgress reports whether a drill can be resumed.
func (d *Deps) HasGameInProgress() bool {
	return d.Game != nil && d.Game.State() == session.InProgress
}

// RecordAnswer appends a to the answer log.
func (d *Deps) RecordAnswer(ctx context.Context, a session.Answer) error {
	if d.Answers == nil {
		return nil
	}
	if err := d.Answers.Append(ctx, a); err != nil {
		slog.Warn("failed to record answer", "answer_id", a.ID, "error", err)
		return err
	}
	return nil
}

// SaveGame persists the in-flight game, or clears it once completed.
func (d *Deps) SaveGame(ctx context.Context) error {
	if d.State == nil {
		return nil
	}
	var err error
	if d.Game == nil || d.Game.IsCompleted() {
		err = d.State.ClearGame(ctx)
	} else {
		err = d.State.SaveGame(ctx, d.Game.Snapshot())
	}
	if err != nil {
		slog.Warn("failed to save game", "session_id", d.SessionID, "error", err)
	}
	return err
}

// NewSession starts a fresh session id. Any in-flight game is dropped and
// the streak resets.
func (d *Deps) NewSession(ctx context.Context) error {
	d.SessionID = session.NewSessionID()
	d.Game = nil
	if d.Tracker != nil {
		d.Tracker.Reset()
	}
	slog.Info("new session", "session_id", d.SessionID)

	if d.State == nil {
		return nil
	}
	if err := d.State.SaveSessionID(ctx, d.SessionID); err != nil {
		slog.Warn("failed to save session id", "error", err)
		return err
	}
	return d.SaveGame(ctx)
}
