package rewards

import (
	"context"
	"log/slog"
	"time"

	"github.com/abhisek/multiz/internal/settings"
	"github.com/abhisek/multiz/internal/store"
)

// Tracker counts consecutive correct answers and triggers the configured
// reward at every multiple of the threshold.
type Tracker struct {
	policy settings.RewardPolicy
	repo   store.RewardAppender

	streak int
	best   int
	active *Reward

	// SessionRewards accumulates rewards triggered during the current session.
	SessionRewards []Reward
}

// NewTracker creates a Tracker. repo may be nil.
func NewTracker(policy settings.RewardPolicy, repo store.RewardAppender) *Tracker {
	return &Tracker{policy: policy, repo: repo}
}

// SetPolicy swaps the reward policy without touching the streak.
func (t *Tracker) SetPolicy(policy settings.RewardPolicy) {
	t.policy = policy
}

// Record updates the streak with one resolved question and returns the
// reward it triggered, if any.
func (t *Tracker) Record(ctx context.Context, correct bool, sessionID string, now time.Time) *Reward {
	if !correct {
		t.streak = 0
		return nil
	}
	t.streak++
	t.best = max(t.best, t.streak)

	if t.policy.Type == settings.RewardNone || t.policy.Type == "" {
		return nil
	}
	if t.policy.CorrectAnswersThreshold <= 0 || t.streak%t.policy.CorrectAnswersThreshold != 0 {
		return nil
	}

	r := Reward{
		Type:        t.policy.Type,
		Streak:      t.streak,
		SessionID:   sessionID,
		TriggeredAt: now,
	}
	t.active = &r
	t.SessionRewards = append(t.SessionRewards, r)
	slog.Info("reward triggered", "type", r.Type, "streak", r.Streak, "session_id", sessionID)
	t.persist(ctx, r)
	return &r
}

// Active returns the reward currently on display, clearing it once its
// display duration has passed.
func (t *Tracker) Active(now time.Time) *Reward {
	if t.active != nil && !now.Before(t.active.ExpiresAt()) {
		t.active = nil
	}
	return t.active
}

// Clear dismisses the active reward.
func (t *Tracker) Clear() {
	t.active = nil
}

// Reset starts a new session: the streak and accumulated rewards are
// cleared.
func (t *Tracker) Reset() {
	t.streak = 0
	t.best = 0
	t.active = nil
	t.SessionRewards = nil
}

// Streak returns the current run of correct answers.
func (t *Tracker) Streak() int { return t.streak }

// Best returns the longest streak since the last Reset.
func (t *Tracker) Best() int { return t.best }

// UntilNext returns how many more correct answers trigger the next reward,
// or 0 when rewards are off.
func (t *Tracker) UntilNext() int {
	th := t.policy.CorrectAnswersThreshold
	if t.policy.Type == settings.RewardNone || th <= 0 {
		return 0
	}
	return th - t.streak%th
}

func (t *Tracker) persist(ctx context.Context, r Reward) {
	if t.repo == nil {
		return
	}
	err := t.repo.AppendReward(ctx, store.RewardEventData{
		Type:      string(r.Type),
		Streak:    r.Streak,
		SessionID: r.SessionID,
		Timestamp: r.TriggeredAt,
	})
	if err != nil {
		slog.Warn("persist reward", "error", err)
	}
}
