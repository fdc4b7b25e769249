package rewards

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/multiz/internal/settings"
	"github.com/abhisek/multiz/internal/store"
)

type mockRewardRepo struct {
	events []store.RewardEventData
	err    error
}

func (m *mockRewardRepo) AppendReward(_ context.Context, data store.RewardEventData) error {
	m.events = append(m.events, data)
	return m.err
}

var now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func TestTracker_TriggersAtMultiples(t *testing.T) {
	repo := &mockRewardRepo{}
	tr := NewTracker(settings.RewardPolicy{Type: settings.RewardFireworks, CorrectAnswersThreshold: 3}, repo)
	ctx := context.Background()

	var triggered []int
	for i := 1; i <= 7; i++ {
		if r := tr.Record(ctx, true, "s1", now); r != nil {
			triggered = append(triggered, r.Streak)
		}
	}
	if len(triggered) != 2 || triggered[0] != 3 || triggered[1] != 6 {
		t.Errorf("triggered at %v, want [3 6]", triggered)
	}
	if len(repo.events) != 2 {
		t.Fatalf("persisted %d events, want 2", len(repo.events))
	}
	if repo.events[0].Type != "fireworks" || repo.events[0].SessionID != "s1" {
		t.Errorf("event = %+v", repo.events[0])
	}
	if len(tr.SessionRewards) != 2 {
		t.Errorf("SessionRewards = %d, want 2", len(tr.SessionRewards))
	}
}

func TestTracker_IncorrectResetsStreak(t *testing.T) {
	tr := NewTracker(settings.RewardPolicy{Type: settings.RewardAdorableKitty, CorrectAnswersThreshold: 2}, nil)
	ctx := context.Background()

	tr.Record(ctx, true, "s", now)
	tr.Record(ctx, false, "s", now)
	if tr.Streak() != 0 {
		t.Fatalf("Streak = %d, want 0", tr.Streak())
	}
	if r := tr.Record(ctx, true, "s", now); r != nil {
		t.Error("reward after streak reset at 1")
	}
	if r := tr.Record(ctx, true, "s", now); r == nil {
		t.Error("no reward at streak 2")
	}
	if tr.Best() != 2 {
		t.Errorf("Best = %d, want 2", tr.Best())
	}
}

func TestTracker_NoneNeverTriggers(t *testing.T) {
	repo := &mockRewardRepo{}
	tr := NewTracker(settings.RewardPolicy{Type: settings.RewardNone, CorrectAnswersThreshold: 1}, repo)
	for i := 0; i < 5; i++ {
		if r := tr.Record(context.Background(), true, "s", now); r != nil {
			t.Fatal("reward triggered with type none")
		}
	}
	if tr.Streak() != 5 {
		t.Errorf("Streak = %d, want 5", tr.Streak())
	}
	if len(repo.events) != 0 {
		t.Errorf("persisted %d events", len(repo.events))
	}
	if tr.UntilNext() != 0 {
		t.Errorf("UntilNext = %d, want 0", tr.UntilNext())
	}
}

func TestTracker_ActiveAutoClears(t *testing.T) {
	tr := NewTracker(settings.RewardPolicy{Type: settings.RewardFunnyPicture, CorrectAnswersThreshold: 1}, nil)
	tr.Record(context.Background(), true, "s", now)

	if tr.Active(now.Add(time.Second)) == nil {
		t.Fatal("reward cleared too early")
	}
	if tr.Active(now.Add(DisplayDuration)) != nil {
		t.Error("reward still active after display duration")
	}
	if tr.Active(now) != nil {
		t.Error("cleared reward came back")
	}
}

func TestTracker_ResetAndClear(t *testing.T) {
	tr := NewTracker(settings.RewardPolicy{Type: settings.RewardFireworks, CorrectAnswersThreshold: 2}, nil)
	ctx := context.Background()
	tr.Record(ctx, true, "s", now)
	tr.Record(ctx, true, "s", now)
	tr.Clear()
	if tr.Active(now) != nil {
		t.Error("Clear did not dismiss reward")
	}

	tr.Record(ctx, true, "s", now)
	tr.Reset()
	if tr.Streak() != 0 || tr.Best() != 0 || tr.SessionRewards != nil {
		t.Errorf("after Reset: streak=%d best=%d rewards=%v", tr.Streak(), tr.Best(), tr.SessionRewards)
	}
	if tr.UntilNext() != 2 {
		t.Errorf("UntilNext = %d, want 2", tr.UntilNext())
	}
}

func TestTracker_PersistErrorDoesNotBlockReward(t *testing.T) {
	repo := &mockRewardRepo{err: errors.New("disk full")}
	tr := NewTracker(settings.RewardPolicy{Type: settings.RewardFireworks, CorrectAnswersThreshold: 1}, repo)
	if r := tr.Record(context.Background(), true, "s", now); r == nil {
		t.Error("reward not returned when persistence fails")
	}
}

func TestArtAndLabels(t *testing.T) {
	for _, rt := range settings.AllRewardTypes {
		if DisplayName(rt) == "" || Icon(rt) == "" {
			t.Errorf("missing label for %q", rt)
		}
		if rt != settings.RewardNone && len(Art(rt)) == 0 {
			t.Errorf("missing art for %q", rt)
		}
	}
	if Art(settings.RewardNone) != nil {
		t.Error("none should have no art")
	}
}
