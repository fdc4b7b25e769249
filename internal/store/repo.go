package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/multiz/internal/session"
	"github.com/abhisek/multiz/internal/settings"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// StateRepo persists the host state that survives restarts: the settings,
// the current session id and the in-flight game.
type StateRepo interface {
	// LoadSettings returns the saved settings, or nil if none were saved.
	LoadSettings(ctx context.Context) (*settings.GameSettings, error)
	SaveSettings(ctx context.Context, s settings.GameSettings) error

	// LoadSessionID returns the persisted session id, or "" if none exists.
	LoadSessionID(ctx context.Context) (string, error)
	SaveSessionID(ctx context.Context, id string) error

	// LoadGame returns the in-flight game snapshot, or nil if none exists.
	LoadGame(ctx context.Context) (*session.Snapshot, error)
	SaveGame(ctx context.Context, snap *session.Snapshot) error
	ClearGame(ctx context.Context) error
}

// AnswerRepo is the append-only answer log.
type AnswerRepo interface {
	// Append records one answer.
	Append(ctx context.Context, a session.Answer) error

	// All returns every answer in recorded order.
	All(ctx context.Context) ([]session.Answer, error)

	// SetIgnored toggles whether an answer counts toward statistics.
	// Returns ErrNotFound for an unknown id.
	SetIgnored(ctx context.Context, id string, ignored bool) error

	// ReplaceAll swaps the whole log for answers, in order.
	ReplaceAll(ctx context.Context, answers []session.Answer) error
}

// RewardEventData captures a triggered streak reward.
type RewardEventData struct {
	Type      string
	Streak    int
	SessionID string
	Timestamp time.Time
}

// RewardEventRecord is a persisted reward event.
type RewardEventRecord struct {
	Sequence int64
	RewardEventData
}

// RewardAppender records a triggered reward.
type RewardAppender interface {
	AppendReward(ctx context.Context, data RewardEventData) error
}

// RewardRepo records and reads back streak rewards.
type RewardRepo interface {
	RewardAppender

	// QueryRewards returns reward events, most recent first.
	QueryRewards(ctx context.Context, opts QueryOpts) ([]RewardEventRecord, error)

	// RewardCounts returns counts grouped by reward type, and the total.
	RewardCounts(ctx context.Context) (map[string]int, int, error)
}
