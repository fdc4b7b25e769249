package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/abhisek/multiz/internal/session"
	"github.com/abhisek/multiz/internal/settings"
)

// Keys in the kv table.
const (
	KeySettings    = "settings"
	KeySessionID   = "session_id"
	KeyCurrentGame = "current_game"
)

type stateRepo struct {
	db *sql.DB
}

func (r *stateRepo) LoadSettings(ctx context.Context) (*settings.GameSettings, error) {
	var s settings.GameSettings
	ok, err := r.get(ctx, KeySettings, &s)
	if err != nil || !ok {
		return nil, err
	}
	return &s, nil
}

func (r *stateRepo) SaveSettings(ctx context.Context, s settings.GameSettings) error {
	return r.put(ctx, KeySettings, s)
}

func (r *stateRepo) LoadSessionID(ctx context.Context) (string, error) {
	var id string
	if _, err := r.get(ctx, KeySessionID, &id); err != nil {
		return "", err
	}
	return id, nil
}

func (r *stateRepo) SaveSessionID(ctx context.Context, id string) error {
	return r.put(ctx, KeySessionID, id)
}

func (r *stateRepo) LoadGame(ctx context.Context) (*session.Snapshot, error) {
	var snap session.Snapshot
	ok, err := r.get(ctx, KeyCurrentGame, &snap)
	if err != nil || !ok {
		return nil, err
	}
	return &snap, nil
}

func (r *stateRepo) SaveGame(ctx context.Context, snap *session.Snapshot) error {
	if snap == nil {
		return r.ClearGame(ctx)
	}
	return r.put(ctx, KeyCurrentGame, snap)
}

func (r *stateRepo) ClearGame(ctx context.Context) error {
	query, args := sqlite.Delete("kv").Where(entsql.EQ("key", KeyCurrentGame)).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear game: %w", err)
	}
	return nil
}

// get decodes the JSON value stored under key into v. It reports false when
// the key is absent.
func (r *stateRepo) get(ctx context.Context, key string, v any) (bool, error) {
	query, args := sqlite.Select("value").
		From(sqlite.Table("kv")).
		Where(entsql.EQ("key", key)).
		Query()

	var raw string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (r *stateRepo) put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	query, args := sqlite.Insert("kv").
		Columns("key", "value", "updated_at").
		Values(key, string(raw), time.Now().UnixMilli()).
		OnConflict(entsql.ConflictColumns("key"), entsql.ResolveWithNewValues()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
