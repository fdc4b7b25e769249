package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

type rewardRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *rewardRepo) AppendReward(ctx context.Context, data RewardEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	ts := data.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	query, args := sqlite.Insert("reward_events").
		Columns("sequence", "reward_type", "streak", "session_id", "timestamp").
		Values(seqNum, data.Type, data.Streak, data.SessionID, ts.UnixMilli()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save reward event: %w", err)
	}
	return nil
}

func (r *rewardRepo) QueryRewards(ctx context.Context, opts QueryOpts) ([]RewardEventRecord, error) {
	sel := sqlite.Select("sequence", "reward_type", "streak", "session_id", "timestamp").
		From(sqlite.Table("reward_events")).
		OrderBy(entsql.Desc("sequence"))

	var preds []*entsql.Predicate
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("timestamp", opts.From.UnixMilli()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE("timestamp", opts.To.UnixMilli()))
	}
	if len(preds) > 0 {
		sel = sel.Where(entsql.And(preds...))
	}
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reward events: %w", err)
	}
	defer rows.Close()

	var records []RewardEventRecord
	for rows.Next() {
		var (
			rec RewardEventRecord
			ts  int64
		)
		if err := rows.Scan(&rec.Sequence, &rec.Type, &rec.Streak, &rec.SessionID, &ts); err != nil {
			return nil, fmt.Errorf("scan reward event: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *rewardRepo) RewardCounts(ctx context.Context) (map[string]int, int, error) {
	query, args := sqlite.Select("reward_type", entsql.Count("*")).
		From(sqlite.Table("reward_events")).
		GroupBy("reward_type").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count reward events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	total := 0
	for rows.Next() {
		var (
			typ string
			n   int
		)
		if err := rows.Scan(&typ, &n); err != nil {
			return nil, 0, fmt.Errorf("scan reward count: %w", err)
		}
		counts[typ] = n
		total += n
	}
	return counts, total, rows.Err()
}
