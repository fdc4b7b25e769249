package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/abhisek/multiz/internal/equation"
	"github.com/abhisek/multiz/internal/session"
)

var answerColumns = []string{
	"sequence", "id", "first_factor", "second_factor", "product", "unknown",
	"value", "outcome", "started_at", "finished_at", "session_id", "ignored",
}

type answerRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *answerRepo) Append(ctx context.Context, a session.Answer) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	query, args := insertAnswer(seqNum, a).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save answer: %w", err)
	}
	return nil
}

func insertAnswer(seqNum int64, a session.Answer) *entsql.InsertBuilder {
	q := a.Question
	return sqlite.Insert("answers").
		Columns(answerColumns...).
		Values(
			seqNum, a.ID, q.FirstFactor, q.SecondFactor, q.Product, string(q.Unknown),
			a.Value, string(a.Outcome), a.StartedAt.UnixMilli(), a.FinishedAt.UnixMilli(),
			a.SessionID, a.IgnoredForStats,
		)
}

func (r *answerRepo) All(ctx context.Context) ([]session.Answer, error) {
	query, args := sqlite.Select(answerColumns...).
		From(sqlite.Table("answers")).
		OrderBy(entsql.Asc("sequence")).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var answers []session.Answer
	for rows.Next() {
		var (
			seqNum                int64
			a                     session.Answer
			unknown, outcome      string
			startedAt, finishedAt int64
		)
		err := rows.Scan(
			&seqNum, &a.ID,
			&a.Question.FirstFactor, &a.Question.SecondFactor, &a.Question.Product, &unknown,
			&a.Value, &outcome, &startedAt, &finishedAt, &a.SessionID, &a.IgnoredForStats,
		)
		if err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		a.Question.Unknown = equation.Role(unknown)
		a.Outcome = session.Outcome(outcome)
		a.StartedAt = time.UnixMilli(startedAt)
		a.FinishedAt = time.UnixMilli(finishedAt)
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answers: %w", err)
	}
	return answers, nil
}

func (r *answerRepo) SetIgnored(ctx context.Context, id string, ignored bool) error {
	query, args := sqlite.Update("answers").
		Set("ignored", ignored).
		Where(entsql.EQ("id", id)).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update answer %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update answer %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("answer %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *answerRepo) ReplaceAll(ctx context.Context, answers []session.Answer) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	query, args := sqlite.Delete("answers").Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear answers: %w", err)
	}
	for i, a := range answers {
		seqNum, err := r.seq.NextTx(ctx, tx)
		if err != nil {
			return err
		}
		query, args := insertAnswer(seqNum, a).Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert answer %d: %w", i, err)
		}
	}
	return tx.Commit()
}
