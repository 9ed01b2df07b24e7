package store

import (
	"context"
	"fmt"
	"sync"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const sequenceTable = "global_sequence"

// sequenceCounter hands out the monotonic sequence numbers of the answer log.
// Reads and bumps happen in one transaction; the mutex serializes callers.
type sequenceCounter struct {
	mu  sync.Mutex
	drv *entsql.Driver
}

func newSequenceCounter(ctx context.Context, drv *entsql.Driver) (*sequenceCounter, error) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS global_sequence (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			next_val INTEGER NOT NULL DEFAULT 1
		)`,
		`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`,
	}
	for _, stmt := range stmts {
		if err := drv.Exec(ctx, stmt, []any{}, nil); err != nil {
			return nil, fmt.Errorf("init sequence: %w", err)
		}
	}
	return &sequenceCounter{drv: drv}, nil
}

// Next returns the current value and advances the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	tx, err := sc.drv.Tx(ctx)
	if err != nil {
		return 0, err
	}

	seq, err := readSequence(ctx, tx)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Update(sequenceTable).
		Set("next_val", seq+1).
		Where(entsql.EQ("id", 1)).
		Query()
	if err := tx.Exec(ctx, query, args, nil); err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("bump sequence: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return seq, nil
}

func readSequence(ctx context.Context, q dialect.ExecQuerier) (int64, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select("next_val").
		From(b.Table(sequenceTable)).
		Where(entsql.EQ("id", 1)).
		Query()

	rows := &entsql.Rows{}
	if err := q.Query(ctx, query, args, rows); err != nil {
		return 0, fmt.Errorf("read sequence: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("read sequence: counter row missing")
	}
	var seq int64
	if err := rows.Scan(&seq); err != nil {
		return 0, fmt.Errorf("scan sequence: %w", err)
	}
	return seq, nil
}
