package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const answerEventsTable = "answer_events"

// eventRepo implements EventRepo using ent's SQL builder.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *eventRepo) builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	correct := 0
	if data.Correct {
		correct = 1
	}

	query, args := r.builder().Insert(answerEventsTable).
		Columns("sequence", "timestamp", "session_id", "mode", "question_id", "section", "chosen", "correct").
		Values(seqNum, time.Now().UnixMilli(), data.SessionID, data.Mode, data.QuestionID, data.Section, data.Chosen, correct).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) SectionAccuracy(ctx context.Context) ([]SectionAccuracy, error) {
	b := r.builder()
	query, args := b.Select(
		"section",
		entsql.As(entsql.Count("*"), "attempts"),
		entsql.As(entsql.Sum("correct"), "correct_count"),
	).
		From(b.Table(answerEventsTable)).
		GroupBy("section").
		OrderBy("section").
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query section accuracy: %w", err)
	}
	defer rows.Close()

	var out []SectionAccuracy
	for rows.Next() {
		var a SectionAccuracy
		if err := rows.Scan(&a.Section, &a.Attempts, &a.Correct); err != nil {
			return nil, fmt.Errorf("scan section accuracy: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *eventRepo) RecentAnswers(ctx context.Context, limit int) ([]AnswerEventRecord, error) {
	b := r.builder()
	sel := b.Select("sequence", "timestamp", "session_id", "mode", "question_id", "section", "chosen", "correct").
		From(b.Table(answerEventsTable)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var out []AnswerEventRecord
	for rows.Next() {
		var (
			rec     AnswerEventRecord
			tsMs    int64
			correct int
		)
		err := rows.Scan(&rec.Sequence, &tsMs, &rec.SessionID, &rec.Mode,
			&rec.QuestionID, &rec.Section, &rec.Chosen, &correct)
		if err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		rec.Timestamp = time.UnixMilli(tsMs).UTC()
		rec.Correct = correct != 0
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *eventRepo) Reset(ctx context.Context) error {
	query, args := r.builder().Delete(answerEventsTable).Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("reset answer events: %w", err)
	}
	return nil
}
