package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vololibero/quizvl/internal/questions"
)

// ErrNoQuestion is returned when answering with no question on display.
var ErrNoQuestion = errors.New("no current question")

// Quiz serves an endless stream of weighted picks from a pool.
type Quiz struct {
	picker  Picker
	scorer  Scorer
	pool    []questions.Question
	current *questions.Question
	tally   tally
	start   time.Time
	now     func() time.Time
}

// NewQuiz creates a quiz over pool.
func NewQuiz(picker Picker, scorer Scorer, pool []questions.Question) *Quiz {
	return &Quiz{
		picker: picker,
		scorer: scorer,
		pool:   pool,
		start:  time.Now(),
		now:    time.Now,
	}
}

// Next draws the next question and makes it current.
func (q *Quiz) Next(ctx context.Context) (questions.Question, error) {
	next, err := q.picker.PickFrom(ctx, q.pool)
	if err != nil {
		return questions.Question{}, fmt.Errorf("pick question: %w", err)
	}
	q.current = &next
	return next, nil
}

// Current returns the question on display.
func (q *Quiz) Current() (questions.Question, bool) {
	if q.current == nil {
		return questions.Question{}, false
	}
	return *q.current, true
}

// Answer scores answer for the current question. The question stays current
// until Next is called.
func (q *Quiz) Answer(ctx context.Context, answer int) (Result, error) {
	if q.current == nil {
		return Result{}, ErrNoQuestion
	}
	correct, err := q.scorer.Submit(ctx, *q.current, answer)
	if err != nil {
		return Result{}, err
	}
	r := q.tally.record(*q.current, answer, correct)
	q.current = nil
	return r, nil
}

// Answered returns the number of answered questions.
func (q *Quiz) Answered() int { return q.tally.total() }

// Correct returns the number of correct answers.
func (q *Quiz) Correct() int { return q.tally.correct }

// Summary summarizes the quiz so far.
func (q *Quiz) Summary() *Summary {
	return buildSummary("Quiz", &q.tally, q.now().Sub(q.start))
}
