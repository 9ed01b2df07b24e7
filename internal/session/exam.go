package session

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/vololibero/quizvl/internal/questions"
)

// maxRedraws bounds how often a duplicate pick is redrawn before falling
// back to the first unused question.
const maxRedraws = 20

// ExamConfig configures an exam.
type ExamConfig struct {
	Questions int
	MaxErrors int
}

// Exam is a fixed-length run of distinct questions.
type Exam struct {
	cfg       ExamConfig
	questions []questions.Question
	state     ExamState
	scorer    Scorer
	tally     tally
	start     time.Time
	now       func() time.Time
}

// NewExam draws cfg.Questions distinct questions from pool via picker. If the
// pool is smaller, every pool question is used.
func NewExam(ctx context.Context, picker Picker, scorer Scorer, pool []questions.Question, cfg ExamConfig) (*Exam, error) {
	if cfg.Questions <= 0 {
		return nil, fmt.Errorf("exam needs at least one question, got %d", cfg.Questions)
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("exam pool is empty")
	}
	n := min(cfg.Questions, len(pool))

	chosen := make([]questions.Question, 0, n)
	used := make(map[string]bool, n)
	for len(chosen) < n {
		var (
			q   questions.Question
			err error
		)
		for attempt := 0; attempt <= maxRedraws; attempt++ {
			q, err = picker.PickFrom(ctx, pool)
			if err != nil {
				return nil, fmt.Errorf("pick exam question: %w", err)
			}
			if !used[q.ID] {
				break
			}
		}
		if used[q.ID] {
			q, _ = lo.Find(pool, func(c questions.Question) bool { return !used[c.ID] })
		}
		used[q.ID] = true
		chosen = append(chosen, q)
	}

	return &Exam{
		cfg:       cfg,
		questions: chosen,
		scorer:    scorer,
		start:     time.Now(),
		now:       time.Now,
	}, nil
}

// Len returns the number of questions in the exam.
func (e *Exam) Len() int { return len(e.questions) }

// State exposes the navigation state.
func (e *Exam) State() *ExamState { return &e.state }

// Current returns the question at the current index.
func (e *Exam) Current() (questions.Question, bool) {
	if e.Ended() {
		return questions.Question{}, false
	}
	return e.questions[e.state.QuestionIndex()], true
}

// Ended reports whether the exam is over, either finished or stopped.
func (e *Exam) Ended() bool {
	return e.state.IsEnded() || e.state.QuestionIndex() >= len(e.questions)
}

// Answer scores the current question and advances. The exam ends after the
// last question.
func (e *Exam) Answer(ctx context.Context, answer int) (Result, error) {
	q, ok := e.Current()
	if !ok {
		return Result{}, ErrNoQuestion
	}
	correct, err := e.scorer.Submit(ctx, q, answer)
	if err != nil {
		return Result{}, err
	}
	res := e.tally.record(q, answer, correct)
	e.state.IncrementQuestionIndex()
	if e.state.QuestionIndex() >= len(e.questions) {
		e.state.SetEnded(true)
	}
	return res, nil
}

// Stop ends the exam early.
func (e *Exam) Stop() {
	e.state.SetEnded(true)
}

// Errors returns the number of wrong answers so far.
func (e *Exam) Errors() int { return e.tally.errors() }

// Passed reports whether every question was answered within the error limit.
func (e *Exam) Passed() bool {
	return e.tally.total() == len(e.questions) && e.tally.errors() <= e.cfg.MaxErrors
}

// Summary summarizes the exam.
func (e *Exam) Summary() *Summary {
	s := buildSummary("Exam", &e.tally, e.now().Sub(e.start))
	s.IsExam = true
	s.Passed = e.Passed()
	s.MaxErrors = e.cfg.MaxErrors
	return s
}
