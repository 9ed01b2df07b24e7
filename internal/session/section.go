package session

import (
	"context"
	"fmt"
	"time"

	"github.com/vololibero/quizvl/internal/questions"
	"github.com/vololibero/quizvl/internal/store"
)

// SectionRun walks every question of one section once. Answering the last
// question marks the section completed.
type SectionRun struct {
	section   questions.SectionNumber
	questions []questions.Question
	state     SectionState
	scorer    Scorer
	repo      store.SectionRepo
	tally     tally
	start     time.Time
	now       func() time.Time
}

// NewSectionRun creates a run over qs, which are served in the given order.
func NewSectionRun(section questions.SectionNumber, qs []questions.Question, scorer Scorer, repo store.SectionRepo) (*SectionRun, error) {
	if !section.Valid() {
		return nil, questions.ErrSectionNotFound
	}
	if len(qs) == 0 {
		return nil, fmt.Errorf("section %s has no questions", section)
	}
	r := &SectionRun{
		section:   section,
		questions: qs,
		scorer:    scorer,
		repo:      repo,
		start:     time.Now(),
		now:       time.Now,
	}
	r.state.SetNumberOfQuestions(len(qs))
	return r, nil
}

// Section returns the section being run.
func (r *SectionRun) Section() questions.SectionNumber { return r.section }

// Len returns the number of questions in the run.
func (r *SectionRun) Len() int { return len(r.questions) }

// State exposes the navigation state.
func (r *SectionRun) State() *SectionState { return &r.state }

// Current returns the question at the current index.
func (r *SectionRun) Current() (questions.Question, bool) {
	if r.Done() {
		return questions.Question{}, false
	}
	return r.questions[r.state.QuestionIndex()], true
}

// Done reports whether every question has been answered.
func (r *SectionRun) Done() bool {
	return r.state.QuestionIndex() >= r.state.NumberOfQuestions()
}

// Answer scores the current question and advances. After the last question
// the section is marked completed.
func (r *SectionRun) Answer(ctx context.Context, answer int) (Result, error) {
	q, ok := r.Current()
	if !ok {
		return Result{}, ErrNoQuestion
	}
	correct, err := r.scorer.Submit(ctx, q, answer)
	if err != nil {
		return Result{}, err
	}
	res := r.tally.record(q, answer, correct)
	r.state.IncrementQuestionIndex()

	if r.Done() {
		if err := r.repo.Complete(ctx, r.section.Key()); err != nil {
			return res, fmt.Errorf("complete section %s: %w", r.section.Key(), err)
		}
	}
	return res, nil
}

// Summary summarizes the run so far.
func (r *SectionRun) Summary() *Summary {
	return buildSummary(r.section.Name(), &r.tally, r.now().Sub(r.start))
}
