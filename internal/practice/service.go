package practice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vololibero/quizvl/internal/questions"
	"github.com/vololibero/quizvl/internal/store"
)

// ErrInvalidAnswer is returned for answer indexes outside the answer range.
var ErrInvalidAnswer = errors.New("invalid answer index")

// Mode tags answer events with the activity that produced them.
type Mode string

const (
	ModeQuiz    Mode = "quiz"
	ModeSection Mode = "section"
	ModeExam    Mode = "exam"
)

// Service picks questions and scores answers against the persisted error map.
type Service struct {
	bank    *questions.Bank
	answers store.AnswerRepo
	events  store.EventRepo
	rng     *lockedRand
	missedP float64
	log     *slog.Logger

	sessionID string
	mode      Mode
}

// Option configures a Service.
type Option func(*Service)

// WithRand sets the random source. Tests use a seeded source.
func WithRand(r *rand.Rand) Option {
	return func(s *Service) { s.rng = &lockedRand{r: r} }
}

// WithMissedProbability overrides DefaultMissedProbability.
func WithMissedProbability(p float64) Option {
	return func(s *Service) { s.missedP = p }
}

// WithEventRepo records every submitted answer in repo.
func WithEventRepo(repo store.EventRepo) Option {
	return func(s *Service) { s.events = repo }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService creates a Service over bank, persisting miss counts in answers.
func NewService(bank *questions.Bank, answers store.AnswerRepo, opts ...Option) *Service {
	s := &Service{
		bank:    bank,
		answers: answers,
		missedP: DefaultMissedProbability,
		mode:    ModeQuiz,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		s.rng = &lockedRand{r: rand.New(rand.NewPCG(seed, seed>>1|1))}
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.sessionID == "" {
		s.sessionID = uuid.NewString()
	}
	return s
}

// Session returns a copy of s whose answer events carry a fresh session id
// and the given mode. The copy shares the bank, repositories and random source.
func (s *Service) Session(mode Mode) *Service {
	c := *s
	c.sessionID = uuid.NewString()
	c.mode = mode
	return &c
}

// SessionID returns the id attached to answer events.
func (s *Service) SessionID() string {
	return s.sessionID
}

// Bank returns the question bank.
func (s *Service) Bank() *questions.Bank {
	return s.bank
}

// Pick draws a question from the whole bank, biased toward missed questions.
func (s *Service) Pick(ctx context.Context) (questions.Question, error) {
	return s.PickFrom(ctx, s.bank.All())
}

// PickFrom draws a question from pool, biased toward missed questions.
func (s *Service) PickFrom(ctx context.Context, pool []questions.Question) (questions.Question, error) {
	errs, err := s.answers.Load(ctx)
	if err != nil {
		return questions.Question{}, fmt.Errorf("load answers: %w", err)
	}
	var q questions.Question
	s.rng.with(func(r *rand.Rand) {
		q, err = Pick(pool, errs, r, s.missedP)
	})
	return q, err
}

// Shuffle returns qs in random order.
func (s *Service) Shuffle(qs []questions.Question) []questions.Question {
	out := make([]questions.Question, len(qs))
	copy(out, qs)
	s.rng.with(func(r *rand.Rand) {
		r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	})
	return out
}

// Submit scores answer for q, persists the updated miss count and records an
// answer event. It reports whether the answer was correct.
func (s *Service) Submit(ctx context.Context, q questions.Question, answer int) (bool, error) {
	if !questions.ValidAnswer(answer) {
		return false, fmt.Errorf("%d: %w", answer, ErrInvalidAnswer)
	}

	errs, err := s.answers.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load answers: %w", err)
	}

	correct := q.IsCorrect(answer)
	ApplyAnswer(errs, q.ID, correct)

	if err := s.answers.Save(ctx, errs); err != nil {
		return correct, fmt.Errorf("save answers: %w", err)
	}

	s.log.Debug("answer submitted",
		"question_id", q.ID,
		"answer", answer,
		"correct", correct,
		"miss_count", MissCount(errs, q.ID),
		"mode", s.mode,
	)

	if s.events != nil {
		err := s.events.AppendAnswer(ctx, store.AnswerEventData{
			SessionID:  s.sessionID,
			Mode:       string(s.mode),
			QuestionID: q.ID,
			Section:    int(q.SectionNumber()),
			Chosen:     answer,
			Correct:    correct,
		})
		if err != nil {
			s.log.Warn("error recording answer event", "error", err, "question_id", q.ID)
		}
	}

	return correct, nil
}

// MissedQuestion pairs a question with its current miss count.
type MissedQuestion struct {
	Question  questions.Question
	MissCount int
}

// Missed returns the bank questions with a stored miss count, highest count
// first. Entries for ids not in the bank are ignored.
func (s *Service) Missed(ctx context.Context) ([]MissedQuestion, error) {
	errs, err := s.answers.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}

	out := make([]MissedQuestion, 0, len(errs))
	for _, q := range MissedSubset(s.bank.All(), errs) {
		out = append(out, MissedQuestion{Question: q, MissCount: MissCount(errs, q.ID)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MissCount != out[j].MissCount {
			return out[i].MissCount > out[j].MissCount
		}
		return out[i].Question.ID < out[j].Question.ID
	})
	return out, nil
}

// MissedBySection counts missed questions per section.
func (s *Service) MissedBySection(ctx context.Context) (map[questions.SectionNumber]int, error) {
	missed, err := s.Missed(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[questions.SectionNumber]int)
	for _, m := range missed {
		counts[m.Question.SectionNumber()]++
	}
	return counts, nil
}

// lockedRand guards a *rand.Rand, which is not safe for concurrent use.
// Bubble Tea commands run off the UI goroutine.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) with(fn func(*rand.Rand)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.r)
}
