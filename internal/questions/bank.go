package questions

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

//go:embed bank.json
var bankJSON []byte

//go:embed bank.schema.json
var schemaJSON []byte

// ErrQuestionNotFound is returned when a question id is not in the bank.
var ErrQuestionNotFound = errors.New("question not found")

// Bank is an immutable, indexed set of questions.
type Bank struct {
	questions []Question
	byID      map[string]int
	bySection map[SectionNumber][]Question
}

var (
	defaultOnce sync.Once
	defaultBank *Bank
	defaultErr  error
)

// Default returns the embedded question bank. It is parsed and validated once.
func Default() (*Bank, error) {
	defaultOnce.Do(func() {
		defaultBank, defaultErr = parseBank(bankJSON)
	})
	return defaultBank, defaultErr
}

// LoadBank reads, validates and indexes a bank file.
func LoadBank(r io.Reader) (*Bank, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}
	return parseBank(raw)
}

func parseBank(raw []byte) (*Bank, error) {
	if err := ValidateJSON(raw); err != nil {
		return nil, err
	}
	var qs []Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	return NewBank(qs)
}

// NewBank indexes qs. Ids must be unique and each question's section label
// must match the section encoded in its id.
func NewBank(qs []Question) (*Bank, error) {
	b := &Bank{
		questions: slices.Clone(qs),
		byID:      make(map[string]int, len(qs)),
		bySection: make(map[SectionNumber][]Question),
	}
	for i, q := range b.questions {
		if _, dup := b.byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		if !ValidAnswer(q.CorrectAnswerIndex) {
			return nil, fmt.Errorf("question %s: correct answer index %d out of range", q.ID, q.CorrectAnswerIndex)
		}
		n := q.SectionNumber()
		if !n.Valid() {
			return nil, fmt.Errorf("question %s: %w", q.ID, ErrSectionNotFound)
		}
		if q.Section != n.Name() {
			return nil, fmt.Errorf("question %s: section %q does not match id (want %q)", q.ID, q.Section, n.Name())
		}
		b.byID[q.ID] = i
		b.bySection[n] = append(b.bySection[n], q)
	}
	return b, nil
}

// All returns every question in bank order.
func (b *Bank) All() []Question {
	return slices.Clone(b.questions)
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// ByID looks up a question by id.
func (b *Bank) ByID(id string) (Question, error) {
	i, ok := b.byID[id]
	if !ok {
		return Question{}, fmt.Errorf("%s: %w", id, ErrQuestionNotFound)
	}
	return b.questions[i], nil
}

// Has reports whether id is in the bank.
func (b *Bank) Has(id string) bool {
	_, ok := b.byID[id]
	return ok
}

// BySection returns the questions of section n in bank order.
func (b *Bank) BySection(n SectionNumber) []Question {
	return slices.Clone(b.bySection[n])
}

// Sections returns the sections that have at least one question.
func (b *Bank) Sections() []SectionNumber {
	return lo.Filter(AllSections(), func(n SectionNumber, _ int) bool {
		return len(b.bySection[n]) > 0
	})
}

// Search returns questions whose text or answers contain term,
// case-insensitively. An empty term matches nothing.
func (b *Bank) Search(term string) []Question {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	return lo.Filter(b.questions, func(q Question, _ int) bool {
		if strings.Contains(strings.ToLower(q.Text), term) {
			return true
		}
		for _, a := range q.Answers {
			if strings.Contains(strings.ToLower(a), term) {
				return true
			}
		}
		return false
	})
}
