package practice

import (
	"errors"
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/vololibero/quizvl/internal/questions"
	"github.com/vololibero/quizvl/internal/store"
)

// DefaultMissedProbability is the chance that a pick is drawn from the
// previously missed questions.
const DefaultMissedProbability = 0.2

// ErrEmptyBank is returned when there is nothing to pick from.
var ErrEmptyBank = errors.New("no questions to pick from")

// Pick draws a question. With probability p it draws uniformly from the
// questions present in errs; if that roll fails or no question is missed it
// draws uniformly from all of qs.
func Pick(qs []questions.Question, errs store.ErrorMap, rng *rand.Rand, p float64) (questions.Question, error) {
	if len(qs) == 0 {
		return questions.Question{}, ErrEmptyBank
	}

	if rng.Float64() < p {
		missed := MissedSubset(qs, errs)
		if len(missed) > 0 {
			return missed[rng.IntN(len(missed))], nil
		}
	}

	return qs[rng.IntN(len(qs))], nil
}

// MissedSubset returns the questions of qs whose id is a key of errs.
func MissedSubset(qs []questions.Question, errs store.ErrorMap) []questions.Question {
	if len(errs) == 0 {
		return nil
	}
	return lo.Filter(qs, func(q questions.Question, _ int) bool {
		_, ok := errs[q.ID]
		return ok
	})
}
