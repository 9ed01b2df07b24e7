package practice

import (
	"strconv"
	"strings"

	"github.com/vololibero/quizvl/internal/store"
)

// missPenalty is added to a question's miss count on a wrong answer.
const missPenalty = 2

// MissCount returns the miss count stored for id. Absent or non-integer
// values count as zero, so a hand-edited "1.5" is left alone by a correct
// answer and replaced by "2" on a wrong one. Negative integers are kept.
func MissCount(errs store.ErrorMap, id string) int {
	raw, ok := errs[id]
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// ApplyAnswer updates errs in place for an answer to question id.
// A correct answer lowers a non-zero count by one, removing the entry when it
// reaches zero. A wrong answer raises the count by two.
func ApplyAnswer(errs store.ErrorMap, id string, correct bool) {
	tries := MissCount(errs, id)

	if !correct {
		errs[id] = strconv.Itoa(tries + missPenalty)
		return
	}

	switch {
	case tries == 0:
	case tries == 1:
		delete(errs, id)
	default:
		errs[id] = strconv.Itoa(tries - 1)
	}
}
