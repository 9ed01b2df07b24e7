package session

import "time"

// Summary holds the data displayed on the summary screen.
type Summary struct {
	Title          string
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	Results        []Result

	// Exam-only fields.
	IsExam    bool
	Passed    bool
	MaxErrors int
}

// Errors returns the number of wrong answers.
func (s *Summary) Errors() int {
	return s.TotalQuestions - s.TotalCorrect
}

// Missed returns the wrongly answered results in answer order.
func (s *Summary) Missed() []Result {
	var out []Result
	for _, r := range s.Results {
		if !r.Correct {
			out = append(out, r)
		}
	}
	return out
}

func buildSummary(title string, t *tally, elapsed time.Duration) *Summary {
	var accuracy float64
	if t.total() > 0 {
		accuracy = float64(t.correct) / float64(t.total())
	}
	results := make([]Result, len(t.results))
	copy(results, t.results)
	return &Summary{
		Title:          title,
		Duration:       elapsed,
		TotalQuestions: t.total(),
		TotalCorrect:   t.correct,
		Accuracy:       accuracy,
		Results:        results,
	}
}
