package session

import (
	"context"

	"github.com/vololibero/quizvl/internal/questions"
)

// Picker draws a question from a pool.
type Picker interface {
	PickFrom(ctx context.Context, pool []questions.Question) (questions.Question, error)
}

// Scorer scores and persists an answer.
type Scorer interface {
	Submit(ctx context.Context, q questions.Question, answer int) (bool, error)
}

// SectionState tracks navigation through a section.
type SectionState struct {
	numberOfQuestions int
	questionIndex     int
}

func (s *SectionState) NumberOfQuestions() int { return s.numberOfQuestions }
func (s *SectionState) QuestionIndex() int     { return s.questionIndex }

func (s *SectionState) SetNumberOfQuestions(n int) {
	s.numberOfQuestions = n
}

func (s *SectionState) IncrementQuestionIndex() {
	s.questionIndex++
}

func (s *SectionState) Reset() {
	s.numberOfQuestions = 0
	s.questionIndex = 0
}

// ExamState tracks navigation through an exam.
type ExamState struct {
	ended         bool
	questionIndex int
}

func (s *ExamState) IsEnded() bool      { return s.ended }
func (s *ExamState) QuestionIndex() int { return s.questionIndex }

func (s *ExamState) SetEnded(v bool) {
	s.ended = v
}

func (s *ExamState) IncrementQuestionIndex() {
	s.questionIndex++
}

func (s *ExamState) Reset() {
	s.ended = false
	s.questionIndex = 0
}

// Result records one answered question.
type Result struct {
	Question questions.Question
	Chosen   int
	Correct  bool
}

// tally accumulates results for summaries.
type tally struct {
	results []Result
	correct int
}

func (t *tally) record(q questions.Question, chosen int, correct bool) Result {
	r := Result{Question: q, Chosen: chosen, Correct: correct}
	t.results = append(t.results, r)
	if correct {
		t.correct++
	}
	return r
}

func (t *tally) total() int  { return len(t.results) }
func (t *tally) errors() int { return len(t.results) - t.correct }
