package play

import (
	"github.com/vololibero/quizvl/internal/questions"
	"github.com/vololibero/quizvl/internal/session"
)

// runReadyMsg is sent when the run has been built.
type runReadyMsg struct {
	Run Run
	Err error
}

// nextReadyMsg is sent when the next quiz question has been drawn.
type nextReadyMsg struct {
	Question questions.Question
	Err      error
}

// answerScoredMsg is sent when an answer has been scored and persisted.
type answerScoredMsg struct {
	Result session.Result
	Err    error
}
