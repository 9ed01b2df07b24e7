package play

import (
	"context"

	"github.com/vololibero/quizvl/internal/questions"
	"github.com/vololibero/quizvl/internal/session"
)

// Run is the part of a quiz, section run or exam the screen drives.
type Run interface {
	Current() (questions.Question, bool)
	Answer(ctx context.Context, answer int) (session.Result, error)
	Summary() *session.Summary
}

// nexter is implemented by endless runs that draw on demand.
type nexter interface {
	Next(ctx context.Context) (questions.Question, error)
}

// sized is implemented by runs with a fixed number of questions.
type sized interface {
	Len() int
}

// stopper is implemented by runs that must be told they were abandoned.
type stopper interface {
	Stop()
}
