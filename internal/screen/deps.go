package screen

import (
	"log/slog"

	"github.com/vololibero/quizvl/internal/practice"
	"github.com/vololibero/quizvl/internal/questions"
	"github.com/vololibero/quizvl/internal/session"
	"github.com/vololibero/quizvl/internal/store"
)

// Deps carries the services shared by the screens.
type Deps struct {
	Practice *practice.Service
	Answers  store.AnswerRepo
	Sections store.SectionRepo
	Settings store.SettingsRepo
	Events   store.EventRepo
	Exam     session.ExamConfig
	Log      *slog.Logger
}

// Bank returns the question bank the practice service draws from.
func (d *Deps) Bank() *questions.Bank {
	return d.Practice.Bank()
}

// SettingsChangedMsg is broadcast after a settings flag is stored.
type SettingsChangedMsg struct {
	Settings store.Settings
}
