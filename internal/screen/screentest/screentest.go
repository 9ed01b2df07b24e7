// Package screentest builds screen dependencies backed by a temporary store.
package screentest

import (
	"math/rand/v2"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/vololibero/quizvl/internal/practice"
	"github.com/vololibero/quizvl/internal/questions"
	"github.com/vololibero/quizvl/internal/router"
	"github.com/vololibero/quizvl/internal/screen"
	"github.com/vololibero/quizvl/internal/session"
	"github.com/vololibero/quizvl/internal/store"
)

// NewDeps opens a store in a temp dir and wires a seeded practice service
// over the default bank.
func NewDeps(t *testing.T) (*screen.Deps, *store.Store) {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "quizvl.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	bank, err := questions.Default()
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}

	svc := practice.NewService(bank, st.AnswerRepo(),
		practice.WithRand(rand.New(rand.NewPCG(1, 2))),
		practice.WithEventRepo(st.EventRepo()),
	)

	return &screen.Deps{
		Practice: svc,
		Answers:  st.AnswerRepo(),
		Sections: st.SectionRepo(),
		Settings: st.SettingsRepo(),
		Events:   st.EventRepo(),
		Exam:     session.ExamConfig{Questions: 5, MaxErrors: 1},
	}, st
}

// Drain runs cmd and feeds the resulting message back into s, repeating
// for every command returned, until no command is left. Batches are
// expanded. It returns the final screen and the messages that s did not
// consume, such as router navigation messages.
func Drain(s screen.Screen, cmd tea.Cmd) (screen.Screen, []tea.Msg) {
	var out []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		switch msg := msg.(type) {
		case nil:
			continue
		case tea.BatchMsg:
			queue = append(queue, msg...)
			continue
		case tea.QuitMsg:
			out = append(out, msg)
			continue
		}
		if isNavigation(msg) {
			out = append(out, msg)
			continue
		}
		var next tea.Cmd
		s, next = s.Update(msg)
		queue = append(queue, next)
	}
	return s, out
}

// isNavigation reports messages that belong to the router or the app
// model rather than to a screen.
func isNavigation(msg tea.Msg) bool {
	switch msg.(type) {
	case router.PushScreenMsg, router.ReplaceScreenMsg, router.PopScreenMsg, screen.SettingsChangedMsg:
		return true
	}
	return false
}
