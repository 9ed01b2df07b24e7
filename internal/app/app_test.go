package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/vololibero/quizvl/internal/router"
	"github.com/vololibero/quizvl/internal/screen"
	"github.com/vololibero/quizvl/internal/screen/screentest"
	"github.com/vololibero/quizvl/internal/store"
)

func TestAppHeaderShowsDiscipline(t *testing.T) {
	deps, _ := screentest.NewDeps(t)
	m := newAppModel(Options{Deps: deps})

	if m.discipline != "Parapendio" {
		t.Errorf("discipline = %q, want Parapendio", m.discipline)
	}

	updated, _ := m.Update(screen.SettingsChangedMsg{Settings: store.Settings{
		store.SettingParagliding: "false",
		store.SettingDelta:       "true",
	}})
	m = updated.(AppModel)
	if m.discipline != "Deltaplano" {
		t.Errorf("discipline = %q, want Deltaplano", m.discipline)
	}

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(AppModel)
	content := m.render()
	if !strings.Contains(content, "Deltaplano") {
		t.Error("header should show the discipline label")
	}
}

func TestAppTooSmall(t *testing.T) {
	deps, _ := screentest.NewDeps(t)
	m := newAppModel(Options{Deps: deps})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(updated.(AppModel).render(), "Terminal too small") {
		t.Error("expected the minimum size message")
	}
}

func TestAppCtrlCQuits(t *testing.T) {
	deps, _ := screentest.NewDeps(t)
	m := newAppModel(Options{Deps: deps})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestAppStartQuizPushesScreen(t *testing.T) {
	deps, _ := screentest.NewDeps(t)
	m := newAppModel(Options{Deps: deps, Start: StartQuiz})

	batch, ok := m.Init()().(tea.BatchMsg)
	if !ok {
		t.Fatal("expected a batch of init commands")
	}
	found := false
	for _, cmd := range batch {
		if cmd == nil {
			continue
		}
		if p, ok := cmd().(router.PushScreenMsg); ok && p.Screen.Title() == "Quiz" {
			found = true
		}
	}
	if !found {
		t.Error("expected the quiz screen to be pushed")
	}
}
