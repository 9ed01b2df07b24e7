package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/vololibero/quizvl/internal/router"
	"github.com/vololibero/quizvl/internal/screen"
	"github.com/vololibero/quizvl/internal/store"
	"github.com/vololibero/quizvl/internal/ui/layout"
	"github.com/vololibero/quizvl/internal/ui/theme"
)

type settingsLoadedMsg struct {
	Settings store.Settings
	Err      error
}

// SettingsScreen toggles the discipline flags.
type SettingsScreen struct {
	repo     store.SettingsRepo
	settings store.Settings
	keys     []string
	selected int
	errMsg   string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a new SettingsScreen.
func New(repo store.SettingsRepo) *SettingsScreen {
	return &SettingsScreen{repo: repo, keys: store.SettingKeys()}
}

func (s *SettingsScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		st, err := repo.Load(context.Background())
		return settingsLoadedMsg{Settings: st, Err: err}
	}
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.settings = msg.Settings
		return s, func() tea.Msg { return screen.SettingsChangedMsg{Settings: msg.Settings} }

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.keys)-1 {
				s.selected++
			}
		case "space", "enter", "x":
			if s.settings != nil {
				return s, s.toggle(s.keys[s.selected])
			}
		}
	}
	return s, nil
}

// toggle flips key, stores it and reloads the stored settings.
func (s *SettingsScreen) toggle(key string) tea.Cmd {
	repo, value := s.repo, !s.settings.Bool(key)
	return func() tea.Msg {
		ctx := context.Background()
		if err := repo.Set(ctx, key, value); err != nil {
			return settingsLoadedMsg{Err: err}
		}
		st, err := repo.Load(ctx)
		return settingsLoadedMsg{Settings: st, Err: err}
	}
}

func (s *SettingsScreen) View(width, height int) string {
	if s.settings == nil && s.errMsg == "" {
		return "\n\n" + layout.Center(theme.Hint.Render("Loading..."), width)
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, k := range s.keys {
		box := "[ ]"
		if s.settings.Bool(k) {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, store.SettingLabel(k))
		if i == s.selected {
			b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("    "+line) + "\n")
		}
	}
	if s.errMsg != "" {
		b.WriteString("\n  " + theme.ErrorText.Render(s.errMsg) + "\n")
	}
	return b.String()
}
