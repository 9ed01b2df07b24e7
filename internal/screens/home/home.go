package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/vololibero/quizvl/internal/router"
	"github.com/vololibero/quizvl/internal/screen"
	"github.com/vololibero/quizvl/internal/screens/browse"
	"github.com/vololibero/quizvl/internal/screens/history"
	"github.com/vololibero/quizvl/internal/screens/play"
	"github.com/vololibero/quizvl/internal/screens/sections"
	"github.com/vololibero/quizvl/internal/screens/settings"
	"github.com/vololibero/quizvl/internal/ui/components"
	"github.com/vololibero/quizvl/internal/ui/layout"
	"github.com/vololibero/quizvl/internal/ui/theme"
)

type stats struct {
	bank      int
	missed    int
	completed int
	sections  int
}

type statsLoadedMsg struct {
	Stats stats
	Err   error
}

type resetDoneMsg struct {
	Err error
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps         *screen.Deps
	menu         components.Menu
	stats        stats
	confirmReset bool
	errMsg       string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Refresher = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps *screen.Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	push := func(next func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: next()} }
		}
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "QUIZ", Detail: "endless, favours your mistakes",
			Action: push(func() screen.Screen { return play.NewQuiz(deps) })},
		{Label: "SECTIONS", Detail: "one subject at a time",
			Action: push(func() screen.Screen { return sections.New(deps) })},
		{Label: "EXAM", Detail: fmt.Sprintf("%d questions, max %d errors", deps.Exam.Questions, deps.Exam.MaxErrors),
			Action: push(func() screen.Screen { return play.NewExam(deps) })},
		{Label: "BROWSE", Detail: "search the question bank",
			Action: push(func() screen.Screen { return browse.New(deps.Bank()) })},
		{Label: "HISTORY", Detail: "past sessions",
			Action: push(func() screen.Screen { return history.New(deps.Events) })},
		{Label: "SETTINGS",
			Action: push(func() screen.Screen { return settings.New(deps.Settings) })},
		{Label: "RESET PROGRESS", Action: func() tea.Cmd {
			h.confirmReset = true
			return nil
		}},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// Refresh reloads the stats when returning from another screen.
func (h *HomeScreen) Refresh() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	deps := h.deps
	return func() tea.Msg {
		ctx := context.Background()
		missed, err := deps.Practice.Missed(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		completed, err := deps.Sections.Completed(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		bank := deps.Bank()
		st := stats{
			bank:     bank.Len(),
			missed:   len(missed),
			sections: len(bank.Sections()),
		}
		for _, n := range bank.Sections() {
			if completed[n.Key()] {
				st.completed++
			}
		}
		return statsLoadedMsg{Stats: st}
	}
}

// ResetProgress clears miss counts, completed sections and the answer log.
// Settings are kept.
func ResetProgress(ctx context.Context, deps *screen.Deps) error {
	if err := deps.Answers.Reset(ctx); err != nil {
		return fmt.Errorf("reset answers: %w", err)
	}
	if err := deps.Sections.Reset(ctx); err != nil {
		return fmt.Errorf("reset sections: %w", err)
	}
	if deps.Events != nil {
		if err := deps.Events.Reset(ctx); err != nil {
			return fmt.Errorf("reset answer log: %w", err)
		}
	}
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.confirmReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.errMsg = ""
		h.stats = msg.Stats
		return h, nil

	case resetDoneMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		return h, h.loadStats()

	case tea.KeyPressMsg:
		if h.confirmReset {
			switch msg.String() {
			case "y", "Y":
				h.confirmReset = false
				deps := h.deps
				return h, func() tea.Msg {
					return resetDoneMsg{Err: ResetProgress(context.Background(), deps)}
				}
			case "n", "N", "esc":
				h.confirmReset = false
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 24 || width < 70
	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, layout.Center(theme.Subtitle.Render("Quiz attestato VDS / VL"), cw))
	sections = append(sections, renderStatsBar(h.stats, cw))

	if h.confirmReset {
		sections = append(sections, theme.Incorrect.Render("Reset all progress?")+"\n"+
			theme.Hint.Render("Miss counts, completed sections and the answer log are cleared."))
	} else {
		sections = append(sections, h.menu.View())
	}
	if h.errMsg != "" {
		sections = append(sections, theme.ErrorText.Render(h.errMsg))
	}

	content := strings.Join(sections, "\n\n")
	return layout.Center(content, width)
}
