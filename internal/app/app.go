package app

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/vololibero/quizvl/internal/router"
	"github.com/vololibero/quizvl/internal/screen"
	"github.com/vololibero/quizvl/internal/screens/home"
	"github.com/vololibero/quizvl/internal/screens/play"
	"github.com/vololibero/quizvl/internal/ui/layout"
)

// Start selects the first screen opened on top of the home screen.
type Start int

const (
	StartHome Start = iota
	StartQuiz
	StartExam
)

// Options configures the TUI.
type Options struct {
	Deps  *screen.Deps
	Start Start
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router     *router.Router
	deps       *screen.Deps
	start      Start
	discipline string
	width      int
	height     int
}

func newAppModel(opts Options) AppModel {
	m := AppModel{
		router: router.New(home.New(opts.Deps)),
		deps:   opts.Deps,
		start:  opts.Start,
	}
	if opts.Deps.Settings != nil {
		st, err := opts.Deps.Settings.Load(context.Background())
		if err != nil {
			logger(opts.Deps).Warn("load settings", "err", err)
		} else {
			m.discipline = st.Discipline()
		}
	}
	return m
}

func logger(deps *screen.Deps) *slog.Logger {
	if deps.Log != nil {
		return deps.Log
	}
	return slog.Default()
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init()}
	switch m.start {
	case StartQuiz:
		cmds = append(cmds, push(play.NewQuiz(m.deps)))
	case StartExam:
		cmds = append(cmds, push(play.NewExam(m.deps)))
	}
	return tea.Batch(cmds...)
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.SettingsChangedMsg:
		m.discipline = msg.Settings.Discipline()
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the frame around the active screen.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.discipline, m.width)

	var hints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = hp.KeyHints()
	}
	if hints == nil {
		hints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(hints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Deps == nil || opts.Deps.Practice == nil {
		return fmt.Errorf("app: missing dependencies")
	}
	if _, err := tea.NewProgram(newAppModel(opts)).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
