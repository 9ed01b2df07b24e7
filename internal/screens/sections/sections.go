package sections

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/vololibero/quizvl/internal/questions"
	"github.com/vololibero/quizvl/internal/router"
	"github.com/vololibero/quizvl/internal/screen"
	"github.com/vololibero/quizvl/internal/screens/play"
	"github.com/vololibero/quizvl/internal/ui/layout"
	"github.com/vololibero/quizvl/internal/ui/theme"
)

type sectionsLoadedMsg struct {
	Rows []Row
	Err  error
}

// Row describes one section in the list.
type Row struct {
	Section   questions.SectionNumber
	Questions int
	Missed    int
	Completed bool
}

// SectionsScreen lists the exam sections with completion marks.
type SectionsScreen struct {
	deps     *screen.Deps
	rows     []Row
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*SectionsScreen)(nil)
var _ screen.KeyHintProvider = (*SectionsScreen)(nil)
var _ screen.Refresher = (*SectionsScreen)(nil)

// New creates a new SectionsScreen.
func New(deps *screen.Deps) *SectionsScreen {
	return &SectionsScreen{deps: deps}
}

func (s *SectionsScreen) Init() tea.Cmd {
	return s.load()
}

// Refresh reloads completion marks after a section run.
func (s *SectionsScreen) Refresh() tea.Cmd {
	return s.load()
}

func (s *SectionsScreen) load() tea.Cmd {
	deps := s.deps
	return func() tea.Msg {
		rows, err := LoadRows(context.Background(), deps)
		return sectionsLoadedMsg{Rows: rows, Err: err}
	}
}

// LoadRows collects per-section question counts, miss counts and
// completion marks.
func LoadRows(ctx context.Context, deps *screen.Deps) ([]Row, error) {
	completed, err := deps.Sections.Completed(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sections: %w", err)
	}
	missed, err := deps.Practice.MissedBySection(ctx)
	if err != nil {
		return nil, err
	}

	bank := deps.Bank()
	rows := make([]Row, 0, questions.SectionCount)
	for _, n := range bank.Sections() {
		rows = append(rows, Row{
			Section:   n,
			Questions: len(bank.BySection(n)),
			Missed:    missed[n],
			Completed: completed[n.Key()],
		})
	}
	return rows, nil
}

func (s *SectionsScreen) Title() string {
	return "Sections"
}

func (s *SectionsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SectionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sectionsLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.rows = msg.Rows
		s.selected = min(s.selected, max(len(s.rows)-1, 0))
		return s, nil

	case tea.KeyPressMsg:
		if s.errMsg != "" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.rows)-1 {
				s.selected++
			}
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			n, _ := questions.ParseSection(msg.String())
			for i, r := range s.rows {
				if r.Section == n {
					s.selected = i
					return s, s.start()
				}
			}
		case "enter":
			return s, s.start()
		}
	}
	return s, nil
}

func (s *SectionsScreen) start() tea.Cmd {
	if s.selected >= len(s.rows) {
		return nil
	}
	next := play.NewSection(s.deps, s.rows[s.selected].Section)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *SectionsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.RenderError(width, s.errMsg)
	}
	if !s.loaded {
		return "\n\n" + layout.Center(theme.Hint.Render("Loading..."), width)
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, r := range s.rows {
		mark := theme.Dimmed.Render("○")
		if r.Completed {
			mark = theme.Correct.Render("✓")
		}

		label := fmt.Sprintf("%d  %-28s", int(r.Section), r.Section.Name())
		if i == s.selected {
			label = theme.Selected.Render("▸ " + label)
		} else {
			label = theme.Unselected.Render("  " + label)
		}

		detail := theme.Dimmed.Render(fmt.Sprintf("%3d questions", r.Questions))
		if r.Missed > 0 {
			detail += "  " + theme.Incorrect.Render(fmt.Sprintf("%d to review", r.Missed))
		}

		b.WriteString("  " + mark + " " + label + "  " + detail + "\n")
	}
	return b.String()
}
