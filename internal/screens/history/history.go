package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/samber/lo"

	"github.com/vololibero/quizvl/internal/router"
	"github.com/vololibero/quizvl/internal/screen"
	"github.com/vololibero/quizvl/internal/store"
	"github.com/vololibero/quizvl/internal/ui/layout"
	"github.com/vololibero/quizvl/internal/ui/theme"
)

// recentLimit bounds how many answer events are loaded.
const recentLimit = 1000

type historyLoadedMsg struct {
	Sessions []Session
	Err      error
}

// Session groups the answers given in one quiz, section run or exam.
type Session struct {
	ID      string
	Mode    string
	Started time.Time
	Answers []store.AnswerEventRecord
	Correct int
}

// Accuracy returns the fraction of correct answers.
func (s Session) Accuracy() float64 {
	if len(s.Answers) == 0 {
		return 0
	}
	return float64(s.Correct) / float64(len(s.Answers))
}

// GroupSessions groups events, newest first, into sessions ordered by their
// most recent answer. Answers inside a session are in answer order.
func GroupSessions(events []store.AnswerEventRecord) []Session {
	order := lo.Uniq(lo.Map(events, func(e store.AnswerEventRecord, _ int) string { return e.SessionID }))
	bySession := lo.GroupBy(events, func(e store.AnswerEventRecord) string { return e.SessionID })

	return lo.Map(order, func(id string, _ int) Session {
		answers := lo.Reverse(bySession[id])
		return Session{
			ID:      id,
			Mode:    answers[0].Mode,
			Started: answers[0].Timestamp,
			Answers: answers,
			Correct: lo.CountBy(answers, func(e store.AnswerEventRecord) bool { return e.Correct }),
		}
	})
}

// HistoryScreen lists past sessions from the answer log.
type HistoryScreen struct {
	events   store.EventRepo
	sessions []Session
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(events store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		events:   events,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	events := s.events
	return func() tea.Msg {
		recent, err := events.RecentAnswers(context.Background(), recentLimit)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Sessions: GroupSessions(recent)}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.RenderError(width, s.errMsg)
	}
	if !s.loaded {
		return "\n\n" + layout.Center(theme.Hint.Render("Loading history..."), width)
	}
	if len(s.sessions) == 0 {
		return "\n\n" + layout.Center(theme.Hint.Render("No answers yet. Take off with a quiz!"), width)
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		prefix := "  "
		style := theme.Unselected
		if i == s.selected {
			prefix = "▸ "
			style = theme.Selected
		}
		line := fmt.Sprintf("%s%s  %-7s  %3d answers  %3.0f%% correct",
			prefix, sess.Started.Local().Format("Jan 02 15:04"), sess.Mode,
			len(sess.Answers), sess.Accuracy()*100)
		b.WriteString(layout.Center(style.Render(line), width))
		b.WriteString("\n")

		if s.expanded[i] {
			var ids []string
			for _, a := range sess.Answers {
				if a.Correct {
					ids = append(ids, theme.Correct.Render(a.QuestionID))
				} else {
					ids = append(ids, theme.Incorrect.Render(a.QuestionID))
				}
			}
			for _, chunk := range lo.Chunk(ids, 10) {
				b.WriteString(layout.Center(strings.Join(chunk, " "), width))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
