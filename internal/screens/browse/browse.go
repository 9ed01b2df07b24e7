package browse

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vololibero/quizvl/internal/questions"
	"github.com/vololibero/quizvl/internal/router"
	"github.com/vololibero/quizvl/internal/screen"
	"github.com/vololibero/quizvl/internal/ui/components"
	"github.com/vololibero/quizvl/internal/ui/layout"
	"github.com/vololibero/quizvl/internal/ui/theme"
)

// BrowseScreen searches the bank and shows the correct answer of the
// selected question.
type BrowseScreen struct {
	bank     *questions.Bank
	input    components.TextInput
	query    string
	results  []questions.Question
	selected int
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)

// New creates a new BrowseScreen.
func New(bank *questions.Bank) *BrowseScreen {
	return &BrowseScreen{
		bank:  bank,
		input: components.NewTextInput("search text, answers or #id", 60),
	}
}

func (s *BrowseScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *BrowseScreen) Title() string {
	return "Browse"
}

func (s *BrowseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "type", Description: "Search"},
		{Key: "↑↓", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if q := s.input.Value(); q != s.query {
		s.query = q
		s.results = Find(s.bank, q)
		s.selected = 0
	}
	return s, cmd
}

// Find returns the question with id term (a leading '#' is allowed), or
// the bank's search results.
func Find(bank *questions.Bank, term string) []questions.Question {
	id := strings.TrimPrefix(strings.TrimSpace(term), "#")
	if q, err := bank.ByID(id); err == nil {
		return []questions.Question{q}
	}
	return bank.Search(term)
}

// Selected returns the highlighted result.
func (s *BrowseScreen) Selected() (questions.Question, bool) {
	if s.selected >= len(s.results) {
		return questions.Question{}, false
	}
	return s.results[s.selected], true
}

func (s *BrowseScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n  " + s.input.View() + "\n")

	if strings.TrimSpace(s.query) == "" {
		b.WriteString("\n  " + theme.Hint.Render(
			fmt.Sprintf("Type to search %d questions.", s.bank.Len())) + "\n")
		return b.String()
	}
	b.WriteString("  " + theme.Dimmed.Render(fmt.Sprintf("%d results", len(s.results))) + "\n\n")
	if len(s.results) == 0 {
		return b.String()
	}

	textWidth := max(width-14, 20)
	listRows := max((height-12)/2, 3)
	start := max(s.selected-listRows+1, 0)
	end := min(start+listRows, len(s.results))
	for i := start; i < end; i++ {
		q := s.results[i]
		text := truncate(q.Text, textWidth)
		line := fmt.Sprintf("#%s  %s", q.ID, text)
		if i == s.selected {
			b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("    "+line) + "\n")
		}
	}

	if q, ok := s.Selected(); ok {
		b.WriteString("\n")
		detail := theme.Body.Bold(true).Width(max(width-8, 20)).Render(q.Text) + "\n" +
			theme.Dimmed.Render(q.SectionNumber().String()) + "\n\n"
		for i, a := range q.Answers {
			line := fmt.Sprintf("%d) %s", i+1, a)
			if i == q.CorrectAnswerIndex {
				detail += theme.Correct.Render("✓ "+line) + "\n"
			} else {
				detail += theme.Dimmed.Render("  "+line) + "\n"
			}
		}
		b.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(detail))
	}
	return b.String()
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:max(width-1, 0)]) + "…"
}
