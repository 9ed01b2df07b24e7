package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vololibero/quizvl/internal/router"
	"github.com/vololibero/quizvl/internal/screen"
	"github.com/vololibero/quizvl/internal/session"
	"github.com/vololibero/quizvl/internal/ui/layout"
	"github.com/vololibero/quizvl/internal/ui/theme"
)

// SummaryScreen displays the results of a quiz, section run or exam.
type SummaryScreen struct {
	summary *session.Summary
	offset  int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	if s.summary != nil && s.summary.IsExam {
		return "Exam Result"
	}
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.summary != nil && s.offset < len(s.summary.Missed())-1 {
				s.offset++
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(layout.Center(theme.Title.Render(headline(sum)), width))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(layout.Center(theme.Dimmed.Render(
		fmt.Sprintf("%s · %d:%02d", sum.Title, mins, secs)), width))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%",
		sum.TotalQuestions, sum.TotalCorrect, sum.Accuracy*100)
	if sum.IsExam {
		statsLine += fmt.Sprintf("        Errors: %d/%d", sum.Errors(), sum.MaxErrors)
	}
	b.WriteString(layout.Center(theme.Body.Render(statsLine), width))
	b.WriteString("\n\n")

	missed := sum.Missed()
	if len(missed) == 0 {
		return b.String()
	}

	b.WriteString(layout.Center(theme.Dimmed.Render("Review"), width))
	b.WriteString("\n")
	b.WriteString(layout.Center(layout.Divider(width), width))
	b.WriteString("\n\n")

	// Whatever room is left goes to the missed questions.
	used := lipgloss.Height(b.String())
	textWidth := max(min(width-8, 90), 20)
	var list strings.Builder
	for _, r := range missed[s.offset:] {
		entry := theme.Incorrect.Render("#"+r.Question.ID) + " " +
			lipgloss.NewStyle().Width(textWidth).Foreground(theme.Text).Render(r.Question.Text) + "\n" +
			theme.Dimmed.Render(fmt.Sprintf("   your answer: %s", answerText(r))) + "\n" +
			theme.Correct.Render(fmt.Sprintf("   correct: %s", r.Question.CorrectAnswer())) + "\n\n"
		if used+lipgloss.Height(list.String()+entry) > height {
			break
		}
		list.WriteString(entry)
	}
	b.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(list.String()))

	return b.String()
}

func headline(sum *session.Summary) string {
	switch {
	case !sum.IsExam:
		return "Well flown!"
	case sum.Passed:
		return "Exam passed"
	default:
		return "Exam not passed"
	}
}

func answerText(r session.Result) string {
	if r.Chosen < 0 || r.Chosen >= len(r.Question.Answers) {
		return "-"
	}
	return r.Question.Answers[r.Chosen]
}
