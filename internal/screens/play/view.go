package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/vololibero/quizvl/internal/ui/layout"
	"github.com/vololibero/quizvl/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.RenderError(width, s.errMsg)
	}
	if s.run == nil || !s.hasQ {
		return "\n\n" + layout.Center(theme.Hint.Render("Loading..."), width)
	}
	if s.confirmQuit {
		return renderQuitConfirm(width, s.kind)
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(theme.Divider.Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	body := s.choice.View(width)
	if s.feedback != nil {
		body += "\n" + s.renderFeedback()
	}
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(body))
	return b.String()
}

func (s *PlayScreen) renderInfoLine(width int) string {
	q := s.choice.Question

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  #%s  %s", q.ID, q.SectionNumber().Name()))

	wrong := s.answered - s.correct
	right := theme.Dimmed.Render(s.progressLabel()+"  ") +
		theme.Correct.Render(fmt.Sprintf("✓ %d", s.correct)) + "  " +
		theme.Incorrect.Render(fmt.Sprintf("✗ %d", wrong))
	if s.kind == KindExam {
		right += theme.Dimmed.Render(fmt.Sprintf(" / %d", s.deps.Exam.MaxErrors))
	}

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		return left + "\n  " + right
	}
	return left + strings.Repeat(" ", pad) + right
}

func (s *PlayScreen) renderFeedback() string {
	fb := s.feedback
	if fb.Correct {
		return theme.Correct.Render("Correct!") + "\n\n" + theme.Hint.Render("Press any key to continue")
	}
	return theme.Incorrect.Render("Wrong.") + " " +
		theme.Body.Render(fmt.Sprintf("Correct answer: %d) %s",
			fb.Question.CorrectAnswerIndex+1, fb.Question.CorrectAnswer())) +
		"\n\n" + theme.Hint.Render("Press any key to continue")
}

func renderQuitConfirm(width int, kind Kind) string {
	prompt := "Stop here and see your results?"
	if kind == KindExam {
		prompt = "Stop the exam? Unanswered questions count as failed."
	}
	return "\n\n" + layout.Center(theme.Title.Render(prompt), width) + "\n\n" +
		layout.Center(theme.Hint.Render("Y to stop, N to keep going"), width)
}
