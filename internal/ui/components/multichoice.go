package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vololibero/quizvl/internal/questions"
	"github.com/vololibero/quizvl/internal/ui/theme"
)

// MultiChoice renders a question with its answers and takes the learner's
// choice, either by number key or by arrows and Enter.
type MultiChoice struct {
	Question  questions.Question
	Selected  int
	Submitted bool
	Chosen    int

	// Reveal marks the correct answer once submitted.
	Reveal bool
}

// NewMultiChoice creates a selector for q.
func NewMultiChoice(q questions.Question, reveal bool) MultiChoice {
	return MultiChoice{
		Question: q,
		Chosen:   -1,
		Reveal:   reveal,
	}
}

// Update handles navigation and selection. Once submitted it ignores input.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < questions.AnswerCount-1 {
			m.Selected++
		}
	case "enter":
		m.submit(m.Selected)
	case "1", "2", "3":
		m.submit(int(key[0] - '1'))
	}

	return m, nil
}

func (m *MultiChoice) submit(i int) {
	m.Selected = i
	m.Chosen = i
	m.Submitted = true
}

// IsCorrect reports whether the submitted answer is correct.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.Question.IsCorrect(m.Chosen)
}

// View renders the question text wrapped to width and the numbered answers.
func (m MultiChoice) View(width int) string {
	var b strings.Builder

	textWidth := max(min(width-4, 100), 20)
	b.WriteString(lipgloss.NewStyle().
		Width(textWidth).
		Foreground(theme.Text).
		Bold(true).
		Render(m.Question.Text))
	b.WriteString("\n\n")

	for i, answer := range m.Question.Answers {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := lipgloss.NewStyle().Width(textWidth).
			Render(fmt.Sprintf("%s%d) %s", prefix, i+1, answer))

		var style lipgloss.Style
		switch {
		case m.Submitted && m.Reveal && i == m.Question.CorrectAnswerIndex:
			style = theme.Correct
		case m.Submitted && m.Reveal && i == m.Chosen:
			style = theme.Incorrect
		case m.Submitted && i == m.Chosen:
			style = theme.Selected
		case m.Submitted:
			style = theme.Dimmed
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
