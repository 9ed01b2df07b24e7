package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/vololibero/quizvl/internal/questions"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testQuestion() questions.Question {
	return questions.Question{
		ID:                 "1003",
		Section:            "NORMATIVA E LEGISLAZIONE",
		Text:               "Età minima per il conseguimento dell'attestato?",
		Answers:            [questions.AnswerCount]string{"18 anni.", "14 anni.", "16 anni."},
		CorrectAnswerIndex: 2,
	}
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "A"},
		{Label: "Off", Disabled: true},
		{Label: "B"},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("after down selection = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("down at bottom moved selection to %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("after up selection = %d, want 1", m.Selected)
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "Go", Action: func() tea.Cmd {
		ran = true
		return nil
	}}})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Error("expected action to run on Enter")
	}
}

func TestMultiChoiceNumberKeys(t *testing.T) {
	tests := []struct {
		key     rune
		chosen  int
		correct bool
	}{
		{'1', 0, false},
		{'2', 1, false},
		{'3', 2, true},
	}

	for _, tt := range tests {
		mc := NewMultiChoice(testQuestion(), true)
		mc, _ = mc.Update(keyPress(tt.key))
		if !mc.Submitted {
			t.Errorf("key %q: expected submission", tt.key)
			continue
		}
		if mc.Chosen != tt.chosen {
			t.Errorf("key %q: chosen = %d, want %d", tt.key, mc.Chosen, tt.chosen)
		}
		if mc.IsCorrect() != tt.correct {
			t.Errorf("key %q: IsCorrect = %v, want %v", tt.key, mc.IsCorrect(), tt.correct)
		}
	}
}

func TestMultiChoiceArrowsAndEnter(t *testing.T) {
	mc := NewMultiChoice(testQuestion(), false)
	for range 5 {
		mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if mc.Selected != 2 {
		t.Fatalf("selection = %d, want clamp at 2", mc.Selected)
	}
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if mc.Chosen != 2 || !mc.IsCorrect() {
		t.Errorf("chosen = %d correct = %v", mc.Chosen, mc.IsCorrect())
	}

	// Input after submission is ignored.
	mc, _ = mc.Update(keyPress('1'))
	if mc.Chosen != 2 {
		t.Errorf("chosen changed after submission to %d", mc.Chosen)
	}
}

func TestMultiChoiceIgnoresOtherKeys(t *testing.T) {
	mc := NewMultiChoice(testQuestion(), true)
	mc, _ = mc.Update(keyPress('4'))
	if mc.Submitted {
		t.Error("key 4 should not submit with three answers")
	}
}

func TestMultiChoiceView(t *testing.T) {
	view := NewMultiChoice(testQuestion(), true).View(80)
	for _, want := range []string{"1) 18 anni.", "2) 14 anni.", "3) 16 anni."} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestProgressBarClamps(t *testing.T) {
	for _, p := range []float64{-1, 0, 0.5, 1, 2} {
		if got := NewProgressBar("", p, false, 20).View(); got == "" {
			t.Errorf("percent %v: empty view", p)
		}
	}
}
