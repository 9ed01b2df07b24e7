package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/vololibero/quizvl/internal/questions"
	"github.com/vololibero/quizvl/internal/session"
)

func testQuestion(id string) questions.Question {
	return questions.Question{
		ID:                 id,
		Section:            "MATERIALI",
		Text:               "Domanda " + id,
		Answers:            [questions.AnswerCount]string{"prima", "seconda", "terza"},
		CorrectAnswerIndex: 1,
	}
}

func testSummary(exam bool) *session.Summary {
	return &session.Summary{
		Title:          "Exam",
		Duration:       12 * time.Minute,
		TotalQuestions: 3,
		TotalCorrect:   2,
		Accuracy:       2.0 / 3.0,
		Results: []session.Result{
			{Question: testQuestion("8001"), Chosen: 1, Correct: true},
			{Question: testQuestion("8002"), Chosen: 0, Correct: false},
			{Question: testQuestion("8003"), Chosen: 1, Correct: true},
		},
		IsExam:    exam,
		Passed:    exam,
		MaxErrors: 3,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	if got := New(testSummary(false)).Title(); got != "Summary" {
		t.Errorf("Title = %q, want %q", got, "Summary")
	}
	if got := New(testSummary(true)).Title(); got != "Exam Result" {
		t.Errorf("Title = %q, want %q", got, "Exam Result")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	view := New(testSummary(true)).View(100, 40)
	for _, want := range []string{"Exam passed", "Errors: 1/3", "#8002", "correct: seconda"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_NilSummary(t *testing.T) {
	if view := New(nil).View(80, 24); view != "" {
		t.Errorf("expected empty view, got %q", view)
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary(false))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary(false))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	if n := len(New(testSummary(false)).KeyHints()); n != 3 {
		t.Errorf("KeyHints length = %d, want 3", n)
	}
}
