package history

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/vololibero/quizvl/internal/screen/screentest"
	"github.com/vololibero/quizvl/internal/store"
)

func event(seq int64, session, mode, id string, correct bool) store.AnswerEventRecord {
	return store.AnswerEventRecord{
		Sequence:  seq,
		Timestamp: time.Unix(1700000000+seq, 0),
		AnswerEventData: store.AnswerEventData{
			SessionID:  session,
			Mode:       mode,
			QuestionID: id,
			Correct:    correct,
		},
	}
}

func TestGroupSessions(t *testing.T) {
	// Newest first, as RecentAnswers returns them.
	events := []store.AnswerEventRecord{
		event(4, "b", "exam", "5001", false),
		event(3, "b", "exam", "2001", true),
		event(2, "a", "quiz", "1003", true),
		event(1, "a", "quiz", "1004", true),
	}

	got := GroupSessions(events)
	if len(got) != 2 {
		t.Fatalf("sessions = %d, want 2", len(got))
	}
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("order = %s,%s want b,a", got[0].ID, got[1].ID)
	}
	if got[0].Answers[0].QuestionID != "2001" {
		t.Errorf("first answer of b = %s, want 2001", got[0].Answers[0].QuestionID)
	}
	if got[0].Correct != 1 || got[0].Accuracy() != 0.5 {
		t.Errorf("b correct = %d accuracy = %v", got[0].Correct, got[0].Accuracy())
	}
	if !got[0].Started.Equal(time.Unix(1700000003, 0)) {
		t.Errorf("b started = %v", got[0].Started)
	}
	if got[1].Mode != "quiz" || got[1].Accuracy() != 1 {
		t.Errorf("a = %+v", got[1])
	}
}

func TestHistoryScreenEmpty(t *testing.T) {
	deps, _ := screentest.NewDeps(t)
	s := New(deps.Events)
	screentest.Drain(s, s.Init())

	if !strings.Contains(s.View(80, 20), "No answers yet") {
		t.Error("expected the empty-history message")
	}
}

func TestHistoryScreenShowsSessions(t *testing.T) {
	deps, _ := screentest.NewDeps(t)
	ctx := t.Context()
	for _, id := range []string{"1003", "1004"} {
		err := deps.Events.AppendAnswer(ctx, store.AnswerEventData{
			SessionID: "s1", Mode: "quiz", QuestionID: id, Section: 1, Correct: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	s := New(deps.Events)
	screentest.Drain(s, s.Init())
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	view := s.View(100, 30)
	for _, want := range []string{"quiz", "2 answers", "100% correct", "1003"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
