package play

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/vololibero/quizvl/internal/practice"
	"github.com/vololibero/quizvl/internal/questions"
	"github.com/vololibero/quizvl/internal/router"
	"github.com/vololibero/quizvl/internal/screen"
	"github.com/vololibero/quizvl/internal/screens/summary"
	"github.com/vololibero/quizvl/internal/session"
	"github.com/vololibero/quizvl/internal/ui/components"
	"github.com/vololibero/quizvl/internal/ui/layout"
)

// Kind selects what the screen runs.
type Kind int

const (
	KindQuiz Kind = iota
	KindSection
	KindExam
)

// PlayScreen asks questions one at a time and shows feedback after each
// answer. Exams hold feedback back until the summary.
type PlayScreen struct {
	deps    *screen.Deps
	kind    Kind
	section questions.SectionNumber

	run      Run
	choice   components.MultiChoice
	hasQ     bool
	scoring  bool
	feedback *session.Result

	answered int
	correct  int

	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// NewQuiz creates a screen for the endless weighted quiz.
func NewQuiz(deps *screen.Deps) *PlayScreen {
	return &PlayScreen{deps: deps, kind: KindQuiz}
}

// NewSection creates a screen walking every question of section.
func NewSection(deps *screen.Deps, section questions.SectionNumber) *PlayScreen {
	return &PlayScreen{deps: deps, kind: KindSection, section: section}
}

// NewExam creates a screen for a simulated exam.
func NewExam(deps *screen.Deps) *PlayScreen {
	return &PlayScreen{deps: deps, kind: KindExam}
}

func (s *PlayScreen) Init() tea.Cmd {
	return s.buildRun()
}

func (s *PlayScreen) Title() string {
	switch s.kind {
	case KindSection:
		return s.section.String()
	case KindExam:
		return "Exam"
	default:
		return "Quiz"
	}
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Stop"},
			{Key: "N", Description: "Keep going"},
		}
	case s.feedback != nil:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "1-3", Description: "Answer"},
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Stop"},
	}
}

// buildRun creates the run for the screen's kind asynchronously.
func (s *PlayScreen) buildRun() tea.Cmd {
	deps, kind, section := s.deps, s.kind, s.section
	return func() tea.Msg {
		ctx := context.Background()
		bank := deps.Bank()

		switch kind {
		case KindSection:
			svc := deps.Practice.Session(practice.ModeSection)
			qs := svc.Shuffle(bank.BySection(section))
			run, err := session.NewSectionRun(section, qs, svc, deps.Sections)
			if err != nil {
				return runReadyMsg{Err: err}
			}
			return runReadyMsg{Run: run}

		case KindExam:
			svc := deps.Practice.Session(practice.ModeExam)
			exam, err := session.NewExam(ctx, svc, svc, bank.All(), deps.Exam)
			if err != nil {
				return runReadyMsg{Err: err}
			}
			return runReadyMsg{Run: exam}

		default:
			svc := deps.Practice.Session(practice.ModeQuiz)
			quiz := session.NewQuiz(svc, svc, bank.All())
			if _, err := quiz.Next(ctx); err != nil {
				return runReadyMsg{Err: err}
			}
			return runReadyMsg{Run: quiz}
		}
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case runReadyMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.run = msg.Run
		return s, s.showCurrent()

	case nextReadyMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.setQuestion(msg.Question)
		return s, nil

	case answerScoredMsg:
		s.scoring = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.answered++
		if msg.Result.Correct {
			s.correct++
		}
		if s.kind == KindExam {
			return s, s.advance()
		}
		s.feedback = &msg.Result
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PlayScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.run == nil || s.scoring {
		if key == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return s, s.finish()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if s.feedback != nil {
		s.feedback = nil
		return s, s.advance()
	}

	if key == "esc" {
		if s.answered == 0 {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.confirmQuit = true
		return s, nil
	}

	if !s.hasQ {
		return s, nil
	}
	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if s.choice.Submitted {
		s.scoring = true
		return s, tea.Batch(cmd, s.submit(s.choice.Chosen))
	}
	return s, cmd
}

// submit scores answer off the UI goroutine.
func (s *PlayScreen) submit(answer int) tea.Cmd {
	run := s.run
	return func() tea.Msg {
		res, err := run.Answer(context.Background(), answer)
		return answerScoredMsg{Result: res, Err: err}
	}
}

// advance moves to the next question, drawing one for endless runs.
func (s *PlayScreen) advance() tea.Cmd {
	s.hasQ = false
	if n, ok := s.run.(nexter); ok {
		return func() tea.Msg {
			q, err := n.Next(context.Background())
			return nextReadyMsg{Question: q, Err: err}
		}
	}
	return s.showCurrent()
}

// showCurrent displays the run's current question or ends the run.
func (s *PlayScreen) showCurrent() tea.Cmd {
	q, ok := s.run.Current()
	if !ok {
		return s.finish()
	}
	s.setQuestion(q)
	return nil
}

func (s *PlayScreen) setQuestion(q questions.Question) {
	s.choice = components.NewMultiChoice(q, s.kind != KindExam)
	s.hasQ = true
}

// finish replaces the screen with the run's summary.
func (s *PlayScreen) finish() tea.Cmd {
	if st, ok := s.run.(stopper); ok {
		st.Stop()
	}
	sum := s.run.Summary()
	if sum.TotalQuestions == 0 && !sum.IsExam {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

// progressLabel renders "Q 3/30" for fixed runs and "Q 3" for the quiz.
func (s *PlayScreen) progressLabel() string {
	if sz, ok := s.run.(sized); ok {
		return fmt.Sprintf("Q %d/%d", min(s.answered+1, sz.Len()), sz.Len())
	}
	return fmt.Sprintf("Q %d", s.answered+1)
}
