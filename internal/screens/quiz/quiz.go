package quiz

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/cyberquest/cyberquest/internal/questions"
	svc "github.com/cyberquest/cyberquest/internal/quiz"
	"github.com/cyberquest/cyberquest/internal/router"
	"github.com/cyberquest/cyberquest/internal/scoring"
	"github.com/cyberquest/cyberquest/internal/screen"
	"github.com/cyberquest/cyberquest/internal/screens/results"
	"github.com/cyberquest/cyberquest/internal/ui/components"
	"github.com/cyberquest/cyberquest/internal/ui/layout"
)

// Runner starts and submits quiz sessions.
type Runner interface {
	Start(ctx context.Context, username, level string) (*svc.Session, error)
	Submit(ctx context.Context, sess *svc.Session, sub scoring.Submission) (*svc.Submitted, error)
	Bank() questions.Repository
}

// QuizScreen walks the player through one level, checking each answer as
// it is given and submitting everything at the end.
type QuizScreen struct {
	runner   Runner
	username string
	level    questions.Level

	sess       *svc.Session
	index      int
	choice     components.MultiChoice
	answers    scoring.Submission
	check      *questions.CheckResult
	skipped    bool
	submitting bool
	errMsg     string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for username at level.
func New(runner Runner, username string, level questions.Level) *QuizScreen {
	return &QuizScreen{
		runner:   runner,
		username: username,
		level:    level,
		answers:  scoring.Submission{},
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	runner, username, level := s.runner, s.username, string(s.level)
	return func() tea.Msg {
		sess, err := runner.Start(context.Background(), username, level)
		return startedMsg{Session: sess, Err: err}
	}
}

func (s *QuizScreen) Title() string {
	return s.level.Info().Name
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.check != nil || s.skipped:
		return []layout.KeyHint{{Key: "any key", Description: "Next"}}
	case s.sess == nil || s.submitting:
		return nil
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Select"},
		{Key: "Tab", Description: "Skip"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return s.handleStarted(msg)
	case submittedMsg:
		return s.handleSubmitted(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	if len(msg.Session.Questions) == 0 {
		s.errMsg = "No questions available for this level."
		return s, nil
	}
	s.sess = msg.Session
	s.loadQuestion()
	return s, nil
}

func (s *QuizScreen) handleSubmitted(msg submittedMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	next := results.New(msg.Result)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.sess == nil || s.submitting {
		return s, nil
	}

	// Feedback is showing; any key moves on.
	if s.check != nil || s.skipped {
		return s, s.advance()
	}

	if msg.String() == "tab" {
		s.skipped = true
		return s, nil
	}

	s.choice, _ = s.choice.Update(msg)
	if s.choice.Confirmed() {
		s.answer(s.choice.Chosen)
	}
	return s, nil
}

// answer records the chosen option and grades it immediately.
func (s *QuizScreen) answer(idx int) {
	q := s.current()
	s.answers[q.ID] = idx
	res, err := questions.Check(s.runner.Bank(), q.ID, idx)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.choice.Reveal(res.CorrectIndex)
	s.check = &res
}

// advance moves to the next question or submits after the last one.
func (s *QuizScreen) advance() tea.Cmd {
	s.check = nil
	s.skipped = false
	s.index++
	if s.index < len(s.sess.Questions) {
		s.loadQuestion()
		return nil
	}
	s.submitting = true
	return s.submit()
}

func (s *QuizScreen) submit() tea.Cmd {
	runner, sess := s.runner, s.sess
	answers := make(scoring.Submission, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}
	return func() tea.Msg {
		res, err := runner.Submit(context.Background(), sess, answers)
		if err == nil && res == nil {
			err = errors.New("empty submission result")
		}
		return submittedMsg{Result: res, Err: err}
	}
}

func (s *QuizScreen) loadQuestion() {
	q := s.current()
	s.choice = components.NewMultiChoice(q.Text, q.Options)
}

func (s *QuizScreen) current() questions.Question {
	return s.sess.Questions[s.index]
}
