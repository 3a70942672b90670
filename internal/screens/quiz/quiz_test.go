package quiz

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/cyberquest/cyberquest/internal/questions"
	svc "github.com/cyberquest/cyberquest/internal/quiz"
	"github.com/cyberquest/cyberquest/internal/router"
	"github.com/cyberquest/cyberquest/internal/scoring"
	"github.com/cyberquest/cyberquest/internal/screens/results"
)

// fakeRunner serves the embedded bank and evaluates without storage.
type fakeRunner struct {
	bank     *questions.Bank
	startErr error
	got      scoring.Submission
}

func newFakeRunner(t *testing.T) *fakeRunner {
	t.Helper()
	b, err := questions.Default()
	if err != nil {
		t.Fatalf("default bank: %v", err)
	}
	return &fakeRunner{bank: b}
}

func (f *fakeRunner) Start(_ context.Context, username, level string) (*svc.Session, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	lvl := questions.Level(level)
	return &svc.Session{PlayerID: 1, Username: username, Level: lvl, Questions: f.bank.ForLevel(lvl)}, nil
}

func (f *fakeRunner) Submit(_ context.Context, sess *svc.Session, sub scoring.Submission) (*svc.Submitted, error) {
	f.got = sub
	res, err := scoring.NewEngine(scoring.DefaultPolicy()).Evaluate(sess.Level, sess.Questions, sub)
	if err != nil {
		return nil, err
	}
	return &svc.Submitted{Result: res, PlayerID: sess.PlayerID, Username: sess.Username, ScoreID: 1}, nil
}

func (f *fakeRunner) Bank() questions.Repository { return f.bank }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func started(t *testing.T, r *fakeRunner) *QuizScreen {
	t.Helper()
	s := New(r, "alice", questions.LevelBeginner)
	s.Update(s.Init()())
	return s
}

func TestQuizScreen_Loads(t *testing.T) {
	s := New(newFakeRunner(t), "alice", questions.LevelBeginner)
	if !strings.Contains(s.View(100, 30), "Loading") {
		t.Error("expected loading view before start")
	}
	s.Update(s.Init()())
	if !strings.Contains(s.View(100, 30), "Q 1/5") {
		t.Error("expected first question")
	}
	if s.Title() != "Beginner" {
		t.Errorf("Title = %q, want Beginner", s.Title())
	}
}

func TestQuizScreen_CheckShowsFeedback(t *testing.T) {
	r := newFakeRunner(t)
	s := started(t, r)
	q := s.current()

	s.Update(keyPress(rune('1' + q.Correct)))
	if s.check == nil || !s.check.Correct {
		t.Fatal("expected a correct check result")
	}
	if !strings.Contains(s.View(100, 40), "Correct!") {
		t.Error("expected correct banner")
	}

	// Any key moves on.
	s.Update(keyPress('x'))
	if s.index != 1 || s.check != nil {
		t.Errorf("index = %d, check = %v; want next question", s.index, s.check)
	}
}

func TestQuizScreen_FullRunSubmits(t *testing.T) {
	r := newFakeRunner(t)
	s := started(t, r)

	var cmd tea.Cmd
	for i := 0; i < 5; i++ {
		if i == 2 {
			s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
		} else {
			s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		}
		_, cmd = s.Update(keyPress(' '))
	}
	if cmd == nil {
		t.Fatal("expected submit command after last question")
	}
	if !s.submitting {
		t.Error("expected submitting state")
	}

	_, next := s.Update(cmd())
	if len(r.got) != 4 {
		t.Errorf("submitted %d answers, want 4 (one skipped)", len(r.got))
	}
	if next == nil {
		t.Fatal("expected navigation to results")
	}
	msg, ok := next().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if _, ok := msg.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("expected results screen, got %T", msg.Screen)
	}
}

func TestQuizScreen_StartError(t *testing.T) {
	r := newFakeRunner(t)
	r.startErr = errors.New("username too short")
	s := started(t, r)

	if !strings.Contains(s.View(100, 30), "username too short") {
		t.Error("expected error in view")
	}
	_, cmd := s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("expected pop on key")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s := started(t, newFakeRunner(t))
	if len(s.KeyHints()) != 4 {
		t.Errorf("KeyHints length = %d, want 4", len(s.KeyHints()))
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if len(s.KeyHints()) != 1 {
		t.Errorf("KeyHints after skip = %d, want 1", len(s.KeyHints()))
	}
}
