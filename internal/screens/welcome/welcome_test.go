package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/cyberquest/cyberquest/internal/quiz"
	"github.com/cyberquest/cyberquest/internal/router"
	"github.com/cyberquest/cyberquest/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{ username string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome() (*WelcomeScreen, *[]string) {
	var names []string
	factory := func(username string) screen.Screen {
		names = append(names, username)
		return &stubScreen{username: username}
	}
	return New(quiz.ValidateUsername, factory), &names
}

func typeText(w *WelcomeScreen, s string) {
	for _, r := range s {
		w.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func enter(w *WelcomeScreen) tea.Cmd {
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

// drain runs a batch command and collects the messages it yields.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, drain(c)...)
	}
	return out
}

func TestValidNameTransitions(t *testing.T) {
	w, names := newTestWelcome()
	typeText(w, "alice")

	msgs := drain(enter(w))
	if len(*names) != 1 || (*names)[0] != "alice" {
		t.Fatalf("factory calls = %v, want [alice]", *names)
	}

	var signedIn, replaced bool
	for _, m := range msgs {
		switch m := m.(type) {
		case screen.SignedInMsg:
			signedIn = m.Username == "alice"
		case router.ReplaceScreenMsg:
			replaced = m.Screen != nil
		}
	}
	if !signedIn {
		t.Error("expected SignedInMsg for alice")
	}
	if !replaced {
		t.Error("expected ReplaceScreenMsg")
	}
}

func TestInvalidNameShowsError(t *testing.T) {
	w, names := newTestWelcome()
	typeText(w, "ab")

	if cmd := enter(w); cmd != nil {
		t.Error("expected no command for a rejected name")
	}
	if len(*names) != 0 {
		t.Errorf("factory should not be called, got %v", *names)
	}
	if !strings.Contains(w.View(100, 30), "at least 3") {
		t.Error("expected validation message in view")
	}
}

func TestTransitionHappensOnce(t *testing.T) {
	w, names := newTestWelcome()
	typeText(w, "alice")
	enter(w)

	if cmd := enter(w); cmd != nil {
		t.Error("second enter should not produce a command")
	}
	if len(*names) != 1 {
		t.Errorf("factory should be called once, got %d", len(*names))
	}
}

func TestTickKeepsTicking(t *testing.T) {
	w, _ := newTestWelcome()
	_, cmd := w.Update(tickMsg{})
	if cmd == nil {
		t.Fatal("expected next tick")
	}
	if w.tickCount != 1 {
		t.Errorf("tickCount = %d, want 1", w.tickCount)
	}
}

func TestBannerFallback(t *testing.T) {
	if !strings.Contains(RenderBanner(40), "C Y B E R") {
		t.Error("expected compact banner for narrow widths")
	}
}
