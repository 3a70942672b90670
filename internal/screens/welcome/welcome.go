package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cyberquest/cyberquest/internal/router"
	"github.com/cyberquest/cyberquest/internal/screen"
	"github.com/cyberquest/cyberquest/internal/store"
	"github.com/cyberquest/cyberquest/internal/ui/components"
	"github.com/cyberquest/cyberquest/internal/ui/layout"
	"github.com/cyberquest/cyberquest/internal/ui/theme"
)

const (
	tickInterval = 500 * time.Millisecond
	cursorFrames = 2
)

type tickMsg time.Time

// WelcomeScreen shows the banner and asks for a username before handing
// over to the home screen.
type WelcomeScreen struct {
	input        components.TextInput
	homeFactory  func(username string) screen.Screen
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. validate cleans and checks the typed name;
// homeFactory builds the screen shown once it is accepted.
func New(validate func(string) (string, error), homeFactory func(username string) screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		input:       components.NewTextInput("your username", store.MaxUsernameLength, validate),
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Batch(w.input.Init(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		w.tickCount++
		return w, tick()

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return w, w.submit()
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) submit() tea.Cmd {
	if w.transitioned {
		return nil
	}
	name, ok := w.input.Submit()
	if !ok {
		return nil
	}
	w.transitioned = true
	home := w.homeFactory(name)
	return tea.Batch(
		func() tea.Msg { return screen.SignedInMsg{Username: name} },
		func() tea.Msg { return router.ReplaceScreenMsg{Screen: home} },
	)
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width), "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Test your cybersecurity awareness")
	sections = append(sections, tagline, "")

	prompt := lipgloss.NewStyle().Foreground(theme.Secondary).Render("> ")
	if w.tickCount%cursorFrames == 1 {
		prompt = lipgloss.NewStyle().Foreground(theme.Accent).Render("> ")
	}
	sections = append(sections, prompt+w.input.View(), "")

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("3-50 letters, digits, _ or -")
	sections = append(sections, hint)

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
