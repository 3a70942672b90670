package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/cyberquest/cyberquest/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with CyberQuest styling and an
// optional validator whose error is shown under the field.
type TextInput struct {
	Model    textinput.Model
	Validate func(string) (string, error)
	err      error
}

// NewTextInput creates a new focused text input.
func NewTextInput(placeholder string, charLimit int, validate func(string) (string, error)) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Model: ti, Validate: validate}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards messages to the underlying input and clears any
// previous validation error.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		t.err = nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// Submit runs the validator and returns the cleaned value. The error is
// kept for display until the next keystroke.
func (t *TextInput) Submit() (string, bool) {
	if t.Validate == nil {
		return t.Model.Value(), true
	}
	v, err := t.Validate(t.Model.Value())
	t.err = err
	return v, err == nil
}

// Err returns the last validation error.
func (t TextInput) Err() error {
	return t.err
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.err != nil {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+t.err.Error())
	}
	return view
}
