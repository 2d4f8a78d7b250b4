package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/primer/internal/tui"
)

// TextField is a labeled text input field.
type TextField struct {
	label     string
	input     textinput.Model
	focused   bool
	validator func(string) error
	err       error
	styles    textFieldStyles
}

type textFieldStyles struct {
	Label        lipgloss.Style
	Input        lipgloss.Style
	FocusedInput lipgloss.Style
	Error        lipgloss.Style
}

func defaultTextFieldStyles() textFieldStyles {
	return textFieldStyles{
		Label:        tui.LabelStyle,
		Input:        tui.InputStyle,
		FocusedInput: tui.FocusedInputStyle,
		Error:        tui.ErrorStyle,
	}
}

// NewTextField creates a new text field.
func NewTextField(label, placeholder string) TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 512
	ti.Width = 56
	ti.Prompt = "> "

	return TextField{
		label:  label,
		input:  ti,
		styles: defaultTextFieldStyles(),
	}
}

// WithValidator sets a validation function. Validation runs on every edit
// and again before the field is left or the form submitted.
func (t TextField) WithValidator(fn func(string) error) TextField {
	t.validator = fn
	return t
}

// Focus focuses the text field.
func (t *TextField) Focus() tea.Cmd {
	t.focused = true
	return t.input.Focus()
}

// Blur removes focus from the text field.
func (t *TextField) Blur() {
	t.focused = false
	t.input.Blur()
}

// IsFocused returns true if the field is focused.
func (t TextField) IsFocused() bool {
	return t.focused
}

// Update forwards msg to the underlying input.
func (t TextField) Update(msg tea.Msg) (TextField, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)

	if t.validator != nil && t.err != nil {
		t.err = t.validator(t.input.Value())
	}

	return t, cmd
}

// View renders the label, the input and the pending error, if any.
func (t TextField) View() string {
	var b strings.Builder

	b.WriteString(t.styles.Label.Render(t.label))
	b.WriteString("\n")

	inputStyle := t.styles.Input
	if t.focused {
		inputStyle = t.styles.FocusedInput
	}
	b.WriteString(inputStyle.Render(t.input.View()))

	if t.err != nil {
		b.WriteString("\n")
		b.WriteString(t.styles.Error.Render(tui.SymbolCross + " " + t.err.Error()))
	}

	return b.String()
}

// Value returns the current value.
func (t TextField) Value() string {
	return t.input.Value()
}

// SetValue sets the value.
func (t *TextField) SetValue(v string) {
	t.input.SetValue(v)
}

// Error returns the current validation error.
func (t TextField) Error() error {
	return t.err
}

// Validate runs the validator and records its result.
func (t *TextField) Validate() error {
	if t.validator == nil {
		t.err = nil
		return nil
	}
	t.err = t.validator(t.input.Value())
	return t.err
}
