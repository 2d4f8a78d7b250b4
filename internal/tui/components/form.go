package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/primer/internal/tui"
)

// Form collects several text fields on one screen. Enter on any field but
// the last moves forward; enter on the last field submits once every field
// validates.
type Form struct {
	title     string
	subtitle  string
	fields    []TextField
	focusIdx  int
	submitted bool
	cancelled bool
	keyMap    tui.FormKeyMap
}

// NewForm creates a new form with the given title and fields.
func NewForm(title string, fields ...TextField) Form {
	return Form{
		title:  title,
		fields: fields,
		keyMap: tui.DefaultFormKeyMap(),
	}
}

// WithSubtitle sets a line shown under the title.
func (f Form) WithSubtitle(subtitle string) Form {
	f.subtitle = subtitle
	return f
}

// Init implements tea.Model.
func (f Form) Init() tea.Cmd {
	if len(f.fields) > 0 {
		return f.fields[0].Focus()
	}
	return nil
}

// Update implements tea.Model.
func (f Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, f.keyMap.Cancel):
			f.cancelled = true
			return f, tea.Quit
		case key.Matches(msg, f.keyMap.Next):
			return f.nextField()
		case key.Matches(msg, f.keyMap.Prev):
			return f.prevField()
		case key.Matches(msg, f.keyMap.Submit):
			if f.focusIdx < len(f.fields)-1 {
				return f.nextField()
			}
			if f.validate() {
				f.submitted = true
				return f, tea.Quit
			}
			return f, nil
		}
	}

	if f.focusIdx < len(f.fields) {
		var cmd tea.Cmd
		f.fields[f.focusIdx], cmd = f.fields[f.focusIdx].Update(msg)
		return f, cmd
	}
	return f, nil
}

func (f Form) nextField() (tea.Model, tea.Cmd) {
	if f.focusIdx < len(f.fields) {
		if err := f.fields[f.focusIdx].Validate(); err != nil {
			return f, nil
		}
	}

	if f.focusIdx < len(f.fields)-1 {
		f.fields[f.focusIdx].Blur()
		f.focusIdx++
		return f, f.fields[f.focusIdx].Focus()
	}
	return f, nil
}

func (f Form) prevField() (tea.Model, tea.Cmd) {
	if f.focusIdx > 0 {
		f.fields[f.focusIdx].Blur()
		f.focusIdx--
		return f, f.fields[f.focusIdx].Focus()
	}
	return f, nil
}

// validate runs every validator and moves focus to the first invalid field.
func (f *Form) validate() bool {
	firstBad := -1
	for i := range f.fields {
		if err := f.fields[i].Validate(); err != nil && firstBad < 0 {
			firstBad = i
		}
	}
	if firstBad >= 0 && firstBad != f.focusIdx {
		f.fields[f.focusIdx].Blur()
		f.focusIdx = firstBad
		f.fields[f.focusIdx].Focus()
	}
	return firstBad < 0
}

// View implements tea.Model.
func (f Form) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render(f.title))
	b.WriteString("\n")
	if f.subtitle != "" {
		b.WriteString(tui.SubtitleStyle.Render(f.subtitle))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, field := range f.fields {
		b.WriteString(field.View())
		if i < len(f.fields)-1 {
			b.WriteString("\n\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(tui.HelpStyle.Render(f.keyMap.HelpText()))

	return b.String()
}

// Submitted returns true if the form was submitted.
func (f Form) Submitted() bool {
	return f.submitted
}

// Cancelled returns true if the form was cancelled.
func (f Form) Cancelled() bool {
	return f.cancelled
}

// Focused returns the index of the focused field.
func (f Form) Focused() int {
	return f.focusIdx
}

// Len returns the number of fields.
func (f Form) Len() int {
	return len(f.fields)
}

// Field returns a field by index.
func (f Form) Field(idx int) *TextField {
	if idx >= 0 && idx < len(f.fields) {
		return &f.fields[idx]
	}
	return nil
}

// FieldValue returns the value of a field by index.
func (f Form) FieldValue(idx int) string {
	if field := f.Field(idx); field != nil {
		return field.Value()
	}
	return ""
}

// Values returns every field value in field order.
func (f Form) Values() []string {
	out := make([]string, len(f.fields))
	for i, field := range f.fields {
		out[i] = field.Value()
	}
	return out
}
