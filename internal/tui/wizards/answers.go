package wizards

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/primer/internal/author"
	"github.com/vvka-141/primer/internal/tui"
	"github.com/vvka-141/primer/internal/tui/components"
	"github.com/vvka-141/primer/pkg/primer"
)

// AnswersResult holds the outcome of the answers form. Answers maps each
// question text to the value typed for it.
type AnswersResult struct {
	Cancelled bool
	Answers   map[string]string
}

// AnswersWizard shows every bootstrap question on one screen.
type AnswersWizard struct {
	form      components.Form
	questions []string
	result    AnswersResult
}

// Questions returns the question texts in the order they are asked.
func Questions() []string {
	out := make([]string, 0, len(primer.SimpleQuestions)+1)
	for _, q := range primer.SimpleQuestions {
		out = append(out, q.Text)
	}
	return append(out, primer.FullNameQuestion)
}

// NewAnswersWizard creates the wizard. The full-name field only accepts a
// value containing whitespace.
func NewAnswersWizard() AnswersWizard {
	questions := Questions()
	fields := make([]components.TextField, len(questions))
	for i, q := range questions {
		field := components.NewTextField(label(q), "")
		if q == primer.FullNameQuestion {
			field = field.WithValidator(author.Validate)
		}
		fields[i] = field
	}

	form := components.NewForm("Configure this project", fields...).
		WithSubtitle("Every answer replaces a placeholder in the repository files.")

	return AnswersWizard{form: form, questions: questions}
}

// label drops the trailing ": " prompt suffix.
func label(question string) string {
	return strings.TrimSuffix(strings.TrimSpace(question), ":")
}

// Init implements tea.Model.
func (w AnswersWizard) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model.
func (w AnswersWizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := w.form.Update(msg)
	w.form = m.(components.Form)

	switch {
	case w.form.Cancelled():
		w.result = AnswersResult{Cancelled: true}
	case w.form.Submitted():
		answers := make(map[string]string, len(w.questions))
		for i, q := range w.questions {
			answers[q] = w.form.FieldValue(i)
		}
		w.result = AnswersResult{Answers: answers}
	}
	return w, cmd
}

// View implements tea.Model.
func (w AnswersWizard) View() string {
	return w.form.View()
}

// Result returns the wizard result.
func (w AnswersWizard) Result() AnswersResult {
	return w.result
}

// RunAnswersWizard runs the wizard on the given streams. A nil stream uses
// the process terminal.
func RunAnswersWizard(in io.Reader, out io.Writer) (AnswersResult, error) {
	model, err := tui.RunProgram(NewAnswersWizard(), in, out)
	if err != nil {
		return AnswersResult{Cancelled: true}, err
	}
	return model.(AnswersWizard).Result(), nil
}
