package prompt

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/vvka-141/primer/internal/tui/wizards"
	"github.com/vvka-141/primer/pkg/primer"
)

// FormPrompter implements primer.Prompter with the terminal answers form.
// The form runs on the first Ask; later calls read the stored answers.
type FormPrompter struct {
	run func() (wizards.AnswersResult, error)

	once    sync.Once
	answers map[string]string
	err     error
}

// NewFormPrompter creates a form prompter drawing on the given streams.
func NewFormPrompter(in io.Reader, out io.Writer) *FormPrompter {
	return &FormPrompter{
		run: func() (wizards.AnswersResult, error) {
			return wizards.RunAnswersWizard(in, out)
		},
	}
}

// Ask returns the answer submitted for question.
func (p *FormPrompter) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.once.Do(p.collect)
	if p.err != nil {
		return "", p.err
	}

	answer, ok := p.answers[question]
	if !ok {
		return "", fmt.Errorf("%w: the form has no field for %q", primer.ErrInvalidInput, question)
	}
	return answer, nil
}

func (p *FormPrompter) collect() {
	result, err := p.run()
	switch {
	case err != nil:
		p.err = err
	case result.Cancelled:
		p.err = fmt.Errorf("form %w", primer.ErrCancelled)
	default:
		p.answers = result.Answers
	}
}

// Verify FormPrompter implements the interface at compile time
var _ primer.Prompter = (*FormPrompter)(nil)
