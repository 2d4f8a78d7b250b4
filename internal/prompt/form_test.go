package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/primer/internal/tui/wizards"
	"github.com/vvka-141/primer/pkg/primer"
)

func newStubFormPrompter(result wizards.AnswersResult, err error) (*FormPrompter, *int) {
	calls := 0
	return &FormPrompter{
		run: func() (wizards.AnswersResult, error) {
			calls++
			return result, err
		},
	}, &calls
}

func TestFormPrompter_ServesAnswers(t *testing.T) {
	answers := map[string]string{
		primer.SimpleQuestions[0].Text: "Acme",
		primer.FullNameQuestion:        "Ben Vining",
	}
	p, calls := newStubFormPrompter(wizards.AnswersResult{Answers: answers}, nil)
	ctx := context.Background()

	got, err := p.Ask(ctx, primer.SimpleQuestions[0].Text)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got)

	got, err = p.Ask(ctx, primer.FullNameQuestion)
	require.NoError(t, err)
	assert.Equal(t, "Ben Vining", got)

	assert.Equal(t, 1, *calls, "the form runs once")
}

func TestFormPrompter_UnknownQuestion(t *testing.T) {
	p, _ := newStubFormPrompter(wizards.AnswersResult{Answers: map[string]string{}}, nil)

	_, err := p.Ask(context.Background(), "What is your quest? ")
	assert.True(t, errors.Is(err, primer.ErrInvalidInput))
}

func TestFormPrompter_Cancelled(t *testing.T) {
	p, calls := newStubFormPrompter(wizards.AnswersResult{Cancelled: true}, nil)

	for i := 0; i < 2; i++ {
		_, err := p.Ask(context.Background(), primer.FullNameQuestion)
		assert.True(t, errors.Is(err, primer.ErrCancelled))
	}
	assert.Equal(t, 1, *calls)
}

func TestFormPrompter_RunError(t *testing.T) {
	cause := errors.New("no tty")
	p, _ := newStubFormPrompter(wizards.AnswersResult{}, cause)

	_, err := p.Ask(context.Background(), primer.FullNameQuestion)
	assert.ErrorIs(t, err, cause)
}

func TestFormPrompter_ContextCancelled(t *testing.T) {
	p, calls := newStubFormPrompter(wizards.AnswersResult{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Ask(ctx, primer.FullNameQuestion)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, *calls)
}
