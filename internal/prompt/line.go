package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/primer/pkg/primer"
)

// LinePrompter implements primer.Prompter over a line-oriented stream.
// A single LinePrompter must not be used from several goroutines.
//
// A cancelled Ask leaves its read pending on the shared reader, so the
// prompter is closed from then on and every later Ask fails with
// primer.ErrCancelled.
type LinePrompter struct {
	in     *bufio.Reader
	out    io.Writer
	closed bool
}

// NewLinePrompter creates a prompter reading answers from in and writing
// questions to out. The reader is buffered once, so consecutive answers
// piped in one write are not lost between questions.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

type lineResult struct {
	line string
	err  error
}

// Ask writes question without a trailing newline and returns the next line
// of input with only its line terminator removed.
func (p *LinePrompter) Ask(ctx context.Context, question string) (string, error) {
	if p.closed {
		return "", fmt.Errorf("line prompter %w: an earlier question was interrupted", primer.ErrCancelled)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := io.WriteString(p.out, question); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	// Read in a goroutine so Ctrl+C does not wait for Enter.
	resultChan := make(chan lineResult, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		resultChan <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		p.closed = true
		return "", ctx.Err()
	case res := <-resultChan:
		if res.err != nil {
			if !errors.Is(res.err, io.EOF) {
				return "", fmt.Errorf("failed to read input: %w", res.err)
			}
			if res.line == "" {
				return "", fmt.Errorf("%w: input closed before %q was answered", primer.ErrNoInput, strings.TrimSpace(question))
			}
		}
		return stripLineEnding(res.line), nil
	}
}

func stripLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// Verify LinePrompter implements the interface at compile time
var _ primer.Prompter = (*LinePrompter)(nil)
