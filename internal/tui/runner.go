package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// RunProgram runs model to completion on the given streams and returns the
// final model. A nil in or out falls back to the process terminal.
func RunProgram(model tea.Model, in io.Reader, out io.Writer) (tea.Model, error) {
	var opts []tea.ProgramOption
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("terminal form failed: %w", err)
	}
	return final, nil
}
