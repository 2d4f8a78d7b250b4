package primer

import "context"

// Prompter collects one answer from the operator per question.
//
// Implementations:
//   - LinePrompter: prints the question and reads one line of standard input
//   - FormPrompter: collects every answer up front in a terminal form
type Prompter interface {
	// Ask displays question and blocks until an answer is available.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//   - question: Exact question text shown to the operator
	//
	// Returns:
	//   - string: The answer without its line terminator
	//   - error: ErrNoInput, ErrCancelled, ctx.Err() or a read error
	Ask(ctx context.Context, question string) (string, error)
}
