package primer

import (
	"errors"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := bootstrapper.Run(ctx, opts)
//	if errors.Is(err, primer.ErrMalformedName) {
//	    // Ask the operator for a name with a given and family part
//	}
var (
	// ErrUsage indicates the command line itself was wrong (unknown flag,
	// stray argument, bad --format).
	ErrUsage = errors.New("usage error")

	// ErrInvalidInput indicates operator input was rejected.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedName indicates the author's full name has no whitespace separator.
	ErrMalformedName = errors.New("author name must include a given and family name")

	// ErrNoInput indicates standard input was closed before an answer was given.
	ErrNoInput = errors.New("no input")

	// ErrCancelled indicates the operator cancelled the prompt.
	ErrCancelled = errors.New("cancelled")

	// ErrRootNotFound indicates the repository root does not exist or cannot be read.
	ErrRootNotFound = errors.New("repository root not found")

	// ErrNoFiles indicates the walk found no eligible files.
	ErrNoFiles = errors.New("no files to process")

	// ErrBinaryFile indicates a file holding a placeholder is not valid UTF-8 text.
	ErrBinaryFile = errors.New("file is not valid text")

	// ErrReplaceFailed indicates a substitution pass aborted on an I/O error.
	ErrReplaceFailed = errors.New("substitution failed")

	// ErrCleanupFailed indicates a cleanup target could not be removed.
	ErrCleanupFailed = errors.New("cleanup failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrMalformedName),
		errors.Is(err, ErrNoInput),
		errors.Is(err, ErrCancelled):
		return ExitInputError
	case errors.Is(err, ErrRootNotFound), errors.Is(err, ErrNoFiles):
		return ExitScanError
	case errors.Is(err, ErrBinaryFile), errors.Is(err, ErrReplaceFailed):
		return ExitReplaceError
	case errors.Is(err, ErrCleanupFailed):
		return ExitCleanupError
	}

	return ExitGeneralError
}
