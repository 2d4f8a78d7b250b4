package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for primer.
type Mode int

const (
	// ModeNonInteractive is used for CI pipelines, scripts, and piped input.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// String returns the mode name used in verbose logs.
func (m Mode) String() string {
	if m == ModeInteractive {
		return "interactive"
	}
	return "non-interactive"
}

// DetectMode determines whether primer may draw a terminal form.
//
// Returns ModeNonInteractive if:
//   - PRIMER_NON_INTERACTIVE=1 is set
//   - CI is set (common CI convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - stdin or stdout is not a terminal (piped input, redirected output)
//
// Returns ModeInteractive otherwise. The line prompter works in both modes;
// only the --form prompter needs ModeInteractive.
func DetectMode() Mode {
	if os.Getenv("PRIMER_NON_INTERACTIVE") == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ModeNonInteractive
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
