package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearModeEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PRIMER_NON_INTERACTIVE", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")
}

func TestDetectMode_PRIMER_NON_INTERACTIVE(t *testing.T) {
	clearModeEnv(t)
	t.Setenv("PRIMER_NON_INTERACTIVE", "1")

	assert.Equal(t, ModeNonInteractive, DetectMode())
}

func TestDetectMode_CI(t *testing.T) {
	clearModeEnv(t)
	t.Setenv("CI", "true")

	assert.Equal(t, ModeNonInteractive, DetectMode())
}

func TestDetectMode_NO_COLOR(t *testing.T) {
	clearModeEnv(t)
	t.Setenv("NO_COLOR", "1")

	assert.Equal(t, ModeNonInteractive, DetectMode())
}

func TestDetectMode_NoTerminal(t *testing.T) {
	// In test context, stdin/stdout are not terminals
	clearModeEnv(t)

	assert.Equal(t, ModeNonInteractive, DetectMode())
	assert.False(t, IsInteractive())
}

func TestDetectMode_PRIMER_NON_INTERACTIVE_WrongValue(t *testing.T) {
	// Only "1" triggers the override; "true" falls through to the terminal check.
	clearModeEnv(t)
	t.Setenv("PRIMER_NON_INTERACTIVE", "true")

	assert.Equal(t, ModeNonInteractive, DetectMode())
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "interactive", ModeInteractive.String())
	assert.Equal(t, "non-interactive", ModeNonInteractive.String())
}
