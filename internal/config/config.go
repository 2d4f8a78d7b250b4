// Package config resolves primer's own behaviour settings.
//
// Settings come from defaults, then a .env file, then the process
// environment; command-line flags are applied on top by the cli package.
// None of the seven placeholder values is ever read from here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vvka-141/primer/pkg/primer"
)

// Environment variable names.
const (
	EnvRoot           = "PRIMER_ROOT"
	EnvVerbose        = "PRIMER_VERBOSE"
	EnvExclude        = "PRIMER_EXCLUDE"
	EnvKeep           = "PRIMER_KEEP"
	EnvNonInteractive = "PRIMER_NON_INTERACTIVE"
)

// DotEnvFileName is the file loaded from the working directory, if present.
const DotEnvFileName = ".env"

// Settings holds the tool behaviour knobs.
type Settings struct {
	// Root overrides the repository root. Empty means the executable's directory.
	Root string

	Verbose bool

	// Exclude holds extra doublestar globs.
	Exclude []string

	// Keep skips cleanup of the tool artifact and README.
	Keep bool

	// NonInteractive forces the line prompter even when --form is given.
	NonInteractive bool
}

// Load reads .env from the working directory (a missing file is ignored)
// and then the process environment. Variables already set in the
// environment win over .env entries.
func Load() (Settings, error) {
	return LoadFile(DotEnvFileName)
}

// LoadFile is Load with an explicit .env path.
func LoadFile(path string) (Settings, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds Settings from a variable lookup function.
func FromEnv(lookup func(string) (string, bool)) (Settings, error) {
	var s Settings
	var err error

	if v, ok := lookup(EnvRoot); ok {
		s.Root = strings.TrimSpace(v)
	}
	if s.Verbose, err = lookupBool(lookup, EnvVerbose); err != nil {
		return Settings{}, err
	}
	if s.Keep, err = lookupBool(lookup, EnvKeep); err != nil {
		return Settings{}, err
	}
	if v, ok := lookup(EnvNonInteractive); ok {
		s.NonInteractive = strings.TrimSpace(v) == "1"
	}
	if v, ok := lookup(EnvExclude); ok {
		s.Exclude = splitList(v)
	}

	return s, nil
}

func lookupBool(lookup func(string) (string, bool), name string) (bool, error) {
	v, ok := lookup(name)
	if !ok || strings.TrimSpace(v) == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q is not a boolean", primer.ErrInvalidInput, name, v)
	}
	return b, nil
}

// splitList splits a comma-separated list, dropping blank entries.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
