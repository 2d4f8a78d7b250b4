package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/primer/internal/config"
	"github.com/vvka-141/primer/internal/files/exclude"
	"github.com/vvka-141/primer/pkg/primer"
)

// runSettings is the merged view of defaults, .env, environment and flags.
type runSettings struct {
	Root           string
	SelfPath       string
	Rules          exclude.Rules
	Verbose        bool
	Keep           bool
	NonInteractive bool
}

// executablePath is replaced in tests.
var executablePath = func() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(exe)
}

// loadRunSettings resolves settings for cmd. Flags override environment,
// environment overrides defaults.
func loadRunSettings(cmd *cobra.Command) (runSettings, error) {
	env, err := config.Load()
	if err != nil {
		return runSettings{}, err
	}

	s := runSettings{
		Verbose:        boolSetting(cmd, "verbose", env.Verbose),
		NonInteractive: env.NonInteractive,
	}
	if cmd.Flags().Lookup("keep") != nil {
		s.Keep = boolSetting(cmd, "keep", env.Keep)
	}

	patterns, err := cmd.Flags().GetStringArray("exclude")
	if err != nil {
		return runSettings{}, err
	}
	s.Rules, err = exclude.Default().WithPatterns(append(env.Exclude, patterns...)...)
	if err != nil {
		return runSettings{}, err
	}

	s.Root, s.SelfPath, err = resolvePaths(cmd, env)
	if err != nil {
		return runSettings{}, err
	}
	return s, nil
}

// resolvePaths picks the repository root and the tool artifact.
//
// Root: --root, then PRIMER_ROOT, then the executable's directory.
// Artifact: --self when given (an empty value disables removal), otherwise
// the executable, but only when it lies under the root.
func resolvePaths(cmd *cobra.Command, env config.Settings) (root, self string, err error) {
	flagRoot, _ := cmd.Flags().GetString("root")
	flagSelf, _ := cmd.Flags().GetString("self")

	var exe string
	needExe := (flagRoot == "" && env.Root == "") || !cmd.Flags().Changed("self")
	if needExe {
		exe, err = executablePath()
		if err != nil {
			return "", "", fmt.Errorf("cannot locate the primer executable: %w", err)
		}
	}

	switch {
	case flagRoot != "":
		root = flagRoot
	case env.Root != "":
		root = env.Root
	default:
		root = filepath.Dir(exe)
	}
	if root, err = canonical(root); err != nil {
		return "", "", err
	}

	if cmd.Flags().Changed("self") {
		if flagSelf == "" {
			return root, "", nil
		}
		self, err = canonical(flagSelf)
		if err != nil {
			return "", "", err
		}
		return root, self, nil
	}

	if isUnder(root, exe) {
		self = exe
	}
	return root, self, nil
}

// canonical makes p absolute and resolves symlinks when p exists, so the
// artifact path compares equal to the paths the walker produces.
func canonical(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("%w: %v", primer.ErrInvalidInput, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

func isUnder(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}
