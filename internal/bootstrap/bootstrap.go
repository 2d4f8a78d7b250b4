package bootstrap

import (
	"context"
	"fmt"
	"io"

	"github.com/vvka-141/primer/internal/files/filesystem"
	"github.com/vvka-141/primer/internal/replace"
	"github.com/vvka-141/primer/pkg/primer"
)

// Options configures a run.
type Options struct {
	// Root is the repository root to walk and the directory holding README.md.
	Root string

	// SelfPath is the tool artifact removed during cleanup. Empty skips it.
	SelfPath string

	// KeepArtifacts skips cleanup entirely.
	KeepArtifacts bool
}

// Result describes a completed run.
type Result struct {
	// ProjectName is the project name exactly as typed, before trimming.
	ProjectName string
	Files       int
	Stats       replace.Stats
	Removed     []string
}

// Bootstrapper runs the scan, prompt, substitute and cleanup sequence.
// Thread-Safety: NOT safe for concurrent Run calls on the same instance.
type Bootstrapper struct {
	scanner    primer.FileScanner
	fsProvider filesystem.FileSystemProvider
	prompter   primer.Prompter
	logger     primer.Logger
	stdout     io.Writer
}

// NewBootstrapper creates a Bootstrapper with all dependencies injected.
// Panics on nil dependencies.
func NewBootstrapper(
	scanner primer.FileScanner,
	fsProvider filesystem.FileSystemProvider,
	prompter primer.Prompter,
	logger primer.Logger,
	stdout io.Writer,
) *Bootstrapper {
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if prompter == nil {
		panic("prompter cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if stdout == nil {
		panic("stdout cannot be nil")
	}

	return &Bootstrapper{
		scanner:    scanner,
		fsProvider: fsProvider,
		prompter:   prompter,
		logger:     logger,
		stdout:     stdout,
	}
}

// Run configures the repository at opts.Root.
//
// Cleanup only starts after all seven placeholders were substituted; any
// earlier error returns with nothing deleted.
func (b *Bootstrapper) Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Root == "" {
		return Result{}, fmt.Errorf("%w: repository root is required", primer.ErrInvalidInput)
	}

	b.logger.Verbose("Scanning %s", opts.Root)
	files, err := b.scanner.ScanDirectory(opts.Root)
	if err != nil {
		return Result{}, err
	}
	if opts.SelfPath != "" {
		files = files.Without(opts.SelfPath)
	}
	b.logger.Verbose("Found %d file(s)", len(files))

	s := &Session{
		Root:       opts.Root,
		SelfPath:   opts.SelfPath,
		ReadmePath: readmePath(opts.Root),
		Files:      files,
		replacer:   replace.NewReplacer(b.fsProvider),
		fsProvider: b.fsProvider,
		prompter:   b.prompter,
		logger:     b.logger,
		stdout:     b.stdout,
	}

	if !opts.KeepArtifacts {
		s.checkCleanupTargets()
	}

	result := Result{Files: len(files)}
	err = s.substituteAll(ctx)
	result.ProjectName = s.projectName
	result.Stats = s.stats
	if err != nil {
		return result, err
	}
	b.logger.Verbose("Replaced %d occurrence(s) across %d file write(s)", s.stats.Occurrences, s.stats.FilesChanged)

	// An interrupt after the last substitution must still keep the artifacts.
	if err := ctx.Err(); err != nil {
		return result, err
	}

	if opts.KeepArtifacts {
		b.logger.Verbose("Skipping cleanup")
	} else {
		result.Removed, err = s.cleanup()
		if err != nil {
			return result, err
		}
	}

	if err := s.printSuccess(); err != nil {
		return result, err
	}
	return result, nil
}
