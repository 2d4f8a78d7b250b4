package scanner

import (
	"fmt"

	"github.com/vvka-141/primer/internal/files/exclude"
	"github.com/vvka-141/primer/internal/files/filesystem"
	"github.com/vvka-141/primer/pkg/primer"
)

// Scanner discovers the files eligible for placeholder substitution.
// Excluded files are never opened; excluded directories are never entered.
// Scanner is safe for concurrent use as long as the fsProvider is.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	rules      exclude.Rules
}

// NewScannerWithFS creates a scanner reading through fsProvider.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, rules exclude.Rules) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		fsProvider: fsProvider,
		rules:      rules,
	}
}

// ScanDirectory walks root once and returns the absolute path of every
// eligible regular file.
//
// Returns:
//   - primer.ErrRootNotFound when root is missing, not a directory or unreadable
//   - primer.ErrNoFiles when nothing survives the exclusion rules
//   - a wrapped walk error when a subdirectory cannot be read
func (s *Scanner) ScanDirectory(root string) (primer.FileList, error) {
	dir, err := s.fsProvider.Open(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", primer.ErrRootNotFound, root, err)
	}

	var files primer.FileList
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}

		relPath := file.RelativePath()
		info := file.Info()

		if info.IsDir() {
			if relPath != "." && s.rules.SkipDir(relPath) {
				return filesystem.SkipDir
			}
			return nil
		}

		// Symlinks, devices and pipes are left alone.
		if !info.Mode().IsRegular() {
			return nil
		}
		if s.rules.SkipFile(relPath) {
			return nil
		}

		files = append(files, file.Path())
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w under %s", primer.ErrNoFiles, root)
	}
	return files, nil
}

// Verify Scanner implements the interface at compile time
var _ primer.FileScanner = (*Scanner)(nil)
