// Package replace substitutes literal placeholder tokens in place.
//
// Tokens are exact, case-sensitive substrings: there is no templating,
// escaping or pattern matching. Every file is rewritten whole; nothing is
// staged or backed up, so a failed pass leaves earlier files rewritten.
package replace

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vvka-141/primer/internal/files/filesystem"
	"github.com/vvka-141/primer/pkg/primer"
)

// Stats summarises one Replace pass.
type Stats struct {
	FilesScanned int
	FilesChanged int
	Occurrences  int
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.FilesScanned += other.FilesScanned
	s.FilesChanged += other.FilesChanged
	s.Occurrences += other.Occurrences
}

// Replacer rewrites files through a filesystem provider.
type Replacer struct {
	fsProvider filesystem.FileSystemProvider
}

// NewReplacer creates a replacer. Panics if fsProvider is nil.
func NewReplacer(fsProvider filesystem.FileSystemProvider) *Replacer {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Replacer{fsProvider: fsProvider}
}

// Replace substitutes value for every non-overlapping occurrence of token in
// each file. Files without an occurrence are neither decoded nor rewritten.
// The pass stops at the first failing file, and before the next file once
// ctx is cancelled.
func (r *Replacer) Replace(ctx context.Context, token primer.Token, value string, files primer.FileList) (Stats, error) {
	var stats Stats
	if token == "" {
		return stats, fmt.Errorf("%w: empty token", primer.ErrInvalidInput)
	}

	old := []byte(token)
	repl := []byte(value)

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.FilesScanned++

		content, err := r.fsProvider.ReadFile(path)
		if err != nil {
			return stats, fmt.Errorf("%w: read %s: %w", primer.ErrReplaceFailed, path, err)
		}

		n := bytes.Count(content, old)
		if n == 0 {
			continue
		}
		if !utf8.Valid(content) {
			return stats, fmt.Errorf("%w: %s contains %s", primer.ErrBinaryFile, path, token)
		}

		updated := bytes.ReplaceAll(content, old, repl)
		if err := r.fsProvider.WriteFile(path, updated, 0o644); err != nil {
			return stats, fmt.Errorf("%w: write %s: %w", primer.ErrReplaceFailed, path, err)
		}

		stats.FilesChanged++
		stats.Occurrences += n
	}

	return stats, nil
}

// TrimValue strips surrounding double quotes, then single quotes, then
// spaces. Each set is trimmed once, in that order, so `'My "Proj"'` keeps
// its inner quotes. Tabs and other whitespace are kept.
func TrimValue(s string) string {
	s = strings.Trim(s, `"`)
	s = strings.Trim(s, `'`)
	return strings.Trim(s, " ")
}
