// Package exclude decides which paths the tree walker never visits.
package exclude

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/vvka-141/primer/pkg/primer"
)

// Rules holds the exclusion set for one walk. The zero value excludes nothing;
// use Default for the standard set.
type Rules struct {
	dirNames  map[string]struct{}
	fileNames map[string]struct{}
	patterns  []string
}

// Default returns the rules every bootstrap run starts from: the .git
// directory (pruned) and the OS artifact files .DS_Store and " ".
func Default() Rules {
	r := Rules{
		dirNames:  map[string]struct{}{primer.GitDirName: {}},
		fileNames: map[string]struct{}{primer.GitDirName: {}},
	}
	for _, name := range primer.OSArtifactNames {
		r.fileNames[name] = struct{}{}
	}
	return r
}

// WithPatterns returns a copy of r that also excludes paths matching any of
// the doublestar globs. Patterns are matched against the slash-separated
// path relative to the walk root and against the base name, so both
// "node_modules" and "assets/**/*.png" work.
func (r Rules) WithPatterns(patterns ...string) (Rules, error) {
	out := Rules{
		dirNames:  r.dirNames,
		fileNames: r.fileNames,
		patterns:  append([]string(nil), r.patterns...),
	}
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return Rules{}, fmt.Errorf("%w: bad exclude pattern %q", primer.ErrInvalidInput, p)
		}
		out.patterns = append(out.patterns, p)
	}
	return out, nil
}

// Patterns returns the extra glob patterns.
func (r Rules) Patterns() []string {
	return append([]string(nil), r.patterns...)
}

// SkipDir reports whether the directory at relPath must be pruned.
func (r Rules) SkipDir(relPath string) bool {
	if _, ok := r.dirNames[filepath.Base(relPath)]; ok {
		return true
	}
	return r.matches(relPath)
}

// SkipFile reports whether the file at relPath must never be opened.
func (r Rules) SkipFile(relPath string) bool {
	if _, ok := r.fileNames[filepath.Base(relPath)]; ok {
		return true
	}
	return r.matches(relPath)
}

func (r Rules) matches(relPath string) bool {
	normalized := filepath.ToSlash(relPath)
	base := filepath.Base(relPath)
	for _, p := range r.patterns {
		if ok, err := doublestar.Match(p, normalized); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(p, base); err == nil && ok {
			return true
		}
	}
	return false
}
