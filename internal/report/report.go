// Package report summarises which placeholders a repository still contains.
package report

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/primer/internal/checksum"
	"github.com/vvka-141/primer/internal/files/filesystem"
	"github.com/vvka-141/primer/internal/tui"
	"github.com/vvka-141/primer/pkg/primer"
)

// Report is the result of a read-only placeholder scan.
type Report struct {
	Root   string       `yaml:"root"`
	Files  []FileReport `yaml:"files"`
	Totals Totals       `yaml:"totals"`
}

// FileReport lists the placeholders found in one file.
type FileReport struct {
	Path   string       `yaml:"path"`
	SHA256 string       `yaml:"sha256"`
	Binary bool         `yaml:"binary,omitempty"`
	Tokens []TokenCount `yaml:"tokens,omitempty"`
}

// TokenCount is the number of occurrences of one token.
type TokenCount struct {
	Token string `yaml:"token"`
	Count int    `yaml:"count"`
}

// Totals aggregates the whole scan.
type Totals struct {
	Files           int            `yaml:"files"`
	FilesWithTokens int            `yaml:"files_with_tokens"`
	Occurrences     int            `yaml:"occurrences"`
	ByToken         map[string]int `yaml:"by_token,omitempty"`
}

// Build reads every file once and counts the occurrences of each of the
// seven tokens. Each file also carries its SHA-256. Paths in the report are
// slash-separated and relative to root. Files that are not valid UTF-8 are
// flagged binary and not counted.
func Build(files primer.FileList, fsProvider filesystem.FileSystemProvider, root string) (Report, error) {
	calc := checksum.New()
	r := Report{
		Root:   root,
		Files:  make([]FileReport, 0, len(files)),
		Totals: Totals{ByToken: map[string]int{}},
	}

	for _, path := range files {
		content, err := fsProvider.ReadFile(path)
		if err != nil {
			return Report{}, fmt.Errorf("failed to read %s: %w", path, err)
		}

		fr := FileReport{Path: relativePath(root, path), SHA256: calc.Calculate(content)}
		if !utf8.Valid(content) {
			fr.Binary = true
		} else {
			for _, tok := range primer.AllTokens {
				n := bytes.Count(content, []byte(tok))
				if n == 0 {
					continue
				}
				fr.Tokens = append(fr.Tokens, TokenCount{Token: tok.String(), Count: n})
				r.Totals.ByToken[tok.String()] += n
				r.Totals.Occurrences += n
			}
		}
		if len(fr.Tokens) > 0 {
			r.Totals.FilesWithTokens++
		}
		r.Files = append(r.Files, fr)
	}

	r.Totals.Files = len(r.Files)
	return r, nil
}

func relativePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// WriteYAML encodes r as YAML.
func WriteYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}

// WriteText renders r for a terminal. Only files that still hold a
// placeholder or are binary are listed.
func WriteText(w io.Writer, r Report) error {
	var b strings.Builder

	for _, f := range r.Files {
		switch {
		case f.Binary:
			fmt.Fprintf(&b, "%s %s\n", tui.PathStyle.Render(f.Path), tui.MutedStyle.Render("(binary)"))
		case len(f.Tokens) > 0:
			b.WriteString(tui.PathStyle.Render(f.Path))
			b.WriteString("\n")
			for _, tc := range f.Tokens {
				fmt.Fprintf(&b, "  %s %s ×%d\n", tui.SymbolBullet, tui.TokenStyle.Render(tc.Token), tc.Count)
			}
		}
	}

	if r.Totals.Occurrences == 0 {
		fmt.Fprintf(&b, "%s No placeholders left in %d file(s)\n", tui.SuccessStyle.Render(tui.SymbolCheck), r.Totals.Files)
	} else {
		fmt.Fprintf(&b, "%d placeholder(s) in %d of %d file(s)\n",
			r.Totals.Occurrences, r.Totals.FilesWithTokens, r.Totals.Files)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
