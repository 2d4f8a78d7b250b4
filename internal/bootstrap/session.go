package bootstrap

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/vvka-141/primer/internal/author"
	"github.com/vvka-141/primer/internal/files/filesystem"
	"github.com/vvka-141/primer/internal/replace"
	"github.com/vvka-141/primer/pkg/primer"
)

// Session is the state of a single run. It is created by Bootstrapper.Run
// after the tree walk and discarded when the run ends.
type Session struct {
	Root       string
	SelfPath   string
	ReadmePath string
	Files      primer.FileList

	replacer   *replace.Replacer
	fsProvider filesystem.FileSystemProvider
	prompter   primer.Prompter
	logger     primer.Logger
	stdout     io.Writer

	projectName string
	stats       replace.Stats
}

// askAndReplace asks question, trims the answer and substitutes it for
// token. It returns the raw answer.
func (s *Session) askAndReplace(ctx context.Context, token primer.Token, question string) (string, error) {
	raw, err := s.prompter.Ask(ctx, question)
	if err != nil {
		return "", err
	}
	if err := s.replace(ctx, token, replace.TrimValue(raw)); err != nil {
		return "", err
	}
	return raw, nil
}

func (s *Session) replace(ctx context.Context, token primer.Token, value string) error {
	stats, err := s.replacer.Replace(ctx, token, value, s.Files)
	s.stats.Add(stats)
	if err != nil {
		return err
	}
	s.logger.Verbose("%s: %d occurrence(s) in %d file(s)", token, stats.Occurrences, stats.FilesChanged)
	return nil
}

// substituteAll runs the five simple questions followed by the full name.
func (s *Session) substituteAll(ctx context.Context) error {
	for _, q := range primer.SimpleQuestions {
		raw, err := s.askAndReplace(ctx, q.Token, q.Text)
		if err != nil {
			return err
		}
		if q.Token == primer.TokenProjectName {
			s.projectName = raw
		}
	}

	full, err := s.prompter.Ask(ctx, primer.FullNameQuestion)
	if err != nil {
		return err
	}
	given, family, err := author.Split(full)
	if err != nil {
		return err
	}
	if err := s.replace(ctx, primer.TokenAuthorGivenName, given); err != nil {
		return err
	}
	return s.replace(ctx, primer.TokenAuthorFamilyName, family)
}

func (s *Session) cleanupTargets() []string {
	if s.SelfPath == "" {
		return []string{s.ReadmePath}
	}
	return []string{s.SelfPath, s.ReadmePath}
}

// checkCleanupTargets logs cleanup targets that are already unreachable, so
// the cleanup failure can be anticipated before any file is rewritten.
func (s *Session) checkCleanupTargets() {
	for _, target := range s.cleanupTargets() {
		if _, err := s.fsProvider.Stat(target); err != nil {
			s.logger.Verbose("Cleanup target %s is not accessible: %v", target, err)
		}
	}
}

// cleanup removes the tool artifact, then the README. The first failure
// stops it.
func (s *Session) cleanup() ([]string, error) {
	var removed []string
	for _, target := range s.cleanupTargets() {
		if err := s.fsProvider.Remove(target); err != nil {
			s.logger.Error("Failed to remove %s: %v", target, err)
			return removed, fmt.Errorf("%w: %s: %w", primer.ErrCleanupFailed, target, err)
		}
		s.logger.Info("Removed %s", target)
		removed = append(removed, target)
	}
	return removed, nil
}

func (s *Session) printSuccess() error {
	_, err := fmt.Fprintf(s.stdout,
		"Success! The %s project is now configured for basic development using linfra.\n"+
			"You should commit these changes to version control before beginning other development.\n",
		s.projectName)
	if err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

func readmePath(root string) string {
	return filepath.Join(root, primer.ReadmeFileName)
}
