package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/primer/internal/bootstrap"
	"github.com/vvka-141/primer/internal/files/filesystem"
	"github.com/vvka-141/primer/internal/files/scanner"
	"github.com/vvka-141/primer/internal/logging"
	"github.com/vvka-141/primer/internal/prompt"
	"github.com/vvka-141/primer/internal/tui"
	"github.com/vvka-141/primer/pkg/primer"
)

func runBootstrap(cmd *cobra.Command, args []string) error {
	settings, err := loadRunSettings(cmd)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), settings.Verbose)
	logger.Verbose("Repository root: %s", settings.Root)
	if settings.SelfPath != "" {
		logger.Verbose("Tool artifact: %s", settings.SelfPath)
	} else {
		logger.Verbose("No tool artifact to remove")
	}
	if patterns := settings.Rules.Patterns(); len(patterns) > 0 {
		logger.Verbose("Extra exclusions: %v", patterns)
	}

	form, _ := cmd.Flags().GetBool("form")
	prompter := selectPrompter(form, settings, cmd.InOrStdin(), cmd.OutOrStdout(), logger)

	fsProvider := filesystem.NewOSFileSystem()
	b := bootstrap.NewBootstrapper(
		scanner.NewScannerWithFS(fsProvider, settings.Rules),
		fsProvider,
		prompter,
		logger,
		cmd.OutOrStdout(),
	)

	ctx, cancel := withInterrupt(cmd.Context(), cmd.ErrOrStderr())
	defer cancel()

	_, err = b.Run(ctx, bootstrap.Options{
		Root:          settings.Root,
		SelfPath:      settings.SelfPath,
		KeepArtifacts: settings.Keep,
	})
	if err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}
	return nil
}

// selectPrompter returns the form prompter when it was asked for and the
// session can draw it, and the line prompter otherwise.
func selectPrompter(form bool, settings runSettings, in io.Reader, out io.Writer, logger primer.Logger) primer.Prompter {
	if form {
		mode := tui.DetectMode()
		if settings.NonInteractive {
			mode = tui.ModeNonInteractive
		}
		if mode == tui.ModeInteractive {
			logger.Verbose("Using the terminal form")
			return prompt.NewFormPrompter(in, out)
		}
		logger.Verbose("--form needs an interactive terminal (%s session), reading answers line by line", mode)
	}
	return prompt.NewLinePrompter(in, out)
}
