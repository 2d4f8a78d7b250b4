package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/primer/internal/files/filesystem"
	"github.com/vvka-141/primer/internal/files/scanner"
	"github.com/vvka-141/primer/internal/logging"
	"github.com/vvka-141/primer/internal/report"
	"github.com/vvka-141/primer/pkg/primer"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List the placeholders still present in the repository",
	Long: `Walk the repository exactly as a configuration run would and report, per
file, which %PLACEHOLDER% tokens it still contains. Nothing is modified.

Formats:
  text  human-readable listing of files that still hold placeholders
  yaml  full report of every eligible file, for scripts`,
	Args: noArgs,
	RunE: runScan,
}

var scanFlags struct {
	format string
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVarP(&scanFlags.format, "format", "f", "text", "Output format: text or yaml")
	_ = scanCmd.RegisterFlagCompletionFunc("format", completeScanFormats)
}

func runScan(cmd *cobra.Command, args []string) error {
	if scanFlags.format != "text" && scanFlags.format != "yaml" {
		return fmt.Errorf("%w: unknown format %q (want text or yaml)", primer.ErrUsage, scanFlags.format)
	}

	settings, err := loadRunSettings(cmd)
	if err != nil {
		return err
	}
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), settings.Verbose)

	fsProvider := filesystem.NewOSFileSystem()
	files, err := scanner.NewScannerWithFS(fsProvider, settings.Rules).ScanDirectory(settings.Root)
	if err != nil {
		return err
	}
	if settings.SelfPath != "" {
		files = files.Without(settings.SelfPath)
	}
	logger.Verbose("Scanned %d file(s) under %s", len(files), settings.Root)

	r, err := report.Build(files, fsProvider, settings.Root)
	if err != nil {
		return err
	}

	if scanFlags.format == "yaml" {
		return report.WriteYAML(cmd.OutOrStdout(), r)
	}
	return report.WriteText(cmd.OutOrStdout(), r)
}
