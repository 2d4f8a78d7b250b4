package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/primer/pkg/primer"
)

var rootCmd = &cobra.Command{
	Use:   "primer",
	Short: "Configure a freshly created project template",
	Long: `primer configures a repository created from a project template.

It asks for the project name, description, homepage URL, author email,
GitHub username and the author's full name, replaces the matching
%PLACEHOLDER% tokens in every file of the repository, then deletes itself
and the template README.

The .git directory, .DS_Store files and files named " " are never touched.
Answers are read one per line, so they may be piped in.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid input (malformed author name, input closed, form cancelled)
  11 - Repository root missing or empty
  13 - Placeholder substitution failed
  14 - Cleanup failed`,
	Args:         noArgs,
	RunE:         runBootstrap,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr())
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", primer.ErrUsage, err)
	})

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringP("root", "r", "", "Repository root (default: directory of the primer executable, or $PRIMER_ROOT)")
	rootCmd.PersistentFlags().String("self", "", "Tool artifact to delete after configuration (default: the primer executable when it lives under the root)")
	rootCmd.PersistentFlags().StringArrayP("exclude", "x", nil, "Extra doublestar glob to leave untouched (repeatable, adds to $PRIMER_EXCLUDE)")

	rootCmd.Flags().Bool("keep", false, "Do not delete the tool artifact and README.md")
	rootCmd.Flags().Bool("form", false, "Collect all answers in one terminal form")

	_ = rootCmd.RegisterFlagCompletionFunc("root", completeDirectories)
	_ = rootCmd.RegisterFlagCompletionFunc("self", completeFiles)
}

// boolSetting returns the flag value when the flag was given, else fallback.
func boolSetting(cmd *cobra.Command, name string, fallback bool) bool {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return fallback
	}
	return v
}
