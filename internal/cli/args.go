package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/primer/pkg/primer"
)

// noArgs rejects positional arguments. The repository root is a flag, so a
// stray argument is most likely a mistyped subcommand.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return fmt.Errorf(`%w: unexpected argument %q

Usage: %s

Use --root to configure a repository other than the executable's directory.`,
		primer.ErrUsage, args[0], cmd.UseLine())
}
