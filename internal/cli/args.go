package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AcceptWorkspacePath validates that at most one workspace_path argument
// is provided; the command falls back to the current directory when the
// argument is omitted.
func AcceptWorkspacePath(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf(`accepts at most 1 arg(s), received %d

Usage: %s

Example:
  %s ./GameProject`, len(args), cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}
