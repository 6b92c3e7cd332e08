package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "slnmatrix",
	Short: "Build-configuration matrix synchronizer for C# solutions",
	Long: `slnmatrix expands a solution into a full build-configuration matrix.

For every platform, build target (Editor/Player) and variant (Clean/Custom)
it synthesizes a configuration in the solution manifest and in each project
descriptor, computes the preprocessor-symbol set for that combination, and
conditions file and inter-project references so they are only active where
their target is actually compatible. Running it again converges: generated
configurations are recognized and regenerated in place.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - No solution manifest found under the workspace root
  12 - Rewritten document could not be written back`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for slnmatrix")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
