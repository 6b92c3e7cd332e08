package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mgrebenkin/slnmatrix/internal/checksum"
	"github.com/mgrebenkin/slnmatrix/internal/config"
	"github.com/mgrebenkin/slnmatrix/internal/defines"
	"github.com/mgrebenkin/slnmatrix/internal/files/filesystem"
	"github.com/mgrebenkin/slnmatrix/internal/files/scanner"
	"github.com/mgrebenkin/slnmatrix/internal/logging"
	"github.com/mgrebenkin/slnmatrix/internal/matrix"
	"github.com/mgrebenkin/slnmatrix/internal/metadata"
	"github.com/mgrebenkin/slnmatrix/internal/plugins"
	"github.com/mgrebenkin/slnmatrix/internal/project"
	"github.com/mgrebenkin/slnmatrix/internal/services"
	"github.com/mgrebenkin/slnmatrix/internal/solution"
	"github.com/mgrebenkin/slnmatrix/internal/warnings"
	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

var syncCmd = &cobra.Command{
	Use:   "sync [workspace_path]",
	Short: "Synchronize the configuration matrix of a workspace",
	Long: `Sync rewrites the solution manifest and every project descriptor under
the workspace so they carry one configuration per valid
(platform, target, variant) combination.

The sync command:
1. Discovers the solution manifest at the workspace root and all project
   descriptors in the tree
2. Loads slnmatrix.yaml from the workspace root when present
3. Synthesizes a configuration block per valid combination in each
   document, conditions references, and consolidates warning policy
4. Writes back only documents whose content actually changed

A document that cannot be rewritten is left untouched on disk and
reported; the remaining documents are still processed.

Arguments:
  workspace_path    Workspace root directory (default: current directory)

Examples:
  # Synchronize the current directory
  slnmatrix sync

  # Synchronize a specific workspace with verbose output
  slnmatrix sync ./GameProject -v

  # Preview without writing anything
  slnmatrix sync ./GameProject --dry-run`,
	Args: AcceptWorkspacePath,
	RunE: runSync,
}

type syncFlagValues struct {
	dryRun    bool
	debugDump bool
}

var syncFlags syncFlagValues

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().BoolVar(&syncFlags.dryRun, "dry-run", false,
		"Rewrite every document in memory and report outcomes without writing")
	syncCmd.Flags().BoolVar(&syncFlags.debugDump, "debug-dump", false,
		"Dump the resolved configuration and per-document outcomes to stderr")
}

func runSync(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	_ = godotenv.Load()

	cfg, err := config.Load(root)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return fmt.Errorf("failed to load %s: %w", slnmatrix.ConfigFileName, err)
		}
		logger.Verbose("no %s in %s, using built-in defaults", slnmatrix.ConfigFileName, root)
		cfg = config.Default()
	}

	if syncFlags.debugDump {
		spew.Fdump(os.Stderr, cfg)
	}

	sync, err := buildSynchronizer(cfg, root, logger)
	if err != nil {
		return err
	}

	summary, err := sync.Run(root, services.Options{DryRun: syncFlags.dryRun})
	if err != nil {
		return err
	}

	if syncFlags.debugDump {
		spew.Fdump(os.Stderr, summary)
	}

	for _, result := range summary.Results {
		if result.Status == services.StatusFailed {
			logger.Error("%s: %v", result.Path, result.Err)
		}
	}
	return summary.FirstError()
}

// buildSynchronizer assembles the full rewrite pipeline from the tool
// configuration. Configured assembly overrides take precedence over
// .asmdef records discovered in the workspace.
func buildSynchronizer(cfg *config.ToolConfig, root string, logger slnmatrix.Logger) (*services.Synchronizer, error) {
	platforms, err := cfg.PlatformList()
	if err != nil {
		return nil, err
	}
	custom, err := cfg.CustomDefines()
	if err != nil {
		return nil, err
	}
	pluginSrc, err := plugins.NewConfigSource(platforms, cfg.PluginRules())
	if err != nil {
		return nil, err
	}

	fsProvider := filesystem.NewOSFileSystem()

	resolver := metadata.NewResolver(metadata.MultiSource{
		metadata.NewStaticSource(cfg.AssemblyRecords()),
		metadata.NewFileSource(root, fsProvider),
	})
	gen := matrix.New(platforms, resolver)

	var warningSrc slnmatrix.WarningSource = warnings.NewStaticSource(nil)
	if cfg.Warnings.ResponseFile != "" {
		warningSrc = warnings.NewResponseFileSource(filepath.Join(root, cfg.Warnings.ResponseFile), fsProvider)
	}

	return services.NewSynchronizer(
		scanner.NewScannerWithFS(fsProvider),
		solution.NewRewriter(gen, logger),
		project.NewRewriter(gen, resolver, defines.NewConfigSource(custom), pluginSrc, warningSrc, logger),
		fsProvider,
		checksum.New(),
		logger,
	), nil
}
