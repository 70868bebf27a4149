package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/gn/internal/config"
	"github.com/raphi011/gn/internal/log"
	"github.com/raphi011/gn/internal/output"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	configPath string
)

// Command group IDs for organizing help output
const (
	GroupCore    = "core"
	GroupUtility = "utility"
	GroupConfig  = "config"
)

// errCancelled marks a user-initiated abort (ESC or Ctrl-C in the
// selector). It maps to exit code 130 so shell wrappers can tell a
// cancel from a failure.
var errCancelled = errors.New("cancelled")

// rootCmd represents the base command. Running gn without a subcommand
// starts the interactive navigation flow.
var rootCmd = &cobra.Command{
	Use:   "gn",
	Short: "Fuzzy git repository navigator",
	Long: `gn discovers git repositories under a base directory, caches the
result set and lets you jump to one through a fuzzy selector with a
live repository preview.

The selected path is printed on stdout; pair it with the shell
integration from "gn init <shell>" to cd into the selection.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	Args:                       cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags are parsed at this point, so the logger sees -v/-q.
		ctx := cmd.Context()
		ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose, quiet))
		ctx = output.WithPrinter(ctx, os.Stdout)
		cmd.SetContext(ctx)
		return nil
	},
	RunE: runNavigate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errCancelled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration honoring the global --config flag
// and validates it.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Navigation flags on the root command itself
	addNavigateFlags(rootCmd)

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newPreviewCmd())

	// Utility commands
	rootCmd.AddCommand(newCacheCmd())
	rootCmd.AddCommand(newInitCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
}
