// Package cli provides the command-line interface for depthls.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/depthls/depthls/internal/config"
	"github.com/depthls/depthls/internal/logging"
	"github.com/depthls/depthls/internal/version"
)

var (
	// Global flags
	cfgFile string
	verbose bool
	debug   bool

	// Global config, loaded in PersistentPreRunE
	cfg *config.Config

	// Global logger
	logger *logging.Logger

	// Global context for signal handling
	rootContext context.Context
	cancelFunc  context.CancelFunc
)

// NewRootCmd creates the root command. The tool has a single operation, so
// the listing flags live directly on the root.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "depthls",
		Short: "Depth-limited recursive directory listing",
		Long: `depthls ` + version.Version + ` - Built: ` + version.BuildTime + `
Recursively lists filesystem entries under one or more roots, descending at
most --depth levels. A matching directory is listed itself even when the
depth limit stops recursion into it.

Examples:
  # Immediate children only
  depthls --path . --depth 0

  # Go files up to three levels down
  depthls --path ./src --depth 3 --filter '*.go' --file

  # Expand the root as a glob: walk every run_* directory
  depthls --path 'runs/run_*' --depth 2

  # Take the root verbatim, wildcards and all
  depthls --literal-path 'weird[dir]' --depth 1`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if path == "" {
				path = config.DefaultPath()
			}
			var err error
			cfg, err = config.Load(path)
			if err != nil {
				return err
			}

			logger = logging.NewDefaultCLILogger()
			if verbose || debug || cfg.Trace {
				logging.SetGlobalLevel(zerolog.DebugLevel)
			}
			return nil
		},
		RunE: runListCmd,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows skipped-subtree traces)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output (same as --verbose)")

	addListFlags(rootCmd)

	rootCmd.Version = version.Version + " (" + version.BuildTime + ")"

	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	// Create a context that can be cancelled by signals
	rootContext, cancelFunc = context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		for sig := range sigChan {
			// sig is nil once the channel is closed below
			if sig != nil {
				fmt.Fprintf(os.Stderr, "\nreceived signal %v, stopping\n", sig)
				cancelFunc()
			}
		}
	}()

	rootCmd := NewRootCmd()
	err := rootCmd.Execute()

	signal.Stop(sigChan)
	close(sigChan)

	return err
}

// GetLogger returns the global CLI logger.
func GetLogger() *logging.Logger {
	if logger == nil {
		logger = logging.NewDefaultCLILogger()
	}
	return logger
}

// GetContext returns the global CLI context with signal handling.
func GetContext() context.Context {
	if rootContext == nil {
		return context.Background()
	}
	return rootContext
}
