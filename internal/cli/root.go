// Package cli provides the Cobra command structure for symtool.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aloe-os/symtool/internal/logging"
	"github.com/aloe-os/symtool/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root symtool command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "symtool",
		Short: "Heuristic symbol extraction and map-file rewriting",
		Long: `symtool finds candidate function symbols in C-like source trees, looks up
symbol addresses in map files, and applies symbol renames back onto a map
file in place.

Map files have no fixed column layout. The only requirement is that a
symbol and its address share a line; everything else is recovered by
per-line heuristics.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newExtractCommand())
	rootCmd.AddCommand(newAddrCommand())
	rootCmd.AddCommand(newUpdateCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// loadConfig resolves the configuration for a subcommand run: the explicit
// --config path when given, else .symtool.yaml in the working directory,
// else defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}
	return discoverConfig(configPath)
}

// discoverConfig is loadConfig for commands that manage their own argument
// parsing and already hold the config path.
func discoverConfig(configPath string) (*config.Config, error) {
	logger := logging.Default()

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	cfg, loadedFrom, err := config.Discover(workDir, configPath)
	if err != nil {
		return nil, err
	}
	if loadedFrom != "" {
		logger.Debug("configuration loaded", logging.FieldConfig, loadedFrom)
	}

	return cfg, nil
}
