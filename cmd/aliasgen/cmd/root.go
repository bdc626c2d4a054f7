package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"aliasgen/internal/config"
	"aliasgen/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// logLevel overrides the configured log level.
	logLevel string

	// rootCmd represents the base command when called without subcommands.
	rootCmd = &cobra.Command{
		Use:          "aliasgen",
		Short:        "Generate renamed duplicates of annotated Go declarations",
		SilenceUsage: true,
	}
)

// Execute runs the aliasgen CLI and exits with non-zero status on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to configuration file (default "+config.DefaultConfigFilename+" if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(genCmd, checkCmd, initCmd)
	version.AttachCobraVersionCommand(rootCmd)
}
