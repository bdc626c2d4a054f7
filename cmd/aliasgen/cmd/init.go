package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"aliasgen/internal/service/aliasgen"
)

var (
	initDirective string
	initMode      string
	initSuffix    string
	initForce     bool

	// initCmd writes a settings file with the defaults.
	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return aliasgen.Init(ctx, &aliasgen.Options{
				ConfigPath: configPath,
				Directive:  initDirective,
				Mode:       initMode,
				Suffix:     initSuffix,
				LogLevel:   logLevel,
				Force:      initForce,
				Stdout:     cmd.OutOrStdout(),
				Stderr:     cmd.ErrOrStderr(),
			})
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	initCmd.Flags().StringVar(&initDirective, "directive", "", "directive name without '@' (default alias)")
	initCmd.Flags().StringVar(&initMode, "mode", "", "output mode: companion or inplace")
	initCmd.Flags().StringVar(&initSuffix, "suffix", "", "companion file suffix (default _alias.go)")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing settings file")
}
