package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"aliasgen/internal/service/aliasgen"
)

var (
	genDirective string
	genMode      string
	genSuffix    string
	genDryRun    bool

	// genCmd expands directives and writes the output files.
	genCmd = &cobra.Command{
		Use:   "gen [packages or files]",
		Short: "Expand alias directives and write the generated declarations",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return aliasgen.Run(ctx, &aliasgen.Options{
				ConfigPath: configPath,
				Patterns:   args,
				Directive:  genDirective,
				Mode:       genMode,
				Suffix:     genSuffix,
				LogLevel:   logLevel,
				DryRun:     genDryRun,
				Stdout:     cmd.OutOrStdout(),
				Stderr:     cmd.ErrOrStderr(),
			})
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	genCmd.Flags().StringVar(&genDirective, "directive", "", "directive name without '@' (default alias)")
	genCmd.Flags().StringVar(&genMode, "mode", "", "output mode: companion or inplace")
	genCmd.Flags().StringVar(&genSuffix, "suffix", "", "companion file suffix (default _alias.go)")
	genCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "print generated files instead of writing them")
}
