package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"aliasgen/internal/service/aliasgen"
)

var (
	checkDirective string
	checkDump      bool

	// checkCmd validates directives without writing anything.
	checkCmd = &cobra.Command{
		Use:   "check [packages or files]",
		Short: "Validate alias directives without generating code",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return aliasgen.Check(ctx, &aliasgen.Options{
				ConfigPath: configPath,
				Patterns:   args,
				Directive:  checkDirective,
				LogLevel:   logLevel,
				Dump:       checkDump,
				Stdout:     cmd.OutOrStdout(),
				Stderr:     cmd.ErrOrStderr(),
			})
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	checkCmd.Flags().StringVar(&checkDirective, "directive", "", "directive name without '@' (default alias)")
	checkCmd.Flags().BoolVar(&checkDump, "dump", false, "print the parsed alias list of every annotated declaration")
}
