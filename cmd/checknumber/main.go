// Package main provides the checknumber command, which reports the sign of an integer.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sivchari/drills/internal/config"
	"github.com/sivchari/drills/internal/console"
	"github.com/sivchari/drills/internal/logging"
	"github.com/sivchari/drills/internal/sign"
	"github.com/sivchari/drills/internal/version"
)

func newRootCmd() *cobra.Command {
	var (
		configFile string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "checknumber",
		Short: "Report whether a number is positive, negative or zero",
		Long: `checknumber reads one line from standard input and reports whether it is a
positive, negative or zero integer. Input that is not an integer is reported
and does not fail the command.`,
		Version:       version.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			logger := logging.New(verbose || cfg.Verbose, cmd.ErrOrStderr())
			defer func() { _ = logger.Sync() }()

			checker := sign.NewChecker(&cfg.Sign, logger)

			return checker.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "YAML config file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "write diagnostics to stderr")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", console.ErrorPrefix(console.IsTerminal(os.Stderr)), err)
		os.Exit(1)
	}
}
