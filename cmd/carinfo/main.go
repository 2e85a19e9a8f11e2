// Package main provides the carinfo command, which prints the details of a car.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sivchari/drills/internal/config"
	"github.com/sivchari/drills/internal/console"
	"github.com/sivchari/drills/internal/logging"
	"github.com/sivchari/drills/internal/vehicle"
	"github.com/sivchari/drills/internal/version"
)

func newRootCmd() *cobra.Command {
	var (
		configFile string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "carinfo",
		Short: "Print the brand, model and year of a car",
		Long: `carinfo reads three lines from standard input (brand, model and year) and
prints them as a car details report. A missing line or a year that is not an
integer fails the command without printing a report.`,
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

			printer := vehicle.NewPrinter(logger)

			return printer.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
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
