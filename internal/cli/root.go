package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/flowgen/internal/export"
	"github.com/faizmokh/flowgen/internal/files"
	"github.com/faizmokh/flowgen/internal/version"
)

const (
	defaultStartDate = "2025-07-01"
	defaultEndDate   = "2025-08-10"
	defaultOutput    = "tasks.csv"
)

// NewRootCommand creates the flowgen command. The tool is single-purpose, so
// generation runs directly on the root command.
func NewRootCommand(ctx context.Context) *cobra.Command {
	var (
		startFlag  string
		endFlag    string
		outputFlag string
		seedFlag   int64
	)

	cmd := &cobra.Command{
		Use:     "flowgen",
		Short:   "Generate a fake FLOW time-tracking export CSV for test fixtures.",
		Version: version.Info(),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDate(startFlag)
			if err != nil {
				return err
			}
			end, err := parseDate(endFlag)
			if err != nil {
				return err
			}

			file, path, err := files.CreateOutput(outputFlag)
			if err != nil {
				return err
			}

			stats, runErr := export.Run(ctx, file, export.Options{
				Start: start,
				End:   end,
				Seed:  seedFlag,
			})
			if closeErr := file.Close(); runErr == nil {
				runErr = closeErr
			}
			if runErr != nil {
				return runErr
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderSummary(stats, path))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&startFlag, "start", defaultStartDate, "First date to generate (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endFlag, "end", defaultEndDate, "Last date to generate, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&outputFlag, "output", defaultOutput, "Path of the CSV file to write")
	cmd.Flags().Int64Var(&seedFlag, "seed", time.Now().UnixNano(), "Random seed; the same seed reproduces the same export")

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	cmd := NewRootCommand(ctx)
	return cmd.Execute()
}

// Main is a helper used by cmd/flowgen/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
