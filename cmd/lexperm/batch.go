package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reallyasi9/lexperm/internal/jobs"
)

func newBatchCmd(out *output) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Find the permutations listed in a YAML or TOML job file",
		Long: `batch reads a job file with a top-level "jobs" list. Each job has an optional
name, a 1-based index and a sequence:

  jobs:
    - name: small
      index: 13
      sequence: [1, 2, 3, 4]

TOML files use [[jobs]] tables with the same keys. The file format is chosen by
extension (.yaml, .yml or .toml).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			prog := newProgress(logger)

			list, err := jobs.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded jobs", "path", args[0], "jobs", len(list), "names", list.Names())

			for first, dups := range list.Duplicates() {
				logger.Warn("duplicate jobs", "job", first, "duplicates", dups)
			}

			results, err := jobs.Run(ctx, list, workers)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Computed %d permutations", len(results)))

			reports := make([]Report, len(results))
			for i, r := range results {
				reports[i] = newReport(r)
			}
			if err := out.writeReports(cmd.OutOrStdout(), reports); err != nil {
				return err
			}

			if n := jobs.Failed(results); n > 0 {
				return fmt.Errorf("%d of %d jobs failed", n, len(results))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of concurrent `workers` (default GOMAXPROCS)")

	return cmd
}
