package main

import (
	"github.com/spf13/cobra"

	"github.com/reallyasi9/lexperm/internal/jobs"
	"github.com/reallyasi9/lexperm/internal/perm"
)

var demoJobs = jobs.List{
	{Index: 13, Sequence: perm.Sequence{1, 2, 3, 4}},
	{Index: 1000000, Sequence: perm.Sequence{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
}

func newDemoCmd(out *output) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the 13th permutation of [1, 2, 3, 4] and the millionth of [0, ..., 9]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, out)
		},
	}
}

func runDemo(cmd *cobra.Command, out *output) error {
	logger := loggerFromContext(cmd.Context())

	reports := make([]Report, len(demoJobs))
	for i, job := range demoJobs {
		p, err := perm.Permutation(job.Index, job.Sequence)
		if err != nil {
			return err
		}
		logger.Debug("computed permutation", "index", job.Index, "sequence", job.Sequence, "permutation", p)
		reports[i] = Report{Index: job.Index, Sequence: job.Sequence, Permutation: p}
	}
	return out.writeReports(cmd.OutOrStdout(), reports)
}
