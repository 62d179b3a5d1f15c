package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/reallyasi9/lexperm/internal/perm"
)

var _ pflag.Value = (*perm.Sequence)(nil)

func newNthCmd(out *output) *cobra.Command {
	var (
		index   uint64
		seq     perm.Sequence
		noCheck bool
	)

	cmd := &cobra.Command{
		Use:   "nth",
		Short: "Find the pth permutation of a sequence",
		Example: `  lexperm nth --index 13 --sequence 1,2,3,4
  lexperm nth -p 1000000 -s 0,1,2,3,4,5,6,7,8,9 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if !noCheck {
				if err := seq.Validate(); err != nil {
					return err
				}
			}
			p, err := perm.Permutation(index, seq)
			if err != nil {
				return err
			}

			nop := perm.NumberOfPermutations(seq)
			if index > nop {
				logger.Warn("index exceeds the number of permutations and wraps around", "index", index, "permutations", nop)
			}
			logger.Debug("computed permutation", "index", index, "length", seq.Len(), "permutations", nop)

			return out.writeReports(cmd.OutOrStdout(), []Report{{Index: index, Sequence: seq, Permutation: p}})
		},
	}

	cmd.Flags().Uint64VarP(&index, "index", "p", 1, "1-based permutation `index`")
	cmd.Flags().VarP(&seq, "sequence", "s", "comma-separated `list` of distinct integers, e.g. 1,2,3,4")
	cmd.Flags().BoolVar(&noCheck, "no-check", false, "skip the check that sequence elements are distinct")
	_ = cmd.MarkFlagRequired("sequence")

	return cmd
}
