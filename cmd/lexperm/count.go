package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/reallyasi9/lexperm/internal/perm"
)

func newCountCmd(out *output) *cobra.Command {
	return &cobra.Command{
		Use:   "count N",
		Short: fmt.Sprintf("Print the number of permutations of N elements (N <= %d)", perm.MaxLength),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid length %q: %w", args[0], err)
			}
			if n > perm.MaxLength {
				return fmt.Errorf("%d! does not fit in 64 bits (maximum length %d): %w", n, perm.MaxLength, perm.ErrInvalidArgument)
			}
			c := countReport{N: n, Permutations: perm.Factorial(n)}
			return out.write(cmd.OutOrStdout(), c, []string{c.String()})
		},
	}
}
