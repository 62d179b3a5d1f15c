package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// version is replaced at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	var verbose bool
	out := &output{format: formatText}

	root := &cobra.Command{
		Use:   "lexperm",
		Short: "Find the pth lexicographic permutation of a sequence",
		Long: `lexperm computes the pth (1-based) lexicographic permutation of a sequence of
distinct integers using the factorial number system, without generating the
permutations that come before it. The order of the given sequence defines the
lexicographic order. Indices larger than the number of permutations wrap around.

Run without a subcommand to print the demonstration examples.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
			return out.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, out)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&out.format, "format", "f", formatText,
		fmt.Sprintf("output `format`: %s, %s, or %s", formatText, formatJSON, formatYAML))

	root.AddCommand(newDemoCmd(out))
	root.AddCommand(newNthCmd(out))
	root.AddCommand(newCountCmd(out))
	root.AddCommand(newBatchCmd(out))

	return root
}
