// 19 Oct 2026

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/fqtools/pkg/oneline"
)

func onelineCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "oneline input.fasta [output]",
		Short: "Put each fasta sequence on a single line",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var outfile string
			if len(args) > 1 {
				outfile = args[1]
			}
			n, err := oneline.Convert(args[0], outfile)
			if err != nil {
				return err
			}
			if verbose {
				fmt.Fprintln(cmd.ErrOrStderr(), "wrote", n, "sequences to", oneline.OutName(outfile))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "say how many sequences were written")
	return cmd
}
