// 19 Oct 2026

package main

import (
	"github.com/spf13/cobra"

	"github.com/andrew-torda/fqtools/pkg/fastq"
	"github.com/andrew-torda/fqtools/pkg/qprofile"
)

func statsCmd() *cobra.Command {
	opts := fastq.DefaultRdOpts()
	cmd := &cobra.Command{
		Use:   "stats [flags] input.fastq [output.csv]",
		Short: "Base composition and quality along the reads",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var outfile string
			if len(args) > 1 {
				outfile = args[1]
			}
			return qprofile.Mymain(args[0], outfile, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "incomplete records are an error")
	return cmd
}
