// 19 Oct 2026

package main

import (
	"bufio"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/fqtools/pkg/randseq"
)

// randCmd makes test data.
func randCmd() *cobra.Command {
	args := randseq.RandSeqArgs{Cmmt: "read", Nseq: 10, MinLen: 50, MaxLen: 150}
	cmd := &cobra.Command{
		Use:   "rand [flags]",
		Short: "Write random fastq reads to standard output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := bufio.NewWriter(cmd.OutOrStdout())
			args.Wrtr = w
			if err := randseq.RandSeqMain(&args); err != nil {
				return err
			}
			return w.Flush()
		},
	}
	f := cmd.Flags()
	f.Int64VarP(&args.Iseed, "seed", "s", 0, "random number seed")
	f.StringVarP(&args.Cmmt, "name", "c", args.Cmmt, "read name prefix")
	f.IntVarP(&args.Nseq, "num", "n", args.Nseq, "number of reads")
	f.IntVar(&args.MinLen, "min", args.MinLen, "shortest read")
	f.IntVar(&args.MaxLen, "max", args.MaxLen, "longest read")
	f.BoolVar(&args.RunID, "runid", false, "add run ids to headers")
	f.BoolVar(&args.MkErr, "broken", false, "leave the last read incomplete")
	return cmd
}
