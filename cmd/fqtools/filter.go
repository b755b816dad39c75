// 19 Oct 2026

package main

import (
	"github.com/spf13/cobra"

	"github.com/andrew-torda/fqtools/pkg/fqfilter"
)

func filterCmd() *cobra.Command {
	flags := fqfilter.DefaultCmdFlag()
	cmd := &cobra.Command{
		Use:   "filter [flags] input.fastq",
		Short: "Keep reads within GC, length and quality limits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.Log = cmd.ErrOrStderr()
			return fqfilter.Mymain(&flags, args[0])
		},
	}
	f := cmd.Flags()
	f.StringVarP(&flags.OutName, "out", "o", "", "output name, default is input base name")
	f.StringVarP(&flags.OutDir, "dir", "d", flags.OutDir, "results directory")
	f.VarP(&flags.Bounds.GC, "gc", "g", `GC percent, "hi" or "lo,hi"`)
	f.VarP(&flags.Bounds.Len, "len", "l", `sequence length, "hi" or "lo,hi"`)
	f.Float64VarP(&flags.Bounds.MinQual, "qual", "q", flags.Bounds.MinQual, "minimum mean quality (phred33)")
	f.StringVar(&flags.RdOpts.RunIDDelim, "runid", flags.RdOpts.RunIDDelim, "drop header text from here on")
	f.BoolVar(&flags.RdOpts.Strict, "strict", false, "incomplete records are an error")
	f.BoolVarP(&flags.Verbose, "verbose", "v", false, "print a summary")
	return cmd
}
