// 19 Oct 2026

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/fqtools/pkg/prottools"
)

func protCmd() *cobra.Command {
	var names []string
	for _, c := range prottools.AllCmds() {
		names = append(names, c.String())
	}
	return &cobra.Command{
		Use:       "prot command sequence [sequence ...]",
		Short:     "Mass, composition, ... of protein sequences",
		Long:      "Commands are " + strings.Join(names, ", "),
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := prottools.ParseCmd(args[0])
			if err != nil {
				return err
			}
			out, err := prottools.Run(c, args[1:]...)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, s := range out {
				fmt.Fprintln(w, s)
			}
			return nil
		},
	}
}
