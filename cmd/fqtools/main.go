// 19 Oct 2026

package main

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	. "github.com/andrew-torda/fqtools/pkg/seq/common"
)

// usageError is a bad command line, as opposed to a failure while working.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

// usageArgs marks argument count errors as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// rootCmd has one child per tool. The list is fixed here.
func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fqtools",
		Short:         "Filter fastq files and other small sequence jobs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(filterCmd(), statsCmd(), naCmd(), protCmd(), onelineCmd(), randCmd())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })
	for _, c := range root.Commands() {
		if c.Args != nil {
			c.Args = usageArgs(c.Args)
		}
	}
	return root
}

// exitCode maps an error from the command tree to the process exit code.
func exitCode(err error) int {
	var uerr usageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &uerr):
		return ExitUsageError
	case strings.HasPrefix(err.Error(), "unknown command"): // from cobra
		return ExitUsageError
	}
	return ExitFailure
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("fqtools: ")
	err := rootCmd().Execute()
	if err != nil {
		log.Println(err)
	}
	os.Exit(exitCode(err))
}
