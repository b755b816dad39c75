// 19 Oct 2026

package fqfilter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/andrew-torda/fqtools/pkg/fastq"
)

// CmdFlag has everything from the command line, apart from the
// input file name.
type CmdFlag struct {
	OutName string // output name, default is the base of the input name
	OutDir  string // results directory
	Bounds  Bounds
	RdOpts  fastq.RdOpts
	Verbose bool
	Log     io.Writer // warnings and the summary. nil means stderr
}

// DefaultCmdFlag keeps every read and writes to the usual results directory.
func DefaultCmdFlag() CmdFlag {
	return CmdFlag{
		OutDir: fastq.ResultsDir,
		Bounds: DefaultBounds(),
		RdOpts: fastq.DefaultRdOpts(),
	}
}

// warnColour is yellow if w is a terminal and plain otherwise.
// color itself only looks at stdout.
func warnColour(w io.Writer) *color.Color {
	c := color.New(color.FgYellow)
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) && os.Getenv("NO_COLOR") == "" {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// report writes warnings about a messy input file and, if asked for,
// a summary of the filtering.
func report(w io.Writer, flags *CmdFlag, infile, outpath string, rd fastq.RdStats, st Stats) {
	warn := warnColour(w)
	if rd.NTrunc > 0 {
		warn.Fprintf(w, "Warning: %s ends with %d incomplete record(s), dropped\n", infile, rd.NTrunc)
	}
	if rd.NIgnored > 0 {
		warn.Fprintf(w, "Warning: stopped reading %s after %d records, %d lines ignored\n",
			infile, rd.NRead, rd.NIgnored)
	}
	if !flags.Verbose {
		return
	}
	fmt.Fprintf(w, "read %d, kept %d. rejected gc %d, length %d, quality %d, empty %d\n",
		st.NIn, st.NKeep, st.NGC, st.NLen, st.NQual, st.NEmpty)
	fmt.Fprintln(w, "wrote", outpath)
}

// Mymain reads infile, filters it and writes the result. Nothing is
// written if any step fails.
func Mymain(flags *CmdFlag, infile string) error {
	w := flags.Log
	if w == nil {
		w = os.Stderr
	}
	outName := flags.OutName
	if outName == "" {
		outName = filepath.Base(infile)
	}
	outDir := flags.OutDir
	if outDir == "" {
		outDir = fastq.ResultsDir
	}

	set, rdStats, err := fastq.ReadFile(infile, flags.RdOpts)
	if err != nil {
		return fmt.Errorf("Fail reading reads: %w", err)
	}
	kept, st := Filter(set, flags.Bounds)
	outpath, err := fastq.WriteFile(kept, outDir, outName)
	if err != nil {
		return err
	}
	report(w, flags, infile, outpath, rdStats, st)
	return nil
}
