// 19 Oct 2026
// Rewrite a fasta file so each sequence sits on one line.

package oneline

import (
	"fmt"
	"io"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"

	"github.com/andrew-torda/fqtools/pkg/seq/common"
)

const (
	Ext         = ".fasta"
	DefaultName = "oneline_output" + Ext
)

// OutName gives the output file name. Empty means the default.
func OutName(name string) string {
	if name == "" {
		return DefaultName
	}
	return common.AddExt(name, Ext)
}

// Convert reads fasta from infile and writes the sequences to outfile,
// each on one line after its comment line. Any symbols are accepted.
// It returns the number of sequences written.
func Convert(infile, outfile string) (int, error) {
	reader, err := fastx.NewReader(seq.Unlimit, infile, fastx.DefaultIDRegexp)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", infile, err)
	}
	defer reader.Close()

	outfile = OutName(outfile)
	outfh, err := xopen.Wopen(outfile)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", outfile, err)
	}
	defer outfh.Close()

	nseq := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nseq, fmt.Errorf("reading %s: %w", infile, err)
		}
		if _, err = fmt.Fprintf(outfh, ">%s\n%s\n", record.Name, record.Seq.Seq); err != nil {
			return nseq, fmt.Errorf("writing %s: %w", outfile, err)
		}
		nseq++
	}
	return nseq, nil
}
