// 19 Oct 2026
// Per position summary of a set of reads. For each position along the
// reads, the fraction of each base and the mean quality. Also totals
// for the whole file, the kind of numbers people look at before
// deciding on filter limits.

package qprofile

import (
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/fqtools/pkg/fastq"
	"github.com/andrew-torda/fqtools/pkg/fqfilter"
)

// Rows in the base composition matrix. Anything not ACGT goes in other.
const (
	rowA = iota
	rowC
	rowG
	rowT
	rowOther
	nRow
)

var rowName = [nRow]string{"A", "C", "G", "T", "other"}

var symRow = func() (t [256]uint8) {
	for i := range t {
		t[i] = rowOther
	}
	t['A'], t['a'] = rowA, rowA
	t['C'], t['c'] = rowC, rowC
	t['G'], t['g'] = rowG, rowG
	t['T'], t['t'] = rowT, rowT
	return
}()

// Profile holds the results. Comp.Mat[row][pos] is the fraction of reads
// long enough to reach pos which have that base there.
type Profile struct {
	Comp     *matrix.FMatrix2d
	MeanQual []float32 // by position
	Depth    []int     // number of reads reaching each position
	NRead    int
	NBase    int
	GCPct    float64
	Q20Pct   float64 // percent of bases with quality 20 or more
	Q30Pct   float64
}

// Calc fills out a profile. If a quality string is shorter than its
// sequence, the missing scores count as zero.
func Calc(set *fastq.Set) *Profile {
	recs := set.Records()
	maxLen := 0
	for i := range recs {
		if n := len(recs[i].Seq()); n > maxLen {
			maxLen = n
		}
	}
	p := &Profile{
		Comp:     matrix.NewFMatrix2d(nRow, maxLen),
		MeanQual: make([]float32, maxLen),
		Depth:    make([]int, maxLen),
		NRead:    len(recs),
	}
	var nGC, nQ20, nQ30 int
	for i := range recs {
		seq, qual := recs[i].Seq(), recs[i].Qual()
		for j, c := range seq {
			row := symRow[c]
			p.Comp.Mat[row][j]++
			if row == rowC || row == rowG {
				nGC++
			}
			var q int
			if j < len(qual) {
				q = int(qual[j]) - fqfilter.PhredOffset
			}
			p.MeanQual[j] += float32(q)
			p.Depth[j]++
			if q >= 20 {
				nQ20++
				if q >= 30 {
					nQ30++
				}
			}
		}
		p.NBase += len(seq)
	}
	for j, d := range p.Depth { // turn sums into fractions and means
		if d == 0 {
			continue
		}
		for row := range p.Comp.Mat {
			p.Comp.Mat[row][j] /= float32(d)
		}
		p.MeanQual[j] /= float32(d)
	}
	if p.NBase > 0 {
		pct := func(n int) float64 { return 100 * float64(n) / float64(p.NBase) }
		p.GCPct, p.Q20Pct, p.Q30Pct = pct(nGC), pct(nQ20), pct(nQ30)
	}
	return p
}

// WriteCSV writes a header line, then one line per position, numbered
// from 1. The totals go to the end, as comments.
func (p *Profile) WriteCSV(w io.Writer) error {
	head := `"pos","depth"`
	for _, s := range rowName {
		head += fmt.Sprintf(`,"%s"`, s)
	}
	head += `,"mean qual"`
	if _, err := fmt.Fprintln(w, head); err != nil {
		return err
	}
	for j, d := range p.Depth {
		fmt.Fprintf(w, "%d,%d", j+1, d)
		for row := range p.Comp.Mat {
			fmt.Fprintf(w, ",%.3f", p.Comp.Mat[row][j])
		}
		if _, err := fmt.Fprintf(w, ",%.2f\n", p.MeanQual[j]); err != nil {
			return err
		}
	}
	const tail = "# reads %d bases %d GC%% %.2f Q20%% %.2f Q30%% %.2f\n"
	_, err := fmt.Fprintf(w, tail, p.NRead, p.NBase, p.GCPct, p.Q20Pct, p.Q30Pct)
	return err
}

// Mymain reads infile and writes its profile to outfile, or standard
// output if outfile is empty or "-".
func Mymain(infile, outfile string, opts fastq.RdOpts) error {
	set, _, err := fastq.ReadFile(infile, opts)
	if err != nil {
		return fmt.Errorf("Fail reading reads: %w", err)
	}
	var fp io.WriteCloser = os.Stdout
	if outfile != "" && outfile != "-" {
		if fp, err = os.Create(outfile); err != nil {
			return fmt.Errorf("profile output file %v: %w", outfile, err)
		}
		defer fp.Close()
	}
	return Calc(set).WriteCSV(fp)
}
