// 19 Oct 2026

package fqfilter

import (
	"github.com/andrew-torda/fqtools/pkg/fastq"
)

// Stats counts what happened to reads. A read is rejected for the
// first limit it fails, checked in the order GC, length, quality.
type Stats struct {
	NIn    int
	NKeep  int
	NEmpty int
	NGC    int
	NLen   int
	NQual  int
}

// why returns a pointer to the counter for the reason r is rejected,
// or nil if it passes.
func (st *Stats) why(r *fastq.Record, b *Bounds) *int {
	seq := r.Seq()
	gc, err := GCPercent(seq)
	if err != nil {
		return &st.NEmpty
	}
	if !b.GC.Contains(gc) {
		return &st.NGC
	}
	if !b.Len.Contains(float64(len(seq))) {
		return &st.NLen
	}
	q, err := MeanQual(r.Qual())
	if err != nil || q < b.MinQual {
		return &st.NQual
	}
	return nil
}

// Filter returns a new set with the reads from set which pass all the
// limits in b, in their original order. set is not changed.
func Filter(set *fastq.Set, b Bounds) (*fastq.Set, Stats) {
	var st Stats
	recs := set.Records()
	st.NIn = len(recs)
	kept := fastq.NewSet(len(recs))
	for i := range recs {
		if cnt := st.why(&recs[i], &b); cnt != nil {
			*cnt++
			continue
		}
		kept.Add(recs[i])
	}
	st.NKeep = kept.Len()
	return kept, st
}
