// 19 Oct 2026

package fqfilter

import (
	"errors"
	"math"
)

// PhredOffset is subtracted from each quality character.
const PhredOffset = 33

var ErrEmptySeq = errors.New("empty sequence")

var isGC = [256]bool{'G': true, 'g': true, 'C': true, 'c': true}

// GCPercent returns the percentage of G and C in seq, upper or lower case,
// rounded to two decimal places.
func GCPercent(seq []byte) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrEmptySeq
	}
	n := 0
	for _, c := range seq {
		if isGC[c] {
			n++
		}
	}
	pct := float64(n) / float64(len(seq)) * 100
	return math.Round(pct*100) / 100, nil
}

// MeanQual returns the mean Phred score of a quality string.
// Each distinct symbol is counted, then weighted by its score.
func MeanQual(qual []byte) (float64, error) {
	if len(qual) == 0 {
		return 0, ErrEmptySeq
	}
	var cnt [256]int
	for _, c := range qual {
		cnt[c]++
	}
	total := 0
	for c, n := range cnt {
		if n != 0 {
			total += n * (c - PhredOffset)
		}
	}
	return float64(total) / float64(len(qual)), nil
}
