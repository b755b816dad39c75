// 19 Oct 2026

package fqfilter_test

import (
	"errors"
	"strings"
	"testing"

	. "github.com/andrew-torda/fqtools/pkg/fqfilter"
)

func TestGCPercent(t *testing.T) {
	tests := []struct {
		seq  string
		want float64
	}{
		{"GGCC", 100},
		{"ATAT", 0},
		{"ATGCA", 40},
		{"gcGCa", 80},
		{"ACG", 66.67},
		{"ACGTTTT", 28.57},
		{"NNNNGC", 33.33},
	}
	for _, tt := range tests {
		got, err := GCPercent([]byte(tt.seq))
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("GCPercent(%q) got %v want %v", tt.seq, got, tt.want)
		}
	}
	if _, err := GCPercent(nil); !errors.Is(err, ErrEmptySeq) {
		t.Error("empty sequence should give ErrEmptySeq, got", err)
	}
}

// TestGCRange - whatever the sequence, GC is a percentage
func TestGCRange(t *testing.T) {
	syms := "ACGTNacgtn"
	for n := 1; n < 40; n++ {
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteByte(syms[(i*7+n)%len(syms)])
		}
		gc, _ := GCPercent([]byte(b.String()))
		if gc < 0 || gc > 100 {
			t.Fatalf("gc %v from %q", gc, b.String())
		}
	}
}

func TestMeanQual(t *testing.T) {
	tests := []struct {
		qual string
		want float64
	}{
		{"IIII", 40},
		{"!!!!", 0},
		{"!I", 20},
		{"#5?I", 2.0 + 20 + 30 + 40},
	}
	tests[3].want /= 4
	for _, tt := range tests {
		got, err := MeanQual([]byte(tt.qual))
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("MeanQual(%q) got %v want %v", tt.qual, got, tt.want)
		}
	}
	if _, err := MeanQual([]byte{}); !errors.Is(err, ErrEmptySeq) {
		t.Error("empty quality should give ErrEmptySeq")
	}
}
