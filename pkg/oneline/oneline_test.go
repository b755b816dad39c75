// 19 Oct 2026

package oneline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/fqtools/pkg/oneline"
	"github.com/andrew-torda/fqtools/pkg/seq/common"
)

var multi = `>s1 first one
ACGT
ACGT
AC
>s2 protein, why not
MKV
LLX*
`

func TestConvert(t *testing.T) {
	fname, err := common.WrtTemp(multi)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	out := filepath.Join(t.TempDir(), "one")
	n, err := Convert(fname, out)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("wrote %d seqs, want 2", n)
	}
	got, err := os.ReadFile(out + ".fasta")
	if err != nil {
		t.Fatal(err)
	}
	want := ">s1 first one\nACGTACGTAC\n>s2 protein, why not\nMKVLLX*\n"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Error(diff)
	}
}

func TestOutName(t *testing.T) {
	for in, want := range map[string]string{
		"":        "oneline_output.fasta",
		"x":       "x.fasta",
		"x.fasta": "x.fasta",
	} {
		if got := OutName(in); got != want {
			t.Errorf("OutName(%q) = %q want %q", in, got, want)
		}
	}
}

func TestConvertMissing(t *testing.T) {
	dir := t.TempDir()
	if _, err := Convert(filepath.Join(dir, "nothing.fa"), filepath.Join(dir, "o")); err == nil {
		t.Error("missing input should fail")
	}
}
