// 19 Oct 2026

package fastq_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/fqtools/pkg/brokenio"
	. "github.com/andrew-torda/fqtools/pkg/fastq"
	"github.com/andrew-torda/fqtools/pkg/seq/common"
)

const threeRecs = `@r1
ACGT
+
IIII
@r2 runid=abc123 read=2
GGCCA
+r2
#####
@r3
acgtn
+
!!!!!
`

// TestReadSimple checks identifiers, order and that lines are kept as read
func TestReadSimple(t *testing.T) {
	set, stats, err := Read(strings.NewReader(threeRecs), DefaultRdOpts())
	if err != nil {
		t.Fatal("reading three records", err)
	}
	if stats.NRead != 3 || stats.NTrunc != 0 || stats.NIgnored != 0 {
		t.Fatalf("stats wrong: %+v", stats)
	}
	want := []string{"@r1", "@r2 ", "@r3"}
	if diff := cmp.Diff(want, set.IDs()); diff != "" {
		t.Fatalf("ids (-want +got):\n%s", diff)
	}
	r, ok := set.Get("@r2 ")
	if !ok {
		t.Fatal("could not find @r2")
	}
	if string(r.SeqLine) != "GGCCA\n" || string(r.Seq()) != "GGCCA" {
		t.Errorf("seq line got %q", r.SeqLine)
	}
	if string(r.Qual()) != "#####" || r.Term != "\n" {
		t.Errorf("qual %q term %q", r.Qual(), r.Term)
	}
}

// TestRunID checks the delimiter can be changed or turned off
func TestRunID(t *testing.T) {
	s := "@id1 runid=77 x\nA\n+\nI\n"
	tests := []struct {
		delim string
		want  string
	}{
		{DefaultRunIDDelim, "@id1 "},
		{"", "@id1 runid=77 x"},
		{" ", "@id1"},
		{"notthere", "@id1 runid=77 x"},
	}
	for _, tt := range tests {
		set, _, err := Read(strings.NewReader(s), RdOpts{RunIDDelim: tt.delim})
		if err != nil {
			t.Fatal(err)
		}
		if got := set.IDs()[0]; got != tt.want {
			t.Errorf("delim %q got %q want %q", tt.delim, got, tt.want)
		}
	}
}

// TestTruncated has a last record with missing lines. It is dropped
// quietly, unless we are strict.
func TestTruncated(t *testing.T) {
	broken := []string{
		threeRecs + "@r4\n",
		threeRecs + "@r4\nACGT\n",
		threeRecs + "@r4\nACGT\n+\n",
	}
	for _, s := range broken {
		set, stats, err := Read(strings.NewReader(s), DefaultRdOpts())
		if err != nil {
			t.Fatal("lenient read broke", err)
		}
		if set.Len() != 3 || stats.NTrunc != 1 {
			t.Errorf("got %d records, %d truncated on %q", set.Len(), stats.NTrunc, s)
		}
		opts := DefaultRdOpts()
		opts.Strict = true
		if _, _, err := Read(strings.NewReader(s), opts); !errors.Is(err, ErrFormat) {
			t.Errorf("strict read should give format error, got %v", err)
		}
	}
}

// TestStopAtNonHeader checks that reading stops at a line which is not a
// header and that trailing blank lines are not complained about.
func TestStopAtNonHeader(t *testing.T) {
	s := threeRecs + "junk\n@r5\nA\n+\nI\n"
	set, stats, err := Read(strings.NewReader(s), DefaultRdOpts())
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 3 || stats.NIgnored != 5 {
		t.Errorf("got %d records, %d ignored", set.Len(), stats.NIgnored)
	}
	_, stats, err = Read(strings.NewReader(threeRecs+"\n\n"), RdOpts{Strict: true})
	if err != nil || stats.NIgnored != 0 {
		t.Errorf("blank lines at end: err %v ignored %d", err, stats.NIgnored)
	}
}

// TestNoNewlineAtEnd - the last quality line has no terminator
func TestNoNewlineAtEnd(t *testing.T) {
	s := "@a\r\nAC\r\n+\r\nII"
	set, _, err := Read(strings.NewReader(s), DefaultRdOpts())
	if err != nil {
		t.Fatal(err)
	}
	r := set.Records()[0]
	if r.Header != "@a" || r.Term != "\r\n" || string(r.Qual()) != "II" || string(r.Seq()) != "AC" {
		t.Errorf("got %+v", r)
	}
}

func TestDuplicateKeepsPlace(t *testing.T) {
	s := "@a\nA\n+\nI\n@b\nC\n+\nI\n@a\nG\n+\nI\n"
	set, _, err := Read(strings.NewReader(s), DefaultRdOpts())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"@a", "@b"}, set.IDs()); diff != "" {
		t.Fatal(diff)
	}
	if r, _ := set.Get("@a"); string(r.Seq()) != "G" {
		t.Errorf("later record should win, got %q", r.Seq())
	}
}

// TestDuplicateAtEnd has the last record, with no final newline,
// replacing one from the start of the file.
func TestDuplicateAtEnd(t *testing.T) {
	s := "@a\nAC\n+\nII\n@b\nGG\n+\nII\n@a\nTT\n+\nJJ"
	set, _, err := Read(strings.NewReader(s), DefaultRdOpts())
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := Write(&b, set); err != nil {
		t.Fatal(err)
	}
	want := "@a\nTT\n+\nJJ\n@b\nGG\n+\nII\n"
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	// a missing newline on the real last record is left alone
	last := "@b\nGG\n+\nII"
	if set, _, err = Read(strings.NewReader(last), DefaultRdOpts()); err != nil {
		t.Fatal(err)
	}
	b.Reset()
	if err := Write(&b, set); err != nil {
		t.Fatal(err)
	}
	if b.String() != last {
		t.Errorf("last record got %q", b.String())
	}
}

func TestReadFileMissing(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "not_here.fastq"), DefaultRdOpts())
	if !errors.Is(err, ErrNoFile) || !errors.Is(err, fs.ErrNotExist) {
		t.Fatal("wanted ErrNoFile, got", err)
	}
}

func TestReadFileEmpty(t *testing.T) {
	fname, err := common.WrtTemp("")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	set, _, err := ReadFile(fname, DefaultRdOpts())
	if err != nil || set.Len() != 0 {
		t.Fatal("empty file gave", set.Len(), err)
	}
}

// TestRoundTrip reads a file, writes it to a results directory and
// checks the bytes are the same, except for the separator lines.
func TestRoundTrip(t *testing.T) {
	fname, err := common.WrtTemp(threeRecs)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	set, _, err := ReadFile(fname, RdOpts{})
	if err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(t.TempDir(), ResultsDir)
	path, err := WriteFile(set, dir, "out")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "out.fastq") {
		t.Error("output went to", path)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Replace(threeRecs, "+r2\n", "+\n", 1)
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
	if info, err := os.Stat(path); err != nil {
		t.Error(err)
	} else if mode := info.Mode().Perm(); mode != 0o644 {
		t.Errorf("output mode %v, want -rw-r--r--", mode)
	}
}

func TestWriteFileBadDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "afile")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := WriteFile(NewSet(0), filepath.Join(blocker, "results"), "x")
	if !errors.Is(err, ErrIO) {
		t.Fatal("wanted ErrIO, got", err)
	}
}

func TestOutName(t *testing.T) {
	for in, want := range map[string]string{
		"reads":       "reads.fastq",
		"reads.fastq": "reads.fastq",
		"reads.fq":    "reads.fq.fastq",
	} {
		if got := OutName(in); got != want {
			t.Errorf("OutName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWriteZeroSet(t *testing.T) {
	var b bytes.Buffer
	var set Set
	if err := Write(&b, &set); err != nil || b.Len() != 0 {
		t.Fatal("zero set wrote", b.Len(), "bytes", err)
	}
}

// TestReadError - a failing reader gives an error, not a short set
func TestReadError(t *testing.T) {
	rdr := brokenio.NewReader(strings.NewReader(threeRecs), 20)
	set, _, err := Read(rdr, DefaultRdOpts())
	if !errors.Is(err, brokenio.ErrBroken) || set != nil {
		t.Fatalf("wanted ErrBroken and no set, got %v", err)
	}
}
