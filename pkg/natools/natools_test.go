// 19 Oct 2026

package natools_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/fqtools/pkg/natools"
)

func TestRun(t *testing.T) {
	tests := []struct {
		cmd  Cmd
		in   []string
		want []string
	}{
		{Transcribe, []string{"ATGc", "tttt"}, []string{"AUGc", "uuuu"}},
		{Reverse, []string{"ACGT", "A"}, []string{"TGCA", "A"}},
		{Complement, []string{"AtGC"}, []string{"TaCG"}},
		{Complement, []string{"AUGc"}, []string{"UACg"}},
		{RevComp, []string{"AACG"}, []string{"CGTT"}},
		{RevComp, []string{"AACU"}, []string{"AGUU"}},
		{CountGC, []string{"GCAT", "ACG", "aaaa"}, []string{"50", "66.67", "0"}},
		{Kind, []string{"ACGT", "ACGU", "ACG"}, []string{"dna", "rna", "unknown"}},
		{Length, []string{"ACGT", "A"}, []string{"4", "1"}},
	}
	for _, tt := range tests {
		got, err := Run(tt.cmd, tt.in...)
		if err != nil {
			t.Fatal(tt.cmd, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%v (-want +got):\n%s", tt.cmd, diff)
		}
	}
}

func TestBadSeqs(t *testing.T) {
	for _, s := range []string{"", "ACGTU", "ACGX", "AC GT"} {
		if _, err := Run(Reverse, "ACGT", s); !errors.Is(err, ErrBadNtide) {
			t.Errorf("%q should be rejected, got %v", s, err)
		}
	}
	if _, err := Run(Length); !errors.Is(err, ErrBadNtide) {
		t.Error("no sequences should be an error")
	}
}

// TestCmdNames checks every command has a name that parses back to itself.
func TestCmdNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range AllCmds() {
		name := c.String()
		if seen[name] {
			t.Errorf("name %q used twice", name)
		}
		seen[name] = true
		if back, err := ParseCmd(name); err != nil || back != c {
			t.Errorf("ParseCmd(%q) gave %v, %v", name, back, err)
		}
	}
	if _, err := ParseCmd("translate"); !errors.Is(err, ErrBadCmd) {
		t.Error("unknown command accepted")
	}
	if _, err := Run(Cmd(200), "ACGT"); !errors.Is(err, ErrBadCmd) {
		t.Error("out of range command accepted")
	}
}

func ExampleRun() {
	out, err := Run(RevComp, "ATGGC", "aacg")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output: [GCCAT cgtt]
}
