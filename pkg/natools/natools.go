// 19 Oct 2026

// Package natools does simple things to single DNA or RNA sequences:
// transcribe, reverse, complement and so on.
// The operations are a fixed set, named by the Cmd type.
package natools

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/andrew-torda/fqtools/pkg/fqfilter"
)

var (
	ErrBadNtide = errors.New("not a nucleic acid")
	ErrBadCmd   = errors.New("no such command")
)

// Cmd says which operation to run on a sequence.
type Cmd uint8

const (
	Transcribe Cmd = iota
	Reverse
	Complement
	RevComp
	CountGC
	Kind
	Length
	nCmd
)

var cmdName = [nCmd]string{
	Transcribe: "transcribe",
	Reverse:    "reverse",
	Complement: "complement",
	RevComp:    "reverse_complement",
	CountGC:    "count_gc",
	Kind:       "dna_or_rna",
	Length:     "get_sequence_length",
}

func (c Cmd) String() string {
	if c >= nCmd {
		return "Cmd(" + strconv.Itoa(int(c)) + ")"
	}
	return cmdName[c]
}

// ParseCmd turns a name like "reverse_complement" into a Cmd.
func ParseCmd(s string) (Cmd, error) {
	for c, name := range cmdName {
		if s == name {
			return Cmd(c), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadCmd, s)
}

// AllCmds lists every command, in order.
func AllCmds() []Cmd {
	cmds := make([]Cmd, nCmd)
	for i := range cmds {
		cmds[i] = Cmd(i)
	}
	return cmds
}

// Lookup tables. A zero entry means the symbol is not allowed.
var (
	dna2rna = [256]byte{
		'A': 'A', 'a': 'a', 'T': 'U', 't': 'u', 'G': 'G', 'g': 'g', 'C': 'C', 'c': 'c',
		'U': 'U', 'u': 'u'}
	dnaCmpl = [256]byte{
		'A': 'T', 'a': 't', 'T': 'A', 't': 'a', 'G': 'C', 'g': 'c', 'C': 'G', 'c': 'g'}
	rnaCmpl = [256]byte{
		'A': 'U', 'a': 'u', 'U': 'A', 'u': 'a', 'G': 'C', 'g': 'c', 'C': 'G', 'c': 'g'}
)

// hasTU says if a sequence has thymine or uracil.
func hasTU(s string) (hasT, hasU bool) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'T', 't':
			hasT = true
		case 'U', 'u':
			hasU = true
		}
	}
	return
}

// Check returns an error if s is empty, has anything other than
// ACGTU (either case) or has both T and U.
func Check(s string) error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty sequence", ErrBadNtide)
	}
	for i := 0; i < len(s); i++ {
		if dna2rna[s[i]] == 0 {
			return fmt.Errorf("%w: bad symbol %q at position %d in %q", ErrBadNtide, s[i], i, s)
		}
	}
	if hasT, hasU := hasTU(s); hasT && hasU {
		return fmt.Errorf("%w: %q has T and U", ErrBadNtide, s)
	}
	return nil
}

func mapSeq(s string, table *[256]byte) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b[i] = table[s[i]]
	}
	return string(b)
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func complement(s string) string {
	if _, hasU := hasTU(s); hasU {
		return mapSeq(s, &rnaCmpl)
	}
	return mapSeq(s, &dnaCmpl)
}

// kind says "dna" if there is a T, "rna" if there is a U.
// Without either, we cannot tell.
func kind(s string) string {
	hasT, hasU := hasTU(s)
	switch {
	case hasT:
		return "dna"
	case hasU:
		return "rna"
	}
	return "unknown"
}

// apply runs one command on one checked sequence.
func apply(c Cmd, s string) string {
	switch c {
	case Transcribe:
		return mapSeq(s, &dna2rna)
	case Reverse:
		return reverse(s)
	case Complement:
		return complement(s)
	case RevComp:
		return complement(reverse(s))
	case CountGC:
		gc, _ := fqfilter.GCPercent([]byte(s))
		return strconv.FormatFloat(gc, 'f', -1, 64)
	case Kind:
		return kind(s)
	case Length:
		return strconv.Itoa(len(s))
	}
	panic("natools: unhandled command " + c.String())
}

// Run checks every sequence and then applies c to each.
// There is one result per sequence.
func Run(c Cmd, seqs ...string) ([]string, error) {
	if c >= nCmd {
		return nil, fmt.Errorf("%w: %v", ErrBadCmd, c)
	}
	if len(seqs) == 0 {
		return nil, fmt.Errorf("%w: no sequences given", ErrBadNtide)
	}
	for _, s := range seqs {
		if err := Check(s); err != nil {
			return nil, err
		}
	}
	out := make([]string, len(seqs))
	for i, s := range seqs {
		out[i] = apply(c, s)
	}
	return out, nil
}
