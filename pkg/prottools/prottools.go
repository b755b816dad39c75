// 19 Oct 2026

// Package prottools does small calculations on protein sequences in one
// letter code: length, mass, composition, extinction coefficient.
// The operations are a fixed set, named by Cmd.
package prottools

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrBadProt = errors.New("not a protein sequence")
	ErrBadCmd  = errors.New("no such command")
)

// Cmd says which operation to run on a protein.
type Cmd uint8

const (
	Length     Cmd = iota // number of residues
	NuclLength            // length of the coding nucleotide sequence
	Mass                  // molecular mass in daltons
	Content               // count of each residue type
	To3                   // three letter code
	Extinction            // extinction coefficient at 280 nm
	nCmd
)

var cmdName = [nCmd]string{
	Length:     "count_length",
	NuclLength: "count_nucleotide_length",
	Mass:       "count_molecular_mass",
	Content:    "show_content",
	To3:        "convert_1_to_3",
	Extinction: "count_extinction_280nm",
}

func (c Cmd) String() string {
	if c >= nCmd {
		return "Cmd(" + strconv.Itoa(int(c)) + ")"
	}
	return cmdName[c]
}

// ParseCmd turns a name like "show_content" into a Cmd.
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

// Alphabet is the twenty standard amino acids. Content counts come
// in this order.
const Alphabet = "ACDEFGHIKLMNPQRSTVWY"

const (
	nAA   = len(Alphabet)
	water = 18.0153 // lost for each peptide bond
)

var three = [nAA]string{
	"Ala", "Cys", "Asp", "Glu", "Phe", "Gly", "His", "Ile", "Lys", "Leu",
	"Met", "Asn", "Pro", "Gln", "Arg", "Ser", "Thr", "Val", "Trp", "Tyr"}

var mass = [nAA]float64{
	89.094, 121.154, 133.104, 147.131, 165.192, 75.067, 155.156, 131.175, 146.189, 131.175,
	149.208, 132.119, 115.132, 146.146, 174.203, 105.093, 119.119, 117.148, 204.228, 181.191}

// aaNdx maps a letter, either case, to 1 + its place in Alphabet.
// Zero means not an amino acid.
var aaNdx = func() (t [256]uint8) {
	for i := 0; i < nAA; i++ {
		t[Alphabet[i]] = uint8(i + 1)
		t[Alphabet[i]|0x20] = uint8(i + 1)
	}
	return
}()

// Check returns an error if s is empty or has anything other than the
// twenty amino acids, in either case.
func Check(s string) error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty sequence", ErrBadProt)
	}
	for i := 0; i < len(s); i++ {
		if aaNdx[s[i]] == 0 {
			return fmt.Errorf("%w: bad symbol %q at position %d in %q", ErrBadProt, s[i], i, s)
		}
	}
	return nil
}

// Count returns the number of each residue, in Alphabet order.
// Anything not an amino acid is ignored.
func Count(s string) (cnt [nAA]int) {
	for i := 0; i < len(s); i++ {
		if n := aaNdx[s[i]]; n != 0 {
			cnt[n-1]++
		}
	}
	return
}

// MolMass is the sum of residue masses less one water per peptide
// bond, rounded to three decimals.
func MolMass(s string) float64 {
	var m float64
	for i, n := range Count(s) {
		m += float64(n) * mass[i]
	}
	if len(s) > 1 {
		m -= water * float64(len(s)-1)
	}
	return math.Round(m*1000) / 1000
}

// Ext280 is the extinction coefficient at 280 nm from Trp, Tyr and
// cystines. Cystines are taken as half the cysteines, rounded down.
func Ext280(s string) int {
	cnt := Count(s)
	at := func(c byte) int { return cnt[aaNdx[c]-1] }
	return 5500*at('W') + 1490*at('Y') + 125*(at('C')/2)
}

// To3Letter converts to three letter code, "AC" becomes "AlaCys".
func To3Letter(s string) string {
	var b strings.Builder
	b.Grow(3 * len(s))
	for i := 0; i < len(s); i++ {
		b.WriteString(three[aaNdx[s[i]]-1])
	}
	return b.String()
}

// content formats counts like "A:1 C:0 ...".
func content(s string) string {
	cnt := Count(s)
	parts := make([]string, nAA)
	for i, n := range cnt {
		parts[i] = string(Alphabet[i]) + ":" + strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}

// apply runs one command on one checked sequence.
func apply(c Cmd, s string) string {
	switch c {
	case Length:
		return strconv.Itoa(len(s))
	case NuclLength:
		return strconv.Itoa(3 * len(s))
	case Mass:
		return strconv.FormatFloat(MolMass(s), 'f', -1, 64)
	case Content:
		return content(s)
	case To3:
		return To3Letter(s)
	case Extinction:
		return strconv.Itoa(Ext280(s))
	}
	panic("prottools: unhandled command " + c.String())
}

// Run checks every sequence and then applies c to each.
// There is one result per sequence.
func Run(c Cmd, seqs ...string) ([]string, error) {
	if c >= nCmd {
		return nil, fmt.Errorf("%w: %v", ErrBadCmd, c)
	}
	if len(seqs) == 0 {
		return nil, fmt.Errorf("%w: no sequences given", ErrBadProt)
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
