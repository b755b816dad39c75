// 19 Oct 2026

package fqfilter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrBadBound = errors.New("bad bound")

// Bound is a closed interval.
type Bound struct {
	Lo, Hi float64
}

// Upper makes the interval [0, hi], which is what a single number means.
func Upper(hi float64) Bound { return Bound{0, hi} }

// Pair makes the interval [lo, hi].
func Pair(lo, hi float64) Bound { return Bound{lo, hi} }

// Contains says if x is in the interval, edges included.
func (b Bound) Contains(x float64) bool { return b.Lo <= x && x <= b.Hi }

// String gives back the form ParseBound reads.
func (b Bound) String() string {
	f := func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
	return f(b.Lo) + "," + f(b.Hi)
}

// ParseBound reads "hi" or "lo,hi".
func ParseBound(s string) (Bound, error) {
	parts := strings.Split(s, ",")
	if len(parts) > 2 {
		return Bound{}, fmt.Errorf("%w: %q has more than two numbers", ErrBadBound, s)
	}
	var x [2]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(v) {
			return Bound{}, fmt.Errorf("%w: %q is not a number", ErrBadBound, p)
		}
		x[i] = v
	}
	b := Upper(x[0])
	if len(parts) == 2 {
		b = Pair(x[0], x[1])
	}
	if b.Lo > b.Hi {
		return Bound{}, fmt.Errorf("%w: lower %v above upper %v", ErrBadBound, b.Lo, b.Hi)
	}
	return b, nil
}

// Set and Type let a Bound be used directly as a command line flag.
func (b *Bound) Set(s string) error {
	t, err := ParseBound(s)
	if err != nil {
		return err
	}
	*b = t
	return nil
}

func (b *Bound) Type() string { return "bound" }

// Bounds are all the limits for filtering.
type Bounds struct {
	GC      Bound
	Len     Bound
	MinQual float64
}

// MaxLen is the default upper length limit.
const MaxLen = 1 << 32

// DefaultBounds lets everything through.
func DefaultBounds() Bounds {
	return Bounds{GC: Pair(0, 100), Len: Pair(0, MaxLen), MinQual: 0}
}
