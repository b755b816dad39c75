// brokenio wraps an io.Reader and breaks it. After a set number of
// bytes, every Read fails. It is for checking that readers pass errors
// back instead of returning half a file.
// Typical use:
//	rdr = brokenio.NewReader(rdr, 100)

package brokenio

import (
	"errors"
	"io"
)

// ErrBroken is what a broken reader returns.
var ErrBroken = errors.New("brokenio: artificial read failure")

// BrknRdr passes through nOK bytes, then fails.
type BrknRdr struct {
	rdr_orig io.Reader
	nOK      int
	nByte    int
	nCalled  int
}

// NewReader returns a reader that gives nOK bytes of rIn and then fails.
func NewReader(rIn io.Reader, nOK int) *BrknRdr {
	return &BrknRdr{rdr_orig: rIn, nOK: nOK}
}

// NCalled is how often Read has been called.
func (r *BrknRdr) NCalled() int { return r.nCalled }

// Read reads from the wrapped reader, but never past the limit.
func (r *BrknRdr) Read(p []byte) (n int, err error) {
	r.nCalled++
	left := r.nOK - r.nByte
	if left <= 0 {
		return 0, ErrBroken
	}
	if len(p) > left {
		p = p[:left]
	}
	n, err = r.rdr_orig.Read(p)
	r.nByte += n
	return n, err
}
