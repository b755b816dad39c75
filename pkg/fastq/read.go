// 19 Oct 2026
// Reading fastq. The whole file is mapped and cut into groups of four
// lines.

package fastq

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// RdOpts are the choices for reading.
type RdOpts struct {
	RunIDDelim string // header text from here on is dropped. Empty means keep everything
	Strict     bool   // incomplete or unreadable trailing records are an error
}

// DefaultRdOpts strips run ids and tolerates broken endings.
func DefaultRdOpts() RdOpts { return RdOpts{RunIDDelim: DefaultRunIDDelim} }

// RdStats says what happened during reading.
type RdStats struct {
	NRead    int // records read
	NTrunc   int // incomplete blocks at the end, dropped
	NIgnored int // non-blank lines after a line that was not a header
}

// nextLine cuts the first line, with its terminator, off the front of b.
// ok is false if b is empty.
func nextLine(b []byte) (line, rest []byte, ok bool) {
	if len(b) == 0 {
		return nil, nil, false
	}
	if i := bytes.IndexByte(b, '\n'); i != -1 {
		return b[:i+1], b[i+1:], true
	}
	return b, nil, true
}

// countNonBlank counts lines with something other than white space.
func countNonBlank(b []byte) int {
	n := 0
	for line, rest, ok := nextLine(b); ok; line, rest, ok = nextLine(rest) {
		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}
	return n
}

// splitHdr takes a header line and returns the identifier and the line
// terminator. Anything from the first delim onwards is removed.
func splitHdr(line []byte, delim string) (id, term string) {
	body := trimEOL(line)
	term = string(line[len(body):])
	id = string(body)
	if delim != "" {
		if i := strings.Index(id, delim); i != -1 {
			id = id[:i]
		}
	}
	return id, term
}

// parse cuts buf into records. Nothing in the set points into buf.
func parse(buf []byte, opts RdOpts) (*Set, RdStats, error) {
	var stats RdStats
	set := NewSet(bytes.Count(buf, []byte{'\n'}) / 4)
	var lastID string
	for {
		hdr, rest, ok := nextLine(buf)
		if !ok {
			break
		}
		if hdr[0] != HdrChar {
			stats.NIgnored = countNonBlank(buf)
			break
		}
		var lines [3][]byte // sequence, separator, quality
		n := 0
		for ; n < len(lines); n++ {
			if lines[n], rest, ok = nextLine(rest); !ok {
				break
			}
		}
		id, term := splitHdr(hdr, opts.RunIDDelim)
		if n < len(lines) {
			stats.NTrunc++
			lastID = id
			break
		}
		set.Add(Record{
			Header:   id,
			Term:     term,
			SeqLine:  bytes.Clone(lines[0]),
			QualLine: bytes.Clone(lines[2]),
		})
		stats.NRead++
		buf = rest
	}
	if opts.Strict {
		if stats.NTrunc > 0 {
			return nil, stats, fmt.Errorf("%w: incomplete record starting %q", ErrFormat, lastID)
		}
		if stats.NIgnored > 0 {
			const msg = "%w: %d lines after record %d do not start with %q"
			return nil, stats, fmt.Errorf(msg, ErrFormat, stats.NIgnored, stats.NRead, HdrChar)
		}
	}
	return set, stats, nil
}

// Read reads fastq records from rdr until the end of input or
// a line which should be a header, but does not start with '@'.
func Read(rdr io.Reader, opts RdOpts) (*Set, RdStats, error) {
	buf, err := io.ReadAll(rdr)
	if err != nil {
		return nil, RdStats{}, fmt.Errorf("reading fastq: %w", err)
	}
	return parse(buf, opts)
}

// ReadFile maps the file fname and reads records from it. If the file
// does not exist, the error matches ErrNoFile and fs.ErrNotExist.
func ReadFile(fname string, opts RdOpts) (*Set, RdStats, error) {
	fp, err := os.Open(fname)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, RdStats{}, fmt.Errorf("%w: %w", ErrNoFile, err)
		}
		return nil, RdStats{}, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, RdStats{}, err
	}
	if fi.Size() == 0 { // mmap will not map an empty file
		return NewSet(0), RdStats{}, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, RdStats{}, fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer mm.Unmap()
	return parse(mm, opts)
}
