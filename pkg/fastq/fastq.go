// 19 Oct 2026

// Package fastq reads and writes fastq files. A file is read in one go
// and the records are kept in memory in the order they were read.
//
// Lines are kept as they were read, line terminators and all, so
// writing a set back out gives the same bytes, apart from the
// separator line which is always written as a lone "+".
package fastq

import (
	"bytes"
	"errors"
)

// Constants
const (
	HdrChar           byte = '@'   // starts every record
	SepLine                = "+\n" // separator written between sequence and quality
	Ext                    = ".fastq"
	DefaultRunIDDelim      = "runid"
	ResultsDir             = "fastq_filtrator_results"
)

// The three kinds of error. Use errors.Is to check for them.
var (
	ErrNoFile = errors.New("input file not found")
	ErrFormat = errors.New("fastq format")
	ErrIO     = errors.New("fastq output")
)

// Record is one read. SeqLine and QualLine are exactly what was in the
// file, including the line terminator if there was one. Header is the
// identifier without its terminator and without any run id part.
type Record struct {
	Header   string
	Term     string // "\n", "\r\n" or nothing on a last line
	SeqLine  []byte
	QualLine []byte
}

// trimEOL returns a line without "\n" or "\r\n" at the end.
func trimEOL(b []byte) []byte {
	b = bytes.TrimSuffix(b, []byte{'\n'})
	return bytes.TrimSuffix(b, []byte{'\r'})
}

// Seq returns the sequence without the line terminator.
func (r *Record) Seq() []byte { return trimEOL(r.SeqLine) }

// Qual returns the quality string without the line terminator.
func (r *Record) Qual() []byte { return trimEOL(r.QualLine) }

// Set is a group of records, looked up by identifier, but remembering
// the order of insertion. The zero value is ready to use.
type Set struct {
	recs []Record
	ndx  map[string]int
}

// NewSet returns an empty set with room for n records.
func NewSet(n int) *Set {
	return &Set{recs: make([]Record, 0, n), ndx: make(map[string]int, n)}
}

// Add puts a record in the set. If the identifier is already there,
// the old record is replaced, but it keeps its place in the order.
func (s *Set) Add(r Record) {
	if s.ndx == nil {
		s.ndx = make(map[string]int)
	}
	if i, ok := s.ndx[r.Header]; ok {
		s.recs[i] = r
		return
	}
	s.ndx[r.Header] = len(s.recs)
	s.recs = append(s.recs, r)
}

// Get returns the record with identifier id.
func (s *Set) Get(id string) (Record, bool) {
	i, ok := s.ndx[id]
	if !ok {
		return Record{}, false
	}
	return s.recs[i], true
}

// Len is the number of records
func (s *Set) Len() int { return len(s.recs) }

// Records returns the records in insertion order. The slice belongs to
// the set, so do not modify it.
func (s *Set) Records() []Record { return s.recs }

// IDs returns the identifiers in insertion order.
func (s *Set) IDs() []string {
	ids := make([]string, len(s.recs))
	for i := range s.recs {
		ids[i] = s.recs[i].Header
	}
	return ids
}
