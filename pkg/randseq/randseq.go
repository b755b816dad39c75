// 31 July 2020
// 19 Oct 2026 random fastq reads instead of random fasta

package randseq

import (
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/andrew-torda/fqtools/pkg/fastq"
)

const (
	bases    = "ACGT"
	minPhred = 2  // lowest quality we generate
	maxPhred = 41 // and highest
	qOffset  = 33
)

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed  int64     // random number seed
	Wrtr   io.Writer // where we write to
	Cmmt   string    // goes in each header line
	Nseq   int       // number of reads
	MinLen int       // Shortest read
	MaxLen int       // and longest
	RunID  bool      // put a run id on the end of each header
	MkErr  bool      // leave the last read incomplete
}

type read struct {
	seq, qual []byte
}

// getread returns a random read. The GC content of each read is drawn
// first, so a set of reads covers the whole range.
func getread(args *RandSeqArgs, rnd *rand.Rand) read {
	n := args.MinLen
	if args.MaxLen > args.MinLen {
		n += rnd.Intn(args.MaxLen - args.MinLen + 1)
	}
	gcFrac := rnd.Float64()
	r := read{seq: make([]byte, n), qual: make([]byte, n)}
	for i := range r.seq {
		b := bases[rnd.Intn(2)*3] //     A or T
		if rnd.Float64() < gcFrac { //   C or G
			b = bases[1+rnd.Intn(2)]
		}
		r.seq[i] = b
		r.qual[i] = byte(qOffset + minPhred + rnd.Intn(maxPhred-minPhred+1))
	}
	return r
}

// writeread formats reads as they arrive on rChan. Reads are numbered
// from 1, so headers look like "@cmmt_1", "@cmmt_2", ...
func writeread(rChan <-chan read, args *RandSeqArgs, wg *sync.WaitGroup, errp *error) {
	defer wg.Done()
	var i int
	for r := range rChan {
		i++
		if *errp != nil {
			continue // drain the channel
		}
		hdr := fmt.Sprintf("%c%s_%d", fastq.HdrChar, args.Cmmt, i)
		if args.RunID {
			hdr += fmt.Sprintf(" %s=%08x", fastq.DefaultRunIDDelim, args.Iseed)
		}
		s := hdr + "\n" + string(r.seq) + "\n" + fastq.SepLine + string(r.qual) + "\n"
		if args.MkErr && i == args.Nseq {
			s = hdr + "\n" + string(r.seq) + "\n"
		}
		if _, err := io.WriteString(args.Wrtr, s); err != nil {
			*errp = err
		}
	}
}

// RandSeqMain writes random fastq reads to an io.Writer.
func RandSeqMain(args *RandSeqArgs) error {
	if args.MinLen < 1 || args.MaxLen < args.MinLen && args.MaxLen != 0 {
		return fmt.Errorf("bad read lengths %d to %d", args.MinLen, args.MaxLen)
	}
	var wg sync.WaitGroup
	var err error
	rnd := rand.New(rand.NewSource(args.Iseed))
	rChan := make(chan read)
	wg.Add(1)
	go writeread(rChan, args, &wg, &err)
	for i := 0; i < args.Nseq; i++ {
		rChan <- getread(args, rnd)
	}
	close(rChan)
	wg.Wait()
	return err
}
