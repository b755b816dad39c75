// 19 Oct 2026

package fastq

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shenwei356/xopen"

	"github.com/andrew-torda/fqtools/pkg/seq/common"
)

// OutName adds the fastq extension to name if it is not there.
func OutName(name string) string { return common.AddExt(name, Ext) }

// wrtRecs writes records in order. The separator line is always "+".
// Only the last record may end without a newline. A record without one
// can land in the middle if its identifier was seen earlier in the file.
func wrtRecs(w io.Writer, set *Set) error {
	recs := set.Records()
	for i, r := range recs {
		if _, err := io.WriteString(w, r.Header+r.Term); err != nil {
			return err
		}
		if _, err := w.Write(r.SeqLine); err != nil {
			return err
		}
		if _, err := io.WriteString(w, SepLine); err != nil {
			return err
		}
		if _, err := w.Write(r.QualLine); err != nil {
			return err
		}
		if i < len(recs)-1 && !bytes.HasSuffix(r.QualLine, []byte{'\n'}) {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// Write writes a set of records in fastq format.
func Write(w io.Writer, set *Set) error {
	bw := bufio.NewWriter(w)
	if err := wrtRecs(bw, set); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteFile writes set to dir/name, creating dir if necessary and
// adding ".fastq" to name if needed. It returns the path written.
// The records go to a temporary file which is renamed at the end, so
// on failure there is no output file. Errors match ErrIO.
func WriteFile(set *Set, dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: results directory: %w", ErrIO, err)
	}
	path := filepath.Join(dir, OutName(filepath.Base(name)))
	f_tmp, err := os.CreateTemp(dir, ".fqtools_*.part")
	if err != nil {
		return "", fmt.Errorf("%w: opening %s: %w", ErrIO, path, err)
	}
	tmpName := f_tmp.Name()
	f_tmp.Close()
	fail := func(err error) (string, error) {
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: writing %s: %w", ErrIO, path, err)
	}

	outfh, err := xopen.Wopen(tmpName)
	if err != nil {
		return fail(err)
	}
	if err = wrtRecs(outfh, set); err != nil {
		outfh.Close()
		return fail(err)
	}
	if err = outfh.Close(); err != nil {
		return fail(err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil { // CreateTemp gives 0600
		return fail(err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fail(err)
	}
	return path, nil
}
