// internal/fasta/reader.go
package fasta

import (
	"errors"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Record is one FASTA entry. ID is the first header word, Desc the rest.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// ErrStop may be returned by a Scan callback to end scanning early without error.
var ErrStop = errors.New("fasta: stop")

// Scan parses FASTA from r and calls fn once per record, in file order.
func Scan(r io.Reader, alpha alphabet.Alphabet, fn func(Record) error) error {
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alpha)))
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return fmt.Errorf("fasta: unexpected sequence type %T", sc.Seq())
		}
		rec := Record{ID: s.ID, Desc: s.Desc, Seq: letterBytes(s.Seq)}
		if err := fn(rec); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
	}
	if err := sc.Error(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return nil
}

// ScanPath opens path (see Open) and scans it.
func ScanPath(path string, alpha alphabet.Alphabet, fn func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	if err := Scan(rc, alpha, fn); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ReadProteins returns every record of a protein FASTA file.
func ReadProteins(path string) ([]Record, error) {
	var out []Record
	err := ScanPath(path, alphabet.Protein, func(r Record) error {
		out = append(out, r)
		return nil
	})
	return out, err
}

func letterBytes(l alphabet.Letters) []byte {
	b := make([]byte, len(l))
	for i, c := range l {
		b[i] = byte(c)
	}
	return b
}
