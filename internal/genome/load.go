package genome

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"

	"exonmap/internal/fasta"
)

// ReadWindow scans FASTA from r for the record named chrom and cuts the
// window [center-radius, center+radius), clipped to the record.
func ReadWindow(r io.Reader, chrom string, center, radius int) (*Window, error) {
	var win *Window
	err := fasta.Scan(r, alphabet.DNA, func(rec fasta.Record) error {
		if rec.ID != chrom {
			return nil
		}
		start, end := Bounds(center, radius, len(rec.Seq))
		win = NewWindow(chrom, rec.Seq[start:end], start)
		return fasta.ErrStop
	})
	if err != nil {
		return nil, err
	}
	if win == nil {
		return nil, fmt.Errorf("%w: %q", ErrRecordNotFound, chrom)
	}
	if win.Len() == 0 {
		return nil, fmt.Errorf("%w: %s around %d", ErrEmptyWindow, chrom, center)
	}
	return win, nil
}

// LoadWindow is ReadWindow over a file path ("-" and gzip accepted).
func LoadWindow(path, chrom string, center, radius int) (*Window, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	w, err := ReadWindow(rc, chrom, center, radius)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// LoadSNPTable reads a packed SNP table file for chrom.
func LoadSNPTable(path, chrom string) (*SNPTable, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	t, err := ReadSNPTable(rc, chrom)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
