// Package genome holds the read-only inputs the aligner works against: a DNA
// window cut from one chromosome, the SNP table for that chromosome, and
// strand views over both.
package genome

import (
	"bytes"
	"errors"
	"math"
)

var (
	ErrRecordNotFound = errors.New("genome: chromosome record not found")
	ErrEmptyWindow    = errors.New("genome: empty window")
)

// Window is a slice of one chromosome. Seq is upper-case and Seq[i] sits at
// absolute 0-based position Start+i; End is exclusive.
type Window struct {
	Chrom string
	Seq   []byte
	Start int
	End   int
}

// NewWindow copies seq, upper-cases it and anchors it at start.
func NewWindow(chrom string, seq []byte, start int) *Window {
	s := bytes.ToUpper(seq)
	return &Window{Chrom: chrom, Seq: s, Start: start, End: start + len(s)}
}

// Len is the number of bases in the window.
func (w *Window) Len() int { return len(w.Seq) }

// Contains reports whether absolute position pos lies inside the window.
func (w *Window) Contains(pos int) bool { return pos >= w.Start && pos < w.End }

// WholeChromosome is a radius that always covers the entire record.
const WholeChromosome = math.MaxInt32

// Bounds clips [center-radius, center+radius) to [0, chromLen). A window
// entirely past the record end comes back empty at chromLen.
func Bounds(center, radius, chromLen int) (start, end int) {
	start = center - radius
	if start < 0 {
		start = 0
	}
	if start > chromLen {
		start = chromLen
	}
	end = center + radius
	if end > chromLen {
		end = chromLen
	}
	if end < start {
		end = start
	}
	return start, end
}
