package pretty

import (
	"fmt"
	"strings"

	"exonmap/internal/engine"
)

// Options control the ASCII rendering.
type Options struct {
	// Bases per line before a block wraps. If <=0, use default (60).
	Width int

	// Glyphs under the first base of each codon.
	ExactGlyph    string // default "|"
	PartialGlyph  string // SNP-supported, default "¦"
	MismatchGlyph string // default "x"
	EdgeGlyph     string // spliced codon credited to the junction, default "^"
	DotGlyph      string // bases of an exon rendered without sequence, default "."
}

// DefaultOptions keeps the current look & feel.
var DefaultOptions = Options{
	Width:         60,
	ExactGlyph:    "|",
	PartialGlyph:  "¦",
	MismatchGlyph: "x",
	EdgeGlyph:     "^",
	DotGlyph:      ".",
}

const linePrefix = "# "

func glyph(s, def string) rune {
	if s == "" {
		s = def
	}
	return []rune(s)[0]
}

func RenderAlignment(a engine.Alignment) string {
	return RenderAlignmentWithOptions(a, DefaultOptions)
}

// RenderAlignmentWithOptions draws one block per exon: protein residues
// over their codons, the exon bases in coding orientation, and a match
// track.
func RenderAlignmentWithOptions(a engine.Alignment, o Options) string {
	width := o.Width
	if width <= 0 {
		width = 60
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s %s:%s coverage=%d/%d\n", linePrefix, a.ProteinID, a.Chrom, span(a), a.Coverage, a.ProteinLength)
	for i, e := range a.Exons {
		fmt.Fprintf(&b, "%sexon %d %s:%d-%d protein=%d-%d phase=%d", linePrefix, i+1, a.Chrom, e.Start, e.End, e.ProteinStart, e.ProteinEnd, e.Phase)
		if i+1 < len(a.Exons) {
			fmt.Fprintf(&b, " splice=%.2f", e.SpliceScore)
		}
		b.WriteByte('\n')

		aa, bases, marks := exonTracks(a, e, o)
		for off := 0; off < len(bases); off += width {
			end := min(off+width, len(bases))
			for _, row := range [][]rune{aa, bases, marks} {
				b.WriteString(linePrefix)
				b.WriteString(strings.TrimRight(string(row[off:end]), " "))
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}

func span(a engine.Alignment) string {
	if len(a.Exons) == 0 {
		return "-"
	}
	lo, hi := a.Exons[0].Start, a.Exons[0].End
	for _, e := range a.Exons[1:] {
		lo, hi = min(lo, e.Start), max(hi, e.End)
	}
	return fmt.Sprintf("%d-%d(%s)", lo, hi, a.Strand)
}

func exonTracks(a engine.Alignment, e engine.Exon, o Options) (aa, bases, marks []rune) {
	n := e.End - e.Start
	bases = []rune(e.Seq)
	if len(bases) != n {
		bases = []rune(strings.Repeat(string(glyph(o.DotGlyph, ".")), n))
	}
	aa = []rune(strings.Repeat(" ", n))
	marks = []rune(strings.Repeat(" ", n))

	status := make(map[int]rune, len(e.Mismatches)+len(e.SNPs))
	for _, s := range e.SNPs {
		status[s.Residue] = glyph(o.PartialGlyph, "¦")
	}
	for _, s := range e.Mismatches {
		status[s.Residue] = glyph(o.MismatchGlyph, "x")
	}
	for p := e.ProteinStart; p < e.ProteinEnd; p++ {
		col := e.Phase + 3*(p-e.ProteinStart)
		if col >= n {
			break
		}
		if p < len(a.ProteinSeq) {
			aa[col] = rune(a.ProteinSeq[p])
		}
		if g, ok := status[p]; ok {
			marks[col] = g
		} else {
			marks[col] = glyph(o.ExactGlyph, "|")
		}
	}
	if r := e.EdgeResidue; r >= 0 {
		col := e.Phase + 3*(e.ProteinEnd-e.ProteinStart)
		if col < n {
			if r < len(a.ProteinSeq) {
				aa[col] = rune(a.ProteinSeq[r])
			}
			marks[col] = glyph(o.EdgeGlyph, "^")
		}
	}
	return aa, bases, marks
}
