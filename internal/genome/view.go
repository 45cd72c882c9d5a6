package genome

import "exonmap/internal/dna"

// Strand is +1 for the forward strand and -1 for the reverse strand.
type Strand int8

const (
	Forward Strand = 1
	Reverse Strand = -1
)

func (s Strand) String() string {
	if s == Reverse {
		return "-"
	}
	return "+"
}

// View presents a window in coding orientation. On the reverse strand the
// sequence is the reverse complement, position i maps to forward position
// Len-1-i, and SNP alleles are complemented. Algorithms written against a
// View never need to know which strand they are on.
type View struct {
	Strand  Strand
	win     *Window
	seq     []byte
	alleles map[int][]byte
	frames  [3][]byte
}

func newView(w *Window, snps *SNPTable, s Strand) *View {
	v := &View{Strand: s, win: w, alleles: make(map[int][]byte)}
	if s == Reverse {
		v.seq = dna.RevComp(w.Seq)
	} else {
		v.seq = w.Seq
	}
	for _, pos := range snps.Positions() {
		if !w.Contains(pos) {
			continue
		}
		al := snps.Alleles(pos)
		i := pos - w.Start
		if s == Reverse {
			i = len(w.Seq) - 1 - i
			rc := make([]byte, len(al))
			for k, b := range al {
				rc[k] = dna.Complement(b)
			}
			al = rc
		}
		v.alleles[i] = al
	}
	for f := range v.frames {
		v.frames[f] = dna.TranslateFrame(v.seq, f)
	}
	return v
}

func (v *View) Len() int        { return len(v.seq) }
func (v *View) Seq() []byte     { return v.seq }
func (v *View) Window() *Window { return v.win }

// Base returns the base at view position i, or 'N' outside the window.
func (v *View) Base(i int) byte {
	if i < 0 || i >= len(v.seq) {
		return 'N'
	}
	return v.seq[i]
}

// Translated returns the reference translation of reading frame f (0..2).
// Residue i covers view positions f+3i .. f+3i+2. The slice is shared.
func (v *View) Translated(f int) []byte {
	if f < 0 || f > 2 {
		return nil
	}
	return v.frames[f]
}

// Alleles returns the tolerated bases at view position i in coding orientation.
func (v *View) Alleles(i int) []byte { return v.alleles[i] }

// Absolute maps view position i to its absolute forward-strand coordinate.
func (v *View) Absolute(i int) int {
	if v.Strand == Reverse {
		return v.win.Start + len(v.seq) - 1 - i
	}
	return v.win.Start + i
}

// Interval maps the view half-open interval [start,end) to an absolute
// forward-strand half-open interval.
func (v *View) Interval(start, end int) (int, int) {
	if v.Strand == Reverse {
		n := len(v.seq)
		return v.win.Start + n - end, v.win.Start + n - start
	}
	return v.win.Start + start, v.win.Start + end
}

// Target bundles one chromosome window, its SNP table and both strand views.
// Build it once per chromosome and share it between alignment calls.
type Target struct {
	Window *Window
	SNPs   *SNPTable
	fwd    *View
	rev    *View
}

func NewTarget(w *Window, snps *SNPTable) *Target {
	return &Target{
		Window: w,
		SNPs:   snps,
		fwd:    newView(w, snps, Forward),
		rev:    newView(w, snps, Reverse),
	}
}

// View returns the strand view for s.
func (t *Target) View(s Strand) *View {
	if s == Reverse {
		return t.rev
	}
	return t.fwd
}
