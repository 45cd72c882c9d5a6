package engine

import (
	"fmt"

	"exonmap/internal/genome"
)

// exonState is the working form of an exon. Coordinates are view positions
// in coding orientation. lead counts the bases before the first full codon
// that complete a codon split at the previous junction.
type exonState struct {
	start, end   int
	pstart, pend int
	lead         int
	edge         int

	prefixScore int
	score       int
	prev        int

	mismatches []int
	snps       []int
	splice     float64
}

func (e *exonState) residues() int { return e.pend - e.pstart }

// anchor is the view position of the codon of residue pstart.
func (e *exonState) anchor() int { return e.start + e.lead }

// codonEnd is the end of the last full codon.
func (e *exonState) codonEnd() int { return e.anchor() + 3*e.residues() }

func (e *exonState) codonAt(p int) int { return e.anchor() + 3*(p-e.pstart) }

func (e *exonState) contains(o *exonState) bool {
	return o.pstart >= e.pstart && o.pend <= e.pend
}

// alignContext carries one protein against one strand view through every
// stage. The arena owns all exon states; chain lists the selected ones in
// protein order.
type alignContext struct {
	cfg      *Config
	prot     []byte
	view     *genome.View
	arena    []exonState
	chain    []int
	stats    Stats
	warnings []Warning
}

func newContext(cfg *Config, prot []byte, v *genome.View) *alignContext {
	return &alignContext{cfg: cfg, prot: prot, view: v}
}

func (c *alignContext) classifyResidue(codon, p int) residueClass {
	if p < 0 || p >= len(c.prot) {
		return classMismatch
	}
	return classify(c.view, codonPositions(codon), c.prot[p])
}

// annotate recomputes the mismatch and SNP lists of an exon.
func (c *alignContext) annotate(idx int) {
	e := &c.arena[idx]
	e.mismatches, e.snps = e.mismatches[:0], e.snps[:0]
	for p := e.pstart; p < e.pend; p++ {
		switch c.classifyResidue(e.codonAt(p), p) {
		case classSNP:
			e.snps = append(e.snps, p)
		case classMismatch:
			e.mismatches = append(e.mismatches, p)
		}
	}
}

func (c *alignContext) annotateChain() {
	for _, idx := range c.chain {
		c.annotate(idx)
	}
}

// dropContained removes exons whose protein range lies inside a neighbour's.
func (c *alignContext) dropContained(stage string) {
	out := make([]int, 0, len(c.chain))
	for _, idx := range c.chain {
		if n := len(out); n > 0 {
			prev, cur := &c.arena[out[n-1]], &c.arena[idx]
			switch {
			case prev.contains(cur):
				c.warnContained(cur, stage)
				continue
			case cur.contains(prev):
				c.warnContained(prev, stage)
				out = out[:n-1]
			}
		}
		out = append(out, idx)
	}
	c.chain = out
}

func (c *alignContext) warnContained(e *exonState, stage string) {
	s, en := c.view.Interval(e.start, e.end)
	c.warnings = append(c.warnings, Warning{
		Kind: WarnContainedExon,
		Message: fmt.Sprintf("dropped exon %d-%d (protein %d-%d) after %s: contained in a neighbouring exon",
			s, en, e.pstart, e.pend, stage),
	})
}

func (c *alignContext) coverage() int {
	n := 0
	for _, idx := range c.chain {
		e := &c.arena[idx]
		n += e.residues() - len(e.mismatches)
		if e.edge >= 0 {
			n++
		}
	}
	return n
}

// finish converts the selected exons to absolute coordinates.
func (c *alignContext) finish() Chain {
	ch := Chain{Strand: c.view.Strand, Coverage: c.coverage()}
	for k, idx := range c.chain {
		e := &c.arena[idx]
		s, en := c.view.Interval(e.start, e.end)
		out := Exon{
			Start:        s,
			End:          en,
			ProteinStart: e.pstart,
			ProteinEnd:   e.pend,
			Phase:        e.lead,
			EdgeResidue:  e.edge,
			Mismatches:   c.sites(e, e.mismatches),
			SNPs:         c.sites(e, e.snps),
		}
		if k+1 < len(c.chain) {
			out.SpliceScore = e.splice
			if e.edge >= 0 {
				codon, ok := splitCodon(e, &c.arena[c.chain[k+1]])
				out.EdgeSNP = ok && classify(c.view, codon, c.prot[e.edge]) == classSNP
			}
		}
		ch.Exons = append(ch.Exons, out)
	}
	return ch
}

// splitCodon returns the view positions of the codon spliced across the
// junction between up and down.
func splitCodon(up, down *exonState) ([3]int, bool) {
	var codon [3]int
	k := 0
	for i := up.codonEnd(); i < up.end && k < 3; i++ {
		codon[k] = i
		k++
	}
	if k == 0 || k == 3 || down.lead != 3-k {
		return codon, false
	}
	for i := down.start; k < 3; i++ {
		codon[k] = i
		k++
	}
	return codon, true
}

func (c *alignContext) sites(e *exonState, ps []int) []Site {
	if len(ps) == 0 {
		return nil
	}
	out := make([]Site, len(ps))
	for i, p := range ps {
		out[i] = Site{Residue: p, Codon: c.view.Absolute(e.codonAt(p))}
	}
	return out
}
