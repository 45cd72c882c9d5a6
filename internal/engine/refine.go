// internal/engine/refine.go
package engine

import "exonmap/internal/splice"

// shiftKey ranks junction placements: an acceptable splice signal first,
// then explained residues, then the signal score.
type shiftKey struct {
	acceptable bool
	explained  int
	score      float64
}

func (k shiftKey) less(o shiftKey) bool {
	if k.acceptable != o.acceptable {
		return !k.acceptable
	}
	if k.explained != o.explained {
		return k.explained < o.explained
	}
	return k.score < o.score
}

// junctionFamily describes every placement of one junction that keeps the
// protein contiguous and the intron length fixed. a is the number of bases
// the upstream exon keeps from its first full codon.
type junctionFamily struct {
	up, down  *exonState
	upAnchor  int // first full codon of up
	downEnd   int // end of the last full codon of down
	total     int // coding bases between them
	intronLen int
}

// layout is one placement of a junction.
type layout struct {
	a          int
	upEnd      int // residue end of up
	downStart  int // residue start of down
	donor      int
	acceptor   int
	downLead   int
	split      bool // residue upEnd has a spliced codon
	splitCodon [3]int
}

func (f *junctionFamily) at(a int) (layout, bool) {
	if a <= 0 {
		return layout{}, false
	}
	q, r := a/3, a%3
	l := layout{
		a:        a,
		upEnd:    f.up.pstart + q,
		donor:    f.upAnchor + a,
		acceptor: f.downEnd - (f.total - a),
		downLead: (3 - r) % 3,
	}
	l.downStart = l.upEnd
	if r != 0 {
		l.downStart++
		l.split = true
		k := 0
		for i := f.upAnchor + 3*q; i < l.donor; i++ {
			l.splitCodon[k] = i
			k++
		}
		for i := l.acceptor; k < 3; i++ {
			l.splitCodon[k] = i
			k++
		}
	}
	if q < 1 || l.downStart >= f.down.pend {
		return l, false
	}
	if l.donor <= f.up.start || l.acceptor >= f.down.end {
		return l, false
	}
	return l, true
}

// refineJunctions moves every junction of the chain to the placement with
// the best shiftKey within SpliceShift bp. Each junction is revisited until
// it stops moving, and the whole chain until no junction moves, so a second
// call changes nothing.
func (c *alignContext) refineJunctions() {
	for pass := 0; pass < c.cfg.MaxRefinePasses; pass++ {
		moved := false
		for k := 0; k+1 < len(c.chain); k++ {
			for step := 0; step < c.cfg.MaxRefinePasses; step++ {
				if !c.refineOne(c.chain[k], c.chain[k+1]) {
					break
				}
				moved = true
			}
		}
		if !moved {
			break
		}
	}
}

// refineOne refines the junction between two consecutive exons, stores its
// splice score and reports whether it moved.
func (c *alignContext) refineOne(upIdx, downIdx int) bool {
	up, down := &c.arena[upIdx], &c.arena[downIdx]
	cur := c.currentKey(up, down)
	up.splice = cur.score

	f := junctionFamily{up: up, down: down, upAnchor: up.anchor(), downEnd: down.codonEnd()}
	f.total = 3 * (down.pend - up.pstart)
	f.intronLen = f.downEnd - f.upAnchor - f.total
	if f.intronLen < c.cfg.MinIntron {
		return false
	}
	uncovered := down.pstart - up.pend
	if up.edge >= 0 {
		uncovered--
	}
	if 3*uncovered > c.cfg.SpliceShift {
		return false
	}
	inFamily := (up.end-f.upAnchor)+(f.downEnd-down.start) == f.total

	center := up.end - f.upAnchor
	best, bestA := cur, -1
	try := func(a int) {
		l, ok := f.at(a)
		if !ok {
			return
		}
		if k := c.layoutKey(&f, l); best.less(k) {
			best, bestA = k, a
		}
	}
	if !inFamily {
		try(center)
	}
	for d := 1; d <= c.cfg.SpliceShift; d++ {
		try(center - d)
		try(center + d)
	}
	if bestA < 0 {
		return false
	}

	l, _ := f.at(bestA)
	up.end, up.pend = l.donor, l.upEnd
	down.start, down.pstart, down.lead = l.acceptor, l.downStart, l.downLead
	up.edge = -1
	if l.split && c.explains(l.splitCodon, l.upEnd) {
		up.edge = l.upEnd
	}
	up.splice = best.score
	c.annotate(upIdx)
	c.annotate(downIdx)
	c.stats.Refined++
	return true
}

func (c *alignContext) explains(codon [3]int, p int) bool {
	if p < 0 || p >= len(c.prot) {
		return false
	}
	return classify(c.view, codon, c.prot[p]) != classMismatch
}

func (c *alignContext) signal(j splice.Junction) (float64, bool) {
	s := c.cfg.Matrix.Score(splice.Flank(c.view.Seq(), j))
	return s, s >= c.cfg.MinSpliceScore
}

func (c *alignContext) currentKey(up, down *exonState) shiftKey {
	n := up.residues() - len(up.mismatches) + down.residues() - len(down.mismatches)
	if up.edge >= 0 {
		n++
	}
	s, ok := c.signal(splice.Junction{ExonStart: up.start, Donor: up.end, Acceptor: down.start, ExonEnd: down.end})
	return shiftKey{acceptable: ok, explained: n, score: s}
}

func (c *alignContext) layoutKey(f *junctionFamily, l layout) shiftKey {
	n := 0
	for p := f.up.pstart; p < l.upEnd; p++ {
		if c.classifyResidue(f.upAnchor+3*(p-f.up.pstart), p) != classMismatch {
			n++
		}
	}
	if l.split && c.explains(l.splitCodon, l.upEnd) {
		n++
	}
	downAnchor := l.acceptor + l.downLead
	for p := l.downStart; p < f.down.pend; p++ {
		if c.classifyResidue(downAnchor+3*(p-l.downStart), p) != classMismatch {
			n++
		}
	}
	s, ok := c.signal(splice.Junction{ExonStart: f.up.start, Donor: l.donor, Acceptor: l.acceptor, ExonEnd: f.down.end})
	return shiftKey{acceptable: ok, explained: n, score: s}
}
