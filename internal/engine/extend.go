// internal/engine/extend.go
package engine

// extendBoundaries grows every exon codon by codon at both ends, never past
// its neighbours (or the window and protein ends).
func (c *alignContext) extendBoundaries() {
	for k, idx := range c.chain {
		loG, loP := 0, 0
		if k > 0 {
			prev := &c.arena[c.chain[k-1]]
			loG, loP = prev.end, prev.pend
		}
		e := &c.arena[idx]
		anchor := e.anchor()
		if n := c.walk(min((anchor-loG)/3, e.pstart-loP), func(s int) (int, int) {
			return anchor - 3*s, e.pstart - s
		}); n > 0 {
			e.start = anchor - 3*n
			e.lead = 0
			e.pstart -= n
			c.stats.Extended += n
		}

		hiG, hiP := c.view.Len(), len(c.prot)
		if k+1 < len(c.chain) {
			next := &c.arena[c.chain[k+1]]
			hiG, hiP = next.start, next.pstart
		}
		end := e.codonEnd()
		if n := c.walk(min((hiG-end)/3, hiP-e.pend), func(s int) (int, int) {
			return end + 3*(s-1), e.pend + s - 1
		}); n > 0 {
			e.end = end + 3*n
			e.pend += n
			c.stats.Extended += n
		}
		c.annotate(idx)
	}
}

// walk tries up to maxSteps codons and returns how many to take: the
// shortest extension reaching the most matches while matches still keep up
// with mismatches. SNP-supported residues count as matches. The walk stops
// once the remaining steps cannot bring matches back level.
func (c *alignContext) walk(maxSteps int, at func(step int) (codon, residue int)) int {
	matches, mismatches := 0, 0
	best, bestMatches := 0, 0
	for s := 1; s <= maxSteps; s++ {
		g, p := at(s)
		if c.classifyResidue(g, p) == classMismatch {
			mismatches++
		} else {
			matches++
		}
		if matches >= mismatches && matches > bestMatches {
			best, bestMatches = s, matches
		}
		if matches+(maxSteps-s) < mismatches {
			break
		}
	}
	return best
}
