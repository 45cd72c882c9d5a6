// internal/engine/candidates.go
package engine

// buildCandidates turns the hits of one strand into exon candidates. A hit
// (p, g) extends the open candidate whose last hit was (p-1, g-3); any other
// hit opens a new candidate covering w residues.
func (c *alignContext) buildCandidates(wp WordPositions, w int) {
	strand := c.view.Strand
	open := make(map[int]int)
	next := make(map[int]int)
	for p, hits := range wp {
		for _, h := range hits {
			if h.Strand != strand {
				continue
			}
			if idx, ok := open[h.Pos]; ok {
				e := &c.arena[idx]
				e.pend = p + w
				e.end = h.Pos + 3*w
				next[h.Pos+3] = idx
				continue
			}
			c.arena = append(c.arena, exonState{
				start:  h.Pos,
				end:    h.Pos + 3*w,
				pstart: p,
				pend:   p + w,
				edge:   -1,
				prev:   -1,
			})
			next[h.Pos+3] = len(c.arena) - 1
		}
		open, next = next, open
		clear(next)
	}
	c.stats.Candidates = len(c.arena)
}

// prune drops short candidates once the pool is too large to chain.
func (c *alignContext) prune() {
	if len(c.arena) <= c.cfg.PruneThreshold {
		return
	}
	kept := c.arena[:0]
	for _, e := range c.arena {
		if e.residues() >= c.cfg.PruneMinResidues {
			kept = append(kept, e)
		}
	}
	c.stats.Pruned = len(c.arena) - len(kept)
	c.arena = kept
}
