// internal/engine/chain.go
package engine

import "sort"

// overlapTrim is how many residues must come off the tail of p so that it
// ends before e in both the protein and the genome.
func overlapTrim(p, e *exonState) int {
	t := p.pend - e.pstart
	if g := p.end - e.start; g > 0 {
		if gt := (g + 2) / 3; gt > t {
			t = gt
		}
	}
	if t < 0 {
		return 0
	}
	return t
}

// selectChain runs the colinear chaining DP over the candidate pool and
// leaves the best chain in c.chain. It returns the chain score.
//
// PrefixScore(E) is the best total of any chain ending just before E, each
// predecessor counted without the residues it must lose to E. The chain
// score of E adds its own length. Ties keep the earliest candidate.
func (c *alignContext) selectChain() int {
	c.chain = nil
	if len(c.arena) == 0 {
		return 0
	}
	sort.SliceStable(c.arena, func(i, j int) bool {
		a, b := &c.arena[i], &c.arena[j]
		if a.start != b.start {
			return a.start < b.start
		}
		return a.pstart < b.pstart
	})

	best, bestIdx := -1, -1
	for j := range c.arena {
		e := &c.arena[j]
		e.prefixScore, e.prev = 0, -1
		for i := 0; i < j; i++ {
			p := &c.arena[i]
			if p.start >= e.start || p.pstart >= e.pstart {
				continue
			}
			s := p.prefixScore + p.residues() - overlapTrim(p, e)
			if s > e.prefixScore {
				e.prefixScore, e.prev = s, i
			}
		}
		e.score = e.prefixScore + e.residues()
		if e.score > best {
			best, bestIdx = e.score, j
		}
	}

	for i := bestIdx; i >= 0; i = c.arena[i].prev {
		c.chain = append(c.chain, i)
	}
	for l, r := 0, len(c.chain)-1; l < r; l, r = l+1, r-1 {
		c.chain[l], c.chain[r] = c.chain[r], c.chain[l]
	}

	kept := c.chain[:0]
	for k, idx := range c.chain {
		e := &c.arena[idx]
		if k+1 < len(c.chain) {
			t := overlapTrim(e, &c.arena[c.chain[k+1]])
			e.pend -= t
			e.end -= 3 * t
		}
		if e.pend > e.pstart {
			kept = append(kept, idx)
		}
	}
	c.chain = kept
	return best
}
