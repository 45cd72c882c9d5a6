// internal/engine/merge.go
package engine

// mergeShortGaps joins consecutive exons separated by a gap too short to be
// an intron. A gap qualifies when it is at most MaxMergeGap bp and within
// MergeFrameSlack of three times the protein gap; only gaps that keep the
// reading frame (exactly three bases per skipped residue) are merged, the
// others are left for the refiner and counted as frame-skipped.
func (c *alignContext) mergeShortGaps() {
	if len(c.chain) < 2 {
		return
	}
	out := make([]int, 0, len(c.chain))
	cur := c.chain[0]
	for _, idx := range c.chain[1:] {
		a, b := &c.arena[cur], &c.arena[idx]
		gap := b.anchor() - a.codonEnd()
		pgap := b.pstart - a.pend
		if gap >= 0 && pgap >= 0 && gap <= c.cfg.MaxMergeGap && abs(gap-3*pgap) <= c.cfg.MergeFrameSlack {
			if gap == 3*pgap {
				a.end = b.end
				a.pend = b.pend
				a.edge = b.edge
				c.stats.Merged++
				continue
			}
			c.stats.FrameSkipped++
		}
		out = append(out, cur)
		cur = idx
	}
	c.chain = append(out, cur)
	c.annotateChain()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
