package engine

import "exonmap/internal/genome"

type Engine struct {
	cfg  Config
	hard map[string]bool
}

func New(c Config) *Engine {
	e := &Engine{cfg: c.withDefaults(), hard: make(map[string]bool)}
	for _, id := range e.cfg.HardProteins {
		e.hard[id] = true
	}
	return e
}

// Config returns the configuration in effect, defaults filled in.
func (e *Engine) Config() Config { return e.cfg }

// WordLength is the seed word length used for protein id.
func (e *Engine) WordLength(id string) int {
	if e.hard[id] {
		return e.cfg.HardWordLength
	}
	return e.cfg.WordLength
}

/* -------------------------------------------------------------------------- */
/*                                   Align                                    */
/* -------------------------------------------------------------------------- */

// Align maps p onto t. Both strands are chained and the better one is kept
// (forward on a tie). A protein with no seeds yields an empty chain with
// zero coverage. Align only reads t, so one Target can serve many
// goroutines.
func (e *Engine) Align(t *genome.Target, p Protein) Alignment {
	out := Alignment{
		ProteinID:     p.ID,
		ProteinName:   p.Name,
		ProteinLength: len(p.Seq),
		ProteinSeq:    string(p.Seq),
		Chrom:         t.Window.Chrom,
		Chain:         Chain{Strand: genome.Forward},
	}
	w := min(e.WordLength(p.ID), len(p.Seq))
	if w == 0 {
		return out
	}

	best := e.bestStrand(t, p.Seq, w)
	out.Stats.Seeds = best.stats.Seeds
	if len(best.chain) == 0 {
		return out
	}

	best.run()
	out.Chain = best.finish()
	out.Stats = best.stats
	out.Warnings = best.warnings
	return out
}

// bestStrand builds and chains the candidates of both strands and returns
// the context of the higher-scoring one.
func (e *Engine) bestStrand(t *genome.Target, prot []byte, w int) *alignContext {
	wp := FindSeeds(prot, t, w)
	var best *alignContext
	bestScore := -1
	for _, s := range []genome.Strand{genome.Forward, genome.Reverse} {
		c := newContext(&e.cfg, prot, t.View(s))
		c.stats.Seeds = wp.Count()
		c.buildCandidates(wp, w)
		c.prune()
		if score := c.selectChain(); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

// run applies the post-chaining stages in order.
func (c *alignContext) run() {
	c.mergeShortGaps()
	c.extendBoundaries()
	c.dropContained("extension")
	c.refineJunctions()
	c.dropContained("refinement")
}
