// Package visitors holds the per-alignment filters the app applies before
// anything reaches a writer.
package visitors

import "exonmap/internal/engine"

// MinCoverage keeps alignments with at least one exon and Min covered
// residues.
type MinCoverage struct{ Min int }

func (v MinCoverage) Visit(a engine.Alignment) (keep bool, out engine.Alignment, err error) {
	if len(a.Exons) == 0 || a.Coverage < v.Min {
		return false, a, nil
	}
	return true, a, nil
}
