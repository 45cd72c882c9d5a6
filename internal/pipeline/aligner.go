// internal/pipeline/aligner.go
package pipeline

import (
	"exonmap/internal/engine"
	"exonmap/internal/genome"
)

// Aligner is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Aligner interface {
	Align(t *genome.Target, p engine.Protein) engine.Alignment
}
