package cmdutil

import (
	"context"

	"exonmap/internal/engine"
	"exonmap/internal/genome"
	"exonmap/internal/pipeline"
)

// RunStream runs the shared pipeline, applies a visitor, and streams results via send.
// It returns the number of kept outputs and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	t *genome.Target,
	prots []engine.Protein,
	al pipeline.Aligner,
	visit func(engine.Alignment) (bool, T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachAlignment(ctx, cfg, t, prots, al, func(a engine.Alignment) error {
		keep, out, vErr := visit(a)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
