// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"exonmap/internal/dna"
	"exonmap/internal/engine"
	"exonmap/internal/genome"
)

// Config controls the alignment pipeline.
type Config struct {
	Threads int  // number of worker goroutines (>=1)
	NeedSeq bool // fill Exon.Seq from the target window
}

type result struct {
	i int
	a engine.Alignment
}

// ForEachAlignment aligns every protein against t and calls visit with the
// results in the order of prots. The target is shared read-only between
// workers. It returns the first error from visit, or the context error.
func ForEachAlignment(
	ctx context.Context,
	cfg Config,
	t *genome.Target,
	prots []engine.Protein,
	al Aligner,
	visit func(engine.Alignment) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	g, gctx := errgroup.WithContext(ctx)

	jobs := make(chan int, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Feed work
	g.Go(func() error {
		defer close(jobs)
		for i := range prots {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case jobs <- i:
			}
		}
		return nil
	})

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		g.Go(func() error {
			defer wg.Done()
			for i := range jobs {
				a := al.Align(t, prots[i])
				if cfg.NeedSeq {
					FillExonSeqs(t, &a)
				}
				select {
				case results <- result{i: i, a: a}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector: restore input order
	g.Go(func() error {
		pending := make(map[int]engine.Alignment)
		next := 0
		for r := range results {
			pending[r.i] = r.a
			for {
				a, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if err := visit(a); err != nil {
					return err
				}
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// FillExonSeqs copies each exon's bases, in coding orientation, from the
// target window.
func FillExonSeqs(t *genome.Target, a *engine.Alignment) {
	w := t.Window
	for i := range a.Exons {
		e := &a.Exons[i]
		if e.Start < w.Start || e.End > w.End {
			continue
		}
		b := w.Seq[e.Start-w.Start : e.End-w.Start]
		if a.Strand == genome.Reverse {
			b = dna.RevComp(b)
		}
		e.Seq = string(b)
	}
}
