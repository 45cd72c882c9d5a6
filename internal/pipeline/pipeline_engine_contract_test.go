package pipeline

import (
	"context"
	"strings"
	"testing"

	"exonmap/internal/engine"
	"exonmap/internal/genome"
)

// Compile-time check: the real engine satisfies Aligner.
var _ Aligner = (*engine.Engine)(nil)

func TestEngineThroughPipeline(t *testing.T) {
	seq := strings.Repeat("C", 30) + "ATGAAAACCGCTTACATAGCTAAA" + strings.Repeat("C", 30)
	tg := genome.NewTarget(genome.NewWindow("chr1", []byte(seq), 1000), nil)
	eng := engine.New(engine.DefaultConfig())

	var got []engine.Alignment
	err := ForEachAlignment(context.Background(), Config{Threads: 2, NeedSeq: true}, tg,
		[]engine.Protein{engine.NewProtein("a", "", []byte("MKTAYIAK"))}, eng,
		func(a engine.Alignment) error { got = append(got, a); return nil })
	if err != nil {
		t.Fatalf("pipeline err: %v", err)
	}
	if len(got) != 1 || len(got[0].Exons) != 1 {
		t.Fatalf("got %+v", got)
	}
	e := got[0].Exons[0]
	if e.Start != 1030 || e.End != 1054 || e.Seq != "ATGAAAACCGCTTACATAGCTAAA" {
		t.Errorf("exon = %+v", e)
	}
}
