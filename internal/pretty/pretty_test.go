package pretty

import (
	"strings"
	"testing"

	"exonmap/internal/engine"
	"exonmap/internal/genome"
)

func splitAlignment() engine.Alignment {
	a := engine.Alignment{ProteinID: "p1", ProteinSeq: "MKTAYIAK", ProteinLength: 8, Chrom: "chr1"}
	a.Strand = genome.Forward
	a.Coverage = 8
	a.Exons = []engine.Exon{
		{Start: 30, End: 43, ProteinStart: 0, ProteinEnd: 4, EdgeResidue: 4, SpliceScore: 12.5,
			Mismatches: []engine.Site{{Residue: 1, Codon: 33}}, Seq: "ATGAAGACCGCTT"},
		{Start: 1043, End: 1054, ProteinStart: 5, ProteinEnd: 8, Phase: 2, EdgeResidue: -1,
			SNPs: []engine.Site{{Residue: 6, Codon: 1048}}, Seq: "ACATAGCTAAA"},
	}
	return a
}

func TestRenderAlignment(t *testing.T) {
	got := RenderAlignment(splitAlignment())
	want := strings.Join([]string{
		"# p1 chr1:30-1054(+) coverage=8/8",
		"# exon 1 chr1:30-43 protein=0-4 phase=0 splice=12.50",
		"# M  K  T  A  Y",
		"# ATGAAGACCGCTT",
		"# |  x  |  |  ^",
		"# exon 2 chr1:1043-1054 protein=5-8 phase=2",
		"#   I  A  K",
		"# ACATAGCTAAA",
		"#   |  ¦  |",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderWrapsAndDots(t *testing.T) {
	a := splitAlignment()
	a.Exons = a.Exons[:1]
	a.Exons[0].Seq = ""
	got := RenderAlignmentWithOptions(a, Options{Width: 6})
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	// header, exon line, then three rows per 6-base chunk (13 bases -> 3 chunks)
	if len(lines) != 2+3*3 {
		t.Fatalf("got %d lines:\n%s", len(lines), got)
	}
	if lines[3] != "# ......" {
		t.Errorf("dots row = %q", lines[3])
	}
}
