// internal/engine/engine_test.go
package engine

import (
	"strings"
	"testing"

	"exonmap/internal/dna"
	"exonmap/internal/genome"
)

var testCodon = map[byte]string{
	'A': "GCT", 'C': "TGT", 'D': "GAT", 'E': "GAA", 'F': "TTT",
	'G': "GGT", 'H': "CAT", 'I': "ATT", 'K': "AAA", 'L': "CTG",
	'M': "ATG", 'N': "AAT", 'P': "CCG", 'Q': "CAG", 'R': "CGT",
	'S': "TCT", 'T': "ACC", 'V': "GTG", 'W': "TGG", 'Y': "TAC",
}

func encode(prot string) string {
	var b strings.Builder
	for i := 0; i < len(prot); i++ {
		b.WriteString(testCodon[prot[i]])
	}
	return b.String()
}

// filler translates to F/S/L forward and E/K/R reverse.
func filler(n int) string { return strings.Repeat("TTC", n/3+1)[:n] }

func target(seq string, snps *genome.SNPTable) *genome.Target {
	return genome.NewTarget(genome.NewWindow("chrT", []byte(seq), 0), snps)
}

func align(t *testing.T, cfg Config, seq string, snps *genome.SNPTable, prot string) Alignment {
	t.Helper()
	a := New(cfg).Align(target(seq, snps), NewProtein("p1", "test protein", []byte(prot)))
	checkInvariants(t, a)
	return a
}

func checkInvariants(t *testing.T, a Alignment) {
	t.Helper()
	if a.Coverage < 0 || a.Coverage > a.ProteinLength {
		t.Errorf("coverage %d outside [0,%d]", a.Coverage, a.ProteinLength)
	}
	for i, e := range a.Exons {
		if e.Start >= e.End || e.ProteinStart >= e.ProteinEnd {
			t.Errorf("exon %d empty: %+v", i, e)
		}
		for _, s := range append(append([]Site(nil), e.Mismatches...), e.SNPs...) {
			if s.Residue < e.ProteinStart || s.Residue >= e.ProteinEnd {
				t.Errorf("exon %d: site %d outside protein range", i, s.Residue)
			}
		}
		if i == 0 {
			continue
		}
		prev := a.Exons[i-1]
		if prev.ProteinEnd > e.ProteinStart {
			t.Errorf("exons %d/%d overlap in protein", i-1, i)
		}
		if a.Strand == genome.Forward && prev.End > e.Start {
			t.Errorf("exons %d/%d overlap in genome (+)", i-1, i)
		}
		if a.Strand == genome.Reverse && e.End > prev.Start {
			t.Errorf("exons %d/%d overlap in genome (-)", i-1, i)
		}
	}
}

// Scenario: one exon, no introns.
func TestAlignSingleExon(t *testing.T) {
	seq := filler(30) + "ATGAAAACCGCTTACATAGCTAAA" + filler(30)
	a := align(t, DefaultConfig(), seq, nil, "MKTAYIAK")

	if a.Strand != genome.Forward || a.Coverage != 8 || len(a.Exons) != 1 {
		t.Fatalf("got strand %v coverage %d exons %d", a.Strand, a.Coverage, len(a.Exons))
	}
	e := a.Exons[0]
	if e.Start != 30 || e.End != 54 || e.ProteinStart != 0 || e.ProteinEnd != 8 {
		t.Errorf("exon = %+v", e)
	}
	if len(e.Mismatches) != 0 || len(e.SNPs) != 0 || e.EdgeResidue != -1 {
		t.Errorf("unexpected annotations: %+v", e)
	}
	if a.Chrom != "chrT" || a.ProteinID != "p1" || a.ProteinLength != 8 {
		t.Errorf("identity fields wrong: %+v", a)
	}
}

// exon1 MKTA | GT...AG intron (1000 bp) | exon2 YIAK
func twoExonGenome() string {
	intron := "GTAAGT" + strings.Repeat("T", 991) + "CAG"
	return filler(30) + "ATGAAAACCGCT" + intron + "TACATAGCTAAA" + filler(30)
}

func TestAlignTwoExonsOnSpliceSignal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WordLength = 4
	a := align(t, cfg, twoExonGenome(), nil, "MKTAYIAK")

	if a.Coverage != 8 || len(a.Exons) != 2 {
		t.Fatalf("coverage %d exons %+v", a.Coverage, a.Exons)
	}
	e1, e2 := a.Exons[0], a.Exons[1]
	if e1.Start != 30 || e1.End != 42 || e1.ProteinEnd != 4 {
		t.Errorf("exon1 = %+v", e1)
	}
	if e2.Start != 1042 || e2.End != 1054 || e2.ProteinStart != 4 || e2.Phase != 0 {
		t.Errorf("exon2 = %+v", e2)
	}
	if e1.SpliceScore < cfg.MinSpliceScore || e2.SpliceScore != 0 {
		t.Errorf("splice scores %.2f %.2f", e1.SpliceScore, e2.SpliceScore)
	}
}

// The codon of Y is split T|AC by the intron.
func splitCodonGenome() string {
	intron := "GTAAGT" + strings.Repeat("T", 991) + "CAG"
	return filler(30) + "ATGAAAACCGCTT" + intron + "ACATAGCTAAA" + filler(30)
}

func TestAlignSplitCodonCreditsEdgeResidue(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WordLength = 3
	a := align(t, cfg, splitCodonGenome(), nil, "MKTAYIAK")

	if len(a.Exons) != 2 {
		t.Fatalf("exons = %+v", a.Exons)
	}
	e1, e2 := a.Exons[0], a.Exons[1]
	if e1.End != 43 || e1.ProteinEnd != 4 || e1.EdgeResidue != 4 {
		t.Errorf("exon1 = %+v", e1)
	}
	if e2.Start != 1043 || e2.ProteinStart != 5 || e2.Phase != 2 {
		t.Errorf("exon2 = %+v", e2)
	}
	if a.Coverage != 8 {
		t.Errorf("coverage = %d, want 8", a.Coverage)
	}
	if a.Stats.Refined == 0 {
		t.Errorf("refiner should have moved the junction")
	}
	if e1.EdgeSNP {
		t.Errorf("reference codon reported as SNP-supported")
	}
}

// splitCodonGenomeG puts G where the split codon of Y needs T (GAC = D).
func splitCodonGenomeG() string {
	g := []byte(splitCodonGenome())
	g[42] = 'G'
	return string(g)
}

func TestAlignSplitCodonExplainedBySNP(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WordLength = 3
	snps := genome.NewSNPTable("chrT")
	snps.Add(42, []byte("T"))
	a := align(t, cfg, splitCodonGenomeG(), snps, "MKTAYIAK")

	if len(a.Exons) != 2 || a.Coverage != 8 {
		t.Fatalf("coverage %d exons %+v", a.Coverage, a.Exons)
	}
	e1 := a.Exons[0]
	if e1.End != 43 || e1.EdgeResidue != 4 || !e1.EdgeSNP {
		t.Errorf("exon1 = %+v, want edge residue 4 via SNP", e1)
	}
	if a.Exons[1].EdgeSNP {
		t.Errorf("last exon has no junction: %+v", a.Exons[1])
	}
}

func TestAlignUnexplainedSplitCodonIsNotCounted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WordLength = 3
	a := align(t, cfg, splitCodonGenomeG(), nil, "MKTAYIAK")

	if len(a.Exons) != 2 || a.Coverage != 7 {
		t.Fatalf("coverage %d exons %+v", a.Coverage, a.Exons)
	}
	n := 0
	for _, e := range a.Exons {
		if e.EdgeResidue >= 0 || e.EdgeSNP {
			t.Errorf("unexplained split codon credited: %+v", e)
		}
		n += e.Residues() - len(e.Mismatches)
	}
	if n != a.Coverage {
		t.Errorf("coverage %d, exon accounting %d", a.Coverage, n)
	}
}

const midProtein = "MDKTAYIAKQYRLGFVNSHW" // residue 10 is Y

func midGenome() string {
	cds := []byte(encode(midProtein))
	cds[32] = 'A' // TAC -> TAA at residue 10
	return filler(30) + string(cds) + filler(30)
}

func TestAlignSNPSupportedResidue(t *testing.T) {
	snps := genome.NewSNPTable("chrT")
	snps.Add(62, []byte("C"))
	a := align(t, DefaultConfig(), midGenome(), snps, midProtein)

	if len(a.Exons) != 1 || a.Coverage != 20 {
		t.Fatalf("coverage %d exons %+v", a.Coverage, a.Exons)
	}
	e := a.Exons[0]
	if len(e.SNPs) != 1 || e.SNPs[0] != (Site{Residue: 10, Codon: 60}) || len(e.Mismatches) != 0 {
		t.Errorf("snps %v mismatches %v", e.SNPs, e.Mismatches)
	}
	if a.Stats.Merged != 1 {
		t.Errorf("merged = %d, want 1", a.Stats.Merged)
	}
}

func TestAlignMismatchWithoutSNP(t *testing.T) {
	a := align(t, DefaultConfig(), midGenome(), nil, midProtein)

	if len(a.Exons) != 1 || a.Coverage != 19 {
		t.Fatalf("coverage %d exons %+v", a.Coverage, a.Exons)
	}
	e := a.Exons[0]
	if e.Start != 30 || e.End != 90 {
		t.Errorf("exon = [%d,%d)", e.Start, e.End)
	}
	if len(e.Mismatches) != 1 || e.Mismatches[0].Residue != 10 || len(e.SNPs) != 0 {
		t.Errorf("mismatches %v snps %v", e.Mismatches, e.SNPs)
	}
}

func TestAlignExtendsPastEarlyMismatch(t *testing.T) {
	cds := []byte(encode(midProtein))
	copy(cds[6:9], "CCC") // K -> P at residue 2
	a := align(t, DefaultConfig(), filler(30)+string(cds)+filler(30), nil, midProtein)

	if len(a.Exons) != 1 {
		t.Fatalf("exons = %+v", a.Exons)
	}
	e := a.Exons[0]
	if e.Start != 30 || e.ProteinStart != 0 || a.Coverage != 19 || a.Stats.Extended != 3 {
		t.Errorf("exon %+v coverage %d extended %d", e, a.Coverage, a.Stats.Extended)
	}
}

func TestAlignRepetitiveProteinPrunes(t *testing.T) {
	prot := strings.Repeat("ACDEFG", 9)[:50]
	cfg := DefaultConfig()
	cfg.PruneThreshold = 10
	a := align(t, cfg, filler(60)+encode(prot)+filler(60), nil, prot)

	if a.Stats.Pruned == 0 {
		t.Errorf("expected pruning, stats %+v", a.Stats)
	}
	if a.Coverage != 50 || len(a.Exons) != 1 || a.Exons[0].Start != 60 {
		t.Errorf("coverage %d exons %+v", a.Coverage, a.Exons)
	}
}

func TestAlignReverseStrandMirrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WordLength = 3
	fwdSeq := splitCodonGenome()
	revSeq := string(dna.RevComp([]byte(fwdSeq)))
	n := len(fwdSeq)

	f := align(t, cfg, fwdSeq, nil, "MKTAYIAK")
	r := align(t, cfg, revSeq, nil, "MKTAYIAK")

	if f.Strand != genome.Forward || r.Strand != genome.Reverse {
		t.Fatalf("strands %v %v", f.Strand, r.Strand)
	}
	if len(f.Exons) != len(r.Exons) || f.Coverage != r.Coverage {
		t.Fatalf("forward %+v\nreverse %+v", f.Chain, r.Chain)
	}
	for i := range f.Exons {
		fe, re := f.Exons[i], r.Exons[i]
		if re.Start != n-fe.End || re.End != n-fe.Start {
			t.Errorf("exon %d: reverse [%d,%d) does not mirror [%d,%d)", i, re.Start, re.End, fe.Start, fe.End)
		}
		if re.ProteinStart != fe.ProteinStart || re.ProteinEnd != fe.ProteinEnd || re.SpliceScore != fe.SpliceScore {
			t.Errorf("exon %d differs: %+v vs %+v", i, re, fe)
		}
	}
}

func TestAlignRoundTripTranslation(t *testing.T) {
	a := align(t, DefaultConfig(), midGenome(), nil, midProtein)
	seq := []byte(midGenome())
	for _, e := range a.Exons {
		skip := map[int]bool{}
		for _, s := range e.Mismatches {
			skip[s.Residue] = true
		}
		for p := e.ProteinStart; p < e.ProteinEnd; p++ {
			g := e.Start + e.Phase + 3*(p-e.ProteinStart)
			if got := dna.TranslateCodon(seq[g : g+3]); !skip[p] && got != midProtein[p] {
				t.Errorf("residue %d: codon translates to %c, want %c", p, got, midProtein[p])
			}
		}
	}
}

func TestAlignNoSeeds(t *testing.T) {
	a := align(t, DefaultConfig(), filler(300), nil, "MWMWMWMW")
	if a.Coverage != 0 || len(a.Exons) != 0 || a.Strand != genome.Forward {
		t.Errorf("got %+v", a)
	}
	if a = align(t, DefaultConfig(), filler(30), nil, ""); len(a.Exons) != 0 {
		t.Errorf("empty protein aligned: %+v", a)
	}
}

func TestAlignShortProteinCapsWordLength(t *testing.T) {
	a := align(t, DefaultConfig(), filler(30)+"ATGAAAACCGCT"+filler(30), nil, "MKTA")
	if a.Coverage != 4 || len(a.Exons) != 1 {
		t.Errorf("coverage %d exons %+v", a.Coverage, a.Exons)
	}
}

func TestWordLengthHardList(t *testing.T) {
	e := New(Config{HardProteins: []string{"hard1"}})
	if e.WordLength("hard1") != DefaultHardWordLength || e.WordLength("other") != DefaultWordLength {
		t.Errorf("word lengths %d %d", e.WordLength("hard1"), e.WordLength("other"))
	}
	if e.Config().MaxMergeGap != DefaultMaxMergeGap || e.Config().Matrix == nil {
		t.Errorf("defaults not filled: %+v", e.Config())
	}
}
