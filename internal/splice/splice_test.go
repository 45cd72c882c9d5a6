package splice

import (
	"math"
	"strings"
	"testing"
)

// junctionSeq builds exon1 + intron + exon2 and the matching Junction.
func junctionSeq(exon1, intron, exon2 string) ([]byte, Junction) {
	seq := []byte(exon1 + intron + exon2)
	j := Junction{
		ExonStart: 0,
		Donor:     len(exon1),
		Acceptor:  len(exon1) + len(intron),
		ExonEnd:   len(seq),
	}
	return seq, j
}

func TestFlankLayout(t *testing.T) {
	seq, j := junctionSeq("AAACAG", "GTAAGT"+strings.Repeat("T", 20)+"CAG", "GCC")
	got := string(func() []byte { f := Flank(seq, j); return f[:] }())
	want := "CAG" + "GTAAGT" + "CAG" + "G"
	if got != want {
		t.Fatalf("flank = %s, want %s", got, want)
	}
}

func TestConsensusBeatsThreshold(t *testing.T) {
	seq, j := junctionSeq("AAACAG", "GTAAGT"+strings.Repeat("T", 20)+"CAG", "GCC")
	s := Default.ScoreJunction(seq, j)
	if s < DefaultThreshold || s < 10 {
		t.Fatalf("consensus score %.2f should be strongly positive", s)
	}
}

func TestNonCanonicalFails(t *testing.T) {
	// no GT..AG at all
	seq, j := junctionSeq("AAATTT", strings.Repeat("C", 26)+"CCC", "TCC")
	if s := Default.ScoreJunction(seq, j); s >= DefaultThreshold {
		t.Fatalf("non-canonical score %.2f should be below %.1f", s, DefaultThreshold)
	}
}

func TestWeakButCanonicalPasses(t *testing.T) {
	// GT..AG with the worst base at every other position
	seq, j := junctionSeq("TTTTCT", "GTCCAC"+strings.Repeat("A", 20)+"GAG", "TCC")
	s := Default.ScoreJunction(seq, j)
	if s < DefaultThreshold {
		t.Fatalf("weak canonical score %.2f should pass", s)
	}
}

func TestShortExonsScoreFewerBases(t *testing.T) {
	seq, j := junctionSeq("G", "GTAAGT"+strings.Repeat("T", 10)+"CAG", "")
	f := Flank(seq, j)
	if n := Informative(f); n != 10 {
		t.Fatalf("informative = %d, want 10 (1 donor exonic + 6 + 3)", n)
	}
	if f[0] != 'N' || f[1] != 'N' || f[12] != 'N' {
		t.Fatalf("positions outside the exons should be N: %s", f[:])
	}
}

func TestUnknownBaseIsNeutral(t *testing.T) {
	var f [Positions]byte
	for i := range f {
		f[i] = 'N'
	}
	if s := Default.Score(f); s != 0 {
		t.Fatalf("all-N score = %v, want 0", s)
	}
	var zero Matrix
	f[0] = 'A'
	if s := zero.Score(f); math.Abs(s) > 1e-12 {
		t.Fatalf("zero frequency should fall back to background, got %v", s)
	}
}
