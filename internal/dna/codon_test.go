package dna

import (
	"bytes"
	"testing"
)

func TestTranslateKnownCodons(t *testing.T) {
	cases := map[string]byte{
		"ATG": 'M', "TGG": 'W', "TAA": Stop, "TAG": Stop, "TGA": Stop,
		"AAA": 'K', "AAG": 'K', "GCT": 'A', "TAC": 'Y', "ATA": 'I',
		"AGA": 'R', "CGG": 'R', "TTA": 'L', "CTG": 'L', "GGG": 'G',
	}
	for codon, want := range cases {
		if got := TranslateCodon([]byte(codon)); got != want {
			t.Errorf("%s -> %c, want %c", codon, got, want)
		}
	}
}

func TestTranslateAmbiguousIsUnknown(t *testing.T) {
	for _, c := range []string{"ANG", "NNN", "AT-", "atg"} {
		if got := TranslateCodon([]byte(c)); got != Unknown {
			t.Errorf("%s -> %c, want %c", c, got, Unknown)
		}
	}
	if got := TranslateCodon([]byte("AT")); got != Unknown {
		t.Errorf("short codon -> %c, want %c", got, Unknown)
	}
}

func TestTranslateFrame(t *testing.T) {
	seq := []byte("CATGAAAACCGCT")
	if got := TranslateFrame(seq, 1); string(got) != "MKTA" {
		t.Errorf("frame 1 = %s, want MKTA", got)
	}
	if got := TranslateFrame(seq, 0); len(got) != 4 {
		t.Errorf("frame 0 length = %d, want 4", len(got))
	}
	if TranslateFrame(seq, 20) != nil {
		t.Errorf("frame beyond sequence should be nil")
	}
}

func TestNormalizeProtein(t *testing.T) {
	got := NormalizeProtein([]byte(" mkXtaU*\n"))
	want := []byte{'M', 'K', NoMatch, 'T', 'A', NoMatch}
	if !bytes.Equal(got, want) {
		t.Errorf("NormalizeProtein = %q, want %q", got, want)
	}
}

func TestNoMatchNeverTranslated(t *testing.T) {
	for _, a := range []byte("ACGT") {
		for _, b := range []byte("ACGT") {
			for _, c := range []byte("ACGT") {
				if Translate(a, b, c) == NoMatch {
					t.Fatalf("%c%c%c translates to the sentinel", a, b, c)
				}
			}
		}
	}
}
