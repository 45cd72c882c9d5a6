// internal/engine/seed.go
package engine

import (
	"bytes"

	"exonmap/internal/dna"
	"exonmap/internal/genome"
)

// Hit is one exact word match: the view position of the first codon on the
// given strand.
type Hit struct {
	Pos    int
	Strand genome.Strand
}

// WordPositions lists, for each protein offset, the genome hits of the word
// starting there. It lives only until the candidates are built.
type WordPositions [][]Hit

// Count returns the total number of hits.
func (wp WordPositions) Count() int {
	n := 0
	for _, h := range wp {
		n += len(h)
	}
	return n
}

// wordIndex maps every length-w word of prot to its offsets. Words touching
// a NoMatch residue are skipped.
func wordIndex(prot []byte, w int) map[string][]int {
	idx := make(map[string][]int)
	for p := 0; p+w <= len(prot); p++ {
		word := prot[p : p+w]
		if bytes.IndexByte(word, dna.NoMatch) >= 0 {
			continue
		}
		idx[string(word)] = append(idx[string(word)], p)
	}
	return idx
}

// FindSeeds looks up every translated word of the target, in all three
// frames of both strands, among the words of prot.
func FindSeeds(prot []byte, t *genome.Target, w int) WordPositions {
	wp := make(WordPositions, len(prot))
	if w <= 0 || w > len(prot) {
		return wp
	}
	idx := wordIndex(prot, w)
	if len(idx) == 0 {
		return wp
	}
	for _, s := range []genome.Strand{genome.Forward, genome.Reverse} {
		v := t.View(s)
		for f := 0; f < 3; f++ {
			aa := v.Translated(f)
			for i := 0; i+w <= len(aa); i++ {
				offs, ok := idx[string(aa[i:i+w])]
				if !ok {
					continue
				}
				g := f + 3*i
				for _, p := range offs {
					wp[p] = append(wp[p], Hit{Pos: g, Strand: s})
				}
			}
		}
	}
	return wp
}

type residueClass uint8

const (
	classMatch residueClass = iota
	classSNP
	classMismatch
)

func codonPositions(g int) [3]int { return [3]int{g, g + 1, g + 2} }

// PossibleTranslations returns the reference codon at view position g and
// every amino acid it may encode once SNP alleles are allowed. The reference
// translation is always first.
func PossibleTranslations(v *genome.View, g int) ([3]byte, []byte) {
	return possibleAt(v, codonPositions(g))
}

func possibleAt(v *genome.View, pos [3]int) ([3]byte, []byte) {
	var ref [3]byte
	var opts [3][]byte
	for k, i := range pos {
		ref[k] = v.Base(i)
		opts[k] = append([]byte{ref[k]}, v.Alleles(i)...)
	}
	aas := []byte{dna.Translate(ref[0], ref[1], ref[2])}
	for _, b0 := range opts[0] {
		for _, b1 := range opts[1] {
			for _, b2 := range opts[2] {
				aa := dna.Translate(b0, b1, b2)
				if bytes.IndexByte(aas, aa) < 0 {
					aas = append(aas, aa)
				}
			}
		}
	}
	return ref, aas
}

// classify tells whether the codon at pos explains residue want exactly,
// only through a SNP allele, or not at all.
func classify(v *genome.View, pos [3]int, want byte) residueClass {
	if want == dna.NoMatch {
		return classMismatch
	}
	if dna.Translate(v.Base(pos[0]), v.Base(pos[1]), v.Base(pos[2])) == want {
		return classMatch
	}
	if v.Alleles(pos[0]) == nil && v.Alleles(pos[1]) == nil && v.Alleles(pos[2]) == nil {
		return classMismatch
	}
	if _, aas := possibleAt(v, pos); bytes.IndexByte(aas[1:], want) >= 0 {
		return classSNP
	}
	return classMismatch
}
