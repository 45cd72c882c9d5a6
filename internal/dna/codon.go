package dna

const (
	// Unknown is what a codon with a non-ACGT base translates to.
	Unknown byte = 'X'
	// Stop is the translation of TAA, TAG and TGA.
	Stop byte = '*'
)

// standard genetic code, codons in TCAG order
const codeTCAG = "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"

var baseCode [256]int8

func init() {
	for i := range baseCode {
		baseCode[i] = -1
	}
	baseCode['T'] = 0
	baseCode['C'] = 1
	baseCode['A'] = 2
	baseCode['G'] = 3
}

// Translate returns the amino acid encoded by the three bases b0 b1 b2.
// Bases outside A/C/G/T yield Unknown.
func Translate(b0, b1, b2 byte) byte {
	i, j, k := baseCode[b0], baseCode[b1], baseCode[b2]
	if i < 0 || j < 0 || k < 0 {
		return Unknown
	}
	return codeTCAG[int(i)*16+int(j)*4+int(k)]
}

// TranslateCodon translates codon[0:3].
func TranslateCodon(codon []byte) byte {
	if len(codon) < 3 {
		return Unknown
	}
	return Translate(codon[0], codon[1], codon[2])
}

// TranslateFrame translates seq from offset frame in whole codons.
func TranslateFrame(seq []byte, frame int) []byte {
	if frame < 0 || frame >= len(seq) {
		return nil
	}
	n := (len(seq) - frame) / 3
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		g := frame + 3*i
		out[i] = Translate(seq[g], seq[g+1], seq[g+2])
	}
	return out
}
