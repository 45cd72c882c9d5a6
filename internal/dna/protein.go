package dna

import "bytes"

// NoMatch replaces unknown or masked protein residues. No codon translates
// to it, so it can never seed or explain a position.
const NoMatch byte = '#'

var standardAA [256]bool

func init() {
	for _, c := range []byte("ACDEFGHIKLMNPQRSTVWY") {
		standardAA[c] = true
	}
}

// NormalizeProtein upper-cases p, strips trailing stop symbols and replaces
// every residue outside the 20 standard amino acids with NoMatch.
func NormalizeProtein(p []byte) []byte {
	out := bytes.ToUpper(bytes.TrimSpace(p))
	out = bytes.TrimRight(out, "*")
	for i, c := range out {
		if !standardAA[c] {
			out[i] = NoMatch
		}
	}
	return out
}
