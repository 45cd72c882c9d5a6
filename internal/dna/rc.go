// internal/dna/rc.go
package dna

var complement [256]byte

func init() {
	pairs := []string{"AT", "CG", "GC", "TA", "RY", "YR", "SS", "WW", "KM", "MK", "BV", "VB", "DH", "HD", "NN"}
	for _, p := range pairs {
		complement[p[0]] = p[1]
	}
}

// Complement returns the IUPAC complement of an upper-case base. Anything
// unknown complements to 'N'.
func Complement(b byte) byte {
	if c := complement[b]; c != 0 {
		return c
	}
	return 'N'
}

// RevComp returns the reverse complement of seq in a new slice.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = Complement(seq[n-1-i])
	}
	return out
}

// IsACGT reports whether b is an unambiguous upper-case base.
func IsACGT(b byte) bool { return b == 'A' || b == 'C' || b == 'G' || b == 'T' }
