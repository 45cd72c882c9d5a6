// Splice-signal scoring for exon/intron junctions.
//
// A junction is scored over 13 positions read in coding orientation:
//
//	donor:    3 exonic bases | 6 intronic bases   (e.g. CAG|GTAAGT)
//	acceptor: 3 intronic bases | 1 exonic base    (e.g. CAG|G)
//
// Each base contributes log2(f/0.25) where f is its frequency at that
// position. Bases outside A/C/G/T, positions that fall outside the exon or
// intron, and zero frequencies all count as f = 0.25, i.e. they add nothing,
// so short exons and introns are scored on 9 to 13 informative bases.
//
// This package has no engine or app deps.
package splice

import "math"

// Positions in the scored window.
const (
	DonorExonic      = 3
	DonorIntronic    = 6
	AcceptorIntronic = 3
	AcceptorExonic   = 1
	Positions        = DonorExonic + DonorIntronic + AcceptorIntronic + AcceptorExonic
)

// DefaultThreshold is the lowest log-odds score a junction may have and
// still count as an acceptable splice signal.
const DefaultThreshold = -13.0

const background = 0.25

// Matrix holds per-position base frequencies in A, C, G, T order.
type Matrix [Positions][4]float64

// Default is the fixed frequency table used by the aligner. Rows follow the
// window layout above; the four invariant intron-end bases (GT...AG) carry
// near-certain frequencies.
var Default = Matrix{
	// donor exonic -3..-1
	{0.35, 0.35, 0.18, 0.12},
	{0.60, 0.13, 0.14, 0.13},
	{0.10, 0.04, 0.80, 0.06},
	// donor intronic +1..+6
	{0.001, 0.001, 0.997, 0.001},
	{0.001, 0.012, 0.001, 0.986},
	{0.60, 0.03, 0.34, 0.03},
	{0.70, 0.08, 0.12, 0.10},
	{0.08, 0.05, 0.80, 0.07},
	{0.16, 0.15, 0.19, 0.50},
	// acceptor intronic -3..-1
	{0.06, 0.70, 0.03, 0.21},
	{0.997, 0.001, 0.001, 0.001},
	{0.001, 0.001, 0.997, 0.001},
	// acceptor exonic +1
	{0.25, 0.14, 0.50, 0.11},
}

func baseIdx(b byte) int {
	switch b {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	default:
		return -1
	}
}

// Score returns the summed log-odds of a 13-base flank.
func (m *Matrix) Score(flank [Positions]byte) float64 {
	s := 0.0
	for i, b := range flank {
		ix := baseIdx(b)
		if ix < 0 {
			continue
		}
		f := m[i][ix]
		if f <= 0 {
			f = background
		}
		s += math.Log2(f / background)
	}
	return s
}

// Junction locates an intron in coding-orientation coordinates of seq.
// Donor is the first intron base, Acceptor the first base of the next exon.
// Exonic flank bases are only read inside [ExonStart, Donor) and
// [Acceptor, ExonEnd).
type Junction struct {
	ExonStart int
	Donor     int
	Acceptor  int
	ExonEnd   int
}

// Flank extracts the 13 scored bases for j from seq. Unusable positions
// are 'N'.
func Flank(seq []byte, j Junction) [Positions]byte {
	var f [Positions]byte
	at := func(i, lo, hi int) byte {
		if i < lo || i >= hi || i < 0 || i >= len(seq) {
			return 'N'
		}
		return seq[i]
	}
	k := 0
	for i := j.Donor - DonorExonic; i < j.Donor; i++ {
		f[k] = at(i, j.ExonStart, j.Donor)
		k++
	}
	for i := j.Donor; i < j.Donor+DonorIntronic; i++ {
		f[k] = at(i, j.Donor, j.Acceptor)
		k++
	}
	for i := j.Acceptor - AcceptorIntronic; i < j.Acceptor; i++ {
		f[k] = at(i, j.Donor, j.Acceptor)
		k++
	}
	for i := j.Acceptor; i < j.Acceptor+AcceptorExonic; i++ {
		f[k] = at(i, j.Acceptor, j.ExonEnd)
		k++
	}
	return f
}

// ScoreJunction is Flank followed by Score.
func (m *Matrix) ScoreJunction(seq []byte, j Junction) float64 {
	return m.Score(Flank(seq, j))
}

// Informative counts the flank positions that hold a real base.
func Informative(flank [Positions]byte) int {
	n := 0
	for _, b := range flank {
		if baseIdx(b) >= 0 {
			n++
		}
	}
	return n
}
