package genome

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
)

var ErrBadSNPRecord = errors.New("genome: malformed SNP record")

// SNPTable maps absolute chromosome positions to the bases tolerated there.
// It is filled once and only read afterwards.
type SNPTable struct {
	Chrom   string
	alleles map[int][]byte
}

func NewSNPTable(chrom string) *SNPTable {
	return &SNPTable{Chrom: chrom, alleles: make(map[int][]byte)}
}

// Add records the alleles tolerated at pos, merging with any already present.
func (t *SNPTable) Add(pos int, alleles []byte) {
	cur := t.alleles[pos]
	for _, a := range bytes.ToUpper(alleles) {
		if bytes.IndexByte(cur, a) < 0 {
			cur = append(cur, a)
		}
	}
	t.alleles[pos] = cur
}

// Alleles returns the bases tolerated at pos, or nil. Safe on a nil table.
func (t *SNPTable) Alleles(pos int) []byte {
	if t == nil {
		return nil
	}
	return t.alleles[pos]
}

// Len is the number of positions with alleles.
func (t *SNPTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.alleles)
}

// Positions returns every position in ascending order.
func (t *SNPTable) Positions() []int {
	if t == nil {
		return nil
	}
	out := make([]int, 0, len(t.alleles))
	for p := range t.alleles {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// ReadSNPTable decodes the packed record stream: a 4-byte little-endian
// position, a 1-byte variant type, then type+2 allele bytes.
func ReadSNPTable(r io.Reader, chrom string) (*SNPTable, error) {
	br := bufio.NewReader(r)
	t := NewSNPTable(chrom)
	var hdr [5]byte
	for n := 0; ; n++ {
		if _, err := io.ReadFull(br, hdr[:]); err != nil {
			if err == io.EOF {
				return t, nil
			}
			return nil, fmt.Errorf("%w: record %d header: %v", ErrBadSNPRecord, n, err)
		}
		pos := int(binary.LittleEndian.Uint32(hdr[:4]))
		al := make([]byte, int(hdr[4])+2)
		if _, err := io.ReadFull(br, al); err != nil {
			return nil, fmt.Errorf("%w: record %d alleles: %v", ErrBadSNPRecord, n, err)
		}
		t.Add(pos, al)
	}
}

// WriteSNPTable encodes t in the layout read by ReadSNPTable, in position
// order. Every position needs between 2 and 257 alleles.
func WriteSNPTable(w io.Writer, t *SNPTable) error {
	bw := bufio.NewWriter(w)
	var hdr [5]byte
	for _, pos := range t.Positions() {
		al := t.alleles[pos]
		if len(al) < 2 || len(al) > 257 {
			return fmt.Errorf("%w: position %d has %d alleles", ErrBadSNPRecord, pos, len(al))
		}
		if pos < 0 || uint64(pos) > math.MaxUint32 {
			return fmt.Errorf("%w: position %d out of range", ErrBadSNPRecord, pos)
		}
		binary.LittleEndian.PutUint32(hdr[:4], uint32(pos))
		hdr[4] = byte(len(al) - 2)
		if _, err := bw.Write(hdr[:]); err != nil {
			return err
		}
		if _, err := bw.Write(al); err != nil {
			return err
		}
	}
	return bw.Flush()
}
