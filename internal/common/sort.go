// internal/common/sort.go
package common

import (
	"sort"

	"exonmap/internal/engine"
)

// LessAlignment defines a stable order for alignments (for -sort):
// chromosome, first exon start, strand, then protein ID.
func LessAlignment(a, b engine.Alignment) bool {
	if a.Chrom != b.Chrom {
		return a.Chrom < b.Chrom
	}
	as, bs := lowestStart(a), lowestStart(b)
	if as != bs {
		return as < bs
	}
	if a.Strand != b.Strand {
		return a.Strand > b.Strand
	}
	return a.ProteinID < b.ProteinID
}

func lowestStart(a engine.Alignment) int {
	if len(a.Exons) == 0 {
		return -1
	}
	lo := a.Exons[0].Start
	for _, e := range a.Exons[1:] {
		if e.Start < lo {
			lo = e.Start
		}
	}
	return lo
}

func SortAlignments(as []engine.Alignment) {
	sort.SliceStable(as, func(i, j int) bool { return LessAlignment(as[i], as[j]) })
}
