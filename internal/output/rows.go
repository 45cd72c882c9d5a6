// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"
	"strings"

	"exonmap/internal/engine"
)

func IntsCSV(a []int) string {
	if len(a) == 0 {
		return ""
	}
	ss := make([]string, len(a))
	for i, v := range a {
		ss[i] = strconv.Itoa(v)
	}
	return strings.Join(ss, ",")
}

func sitesCSV(a engine.Alignment, pick func(engine.Exon) []engine.Site) string {
	var res []int
	for _, e := range a.Exons {
		for _, s := range pick(e) {
			res = append(res, s.Residue)
		}
	}
	return IntsCSV(res)
}

func rangesCSV(a engine.Alignment, span func(engine.Exon) (int, int)) string {
	ss := make([]string, len(a.Exons))
	for i, e := range a.Exons {
		s, en := span(e)
		ss[i] = strconv.Itoa(s) + "-" + strconv.Itoa(en)
	}
	return strings.Join(ss, ",")
}

func spliceCSV(a engine.Alignment) string {
	if len(a.Exons) < 2 {
		return ""
	}
	ss := make([]string, len(a.Exons)-1)
	for i, e := range a.Exons[:len(a.Exons)-1] {
		ss[i] = strconv.FormatFloat(e.SpliceScore, 'f', 2, 64)
	}
	return strings.Join(ss, ",")
}

// FormatRowTSV returns the 11 TSV columns of one alignment (no trailing newline).
// Exons are listed in protein order.
func FormatRowTSV(a engine.Alignment) string {
	return fmt.Sprintf("%s\t%s\t%s\t%d\t%d\t%d\t%s\t%s\t%s\t%s\t%s",
		a.ProteinID, a.Chrom, a.Strand,
		a.Coverage, a.ProteinLength, len(a.Exons),
		rangesCSV(a, func(e engine.Exon) (int, int) { return e.Start, e.End }),
		rangesCSV(a, func(e engine.Exon) (int, int) { return e.ProteinStart, e.ProteinEnd }),
		sitesCSV(a, func(e engine.Exon) []engine.Site { return e.Mismatches }),
		sitesCSV(a, func(e engine.Exon) []engine.Site { return e.SNPs }),
		spliceCSV(a),
	)
}
