// internal/output/gff.go
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"

	"exonmap/internal/engine"
	"exonmap/internal/genome"
)

func gffStrand(s genome.Strand) seq.Strand {
	if s == genome.Reverse {
		return seq.Minus
	}
	return seq.Plus
}

// gffFeatures returns the parent protein_match and one CDS per exon.
// Alignments without exons produce nothing.
func gffFeatures(a engine.Alignment) []*gff.Feature {
	if len(a.Exons) == 0 {
		return nil
	}
	lo, hi := a.Exons[0].Start, a.Exons[0].End
	for _, e := range a.Exons[1:] {
		lo, hi = min(lo, e.Start), max(hi, e.End)
	}
	cov := float64(a.Coverage)
	strand := gffStrand(a.Strand)
	parent := &gff.Feature{
		SeqName:    a.Chrom,
		Source:     GFFSource,
		Feature:    "protein_match",
		FeatStart:  lo,
		FeatEnd:    hi,
		FeatScore:  &cov,
		FeatStrand: strand,
		FeatFrame:  gff.NoFrame,
		FeatAttributes: gff.Attributes{
			{Tag: "ID", Value: a.ProteinID},
			{Tag: "Coverage", Value: strconv.Itoa(a.Coverage) + "/" + strconv.Itoa(a.ProteinLength)},
		},
	}
	if a.ProteinName != "" {
		parent.FeatAttributes = append(parent.FeatAttributes, gff.Attribute{Tag: "Name", Value: strconv.Quote(a.ProteinName)})
	}
	out := []*gff.Feature{parent}
	for i, e := range a.Exons {
		f := &gff.Feature{
			SeqName:    a.Chrom,
			Source:     GFFSource,
			Feature:    "CDS",
			FeatStart:  e.Start,
			FeatEnd:    e.End,
			FeatStrand: strand,
			FeatFrame:  gff.Frame(e.Phase),
			FeatAttributes: gff.Attributes{
				{Tag: "Parent", Value: a.ProteinID},
				{Tag: "Target", Value: fmt.Sprintf("%s %d %d", a.ProteinID, e.ProteinStart+1, e.ProteinEnd)},
			},
		}
		if i+1 < len(a.Exons) {
			s := e.SpliceScore
			f.FeatScore = &s
		}
		if len(e.Mismatches) > 0 {
			f.FeatAttributes = append(f.FeatAttributes, gff.Attribute{Tag: "Mismatches", Value: strconv.Itoa(len(e.Mismatches))})
		}
		if len(e.SNPs) > 0 {
			f.FeatAttributes = append(f.FeatAttributes, gff.Attribute{Tag: "SNPs", Value: strconv.Itoa(len(e.SNPs))})
		}
		out = append(out, f)
	}
	return out
}

// StreamGFF writes the GFF header and the features of every alignment
// received on in.
func StreamGFF(w io.Writer, in <-chan engine.Alignment, header bool) error {
	gw := gff.NewWriter(w, 60, header)
	for a := range in {
		for _, f := range gffFeatures(a) {
			if _, err := gw.Write(f); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteGFF is StreamGFF over a slice.
func WriteGFF(w io.Writer, list []engine.Alignment, header bool) error {
	gw := gff.NewWriter(w, 60, header)
	for _, a := range list {
		for _, f := range gffFeatures(a) {
			if _, err := gw.Write(f); err != nil {
				return err
			}
		}
	}
	return nil
}
