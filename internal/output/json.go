// internal/output/json.go
package output

import (
	"io"

	"exonmap/internal/engine"
	"exonmap/internal/jsonutil"
	"exonmap/pkg/api"
)

func toAPISites(ss []engine.Site) []api.SiteV1 {
	if len(ss) == 0 {
		return nil
	}
	out := make([]api.SiteV1, len(ss))
	for i, s := range ss {
		out[i] = api.SiteV1{Residue: s.Residue, Codon: s.Codon}
	}
	return out
}

// ToAPIAlignment converts a domain Alignment to the stable wire schema (v1).
func ToAPIAlignment(a engine.Alignment) api.AlignmentV1 {
	v := api.AlignmentV1{
		ProteinID:     a.ProteinID,
		ProteinName:   a.ProteinName,
		ProteinLength: a.ProteinLength,
		Chrom:         a.Chrom,
		Strand:        a.Strand.String(),
		Coverage:      a.Coverage,
		Exons:         make([]api.ExonV1, 0, len(a.Exons)),
		Stats: &api.StatsV1{
			Seeds:        a.Stats.Seeds,
			Candidates:   a.Stats.Candidates,
			Pruned:       a.Stats.Pruned,
			Merged:       a.Stats.Merged,
			FrameSkipped: a.Stats.FrameSkipped,
			Extended:     a.Stats.Extended,
			Refined:      a.Stats.Refined,
		},
	}
	for i, e := range a.Exons {
		x := api.ExonV1{
			Start:        e.Start,
			End:          e.End,
			ProteinStart: e.ProteinStart,
			ProteinEnd:   e.ProteinEnd,
			Phase:        e.Phase,
			Mismatches:   toAPISites(e.Mismatches),
			SNPs:         toAPISites(e.SNPs),
			Seq:          e.Seq,
		}
		if e.EdgeResidue >= 0 {
			r := e.EdgeResidue
			x.EdgeResidue = &r
			x.EdgeSNP = e.EdgeSNP
		}
		if i+1 < len(a.Exons) {
			s := e.SpliceScore
			x.SpliceScore = &s
		}
		v.Exons = append(v.Exons, x)
	}
	for _, w := range a.Warnings {
		v.Warnings = append(v.Warnings, api.WarningV1{Kind: w.Kind, Message: w.Message})
	}
	return v
}

func toAPIAlignments(list []engine.Alignment) []api.AlignmentV1 {
	out := make([]api.AlignmentV1, 0, len(list))
	for _, a := range list {
		out = append(out, ToAPIAlignment(a))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 alignments (pretty-indented).
func WriteJSON(w io.Writer, list []engine.Alignment) error {
	return jsonutil.EncodePretty(w, toAPIAlignments(list))
}
