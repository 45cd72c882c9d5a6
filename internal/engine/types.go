// internal/engine/types.go
package engine

import (
	"exonmap/internal/dna"
	"exonmap/internal/genome"
)

// Protein is one query sequence. Seq must already be normalized; use
// NewProtein when reading raw input.
type Protein struct {
	ID   string
	Name string
	Seq  []byte
}

func NewProtein(id, name string, seq []byte) Protein {
	return Protein{ID: id, Name: name, Seq: dna.NormalizeProtein(seq)}
}

// Site is a protein position together with the absolute forward coordinate
// of the first coding base of its codon.
type Site struct {
	Residue int `json:"residue"`
	Codon   int `json:"codon"`
}

// Exon is one aligned block. Start/End are absolute forward-strand
// coordinates (half-open) whatever the strand; ProteinStart/ProteinEnd are
// half-open protein positions.
type Exon struct {
	Start        int
	End          int
	ProteinStart int
	ProteinEnd   int

	// Phase is the number of leading coding bases that finish a codon begun
	// in the previous exon (0..2).
	Phase int

	// EdgeResidue is the protein position whose codon is split across the
	// junction after this exon and is explained by the spliced codon, or -1.
	// It lies outside both exons' protein ranges. A split codon that does not
	// translate to its residue is not reported at all: the residue is left
	// out of the ranges, of Mismatches and of coverage.
	EdgeResidue int

	// EdgeSNP is set when the spliced codon explains EdgeResidue only
	// through a SNP allele.
	EdgeSNP bool

	Mismatches []Site
	SNPs       []Site

	// SpliceScore is the log-odds score of the junction after this exon.
	// It is 0 for the last exon.
	SpliceScore float64

	// Seq holds the exon bases in coding orientation. Align leaves it
	// empty; callers that render sequence fill it.
	Seq string
}

// Residues is the number of protein positions the exon covers in full codons.
func (e Exon) Residues() int { return e.ProteinEnd - e.ProteinStart }

// Chain is the ordered set of exons chosen for one strand. Exons are in
// protein order, which on the reverse strand is descending genome order.
type Chain struct {
	Strand   genome.Strand
	Exons    []Exon
	Coverage int
}

// Warning reports something the aligner corrected on its own.
type Warning struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

const WarnContainedExon = "contained-exon"

// Stats counts what each stage did for one alignment.
type Stats struct {
	Seeds        int `json:"seeds"`
	Candidates   int `json:"candidates"`
	Pruned       int `json:"pruned"`
	Merged       int `json:"merged"`
	FrameSkipped int `json:"frame_skipped"`
	Extended     int `json:"extended"`
	Refined      int `json:"refined"`
}

// Alignment is the result for one protein.
type Alignment struct {
	ProteinID     string
	ProteinName   string
	ProteinLength int
	ProteinSeq    string
	Chrom         string
	Chain
	Stats    Stats
	Warnings []Warning
}
