// pkg/api/alignment_v1.go
package api

// SiteV1 is a protein position and the absolute forward coordinate of the
// first coding base of its codon.
type SiteV1 struct {
	Residue int `json:"residue"`
	Codon   int `json:"codon"`
}

// ExonV1 is one aligned exon. Start/End are 0-based half-open forward-strand
// coordinates; protein positions are 0-based half-open.
type ExonV1 struct {
	Start        int      `json:"start"`
	End          int      `json:"end"`
	ProteinStart int      `json:"protein_start"`
	ProteinEnd   int      `json:"protein_end"`
	Phase        int      `json:"phase"`
	EdgeResidue  *int     `json:"edge_residue,omitempty"`
	EdgeSNP      bool     `json:"edge_snp,omitempty"` // edge residue explained via a SNP allele
	SpliceScore  *float64 `json:"splice_score,omitempty"` // junction after this exon
	Mismatches   []SiteV1 `json:"mismatches,omitempty"`
	SNPs         []SiteV1 `json:"snps,omitempty"`
	Seq          string   `json:"seq,omitempty"` // coding orientation
}

// WarningV1 reports a correction the aligner made on its own.
type WarningV1 struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// AlignmentV1 is the stable JSON/JSONL schema for one protein.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type AlignmentV1 struct {
	ProteinID     string      `json:"protein_id"`
	ProteinName   string      `json:"protein_name,omitempty"`
	ProteinLength int         `json:"protein_length"`
	Chrom         string      `json:"chrom"`
	Strand        string      `json:"strand"` // "+" | "-"
	Coverage      int         `json:"coverage"`
	Exons         []ExonV1    `json:"exons"`
	Warnings      []WarningV1 `json:"warnings,omitempty"`
	Stats         *StatsV1    `json:"stats,omitempty"`
}

// StatsV1 counts what each alignment stage did.
type StatsV1 struct {
	Seeds        int `json:"seeds"`
	Candidates   int `json:"candidates"`
	Pruned       int `json:"pruned,omitempty"`
	Merged       int `json:"merged,omitempty"`
	FrameSkipped int `json:"frame_skipped,omitempty"`
	Extended     int `json:"extended,omitempty"`
	Refined      int `json:"refined,omitempty"`
}
