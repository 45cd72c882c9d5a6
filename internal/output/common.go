package output

// Output formats understood by the writers.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatGFF   = "gff"
	FormatFASTA = "fasta"
)

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "protein_id\tchrom\tstrand\tcoverage\tprotein_length\texon_count\texons\tprotein_ranges\tmismatch_residues\tsnp_residues\tsplice_scores"

// GFFSource is the source column of GFF records.
const GFFSource = "exonmap"
