// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"exonmap/internal/cliutil"
	"exonmap/internal/engine"
	"exonmap/internal/genome"
	"exonmap/internal/output"
	"exonmap/internal/splice"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Genome / protein input
	GenomeFile   string
	Chrom        string
	Center       int
	Radius       int
	ProteinFiles []string
	SNPFile      string
	HardList     string

	// Aligner parameters
	WordLength       int
	HardWordLength   int
	MinSpliceScore   float64
	MaxMergeGap      int
	MergeFrameSlack  int
	PruneThreshold   int
	PruneMinResidues int
	SpliceShift      int
	MinIntron        int
	MinCoverage      int

	// Performance
	Threads int

	// Output
	Output   string
	ExonSeqs bool
	Pretty   bool
	Sort     bool
	Header   bool // true unless --no-header
	Progress bool

	Quiet           bool
	NoMatchExitCode int
	Version         bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() { usage(fs, name) }
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Non-flag arguments are protein FASTA files and may be globs; they may
// appear before, between or after flags.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	def := engine.DefaultConfig()

	// Genome / protein input
	fs.StringVar(&opt.GenomeFile, "genome", "", "genome FASTA (plain or gzip, '-' for stdin) [*]")
	fs.StringVar(&opt.GenomeFile, "g", "", "genome FASTA (shorthand)")
	fs.StringVar(&opt.Chrom, "chrom", "", "chromosome record ID in the genome FASTA [*]")
	fs.IntVar(&opt.Center, "center", -1, "0-based centre of the search window [*]")
	fs.IntVar(&opt.Radius, "radius", 2_000_000, "half-width of the search window in bp (0 = whole chromosome) [2000000]")
	var prots stringSlice
	fs.Var(&prots, "proteins", "protein FASTA file(s) (repeatable; positionals also accepted) [*]")
	fs.Var(&prots, "p", "protein FASTA file(s) (shorthand)")
	fs.StringVar(&opt.SNPFile, "snps", "", "binary SNP table for --chrom (optional)")
	fs.StringVar(&opt.HardList, "hard-list", "", "file of protein IDs that use --hard-word-length")

	// Aligner parameters
	fs.IntVar(&opt.WordLength, "word-length", def.WordLength, fmt.Sprintf("seed word length in residues [%d]", def.WordLength))
	fs.IntVar(&opt.HardWordLength, "hard-word-length", def.HardWordLength, fmt.Sprintf("seed word length for --hard-list proteins [%d]", def.HardWordLength))
	fs.Float64Var(&opt.MinSpliceScore, "min-splice-score", splice.DefaultThreshold, fmt.Sprintf("minimum acceptable splice log-odds score [%g]", splice.DefaultThreshold))
	fs.IntVar(&opt.MaxMergeGap, "max-merge-gap", def.MaxMergeGap, fmt.Sprintf("largest gap (bp) merged instead of treated as an intron [%d]", def.MaxMergeGap))
	fs.IntVar(&opt.MergeFrameSlack, "merge-frame-slack", def.MergeFrameSlack, fmt.Sprintf("bp of frame disagreement still counted as a short gap [%d]", def.MergeFrameSlack))
	fs.IntVar(&opt.PruneThreshold, "prune-threshold", def.PruneThreshold, fmt.Sprintf("candidate pool size that triggers pruning [%d]", def.PruneThreshold))
	fs.IntVar(&opt.PruneMinResidues, "prune-min-residues", def.PruneMinResidues, fmt.Sprintf("shortest candidate kept when pruning [%d]", def.PruneMinResidues))
	fs.IntVar(&opt.SpliceShift, "splice-shift", def.SpliceShift, fmt.Sprintf("bp either side of a junction tried by the refiner [%d]", def.SpliceShift))
	fs.IntVar(&opt.MinIntron, "min-intron", def.MinIntron, fmt.Sprintf("shortest intron in bp [%d]", def.MinIntron))
	fs.IntVar(&opt.MinCoverage, "min-coverage", 1, "drop alignments covering fewer residues [1]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "number of worker threads (shorthand)")

	// Output
	fs.StringVar(&opt.Output, "output", output.FormatText, "output format: text | json | jsonl | gff | fasta [text]")
	fs.StringVar(&opt.Output, "o", output.FormatText, "output format (shorthand)")
	fs.BoolVar(&opt.ExonSeqs, "exon-seqs", false, "include exon sequences in JSON/JSONL [false]")
	fs.BoolVar(&opt.Pretty, "pretty", false, "pretty ASCII alignment blocks (text) [false]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort outputs for determinism (Chrom,Start,Strand,ProteinID) [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/GFF [false]")
	fs.BoolVar(&opt.Progress, "progress", false, "show a progress bar on stderr [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings and info lines [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "suppress warnings (shorthand)")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 1, "exit code when nothing is aligned [1]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, inputs := cliutil.SplitArgs(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader
	files, err := cliutil.ExpandInputs(append([]string(prots), inputs...))
	if err != nil {
		return opt, err
	}
	opt.ProteinFiles = files
	return opt, opt.Validate()
}

// Validate checks flag combinations and ranges.
func (o Options) Validate() error {
	switch {
	case o.GenomeFile == "":
		return errors.New("--genome is required")
	case o.Chrom == "":
		return errors.New("--chrom is required")
	case o.Center < 0:
		return errors.New("--center is required and must be ≥ 0")
	case len(o.ProteinFiles) == 0:
		return errors.New("at least one protein FASTA is required")
	case o.GenomeFile == "-" && containsDash(o.ProteinFiles):
		return errors.New("only one input can be read from stdin")
	}
	if o.Radius < 0 {
		return errors.New("--radius must be ≥ 0")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	for _, c := range []struct {
		name string
		v    int
	}{
		{"--word-length", o.WordLength},
		{"--hard-word-length", o.HardWordLength},
		{"--max-merge-gap", o.MaxMergeGap},
		{"--prune-threshold", o.PruneThreshold},
		{"--prune-min-residues", o.PruneMinResidues},
		{"--splice-shift", o.SpliceShift},
		{"--min-intron", o.MinIntron},
	} {
		if c.v < 1 {
			return fmt.Errorf("%s must be ≥ 1", c.name)
		}
	}
	if o.MergeFrameSlack < 0 {
		return errors.New("--merge-frame-slack must be ≥ 0")
	}
	if o.MinCoverage < 0 {
		return errors.New("--min-coverage must be ≥ 0")
	}
	switch o.Output {
	case output.FormatText, output.FormatJSON, output.FormatJSONL, output.FormatGFF, output.FormatFASTA:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	return nil
}

// EngineConfig maps the aligner flags onto an engine.Config.
func (o Options) EngineConfig(hard []string) engine.Config {
	c := engine.DefaultConfig()
	c.WordLength = o.WordLength
	c.HardWordLength = o.HardWordLength
	c.HardProteins = hard
	c.MinSpliceScore = o.MinSpliceScore
	c.MaxMergeGap = o.MaxMergeGap
	c.MergeFrameSlack = o.MergeFrameSlack
	c.PruneThreshold = o.PruneThreshold
	c.PruneMinResidues = o.PruneMinResidues
	c.SpliceShift = o.SpliceShift
	c.MinIntron = o.MinIntron
	return c
}

// WindowRadius returns the radius to load, with 0 meaning the whole chromosome.
func (o Options) WindowRadius() int {
	if o.Radius == 0 {
		return genome.WholeChromosome
	}
	return o.Radius
}

func containsDash(ss []string) bool {
	for _, s := range ss {
		if s == "-" {
			return true
		}
	}
	return false
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
