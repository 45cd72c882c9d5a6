package engine

import "exonmap/internal/splice"

// Config holds every tunable of the aligner. Zero integer fields fall back to
// the defaults below when passed to New. MinSpliceScore is used as given, so
// start from DefaultConfig when building one by hand.
type Config struct {
	WordLength       int      // residues per seed word
	HardWordLength   int      // seed word length for proteins named in HardProteins
	HardProteins     []string // protein IDs that need longer seeds
	MinSpliceScore   float64  // log-odds floor for an acceptable junction
	MaxMergeGap      int      // bp; longer gaps between exons are introns
	MergeFrameSlack  int      // bp of frame disagreement still counted as a short gap
	PruneThreshold   int      // candidate pool size that triggers pruning
	PruneMinResidues int      // candidates shorter than this are pruned
	SpliceShift      int      // bp either side of a junction tried by the refiner
	MinIntron        int      // bp
	MaxRefinePasses  int      // whole-chain refinement passes
	Matrix           *splice.Matrix
}

const (
	DefaultWordLength       = 6
	DefaultHardWordLength   = 10
	DefaultMaxMergeGap      = 27
	DefaultMergeFrameSlack  = 2
	DefaultPruneThreshold   = 2000
	DefaultPruneMinResidues = 10
	DefaultSpliceShift      = 30
	DefaultMinIntron        = 20
	DefaultMaxRefinePasses  = 16
)

// DefaultConfig returns the configuration used by the command-line tool.
func DefaultConfig() Config {
	return Config{
		WordLength:       DefaultWordLength,
		HardWordLength:   DefaultHardWordLength,
		MinSpliceScore:   splice.DefaultThreshold,
		MaxMergeGap:      DefaultMaxMergeGap,
		MergeFrameSlack:  DefaultMergeFrameSlack,
		PruneThreshold:   DefaultPruneThreshold,
		PruneMinResidues: DefaultPruneMinResidues,
		SpliceShift:      DefaultSpliceShift,
		MinIntron:        DefaultMinIntron,
		MaxRefinePasses:  DefaultMaxRefinePasses,
		Matrix:           &splice.Default,
	}
}

func (c Config) withDefaults() Config {
	def := func(v *int, d int) {
		if *v <= 0 {
			*v = d
		}
	}
	def(&c.WordLength, DefaultWordLength)
	def(&c.HardWordLength, DefaultHardWordLength)
	def(&c.MaxMergeGap, DefaultMaxMergeGap)
	def(&c.PruneThreshold, DefaultPruneThreshold)
	def(&c.PruneMinResidues, DefaultPruneMinResidues)
	def(&c.SpliceShift, DefaultSpliceShift)
	def(&c.MinIntron, DefaultMinIntron)
	def(&c.MaxRefinePasses, DefaultMaxRefinePasses)
	if c.MergeFrameSlack < 0 {
		c.MergeFrameSlack = 0
	}
	if c.Matrix == nil {
		c.Matrix = &splice.Default
	}
	return c
}
