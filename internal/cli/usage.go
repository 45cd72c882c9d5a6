// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"exonmap/internal/version"
)

// usage prints the grouped help. Defaults are read back from fs so the text
// never drifts from the registered flags.
func usage(fs *flag.FlagSet, name string) {
	out := fs.Output()
	def := func(flagName string) string {
		if f := fs.Lookup(flagName); f != nil {
			return f.DefValue
		}
		return ""
	}
	section := func(title string, lines ...string) {
		fmt.Fprintf(out, "\n%s:\n", title)
		for _, l := range lines {
			fmt.Fprintln(out, l)
		}
	}

	fmt.Fprintf(out, "%s – splice-aware protein-to-genome exon mapping\n\n", name)
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s -g genome.fa --chrom chr1 --center N [flags] proteins.fa ...\n", name)
	examples(out, name)

	section("Input",
		"  -g, --genome file            Genome FASTA (plain or gzip, '-' for STDIN) [*]",
		"      --chrom string           Chromosome record ID [*]",
		"      --center int             0-based centre of the search window [*]",
		fmt.Sprintf("      --radius int             Half-width of the window in bp (0=whole chromosome) [%s]", def("radius")),
		"  -p, --proteins file          Protein FASTA file(s) (repeatable; positionals and globs accepted) [*]",
		"      --snps file              Binary SNP table for --chrom",
		"      --hard-list file         Protein IDs that need --hard-word-length",
	)
	section("Alignment",
		fmt.Sprintf("      --word-length int        Seed word length in residues [%s]", def("word-length")),
		fmt.Sprintf("      --hard-word-length int   Seed word length for --hard-list proteins [%s]", def("hard-word-length")),
		fmt.Sprintf("      --min-splice-score float Minimum acceptable splice log-odds [%s]", def("min-splice-score")),
		fmt.Sprintf("      --max-merge-gap int      Largest gap merged instead of spliced (bp) [%s]", def("max-merge-gap")),
		fmt.Sprintf("      --merge-frame-slack int  Frame disagreement still merged (bp) [%s]", def("merge-frame-slack")),
		fmt.Sprintf("      --prune-threshold int    Candidate count that triggers pruning [%s]", def("prune-threshold")),
		fmt.Sprintf("      --prune-min-residues int Shortest candidate kept when pruning [%s]", def("prune-min-residues")),
		fmt.Sprintf("      --splice-shift int       Junction shift tried by the refiner (bp) [%s]", def("splice-shift")),
		fmt.Sprintf("      --min-intron int         Shortest intron (bp) [%s]", def("min-intron")),
		fmt.Sprintf("      --min-coverage int       Drop alignments covering fewer residues [%s]", def("min-coverage")),
	)
	section("Performance",
		fmt.Sprintf("  -t, --threads int            Worker threads (0=all CPUs) [%s]", def("threads")),
		fmt.Sprintf("      --progress               Progress bar on STDERR [%s]", def("progress")),
	)
	section("Output",
		fmt.Sprintf("  -o, --output string          Output: text | json | jsonl | gff | fasta [%s]", def("output")),
		fmt.Sprintf("      --exon-seqs              Include exon sequences in JSON/JSONL [%s]", def("exon-seqs")),
		fmt.Sprintf("      --pretty                 Pretty ASCII alignment blocks (text) [%s]", def("pretty")),
		fmt.Sprintf("      --sort                   Sort outputs deterministically [%s]", def("sort")),
		fmt.Sprintf("      --no-header              Suppress header line [%s]", def("no-header")),
		fmt.Sprintf("      --no-match-exit-code int Exit code when nothing aligns [%s]", def("no-match-exit-code")),
	)
	section("Miscellaneous",
		fmt.Sprintf("  -q, --quiet                  Suppress warnings and info lines [%s]", def("quiet")),
		"  -v, --version                Print version and exit",
		"  -h, --help                   Show this help and exit",
	)
}

func examples(out io.Writer, name string) {
	fmt.Fprintln(out, "\nExamples:")
	fmt.Fprintf(out, "  %s -g hg38.fa.gz --chrom chr7 --center 55019017 egfr.faa\n", name)
	fmt.Fprintf(out, "  %s -g hg38.fa.gz --chrom chr7 --center 55019017 --radius 0 -o gff 'panel/*.faa'\n", name)
	fmt.Fprintf(out, "  %s -g ref.fa --chrom 2 --center 1200000 --snps chr2.snp --pretty -p query.faa\n", name)
}
