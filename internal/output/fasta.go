// internal/output/fasta.go
package output

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"exonmap/internal/engine"
)

// exonRecords returns one DNA record per exon, in coding orientation.
// Exons without a sequence are skipped.
func exonRecords(a engine.Alignment) []*linear.Seq {
	var out []*linear.Seq
	for i, e := range a.Exons {
		if e.Seq == "" {
			continue
		}
		s := linear.NewSeq(fmt.Sprintf("%s_exon%d", a.ProteinID, i+1), alphabet.BytesToLetters([]byte(e.Seq)), alphabet.DNA)
		s.Desc = fmt.Sprintf("%s:%d-%d(%s) protein=%d-%d phase=%d", a.Chrom, e.Start, e.End, a.Strand, e.ProteinStart, e.ProteinEnd, e.Phase)
		out = append(out, s)
	}
	return out
}

// StreamFASTA streams exon sequences from a channel to the writer.
func StreamFASTA(w io.Writer, in <-chan engine.Alignment) error {
	fw := fasta.NewWriter(w, 60)
	for a := range in {
		for _, s := range exonRecords(a) {
			if _, err := fw.Write(s); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteFASTA writes the exon sequences of a slice of alignments.
func WriteFASTA(w io.Writer, list []engine.Alignment) error {
	fw := fasta.NewWriter(w, 60)
	for _, a := range list {
		for _, s := range exonRecords(a) {
			if _, err := fw.Write(s); err != nil {
				return err
			}
		}
	}
	return nil
}
