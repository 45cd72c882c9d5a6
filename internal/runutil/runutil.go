// internal/runutil/runutil.go
package runutil

import (
	"bufio"
	"fmt"
	"runtime"
	"strings"

	"exonmap/internal/common"
	"exonmap/internal/fasta"
)

// ComputeThreads returns the worker count: n if positive, otherwise all CPUs.
func ComputeThreads(n int) int {
	if n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// ReadIDList reads one protein ID per line. Blank lines and lines starting
// with '#' are skipped; only the first whitespace-separated field counts.
// The file may be gzip-compressed or "-" for stdin.
func ReadIDList(path string) ([]string, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var ids []string
	sc := bufio.NewScanner(rc)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, strings.Fields(line)[0])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return common.UniqueTrimmed(ids), nil
}

// ComputeNeedSeq tells the pipeline whether to fill Exon.Seq: always for
// --exon-seqs and FASTA output, and for pretty text blocks.
func ComputeNeedSeq(output string, exonSeqs, pretty bool) bool {
	switch {
	case exonSeqs, output == "fasta":
		return true
	default:
		return output == "text" && pretty
	}
}
