// internal/writers/alignment.go
package writers

import (
	"fmt"
	"io"

	"exonmap/internal/common"
	"exonmap/internal/engine"
	"exonmap/internal/output"
	"exonmap/internal/pretty"
)

// Options shape every alignment writer.
type Options struct {
	Sort   bool // buffer everything and sort before writing
	Header bool // TSV / GFF header line
	Pretty bool // text: add ASCII blocks
	Render pretty.Options
}

func init() {
	RegisterAlignment(output.FormatText, writeText)
	RegisterAlignment(output.FormatJSON, writeJSON)
	RegisterAlignment(output.FormatJSONL, writeJSONL)
	RegisterAlignment(output.FormatGFF, writeGFF)
	RegisterAlignment(output.FormatFASTA, writeFASTA)
}

// StartAlignmentWriter spins up a writer goroutine for the given format.
// Unknown formats report an error once the input is closed.
func StartAlignmentWriter(out io.Writer, format string, o Options, bufSize int) (chan<- engine.Alignment, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Alignment, bufSize)
	errCh := make(chan error, 1)

	go func() {
		fn, ok := AlignmentWriters[format]
		if !ok {
			for range in {
			}
			errCh <- fmt.Errorf("unknown alignment format %q (no writer registered)", format)
			return
		}
		err := fn(out, in, o)
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}

func collect(in <-chan engine.Alignment, sort bool) []engine.Alignment {
	var buf []engine.Alignment
	for a := range in {
		buf = append(buf, a)
	}
	if sort {
		common.SortAlignments(buf)
	}
	return buf
}

// sorted replays a sorted copy of in on a new channel.
func sorted(in <-chan engine.Alignment) <-chan engine.Alignment {
	buf := collect(in, true)
	ch := make(chan engine.Alignment, len(buf))
	for _, a := range buf {
		ch <- a
	}
	close(ch)
	return ch
}

func writeText(out io.Writer, in <-chan engine.Alignment, o Options) error {
	render := func(a engine.Alignment) string { return pretty.RenderAlignmentWithOptions(a, o.Render) }
	if o.Sort {
		return output.WriteTextWithRenderer(out, collect(in, true), o.Header, o.Pretty, render)
	}
	return output.StreamTextWithRenderer(out, in, o.Header, o.Pretty, render)
}

func writeJSON(out io.Writer, in <-chan engine.Alignment, o Options) error {
	return output.WriteJSON(out, collect(in, o.Sort))
}

func writeGFF(out io.Writer, in <-chan engine.Alignment, o Options) error {
	if o.Sort {
		in = sorted(in)
	}
	return output.StreamGFF(out, in, o.Header)
}

func writeFASTA(out io.Writer, in <-chan engine.Alignment, o Options) error {
	if o.Sort {
		in = sorted(in)
	}
	return output.StreamFASTA(out, in)
}
