// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"exonmap/internal/engine"
	"exonmap/internal/jsonlutil"
	"exonmap/internal/output"
)

// StartAlignmentJSONLWriter streams each engine.Alignment as one JSON line (v1).
func StartAlignmentJSONLWriter(out io.Writer, bufSize int) (chan<- engine.Alignment, <-chan error) {
	return jsonlutil.Start[engine.Alignment](out, bufSize,
		func(enc *json.Encoder, a engine.Alignment) error {
			return enc.Encode(output.ToAPIAlignment(a))
		},
		IsBrokenPipe,
	)
}

func writeJSONL(out io.Writer, in <-chan engine.Alignment, o Options) error {
	if o.Sort {
		in = sorted(in)
	}
	ch, done := StartAlignmentJSONLWriter(out, 0)
	for a := range in {
		ch <- a
	}
	close(ch)
	return <-done
}
