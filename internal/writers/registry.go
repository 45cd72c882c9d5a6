// internal/writers/registry.go
package writers

import (
	"errors"
	"io"
	"syscall"

	"exonmap/internal/engine"
)

// AlignmentWriteFunc drains in and serializes every alignment to out.
type AlignmentWriteFunc func(out io.Writer, in <-chan engine.Alignment, o Options) error

// AlignmentWriters maps an output format to its handler. Handlers register
// in init() blocks next to their implementation.
var AlignmentWriters = map[string]AlignmentWriteFunc{}

// RegisterAlignment adds or replaces (last wins) the handler for format.
func RegisterAlignment(format string, fn AlignmentWriteFunc) { AlignmentWriters[format] = fn }

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe,
// as happens when a downstream consumer such as `head` exits early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
