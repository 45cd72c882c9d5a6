// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"exonmap/internal/engine"
)

// WriteTextWithRenderer prints the TSV header (optional) and one row per
// alignment, each followed by the rendered block when pretty is set.
func WriteTextWithRenderer(w io.Writer, list []engine.Alignment, header, pretty bool, render func(engine.Alignment) string) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, a := range list {
		if err := writeTextRow(w, a, pretty, render); err != nil {
			return err
		}
	}
	return nil
}

// StreamTextWithRenderer is WriteTextWithRenderer over a channel.
func StreamTextWithRenderer(w io.Writer, in <-chan engine.Alignment, header, pretty bool, render func(engine.Alignment) string) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for a := range in {
		if err := writeTextRow(w, a, pretty, render); err != nil {
			return err
		}
	}
	return nil
}

func writeTextRow(w io.Writer, a engine.Alignment, pretty bool, render func(engine.Alignment) string) error {
	if _, err := fmt.Fprintln(w, FormatRowTSV(a)); err != nil {
		return err
	}
	if pretty && render != nil {
		if _, err := io.WriteString(w, render(a)); err != nil {
			return err
		}
	}
	return nil
}
