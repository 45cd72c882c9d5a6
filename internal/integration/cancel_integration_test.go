package integration

import (
	"context"
	"io"
	"strings"
	"testing"

	"exonmap/internal/app"
)

func TestCancelledRunExits130(t *testing.T) {
	var prots strings.Builder
	for i := 0; i < 200; i++ {
		prots.WriteString(">p\nMKTAYIAKMKTAYIAK\n")
	}
	g, p := inputs(t, prots.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := app.RunContext(ctx, []string{"-q", "-g", g, "--chrom", "chrT", "--center", "40", p}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
