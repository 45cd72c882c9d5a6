package appshell

import (
	"context"
	"io"
	"testing"
)

func TestRunPassesArgsAndCode(t *testing.T) {
	var got []string
	code := run(func(ctx context.Context, argv []string, _, _ io.Writer) int {
		got = argv
		if ctx.Err() != nil {
			t.Error("context cancelled before any signal")
		}
		return 7
	}, []string{"-g", "x.fa"}, io.Discard, io.Discard)
	if code != 7 || len(got) != 2 {
		t.Fatalf("code=%d argv=%v", code, got)
	}
}
