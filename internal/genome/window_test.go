package genome

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBounds(t *testing.T) {
	cases := []struct {
		center, radius, n int
		start, end        int
	}{
		{50, 10, 100, 40, 60},
		{5, 10, 100, 0, 15},
		{95, 10, 100, 85, 100},
		{500, 10, 100, 100, 100},
		{110, 10, 100, 100, 100},
		{105, 10, 100, 95, 100},
		{5000, 100, 20, 20, 20},
	}
	for _, c := range cases {
		s, e := Bounds(c.center, c.radius, c.n)
		if s != c.start || e != c.end {
			t.Errorf("Bounds(%d,%d,%d) = [%d,%d), want [%d,%d)", c.center, c.radius, c.n, s, e, c.start, c.end)
		}
	}
}

func TestReadWindow(t *testing.T) {
	fa := ">chrA\nAAAA\n>chrB desc\nacgtACGTNN\nTTTT\n"
	w, err := ReadWindow(strings.NewReader(fa), "chrB", 6, 3)
	if err != nil {
		t.Fatal(err)
	}
	if w.Chrom != "chrB" || w.Start != 3 || w.End != 9 || string(w.Seq) != "TACGTN" {
		t.Fatalf("window = %+v (%s)", w, w.Seq)
	}
	if !w.Contains(3) || w.Contains(9) {
		t.Errorf("Contains wrong at edges")
	}
}

func TestReadWindowMissingRecord(t *testing.T) {
	_, err := ReadWindow(strings.NewReader(">chrA\nACGT\n"), "chrZ", 0, 10)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestReadWindowEmpty(t *testing.T) {
	_, err := ReadWindow(strings.NewReader(">chrA\nACGT\n"), "chrA", 100, 10)
	if !errors.Is(err, ErrEmptyWindow) {
		t.Fatalf("err = %v, want ErrEmptyWindow", err)
	}
}

func TestReadWindowPastRecordEnd(t *testing.T) {
	rec := ">chr1\n" + strings.Repeat("ACGT", 5) + "\n"
	if _, err := ReadWindow(strings.NewReader(rec), "chr1", 20, 100); err != nil {
		t.Fatalf("window overlapping the record: %v", err)
	}
	for _, center := range []int{120, 5000} {
		if _, err := ReadWindow(strings.NewReader(rec), "chr1", center, 100); !errors.Is(err, ErrEmptyWindow) {
			t.Errorf("center %d: err = %v, want ErrEmptyWindow", center, err)
		}
	}
}

func TestLoadWindowFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.fa")
	if err := os.WriteFile(path, []byte(">c\nACGTACGTAC\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := LoadWindow(path, "c", 5, 100)
	if err != nil {
		t.Fatal(err)
	}
	if w.Start != 0 || w.Len() != 10 {
		t.Fatalf("window = %+v", w)
	}
	if _, err := LoadWindow(filepath.Join(t.TempDir(), "none.fa"), "c", 0, 1); err == nil {
		t.Fatal("expected open error")
	}
}
