package jsonutil

import (
	"bytes"
	"testing"
)

func TestEncodePrettyNilIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePretty[int](&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "[]\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestEncodePrettyIndents(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePretty(&buf, []map[string]int{{"a": 1}}); err != nil {
		t.Fatal(err)
	}
	if want := "[\n  {\n    \"a\": 1\n  }\n]\n"; buf.String() != want {
		t.Fatalf("got %q", buf.String())
	}
}
