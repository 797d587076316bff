package whisperjson

import (
	"strings"
	"testing"
)

func TestParse_SegmentsObject(t *testing.T) {
	t.Parallel()

	in := `{"segments": [
		{"start": 0, "end": 4.5, "text": "  Hello there.  "},
		{"start": 4.5, "end": 9, "text": "Second segment."}
	]}`
	tr, err := New().Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(tr.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(tr.Segments))
	}
	if tr.Segments[0].Text != "Hello there." {
		t.Fatalf("text not trimmed: %q", tr.Segments[0].Text)
	}
	if tr.Segments[1].Start != 4.5 || tr.Segments[1].End != 9 {
		t.Fatalf("unexpected timestamps: %+v", tr.Segments[1])
	}
}

func TestParse_BareArray(t *testing.T) {
	t.Parallel()

	in := `[{"start": 1, "end": 2, "text": "One."}]`
	tr, err := New().Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(tr.Segments) != 1 || tr.Segments[0].Text != "One." {
		t.Fatalf("unexpected transcript: %+v", tr)
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := New().Parse(strings.NewReader("not json")); err == nil {
		t.Fatalf("expected error for invalid json")
	}
}
