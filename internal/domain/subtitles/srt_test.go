package subtitles

import (
	"strings"
	"testing"

	"github.com/clippick/clippick/internal/types"
)

func TestRenderClipSRT(t *testing.T) {
	t.Parallel()

	tr := types.Transcript{Segments: []types.Segment{
		{Start: 0, End: 4, Text: "Before the clip."},
		{Start: 10, End: 14, Text: "First line inside."},
		{Start: 14, End: 18, Text: "Second line inside."},
		{Start: 30, End: 35, Text: "After the clip."},
	}}

	got := RenderClipSRT(tr, 10, 20)
	want := "1\n00:00:00,000 --> 00:00:04,000\nFirst line inside.\n\n" +
		"2\n00:00:04,000 --> 00:00:08,000\nSecond line inside.\n\n"
	if got != want {
		t.Fatalf("unexpected SRT:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderClipSRT_ClampsPartialCues(t *testing.T) {
	t.Parallel()

	tr := types.Transcript{Segments: []types.Segment{
		{Start: 8, End: 12, Text: "Straddles the start."},
	}}
	got := RenderClipSRT(tr, 10, 20)
	if !strings.HasPrefix(got, "1\n00:00:00,000 --> 00:00:02,000\n") {
		t.Fatalf("cue not clamped to window: %q", got)
	}
}

func TestRenderClipSRT_NoOverlap(t *testing.T) {
	t.Parallel()

	tr := types.Transcript{Segments: []types.Segment{
		{Start: 0, End: 5, Text: "Elsewhere."},
	}}
	if got := RenderClipSRT(tr, 100, 130); got != "" {
		t.Fatalf("expected empty SRT, got %q", got)
	}
}

func TestSRTTimestamp(t *testing.T) {
	t.Parallel()

	tests := map[float64]string{
		0:        "00:00:00,000",
		1.5:      "00:00:01,500",
		61.25:    "00:01:01,250",
		3661.007: "01:01:01,007",
	}
	for in, want := range tests {
		if got := srtTimestamp(in); got != want {
			t.Fatalf("srtTimestamp(%v) = %q, want %q", in, got, want)
		}
	}
}
