// Package subtitles renders the transcript slice under a selected window
// as SRT, with timestamps re-based to the clip start.
package subtitles

import (
	"fmt"
	"strings"

	"github.com/clippick/clippick/internal/types"
)

// RenderClipSRT emits one cue per transcript segment overlapping
// [startSec, endSec), clamped to the window. Returns "" when nothing
// overlaps.
func RenderClipSRT(tr types.Transcript, startSec, endSec float64) string {
	var b strings.Builder
	idx := 0
	for _, s := range tr.Segments {
		if s.End <= startSec || s.Start >= endSec {
			continue
		}
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		cueStart := max(s.Start, startSec) - startSec
		cueEnd := min(s.End, endSec) - startSec
		if cueEnd <= cueStart {
			continue
		}
		idx++
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n", idx, srtTimestamp(cueStart), srtTimestamp(cueEnd), text)
	}
	return b.String()
}

func srtTimestamp(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	ms := int(sec*1000 + 0.5)
	h := ms / 3600000
	ms -= h * 3600000
	m := ms / 60000
	ms -= m * 60000
	s := ms / 1000
	ms -= s * 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}
