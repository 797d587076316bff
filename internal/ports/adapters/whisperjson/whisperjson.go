// Package whisperjson reads whisper-style transcript JSON: either an
// object with a "segments" array or a bare array of segments.
package whisperjson

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/clippick/clippick/internal/types"
)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (a *Adapter) Parse(r io.Reader) (types.Transcript, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return types.Transcript{}, fmt.Errorf("read transcript: %w", err)
	}

	var tr types.Transcript
	if err := json.Unmarshal(b, &tr); err != nil {
		// Some exporters emit the segment list directly.
		var segs []types.Segment
		if err2 := json.Unmarshal(b, &segs); err2 != nil {
			return types.Transcript{}, fmt.Errorf("parse transcript json: %w", err)
		}
		tr.Segments = segs
	}

	for i := range tr.Segments {
		tr.Segments[i].Text = strings.TrimSpace(tr.Segments[i].Text)
	}
	return tr, nil
}
