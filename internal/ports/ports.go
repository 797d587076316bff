package ports

import (
	"io"

	"github.com/clippick/clippick/internal/types"
)

// TranscriptSource parses a transcript from some external representation.
// The engine only ever sees the minimal segment shape; any vendor extras
// are dropped at this boundary.
type TranscriptSource interface {
	Parse(r io.Reader) (types.Transcript, error)
}
