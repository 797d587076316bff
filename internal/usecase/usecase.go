// Package usecase is the pure engine facade: segments plus a selection
// config in, a ranked and diversified clip list out. No I/O, no shared
// state; safe to call concurrently for independent requests.
package usecase

import (
	"github.com/clippick/clippick/internal/domain/candidates"
	"github.com/clippick/clippick/internal/domain/selection"
	"github.com/clippick/clippick/internal/domain/transcript"
	"github.com/clippick/clippick/internal/types"
)

type Result struct {
	Clips          []types.SelectedClip
	BlockCount     int
	CandidateCount int
}

// Run executes the full pipeline. It never fails: malformed segments are
// filtered at the normalizer boundary and the result degrades to empty.
func Run(segments []types.Segment, cfg types.SelectionConfig) Result {
	blocks := transcript.Normalize(segments, transcript.Options{
		MinBlockSec: cfg.BlockMinSec,
		MaxBlockSec: cfg.BlockMaxSec,
		MaxGapSec:   cfg.BlockMaxGapSec,
	})

	cands := candidates.Generate(blocks, cfg)
	picked := selection.SelectDiverse(selection.Rank(cands, cfg), cfg)

	clips := make([]types.SelectedClip, 0, len(picked))
	for _, p := range picked {
		clips = append(clips, types.SelectedClip{
			ID:           p.Candidate.ID,
			StartSec:     p.Candidate.StartSec,
			EndSec:       p.Candidate.EndSec,
			TextExcerpt:  p.Candidate.TextExcerpt,
			SourceBlocks: p.Candidate.SourceBlocks,
			WordCount:    p.Candidate.WordCount,
			ScoreTotal:   p.Score.Total,
			Grade:        p.Score.Grade,
			Metrics:      p.Score.Metrics,
		})
	}

	return Result{
		Clips:          clips,
		BlockCount:     len(blocks),
		CandidateCount: len(cands),
	}
}
