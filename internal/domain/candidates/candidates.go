// Package candidates proposes clip windows around promising transcript
// blocks: a few target durations per block, clamped to the configured scope
// and deduplicated by mutual overlap.
package candidates

import (
	"math"
	"sort"
	"strings"

	"github.com/clippick/clippick/internal/domain/features"
	"github.com/clippick/clippick/internal/numutil"
	"github.com/clippick/clippick/internal/types"
)

const (
	// topBlocks bounds generator cost on long transcripts.
	topBlocks = 30
	// dedupThreshold drops the later of two windows that mostly cover the
	// same material.
	dedupThreshold = 0.8
	// excerptLimit caps text_excerpt length in runes.
	excerptLimit = 360
)

// durationOffsets spread targets around the midpoint of the configured
// duration range.
var durationOffsets = [...]float64{-10, 0, 12}

// Generate proposes candidate windows for the given blocks under cfg.
func Generate(blocks []types.Block, cfg types.SelectionConfig) []types.Candidate {
	scoped := scopeFilter(blocks, cfg)
	if len(scoped) == 0 {
		return nil
	}

	targets := targetDurations(cfg.DurationMinSec, cfg.DurationMaxSec)
	retained := retainTopBlocks(scoped, cfg)

	lo := 0.0
	if cfg.TimeframeStartSec != nil {
		lo = max(lo, *cfg.TimeframeStartSec)
	}
	hi := math.Inf(1)
	if cfg.TimeframeEndSec != nil {
		hi = *cfg.TimeframeEndSec
	}

	var out []types.Candidate
	for _, rb := range retained {
		for _, d := range targets {
			if len(out) >= cfg.MaxCandidates {
				break
			}
			c, ok := buildWindow(rb.block, rb.preScore, d, lo, hi, cfg, scoped)
			if ok {
				out = append(out, c)
			}
		}
		if len(out) >= cfg.MaxCandidates {
			break
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].StartSec < out[j].StartSec })
	out = dropNearDuplicates(out)
	if len(out) > cfg.MaxCandidates {
		out = out[:cfg.MaxCandidates]
	}
	return out
}

func scopeFilter(blocks []types.Block, cfg types.SelectionConfig) []types.Block {
	out := make([]types.Block, 0, len(blocks))
	for _, b := range blocks {
		if cfg.TimeframeStartSec != nil && b.EndSec <= *cfg.TimeframeStartSec {
			continue
		}
		if cfg.TimeframeEndSec != nil && b.StartSec >= *cfg.TimeframeEndSec {
			continue
		}
		out = append(out, b)
	}
	return out
}

// targetDurations derives the window lengths to try: the midpoint of
// [minSec, maxSec] nudged by fixed offsets, clamped back into range,
// deduplicated in order.
func targetDurations(minSec, maxSec float64) []float64 {
	mid := math.Round((minSec + maxSec) / 2)
	out := make([]float64, 0, len(durationOffsets))
	seen := make(map[float64]struct{}, len(durationOffsets))
	for _, off := range durationOffsets {
		d := numutil.Clamp(mid+off, minSec, maxSec)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

type rankedBlock struct {
	block    types.Block
	preScore float64
}

// retainTopBlocks pre-scores every scoped block with a cheap heuristic and
// keeps the best ones, visited in descending pre-score so the candidate
// budget goes to the most promising material first. Ties keep timeline
// order.
func retainTopBlocks(blocks []types.Block, cfg types.SelectionConfig) []rankedBlock {
	ranked := make([]rankedBlock, 0, len(blocks))
	for _, b := range blocks {
		ranked = append(ranked, rankedBlock{block: b, preScore: preScoreBlock(b, cfg)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].preScore > ranked[j].preScore })
	if len(ranked) > topBlocks {
		ranked = ranked[:topBlocks]
	}
	return ranked
}

func preScoreBlock(b types.Block, cfg types.SelectionConfig) float64 {
	f := features.Extract(b.Text)
	var score float64
	if f.HasQuestion {
		score += 6
	}
	if f.HasHowTo {
		score += 5
	}
	if f.HasWarningWords {
		score += 5
	}
	if f.HasStepWords {
		score += 4
	}
	if f.HasStoryMarkers {
		score += 4
	}
	if f.StartsWithFiller {
		score -= 4
	}
	if f.ContainsCTANoise {
		score -= 6
	}
	score += features.KeywordOverlapRatio(b.Text, cfg.IncludeMomentText) * 12
	return score
}

// buildWindow centers a window of duration d on the block's midpoint,
// clamps it into [lo, hi] and up to the configured minimum (edge clamping
// near scope boundaries may leave it shorter), and assembles the excerpt
// from every block the window overlaps.
func buildWindow(b types.Block, preScore, d, lo, hi float64, cfg types.SelectionConfig, scoped []types.Block) (types.Candidate, bool) {
	mid := (b.StartSec + b.EndSec) / 2
	start := mid - d/2
	end := mid + d/2
	if start < lo {
		start = lo
		end = min(hi, start+d)
	}
	if end > hi {
		end = hi
		start = max(lo, end-d)
	}
	if end-start < cfg.DurationMinSec {
		end = min(hi, start+cfg.DurationMinSec)
	}
	if end <= start {
		return types.Candidate{}, false
	}
	start = numutil.Round(start, 3)
	end = numutil.Round(end, 3)

	var parts []string
	var sourceIDs []string
	var wordCount int
	for _, sb := range scoped {
		if sb.EndSec <= start || sb.StartSec >= end {
			continue
		}
		if sb.ScoringText != "" {
			parts = append(parts, sb.ScoringText)
		}
		sourceIDs = append(sourceIDs, sb.ID)
	}
	excerpt := truncateRunes(strings.TrimSpace(strings.Join(parts, " ")), excerptLimit)
	if excerpt == "" {
		return types.Candidate{}, false
	}
	wordCount = len(strings.Fields(excerpt))

	return types.Candidate{
		ID:           types.WindowID("candidate", start, end),
		StartSec:     start,
		EndSec:       end,
		TextExcerpt:  excerpt,
		SourceBlocks: sourceIDs,
		WordCount:    wordCount,
		Features:     features.Extract(excerpt),
		PreScore:     preScore,
	}, true
}

// dropNearDuplicates assumes input sorted by start and removes any window
// that mostly repeats an earlier one.
func dropNearDuplicates(cands []types.Candidate) []types.Candidate {
	out := make([]types.Candidate, 0, len(cands))
	for _, c := range cands {
		dup := false
		for _, kept := range out {
			if types.OverlapRatio(kept, c) > dedupThreshold {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out
}

func truncateRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return strings.TrimSpace(string(r[:limit]))
}
