// Package selection ranks scored candidates and greedily picks a bounded,
// non-overlapping, minimally-clustered subset.
package selection

import (
	"math"
	"sort"

	"github.com/clippick/clippick/internal/domain/scoring"
	"github.com/clippick/clippick/internal/types"
)

// Ranked pairs a candidate with its score.
type Ranked struct {
	Candidate types.Candidate
	Score     types.Score
}

// Rank scores every candidate and sorts descending by total. The sort is
// stable so ties keep generation order and output stays deterministic.
func Rank(cands []types.Candidate, cfg types.SelectionConfig) []Ranked {
	ranked := make([]Ranked, 0, len(cands))
	for _, c := range cands {
		ranked = append(ranked, Ranked{Candidate: c, Score: scoring.Score(c, cfg)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score.Total > ranked[j].Score.Total
	})
	return ranked
}

// SelectDiverse greedily accepts ranked candidates, skipping any that
// overlap an accepted pick beyond cfg.OverlapThreshold or start within
// cfg.MinDistanceSec of one. Greedy score-first selection is a known
// approximation: a rejected pair can beat the accepted one on combined
// score. Kept intentionally; see DESIGN.md.
func SelectDiverse(ranked []Ranked, cfg types.SelectionConfig) []Ranked {
	accepted := make([]Ranked, 0, cfg.MaxClips)
	for _, r := range ranked {
		if len(accepted) >= cfg.MaxClips {
			break
		}
		if conflicts(r, accepted, cfg) {
			continue
		}
		accepted = append(accepted, r)
	}
	return accepted
}

func conflicts(r Ranked, accepted []Ranked, cfg types.SelectionConfig) bool {
	for _, a := range accepted {
		if types.OverlapRatio(r.Candidate, a.Candidate) > cfg.OverlapThreshold {
			return true
		}
		if math.Abs(r.Candidate.StartSec-a.Candidate.StartSec) < cfg.MinDistanceSec {
			return true
		}
	}
	return false
}
