package selection

import (
	"math"
	"testing"

	"github.com/clippick/clippick/internal/types"
)

func window(id string, start, end float64) types.Candidate {
	return types.Candidate{ID: id, StartSec: start, EndSec: end, TextExcerpt: "text", WordCount: 2}
}

func ranked(id string, start, end, total float64) Ranked {
	return Ranked{
		Candidate: window(id, start, end),
		Score:     types.Score{Total: total, Grade: "C"},
	}
}

func TestRank_SortsDescendingKeepsTies(t *testing.T) {
	t.Parallel()

	// Identical candidates score identically; the stable sort must keep
	// their generation order.
	cands := []types.Candidate{
		window("first", 0, 30),
		window("second", 100, 130),
		window("third", 200, 230),
	}
	out := Rank(cands, types.DefaultSelectionConfig())
	if len(out) != 3 {
		t.Fatalf("expected 3 ranked candidates, got %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i-1].Score.Total < out[i].Score.Total {
			t.Fatalf("not sorted descending at %d", i)
		}
	}
	if out[0].Candidate.ID != "first" || out[1].Candidate.ID != "second" || out[2].Candidate.ID != "third" {
		t.Fatalf("tie order not preserved: %s, %s, %s",
			out[0].Candidate.ID, out[1].Candidate.ID, out[2].Candidate.ID)
	}
}

func TestSelectDiverse_RespectsMaxClips(t *testing.T) {
	t.Parallel()

	var in []Ranked
	for i := 0; i < 20; i++ {
		start := float64(i * 100)
		in = append(in, ranked("c", start, start+30, float64(100-i)))
	}
	cfg := types.DefaultSelectionConfig()
	cfg.MaxClips = 4

	out := SelectDiverse(in, cfg)
	if len(out) != 4 {
		t.Fatalf("expected 4 picks, got %d", len(out))
	}
}

func TestSelectDiverse_EnforcesOverlapAndDistance(t *testing.T) {
	t.Parallel()

	in := []Ranked{
		ranked("a", 0, 30, 90),
		ranked("b", 10, 40, 85),  // overlaps a
		ranked("c", 15, 45, 80),  // too close to a even without overlap rule
		ranked("d", 100, 130, 75),
		ranked("e", 112, 142, 70), // within min distance of d
		ranked("f", 300, 330, 65),
	}
	cfg := types.DefaultSelectionConfig()

	out := SelectDiverse(in, cfg)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			a, b := out[i].Candidate, out[j].Candidate
			if r := types.OverlapRatio(a, b); r > cfg.OverlapThreshold {
				t.Fatalf("picks %s and %s overlap %.2f > %.2f", a.ID, b.ID, r, cfg.OverlapThreshold)
			}
			if d := math.Abs(a.StartSec - b.StartSec); d < cfg.MinDistanceSec {
				t.Fatalf("picks %s and %s start %.1fs apart, want >= %.1f", a.ID, b.ID, d, cfg.MinDistanceSec)
			}
		}
	}
	if len(out) != 3 {
		t.Fatalf("expected picks a, d, f, got %d picks", len(out))
	}
	if out[0].Candidate.ID != "a" || out[1].Candidate.ID != "d" || out[2].Candidate.ID != "f" {
		t.Fatalf("unexpected picks: %s, %s, %s",
			out[0].Candidate.ID, out[1].Candidate.ID, out[2].Candidate.ID)
	}
}

func TestSelectDiverse_EmptyInput(t *testing.T) {
	t.Parallel()

	if out := SelectDiverse(nil, types.DefaultSelectionConfig()); len(out) != 0 {
		t.Fatalf("expected no picks, got %d", len(out))
	}
}

func TestOverlapRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b types.Candidate
		want float64
	}{
		{"disjoint", window("a", 0, 10), window("b", 20, 30), 0},
		{"touching", window("a", 0, 10), window("b", 10, 20), 0},
		{"contained", window("a", 0, 100), window("b", 40, 50), 1},
		{"half", window("a", 0, 10), window("b", 5, 15), 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := types.OverlapRatio(tt.a, tt.b); got != tt.want {
				t.Fatalf("OverlapRatio = %v, want %v", got, tt.want)
			}
			if got := types.OverlapRatio(tt.b, tt.a); got != tt.want {
				t.Fatalf("OverlapRatio not symmetric: %v, want %v", got, tt.want)
			}
		})
	}
}
