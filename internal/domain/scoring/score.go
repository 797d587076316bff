// Package scoring turns candidate windows into 0-100 scores with letter
// grades, weighted by clip style and nudged by genre.
package scoring

import (
	"math"

	"github.com/clippick/clippick/internal/domain/features"
	"github.com/clippick/clippick/internal/numutil"
	"github.com/clippick/clippick/internal/types"
)

// targetWordsPerSec is the speaking pace the density component rewards.
const targetWordsPerSec = 2.3

// momentWeight is fixed across styles.
const momentWeight = 0.12

// redFlagPenalty is subtracted from the raw score when CTA noise shows up.
const redFlagPenalty = 0.24

type styleWeights struct {
	hook    float64
	info    float64
	density float64
	clarity float64
}

var weightsByStyle = map[types.Style]styleWeights{
	types.StyleBalanced:    {hook: 0.28, info: 0.24, density: 0.16, clarity: 0.20},
	types.StyleHooky:       {hook: 0.38, info: 0.18, density: 0.16, clarity: 0.16},
	types.StyleEducational: {hook: 0.20, info: 0.34, density: 0.16, clarity: 0.22},
	types.StyleStory:       {hook: 0.24, info: 0.24, density: 0.12, clarity: 0.26},
}

var genreMultiplier = map[types.Genre]float64{
	types.GenreDemo:      1.04,
	types.GenreTutorial:  1.03,
	types.GenreInterview: 1.02,
	types.GenrePodcast:   1.01,
}

// Score computes the multi-metric weighted score for one candidate.
func Score(c types.Candidate, cfg types.SelectionConfig) types.Score {
	duration := math.Max(0.3, c.EndSec-c.StartSec)
	f := features.Extract(c.TextExcerpt)
	wordsPerSec := float64(c.WordCount) / duration
	momentMatch := features.KeywordOverlapRatio(c.TextExcerpt, cfg.IncludeMomentText)

	hookOpen := 1.0
	if f.StartsWithFiller {
		hookOpen = 0.3
	}
	hook := 0.28*b01(f.HasQuestion) + 0.24*b01(f.HasHowTo) + 0.24*b01(f.HasWarningWords) + 0.24*hookOpen
	clarity := 0.6*f.UniqueWordRatio + 0.2*b01(f.HasNumberedList) + 0.2*b01(f.HasStepWords)
	density := numutil.Clamp01(1 - math.Abs(wordsPerSec-targetWordsPerSec)/targetWordsPerSec)
	informativeness := numutil.Clamp01(1.6*f.KeywordDensity + 0.2*b01(f.HasStepWords) + 0.15*b01(f.HasStoryMarkers))
	redFlags := b01(f.ContainsCTANoise)

	w, ok := weightsByStyle[cfg.Style]
	if !ok {
		w = weightsByStyle[types.StyleBalanced]
	}
	mult, ok := genreMultiplier[cfg.Genre]
	if !ok {
		mult = 1.0
	}

	raw := hook*w.hook + clarity*w.clarity + density*w.density +
		informativeness*w.info + momentMatch*momentWeight - redFlags*redFlagPenalty

	total := numutil.Round(numutil.Clamp(raw*100*mult, 0, 100), 3)

	return types.Score{
		Total: total,
		Grade: grade(total),
		Metrics: types.Metrics{
			Hook:            numutil.Round(hook*100, 2),
			Clarity:         numutil.Round(clarity*100, 2),
			Density:         numutil.Round(density*100, 2),
			Informativeness: numutil.Round(informativeness*100, 2),
			RedFlags:        numutil.Round(redFlags*100, 2),
			IncludeMoment:   numutil.Round(momentMatch*100, 2),
		},
	}
}

func grade(total float64) string {
	switch {
	case total >= 82:
		return "A"
	case total >= 68:
		return "B"
	case total >= 52:
		return "C"
	default:
		return "D"
	}
}

func b01(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
