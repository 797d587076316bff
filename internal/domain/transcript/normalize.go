// Package transcript merges raw time-stamped fragments into coherent blocks
// aligned to sentence boundaries and duration bounds.
package transcript

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/clippick/clippick/internal/domain/features"
	"github.com/clippick/clippick/internal/numutil"
	"github.com/clippick/clippick/internal/types"
)

type Options struct {
	MinBlockSec float64
	MaxBlockSec float64
	MaxGapSec   float64
}

func DefaultOptions() Options {
	return Options{MinBlockSec: 3, MaxBlockSec: 8, MaxGapSec: 1.2}
}

// sentenceEnd: terminal punctuation, optionally a closing quote or bracket,
// optionally trailing space.
var sentenceEnd = regexp.MustCompile(`[.!?…]["'”’)\]]?\s*$`)

// Normalize validates, sorts, and greedily merges segments into blocks.
// Invalid segments (non-finite timestamps, end <= start, empty text) are
// dropped silently; empty input yields an empty result.
func Normalize(segments []types.Segment, opts Options) []types.Block {
	valid := make([]types.Segment, 0, len(segments))
	for _, s := range segments {
		if !isFinite(s.Start) || !isFinite(s.End) || s.End <= s.Start {
			continue
		}
		text := collapseWhitespace(s.Text)
		if text == "" {
			continue
		}
		s.Text = text
		valid = append(valid, s)
	}
	if len(valid) == 0 {
		return nil
	}

	sort.SliceStable(valid, func(i, j int) bool { return valid[i].Start < valid[j].Start })

	var blocks []types.Block
	var open *accumulator
	for _, s := range valid {
		if open == nil {
			open = newAccumulator(s)
			continue
		}
		gap := s.Start - open.end
		dur := open.end - open.start
		merge := gap <= opts.MaxGapSec &&
			(dur < opts.MinBlockSec || (dur < opts.MaxBlockSec && !EndsAtSentenceBoundary(open.lastText())))
		if merge {
			open.add(s)
			continue
		}
		blocks = append(blocks, open.flush())
		open = newAccumulator(s)
	}
	if open != nil {
		blocks = append(blocks, open.flush())
	}
	return blocks
}

type accumulator struct {
	start float64
	end   float64
	parts []string
}

func newAccumulator(s types.Segment) *accumulator {
	return &accumulator{start: s.Start, end: s.End, parts: []string{s.Text}}
}

func (a *accumulator) add(s types.Segment) {
	if s.End > a.end {
		a.end = s.End
	}
	a.parts = append(a.parts, s.Text)
}

func (a *accumulator) lastText() string { return a.parts[len(a.parts)-1] }

func (a *accumulator) flush() types.Block {
	text := strings.Join(a.parts, " ")
	start := numutil.Round(a.start, 3)
	end := numutil.Round(a.end, 3)
	return types.Block{
		ID:                       types.WindowID("block", start, end),
		StartSec:                 start,
		EndSec:                   end,
		Text:                     text,
		ScoringText:              features.StripFillerWords(text),
		WordCount:                len(strings.Fields(text)),
		CharCount:                len([]rune(text)),
		StartsAtSentenceBoundary: StartsAtSentenceBoundary(text),
		EndsAtSentenceBoundary:   EndsAtSentenceBoundary(text),
	}
}

// StartsAtSentenceBoundary reports whether the text opens with an uppercase
// letter; unicode classes keep accented capitals covered.
func StartsAtSentenceBoundary(text string) bool {
	for _, r := range text {
		return unicode.IsUpper(r)
	}
	return false
}

func EndsAtSentenceBoundary(text string) bool {
	return sentenceEnd.MatchString(text)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
