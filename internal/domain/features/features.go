// Package features derives lexical signals from transcript text. Extraction
// is pure: same text in, same features out, no I/O.
package features

import (
	"regexp"
	"strings"

	"github.com/clippick/clippick/internal/types"
)

// Extractor holds matchers compiled from one or more locale lexicons.
type Extractor struct {
	question *regexp.Regexp
	howTo    *regexp.Regexp
	warning  *regexp.Regexp
	step     *regexp.Regexp
	story    *regexp.Regexp
	cta      *regexp.Regexp
	ordinal  *regexp.Regexp
	fillers  map[string]struct{}
}

// digitList matches explicit list markers like "1." or "2)".
var digitList = regexp.MustCompile(`(?:^|\s)\d{1,2}\s*[.)]\s`)

// tokenCutset trims sentence punctuation off word edges before lookups.
const tokenCutset = ".,!?;:…\"'()[]“”‘’"

func NewExtractor(lexicons ...Lexicon) *Extractor {
	var interrogatives, howTo, warning, step, story, cta, ordinals []string
	fillers := make(map[string]struct{})
	for _, lx := range lexicons {
		interrogatives = append(interrogatives, lx.Interrogatives...)
		howTo = append(howTo, lx.HowTo...)
		warning = append(warning, lx.Warning...)
		step = append(step, lx.Step...)
		story = append(story, lx.Story...)
		cta = append(cta, lx.CTANoise...)
		ordinals = append(ordinals, lx.Ordinals...)
		for _, f := range lx.Fillers {
			fillers[strings.ToLower(f)] = struct{}{}
		}
	}
	return &Extractor{
		question: compileLeading(interrogatives),
		howTo:    compileWords(howTo),
		warning:  compileWords(warning),
		step:     compileWords(step),
		story:    compileWords(story),
		cta:      compileWords(cta),
		ordinal:  compileWords(ordinals),
		fillers:  fillers,
	}
}

// compileWords builds a case-insensitive word-boundary alternation; spaces
// inside a phrase match any whitespace run.
func compileWords(phrases []string) *regexp.Regexp {
	if len(phrases) == 0 {
		return regexp.MustCompile(`\A\z.`) // matches nothing
	}
	quoted := make([]string, 0, len(phrases))
	for _, p := range phrases {
		quoted = append(quoted, strings.ReplaceAll(regexp.QuoteMeta(p), " ", `\s+`))
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// compileLeading anchors the alternation to the start of the text.
func compileLeading(phrases []string) *regexp.Regexp {
	quoted := make([]string, 0, len(phrases))
	for _, p := range phrases {
		quoted = append(quoted, strings.ReplaceAll(regexp.QuoteMeta(p), " ", `\s+`))
	}
	return regexp.MustCompile(`(?i)^\s*(?:` + strings.Join(quoted, "|") + `)\b`)
}

// Default covers the locales the engine ships with.
var Default = NewExtractor(DefaultLexicons()...)

func Extract(text string) types.Features { return Default.Extract(text) }

func (e *Extractor) Extract(text string) types.Features {
	t := strings.TrimSpace(text)
	if t == "" {
		return types.Features{}
	}

	words := normalizedWords(t)
	var longWords int
	distinct := make(map[string]struct{}, len(words))
	for _, w := range words {
		if len([]rune(w)) >= 6 {
			longWords++
		}
		distinct[w] = struct{}{}
	}
	var keywordDensity, uniqueRatio float64
	if len(words) > 0 {
		keywordDensity = float64(longWords) / float64(len(words))
		uniqueRatio = float64(len(distinct)) / float64(len(words))
	}

	return types.Features{
		HasQuestion:      strings.Contains(t, "?") || e.question.MatchString(t),
		StartsWithFiller: e.startsWithFiller(t),
		HasNumberedList:  digitList.MatchString(t) || e.ordinal.MatchString(t),
		HasHowTo:         e.howTo.MatchString(t),
		HasWarningWords:  e.warning.MatchString(t),
		HasStepWords:     e.step.MatchString(t),
		HasStoryMarkers:  e.story.MatchString(t),
		ContainsCTANoise: e.cta.MatchString(t),
		KeywordDensity:   keywordDensity,
		UniqueWordRatio:  uniqueRatio,
	}
}

func (e *Extractor) startsWithFiller(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}
	first := strings.ToLower(strings.Trim(fields[0], tokenCutset))
	_, ok := e.fillers[first]
	return ok
}

// StripFillerWords removes hesitation sounds and discourse fillers and
// collapses whitespace.
func StripFillerWords(text string) string { return Default.StripFillerWords(text) }

func (e *Extractor) StripFillerWords(text string) string {
	fields := strings.Fields(text)
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		norm := strings.ToLower(strings.Trim(f, tokenCutset))
		if _, ok := e.fillers[norm]; ok {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// KeywordOverlapRatio reports which fraction of the phrase's tokens
// (length >= 3) occur as substrings of the normalized text. Empty phrase
// yields 0.
func KeywordOverlapRatio(text, phrase string) float64 {
	tokens := make([]string, 0, 8)
	for _, f := range strings.Fields(phrase) {
		tok := strings.ToLower(strings.Trim(f, tokenCutset))
		if len([]rune(tok)) >= 3 {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return 0
	}
	norm := strings.ToLower(text)
	var found int
	for _, tok := range tokens {
		if strings.Contains(norm, tok) {
			found++
		}
	}
	return float64(found) / float64(len(tokens))
}

func normalizedWords(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.Trim(f, tokenCutset)
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
