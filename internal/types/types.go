package types

import (
	"fmt"

	"github.com/google/uuid"
)

type Transcript struct {
	Segments []Segment `json:"segments"`
}

// Segment is a raw time-stamped transcript fragment. No invariants are
// guaranteed by the caller; the normalizer validates and filters.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Block is a merged, sentence-boundary-aware unit of transcript text.
// Blocks come out of the normalizer in ascending, non-overlapping order.
type Block struct {
	ID                       string  `json:"id"`
	StartSec                 float64 `json:"start_s"`
	EndSec                   float64 `json:"end_s"`
	Text                     string  `json:"text"`
	ScoringText              string  `json:"scoring_text"`
	WordCount                int     `json:"word_count"`
	CharCount                int     `json:"char_count"`
	StartsAtSentenceBoundary bool    `json:"starts_at_sentence_boundary"`
	EndsAtSentenceBoundary   bool    `json:"ends_at_sentence_boundary"`
}

func (b Block) Duration() float64 { return b.EndSec - b.StartSec }

// Features are the lexical signals extracted from a piece of text.
type Features struct {
	HasQuestion      bool    `json:"has_question"`
	StartsWithFiller bool    `json:"starts_with_filler"`
	HasNumberedList  bool    `json:"has_numbered_list"`
	HasHowTo         bool    `json:"has_how_to"`
	HasWarningWords  bool    `json:"has_warning_words"`
	HasStepWords     bool    `json:"has_step_words"`
	HasStoryMarkers  bool    `json:"has_story_markers"`
	ContainsCTANoise bool    `json:"contains_cta_noise"`
	KeywordDensity   float64 `json:"keyword_density"`
	UniqueWordRatio  float64 `json:"unique_word_ratio"`
}

// Candidate is a proposed clip window, not yet scored against the final
// style/genre weights. PreScore is the cheap block heuristic that got the
// source block retained by the generator.
type Candidate struct {
	ID           string   `json:"id"`
	StartSec     float64  `json:"start_s"`
	EndSec       float64  `json:"end_s"`
	TextExcerpt  string   `json:"text_excerpt"`
	SourceBlocks []string `json:"source_block_ids"`
	WordCount    int      `json:"word_count"`
	Features     Features `json:"features"`
	PreScore     float64  `json:"pre_score"`
}

func (c Candidate) Duration() float64 { return c.EndSec - c.StartSec }

// OverlapRatio is the intersection of two windows divided by the shorter
// window's duration; 0 when the windows do not intersect.
func OverlapRatio(a, b Candidate) float64 {
	inter := min(a.EndSec, b.EndSec) - max(a.StartSec, b.StartSec)
	if inter <= 0 {
		return 0
	}
	shorter := min(a.Duration(), b.Duration())
	if shorter <= 0 {
		return 0
	}
	return inter / shorter
}

// Metrics are the per-component percentages reported alongside a score.
// Diagnostic only; nothing downstream re-consumes them.
type Metrics struct {
	Hook            float64 `json:"hook"`
	Clarity         float64 `json:"clarity"`
	Density         float64 `json:"density"`
	Informativeness float64 `json:"informativeness"`
	RedFlags        float64 `json:"red_flags"`
	IncludeMoment   float64 `json:"include_moment"`
}

type Score struct {
	Total   float64 `json:"score_total"`
	Grade   string  `json:"grade"`
	Metrics Metrics `json:"metrics"`
}

type Style string

const (
	StyleHooky       Style = "hooky"
	StyleBalanced    Style = "balanced"
	StyleEducational Style = "educational"
	StyleStory       Style = "story"
)

type Genre string

const (
	GenreTutorial    Genre = "tutorial"
	GenrePodcast     Genre = "podcast"
	GenreDemo        Genre = "demo"
	GenreInterview   Genre = "interview"
	GenreTalkingHead Genre = "talking_head"
	GenreOther       Genre = "other"
)

// SelectionConfig drives the whole engine run. Validation is the caller's
// job (see pipeline.Config.Validate); the engine assumes a sane config.
type SelectionConfig struct {
	Style             Style
	Genre             Genre
	MaxClips          int
	DurationMinSec    float64
	DurationMaxSec    float64
	OverlapThreshold  float64
	MinDistanceSec    float64
	IncludeMomentText string

	// Nil timeframe bounds mean unbounded on that side.
	TimeframeStartSec *float64
	TimeframeEndSec   *float64

	MaxCandidates  int
	BlockMinSec    float64
	BlockMaxSec    float64
	BlockMaxGapSec float64

	// TokenBudget is reserved for downstream LLM consumption; the
	// selection algorithm does not read it.
	TokenBudget int
}

func DefaultSelectionConfig() SelectionConfig {
	return SelectionConfig{
		Style:            StyleBalanced,
		Genre:            GenreTutorial,
		MaxClips:         8,
		DurationMinSec:   30,
		DurationMaxSec:   60,
		OverlapThreshold: 0.15,
		MinDistanceSec:   20,
		MaxCandidates:    40,
		BlockMinSec:      3,
		BlockMaxSec:      8,
		BlockMaxGapSec:   1.2,
	}
}

// SelectedClip is the engine's output element: a scored candidate that
// survived diversity selection.
type SelectedClip struct {
	ID           string   `json:"id"`
	StartSec     float64  `json:"start_s"`
	EndSec       float64  `json:"end_s"`
	TextExcerpt  string   `json:"text_excerpt"`
	SourceBlocks []string `json:"source_block_ids"`
	WordCount    int      `json:"word_count"`
	ScoreTotal   float64  `json:"score_total"`
	Grade        string   `json:"grade"`
	Metrics      Metrics  `json:"metrics"`
}

type Manifest struct {
	Input string         `json:"input"`
	Style Style          `json:"style"`
	Genre Genre          `json:"genre"`
	Clips []ManifestClip `json:"clips"`
}

// ManifestClip wraps a selected clip with its display ID ("001", "002", ...)
// and optional subtitle artifact path, both relative to the run dir.
type ManifestClip struct {
	DisplayID string `json:"display_id"`
	SelectedClip
	Subtitles string `json:"subtitles,omitempty"`
}

// windowNamespace scopes the deterministic IDs minted below. Identical
// inputs must yield identical outputs, so IDs hash the window instead of
// drawing randomness.
var windowNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("clippick/window"))

func WindowID(kind string, startSec, endSec float64) string {
	key := fmt.Sprintf("%s|%.3f|%.3f", kind, startSec, endSec)
	return uuid.NewSHA1(windowNamespace, []byte(key)).String()
}
