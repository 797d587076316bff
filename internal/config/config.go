// Package config loads selection settings from a YAML file and fills
// defaults for anything left unset.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/clippick/clippick/internal/types"
)

// File mirrors the selection config on disk. Pointer fields distinguish
// "absent" from zero so file values only override what they set.
type File struct {
	Style             *string  `yaml:"style"`
	Genre             *string  `yaml:"genre"`
	MaxClips          *int     `yaml:"max_clips"`
	DurationMinSec    *float64 `yaml:"duration_min_s"`
	DurationMaxSec    *float64 `yaml:"duration_max_s"`
	OverlapThreshold  *float64 `yaml:"overlap_threshold"`
	MinDistanceSec    *float64 `yaml:"min_distance_s"`
	IncludeMomentText *string  `yaml:"include_moment_text"`
	TimeframeStartSec *float64 `yaml:"timeframe_start_s"`
	TimeframeEndSec   *float64 `yaml:"timeframe_end_s"`
	MaxCandidates     *int     `yaml:"max_candidates"`
	BlockMinSec       *float64 `yaml:"block_min_s"`
	BlockMaxSec       *float64 `yaml:"block_max_s"`
	BlockMaxGapSec    *float64 `yaml:"block_max_gap_s"`
	TokenBudget       *int     `yaml:"token_budget"`
}

// Load reads path and applies it on top of the defaults. An empty path
// returns the defaults untouched.
func Load(path string) (types.SelectionConfig, error) {
	cfg := types.DefaultSelectionConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	f.apply(&cfg)
	return cfg, nil
}

func (f File) apply(cfg *types.SelectionConfig) {
	if f.Style != nil {
		cfg.Style = types.Style(*f.Style)
	}
	if f.Genre != nil {
		cfg.Genre = types.Genre(*f.Genre)
	}
	if f.MaxClips != nil {
		cfg.MaxClips = *f.MaxClips
	}
	if f.DurationMinSec != nil {
		cfg.DurationMinSec = *f.DurationMinSec
	}
	if f.DurationMaxSec != nil {
		cfg.DurationMaxSec = *f.DurationMaxSec
	}
	if f.OverlapThreshold != nil {
		cfg.OverlapThreshold = *f.OverlapThreshold
	}
	if f.MinDistanceSec != nil {
		cfg.MinDistanceSec = *f.MinDistanceSec
	}
	if f.IncludeMomentText != nil {
		cfg.IncludeMomentText = *f.IncludeMomentText
	}
	if f.TimeframeStartSec != nil {
		cfg.TimeframeStartSec = f.TimeframeStartSec
	}
	if f.TimeframeEndSec != nil {
		cfg.TimeframeEndSec = f.TimeframeEndSec
	}
	if f.MaxCandidates != nil {
		cfg.MaxCandidates = *f.MaxCandidates
	}
	if f.BlockMinSec != nil {
		cfg.BlockMinSec = *f.BlockMinSec
	}
	if f.BlockMaxSec != nil {
		cfg.BlockMaxSec = *f.BlockMaxSec
	}
	if f.BlockMaxGapSec != nil {
		cfg.BlockMaxGapSec = *f.BlockMaxGapSec
	}
	if f.TokenBudget != nil {
		cfg.TokenBudget = *f.TokenBudget
	}
}
