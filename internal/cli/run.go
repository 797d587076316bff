package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/clippick/clippick/internal/config"
	"github.com/clippick/clippick/internal/pipeline"
	"github.com/clippick/clippick/internal/types"
)

func run(cmd *cobra.Command, input string) error {
	outDir, _ := cmd.Flags().GetString("out")
	configPath, _ := cmd.Flags().GetString("config")

	sel, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, &sel)

	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}

	writeSRT, _ := cmd.Flags().GetBool("srt")
	cfg := pipeline.Config{
		InputPath:      absIn,
		OutDir:         outDir,
		Selection:      sel,
		WriteSubtitles: writeSRT,
		Logf: func(format string, args ...any) {
			cmd.Printf(format+"\n", args...)
		},
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return pipeline.Run(cfg)
}

// applyFlags lets explicit flags win over the config file. Sentinel values
// (zero, empty, negative) mean "not set".
func applyFlags(cmd *cobra.Command, sel *types.SelectionConfig) {
	if v, _ := cmd.Flags().GetInt("clips"); v > 0 {
		sel.MaxClips = v
	}
	if v, _ := cmd.Flags().GetString("style"); v != "" {
		sel.Style = types.Style(v)
	}
	if v, _ := cmd.Flags().GetString("genre"); v != "" {
		sel.Genre = types.Genre(v)
	}
	if v, _ := cmd.Flags().GetFloat64("min"); v > 0 {
		sel.DurationMinSec = v
	}
	if v, _ := cmd.Flags().GetFloat64("max"); v > 0 {
		sel.DurationMaxSec = v
	}
	if v, _ := cmd.Flags().GetFloat64("from"); v >= 0 {
		sel.TimeframeStartSec = &v
	}
	if v, _ := cmd.Flags().GetFloat64("to"); v >= 0 {
		sel.TimeframeEndSec = &v
	}
	if v, _ := cmd.Flags().GetString("moment"); v != "" {
		sel.IncludeMomentText = v
	}
	if v, _ := cmd.Flags().GetInt("max-candidates"); v > 0 {
		sel.MaxCandidates = v
	}
	if v, _ := cmd.Flags().GetFloat64("overlap"); v >= 0 {
		sel.OverlapThreshold = v
	}
	if v, _ := cmd.Flags().GetFloat64("distance"); v >= 0 {
		sel.MinDistanceSec = v
	}
}
