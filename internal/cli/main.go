package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "clippick <transcript>",
		Short:        "Pick short-form clip candidates from a transcript file (.json, .vtt, .srt)",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	// Visible flags
	root.Flags().String("out", "out", "Output directory")
	root.Flags().String("config", "", "Selection config YAML file")
	root.Flags().Int("clips", 0, "Number of clips (overrides config)")
	root.Flags().String("style", "", "Clip style: hooky, balanced, educational, story")
	root.Flags().String("genre", "", "Genre: tutorial, podcast, demo, interview, talking_head, other")
	root.Flags().Float64("min", 0, "Min clip duration seconds")
	root.Flags().Float64("max", 0, "Max clip duration seconds")
	root.Flags().Float64("from", -1, "Only consider the transcript from this second")
	root.Flags().Float64("to", -1, "Only consider the transcript up to this second")
	root.Flags().String("moment", "", "Boost candidates matching this phrase")
	root.Flags().Bool("srt", false, "Write per-clip SRT excerpts")

	// Hidden tuning flags (internal)
	root.Flags().Int("max-candidates", 0, "Candidate cap")
	root.Flags().Float64("overlap", -1, "Diversity overlap threshold")
	root.Flags().Float64("distance", -1, "Minimum seconds between clip starts")
	_ = root.Flags().MarkHidden("max-candidates")
	_ = root.Flags().MarkHidden("overlap")
	_ = root.Flags().MarkHidden("distance")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
