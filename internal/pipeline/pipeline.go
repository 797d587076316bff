// Package pipeline is the file-facing runner around the pure engine: it
// loads a transcript, runs selection, and writes a manifest (plus optional
// per-clip SRT excerpts) into a per-run output directory.
package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/clippick/clippick/internal/domain/subtitles"
	"github.com/clippick/clippick/internal/ports"
	"github.com/clippick/clippick/internal/ports/adapters/vttfile"
	"github.com/clippick/clippick/internal/ports/adapters/whisperjson"
	"github.com/clippick/clippick/internal/types"
	"github.com/clippick/clippick/internal/usecase"
)

type Config struct {
	InputPath string
	OutDir    string
	Selection types.SelectionConfig

	// WriteSubtitles emits one SRT excerpt per selected clip.
	WriteSubtitles bool

	Logf func(format string, args ...any)
}

var validStyles = map[types.Style]struct{}{
	types.StyleHooky:       {},
	types.StyleBalanced:    {},
	types.StyleEducational: {},
	types.StyleStory:       {},
}

var validGenres = map[types.Genre]struct{}{
	types.GenreTutorial:    {},
	types.GenrePodcast:     {},
	types.GenreDemo:        {},
	types.GenreInterview:   {},
	types.GenreTalkingHead: {},
	types.GenreOther:       {},
}

// Validate guards the engine from nonsense config. The engine itself never
// validates; this layer is the collaborator that must.
func (c Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("input is empty")
	}
	if _, err := os.Stat(c.InputPath); err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	s := c.Selection
	if s.MaxClips <= 0 {
		return fmt.Errorf("clips must be > 0")
	}
	if s.DurationMinSec <= 0 {
		return fmt.Errorf("min duration must be > 0")
	}
	if s.DurationMinSec > s.DurationMaxSec {
		return fmt.Errorf("min duration must be <= max duration")
	}
	if s.MaxCandidates <= 0 {
		return fmt.Errorf("max candidates must be > 0")
	}
	if s.OverlapThreshold < 0 || s.OverlapThreshold > 1 {
		return fmt.Errorf("overlap threshold must be within [0, 1]")
	}
	if _, ok := validStyles[s.Style]; !ok {
		return fmt.Errorf("unknown style %q", s.Style)
	}
	if _, ok := validGenres[s.Genre]; !ok {
		return fmt.Errorf("unknown genre %q", s.Genre)
	}
	if s.TimeframeStartSec != nil && s.TimeframeEndSec != nil && *s.TimeframeStartSec >= *s.TimeframeEndSec {
		return fmt.Errorf("timeframe start must be < timeframe end")
	}
	return nil
}

func Run(cfg Config) error {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	src, err := sourceFor(cfg.InputPath)
	if err != nil {
		return err
	}
	tr, err := loadTranscript(src, cfg.InputPath)
	if err != nil {
		return err
	}
	logf("transcript: %d segments", len(tr.Segments))

	res := usecase.Run(tr.Segments, cfg.Selection)
	logf("normalized %d blocks, generated %d candidates, selected %d clips",
		res.BlockCount, res.CandidateCount, len(res.Clips))

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "out"
	}
	runOutDir := buildRunOutDir(outDir, cfg.InputPath, time.Now().UTC())
	if err := os.MkdirAll(runOutDir, 0o755); err != nil {
		return err
	}
	if cfg.WriteSubtitles {
		if err := os.MkdirAll(filepath.Join(runOutDir, "subtitles"), 0o755); err != nil {
			return err
		}
	}
	logf("output run dir: %s", runOutDir)

	m := types.Manifest{
		Input: cfg.InputPath,
		Style: cfg.Selection.Style,
		Genre: cfg.Selection.Genre,
	}
	for i, clip := range res.Clips {
		mc := types.ManifestClip{
			DisplayID:    fmt.Sprintf("%03d", i+1),
			SelectedClip: clip,
		}
		if cfg.WriteSubtitles {
			srt := subtitles.RenderClipSRT(tr, clip.StartSec, clip.EndSec)
			if srt != "" {
				rel := filepath.Join("subtitles", mc.DisplayID+".srt")
				if err := os.WriteFile(filepath.Join(runOutDir, rel), []byte(srt), 0o644); err != nil {
					return err
				}
				mc.Subtitles = filepath.ToSlash(rel)
			}
		}
		m.Clips = append(m.Clips, mc)
	}

	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	manifestPath := filepath.Join(runOutDir, "manifest.json")
	if err := os.WriteFile(manifestPath, b, 0o644); err != nil {
		return err
	}
	logf("manifest written (%d clips): %s", len(m.Clips), manifestPath)
	return nil
}

// sourceFor picks a transcript adapter by file extension.
func sourceFor(path string) (ports.TranscriptSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return whisperjson.New(), nil
	case ".vtt", ".srt":
		return vttfile.New(), nil
	default:
		return nil, fmt.Errorf("unsupported transcript format %q (want .json, .vtt, or .srt)", filepath.Ext(path))
	}
}

func loadTranscript(src ports.TranscriptSource, path string) (types.Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Transcript{}, err
	}
	defer f.Close()
	tr, err := src.Parse(f)
	if err != nil {
		return types.Transcript{}, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return tr, nil
}

func buildRunOutDir(outRoot, inputPath string, now time.Time) string {
	name := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	name = normalizePathSegment(name)
	if name == "" {
		name = "input"
	}
	ts := now.UTC().Format("20060102-150405Z")
	runSeed := fmt.Sprintf("%s|%d", inputPath, now.UTC().UnixNano())
	suffix := hash(runSeed)[:6]
	return filepath.Join(outRoot, fmt.Sprintf("%s-%s-%s", name, ts, suffix))
}

func normalizePathSegment(s string) string {
	var b strings.Builder
	prevDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

func hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:12]
}

// ensure adapters implement ports
var _ ports.TranscriptSource = (*whisperjson.Adapter)(nil)
var _ ports.TranscriptSource = (*vttfile.Adapter)(nil)
