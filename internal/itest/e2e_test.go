//go:build integration

package itest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/clippick/clippick/internal/types"
)

func TestE2E_SelectsClipsFromTranscript(t *testing.T) {
	repoRoot := mustRepoRoot(t)
	sample := filepath.Join(repoRoot, "internal", "itest", "testdata", "podcast_short.json")
	outDir := filepath.Join(t.TempDir(), "out")

	res := runCLI(t, repoRoot, []string{
		sample,
		"--out", outDir,
		"--clips", "3",
		"--min", "10",
		"--max", "25",
		"--distance", "10",
		"--srt",
	}, nil)
	if res.exitCode != 0 {
		t.Fatalf("expected success, exit %d\noutput:\n%s", res.exitCode, res.output)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("read out dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 run dir, got %d", len(entries))
	}
	runDir := filepath.Join(outDir, entries[0].Name())

	b, err := os.ReadFile(filepath.Join(runDir, "manifest.json"))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var m types.Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal manifest: %v", err)
	}
	if len(m.Clips) == 0 || len(m.Clips) > 3 {
		t.Fatalf("expected 1..3 clips, got %d", len(m.Clips))
	}
	for i, c := range m.Clips {
		if c.ScoreTotal < 0 || c.ScoreTotal > 100 {
			t.Fatalf("clip %d score out of bounds: %v", i, c.ScoreTotal)
		}
		if c.TextExcerpt == "" {
			t.Fatalf("clip %d has empty excerpt", i)
		}
		if c.Subtitles == "" {
			t.Fatalf("clip %d missing subtitles path", i)
		}
		if _, err := os.Stat(filepath.Join(runDir, filepath.FromSlash(c.Subtitles))); err != nil {
			t.Fatalf("clip %d subtitles missing on disk: %v", i, err)
		}
	}
}

func TestE2E_DeterministicAcrossRuns(t *testing.T) {
	repoRoot := mustRepoRoot(t)
	sample := filepath.Join(repoRoot, "internal", "itest", "testdata", "podcast_short.json")

	read := func(outDir string) []types.ManifestClip {
		t.Helper()
		entries, err := os.ReadDir(outDir)
		if err != nil || len(entries) != 1 {
			t.Fatalf("read out dir %s: %v (%d entries)", outDir, err, len(entries))
		}
		b, err := os.ReadFile(filepath.Join(outDir, entries[0].Name(), "manifest.json"))
		if err != nil {
			t.Fatalf("read manifest: %v", err)
		}
		var m types.Manifest
		if err := json.Unmarshal(b, &m); err != nil {
			t.Fatalf("unmarshal manifest: %v", err)
		}
		return m.Clips
	}

	out1 := filepath.Join(t.TempDir(), "out")
	out2 := filepath.Join(t.TempDir(), "out")
	for _, outDir := range []string{out1, out2} {
		res := runCLI(t, repoRoot, []string{sample, "--out", outDir, "--min", "10", "--max", "25"}, nil)
		if res.exitCode != 0 {
			t.Fatalf("expected success, exit %d\noutput:\n%s", res.exitCode, res.output)
		}
	}

	first, second := read(out1), read(out2)
	if len(first) != len(second) {
		t.Fatalf("clip counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || first[i].ScoreTotal != second[i].ScoreTotal {
			t.Fatalf("clip %d differs across runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
