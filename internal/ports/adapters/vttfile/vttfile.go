// Package vttfile reads WebVTT and SRT subtitle files as transcripts.
// Both formats reduce to the same cue shape; only the timestamp separator
// and headers differ.
package vttfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/clippick/clippick/internal/types"
)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (a *Adapter) Parse(r io.Reader) (types.Transcript, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var tr types.Transcript
	var cur *types.Segment
	var lines []string

	flush := func() {
		if cur == nil {
			return
		}
		cur.Text = strings.TrimSpace(strings.Join(lines, " "))
		tr.Segments = append(tr.Segments, *cur)
		cur = nil
		lines = nil
	}

	for sc.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\ufeff"))
		switch {
		case line == "":
			flush()
		case strings.Contains(line, "-->"):
			flush()
			start, end, err := parseCueTiming(line)
			if err != nil {
				return types.Transcript{}, err
			}
			cur = &types.Segment{Start: start, End: end}
		case cur != nil:
			lines = append(lines, line)
		default:
			// header, NOTE block, or cue index; nothing to keep
		}
	}
	flush()
	if err := sc.Err(); err != nil {
		return types.Transcript{}, fmt.Errorf("scan subtitles: %w", err)
	}
	return tr, nil
}

func parseCueTiming(line string) (float64, float64, error) {
	parts := strings.SplitN(line, "-->", 2)
	start, err := parseTimestamp(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("cue start %q: %w", line, err)
	}
	// WebVTT allows cue settings after the end timestamp.
	endField := strings.Fields(strings.TrimSpace(parts[1]))
	if len(endField) == 0 {
		return 0, 0, fmt.Errorf("cue %q: missing end timestamp", line)
	}
	end, err := parseTimestamp(endField[0])
	if err != nil {
		return 0, 0, fmt.Errorf("cue end %q: %w", line, err)
	}
	return start, end, nil
}

// parseTimestamp accepts HH:MM:SS.mmm, MM:SS.mmm, and the SRT comma
// variant of either.
func parseTimestamp(ts string) (float64, error) {
	ts = strings.ReplaceAll(ts, ",", ".")
	parts := strings.Split(ts, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("malformed timestamp %q", ts)
	}
	var total float64
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed timestamp %q", ts)
		}
		total = total*60 + v
	}
	return total, nil
}
