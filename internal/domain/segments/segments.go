package segments

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/clipsmith/shortcut/internal/types"
	"gopkg.in/yaml.v3"
)

// Parse parses a comma-separated list of ranges, e.g. "10-20,1:30-1:45".
// Each side of a range is raw seconds, M:SS, or H:MM:SS.
func Parse(s string) ([]types.Segment, error) {
	var out []types.Segment
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		seg, err := parseRange(part)
		if err != nil {
			return nil, err
		}
		out = append(out, seg)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no segments in %q", s)
	}
	return out, nil
}

func parseRange(s string) (types.Segment, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return types.Segment{}, fmt.Errorf("segment %q: want START-END", s)
	}
	start, err := ParseTimestamp(strings.TrimSpace(lo))
	if err != nil {
		return types.Segment{}, fmt.Errorf("segment %q: %w", s, err)
	}
	end, err := ParseTimestamp(strings.TrimSpace(hi))
	if err != nil {
		return types.Segment{}, fmt.Errorf("segment %q: %w", s, err)
	}
	return types.Segment{Start: start, End: end}, nil
}

// ParseTimestamp accepts H:MM:SS, M:SS, or raw seconds. Colon count picks
// the format.
func ParseTimestamp(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		sec, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("bad timestamp %q", s)
		}
		if sec < 0 {
			return 0, fmt.Errorf("negative timestamp %q", s)
		}
		return time.Duration(sec * float64(time.Second)), nil
	case 2, 3:
		total := 0.0
		for _, p := range parts {
			v, err := strconv.ParseFloat(p, 64)
			if err != nil || v < 0 {
				return 0, fmt.Errorf("bad timestamp %q", s)
			}
			total = total*60 + v
		}
		return time.Duration(total * float64(time.Second)), nil
	default:
		return 0, fmt.Errorf("bad timestamp %q", s)
	}
}

type fileSegment struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

// Load reads a segments file. The extension picks the codec: .yaml/.yml or
// .json. Times are seconds.
func Load(path string) ([]types.Segment, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read segments file: %w", err)
	}

	var raw []fileSegment
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("segments file %s: unsupported extension %q", path, ext)
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("segments file %s is empty", path)
	}
	out := make([]types.Segment, 0, len(raw))
	for _, fs := range raw {
		out = append(out, types.Segment{
			Start: time.Duration(fs.Start * float64(time.Second)),
			End:   time.Duration(fs.End * float64(time.Second)),
		})
	}
	return out, nil
}

// Validate rejects malformed segments up front. Passing videoDuration > 0
// additionally bounds every segment by the source length; pass 0 when the
// duration is unknown.
func Validate(segs []types.Segment, videoDuration time.Duration) error {
	if len(segs) == 0 {
		return fmt.Errorf("no segments")
	}
	for i, s := range segs {
		n := i + 1
		if s.Start < 0 {
			return fmt.Errorf("segment %d: negative start %s", n, s.Start)
		}
		if s.End <= s.Start {
			return fmt.Errorf("segment %d: end %s is not after start %s", n, s.End, s.Start)
		}
		if videoDuration > 0 && s.End > videoDuration {
			return fmt.Errorf("segment %d: end %s exceeds video duration %s", n, s.End, videoDuration)
		}
	}
	return nil
}
