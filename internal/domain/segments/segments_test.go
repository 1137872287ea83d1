package segments

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/clipsmith/shortcut/internal/types"
)

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := map[string]time.Duration{
		"90":      90 * time.Second,
		"10.5":    10500 * time.Millisecond,
		"1:30":    90 * time.Second,
		"0:01:30": 90 * time.Second,
		"1:00:00": time.Hour,
		"0":       0,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			got, err := ParseTimestamp(in)
			if err != nil {
				t.Fatalf("ParseTimestamp(%q): %v", in, err)
			}
			if got != want {
				t.Fatalf("ParseTimestamp(%q) = %s, want %s", in, got, want)
			}
		})
	}

	for _, in := range []string{"", "x", "-5", "1:2:3:4", "1:x"} {
		t.Run("bad "+in, func(t *testing.T) {
			if _, err := ParseTimestamp(in); err == nil {
				t.Fatalf("ParseTimestamp(%q): expected error", in)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	got, err := Parse("10-20, 1:30-1:45")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []types.Segment{
		{Start: 10 * time.Second, End: 20 * time.Second},
		{Start: 90 * time.Second, End: 105 * time.Second},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d segments, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("segment %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	for _, in := range []string{"", "10", "10-x", "a-b"} {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q): expected error", in)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()

	yamlPath := filepath.Join(tmp, "segments.yaml")
	yamlBody := "- start: 10\n  end: 20\n- start: 30\n  end: 35.5\n"
	if err := os.WriteFile(yamlPath, []byte(yamlBody), 0o644); err != nil {
		t.Fatalf("write yaml fixture: %v", err)
	}

	jsonPath := filepath.Join(tmp, "segments.json")
	jsonBody := `[{"start": 10, "end": 20}, {"start": 30, "end": 35.5}]`
	if err := os.WriteFile(jsonPath, []byte(jsonBody), 0o644); err != nil {
		t.Fatalf("write json fixture: %v", err)
	}

	want := []types.Segment{
		{Start: 10 * time.Second, End: 20 * time.Second},
		{Start: 30 * time.Second, End: 35500 * time.Millisecond},
	}
	for _, path := range []string{yamlPath, jsonPath} {
		got, err := Load(path)
		if err != nil {
			t.Fatalf("load %s: %v", path, err)
		}
		if len(got) != len(want) {
			t.Fatalf("%s: expected %d segments, got %d", path, len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s: segment %d = %+v, want %+v", path, i, got[i], want[i])
			}
		}
	}
}

func TestLoad_Rejects(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()

	txtPath := filepath.Join(tmp, "segments.txt")
	if err := os.WriteFile(txtPath, []byte("10-20"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(txtPath); err == nil {
		t.Fatal("expected error for unsupported extension")
	}

	emptyPath := filepath.Join(tmp, "empty.yaml")
	if err := os.WriteFile(emptyPath, nil, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(emptyPath); err == nil {
		t.Fatal("expected error for empty segments file")
	}

	if _, err := Load(filepath.Join(tmp, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := []types.Segment{
		{Start: 10 * time.Second, End: 20 * time.Second},
		{Start: 30 * time.Second, End: 35 * time.Second},
	}
	if err := Validate(valid, 0); err != nil {
		t.Fatalf("valid segments, unknown duration: %v", err)
	}
	if err := Validate(valid, time.Minute); err != nil {
		t.Fatalf("valid segments within duration: %v", err)
	}

	cases := []struct {
		name string
		segs []types.Segment
		dur  time.Duration
	}{
		{name: "empty", segs: nil},
		{
			name: "end before start",
			segs: []types.Segment{{Start: 40 * time.Second, End: 30 * time.Second}},
		},
		{
			name: "zero length",
			segs: []types.Segment{{Start: 10 * time.Second, End: 10 * time.Second}},
		},
		{
			name: "negative start",
			segs: []types.Segment{{Start: -time.Second, End: 10 * time.Second}},
		},
		{
			name: "beyond video duration",
			segs: []types.Segment{{Start: 50 * time.Second, End: 70 * time.Second}},
			dur:  time.Minute,
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if err := Validate(tc.segs, tc.dur); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
