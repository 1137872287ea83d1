package pipeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/clipsmith/shortcut/internal/types"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "in.mp4")
	if err := os.WriteFile(p, []byte("not really mp4"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return p
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	in := writeFixture(t)
	valid := Config{
		InputVideo: in,
		Segments: []types.Segment{
			{Start: 10 * time.Second, End: 20 * time.Second},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config: %v", err)
	}

	cases := []struct {
		name string
		cfg  Config
	}{
		{name: "empty input", cfg: Config{Segments: valid.Segments}},
		{name: "missing input", cfg: Config{InputVideo: in + ".nope", Segments: valid.Segments}},
		{name: "no segments", cfg: Config{InputVideo: in}},
		{
			name: "end before start",
			cfg: Config{
				InputVideo: in,
				Segments:   []types.Segment{{Start: 40 * time.Second, End: 30 * time.Second}},
			},
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if err := tc.cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestAudioConfigValidate(t *testing.T) {
	t.Parallel()

	in := writeFixture(t)
	if err := (AudioConfig{InputVideo: in}).Validate(); err != nil {
		t.Fatalf("valid config: %v", err)
	}
	if err := (AudioConfig{}).Validate(); err == nil {
		t.Fatal("expected error for empty input")
	}
	if err := (AudioConfig{InputVideo: in + ".nope"}).Validate(); err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestClipConfigValidate(t *testing.T) {
	t.Parallel()

	in := writeFixture(t)
	valid := ClipConfig{
		InputVideo: in,
		OutPath:    "clip.mp4",
		Start:      10 * time.Second,
		End:        20 * time.Second,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config: %v", err)
	}

	noOut := valid
	noOut.OutPath = ""
	if err := noOut.Validate(); err == nil {
		t.Fatal("expected error for empty output path")
	}

	backwards := valid
	backwards.Start, backwards.End = backwards.End, backwards.Start
	if err := backwards.Validate(); err == nil {
		t.Fatal("expected error for end before start")
	}
}
