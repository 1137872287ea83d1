package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/clipsmith/shortcut/internal/domain/segments"
	"github.com/clipsmith/shortcut/internal/ports"
	"github.com/clipsmith/shortcut/internal/ports/adapters/ffmpeg"
	"github.com/clipsmith/shortcut/internal/types"
	"github.com/clipsmith/shortcut/internal/usecase"
)

const manifestFileName = "manifest.json"

type Config struct {
	InputVideo string
	Segments   []types.Segment

	// OutDir defaults to "shorts", TempDir to "temp".
	OutDir  string
	TempDir string

	Logf func(format string, args ...any)

	FFmpegPath  string
	FFprobePath string
}

func (c Config) Validate() error {
	if c.InputVideo == "" {
		return errors.New("input is empty")
	}
	if _, err := os.Stat(c.InputVideo); err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	// Bounds against the real video duration are checked later, once probed.
	return segments.Validate(c.Segments, 0)
}

// Run generates one short per segment and writes a manifest.json next to
// them. Returned paths are in segment order.
func Run(ctx context.Context, cfg Config) ([]string, error) {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "shorts"
	}
	tempDir := cfg.TempDir
	if tempDir == "" {
		tempDir = "temp"
	}

	uc := usecase.New(usecase.Deps{
		Video: ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath),
	})

	res, err := uc.GenerateShorts(ctx, usecase.BatchInput{
		InputVideo: cfg.InputVideo,
		Segments:   cfg.Segments,
		OutDir:     outDir,
		TempDir:    tempDir,
		Logf:       logf,
	})
	if err != nil {
		return nil, err
	}

	b, err := json.MarshalIndent(res.Manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	manifestPath := filepath.Join(outDir, manifestFileName)
	if err := os.WriteFile(manifestPath, b, 0o644); err != nil {
		return nil, err
	}
	logf("manifest written (%d shorts): %s", len(res.Manifest.Shorts), manifestPath)
	return res.Paths, nil
}

type AudioConfig struct {
	InputVideo string

	// TempDir defaults to "temp". The extracted audio.wav stays there.
	TempDir string

	Logf func(format string, args ...any)

	FFmpegPath  string
	FFprobePath string
}

func (c AudioConfig) Validate() error {
	if c.InputVideo == "" {
		return errors.New("input is empty")
	}
	if _, err := os.Stat(c.InputVideo); err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	return nil
}

// ExtractAudio writes the input's audio track to <temp>/audio.wav and
// returns the path.
func ExtractAudio(ctx context.Context, cfg AudioConfig) (string, error) {
	tempDir := cfg.TempDir
	if tempDir == "" {
		tempDir = "temp"
	}
	uc := usecase.New(usecase.Deps{
		Video: ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath),
	})
	return uc.ExtractAudio(ctx, usecase.ExtractAudioInput{
		InputVideo: cfg.InputVideo,
		TempDir:    tempDir,
		Logf:       cfg.Logf,
	})
}

type ClipConfig struct {
	InputVideo string
	OutPath    string
	Start      time.Duration
	End        time.Duration

	Logf func(format string, args ...any)

	FFmpegPath  string
	FFprobePath string
}

func (c ClipConfig) Validate() error {
	if c.InputVideo == "" {
		return errors.New("input is empty")
	}
	if _, err := os.Stat(c.InputVideo); err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if c.OutPath == "" {
		return errors.New("output path is empty")
	}
	return segments.Validate([]types.Segment{{Start: c.Start, End: c.End}}, 0)
}

// CropClip cuts a single [start, end) clip to cfg.OutPath.
func CropClip(ctx context.Context, cfg ClipConfig) error {
	uc := usecase.New(usecase.Deps{
		Video: ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath),
	})
	if err := uc.CropClip(ctx, cfg.InputVideo, cfg.OutPath, cfg.Start, cfg.End); err != nil {
		return err
	}
	if cfg.Logf != nil {
		cfg.Logf("wrote clip: %s", cfg.OutPath)
	}
	return nil
}

// ensure the adapter implements the port
var _ ports.VideoTool = (*ffmpeg.Adapter)(nil)
