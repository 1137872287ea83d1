package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/clipsmith/shortcut/internal/domain/segments"
	"github.com/clipsmith/shortcut/internal/ports"
	"github.com/clipsmith/shortcut/internal/types"
)

const audioFileName = "audio.wav"

type Deps struct {
	Video ports.VideoTool
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type ExtractAudioInput struct {
	InputVideo string
	TempDir    string
	Logf       func(format string, args ...any)
}

// ExtractAudio writes the audio track of InputVideo to <TempDir>/audio.wav
// and returns the written path. A source without an audio track surfaces as
// ffmpeg.ErrNoAudioStream via errors.Is.
func (u Usecase) ExtractAudio(ctx context.Context, in ExtractAudioInput) (string, error) {
	logf := logfOrNop(in.Logf)
	if err := os.MkdirAll(in.TempDir, 0o755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	wav := filepath.Join(in.TempDir, audioFileName)
	if err := u.d.Video.ExtractAudioWAV(ctx, in.InputVideo, wav); err != nil {
		return "", err
	}
	logf("extracted audio: %s", wav)
	return wav, nil
}

// CropClip cuts the [start, end) sub-range of InputVideo to outPath.
func (u Usecase) CropClip(ctx context.Context, inputVideo, outPath string, start, end time.Duration) error {
	if err := segments.Validate([]types.Segment{{Start: start, End: end}}, 0); err != nil {
		return err
	}
	return u.d.Video.CropClip(ctx, inputVideo, start, end, outPath)
}

type BatchInput struct {
	InputVideo string
	Segments   []types.Segment
	OutDir     string
	TempDir    string
	Logf       func(format string, args ...any)
}

type BatchResult struct {
	Paths    []string
	Manifest types.Manifest
}

// GenerateShorts crops one Short_<n>.mp4 per segment into OutDir, in input
// order. Segments are validated against the probed video duration before any
// clip is written. The temp dir is removed when the batch returns, on the
// failure path too; a failed crop aborts the batch and leaves the clips
// written so far on disk.
func (u Usecase) GenerateShorts(ctx context.Context, in BatchInput) (BatchResult, error) {
	logf := logfOrNop(in.Logf)

	if err := os.MkdirAll(in.OutDir, 0o755); err != nil {
		return BatchResult{}, fmt.Errorf("create output dir: %w", err)
	}
	if err := os.MkdirAll(in.TempDir, 0o755); err != nil {
		return BatchResult{}, fmt.Errorf("create temp dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(in.TempDir); err != nil {
			logf("remove temp dir %s: %v", in.TempDir, err)
		}
	}()

	dur, err := u.d.Video.ProbeDuration(ctx, in.InputVideo)
	if err != nil {
		return BatchResult{}, err
	}
	if err := segments.Validate(in.Segments, dur); err != nil {
		return BatchResult{}, err
	}

	res := BatchResult{Manifest: types.Manifest{Input: in.InputVideo}}
	for i, seg := range in.Segments {
		n := i + 1
		outPath := filepath.Join(in.OutDir, fmt.Sprintf("Short_%d.mp4", n))
		logf("creating short %d/%d: %s (%s - %s)", n, len(in.Segments), outPath, seg.Start, seg.End)
		if err := u.d.Video.CropClip(ctx, in.InputVideo, seg.Start, seg.End, outPath); err != nil {
			return BatchResult{}, fmt.Errorf("short %d: %w", n, err)
		}
		res.Paths = append(res.Paths, outPath)
		res.Manifest.Shorts = append(res.Manifest.Shorts, types.ManifestShort{
			ID:       n,
			StartSec: seg.Start.Seconds(),
			EndSec:   seg.End.Seconds(),
			File:     filepath.ToSlash(filepath.Base(outPath)),
		})
	}
	return res, nil
}

func logfOrNop(f func(string, ...any)) func(string, ...any) {
	if f == nil {
		return func(string, ...any) {}
	}
	return f
}
