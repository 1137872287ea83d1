package ports

import (
	"context"
	"time"
)

type VideoTool interface {
	ExtractAudioWAV(ctx context.Context, inVideo, outWav string) error
	CropClip(ctx context.Context, inVideo string, start, end time.Duration, outMP4 string) error
	ProbeDuration(ctx context.Context, inVideo string) (time.Duration, error)
}
