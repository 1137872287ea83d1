package types

import "time"

// Segment is a sub-range of the source video, 0 <= Start < End.
type Segment struct {
	Start time.Duration
	End   time.Duration
}

func (s Segment) Duration() time.Duration { return s.End - s.Start }

type Manifest struct {
	Input  string          `json:"input"`
	Shorts []ManifestShort `json:"shorts"`
}

type ManifestShort struct {
	ID       int     `json:"id"`
	StartSec float64 `json:"start_sec"`
	EndSec   float64 `json:"end_sec"`
	File     string  `json:"file"`
}
