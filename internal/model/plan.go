package model

import "threegp/internal/profile"

// Source describes the media the user wants converted. Width, Height and
// DurationSec are user supplied and 0 when unknown; nothing here is probed.
type Source struct {
	InputPath   string
	Width       int
	Height      int
	DurationSec float64
}

// Plan is the command an external pipeline would run for one source.
type Plan struct {
	InputPath      string
	OutputPath     string
	Output         profile.Dimension
	VideoEncoder   string
	AudioEncoder   string
	Args           []string
	EstimatedBytes int64 // 0 when the duration is unknown
}
