package bitrate

import "testing"

func TestEstimateBytes(t *testing.T) {
	tests := []struct {
		name        string
		kbps        int
		durationSec float64
		want        int64
	}{
		{name: "3gp default for one minute", kbps: 240, durationSec: 60, want: 1_800_000},
		{name: "fractional duration", kbps: 128, durationSec: 1.5, want: 24_000},
		{name: "zero duration", kbps: 240, durationSec: 0, want: 0},
		{name: "negative duration", kbps: 240, durationSec: -1, want: 0},
		{name: "zero bitrate", kbps: 0, durationSec: 60, want: 0},
		{name: "negative bitrate", kbps: -10, durationSec: 60, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateBytes(tt.kbps, tt.durationSec)
			if got != tt.want {
				t.Errorf("EstimateBytes(%d, %v) = %v, want %v", tt.kbps, tt.durationSec, got, tt.want)
			}
		})
	}
}
