package encoder

import (
	"threegp/internal/model"
	"threegp/internal/util/bitrate"
)

// NewPlan bundles the argument vector with the values a caller usually
// wants to show next to it.
func NewPlan(src model.Source, f Format, outputPath string) model.Plan {
	return model.Plan{
		InputPath:      src.InputPath,
		OutputPath:     outputPath,
		Output:         f.ComputedDimensions(src.Width, src.Height),
		VideoEncoder:   EncoderName(f.VideoCodec()),
		AudioEncoder:   EncoderName(f.AudioCodec()),
		Args:           BuildArgs(src, f, outputPath),
		EstimatedBytes: bitrate.EstimateBytes(f.KiloBitrate(), src.DurationSec),
	}
}
