package encoder

import (
	"fmt"
	"strconv"
	"strings"

	"threegp/internal/model"
	"threegp/internal/profile"
)

// Format is everything BuildArgs reads from a preset.
type Format interface {
	profile.Video
	profile.Resizable
	profile.Transcodable
	profile.Resamplable
}

// ffmpeg encoder names for the preset's codec identifiers.
var encoderNames = map[string]string{
	"h263": "h263",
	"h264": "libx264",
	"aac":  "aac",
	"amr":  "libopencore_amrnb",
}

// EncoderName maps a codec identifier to the ffmpeg encoder that produces it.
// Unknown identifiers are passed through unchanged.
func EncoderName(codec string) string {
	if name, ok := encoderNames[codec]; ok {
		return name
	}
	return codec
}

// BuildArgs constructs ffmpeg arguments that convert src into the given
// format. The output path is always the last argument.
func BuildArgs(src model.Source, f Format, outputPath string) []string {
	dim := f.ComputedDimensions(src.Width, src.Height)

	args := []string{
		"-y",
		"-i", src.InputPath,
		"-c:v", EncoderName(f.VideoCodec()),
		"-b:v", fmt.Sprintf("%dk", f.KiloBitrate()),
		"-s", dim.String(),
		"-r", strconv.Itoa(f.FrameRate()),
	}

	if gop := f.GOPSize(); gop > 0 {
		args = append(args, "-g", strconv.Itoa(gop))
	}
	if !f.SupportBFrames() {
		args = append(args, "-bf", "0")
	}

	args = append(args,
		"-c:a", EncoderName(f.AudioCodec()),
		"-ar", strconv.Itoa(f.AudioSampleRate()),
	)
	// AMR-NB is mono only.
	if f.AudioCodec() == "amr" {
		args = append(args, "-ac", "1")
	}

	args = append(args, strings.Fields(f.ExtraParams())...)
	args = append(args, outputPath)
	return args
}
