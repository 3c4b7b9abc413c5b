package profile

import (
	"errors"
	"fmt"
	"slices"
)

// Defaults for the 3GP preset (QCIF, H.263, AAC at 8 kHz).
const (
	DefaultWidth           = 176
	DefaultHeight          = 144
	DefaultKiloBitrate     = 240
	DefaultAudioSampleRate = 8000
	DefaultVideoCodec      = "h263"
	DefaultAudioCodec      = "aac"
	DefaultFrameRate       = 12
)

// threeGPExtraParams forces the 3gp muxer. Pipelines append it verbatim.
const threeGPExtraParams = "-f 3gp"

var (
	threeGPVideoCodecs = []string{"h263", "h264"}
	threeGPAudioCodecs = []string{"aac", "amr"}
)

// Compile-time checks for the capability contracts.
var (
	_ Video        = (*ThreeGP)(nil)
	_ Resizable    = (*ThreeGP)(nil)
	_ Transcodable = (*ThreeGP)(nil)
	_ Resamplable  = (*ThreeGP)(nil)
)

// ThreeGP is the encoding preset for 3G mobile phones (.3gp/.3g2).
//
// Setters mutate the receiver and return it so calls can be chained. A
// ThreeGP is not safe for concurrent mutation; build one per use.
type ThreeGP struct {
	width           int
	height          int
	kiloBitrate     int
	audioSampleRate int
	videoCodec      string
	audioCodec      string
	frameRate       int
}

// NewThreeGP returns a preset populated with the 3GP defaults.
func NewThreeGP() *ThreeGP {
	return &ThreeGP{
		width:           DefaultWidth,
		height:          DefaultHeight,
		kiloBitrate:     DefaultKiloBitrate,
		audioSampleRate: DefaultAudioSampleRate,
		videoCodec:      DefaultVideoCodec,
		audioCodec:      DefaultAudioCodec,
		frameRate:       DefaultFrameRate,
	}
}

func (p *ThreeGP) Width() int { return p.width }

// SetWidth overwrites the output width. No bounds checking is done.
func (p *ThreeGP) SetWidth(width int) *ThreeGP {
	p.width = width
	return p
}

func (p *ThreeGP) Height() int { return p.height }

// SetHeight overwrites the output height. No bounds checking is done.
func (p *ThreeGP) SetHeight(height int) *ThreeGP {
	p.height = height
	return p
}

// KiloBitrate is the video bitrate in kbps.
func (p *ThreeGP) KiloBitrate() int { return p.kiloBitrate }

func (p *ThreeGP) SetKiloBitrate(kiloBitrate int) *ThreeGP {
	p.kiloBitrate = kiloBitrate
	return p
}

// AudioSampleRate is in Hz.
func (p *ThreeGP) AudioSampleRate() int { return p.audioSampleRate }

func (p *ThreeGP) SetAudioSampleRate(rate int) *ThreeGP {
	p.audioSampleRate = rate
	return p
}

func (p *ThreeGP) FrameRate() int { return p.frameRate }

func (p *ThreeGP) SetFrameRate(frameRate int) *ThreeGP {
	p.frameRate = frameRate
	return p
}

func (p *ThreeGP) VideoCodec() string { return p.videoCodec }

// SetVideoCodec switches the video codec when codec is one of
// AvailableVideoCodecs. Any other value is ignored and the current codec kept.
func (p *ThreeGP) SetVideoCodec(codec string) *ThreeGP {
	if slices.Contains(p.AvailableVideoCodecs(), codec) {
		p.videoCodec = codec
	}
	return p
}

func (p *ThreeGP) AudioCodec() string { return p.audioCodec }

// SetAudioCodec only accepts the codec that is already set: membership is
// checked against the current audio codec, not AvailableAudioCodecs. Every
// other value, including "amr", is ignored.
func (p *ThreeGP) SetAudioCodec(codec string) *ThreeGP {
	if slices.Contains([]string{p.AudioCodec()}, codec) {
		p.audioCodec = codec
	}
	return p
}

// AvailableVideoCodecs returns a fresh copy of the allowed video codecs.
func (p *ThreeGP) AvailableVideoCodecs() []string {
	return slices.Clone(threeGPVideoCodecs)
}

// AvailableAudioCodecs returns a fresh copy of the audio codecs 3GP carries.
func (p *ThreeGP) AvailableAudioCodecs() []string {
	return slices.Clone(threeGPAudioCodecs)
}

func (p *ThreeGP) ExtraParams() string { return threeGPExtraParams }

// ComputedDimensions always yields the configured size. The source size is
// ignored: 3GP output is fixed-size, not proportionally scaled.
func (p *ThreeGP) ComputedDimensions(originalWidth, originalHeight int) Dimension {
	return Dimension{Width: p.width, Height: p.height}
}

// GOPSize is 0, leaving the keyframe interval to the encoder.
func (p *ThreeGP) GOPSize() int { return 0 }

func (p *ThreeGP) SupportBFrames() bool { return false }

// Validate reports every numeric field that is not positive. The setters
// never call it; it is up to the caller to decide what to do with a preset
// that fails.
func (p *ThreeGP) Validate() error {
	var errs []error
	check := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	check("width", p.width)
	check("height", p.height)
	check("kilo bitrate", p.kiloBitrate)
	check("audio sample rate", p.audioSampleRate)
	check("frame rate", p.frameRate)
	return errors.Join(errs...)
}
