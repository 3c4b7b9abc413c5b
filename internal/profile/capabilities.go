package profile

// Video is the base contract every video format preset offers to an
// encoding pipeline.
type Video interface {
	KiloBitrate() int
	ExtraParams() string
	AvailableVideoCodecs() []string
	AvailableAudioCodecs() []string
	SupportBFrames() bool
}

// Resizable formats decide the output frame size from the source size.
type Resizable interface {
	ComputedDimensions(originalWidth, originalHeight int) Dimension
}

// Transcodable formats name the codecs the pipeline should encode with.
type Transcodable interface {
	VideoCodec() string
	AudioCodec() string
}

// Resamplable formats carry frame rate, keyframe interval and audio
// sample rate.
type Resamplable interface {
	FrameRate() int
	GOPSize() int
	AudioSampleRate() int
}
