package profile

// Snapshot is a read-only copy of a preset, shaped for serialization.
type Snapshot struct {
	Format               string   `yaml:"format" json:"format"`
	Width                int      `yaml:"width" json:"width"`
	Height               int      `yaml:"height" json:"height"`
	KiloBitrate          int      `yaml:"kilo_bitrate" json:"kilo_bitrate"`
	AudioSampleRate      int      `yaml:"audio_sample_rate" json:"audio_sample_rate"`
	FrameRate            int      `yaml:"frame_rate" json:"frame_rate"`
	VideoCodec           string   `yaml:"video_codec" json:"video_codec"`
	AudioCodec           string   `yaml:"audio_codec" json:"audio_codec"`
	AvailableVideoCodecs []string `yaml:"available_video_codecs" json:"available_video_codecs"`
	AvailableAudioCodecs []string `yaml:"available_audio_codecs" json:"available_audio_codecs"`
	ExtraParams          string   `yaml:"extra_params" json:"extra_params"`
	GOPSize              int      `yaml:"gop_size" json:"gop_size"`
	SupportBFrames       bool     `yaml:"support_b_frames" json:"support_b_frames"`
}

// Snapshot copies the current field values and derived values.
func (p *ThreeGP) Snapshot() Snapshot {
	return Snapshot{
		Format:               "3gp",
		Width:                p.Width(),
		Height:               p.Height(),
		KiloBitrate:          p.KiloBitrate(),
		AudioSampleRate:      p.AudioSampleRate(),
		FrameRate:            p.FrameRate(),
		VideoCodec:           p.VideoCodec(),
		AudioCodec:           p.AudioCodec(),
		AvailableVideoCodecs: p.AvailableVideoCodecs(),
		AvailableAudioCodecs: p.AvailableAudioCodecs(),
		ExtraParams:          p.ExtraParams(),
		GOPSize:              p.GOPSize(),
		SupportBFrames:       p.SupportBFrames(),
	}
}
