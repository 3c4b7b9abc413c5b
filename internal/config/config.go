package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"threegp/internal/dirs"
	"threegp/internal/profile"
)

// Viper keys. Flags use the same names with '-' instead of '_'.
const (
	KeyConfig          = "config"
	KeyVerbose         = "verbose"
	KeyLogFormat       = "log_format"
	KeyFFmpeg          = "ffmpeg"
	KeyWidth           = "width"
	KeyHeight          = "height"
	KeyKiloBitrate     = "kilo_bitrate"
	KeyAudioSampleRate = "audio_sample_rate"
	KeyFrameRate       = "frame_rate"
	KeyVideoCodec      = "video_codec"
	KeyAudioCodec      = "audio_codec"
)

// EnvPrefix is prepended to every key looked up in the environment.
const EnvPrefix = "THREEGP"

var boundKeys = []string{
	KeyVerbose, KeyLogFormat, KeyFFmpeg,
	KeyWidth, KeyHeight, KeyKiloBitrate, KeyAudioSampleRate, KeyFrameRate,
	KeyVideoCodec, KeyAudioCodec,
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// AddFlags registers the persistent flags Init binds. Profile flags default
// to the 3GP defaults so --help shows them; only flags the user changed
// override anything.
func AddFlags(fs *pflag.FlagSet) {
	fs.String(flagName(KeyConfig), "", "Config file (default: <config dir>/config.{yaml|json|toml})")
	fs.BoolP(flagName(KeyVerbose), "v", false, "Debug logging")
	fs.String(flagName(KeyLogFormat), "text", "Log format: text, json")
	fs.String(flagName(KeyFFmpeg), "", "ffmpeg binary to print in commands (default: looked up in PATH)")

	fs.Int(flagName(KeyWidth), profile.DefaultWidth, "Output width in px")
	fs.Int(flagName(KeyHeight), profile.DefaultHeight, "Output height in px")
	fs.Int(flagName(KeyKiloBitrate), profile.DefaultKiloBitrate, "Video bitrate in kbps")
	fs.Int(flagName(KeyAudioSampleRate), profile.DefaultAudioSampleRate, "Audio sample rate in Hz")
	fs.Int(flagName(KeyFrameRate), profile.DefaultFrameRate, "Frame rate in fps")
	fs.String(flagName(KeyVideoCodec), profile.DefaultVideoCodec, "Video codec: h263, h264")
	fs.String(flagName(KeyAudioCodec), profile.DefaultAudioCodec, "Audio codec: aac, amr")
}

// Init wires v with the config file, THREEGP_* environment variables and
// the flags registered by AddFlags. Precedence: flag > env > file > default.
// A missing default config file is not an error; an unreadable one is.
func Init(v *viper.Viper, fs *pflag.FlagSet) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range boundKeys {
		if f := fs.Lookup(flagName(key)); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", f.Name, err)
			}
		}
	}

	explicit := ""
	if f := fs.Lookup(flagName(KeyConfig)); f != nil {
		explicit = f.Value.String()
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		// A missing directory surfaces as ConfigFileNotFoundError below.
		if cfgDir, err := dirs.ConfigDir(); err == nil {
			v.AddConfigPath(cfgDir)
		}
		v.SetConfigName("config") // supports config.{yaml|yml|json|toml}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Profile builds the 3GP preset from defaults plus whatever v has set.
// Overrides go through the preset's setters, so an unavailable video codec
// or any audio codec change is ignored; both are logged as warnings. Numeric
// values from env or file that do not parse as integers are logged and the
// default kept.
func Profile(v *viper.Viper, log logrus.FieldLogger) *profile.ThreeGP {
	p := profile.NewThreeGP()

	numeric := []struct {
		key string
		set func(int) *profile.ThreeGP
	}{
		{KeyWidth, p.SetWidth},
		{KeyHeight, p.SetHeight},
		{KeyKiloBitrate, p.SetKiloBitrate},
		{KeyAudioSampleRate, p.SetAudioSampleRate},
		{KeyFrameRate, p.SetFrameRate},
	}
	for _, n := range numeric {
		if !v.IsSet(n.key) {
			continue
		}
		raw := v.Get(n.key)
		val, err := cast.ToIntE(raw)
		if err != nil {
			log.WithFields(logrus.Fields{
				"key":   n.key,
				"value": raw,
			}).WithError(err).Warn("ignoring non-integer profile value, keeping default")
			continue
		}
		n.set(val)
		log.WithFields(logrus.Fields{"key": n.key, "value": val}).Debug("profile override")
	}

	if v.IsSet(KeyVideoCodec) {
		want := v.GetString(KeyVideoCodec)
		if got := p.SetVideoCodec(want).VideoCodec(); got != want {
			log.WithFields(logrus.Fields{
				"requested": want,
				"kept":      got,
				"available": strings.Join(p.AvailableVideoCodecs(), ","),
			}).Warn("video codec not available for 3gp, keeping current codec")
		}
	}

	if v.IsSet(KeyAudioCodec) {
		want := v.GetString(KeyAudioCodec)
		if got := p.SetAudioCodec(want).AudioCodec(); got != want {
			log.WithFields(logrus.Fields{
				"requested": want,
				"kept":      got,
			}).Warn("audio codec cannot be changed on the 3gp preset, keeping current codec")
		}
	}

	if err := p.Validate(); err != nil {
		log.WithError(err).Warn("profile has non-positive values")
	}
	return p
}
