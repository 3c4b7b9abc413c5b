package ui

import (
	"bytes"
	"strings"
	"testing"

	"threegp/internal/encoder"
	"threegp/internal/model"
	"threegp/internal/profile"
)

func TestRenderProfile(t *testing.T) {
	var buf bytes.Buffer
	RenderProfile(&buf, PlainStyles(), profile.NewThreeGP().Snapshot())
	out := buf.String()

	for _, want := range []string{
		"3GP profile",
		"176x144",
		"240 kbps",
		"12 fps",
		"h263",
		"aac",
		"8000 Hz",
		"encoder default",
		"-f 3gp",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderProfile() missing %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("plain styles emitted ANSI escapes: %q", out)
	}
}

func TestRenderCodecs(t *testing.T) {
	var buf bytes.Buffer
	RenderCodecs(&buf, PlainStyles(), profile.NewThreeGP().SetVideoCodec("h264").Snapshot())
	out := buf.String()

	for _, want := range []string{"* h264", "    h263", "* aac", "    amr"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderCodecs() missing %q, got:\n%s", want, out)
		}
	}
}

func TestRenderPlan(t *testing.T) {
	tests := []struct {
		name         string
		src          model.Source
		p            *profile.ThreeGP
		wantContains []string
	}{
		{
			name:         "with duration",
			src:          model.Source{InputPath: "clip.mp4", DurationSec: 60},
			p:            profile.NewThreeGP(),
			wantContains: []string{"clip.3gp", "176x144", "~1.7 MB", "ffmpeg -y"},
		},
		{
			name:         "unknown duration",
			src:          model.Source{InputPath: "clip.mp4"},
			p:            profile.NewThreeGP(),
			wantContains: []string{"unknown (pass --duration)"},
		},
		{
			name:         "bad dimensions",
			src:          model.Source{InputPath: "clip.mp4"},
			p:            profile.NewThreeGP().SetWidth(0),
			wantContains: []string{"warning: output dimensions are not positive"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := encoder.NewPlan(tt.src, tt.p, "clip.3gp")
			var buf bytes.Buffer
			RenderPlan(&buf, PlainStyles(), plan, "ffmpeg -y ...")
			out := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(out, want) {
					t.Errorf("RenderPlan() missing %q, got:\n%s", want, out)
				}
			}
		})
	}
}
