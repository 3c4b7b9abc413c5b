package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"threegp/internal/model"
	"threegp/internal/profile"
	"threegp/internal/util/humanize"
)

const labelWidth = 20

func row(w io.Writer, s Styles, label, value string) {
	fmt.Fprintf(w, "%s %s\n", s.Label.Render(fmt.Sprintf("%-*s", labelWidth, label+":")), s.Value.Render(value))
}

// RenderProfile writes the preset as an aligned key/value listing.
func RenderProfile(w io.Writer, s Styles, snap profile.Snapshot) {
	fmt.Fprintln(w, s.Title.Render(strings.ToUpper(snap.Format)+" profile"))
	row(w, s, "Dimensions", fmt.Sprintf("%dx%d", snap.Width, snap.Height))
	row(w, s, "Video bitrate", fmt.Sprintf("%d kbps", snap.KiloBitrate))
	row(w, s, "Frame rate", fmt.Sprintf("%d fps", snap.FrameRate))
	row(w, s, "Video codec", snap.VideoCodec)
	row(w, s, "Audio codec", snap.AudioCodec)
	row(w, s, "Audio sample rate", fmt.Sprintf("%d Hz", snap.AudioSampleRate))
	gop := "encoder default"
	if snap.GOPSize > 0 {
		gop = strconv.Itoa(snap.GOPSize)
	}
	row(w, s, "GOP size", gop)
	row(w, s, "B-frames", yesNo(snap.SupportBFrames))
	row(w, s, "Extra params", snap.ExtraParams)
}

// RenderCodecs lists the available codecs with the current one marked.
func RenderCodecs(w io.Writer, s Styles, snap profile.Snapshot) {
	list := func(title, current string, codecs []string) {
		fmt.Fprintln(w, s.Title.Render(title))
		for _, c := range codecs {
			if c == current {
				fmt.Fprintf(w, "  %s\n", s.Current.Render("* "+c))
				continue
			}
			fmt.Fprintf(w, "    %s\n", s.Value.Render(c))
		}
	}
	list("Video codecs", snap.VideoCodec, snap.AvailableVideoCodecs)
	list("Audio codecs", snap.AudioCodec, snap.AvailableAudioCodecs)
}

// RenderPlan writes a dry-run summary of one conversion.
func RenderPlan(w io.Writer, s Styles, p model.Plan, command string) {
	fmt.Fprintln(w, s.Title.Render("Plan"))
	row(w, s, "Input", p.InputPath)
	row(w, s, "Output", p.OutputPath)
	row(w, s, "Output size", p.Output.String())
	row(w, s, "Video encoder", p.VideoEncoder)
	row(w, s, "Audio encoder", p.AudioEncoder)
	est := s.Faint.Render("unknown (pass --duration)")
	if p.EstimatedBytes > 0 {
		est = "~" + humanize.Bytes(p.EstimatedBytes) + " (video stream)"
	}
	row(w, s, "Estimated file", est)
	if !p.Output.Valid() {
		fmt.Fprintln(w, s.Warning.Render("warning: output dimensions are not positive"))
	}
	fmt.Fprintln(w, s.Command.Render(command))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
