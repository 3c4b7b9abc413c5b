package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"threegp/internal/config"
	"threegp/internal/encoder"
	"threegp/internal/model"
	"threegp/internal/util"
	"threegp/internal/util/deps"
)

func newArgsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "args <input> <output>",
		Short:         "Print the ffmpeg command for converting input to 3GP",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := sourceFromFlags(cmd, args[0])
			spec := util.CmdSpec{
				Path: a.ffmpegPath(),
				Args: encoder.BuildArgs(src, a.profile, args[1]),
			}
			fmt.Fprintln(cmd.OutOrStdout(), spec.String())
			return nil
		},
	}
	bindSourceFlags(cmd.Flags())
	return cmd
}

func sourceFromFlags(cmd *cobra.Command, inputPath string) model.Source {
	w, _ := cmd.Flags().GetInt("src-width")
	h, _ := cmd.Flags().GetInt("src-height")
	src := model.Source{InputPath: inputPath, Width: w, Height: h}
	if cmd.Flags().Lookup("duration") != nil {
		src.DurationSec, _ = cmd.Flags().GetFloat64("duration")
	}
	return src
}

// ffmpegPath resolves the binary to print. Nothing is executed, so a missing
// ffmpeg only degrades to the bare name.
func (a *app) ffmpegPath() string {
	p, err := deps.FindFFmpeg(a.v.GetString(config.KeyFFmpeg))
	if err != nil {
		a.log.WithError(err).Debug("using bare ffmpeg name")
		return "ffmpeg"
	}
	return p
}
