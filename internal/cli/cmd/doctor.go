package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"threegp/internal/config"
	"threegp/internal/dirs"
	"threegp/internal/util/deps"
)

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:           "doctor",
		Short:         "Diagnose the ffmpeg binary and config location",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			cfgDir, derr := dirs.ConfigDir()
			if derr != nil {
				cfgDir = "unavailable: " + derr.Error()
			}
			used := a.v.ConfigFileUsed()
			if used == "" {
				used = "none"
			}
			fmt.Fprintf(w, "Config dir:  %s\n", cfgDir)
			fmt.Fprintf(w, "Config file: %s\n", used)

			ff, ferr := deps.FindFFmpeg(a.v.GetString(config.KeyFFmpeg))
			if ferr != nil {
				return &ExitError{Code: ExitMissingDep, Err: ferr}
			}
			fmt.Fprintf(w, "FFmpeg:      %s\n", ff)
			return nil
		},
	}
}
