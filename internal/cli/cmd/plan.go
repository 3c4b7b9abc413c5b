package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"threegp/internal/encoder"
	"threegp/internal/ui"
	"threegp/internal/util"
	"threegp/internal/util/media"
)

func newPlanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "plan <input> [output]",
		Short:         "Show what converting input to 3GP would produce, without running anything",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := sourceFromFlags(cmd, args[0])
			outputPath := media.OutputPath(src.InputPath)
			if len(args) == 2 {
				outputPath = args[1]
			}

			plan := encoder.NewPlan(src, a.profile, outputPath)
			a.log.WithFields(logrus.Fields{
				"input":  plan.InputPath,
				"output": plan.OutputPath,
				"size":   plan.Output.String(),
			}).Debug("plan built")

			command := util.CmdSpec{Path: a.ffmpegPath(), Args: plan.Args}.String()
			w := cmd.OutOrStdout()
			ui.RenderPlan(w, stylesFor(w), plan, command)
			return nil
		},
	}
	bindSourceFlags(cmd.Flags())
	cmd.Flags().Float64("duration", 0, "Source duration in seconds, for the size estimate (0 = unknown)")
	return cmd
}
