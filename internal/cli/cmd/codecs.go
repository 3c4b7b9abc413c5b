package cmd

import (
	"github.com/spf13/cobra"

	"threegp/internal/ui"
)

func newCodecsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:           "codecs",
		Short:         "List the codecs the 3GP profile accepts",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			ui.RenderCodecs(w, stylesFor(w), a.profile.Snapshot())
			return nil
		},
	}
}
