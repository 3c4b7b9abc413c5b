package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"threegp/internal/ui"
)

func newShowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "show",
		Short:         "Show the effective profile",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output")
			snap := a.profile.Snapshot()
			w := cmd.OutOrStdout()

			switch strings.ToLower(output) {
			case "text":
				ui.RenderProfile(w, stylesFor(w), snap)
			case "yaml":
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(snap); err != nil {
					return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("encode yaml: %w", err)}
				}
				return enc.Close()
			case "json":
				b, err := json.MarshalIndent(snap, "", "  ")
				if err != nil {
					return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("encode json: %w", err)}
				}
				fmt.Fprintln(w, string(b))
			default:
				return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("invalid --output: %q (valid: text|yaml|json)", output)}
			}
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "text", "Output format: text, yaml, json")
	return cmd
}
