package cmd

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"threegp/internal/config"
	"threegp/internal/logging"
	"threegp/internal/profile"
	"threegp/internal/ui"
)

const (
	ExitOK          = 0
	ExitCLIError    = 1
	ExitMissingDep  = 2
	ExitConfigError = 3
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// app is what PersistentPreRunE resolves once for every subcommand.
type app struct {
	v       *viper.Viper
	log     *logrus.Logger
	profile *profile.ThreeGP
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "threegp",
		Short: "3GP encoding preset for 3G mobile phones",
		Long: "threegp holds the 3GP encoding preset (QCIF H.263 with AAC at 8 kHz by default), " +
			"lets you override it from flags, THREEGP_* environment variables or a config file, " +
			"and prints the ffmpeg command a pipeline would run with it.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	config.AddFlags(root.PersistentFlags())

	root.AddCommand(newShowCmd(a))
	root.AddCommand(newCodecsCmd(a))
	root.AddCommand(newArgsCmd(a))
	root.AddCommand(newPlanCmd(a))
	root.AddCommand(newDoctorCmd(a))
	root.AddCommand(newCompletionCmd())

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if err := config.Init(a.v, cmd.Flags()); err != nil {
		return &ExitError{Code: ExitConfigError, Err: err}
	}
	log, err := logging.New(cmd.ErrOrStderr(), a.v.GetBool(config.KeyVerbose), a.v.GetString(config.KeyLogFormat))
	if err != nil {
		return &ExitError{Code: ExitConfigError, Err: err}
	}
	a.log = log
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.WithField("path", used).Debug("config file loaded")
	}
	a.profile = config.Profile(a.v, a.log)
	return nil
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	return root.ExecuteContext(ctx)
}

// Helpers

// stylesFor colors output only when it goes to a terminal.
func stylesFor(w io.Writer) ui.Styles {
	if f, ok := w.(*os.File); ok {
		return ui.StylesFor(f)
	}
	return ui.PlainStyles()
}

func bindSourceFlags(fs *pflag.FlagSet) {
	fs.Int("src-width", 0, "Source width in px (0 = unknown)")
	fs.Int("src-height", 0, "Source height in px (0 = unknown)")
}
