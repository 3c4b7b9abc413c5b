package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	threegpcmd "threegp/internal/cli/cmd"
)

// hints are printed after the error for exit codes the user can act on.
var hints = map[int]string{
	threegpcmd.ExitMissingDep:  "hint: install ffmpeg or point --ffmpeg / THREEGP_FFMPEG at the binary",
	threegpcmd.ExitConfigError: "hint: check --config, --log-format and THREEGP_* environment variables",
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := threegpcmd.Execute(ctx)
	if err == nil {
		os.Exit(threegpcmd.ExitOK)
	}

	code := threegpcmd.ExitCLIError
	var ee *threegpcmd.ExitError
	if errors.As(err, &ee) {
		code = ee.Code
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(os.Stderr, msg)
	}
	if hint, ok := hints[code]; ok {
		fmt.Fprintln(os.Stderr, hint)
	}
	os.Exit(code)
}
