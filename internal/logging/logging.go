package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New builds the logger used across the CLI. Logs go to w (stderr in
// practice) so stdout stays clean for command output.
func New(w io.Writer, verbose bool, format string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(w)

	switch strings.ToLower(format) {
	case "", FormatText:
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q (valid: text|json)", format)
	}

	logger.SetLevel(logrus.InfoLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger, nil
}
