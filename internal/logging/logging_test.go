package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		format    string
		wantErr   bool
		wantLevel logrus.Level
	}{
		{name: "default text", format: "", wantLevel: logrus.InfoLevel},
		{name: "verbose", verbose: true, format: "text", wantLevel: logrus.DebugLevel},
		{name: "json upper case", format: "JSON", wantLevel: logrus.InfoLevel},
		{name: "invalid", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(&bytes.Buffer{}, tt.verbose, tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if logger.GetLevel() != tt.wantLevel {
				t.Errorf("level = %v, want %v", logger.GetLevel(), tt.wantLevel)
			}
		})
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, false, FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	logger.WithField("codec", "mpeg4").Warn("video codec rejected")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["codec"] != "mpeg4" || entry["level"] != "warning" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNew_DebugSuppressedByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := New(&buf, false, FormatText)
	logger.Debug("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("debug entry written at info level: %q", buf.String())
	}
}
