package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindFFmpeg_CustomPath(t *testing.T) {
	bin := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindFFmpeg(bin)
	if err != nil {
		t.Fatalf("FindFFmpeg(%q) error = %v", bin, err)
	}
	if got != bin {
		t.Errorf("FindFFmpeg(%q) = %q", bin, got)
	}
}

func TestFindFFmpeg_MissingCustomPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope", "ffmpeg")
	if _, err := FindFFmpeg(missing); err == nil {
		t.Errorf("FindFFmpeg(%q) expected error", missing)
	}
}
