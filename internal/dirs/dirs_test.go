package dirs

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestConfigDir_XDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on linux")
	}
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error = %v", err)
	}
	if want := filepath.Join(base, "threegp"); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
}
