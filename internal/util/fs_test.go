package util

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: "untitled"},
		{name: "plain", in: "clip", want: "clip"},
		{name: "spaces", in: "my holiday clip", want: "my_holiday_clip"},
		{name: "forbidden chars collapse", in: "a:/b**c", want: "a_b_c"},
		{name: "trimmed", in: "..clip-", want: "clip"},
		{name: "only forbidden", in: "???", want: "untitled"},
		{name: "unicode kept", in: "vidéo", want: "vidéo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.in); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilename_Truncates(t *testing.T) {
	got := SanitizeFilename(strings.Repeat("é", 250))
	if n := utf8.RuneCountInString(got); n != 200 {
		t.Errorf("rune count = %d, want 200", n)
	}
}
