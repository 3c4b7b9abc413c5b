package util

import (
	"strings"
	"unicode/utf8"
)

const maxFilenameRunes = 200

// SanitizeFilename cleans a string to be safe as a filename: spaces and
// forbidden characters become underscores, runs of underscores collapse,
// and the result is cut to 200 runes.
func SanitizeFilename(s string) string {
	if s == "" {
		return "untitled"
	}
	s = strings.ReplaceAll(s, " ", "_")
	forbidden := `[]/\:*?"<>|#%{}$!@+^~` + "`" + `=&;`
	for _, r := range forbidden {
		s = strings.ReplaceAll(s, string(r), "_")
	}
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	s = strings.Trim(s, "._-")

	if utf8.RuneCountInString(s) > maxFilenameRunes {
		runes := []rune(s)
		s = string(runes[:maxFilenameRunes])
	}

	if s == "" {
		return "untitled"
	}
	return s
}
