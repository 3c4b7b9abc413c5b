package media

import (
	"path/filepath"
	"strings"

	"threegp/internal/util"
)

// Ext is the file extension written for 3GP output.
const Ext = ".3gp"

// OutputPath derives the default output file for inputPath: the sanitized
// input basename with the 3GP extension, in the input's directory. When that
// would be the input itself, ".out" is inserted before the extension.
func OutputPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	base = util.SanitizeFilename(strings.TrimSuffix(base, filepath.Ext(base)))

	out := filepath.Join(dir, base+Ext)
	// Case-insensitive so Clip.3GP on macOS/Windows is caught too.
	if strings.EqualFold(out, filepath.Clean(inputPath)) {
		out = filepath.Join(dir, base+".out"+Ext)
	}
	return out
}
