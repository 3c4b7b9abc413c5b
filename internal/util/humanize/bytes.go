package humanize

import "strconv"

var units = []string{"KB", "MB", "GB", "TB"}

// Bytes renders a byte count with a binary unit, e.g. "1.7 MB".
func Bytes(b int64) string {
	const step = 1024
	if b < step {
		return strconv.FormatInt(b, 10) + " B"
	}
	div, exp := int64(step), 0
	for n := b / step; n >= step && exp < len(units)-1; n /= step {
		div *= step
		exp++
	}
	v := float64(b) / float64(div)
	return strconv.FormatFloat(v, 'f', 1, 64) + " " + units[exp]
}
