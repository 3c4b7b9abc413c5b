package profile

import "strconv"

// Dimension is a frame size in pixels.
type Dimension struct {
	Width  int
	Height int
}

// String renders the dimension the way ffmpeg's -s option expects it.
func (d Dimension) String() string {
	return strconv.Itoa(d.Width) + "x" + strconv.Itoa(d.Height)
}

// Valid reports whether both sides are positive.
func (d Dimension) Valid() bool {
	return d.Width > 0 && d.Height > 0
}
