package bitrate

// EstimateBytes returns the size of a stream encoded at kbps for durationSec
// seconds. Unknown (non-positive) durations or bitrates yield 0.
func EstimateBytes(kbps int, durationSec float64) int64 {
	if durationSec <= 0 || kbps <= 0 {
		return 0
	}
	bitsPerSec := float64(kbps) * 1000
	return int64(bitsPerSec / 8 * durationSec)
}
