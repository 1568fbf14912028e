package sprite

import "math"

// NormalizeHeading wraps a heading in degrees into [0, 360).
func NormalizeHeading(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// FrameForHeading maps a continuous heading to the nearest frame of a
// rotation sheet. Exact half-step headings resolve to the higher frame
// index: 7.5 degrees on a 24-frame sheet picks frame 1, and at the wrap
// seam 352.5 picks frame 23 rather than frame 0. Identical headings always
// pick identical frames, so rotation rendering never flickers.
func FrameForHeading(heading float64, frameCount int) int {
	if frameCount <= 0 {
		frameCount = RotationFrames
	}
	step := 360.0 / float64(frameCount)
	pos := NormalizeHeading(heading) / step
	lower := int(math.Floor(pos))
	frac := pos - float64(lower)
	switch {
	case frac > 0.5:
		lower++
	case frac == 0.5:
		lowerIdx := lower % frameCount
		upperIdx := (lower + 1) % frameCount
		if upperIdx > lowerIdx {
			return upperIdx
		}
		return lowerIdx
	}
	return lower % frameCount
}
