package common

const (
	BaseWidth  = 1200
	BaseHeight = 900

	// TicksPerSecond is ebiten's fixed logical tick rate.
	TicksPerSecond = 60
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
