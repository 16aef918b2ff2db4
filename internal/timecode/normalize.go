package timecode

import "math"

const (
	// ntscNumerator is the per-frame tick count numerator for the N*1000/1001 family.
	ntscNumerator = 1001e4
	// integerNumerator is the per-frame tick count numerator for integer rates.
	integerNumerator = 1000e4
	// normalizeTolerance is the relative error accepted when snapping a duration.
	normalizeTolerance = 1e-6
)

// normalizeInterval snaps a per-frame duration to the exact NTSC or integer-rate
// value when it is within float noise of one. The drop-frame family is tested first.
func normalizeInterval(interval float64) float64 {
	if interval <= 0 || math.IsNaN(interval) || math.IsInf(interval, 0) {
		return interval
	}
	if n, ok := nearInteger(ntscNumerator / interval); ok {
		return ntscNumerator / n
	}
	if n, ok := nearInteger(integerNumerator / interval); ok {
		return integerNumerator / n
	}
	return interval
}

func nearInteger(x float64) (float64, bool) {
	n := math.Round(x)
	if n < 1 {
		return 0, false
	}
	return n, math.Abs(n-x) < normalizeTolerance*n
}

// NormalizeRate snaps a frame rate the same way decoded durations are snapped,
// so that 23.976023976 and 24000/1001 produce the same encoding.
func NormalizeRate(rate float64) float64 {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return rate
	}
	return TicksPerSecond / normalizeInterval(TicksPerSecond/rate)
}
