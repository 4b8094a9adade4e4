package number

import "math"

// FloatToInteger reports whether f has an exact int64 representation.
func FloatToInteger(f float64) (int64, bool) {
	i := int64(f)
	return i, float64(i) == f && f >= math.MinInt64 && f < math.MaxInt64
}
