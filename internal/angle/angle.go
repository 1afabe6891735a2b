// Package angle provides degree-based trigonometry used throughout the
// solar and lunar models.
package angle

import "math"

const (
	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi
)

// Rev reduces an angle in degrees to the range [0, 360).
func Rev(a float64) float64 {
	r := a - math.Floor(a/360.0)*360.0
	// a tiny negative input rounds up to exactly 360
	if r >= 360.0 {
		r -= 360.0
	}
	return r
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * degToRad
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * radToDeg
}

// Sin returns the sine of an angle in degrees.
func Sin(deg float64) float64 {
	return math.Sin(deg * degToRad)
}

// Cos returns the cosine of an angle in degrees.
func Cos(deg float64) float64 {
	return math.Cos(deg * degToRad)
}

// Tan returns the tangent of an angle in degrees.
func Tan(deg float64) float64 {
	return math.Tan(deg * degToRad)
}

// Asin returns the arcsine of c in degrees.
func Asin(c float64) float64 {
	return radToDeg * math.Asin(c)
}

// Acos returns the arccosine of c in degrees. Inputs outside [-1, 1]
// yield NaN.
func Acos(c float64) float64 {
	return radToDeg * math.Acos(c)
}

// Atan2 returns atan(y/x) in degrees, minus 180 when x is negative.
//
// This is not math.Atan2: results fall in (-270, 90], and callers wrap them
// with Rev or explicit loops. For x == 0 the quotient is ±Inf and the
// result is ±90; x == y == 0 yields NaN.
func Atan2(y, x float64) float64 {
	a := radToDeg * math.Atan(y/x)
	if x < 0 {
		a -= 180.0
	}
	return a
}
