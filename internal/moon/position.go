// Package moon computes the geocentric position of the Moon from the 60-term
// periodic series of Meeus' lunar theory, and the phase angle and illuminated
// ratio from the short phase expansion.
//
// All inputs are Julian day numbers. Angles are degrees unless noted.
package moon

import (
	"math"

	"github.com/thurmanmarka/almanac/internal/angle"
)

// J2000 is the Julian day of the 2000 January 1.5 epoch.
const J2000 = 2451545.0

// meanDistanceKm is the constant term of the distance series.
const meanDistanceKm = 385000.56

// Centuries returns Julian centuries since J2000.
func Centuries(jd float64) float64 {
	return (jd - J2000) / 36525
}

// Arguments are the fundamental arguments of the lunar theory, reduced to
// [0, 360).
type Arguments struct {
	Lp float64 // Moon's mean longitude L'
	D  float64 // mean elongation
	M  float64 // Sun's mean anomaly
	Mp float64 // Moon's mean anomaly M'
	F  float64 // argument of latitude
}

// ArgumentsAt evaluates the fundamental arguments at T Julian centuries.
func ArgumentsAt(T float64) Arguments {
	T2 := T * T
	T3 := T2 * T
	T4 := T3 * T

	return Arguments{
		Lp: angle.Rev(218.3164477 + 481267.88123421*T - 0.0015786*T2 + T3/538841 - T4/65194000),
		D:  angle.Rev(297.8501921 + 445267.1114034*T - 0.0018819*T2 + T3/545868 - T4/113065000),
		M:  angle.Rev(357.5291092 + 35999.0502909*T - 0.0001536*T2 + T3/24490000),
		Mp: angle.Rev(134.9633964 + 477198.8675055*T + 0.0087414*T2 + T3/69699 - T4/14712000),
		F:  angle.Rev(93.2720950 + 483202.0175233*T - 0.0036539*T2 - T3/3526000 + T4/863310000),
	}
}

// eccentricityFactor returns the weight for a term whose M multiplier is m.
func eccentricityFactor(E float64, m int) float64 {
	switch m {
	case 1, -1:
		return E
	case 2, -2:
		return E * E
	default:
		return 1
	}
}

// Position is the Moon's geocentric position.
type Position struct {
	Longitude float64 // ecliptic longitude, [0, 360)
	Latitude  float64 // ecliptic latitude, (-180, 180]
	Distance  float64 // Earth-Moon distance, km, rounded
	RA        float64 // right ascension, hours [0, 24)
	Dec       float64 // declination, (-180, 180]
}

// Obliquity returns the obliquity of the ecliptic used for the equatorial
// conversion.
func Obliquity(jd float64) float64 {
	return 23.4393 - 3.563e-9*(jd-2451543.5)
}

// Sums returns the periodic sums Σl, Σb (1e-6 degree) and Σr (1e-3 km),
// including the additive terms for Venus, Jupiter and Earth's flattening.
func Sums(T float64) (sl, sb, sr float64) {
	a := ArgumentsAt(T)

	A1 := 119.75 + 131.849*T
	A2 := 53.09 + 479264.290*T
	A3 := 313.45 + 481266.484*T
	E := 1 - 0.002516*T - 0.0000074*T*T

	for _, t := range lonDistTerms {
		arg := angle.Rev(float64(t.d)*a.D + float64(t.m)*a.M + float64(t.mp)*a.Mp + float64(t.f)*a.F)
		e := eccentricityFactor(E, t.m)
		sl += t.l * e * angle.Sin(arg)
		sr += t.r * e * angle.Cos(arg)
	}
	for _, t := range latTerms {
		arg := angle.Rev(float64(t.d)*a.D + float64(t.m)*a.M + float64(t.mp)*a.Mp + float64(t.f)*a.F)
		sb += t.b * eccentricityFactor(E, t.m) * angle.Sin(arg)
	}

	sl += 3958*angle.Sin(A1) + 1962*angle.Sin(a.Lp-a.F) + 318*angle.Sin(A2)
	sb += -2235*angle.Sin(a.Lp) + 382*angle.Sin(A3) +
		175*angle.Sin(A1-a.F) + 175*angle.Sin(A1+a.F) +
		127*angle.Sin(a.Lp-a.Mp) - 115*angle.Sin(a.Lp+a.Mp)
	return sl, sb, sr
}

// PositionAt returns the Moon's geocentric position at Julian day jd.
func PositionAt(jd float64) Position {
	T := Centuries(jd)
	a := ArgumentsAt(T)
	sl, sb, sr := Sums(T)

	lon := angle.Rev(a.Lp + sl/1e6)
	lat := angle.Rev(sb / 1e6)
	if lat > 180 {
		lat -= 360
	}
	dist := math.Round(meanDistanceKm + sr/1000)

	obl := Obliquity(jd)
	ra := angle.Rev(angle.Atan2(
		angle.Sin(lon)*angle.Cos(obl)-angle.Tan(lat)*angle.Sin(obl),
		angle.Cos(lon),
	)) / 15
	dec := angle.Rev(angle.Asin(angle.Sin(lat)*angle.Cos(obl) + angle.Cos(lat)*angle.Sin(obl)*angle.Sin(lon)))
	if dec > 180 {
		dec -= 360
	}

	return Position{
		Longitude: lon,
		Latitude:  lat,
		Distance:  dist,
		RA:        ra,
		Dec:       dec,
	}
}
