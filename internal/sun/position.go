package sun

import (
	"math"
	"time"

	"github.com/thurmanmarka/almanac/internal/angle"
	"github.com/thurmanmarka/almanac/internal/timeutil"
)

// ApparentHorizonAltitude is the altitude (in degrees) of the Sun's center
// when the apparent upper limb is on the horizon under standard refraction.
const ApparentHorizonAltitude = -0.833

// Condition tells whether the Sun crosses the horizon on a date.
type Condition int

const (
	// Normal means the Sun rises and sets.
	Normal Condition = iota
	// AlwaysLight means the Sun stays above the horizon all day.
	AlwaysLight
	// AlwaysDark means the Sun stays below the horizon all day.
	AlwaysDark
)

func (c Condition) String() string {
	switch c {
	case Normal:
		return "normal"
	case AlwaysLight:
		return "always light"
	case AlwaysDark:
		return "always dark"
	default:
		return "unknown"
	}
}

// Equatorial holds the Sun's apparent right ascension (hours) and
// declination (degrees).
type Equatorial struct {
	RA  float64
	Dec float64
}

// Times is the outcome of the rise/set hour-angle solution for one date.
type Times struct {
	Meridian     float64 // UTC hour of meridian transit, [0,24)
	HourAngle    float64 // hours from transit to horizon crossing, NaN when polar
	CosHourAngle float64 // cosine of the horizon hour angle before acos
}

// Condition classifies the hour-angle cosine.
func (t Times) Condition() Condition {
	switch {
	case t.CosHourAngle > 1:
		return AlwaysDark
	case t.CosHourAngle < -1:
		return AlwaysLight
	default:
		return Normal
	}
}

// Rise returns the rise time in hours for a zone offset (hours ahead of UTC).
func (t Times) Rise(offset float64) float64 {
	return t.Meridian - t.HourAngle + offset
}

// Set returns the set time in hours for a zone offset (hours ahead of UTC).
func (t Times) Set(offset float64) float64 {
	return t.Meridian + t.HourAngle + offset
}

// NoonHour is the UTC hour of mean local noon at longitude lon.
func NoonHour(lon float64) float64 {
	return 12.0 - lon/15.0
}

// EquatorialAt returns the Sun's position for day number d using the
// orbital elements of the low-precision solar model.
func EquatorialAt(d float64) Equatorial {
	oblecl := 23.4393 - 3.563e-7*d
	w := 282.9404 + 4.70935e-5*d
	M := 356.0470 + 0.9856002585*d
	e := 0.016709 - 1.151e-9*d

	// One step of Kepler's equation, in degrees.
	E := M + e*(180/math.Pi)*angle.Sin(M)*(1.0+e*angle.Cos(M))
	A := angle.Cos(E) - e
	B := math.Sqrt(1-e*e) * angle.Sin(E)
	slon := w + angle.Atan2(B, A)

	sRA := angle.Atan2(angle.Sin(slon)*angle.Cos(oblecl), angle.Cos(slon))
	sRA = angle.Rev(sRA) / 15
	sDec := angle.Asin(angle.Sin(oblecl) * angle.Sin(slon))

	return Equatorial{RA: sRA, Dec: sDec}
}

// TimesForDate solves the rise/set hour angle for the calendar date of date
// at latitude lat and longitude lon (degrees, north and east positive).
//
// When the Sun never crosses the horizon HourAngle is NaN and Condition
// reports which way it failed. The model degrades near the poles.
func TimesForDate(lat, lon float64, date time.Time) Times {
	noon := NoonHour(lon)
	d := timeutil.DayNumber(date, noon)
	eq := EquatorialAt(d)

	lst := timeutil.LocalSidereal(date, noon, lon)
	mt := timeutil.Normalize24(noon + eq.RA - lst)

	cHA0 := (angle.Sin(ApparentHorizonAltitude) - angle.Sin(lat)*angle.Sin(eq.Dec)) /
		(angle.Cos(lat) * angle.Cos(eq.Dec))
	ha0 := angle.Rev(angle.Acos(cHA0)) / 15

	return Times{
		Meridian:     mt,
		HourAngle:    ha0,
		CosHourAngle: cHA0,
	}
}
