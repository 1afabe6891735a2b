// Package horizon converts equatorial coordinates to altitude and azimuth
// for an observer.
package horizon

import (
	"math"
	"time"

	"github.com/thurmanmarka/almanac/internal/angle"
	"github.com/thurmanmarka/almanac/internal/timeutil"
)

// Horizontal holds altitude above the horizon and azimuth measured from
// north through east, both in degrees.
type Horizontal struct {
	Altitude float64
	Azimuth  float64
}

// HourAngle returns the local hour angle in degrees for right ascension ra
// (hours) and local sidereal time lst (hours).
func HourAngle(lst, ra float64) float64 {
	return 15 * (lst - ra)
}

// FromHourAngle rotates a position given by hour angle ha and declination
// dec (degrees) into the horizon frame at latitude lat.
func FromHourAngle(ha, dec, lat float64) Horizontal {
	x := angle.Cos(ha) * angle.Cos(dec)
	y := angle.Sin(ha) * angle.Cos(dec)
	z := angle.Sin(dec)

	xhor := x*angle.Sin(lat) - z*angle.Cos(lat)
	yhor := y
	zhor := x*angle.Cos(lat) + z*angle.Sin(lat)

	return Horizontal{
		Altitude: angle.Atan2(zhor, math.Sqrt(xhor*xhor+yhor*yhor)),
		Azimuth:  angle.Rev(angle.Atan2(yhor, xhor) + 180),
	}
}

// AltitudeAzimuth returns the horizontal position of a body at right
// ascension ra (hours) and declination dec (degrees) for an observer at
// (lat, lon) at the civil time t. Sidereal time is taken at the whole hour
// of t.
func AltitudeAzimuth(ra, dec, lat, lon float64, t time.Time) Horizontal {
	lst := timeutil.LocalSidereal(t, timeutil.CivilHour(t), lon)
	return FromHourAngle(HourAngle(lst, ra), dec, lat)
}
