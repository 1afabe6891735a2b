package almanac

import (
	"time"

	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/almanac/internal/horizon"
	"github.com/thurmanmarka/almanac/internal/timeutil"
)

// Clock is a wall-clock reading produced by HoursToClock.
type Clock = timeutil.Clock

// DefaultHourBase is the number of minutes in an hour for HoursToClock.
const DefaultHourBase = timeutil.DefaultHourBase

// HoursToClock wraps fractional hours into [0, 24) and splits them into
// whole hours and rounded minutes, carrying a full hour of minutes into the
// next hour. base is the number of minutes per hour; zero means 60.
func HoursToClock(h, base float64) Clock {
	return timeutil.HoursToClock(h, base)
}

// TimeToHours returns the hour and minute of t as fractional hours.
func TimeToHours(t time.Time) float64 {
	return timeutil.HoursOfDay(t)
}

// Horizontal is a position in the observer's sky.
type Horizontal struct {
	Altitude float64 // degrees above the horizon
	Azimuth  float64 // degrees from north through east, [0, 360)
}

// Alt returns the altitude as a unit.Angle.
func (h Horizontal) Alt() unit.Angle { return unit.AngleFromDeg(h.Altitude) }

// Az returns the azimuth as a unit.Angle.
func (h Horizontal) Az() unit.Angle { return unit.AngleFromDeg(h.Azimuth) }

// AltitudeAzimuth converts right ascension ra (hours) and declination dec
// (degrees) to altitude and azimuth for the observer, using local sidereal
// time at the whole civil hour.
func (o Observation) AltitudeAzimuth(ra, dec float64) Horizontal {
	h := horizon.AltitudeAzimuth(ra, dec, o.coords.Lat, o.coords.Lon, o.t)
	return Horizontal{Altitude: h.Altitude, Azimuth: h.Azimuth}
}

// MoonAltitudeAzimuth returns the Moon's geocentric altitude and azimuth.
// No parallax correction is applied.
func (o Observation) MoonAltitudeAzimuth() Horizontal {
	p := o.MoonPosition()
	return o.AltitudeAzimuth(p.RightAscension, p.Declination)
}
