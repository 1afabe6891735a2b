// Package almanac computes solar and lunar ephemeris quantities for an
// observer: sunrise and sunset, light and dark durations, planetary sun
// hours and the sun week, the Moon's position, phase and illumination, the
// zodiac sign of a day, and altitude/azimuth of a body.
//
// Everything hangs off an Observation, an immutable pairing of a civil
// timestamp with observer coordinates. The timestamp is read on its own wall
// clock: its calendar fields drive the day number and its zone offset
// shifts UTC solutions onto that clock. It is never converted to UTC first.
//
// The models are low precision (about a minute for the Sun, a few arcseconds
// to arcminutes for the Moon) and make no attempt at polar day or night
// beyond reporting it as an error.
//
// All functions are pure and safe for concurrent use.
package almanac

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/thurmanmarka/almanac/internal/sun"
	"github.com/thurmanmarka/almanac/internal/timeutil"
)

// Coordinates represent an observer's location.
type Coordinates struct {
	Lat float64 // degrees, north positive
	Lon float64 // degrees, east positive (west negative, e.g. -105 for 105°W)
}

// Validate reports whether the coordinates are finite and in range.
func (c Coordinates) Validate() error {
	switch {
	case math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || c.Lat < -90 || c.Lat > 90:
		return fmt.Errorf("%w: latitude %v", ErrInvalidCoordinates, c.Lat)
	case math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) || c.Lon < -180 || c.Lon > 180:
		return fmt.Errorf("%w: longitude %v", ErrInvalidCoordinates, c.Lon)
	}
	return nil
}

var (
	// ErrNoRiseNoSet is returned when the Sun does not rise or set on the
	// observation's date. The concrete error is a *DomainError.
	ErrNoRiseNoSet = sun.ErrNoRiseNoSet

	// ErrInvalidCoordinates is returned by NewObservation for latitude or
	// longitude that is not finite or out of range.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// Condition describes why the Sun has no rise or set.
type Condition int

const (
	// AlwaysLight is midnight sun: the Sun stays above the horizon.
	AlwaysLight Condition = iota + 1
	// AlwaysDark is polar night: the Sun stays below the horizon.
	AlwaysDark
)

func (c Condition) String() string {
	switch c {
	case AlwaysLight:
		return "always light"
	case AlwaysDark:
		return "always dark"
	default:
		return fmt.Sprintf("Condition(%d)", int(c))
	}
}

// DomainError reports an operation whose trigonometric input left its
// domain, such as the rise/set hour-angle cosine beyond ±1.
type DomainError struct {
	Op           string    // operation that failed, e.g. "Sunrise"
	Date         time.Time // date the solver was run for
	Lat          float64
	CosHourAngle float64
	Condition    Condition
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("almanac: %s: sun %s on %s at lat %.4f (cos H0 = %.4f)",
		e.Op, e.Condition, e.Date.Format("2006-01-02"), e.Lat, e.CosHourAngle)
}

// Unwrap makes errors.Is(err, ErrNoRiseNoSet) hold.
func (e *DomainError) Unwrap() error {
	return ErrNoRiseNoSet
}

// sunError converts errors from the solar solver into *DomainError.
func sunError(op string, err error) error {
	var pe *sun.PolarError
	if !errors.As(err, &pe) {
		return err
	}

	de := &DomainError{
		Op:           op,
		Date:         pe.Date,
		Lat:          pe.Lat,
		CosHourAngle: pe.CosHourAngle,
	}
	switch pe.Condition {
	case sun.AlwaysLight:
		de.Condition = AlwaysLight
	case sun.AlwaysDark:
		de.Condition = AlwaysDark
	}

	zap.L().Debug("sun does not cross the horizon",
		zap.String("op", op),
		zap.Time("date", pe.Date),
		zap.Float64("lat", pe.Lat),
		zap.Float64("cosH0", pe.CosHourAngle),
		zap.Stringer("condition", de.Condition),
	)
	return de
}

// Observation is a civil timestamp at a place. The zero value is
// 0001-01-01 00:00 UTC at latitude and longitude 0.
type Observation struct {
	t      time.Time
	coords Coordinates
}

// NewObservation validates the coordinates and returns an Observation.
func NewObservation(t time.Time, c Coordinates) (Observation, error) {
	if err := c.Validate(); err != nil {
		return Observation{}, err
	}
	return Observation{t: t, coords: c}, nil
}

// At returns an Observation without validating the coordinates.
func At(t time.Time, c Coordinates) Observation {
	return Observation{t: t, coords: c}
}

// Time returns the civil timestamp.
func (o Observation) Time() time.Time { return o.t }

// Coordinates returns the observer's location.
func (o Observation) Coordinates() Coordinates { return o.coords }

// WithTime returns a copy of o at a different timestamp.
func (o Observation) WithTime(t time.Time) Observation {
	o.t = t
	return o
}

// AddDays returns a copy of o moved by n civil days.
func (o Observation) AddDays(n int) Observation {
	return o.WithTime(o.t.AddDate(0, 0, n))
}

// DayNumber returns the day number (0 = 2000 January 0.0) of the timestamp's
// calendar date at its whole civil hour. Minutes are ignored.
func (o Observation) DayNumber() float64 {
	return timeutil.DayNumber(o.t, timeutil.CivilHour(o.t))
}

// DayNumberAt returns the day number of the timestamp's calendar date at
// the given hour instead of the civil hour.
func (o Observation) DayNumberAt(hours float64) float64 {
	return timeutil.DayNumber(o.t, hours)
}

// JulianDayNumber returns the day number shifted to the Julian day epoch.
func (o Observation) JulianDayNumber() float64 {
	return timeutil.JulianDayNumber(o.t)
}

// LocalSidereal returns local sidereal time in hours [0, 24) at the whole
// civil hour.
func (o Observation) LocalSidereal() float64 {
	return timeutil.LocalSidereal(o.t, timeutil.CivilHour(o.t), o.coords.Lon)
}

// LocalSiderealAt returns local sidereal time for the timestamp's date at
// the given hour.
func (o Observation) LocalSiderealAt(hours float64) float64 {
	return timeutil.LocalSidereal(o.t, hours, o.coords.Lon)
}

// UTCOffset returns the zone offset in hours ahead of UTC.
func (o Observation) UTCOffset() float64 {
	return timeutil.UTCOffsetHours(o.t)
}
