// Package sun implements sunrise and sunset from the hour-angle solution of
// a low-precision solar model, and the planetary sun-hour reckoning built
// on top of it.
//
// Times are civil hours on the date's wall clock: the zone offset of the
// supplied time.Time is added to the UTC solution. Values may fall outside
// [0,24) when an event belongs to the neighbouring day.
package sun

import (
	"errors"
	"fmt"
	"time"

	"github.com/thurmanmarka/almanac/internal/timeutil"
)

// ErrNoRiseNoSet is returned when the Sun does not cross the horizon.
var ErrNoRiseNoSet = errors.New("sun does not rise or set on this date")

// PolarError reports a date on which the hour-angle equation has no
// solution.
type PolarError struct {
	Date         time.Time
	Lat          float64
	CosHourAngle float64
	Condition    Condition
}

func (e *PolarError) Error() string {
	return fmt.Sprintf("sun %s on %s at lat %.4f (cos H0 = %.4f)",
		e.Condition, e.Date.Format("2006-01-02"), e.Lat, e.CosHourAngle)
}

func (e *PolarError) Unwrap() error {
	return ErrNoRiseNoSet
}

// RiseSetForDate returns sunrise and sunset in civil hours for the calendar
// date of date at (lat, lon).
func RiseSetForDate(lat, lon float64, date time.Time) (rise, set float64, err error) {
	st := TimesForDate(lat, lon, date)
	if c := st.Condition(); c != Normal {
		return 0, 0, &PolarError{
			Date:         date,
			Lat:          lat,
			CosHourAngle: st.CosHourAngle,
			Condition:    c,
		}
	}

	offset := timeutil.UTCOffsetHours(date)
	return st.Rise(offset), st.Set(offset), nil
}

// LightDuration is the time from sunrise to sunset, in hours.
func LightDuration(lat, lon float64, date time.Time) (float64, error) {
	rise, set, err := RiseSetForDate(lat, lon, date)
	if err != nil {
		return 0, err
	}
	return set - rise, nil
}

// DarkDuration is the time from today's sunset to the next calendar day's
// sunrise, in hours.
func DarkDuration(lat, lon float64, date time.Time) (float64, error) {
	_, set, err := RiseSetForDate(lat, lon, date)
	if err != nil {
		return 0, err
	}
	nextRise, _, err := RiseSetForDate(lat, lon, date.AddDate(0, 0, 1))
	if err != nil {
		return 0, err
	}
	return (24 + nextRise) - set, nil
}
