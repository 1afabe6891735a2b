// Package timeutil converts civil timestamps into the day counts and hour
// values consumed by the solar and lunar models.
//
// A civil timestamp is a time.Time read through its own Location: year,
// month, day and hour are the local calendar fields, exactly as a wall clock
// shows them. Nothing here converts to UTC.
package timeutil

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"

	"github.com/thurmanmarka/almanac/internal/angle"
)

// DayNumberEpochJD is the Julian Day of day number 0 (2000 January 0.0).
const DayNumberEpochJD = 2451543.5

// DayNumber returns the continuous day count since 2000 January 0.0 for the
// calendar date of t at the given hour of day.
func DayNumber(t time.Time, hours float64) float64 {
	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	n := 367*y -
		math.Floor(7*(y+math.Floor((m+9)/12))/4) +
		math.Floor(275*m/9) +
		d - 730530
	return n + hours/24.0
}

// CivilHour is the timestamp's own hour: the whole wall-clock hour.
func CivilHour(t time.Time) float64 {
	return float64(t.Hour())
}

// JulianDayNumber is DayNumber at the civil hour, shifted to the Julian
// Day scale.
func JulianDayNumber(t time.Time) float64 {
	return DayNumber(t, CivilHour(t)) + DayNumberEpochJD
}

// LocalSidereal returns local sidereal time in hours [0,24) for the calendar
// date of t at the given hour and observer longitude (east positive).
func LocalSidereal(t time.Time, hours, lon float64) float64 {
	d := DayNumber(t, hours)
	lst := 98.9818 + 0.985647352*d + hours*15 + lon
	return angle.Rev(lst) / 15
}

// UTCOffsetHours returns the signed offset of t's zone, in hours ahead of UTC.
func UTCOffsetHours(t time.Time) float64 {
	_, offset := t.Zone()
	return float64(offset) / 3600.0
}

// HoursOfDay returns the wall-clock time of t as fractional hours. Seconds
// are ignored.
func HoursOfDay(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60.0
}

// Weekday returns the civil day of week of t, 0 = Sunday .. 6 = Saturday.
func Weekday(t time.Time) int {
	jd := julian.CalendarGregorianToJD(t.Year(), int(t.Month()), float64(t.Day()))
	return julian.DayOfWeek(jd)
}

// Clock is a whole hours and minutes reading.
type Clock struct {
	Hours   int
	Minutes int
}

// DefaultHourBase is the number of minutes in an ordinary hour.
const DefaultHourBase = 60.0

// HoursToClock wraps h into [0,24) and splits it into hours and minutes,
// where one hour holds base minutes (DefaultHourBase when base <= 0).
// Minutes are rounded and carried into the hour.
func HoursToClock(h, base float64) Clock {
	if base <= 0 {
		base = DefaultHourBase
	}

	hours := Normalize24(h)
	minutes := math.Round(base * (hours - math.Floor(hours)))
	hours = math.Floor(hours)
	if minutes >= base {
		hours++
		minutes -= base
	}
	if hours >= 24 {
		hours -= 24
	}

	return Clock{Hours: int(hours), Minutes: int(minutes)}
}

// Hours24 converts the reading back into fractional hours of a 60 minute hour.
func (c Clock) Hours24() float64 {
	return float64(c.Hours) + float64(c.Minutes)/60.0
}

// Normalize24 wraps an hour value into [0,24).
func Normalize24(h float64) float64 {
	h = math.Mod(h, 24.0)
	if h < 0 {
		h += 24.0
	}
	if h >= 24.0 {
		h -= 24.0
	}
	return h
}

// FractionalHoursToTime places h, in hours since local midnight, on the
// calendar date of date in date's Location. h may be negative or exceed 24;
// time.Add handles the rollover.
func FractionalHoursToTime(date time.Time, h float64) time.Time {
	year, month, day := date.Date()
	base := time.Date(year, month, day, 0, 0, 0, 0, date.Location())

	// Round to the nearest second to avoid nanosecond noise.
	sec := int64(math.Round(h * 3600))

	return base.Add(time.Duration(sec) * time.Second)
}
