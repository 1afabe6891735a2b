package sun

import (
	"time"

	"github.com/thurmanmarka/almanac/internal/timeutil"
)

// HoursPerSpan is the number of sun hours in the light span and in the dark
// span of a day.
const HoursPerSpan = 12

// IsLightTime reports whether the wall-clock time of t lies in
// [sunrise, sunset).
func IsLightTime(lat, lon float64, t time.Time) (bool, error) {
	rise, set, err := RiseSetForDate(lat, lon, t)
	if err != nil {
		return false, err
	}
	h := timeutil.HoursOfDay(t)
	return rise <= h && h < set, nil
}

// SunHourLength is one twelfth of the light span when t is in daylight and
// one twelfth of the following dark span otherwise.
func SunHourLength(lat, lon float64, t time.Time) (float64, error) {
	light, err := IsLightTime(lat, lon, t)
	if err != nil {
		return 0, err
	}

	var duration float64
	if light {
		duration, err = LightDuration(lat, lon, t)
	} else {
		duration, err = DarkDuration(lat, lon, t)
	}
	if err != nil {
		return 0, err
	}
	return duration / HoursPerSpan, nil
}

// SunHour returns the fractional planetary hour of t: [0,12) counts the dark
// span from sunset, [12,24) counts the light span from sunrise.
//
// Before sunrise the anchor is the previous calendar day's sunset and the
// wall clock is taken as 24 hours later. The hour length always comes from
// SunHourLength for t itself.
func SunHour(lat, lon float64, t time.Time) (float64, error) {
	hour := timeutil.HoursOfDay(t)

	rise, set, err := RiseSetForDate(lat, lon, t)
	if err != nil {
		return 0, err
	}
	length, err := SunHourLength(lat, lon, t)
	if err != nil {
		return 0, err
	}

	if rise <= hour && hour < set {
		return (hour-rise)/length + HoursPerSpan, nil
	}

	anchor := set
	if hour < rise {
		hour += 24
		_, anchor, err = RiseSetForDate(lat, lon, t.AddDate(0, 0, -1))
		if err != nil {
			return 0, err
		}
	}
	return (hour - anchor) / length, nil
}

// SunDay returns the day of the sun week, which starts on Saturday. The
// civil weekday (0 = Sunday) moves forward once at sunset and once more
// unconditionally, so Friday after sundown and Saturday before sundown are
// both day 0.
func SunDay(lat, lon float64, t time.Time) (int, error) {
	_, set, err := RiseSetForDate(lat, lon, t)
	if err != nil {
		return 0, err
	}

	weekDay := timeutil.Weekday(t)
	if timeutil.HoursOfDay(t) >= set {
		weekDay = nextWeekday(weekDay)
	}
	weekDay = nextWeekday(weekDay)
	return weekDay, nil
}

func nextWeekday(d int) int {
	if d+1 > 6 {
		return 0
	}
	return d + 1
}
