package almanac

import (
	"time"

	"github.com/thurmanmarka/almanac/internal/sun"
	"github.com/thurmanmarka/almanac/internal/timeutil"
	"github.com/thurmanmarka/almanac/locale"
)

// SunTimes is the raw rise/set solution: the UTC hour of meridian transit
// and the hour angle of the horizon crossing, both in hours. HourAngle is
// NaN on dates without a rise or set.
type SunTimes struct {
	MeridianTime float64
	HourAngle    float64
}

// RiseSet holds sunrise and sunset as instants in the observation's
// location. Either may fall on the neighbouring calendar day.
type RiseSet struct {
	Rise time.Time
	Set  time.Time
}

// SunTimes solves the rise/set hour angle for the observation's date.
func (o Observation) SunTimes() SunTimes {
	st := sun.TimesForDate(o.coords.Lat, o.coords.Lon, o.t)
	return SunTimes{
		MeridianTime: st.Meridian,
		HourAngle:    st.HourAngle,
	}
}

// Sunrise returns sunrise in civil hours on the observation's wall clock.
func (o Observation) Sunrise() (float64, error) {
	rise, _, err := sun.RiseSetForDate(o.coords.Lat, o.coords.Lon, o.t)
	if err != nil {
		return 0, sunError("Sunrise", err)
	}
	return rise, nil
}

// Sunset returns sunset in civil hours on the observation's wall clock.
func (o Observation) Sunset() (float64, error) {
	_, set, err := sun.RiseSetForDate(o.coords.Lat, o.coords.Lon, o.t)
	if err != nil {
		return 0, sunError("Sunset", err)
	}
	return set, nil
}

// SunRiseSet returns sunrise and sunset as instants on the observation's
// calendar date, rounded to the second.
func (o Observation) SunRiseSet() (RiseSet, error) {
	rise, set, err := sun.RiseSetForDate(o.coords.Lat, o.coords.Lon, o.t)
	if err != nil {
		return RiseSet{}, sunError("SunRiseSet", err)
	}
	return RiseSet{
		Rise: timeutil.FractionalHoursToTime(o.t, rise),
		Set:  timeutil.FractionalHoursToTime(o.t, set),
	}, nil
}

// IsLightTime reports whether the wall clock is in [sunrise, sunset).
func (o Observation) IsLightTime() (bool, error) {
	light, err := sun.IsLightTime(o.coords.Lat, o.coords.Lon, o.t)
	if err != nil {
		return false, sunError("IsLightTime", err)
	}
	return light, nil
}

// IsDarkTime is the negation of IsLightTime.
func (o Observation) IsDarkTime() (bool, error) {
	light, err := sun.IsLightTime(o.coords.Lat, o.coords.Lon, o.t)
	if err != nil {
		return false, sunError("IsDarkTime", err)
	}
	return !light, nil
}

// LightDuration returns hours from sunrise to sunset.
func (o Observation) LightDuration() (float64, error) {
	d, err := sun.LightDuration(o.coords.Lat, o.coords.Lon, o.t)
	if err != nil {
		return 0, sunError("LightDuration", err)
	}
	return d, nil
}

// DarkDuration returns hours from sunset to the next day's sunrise.
func (o Observation) DarkDuration() (float64, error) {
	d, err := sun.DarkDuration(o.coords.Lat, o.coords.Lon, o.t)
	if err != nil {
		return 0, sunError("DarkDuration", err)
	}
	return d, nil
}

// SunHourLength returns the length in hours of one planetary hour at the
// observation: a twelfth of the current light or dark span.
func (o Observation) SunHourLength() (float64, error) {
	l, err := sun.SunHourLength(o.coords.Lat, o.coords.Lon, o.t)
	if err != nil {
		return 0, sunError("SunHourLength", err)
	}
	return l, nil
}

// SunHour returns the fractional planetary hour: [0, 12) counts the dark
// span from sunset and [12, 24) the light span from sunrise.
func (o Observation) SunHour() (float64, error) {
	h, err := sun.SunHour(o.coords.Lat, o.coords.Lon, o.t)
	if err != nil {
		return 0, sunError("SunHour", err)
	}
	return h, nil
}

// SunDay returns the day of the sun week, 0 through 6. The week begins at
// Friday sundown, so Saturday daytime is also day 0.
func (o Observation) SunDay() (int, error) {
	d, err := sun.SunDay(o.coords.Lat, o.coords.Lon, o.t)
	if err != nil {
		return 0, sunError("SunDay", err)
	}
	return d, nil
}

// SunHourPlanet returns the planet ruling the current sun hour.
func (o Observation) SunHourPlanet() (locale.Planet, error) {
	day, err := o.SunDay()
	if err != nil {
		return 0, err
	}
	hour, err := o.SunHour()
	if err != nil {
		return 0, err
	}
	return locale.SunHourPlanet(day, hour), nil
}

// WeekdayPlanet returns the planet ruling the civil weekday.
func (o Observation) WeekdayPlanet() locale.Planet {
	return locale.WeekdayPlanet(time.Weekday(timeutil.Weekday(o.t)))
}
