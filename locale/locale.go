// Package locale provides month, weekday, planet and zodiac names for the
// indices produced by the almanac package.
//
// Tables are plain values. Callers pick one per lookup, usually through a
// Catalog matched against a BCP 47 language tag.
package locale

import (
	"math"
	"time"

	"golang.org/x/text/language"
)

// Planet indexes the seven classical planets in weekday order: Sunday is
// ruled by the Sun, Monday by the Moon and so on.
type Planet int

const (
	Sun Planet = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
)

func (p Planet) String() string {
	return English.Planet(p)
}

// Chaldean is the order in which planets rule successive sun hours,
// starting from the first hour of the sun week.
var Chaldean = [7]Planet{Saturn, Jupiter, Mars, Sun, Venus, Mercury, Moon}

// WeekdayPlanet returns the planet that rules a civil weekday.
func WeekdayPlanet(d time.Weekday) Planet {
	return Planet(d)
}

// SunHourPlanet returns the planet ruling the given sun hour of the given
// sun day. The hour index floor(sunDay*24 + sunHour - 1) is taken modulo
// seven, so the first fraction of the sun week wraps to the last planet.
func SunHourPlanet(sunDay int, sunHour float64) Planet {
	i := int(math.Floor(float64(sunDay)*24+sunHour-1)) % len(Chaldean)
	if i < 0 {
		i += len(Chaldean)
	}
	return Chaldean[i]
}

// Table is the set of names for one language.
type Table struct {
	Tag           language.Tag
	Months        [12]string
	MonthsShort   [12]string
	Weekdays      [7]string
	WeekdaysShort [7]string
	Planets       [7]string
	Zodiac        [12]string
}

// Month returns the name of m, or "" if m is not a month.
func (t *Table) Month(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return t.Months[m-1]
}

// MonthShort returns the abbreviated name of m.
func (t *Table) MonthShort(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return t.MonthsShort[m-1]
}

// Weekday returns the name of d.
func (t *Table) Weekday(d time.Weekday) string {
	if d < time.Sunday || d > time.Saturday {
		return ""
	}
	return t.Weekdays[d]
}

// WeekdayShort returns the abbreviated name of d.
func (t *Table) WeekdayShort(d time.Weekday) string {
	if d < time.Sunday || d > time.Saturday {
		return ""
	}
	return t.WeekdaysShort[d]
}

// Planet returns the name of p.
func (t *Table) Planet(p Planet) string {
	if p < Sun || p > Saturn {
		return ""
	}
	return t.Planets[p]
}

// ZodiacSign returns the name of sign i, 0 being Aries.
func (t *Table) ZodiacSign(i int) string {
	if i < 0 || i >= len(t.Zodiac) {
		return ""
	}
	return t.Zodiac[i]
}
