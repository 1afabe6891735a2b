package almanac

import (
	"math"
	"time"

	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/almanac/internal/moon"
)

// LunarPosition is the Moon's geocentric position.
type LunarPosition struct {
	RightAscension float64 // hours, [0, 24)
	Declination    float64 // degrees
	Distance       float64 // km, rounded
	Longitude      float64 // ecliptic longitude, degrees [0, 360)
	Latitude       float64 // ecliptic latitude, degrees
}

// RA returns the right ascension as a unit.RA.
func (p LunarPosition) RA() unit.RA {
	return unit.RAFromHour(p.RightAscension)
}

// Dec returns the declination as a unit.Angle.
func (p LunarPosition) Dec() unit.Angle {
	return unit.AngleFromDeg(p.Declination)
}

// MoonPhase summarizes the Moon's phase at an observation.
type MoonPhase struct {
	Time         time.Time // the observation timestamp
	PhaseAngle   float64   // degrees [0, 360), 0 = full, 180 = new
	Fraction     float64   // illuminated fraction [0, 1]
	Illumination int       // rounded percentage [0, 100]
	Waxing       bool      // illumination grew since the previous day
	Name         string    // e.g. "New Moon", "Waxing Crescent", "First Quarter", ...
}

// MoonPosition returns the Moon's position at the observation's whole
// civil hour.
func (o Observation) MoonPosition() LunarPosition {
	p := moon.PositionAt(o.JulianDayNumber())
	return LunarPosition{
		RightAscension: p.RA,
		Declination:    p.Dec,
		Distance:       p.Distance,
		Longitude:      p.Longitude,
		Latitude:       p.Latitude,
	}
}

// MoonPhaseAngle returns the phase angle in degrees [0, 360).
func (o Observation) MoonPhaseAngle() float64 {
	return moon.PhaseAngle(o.JulianDayNumber())
}

// MoonIlluminationRatio returns the illuminated percentage of the disk,
// rounded, in [0, 100].
func (o Observation) MoonIlluminationRatio() int {
	return moon.IlluminationRatio(o.JulianDayNumber())
}

// IsMoonWaxing reports whether the illumination ratio one civil day
// earlier is strictly lower. Equal ratios count as waning.
func (o Observation) IsMoonWaxing() bool {
	return o.AddDays(-1).MoonIlluminationRatio() < o.MoonIlluminationRatio()
}

// IsMoonWaning is the negation of IsMoonWaxing.
func (o Observation) IsMoonWaning() bool {
	return !o.IsMoonWaxing()
}

// IsMoonFull reports an illumination ratio above 99.
func (o Observation) IsMoonFull() bool {
	return o.MoonIlluminationRatio() > 99
}

// IsMoonNew reports an illumination ratio below 1.
func (o Observation) IsMoonNew() bool {
	return o.MoonIlluminationRatio() < 1
}

// MoonPhase returns the phase angle, illumination and a phase name.
func (o Observation) MoonPhase() MoonPhase {
	jd := o.JulianDayNumber()
	f := moon.IlluminatedFraction(jd)
	waxing := o.IsMoonWaxing()

	return MoonPhase{
		Time:         o.t,
		PhaseAngle:   moon.PhaseAngle(jd),
		Fraction:     f,
		Illumination: moon.IlluminationRatio(jd),
		Waxing:       waxing,
		Name:         classifyMoonPhaseName(f, waxing),
	}
}

func classifyMoonPhaseName(f float64, waxing bool) string {
	const (
		eps        = 0.01 // near 0 or 1
		quarterTol = 0.05 // fraction window around 0.5
	)

	switch {
	case f < eps:
		return "New Moon"
	case f > 1-eps:
		return "Full Moon"
	case math.Abs(f-0.5) < quarterTol:
		if waxing {
			return "First Quarter"
		}
		return "Last Quarter"
	case f < 0.5:
		if waxing {
			return "Waxing Crescent"
		}
		return "Waning Crescent"
	default:
		if waxing {
			return "Waxing Gibbous"
		}
		return "Waning Gibbous"
	}
}
