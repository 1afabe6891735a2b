package moon

import (
	"math"

	"github.com/thurmanmarka/almanac/internal/angle"
)

// PhaseAngle returns the Moon's phase angle i in [0, 360) at Julian day jd:
// 0 at full moon, 180 at new moon.
func PhaseAngle(jd float64) float64 {
	a := ArgumentsAt(Centuries(jd))

	i := 180 - a.D -
		6.289*angle.Sin(a.Mp) +
		2.100*angle.Sin(a.M) -
		1.274*angle.Sin(2*a.D-a.Mp) -
		0.658*angle.Sin(2*a.D) -
		0.214*angle.Sin(2*a.Mp) -
		0.110*angle.Sin(a.D)
	return angle.Rev(i)
}

// IlluminatedFraction returns the illuminated fraction of the disk, [0, 1].
func IlluminatedFraction(jd float64) float64 {
	return (1 + angle.Cos(PhaseAngle(jd))) / 2
}

// IlluminationRatio returns the illuminated percentage rounded to an
// integer in [0, 100].
func IlluminationRatio(jd float64) int {
	return int(math.Round(100 * IlluminatedFraction(jd)))
}
