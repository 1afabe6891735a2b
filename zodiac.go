package almanac

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/thurmanmarka/almanac/internal/zodiac"
)

// ZodiacStyle selects the zodiac range table.
type ZodiacStyle = zodiac.Style

// Zodiac styles.
const (
	Tropical = zodiac.Tropical
	Siderial = zodiac.Siderial
)

var (
	// ErrUnknownZodiacStyle is returned for a style name without a table.
	ErrUnknownZodiacStyle = zodiac.ErrUnknownStyle

	// ErrZodiacGap is returned when no range covers the observation's
	// date. The built-in tables cover every calendar day.
	ErrZodiacGap = zodiac.ErrGap
)

// ParseZodiacStyle accepts "Tropical" or "Siderial" in any case.
func ParseZodiacStyle(name string) (ZodiacStyle, error) {
	return zodiac.ParseStyle(name)
}

// Zodiac returns the sign index (0 = Aries) of the observation's calendar
// day under the named style.
func (o Observation) Zodiac(style string) (int, error) {
	s, err := zodiac.ParseStyle(style)
	if err != nil {
		return 0, err
	}
	return o.ZodiacFor(s)
}

// ZodiacFor is Zodiac with a parsed style.
func (o Observation) ZodiacFor(style ZodiacStyle) (int, error) {
	i, err := zodiac.Classify(style, o.t.Month(), o.t.Day())
	if errors.Is(err, zodiac.ErrGap) {
		zap.L().Debug("no zodiac range for date",
			zap.Stringer("style", style),
			zap.Time("date", o.t),
		)
	}
	if err != nil {
		return 0, fmt.Errorf("almanac: zodiac: %w", err)
	}
	return i, nil
}

// TropicalZodiac returns the tropical sign index.
func (o Observation) TropicalZodiac() (int, error) {
	return o.ZodiacFor(Tropical)
}

// SiderialZodiac returns the siderial sign index.
func (o Observation) SiderialZodiac() (int, error) {
	return o.ZodiacFor(Siderial)
}
