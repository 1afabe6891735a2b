// Package zodiac maps a calendar day onto one of the twelve signs using
// fixed day-of-year ranges.
//
// A day is encoded as its period month*100 + day. Ranges that run past the
// end of December continue at 13xx, 14xx and so on, and a period below the
// first lower bound of a table is shifted by 1200 into that tail.
package zodiac

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Signs is the number of zodiac signs.
const Signs = 12

var (
	// ErrUnknownStyle is returned for a style without a range table.
	ErrUnknownStyle = errors.New("unknown zodiac style")
	// ErrGap is returned when no range covers a period. The tables cover
	// every calendar day, so this means the input day is not a real date.
	ErrGap = errors.New("no zodiac range covers date")
)

// Style selects a range table.
type Style int

const (
	Tropical Style = iota
	Siderial
)

// Ranges holds inclusive [lo, hi] periods, indexed by sign (0 = Aries).
type Ranges [Signs][2]int

var tables = map[Style]Ranges{
	Tropical: {
		{321, 420}, {421, 521}, {522, 621}, {622, 722}, {723, 822}, {823, 923},
		{924, 1023}, {1024, 1122}, {1123, 1221}, {1222, 1320}, {1321, 1419}, {1420, 1520},
	},
	Siderial: {
		{415, 515}, {516, 615}, {616, 715}, {716, 815}, {816, 915}, {916, 1015},
		{1016, 1115}, {1116, 1215}, {1216, 1314}, {1315, 1414}, {1415, 1514}, {1515, 1614},
	},
}

func (s Style) String() string {
	switch s {
	case Tropical:
		return "Tropical"
	case Siderial:
		return "Siderial"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle accepts a style name, ignoring case. "sidereal" is accepted as
// an alias of Siderial.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tropical":
		return Tropical, nil
	case "siderial", "sidereal":
		return Siderial, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
}

// RangesFor returns the range table for style.
func RangesFor(style Style) (Ranges, error) {
	r, ok := tables[style]
	if !ok {
		return Ranges{}, fmt.Errorf("%w: %v", ErrUnknownStyle, style)
	}
	return r, nil
}

// Period encodes a calendar day for lookup in r.
func (r Ranges) Period(month time.Month, day int) int {
	p := int(month)*100 + day
	if p < r[0][0] {
		p += 1200
	}
	return p
}

// Classify returns the sign index (0 = Aries) for the given calendar day.
func Classify(style Style, month time.Month, day int) (int, error) {
	r, err := RangesFor(style)
	if err != nil {
		return 0, err
	}

	p := r.Period(month, day)
	for i, span := range r {
		if span[0] <= p && p <= span[1] {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s %02d-%02d (period %d)", ErrGap, style, int(month), day, p)
}
