package almanac_test

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/thurmanmarka/almanac"
	"github.com/thurmanmarka/almanac/locale"
)

// ExampleObservation_SunRiseSet demonstrates computing sunrise and sunset
// for a location.
func ExampleObservation_SunRiseSet() {
	nyc := almanac.Coordinates{
		Lat: 40.7128,  // New York City latitude
		Lon: -74.0060, // New York City longitude
	}

	// The wall clock and zone offset come from the timestamp itself.
	locNY, _ := time.LoadLocation("America/New_York")
	obs, err := almanac.NewObservation(time.Date(2025, time.November, 30, 12, 0, 0, 0, locNY), nyc)
	if err != nil {
		panic(err)
	}

	rs, err := obs.SunRiseSet()
	if err != nil {
		panic(err)
	}

	fmt.Println("Sunrise:", rs.Rise.Format(time.RFC3339))
	fmt.Println("Sunset:", rs.Set.Format(time.RFC3339))
	// No // Output: block so model refinements don't break the example.
}

// ExampleObservation_SunHour demonstrates the planetary hour reckoning.
func ExampleObservation_SunHour() {
	london := almanac.Coordinates{Lat: 51.5, Lon: 0}
	obs := almanac.At(time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC), london)

	hour, _ := obs.SunHour()
	day, _ := obs.SunDay()
	planet, _ := obs.SunHourPlanet()

	fmt.Printf("sun day %d, sun hour %d, ruled by %s\n", day, int(hour), planet)
	// Output: sun day 4, sun hour 17, ruled by Saturn
}

// ExampleObservation_MoonPhase demonstrates moon phase and illumination.
func ExampleObservation_MoonPhase() {
	obs := almanac.At(time.Date(2023, time.February, 5, 18, 0, 0, 0, time.UTC), almanac.Coordinates{})

	mp := obs.MoonPhase()
	fmt.Printf("%s, %d%% illuminated\n", mp.Name, mp.Illumination)
	// Output: Full Moon, 100% illuminated
}

// ExampleObservation_Zodiac demonstrates zodiac lookup with a name table.
func ExampleObservation_Zodiac() {
	obs := almanac.At(time.Date(2024, time.March, 21, 9, 0, 0, 0, time.UTC), almanac.Coordinates{})

	tropical, _ := obs.Zodiac("Tropical")
	siderial, _ := obs.Zodiac("Siderial")

	names, _ := locale.Default().Lookup("de")
	fmt.Println(names.ZodiacSign(tropical), names.ZodiacSign(siderial))
	// Output: Widder Fische
}

// ExampleHoursToClock demonstrates formatting fractional hours.
func ExampleHoursToClock() {
	c := almanac.HoursToClock(-1.25, almanac.DefaultHourBase)
	fmt.Printf("%02d:%02d\n", c.Hours, c.Minutes)
	// Output: 22:45
}

func TestNewObservation(t *testing.T) {
	ts := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		c       almanac.Coordinates
		wantErr bool
	}{
		{"origin", almanac.Coordinates{}, false},
		{"limits", almanac.Coordinates{Lat: -90, Lon: 180}, false},
		{"lat too big", almanac.Coordinates{Lat: 90.5}, true},
		{"lon too small", almanac.Coordinates{Lon: -181}, true},
		{"NaN", almanac.Coordinates{Lat: math.NaN()}, true},
		{"Inf", almanac.Coordinates{Lon: math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs, err := almanac.NewObservation(ts, tt.c)
			if tt.wantErr {
				if !errors.Is(err, almanac.ErrInvalidCoordinates) {
					t.Errorf("err = %v, want ErrInvalidCoordinates", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewObservation: %v", err)
			}
			if !obs.Time().Equal(ts) || obs.Coordinates() != tt.c {
				t.Errorf("observation = %v %+v", obs.Time(), obs.Coordinates())
			}
		})
	}
}

func TestObservation_TimeScales(t *testing.T) {
	obs := almanac.At(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), almanac.Coordinates{})

	if got := obs.DayNumber(); got != 1 {
		t.Errorf("DayNumber = %v, want 1", got)
	}
	if got := obs.DayNumberAt(12); got != 1.5 {
		t.Errorf("DayNumberAt(12) = %v, want 1.5", got)
	}
	if got := obs.JulianDayNumber() - obs.DayNumber(); got != 2451543.5 {
		t.Errorf("JD - DN = %v, want 2451543.5", got)
	}
	if lst := obs.LocalSidereal(); lst < 0 || lst >= 24 {
		t.Errorf("LocalSidereal = %v, outside [0,24)", lst)
	}
	if a, b := obs.LocalSidereal(), obs.LocalSiderealAt(0); a != b {
		t.Errorf("LocalSidereal = %v, LocalSiderealAt(0) = %v", a, b)
	}

	ist := time.FixedZone("IST", 5*3600+1800)
	if got := obs.WithTime(time.Date(2024, time.May, 1, 8, 0, 0, 0, ist)).UTCOffset(); got != 5.5 {
		t.Errorf("UTCOffset = %v, want 5.5", got)
	}

	// Calendar fields are read on the timestamp's own wall clock.
	local := time.Date(2024, time.March, 20, 1, 0, 0, 0, time.FixedZone("X", 3*3600))
	if got, want := almanac.At(local, almanac.Coordinates{}).DayNumber(), 8846.0+1.0/24; math.Abs(got-want) > 1e-9 {
		t.Errorf("DayNumber on local wall clock = %v, want %v", got, want)
	}
}

func TestObservation_AddDays(t *testing.T) {
	obs := almanac.At(time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC), almanac.Coordinates{Lat: 10, Lon: 20})

	prev := obs.AddDays(-1)
	if prev.Time().Day() != 29 || prev.Time().Month() != time.February {
		t.Errorf("AddDays(-1) = %v", prev.Time())
	}
	if prev.Coordinates() != obs.Coordinates() {
		t.Error("AddDays changed coordinates")
	}
	if got := obs.DayNumber() - prev.DayNumber(); math.Abs(got-1) > 1e-9 {
		t.Errorf("day number step = %v, want 1", got)
	}
}

func TestZodiac(t *testing.T) {
	obs := almanac.At(time.Date(2024, time.January, 20, 12, 0, 0, 0, time.UTC), almanac.Coordinates{})

	tropical, err := obs.TropicalZodiac()
	if err != nil || tropical != 9 {
		t.Errorf("TropicalZodiac = %d, %v; want 9", tropical, err)
	}
	siderial, err := obs.SiderialZodiac()
	if err != nil || siderial != 9 {
		t.Errorf("SiderialZodiac = %d, %v; want 9", siderial, err)
	}

	if _, err := obs.Zodiac("Chinese"); !errors.Is(err, almanac.ErrUnknownZodiacStyle) {
		t.Errorf("Zodiac(Chinese) err = %v, want ErrUnknownZodiacStyle", err)
	}
	if s, err := almanac.ParseZodiacStyle("siderial"); err != nil || s != almanac.Siderial {
		t.Errorf("ParseZodiacStyle = %v, %v", s, err)
	}
}

func TestWeekdayPlanet(t *testing.T) {
	// 2024-03-20 is a Wednesday.
	obs := almanac.At(time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC), almanac.Coordinates{})
	if got := obs.WeekdayPlanet(); got != locale.Mercury {
		t.Errorf("WeekdayPlanet = %v, want Mercury", got)
	}
}
