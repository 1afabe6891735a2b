package sun

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/thurmanmarka/almanac/internal/timeutil"
)

const (
	londonLat = 51.5
	londonLon = 0.0
)

func TestIsLightTime(t *testing.T) {
	tests := []struct {
		hour, min int
		want      bool
	}{
		{3, 0, false},
		{7, 0, true},
		{12, 0, true},
		{18, 0, true},
		{19, 0, false},
		{23, 30, false},
	}

	for _, tt := range tests {
		ts := time.Date(2024, time.March, 20, tt.hour, tt.min, 0, 0, time.UTC)
		got, err := IsLightTime(londonLat, londonLon, ts)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("IsLightTime(%02d:%02d) = %v, want %v", tt.hour, tt.min, got, tt.want)
		}
	}
}

func TestSunHourLength(t *testing.T) {
	noon := time.Date(2024, time.June, 21, 12, 0, 0, 0, time.UTC)
	night := time.Date(2024, time.June, 21, 23, 0, 0, 0, time.UTC)

	day, err := SunHourLength(londonLat, londonLon, noon)
	if err != nil {
		t.Fatal(err)
	}
	dark, err := SunHourLength(londonLat, londonLon, night)
	if err != nil {
		t.Fatal(err)
	}

	// Midsummer: long day hours, short night hours.
	if day <= 1.3 || day >= 1.45 {
		t.Errorf("day sun hour = %.3fh, want ~1.37", day)
	}
	if dark <= 0.55 || dark >= 0.7 {
		t.Errorf("night sun hour = %.3fh, want ~0.63", dark)
	}
}

func TestSunHour(t *testing.T) {
	tests := []struct {
		name   string
		hour   int
		minute int
		lo, hi float64
	}{
		{"morning", 8, 0, 12, 14.5},
		{"noon", 12, 0, 17.5, 18.2},
		{"late afternoon", 17, 0, 22.5, 23.5},
		{"evening", 22, 0, 3.5, 4.2},
		{"small hours", 3, 0, 8.6, 9.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := time.Date(2024, time.March, 20, tt.hour, tt.minute, 0, 0, time.UTC)
			got, err := SunHour(londonLat, londonLon, ts)
			if err != nil {
				t.Fatal(err)
			}
			if got < tt.lo || got > tt.hi {
				t.Errorf("SunHour(%02d:%02d) = %.3f, want in [%v, %v]", tt.hour, tt.minute, got, tt.lo, tt.hi)
			}
		})
	}
}

func TestSunHour_DaylightIdentity(t *testing.T) {
	ts := time.Date(2024, time.August, 3, 10, 20, 0, 0, time.FixedZone("BST", 3600))

	rise, set, err := RiseSetForDate(londonLat, londonLon, ts)
	if err != nil {
		t.Fatal(err)
	}
	got, err := SunHour(londonLat, londonLon, ts)
	if err != nil {
		t.Fatal(err)
	}

	want := (timeutil.HoursOfDay(ts)-rise)/((set-rise)/HoursPerSpan) + HoursPerSpan
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("SunHour = %v, want %v", got, want)
	}
}

func TestSunHour_RangeOverDay(t *testing.T) {
	start := time.Date(2024, time.October, 9, 0, 0, 0, 0, time.UTC)
	for m := 0; m < 24*60; m += 10 {
		ts := start.Add(time.Duration(m) * time.Minute)

		// Skip the minutes around sunrise where the dark span of the
		// previous night and the next one differ in length.
		rise, _, err := RiseSetForDate(londonLat, londonLon, ts)
		if err != nil {
			t.Fatal(err)
		}
		if h := timeutil.HoursOfDay(ts); math.Abs(h-rise) < 0.25 {
			continue
		}

		got, err := SunHour(londonLat, londonLon, ts)
		if err != nil {
			t.Fatal(err)
		}
		if got < 0 || got >= 24 {
			t.Fatalf("%s: SunHour = %v, outside [0,24)", ts.Format("15:04"), got)
		}

		light, err := IsLightTime(londonLat, londonLon, ts)
		if err != nil {
			t.Fatal(err)
		}
		if light != (got >= HoursPerSpan) {
			t.Fatalf("%s: SunHour = %v but IsLightTime = %v", ts.Format("15:04"), got, light)
		}
	}
}

func TestSunDay(t *testing.T) {
	tests := []struct {
		name string
		ts   time.Time
		want int
	}{
		{"Wednesday noon", time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC), 4},
		{"Wednesday after sunset", time.Date(2024, time.March, 20, 20, 0, 0, 0, time.UTC), 5},
		{"Friday noon", time.Date(2024, time.March, 22, 12, 0, 0, 0, time.UTC), 6},
		{"Friday after sunset", time.Date(2024, time.March, 22, 20, 0, 0, 0, time.UTC), 0},
		{"Saturday noon", time.Date(2024, time.March, 23, 12, 0, 0, 0, time.UTC), 0},
		{"Saturday after sunset", time.Date(2024, time.March, 23, 20, 0, 0, 0, time.UTC), 1},
		{"Sunday before sunrise", time.Date(2024, time.March, 24, 4, 0, 0, 0, time.UTC), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SunDay(londonLat, londonLon, tt.ts)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("SunDay = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReckoning_PolarErrors(t *testing.T) {
	ts := time.Date(2024, time.June, 21, 12, 0, 0, 0, time.UTC)

	if _, err := SunHour(70, 25, ts); !errors.Is(err, ErrNoRiseNoSet) {
		t.Errorf("SunHour err = %v, want ErrNoRiseNoSet", err)
	}
	if _, err := SunDay(70, 25, ts); !errors.Is(err, ErrNoRiseNoSet) {
		t.Errorf("SunDay err = %v, want ErrNoRiseNoSet", err)
	}
	if _, err := IsLightTime(70, 25, ts); !errors.Is(err, ErrNoRiseNoSet) {
		t.Errorf("IsLightTime err = %v, want ErrNoRiseNoSet", err)
	}
}
