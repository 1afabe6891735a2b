package almanac

import (
	"math"
	"testing"
	"time"
)

var greenwich = Coordinates{Lat: 51.5, Lon: 0}

func TestMoonPosition_Meeus47a(t *testing.T) {
	obs := At(time.Date(1992, time.April, 12, 0, 0, 0, 0, time.UTC), greenwich)

	if jd := obs.JulianDayNumber(); jd != 2448724.5 {
		t.Fatalf("JulianDayNumber = %v, want 2448724.5", jd)
	}

	p := obs.MoonPosition()
	if math.Abs(p.Longitude-133.162655) > 1e-4 {
		t.Errorf("Longitude = %.6f, want 133.162655", p.Longitude)
	}
	if math.Abs(p.Latitude - -3.229126) > 1e-4 {
		t.Errorf("Latitude = %.6f, want -3.229126", p.Latitude)
	}
	if p.Distance != 368410 {
		t.Errorf("Distance = %v, want 368410", p.Distance)
	}
	if math.Abs(p.RA().Hour()-8.97891) > 0.005 {
		t.Errorf("RA = %.5fh, want ~8.97891h", p.RA().Hour())
	}
	if math.Abs(p.Dec().Deg()-13.7687) > 0.05 {
		t.Errorf("Dec = %.4f°, want ~13.7687°", p.Dec().Deg())
	}
}

func TestMoonPosition_WholeHour(t *testing.T) {
	a := At(time.Date(2024, time.March, 20, 21, 0, 0, 0, time.UTC), greenwich)
	b := At(time.Date(2024, time.March, 20, 21, 59, 0, 0, time.UTC), greenwich)

	if a.MoonPosition() != b.MoonPosition() {
		t.Error("position changed within the civil hour")
	}
}

func TestMoonAltitudeAzimuth(t *testing.T) {
	obs := At(time.Date(2024, time.March, 20, 21, 0, 0, 0, time.UTC), greenwich)

	h := obs.MoonAltitudeAzimuth()
	if math.Abs(h.Altitude-59.891) > 0.1 {
		t.Errorf("Altitude = %.3f, want ~59.891", h.Altitude)
	}
	if math.Abs(h.Azimuth-174.821) > 0.1 {
		t.Errorf("Azimuth = %.3f, want ~174.821", h.Azimuth)
	}
	if math.Abs(h.Alt().Deg()-h.Altitude) > 1e-9 || math.Abs(h.Az().Deg()-h.Azimuth) > 1e-9 {
		t.Errorf("unit conversion mismatch: %v %v", h.Alt(), h.Az())
	}
}

func TestMoonPhasePredicates(t *testing.T) {
	tests := []struct {
		name   string
		ts     time.Time
		ratio  int
		waxing bool
		full   bool
		isNew  bool
		phase  string
	}{
		{"new", time.Date(2023, time.January, 21, 20, 0, 0, 0, time.UTC), 0, false, false, true, "New Moon"},
		{"crescent", time.Date(2023, time.January, 25, 12, 0, 0, 0, time.UTC), 18, true, false, false, "Waxing Crescent"},
		{"waxing gibbous", time.Date(2023, time.January, 29, 12, 0, 0, 0, time.UTC), 59, true, false, false, "Waxing Gibbous"},
		{"full", time.Date(2023, time.February, 5, 18, 0, 0, 0, time.UTC), 100, true, true, false, "Full Moon"},
		{"waning gibbous", time.Date(2023, time.February, 10, 12, 0, 0, 0, time.UTC), 81, false, false, false, "Waning Gibbous"},
		{"last quarter", time.Date(2023, time.February, 13, 12, 0, 0, 0, time.UTC), 52, false, false, false, "Last Quarter"},
		{"waning crescent", time.Date(2023, time.February, 17, 12, 0, 0, 0, time.UTC), 11, false, false, false, "Waning Crescent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := At(tt.ts, greenwich)

			if got := obs.MoonIlluminationRatio(); got != tt.ratio {
				t.Errorf("MoonIlluminationRatio = %d, want %d", got, tt.ratio)
			}
			if got := obs.IsMoonWaxing(); got != tt.waxing {
				t.Errorf("IsMoonWaxing = %v, want %v", got, tt.waxing)
			}
			if got := obs.IsMoonWaning(); got == tt.waxing {
				t.Errorf("IsMoonWaning = %v, want %v", got, !tt.waxing)
			}
			if got := obs.IsMoonFull(); got != tt.full {
				t.Errorf("IsMoonFull = %v, want %v", got, tt.full)
			}
			if got := obs.IsMoonNew(); got != tt.isNew {
				t.Errorf("IsMoonNew = %v, want %v", got, tt.isNew)
			}

			mp := obs.MoonPhase()
			if mp.Name != tt.phase {
				t.Errorf("MoonPhase().Name = %q, want %q", mp.Name, tt.phase)
			}
			if mp.Illumination != tt.ratio || mp.Waxing != tt.waxing {
				t.Errorf("MoonPhase() = %+v", mp)
			}
			if mp.PhaseAngle != obs.MoonPhaseAngle() {
				t.Errorf("PhaseAngle = %v, want %v", mp.PhaseAngle, obs.MoonPhaseAngle())
			}
		})
	}
}

func TestClassifyMoonPhaseName(t *testing.T) {
	tests := []struct {
		f      float64
		waxing bool
		want   string
	}{
		{0.001, true, "New Moon"},
		{0.995, false, "Full Moon"},
		{0.5, true, "First Quarter"},
		{0.53, false, "Last Quarter"},
		{0.2, true, "Waxing Crescent"},
		{0.2, false, "Waning Crescent"},
		{0.8, true, "Waxing Gibbous"},
		{0.8, false, "Waning Gibbous"},
	}

	for _, tt := range tests {
		if got := classifyMoonPhaseName(tt.f, tt.waxing); got != tt.want {
			t.Errorf("classifyMoonPhaseName(%v, %v) = %q, want %q", tt.f, tt.waxing, got, tt.want)
		}
	}
}
