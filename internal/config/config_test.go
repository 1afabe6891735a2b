package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"
)

const sitesYAML = `
language: de
zodiac: Siderial
sites:
  - name: london
    latitude: 51.5
    longitude: 0
    timezone: UTC
  - name: Phoenix
    latitude: 33.4484
    longitude: -112.074
    timezone: America/Phoenix
  - name: equator
    latitude: 0
    longitude: 0
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.yaml")
	if err := os.WriteFile(path, []byte(sitesYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Language != "de" || cfg.Zodiac != "Siderial" {
		t.Errorf("Language, Zodiac = %q, %q", cfg.Language, cfg.Zodiac)
	}
	if len(cfg.Sites) != 3 {
		t.Fatalf("len(Sites) = %d, want 3", len(cfg.Sites))
	}

	s, err := cfg.Site("phoenix")
	if err != nil {
		t.Fatalf("Site: %v", err)
	}
	if s.Latitude != 33.4484 || s.Longitude != -112.074 {
		t.Errorf("phoenix = %+v", s)
	}

	loc, err := s.Location()
	if err != nil {
		t.Fatalf("Location: %v", err)
	}
	_, offset := time.Date(2024, time.July, 1, 12, 0, 0, 0, loc).Zone()
	if offset != -7*3600 {
		t.Errorf("Phoenix offset = %d, want %d", offset, -7*3600)
	}

	eq, err := cfg.Site("equator")
	if err != nil {
		t.Fatal(err)
	}
	if loc, _ := eq.Location(); loc != time.UTC {
		t.Errorf("empty timezone = %v, want UTC", loc)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("sites: []\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Language != "en" || cfg.Zodiac != "Tropical" {
		t.Errorf("defaults = %q, %q", cfg.Language, cfg.Zodiac)
	}
	if _, err := cfg.Site("london"); !errors.Is(err, ErrSiteNotFound) {
		t.Errorf("Site err = %v, want ErrSiteNotFound", err)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"latitude", "sites:\n  - name: a\n    latitude: 95\n    longitude: 0\n"},
		{"longitude", "sites:\n  - name: a\n    latitude: 0\n    longitude: -200\n"},
		{"timezone", "sites:\n  - name: a\n    latitude: 0\n    longitude: 0\n    timezone: Mars/Olympus\n"},
		{"duplicate", "sites:\n  - name: a\n    latitude: 0\n    longitude: 0\n  - name: A\n    latitude: 1\n    longitude: 1\n"},
		{"no name", "sites:\n  - latitude: 0\n    longitude: 0\n"},
		{"unknown field", "sitez: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
