// Package config loads observer sites from a YAML file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

// ErrSiteNotFound is returned by Site for an unknown name.
var ErrSiteNotFound = errors.New("site not found")

// Config is the contents of a sites file.
type Config struct {
	Language string `yaml:"language,omitempty"`
	Zodiac   string `yaml:"zodiac,omitempty"`
	Sites    []Site `yaml:"sites"`
}

// Site is a named observer location.
type Site struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Timezone  string  `yaml:"timezone,omitempty"`
}

// Load reads and validates the sites file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a sites document. Missing language and
// zodiac settings default to "en" and "Tropical".
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.Zodiac == "" {
		cfg.Zodiac = "Tropical"
	}

	seen := make(map[string]bool, len(cfg.Sites))
	for i, s := range cfg.Sites {
		if s.Name == "" {
			return nil, fmt.Errorf("site %d: missing name", i)
		}
		key := strings.ToLower(s.Name)
		if seen[key] {
			return nil, fmt.Errorf("site %q: duplicate name", s.Name)
		}
		seen[key] = true

		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("site %q: %w", s.Name, err)
		}
	}
	return &cfg, nil
}

func (s Site) validate() error {
	if math.IsNaN(s.Latitude) || s.Latitude < -90 || s.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range", s.Latitude)
	}
	if math.IsNaN(s.Longitude) || s.Longitude < -180 || s.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range", s.Longitude)
	}
	if _, err := s.Location(); err != nil {
		return err
	}
	return nil
}

// Site returns the site with the given name, ignoring case.
func (c *Config) Site(name string) (Site, error) {
	for _, s := range c.Sites {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return Site{}, fmt.Errorf("%w: %q", ErrSiteNotFound, name)
}

// Location loads the site's time zone. An empty zone means UTC.
func (s Site) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}
