package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/sexagesimal"

	"github.com/thurmanmarka/almanac"
	"github.com/thurmanmarka/almanac/internal/config"
	"github.com/thurmanmarka/almanac/internal/log"
	"github.com/thurmanmarka/almanac/locale"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
)

func main() {
	// No args or a leading flag runs the sun report.
	if len(os.Args) < 2 || strings.HasPrefix(os.Args[1], "-") {
		runSun(os.Args[1:])
		return
	}

	switch os.Args[1] {
	case "sun":
		runSun(os.Args[2:])
	case "moon":
		runMoon(os.Args[2:])
	case "zodiac":
		runZodiac(os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `almanac - sun, moon and zodiac almanac

Usage:
  almanac [sun] [flags]     # sunrise, sunset, sun hours (default)
  almanac moon [flags]      # lunar position and phase
  almanac zodiac [flags]    # zodiac sign of a date

Common flags:
  -lat, -lon      observer position in degrees (east and north positive)
  -site NAME      take position and zone from the sites file
  -config PATH    sites file (default "almanac.yaml")
  -time VALUE     RFC3339, 'YYYY-MM-DDTHH:MM' or 'YYYY-MM-DD' (default now)
  -tz NAME        IANA time zone for -time (default Local)
  -lang TAG       language for names, e.g. en, de
  -json           print JSON instead of a report
  -debug          verbose logging on stderr

Run "almanac <subcommand> -h" for details.
`)
}

// common holds the flags shared by every subcommand.
type common struct {
	lat, lon   float64
	site       string
	configPath string
	timeS      string
	tzName     string
	lang       string
	jsonOut    bool
	debug      bool

	cfg *config.Config
}

func (c *common) register(fs *flag.FlagSet) {
	fs.Float64Var(&c.lat, "lat", 0, "latitude in degrees (north positive)")
	fs.Float64Var(&c.lon, "lon", 0, "longitude in degrees (east positive, west negative)")
	fs.StringVar(&c.site, "site", "", "named site from the config file")
	fs.StringVar(&c.configPath, "config", "almanac.yaml", "path to the sites file")
	fs.StringVar(&c.timeS, "time", "", "time in RFC3339, 'YYYY-MM-DDTHH:MM' or 'YYYY-MM-DD' (default now)")
	fs.StringVar(&c.timeS, "date", "", "alias for -time")
	fs.StringVar(&c.tzName, "tz", "", "IANA time zone name (default Local, or the site's zone)")
	fs.StringVar(&c.lang, "lang", "", "language for month, weekday, planet and sign names")
	fs.BoolVar(&c.jsonOut, "json", false, "output result as JSON")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging")
}

func (c *common) parse(fs *flag.FlagSet, name string, args []string) {
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: almanac %s [flags]\n\nFlags:\n", name)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}
	if err := log.Init(c.debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// config loads the sites file once. A missing file is only an error when a
// site was requested.
func (c *common) config() *config.Config {
	if c.cfg != nil {
		return c.cfg
	}
	cfg, err := config.Load(c.configPath)
	switch {
	case err == nil:
		log.Debugw("loaded config", "path", c.configPath, "sites", len(cfg.Sites))
	case errors.Is(err, os.ErrNotExist) && c.site == "":
		cfg, _ = config.Parse(nil)
	default:
		log.Fatalf("failed to load config: %v", err)
	}
	c.cfg = cfg
	return cfg
}

// observation resolves the position, zone and time flags.
func (c *common) observation() (almanac.Observation, string) {
	coords := almanac.Coordinates{Lat: c.lat, Lon: c.lon}
	label := fmt.Sprintf("lat=%.4f lon=%.4f", c.lat, c.lon)
	loc := time.Local

	if c.site != "" {
		s, err := c.config().Site(c.site)
		if err != nil {
			log.Fatalf("%v", err)
		}
		coords = almanac.Coordinates{Lat: s.Latitude, Lon: s.Longitude}
		label = s.Name
		if loc, err = s.Location(); err != nil {
			log.Fatalf("site %q: %v", s.Name, err)
		}
	} else if c.lat == 0 && c.lon == 0 {
		log.Warnw("lat=0 lon=0 (Gulf of Guinea); use -lat/-lon or -site to set a real location")
	}

	if c.tzName != "" {
		var err error
		if loc, err = time.LoadLocation(c.tzName); err != nil {
			log.Fatalf("invalid time zone %q: %v", c.tzName, err)
		}
	}

	t, err := parseTime(c.timeS, loc)
	if err != nil {
		log.Fatalf("could not parse -time %q: %v", c.timeS, err)
	}

	obs, err := almanac.NewObservation(t, coords)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Debugw("observation", "time", t, "lat", coords.Lat, "lon", coords.Lon)
	return obs, label
}

// names picks the name table from -lang or the config file.
func (c *common) names() *locale.Table {
	lang := c.lang
	if lang == "" {
		lang = c.config().Language
	}
	table, err := locale.Default().Lookup(lang)
	if err != nil {
		log.Fatalf("invalid -lang: %v", err)
	}
	return table
}

func parseTime(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Now().In(loc), nil
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// ---------------------
// Sun report (default)
// ---------------------

type sunOutput struct {
	Site          string     `json:"site"`
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
	Time          time.Time  `json:"time"`
	Sunrise       *time.Time `json:"sunrise,omitempty"`
	Sunset        *time.Time `json:"sunset,omitempty"`
	Meridian      string     `json:"meridian"`
	Condition     string     `json:"condition,omitempty"`
	LightHours    float64    `json:"light_hours,omitempty"`
	DarkHours     float64    `json:"dark_hours,omitempty"`
	Light         bool       `json:"light"`
	SunHour       float64    `json:"sun_hour,omitempty"`
	SunHourLength float64    `json:"sun_hour_length,omitempty"`
	SunDay        int        `json:"sun_day"`
	HourPlanet    string     `json:"hour_planet,omitempty"`
	DayPlanet     string     `json:"day_planet"`

	// Notes explains fields left empty because a neighbouring day has no
	// sunrise or sunset, keyed by JSON field name.
	Notes map[string]string `json:"notes,omitempty"`
}

func runSun(args []string) {
	var c common
	fs := flag.NewFlagSet("sun", flag.ExitOnError)
	c.register(fs)
	c.parse(fs, "sun", args)
	defer log.Sync()

	obs, label := c.observation()
	names := c.names()

	out, err := sunReport(obs, label, names)
	if err != nil {
		log.Fatalf("error computing sun report: %v", err)
	}

	if c.jsonOut {
		printJSON(out)
		return
	}

	t := obs.Time()
	fmt.Println(headerStyle.Render("Sun for " + label))
	fmt.Println(mutedStyle.Render(fmt.Sprintf("%s, %d %s %d %s (%s)",
		names.Weekday(t.Weekday()), t.Day(), names.Month(t.Month()), t.Year(),
		t.Format("15:04"), t.Location())))
	fmt.Println()

	if out.Condition != "" {
		printField("Condition", out.Condition)
		printField("Meridian", out.Meridian)
		printField("Day planet", out.DayPlanet)
		return
	}

	printField("Sunrise", out.Sunrise.Format("15:04:05"))
	printField("Meridian", out.Meridian)
	printField("Sunset", out.Sunset.Format("15:04:05"))
	printField("Light", out.field("light_hours", formatHours(out.LightHours)))
	printField("Dark", out.field("dark_hours", formatHours(out.DarkHours)))
	now := "night"
	if out.Light {
		now = "day"
	}
	printField("Now", out.field("light", now))
	printField("Sun hour", out.field("sun_hour", fmt.Sprintf("%.2f (%s, %s)", out.SunHour,
		out.field("hour_planet", out.HourPlanet),
		out.field("sun_hour_length", fmt.Sprintf("%d min long", int(out.SunHourLength*60+0.5))))))
	printField("Sun day", out.field("sun_day", fmt.Sprintf("%d (%s)", out.SunDay, out.DayPlanet)))
}

// field returns the note for name if there is one, else value.
func (o sunOutput) field(name, value string) string {
	if note, ok := o.Notes[name]; ok {
		return note
	}
	return value
}

// sunReport fills a sunOutput for obs. A polar observation day sets
// Condition; a polar neighbouring day leaves the affected fields empty and
// records a note for each.
func sunReport(obs almanac.Observation, label string, names *locale.Table) (sunOutput, error) {
	st := obs.SunTimes()
	meridian := almanac.HoursToClock(st.MeridianTime+obs.UTCOffset(), almanac.DefaultHourBase)

	out := sunOutput{
		Site:      label,
		Latitude:  obs.Coordinates().Lat,
		Longitude: obs.Coordinates().Lon,
		Time:      obs.Time(),
		Meridian:  fmt.Sprintf("%02d:%02d", meridian.Hours, meridian.Minutes),
		DayPlanet: names.Planet(obs.WeekdayPlanet()),
	}

	rs, err := obs.SunRiseSet()
	var de *almanac.DomainError
	switch {
	case errors.As(err, &de):
		out.Condition = conditionName(de.Condition)
		out.Light = de.Condition == almanac.AlwaysLight
		if out.Light {
			out.LightHours = 24
		} else {
			out.DarkHours = 24
		}
		log.Infow("no sunrise or sunset", "condition", out.Condition)
		return out, nil
	case err != nil:
		return out, err
	}
	out.Sunrise, out.Sunset = &rs.Rise, &rs.Set

	fields := []struct {
		name string
		fill func() error
	}{
		{"light_hours", func() (err error) { out.LightHours, err = obs.LightDuration(); return }},
		{"dark_hours", func() (err error) { out.DarkHours, err = obs.DarkDuration(); return }},
		{"light", func() (err error) { out.Light, err = obs.IsLightTime(); return }},
		{"sun_hour", func() (err error) { out.SunHour, err = obs.SunHour(); return }},
		{"sun_hour_length", func() (err error) { out.SunHourLength, err = obs.SunHourLength(); return }},
		{"sun_day", func() (err error) { out.SunDay, err = obs.SunDay(); return }},
		{"hour_planet", func() error {
			p, err := obs.SunHourPlanet()
			if err == nil {
				out.HourPlanet = names.Planet(p)
			}
			return err
		}},
	}
	for _, f := range fields {
		err := f.fill()
		if err == nil {
			continue
		}
		if !errors.As(err, &de) {
			return out, fmt.Errorf("%s: %w", f.name, err)
		}
		note := neighbourNote(obs.Time(), de)
		if out.Notes == nil {
			out.Notes = make(map[string]string)
		}
		out.Notes[f.name] = note
		log.Warnw("no sunrise or sunset on neighbouring day", "field", f.name, "condition", note)
	}
	return out, nil
}

// neighbourNote describes a polar condition relative to the calendar day
// of t, e.g. "next day: midnight sun".
func neighbourNote(t time.Time, de *almanac.DomainError) string {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	cond := conditionName(de.Condition)
	switch d, ref := day(de.Date), day(t); {
	case d.After(ref):
		return "next day: " + cond
	case d.Before(ref):
		return "previous day: " + cond
	}
	return cond
}

func conditionName(c almanac.Condition) string {
	switch c {
	case almanac.AlwaysLight:
		return "midnight sun"
	case almanac.AlwaysDark:
		return "polar night"
	}
	return "unknown"
}

func formatHours(h float64) string {
	c := almanac.HoursToClock(h, almanac.DefaultHourBase)
	if h >= 24 {
		c.Hours = 24
	}
	return fmt.Sprintf("%dh %02dm", c.Hours, c.Minutes)
}

// ---------------------
// Moon subcommand
// ---------------------

type moonOutput struct {
	Site           string    `json:"site"`
	Time           time.Time `json:"time"`
	JulianDay      float64   `json:"julian_day"`     // civil wall clock at the whole hour
	JulianDayUTC   float64   `json:"julian_day_utc"` // the instant in UTC
	RightAscension float64   `json:"right_ascension_hours"`
	Declination    float64   `json:"declination"`
	Longitude      float64   `json:"longitude"`
	Latitude       float64   `json:"latitude"`
	Distance       float64   `json:"distance_km"`
	Altitude       float64   `json:"altitude"`
	Azimuth        float64   `json:"azimuth"`
	PhaseAngle     float64   `json:"phase_angle"`
	Fraction       float64   `json:"fraction"`
	Illumination   int       `json:"illumination"`
	Waxing         bool      `json:"waxing"`
	Name           string    `json:"name"`
}

func runMoon(args []string) {
	var c common
	fs := flag.NewFlagSet("moon", flag.ExitOnError)
	c.register(fs)
	c.parse(fs, "moon", args)
	defer log.Sync()

	obs, label := c.observation()
	pos := obs.MoonPosition()
	hor := obs.MoonAltitudeAzimuth()
	phase := obs.MoonPhase()
	out := moonReport(obs, label)

	if c.jsonOut {
		printJSON(out)
		return
	}

	fmt.Println(headerStyle.Render("Moon for " + label))
	fmt.Println(mutedStyle.Render(fmt.Sprintf("%s (JD %.5f civil, %.5f UTC)",
		obs.Time().Format(time.RFC3339), out.JulianDay, out.JulianDayUTC)))
	fmt.Println()

	printField("RA", fmt.Sprintf("%.1s", sexa.FmtRA(pos.RA())))
	printField("Dec", fmt.Sprintf("%.0s", sexa.FmtAngle(pos.Dec())))
	printField("Ecliptic", fmt.Sprintf("λ %.4f°  β %.4f°", pos.Longitude, pos.Latitude))
	printField("Distance", fmt.Sprintf("%.0f km", pos.Distance))
	printField("Altitude", fmt.Sprintf("%.0s", sexa.FmtAngle(hor.Alt())))
	printField("Azimuth", fmt.Sprintf("%.2f°", hor.Azimuth))
	printField("Phase", phase.Name)
	printField("Illuminated", fmt.Sprintf("%d%% (phase angle %.2f°)", phase.Illumination, phase.PhaseAngle))
	if phase.Waxing {
		printField("Trend", "waxing (illumination increasing)")
	} else {
		printField("Trend", "waning (illumination decreasing)")
	}
}

// moonReport fills a moonOutput for obs. JulianDay is the Julian day the
// lunar model ran at; JulianDayUTC is the exact instant.
func moonReport(obs almanac.Observation, label string) moonOutput {
	pos := obs.MoonPosition()
	hor := obs.MoonAltitudeAzimuth()
	phase := obs.MoonPhase()

	return moonOutput{
		Site:           label,
		Time:           obs.Time(),
		JulianDay:      obs.JulianDayNumber(),
		JulianDayUTC:   julian.TimeToJD(obs.Time()),
		RightAscension: pos.RightAscension,
		Declination:    pos.Declination,
		Longitude:      pos.Longitude,
		Latitude:       pos.Latitude,
		Distance:       pos.Distance,
		Altitude:       hor.Altitude,
		Azimuth:        hor.Azimuth,
		PhaseAngle:     phase.PhaseAngle,
		Fraction:       phase.Fraction,
		Illumination:   phase.Illumination,
		Waxing:         phase.Waxing,
		Name:           phase.Name,
	}
}

// ---------------------
// Zodiac subcommand
// ---------------------

type zodiacOutput struct {
	Date  string `json:"date"`
	Style string `json:"style"`
	Index int    `json:"index"`
	Sign  string `json:"sign"`
}

func runZodiac(args []string) {
	var c common
	fs := flag.NewFlagSet("zodiac", flag.ExitOnError)
	c.register(fs)
	styleS := fs.String("style", "", "zodiac style: Tropical or Siderial (default from config)")
	c.parse(fs, "zodiac", args)
	defer log.Sync()

	if *styleS == "" {
		*styleS = c.config().Zodiac
	}
	style, err := almanac.ParseZodiacStyle(*styleS)
	if err != nil {
		log.Fatalf("invalid -style: %v", err)
	}

	obs, _ := c.observation()
	names := c.names()

	i, err := obs.ZodiacFor(style)
	if err != nil {
		log.Fatalf("%v", err)
	}

	out := zodiacOutput{
		Date:  obs.Time().Format("2006-01-02"),
		Style: style.String(),
		Index: i,
		Sign:  names.ZodiacSign(i),
	}

	if c.jsonOut {
		printJSON(out)
		return
	}

	t := obs.Time()
	fmt.Println(headerStyle.Render(fmt.Sprintf("%s zodiac", out.Style)))
	fmt.Println(mutedStyle.Render(fmt.Sprintf("%d %s %d", t.Day(), names.Month(t.Month()), t.Year())))
	fmt.Println()
	printField("Sign", fmt.Sprintf("%s (%d)", out.Sign, out.Index))
}

// ---------------------
// Shared helpers
// ---------------------

func printField(label, value string) {
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render(label),
		valueStyle.Render(value)))
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("failed to encode JSON: %v", err)
	}
}
