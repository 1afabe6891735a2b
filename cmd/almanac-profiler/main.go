package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/thurmanmarka/almanac"
	"github.com/thurmanmarka/almanac/internal/log"
)

// refRow is one reference line: a local date with its published sunrise
// and sunset.
type refRow struct {
	line int
	date time.Time
	rise time.Time
	set  time.Time
}

// sample is the signed error of one event, in minutes (ours - reference).
type sample struct {
	day float64 // day of year, for drift regression
	err float64
}

type summary struct {
	Count  int
	Mean   float64
	StdDev float64 // zero for a single sample
	MinAbs float64
	MaxAbs float64
	P95    float64
	Slope  float64 // minutes per day of year
}

// CSV format:
//
//	date,rise,set
//	2025-01-01,07:32,17:12
//	2025-01-02,07:32,17:13
//
// date is YYYY-MM-DD; rise and set are local HH:MM or HH:MM:SS in the zone
// given by -tz.
func main() {
	var (
		lat     = flag.Float64("lat", 0, "latitude in degrees (north positive)")
		lon     = flag.Float64("lon", 0, "longitude in degrees (east positive, west negative)")
		tzName  = flag.String("tz", "UTC", "IANA time zone name (e.g. America/Phoenix)")
		refCSV  = flag.String("refcsv", "", "path to reference CSV file (date,rise,set)")
		outCSV  = flag.String("outcsv", "", "optional path to write per-row errors")
		verbose = flag.Bool("verbose", false, "print per-day errors instead of only the summary")
		debug   = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	if err := log.Init(*debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if *refCSV == "" {
		log.Fatalf("missing -refcsv (path to reference CSV)")
	}

	loc, err := time.LoadLocation(*tzName)
	if err != nil {
		log.Fatalf("failed to load timezone %q: %v", *tzName, err)
	}

	coords := almanac.Coordinates{Lat: *lat, Lon: *lon}
	if err := coords.Validate(); err != nil {
		log.Fatalf("%v", err)
	}
	if *lat == 0 && *lon == 0 {
		log.Warnw("lat=0 lon=0 (Gulf of Guinea); did you mean to set -lat/-lon?")
	}

	f, err := os.Open(*refCSV)
	if err != nil {
		log.Fatalf("failed to open refcsv %q: %v", *refCSV, err)
	}
	defer f.Close()

	rows, skipped, err := readReference(f, loc)
	if err != nil {
		log.Fatalf("failed to read %s: %v", *refCSV, err)
	}

	var out *csv.Writer
	if *outCSV != "" {
		of, err := os.Create(*outCSV)
		if err != nil {
			log.Fatalf("failed to create outcsv %q: %v", *outCSV, err)
		}
		defer of.Close()
		out = csv.NewWriter(of)
		defer out.Flush()
		if err := out.Write([]string{"date", "rise", "set", "rise_err", "set_err"}); err != nil {
			log.Fatalf("failed to write outcsv header: %v", err)
		}
	}

	var rises, sets []sample
	for _, r := range rows {
		// Noon keeps the zone offset of the reference day's daylight hours.
		noon := time.Date(r.date.Year(), r.date.Month(), r.date.Day(), 12, 0, 0, 0, loc)
		rs, err := almanac.At(noon, coords).SunRiseSet()
		if err != nil {
			log.Warnw("skipping row", "line", r.line, "date", r.date.Format("2006-01-02"), "error", err)
			skipped++
			continue
		}

		day := float64(noon.YearDay())
		riseErr := rs.Rise.Sub(r.rise).Minutes()
		setErr := rs.Set.Sub(r.set).Minutes()
		rises = append(rises, sample{day, riseErr})
		sets = append(sets, sample{day, setErr})

		if *verbose {
			fmt.Printf("%s: rise err=%+.2f min (got=%s ref=%s), set err=%+.2f min (got=%s ref=%s)\n",
				r.date.Format("2006-01-02"),
				riseErr, rs.Rise.Format("15:04"), r.rise.Format("15:04"),
				setErr, rs.Set.Format("15:04"), r.set.Format("15:04"))
		}

		if out != nil {
			rec := []string{
				r.date.Format("2006-01-02"),
				rs.Rise.Format("15:04:05"),
				rs.Set.Format("15:04:05"),
				fmt.Sprintf("%.6f", riseErr),
				fmt.Sprintf("%.6f", setErr),
			}
			if err := out.Write(rec); err != nil {
				log.Errorw("failed to write outcsv row", "line", r.line, "error", err)
			}
		}
	}

	fmt.Println("=== almanac profiler summary ===")
	fmt.Printf("Lat/Lon: %.4f / %.4f\n", *lat, *lon)
	fmt.Printf("TZ:      %s\n", loc)
	fmt.Printf("Rows:    %d processed, %d skipped\n", len(rises), skipped)

	if len(rises) == 0 {
		fmt.Println("No valid rows to compute stats.")
		return
	}

	printSummary("Sunrise error (minutes, ours - ref)", summarize(rises))
	printSummary("Sunset error (minutes, ours - ref)", summarize(sets))
}

// readReference parses the reference CSV. Rows that fail to parse are
// logged and counted as skipped; a leading "date" header is ignored.
func readReference(r io.Reader, loc *time.Location) ([]refRow, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, 0, err
	}
	if len(records) == 0 {
		return nil, 0, fmt.Errorf("empty CSV file")
	}

	start := 0
	if len(records[0]) > 0 && strings.EqualFold(strings.TrimSpace(records[0][0]), "date") {
		start = 1
	}

	var (
		rows    []refRow
		skipped int
	)
	for i := start; i < len(records); i++ {
		rec := records[i]
		line := i + 1
		if len(rec) < 3 {
			log.Warnw("expected date,rise,set", "line", line, "columns", len(rec))
			skipped++
			continue
		}

		date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(rec[0]), loc)
		if err != nil {
			log.Warnw("invalid date", "line", line, "error", err)
			skipped++
			continue
		}
		rise, err := parseLocalTime(date, strings.TrimSpace(rec[1]), loc)
		if err != nil {
			log.Warnw("invalid rise time", "line", line, "error", err)
			skipped++
			continue
		}
		set, err := parseLocalTime(date, strings.TrimSpace(rec[2]), loc)
		if err != nil {
			log.Warnw("invalid set time", "line", line, "error", err)
			skipped++
			continue
		}

		rows = append(rows, refRow{line: line, date: date, rise: rise, set: set})
	}
	return rows, skipped, nil
}

func parseLocalTime(date time.Time, hhmm string, loc *time.Location) (time.Time, error) {
	layout := "15:04"
	if strings.Count(hhmm, ":") == 2 {
		layout = "15:04:05"
	}
	parsed, err := time.ParseInLocation(layout, hhmm, loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), 0, loc), nil
}

func summarize(samples []sample) summary {
	days := make([]float64, len(samples))
	errs := make([]float64, len(samples))
	abs := make([]float64, len(samples))
	for i, s := range samples {
		days[i] = s.day
		errs[i] = s.err
		if s.err < 0 {
			abs[i] = -s.err
		} else {
			abs[i] = s.err
		}
	}

	s := summary{Count: len(samples)}
	if len(errs) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(errs, nil)
	} else {
		s.Mean = stat.Mean(errs, nil)
	}
	s.MinAbs = floats.Min(abs)
	s.MaxAbs = floats.Max(abs)

	sort.Float64s(abs)
	s.P95 = stat.Quantile(0.95, stat.Empirical, abs, nil)

	if len(samples) > 1 && floats.Min(days) != floats.Max(days) {
		_, s.Slope = stat.LinearRegression(days, errs, nil, false)
	}
	return s
}

func printSummary(title string, s summary) {
	fmt.Printf("\n%s:\n", title)
	fmt.Printf("  count:   %d\n", s.Count)
	fmt.Printf("  mean:    %+.3f\n", s.Mean)
	if s.Count > 1 {
		fmt.Printf("  stddev:  %.3f\n", s.StdDev)
	} else {
		fmt.Println("  stddev:  n/a (one sample)")
	}
	fmt.Printf("  min |e|: %.3f\n", s.MinAbs)
	fmt.Printf("  max |e|: %.3f\n", s.MaxAbs)
	fmt.Printf("  p95 |e|: %.3f\n", s.P95)
	fmt.Printf("  drift:   %+.4f min/day\n", s.Slope)
}
