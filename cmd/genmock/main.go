// Command genmock generates mock country indicator fixtures for test suites
// and local development without an API key. It uses the actual domain
// package so the expected-comparison fixture matches real pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genmock -out data/mock
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/econlens/country-compare/internal/domain"
)

func fptr(v float64) *float64 { return &v }

// mockCountries mirrors the scale inconsistencies observed upstream: GDP in
// billions for Mexico but trillions for the United States, population in
// millions or thousands, plus a country with a missing indicator.
var mockCountries = map[string][]domain.RawIndicatorRecord{
	"Mexico": {
		{Category: "GDP", Country: "Mexico", LatestValue: fptr(1852.72), Unit: "USD Billion"},
		{Category: "Population", Country: "Mexico", LatestValue: fptr(130.86), Unit: "Million"},
		{Category: "Inflation Rate", Country: "Mexico", LatestValue: fptr(3.79), Unit: "percent"},
	},
	"Sweden": {
		{Category: "GDP", Country: "Sweden", LatestValue: fptr(585.94), Unit: "USD Billion"},
		{Category: "Population", Country: "Sweden", LastValue: fptr(10.54), Unit: "Million"},
		{Category: "Inflation Rate", Country: "Sweden", Value: fptr(1.7), Unit: "percent"},
	},
	"United States": {
		{Category: "GDP", Country: "United States", LatestValue: fptr(27.36), Unit: "USD Trillion"},
		{Category: "Population", Country: "United States", LatestValue: fptr(331_900), Unit: "Thousand"},
		{Category: "Inflation Rate", Country: "United States", LatestValue: fptr(2.9), Unit: "percent"},
	},
	"Atlantis": {
		{Category: "GDP", Country: "Atlantis"}, // no value fields on purpose
	},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output directory for fixture files")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	// Fixed clock for reproducible GeneratedAt stamps.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2026, time.August, 1, 6, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	for country, records := range mockCountries {
		name := strings.ToLower(strings.ReplaceAll(country, " ", "_"))
		path := filepath.Join(*out, name+".json")
		if err := writeJSON(path, records); err != nil {
			return fmt.Errorf("writing %s fixture: %w", country, err)
		}
		log.Printf("wrote %s: %d records", path, len(records))
	}

	// Run the actual pipeline once so consumers have a known-good expected
	// output to assert against.
	cmp := domain.BuildComparison("Mexico", "Sweden",
		mockCountries["Mexico"], mockCountries["Sweden"], domain.Options{})
	expectedPath := filepath.Join(*out, "expected_mexico_sweden.json")
	if err := writeJSON(expectedPath, cmp); err != nil {
		return fmt.Errorf("writing expected comparison: %w", err)
	}
	log.Printf("wrote %s", expectedPath)

	return nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}
