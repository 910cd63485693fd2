// Command validate runs a raw indicator records file through the extraction,
// normalization, and formatting pipeline and prints the result per
// indicator. Useful for eyeballing how a real or mock API payload will
// render before it reaches the comparison endpoint.
//
// Usage:
//
//	go run ./cmd/validate -records data/mock/mexico.json
//	go run ./cmd/validate -records feed.json -rate-input fraction
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/econlens/country-compare/internal/domain"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	path := flag.String("records", "", "path to a JSON array of raw indicator records")
	rateInput := flag.String("rate-input", "percent", "inflation convention: percent or fraction")
	flag.Parse()

	if *path == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -records")
	}
	if *rateInput != "percent" && *rateInput != "fraction" {
		return fmt.Errorf("invalid -rate-input %q: must be percent or fraction", *rateInput)
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		return fmt.Errorf("read records: %w", err)
	}

	var records []domain.RawIndicatorRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parse records: %w", err)
	}

	opts := domain.Options{FractionalRates: *rateInput == "fraction"}
	usable := 0

	fmt.Printf("%-16s %-16s %-22s %s\n", "INDICATOR", "RAW", "CANONICAL", "DISPLAY")
	for _, kind := range domain.Kinds() {
		raw := domain.Extract(records, kind)
		canonical := domain.NormalizeWithOptions(raw, kind, opts)
		display := domain.Format(canonical, kind.FormatKind())

		rawCol, canonicalCol := "N/A", "N/A"
		if f, ok := raw.Float64(); ok {
			rawCol = fmt.Sprintf("%g", f)
		}
		if f, ok := canonical.Float64(); ok {
			canonicalCol = fmt.Sprintf("%g", f)
			usable++
		}
		fmt.Printf("%-16s %-16s %-22s %s\n", kind.DisplayName(), rawCol, canonicalCol, display)
	}

	fmt.Printf("\n%d records, %d of %d indicators usable\n", len(records), usable, len(domain.Kinds()))
	if usable == 0 {
		return fmt.Errorf("no usable indicators in %s", *path)
	}
	return nil
}
