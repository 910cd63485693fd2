package domain

import (
	"context"
	"time"
)

// RawIndicatorRecord is one entry from the upstream country endpoint.
// Value fields are pointers because the feed omits or nulls them freely;
// field priority during extraction is LatestValue, then LastValue, then Value.
type RawIndicatorRecord struct {
	Category    string   `json:"Category"`
	Country     string   `json:"Country"`
	LatestValue *float64 `json:"LatestValue"`
	LastValue   *float64 `json:"LastValue"`
	Value       *float64 `json:"Value"`
	Unit        string   `json:"Unit,omitempty"` // present but unreliable upstream
}

// IndicatorSource fetches the raw indicator records for one country.
// Implementations own all transport concerns (retries, proxies, timeouts);
// callers translate any failure into an empty record list before the core
// sees it.
type IndicatorSource interface {
	FetchIndicators(ctx context.Context, country string) ([]RawIndicatorRecord, error)
}

// FormatKind selects how a canonical value is rendered.
type FormatKind int

const (
	// FormatMagnitude renders with a K/M/B/T scale suffix.
	FormatMagnitude FormatKind = iota
	// FormatPercentage renders as percentage points with a trailing "%".
	FormatPercentage
)

// IndicatorKind identifies one of the three tracked economic measures.
type IndicatorKind int

const (
	GDP IndicatorKind = iota
	Population
	InflationRate
)

// Kinds returns the indicators in the fixed presentation order consumers
// depend on: GDP, Population, InflationRate.
func Kinds() []IndicatorKind {
	return []IndicatorKind{GDP, Population, InflationRate}
}

// Category is the upstream category label, matched case-sensitively during
// extraction because the source API's casing is exact.
func (k IndicatorKind) Category() string {
	switch k {
	case GDP:
		return "GDP"
	case Population:
		return "Population"
	case InflationRate:
		return "Inflation Rate"
	default:
		return ""
	}
}

// DisplayName is the human-facing indicator name.
func (k IndicatorKind) DisplayName() string {
	switch k {
	case GDP:
		return "GDP"
	case Population:
		return "Population"
	case InflationRate:
		return "Inflation Rate"
	default:
		return "Unknown"
	}
}

// Description is a short explanation of the indicator for UI tooltips.
func (k IndicatorKind) Description() string {
	switch k {
	case GDP:
		return "Gross domestic product in current US dollars"
	case Population:
		return "Total resident population"
	case InflationRate:
		return "Year-over-year consumer price inflation, percentage points"
	default:
		return ""
	}
}

// FormatKind is the display treatment for this indicator's values.
func (k IndicatorKind) FormatKind() FormatKind {
	if k == InflationRate {
		return FormatPercentage
	}
	return FormatMagnitude
}

func (k IndicatorKind) String() string { return k.DisplayName() }

// Direction tags which side of a comparison is larger, for presentation
// coloring downstream.
type Direction string

const (
	DirectionHigher    Direction = "higher"
	DirectionLower     Direction = "lower"
	DirectionEqual     Direction = "equal"
	DirectionUndefined Direction = "undefined"
)

// Difference is the derived delta between two canonical values.
type Difference struct {
	Text      string    `json:"text"`
	Direction Direction `json:"direction"`
}

// ComparisonRow pairs one indicator's canonical values for the two selected
// countries with their display strings and delta. Rows are immutable and
// consumed once by the renderer.
type ComparisonRow struct {
	Kind        IndicatorKind `json:"-"`
	Indicator   string        `json:"indicator"`
	Description string        `json:"description"`
	A           Value         `json:"a"`
	B           Value         `json:"b"`
	FormattedA  string        `json:"formatted_a"`
	FormattedB  string        `json:"formatted_b"`
	Difference  Difference    `json:"difference"`
}

// Comparison is the complete output of one compare invocation: exactly three
// rows in fixed order (GDP, Population, InflationRate).
type Comparison struct {
	ID          string          `json:"id"`
	CountryA    string          `json:"country_a"`
	CountryB    string          `json:"country_b"`
	Rows        []ComparisonRow `json:"rows"`
	GeneratedAt time.Time       `json:"generated_at"`
}
