package domain

import "github.com/google/uuid"

// Compare computes the signed difference a−b in canonical units. If either
// side is Unavailable the difference is undefined and renders as "N/A".
// Positive differences get an explicit leading "+" here — the formatter
// itself never signs positive values; negative ones keep the formatter's
// natural minus sign.
func Compare(a, b Value, kind FormatKind) Difference {
	af, aok := a.Float64()
	bf, bok := b.Float64()
	if !aok || !bok {
		return Difference{Text: "N/A", Direction: DirectionUndefined}
	}

	diff := af - bf
	d := Difference{Text: Format(SomeValue(diff), kind)}
	switch {
	case diff > 0:
		d.Direction = DirectionHigher
		d.Text = "+" + d.Text
	case diff < 0:
		d.Direction = DirectionLower
	default:
		d.Direction = DirectionEqual
	}
	return d
}

// BuildComparison runs the full pipeline for both countries' record lists
// and assembles the renderer-facing rows: exactly three, in fixed order
// GDP, Population, InflationRate. Fetch failures must already have been
// translated into empty record lists by the caller; they surface here as
// "N/A" cells, never as errors.
func BuildComparison(countryA, countryB string, recordsA, recordsB []RawIndicatorRecord, opts Options) Comparison {
	kinds := Kinds()
	rows := make([]ComparisonRow, 0, len(kinds))
	for _, kind := range kinds {
		a := NormalizeWithOptions(Extract(recordsA, kind), kind, opts)
		b := NormalizeWithOptions(Extract(recordsB, kind), kind, opts)

		rows = append(rows, ComparisonRow{
			Kind:        kind,
			Indicator:   kind.DisplayName(),
			Description: kind.Description(),
			A:           a,
			B:           b,
			FormattedA:  Format(a, kind.FormatKind()),
			FormattedB:  Format(b, kind.FormatKind()),
			Difference:  Compare(a, b, kind.FormatKind()),
		})
	}

	return Comparison{
		ID:          uuid.NewString(),
		CountryA:    countryA,
		CountryB:    countryB,
		Rows:        rows,
		GeneratedAt: clock.Now(),
	}
}
