package domain

// Options control the normalization conventions that are ambiguous upstream.
type Options struct {
	// FractionalRates treats raw inflation values as fractions (0.0379)
	// and rescales them to percentage points (×100). The default is the
	// pass-through convention: raw values are already percentage points.
	FractionalRates bool
}

// Normalize rescales a raw value to the indicator's canonical base unit
// using the default conventions.
func Normalize(v Value, kind IndicatorKind) Value {
	return NormalizeWithOptions(v, kind, Options{})
}

// NormalizeWithOptions rescales a raw value to the indicator's canonical
// base unit: raw currency units for GDP, raw headcount for population,
// percentage points for inflation. The scale of the raw value is inferred
// from its magnitude per the range heuristics documented in the package
// doc; values at or outside the documented bands pass through unscaled.
// Unavailable propagates unchanged.
func NormalizeWithOptions(v Value, kind IndicatorKind, opts Options) Value {
	raw, ok := v.Float64()
	if !ok {
		return Unavailable
	}

	switch kind {
	case GDP:
		// Feed reports GDP in trillions or billions depending on the country.
		switch {
		case raw > 0.1 && raw < 1000:
			return SomeValue(raw * 1e12)
		case raw >= 1000 && raw < 1_000_000:
			return SomeValue(raw * 1e9)
		}
		return v
	case Population:
		switch {
		case raw > 0.1 && raw < 1000:
			return SomeValue(raw * 1e6)
		case raw >= 1000 && raw < 1_000_000:
			return SomeValue(raw * 1e3)
		}
		return v
	case InflationRate:
		if opts.FractionalRates {
			return SomeValue(raw * 100)
		}
		return v
	}

	return v
}
