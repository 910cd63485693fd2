// Package domain models country economic indicator data and the comparison
// pipeline built on it: extract a raw value per indicator, normalize it to a
// canonical base unit, format it for display, and compute the delta between
// two countries.
//
// # Data Source
//
// Indicator records come from a Trading-Economics-style country endpoint that
// returns a JSON array of category/value objects per country. The feed's unit
// conventions are undocumented and inconsistent: GDP arrives sometimes in
// trillions, sometimes in billions; population sometimes in millions,
// sometimes in thousands. No unit flag in the payload is reliable.
//
// # Value Fields
//
// Each record may carry up to three numeric fields of decreasing priority:
//
//	LatestValue → LastValue → Value
//
// The first present, non-null field wins. A record with none of them
// contributes no usable value.
//
// # Scale Heuristics
//
// Raw magnitudes are classified by range and rescaled to canonical base
// units (raw currency amount for GDP, raw headcount for population):
//
//	GDP:        0.1 < v < 1000       → trillions, ×10^12
//	            1000 ≤ v < 1,000,000 → billions,  ×10^9
//	            otherwise            → already canonical, unscaled
//	Population: 0.1 < v < 1000       → millions,  ×10^6
//	            1000 ≤ v < 1,000,000 → thousands, ×10^3
//	            otherwise            → already canonical, unscaled
//
// The heuristic is best-effort, not a guarantee. A GDP of exactly 500
// already in raw units is indistinguishable from 500 meant as trillions;
// values at or outside the documented bands pass through unscaled. This is
// an accepted source of inaccuracy inherent to the feed, so the thresholds
// are preserved exactly rather than second-guessed.
//
// # Inflation Rate
//
// The upstream convention for inflation is ambiguous: some feeds report
// percentage points (3.79 meaning 3.79%), others a fraction (0.0379). This
// package treats percentage points as the default and passes the value
// through unchanged. The fractional convention is available as an explicit
// normalization option ([Options.FractionalRates], ×100) so the choice is
// configuration, not guesswork.
//
// # Unavailability
//
// "No usable value" is a first-class state of [Value], distinct from zero
// and never represented by NaN. Missing indicators, missing value fields,
// and upstream fetch failures (translated by the caller into an empty record
// list) all collapse into the same Unavailable outcome; it formats as "N/A"
// and makes any difference involving it undefined.
//
// # Output Contract
//
// [BuildComparison] always yields exactly three rows in fixed order — GDP,
// Population, Inflation Rate. Consumers key off that order.
package domain
