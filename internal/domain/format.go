package domain

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// displayPrinter renders the unsuffixed magnitude branch with grouped
// thousands separators. The display locale is fixed; localization beyond a
// single locale is out of scope.
var displayPrinter = message.NewPrinter(language.English)

// Format renders a canonical value for display. Unavailable renders as the
// literal "N/A". Percentages keep two decimals and their natural sign.
// Magnitudes pick a scale suffix by exclusive absolute-value thresholds,
// largest first (> 10^12 " T", > 10^9 " B", > 10^6 " M", > 10^3 " K"), all
// with two decimals; below that the value renders with thousands separators
// and no suffix. Format never fails and is deterministic.
func Format(v Value, kind FormatKind) string {
	f, ok := v.Float64()
	if !ok {
		return "N/A"
	}

	switch kind {
	case FormatPercentage:
		return fmt.Sprintf("%.2f%%", f)
	case FormatMagnitude:
		abs := math.Abs(f)
		switch {
		case abs > 1e12:
			return fmt.Sprintf("%.2f T", f/1e12)
		case abs > 1e9:
			return fmt.Sprintf("%.2f B", f/1e9)
		case abs > 1e6:
			return fmt.Sprintf("%.2f M", f/1e6)
		case abs > 1e3:
			return fmt.Sprintf("%.2f K", f/1e3)
		}
		return displayPrinter.Sprintf("%.2f", f)
	}

	// Unknown format kinds fall back to a plain conversion rather than failing.
	return fmt.Sprintf("%v", f)
}
