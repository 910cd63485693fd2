package domain

// Extract locates the record matching the indicator's category and returns
// its best-available raw value. Matching is by exact, case-sensitive equality
// against the upstream category label. If several records share the category
// the first in input order wins; field priority within that record is
// LatestValue, LastValue, Value. Empty or nil input yields Unavailable.
func Extract(records []RawIndicatorRecord, kind IndicatorKind) Value {
	category := kind.Category()
	if category == "" {
		return Unavailable
	}

	for _, rec := range records {
		if rec.Category != category {
			continue
		}
		for _, field := range []*float64{rec.LatestValue, rec.LastValue, rec.Value} {
			if field != nil {
				return SomeValue(*field)
			}
		}
		// First match wins even when it carries no usable field.
		return Unavailable
	}

	return Unavailable
}
