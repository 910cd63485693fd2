package domain

import (
	"encoding/json"
	"math"
)

// Value is a canonical scalar that is either a finite number or explicitly
// unavailable. The zero Value is Unavailable.
type Value struct {
	v  float64
	ok bool
}

// Unavailable is the sentinel for "no usable value could be determined".
// It is distinct from zero: SomeValue(0) is available, Unavailable is not.
var Unavailable = Value{}

// SomeValue wraps a finite number. Non-finite inputs (NaN, ±Inf) collapse to
// Unavailable so that unavailability stays an explicit state rather than
// leaking through arithmetic as NaN.
func SomeValue(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Unavailable
	}
	return Value{v: v, ok: true}
}

// Available reports whether the value holds a usable number.
func (v Value) Available() bool { return v.ok }

// Float64 returns the underlying number and whether it is usable.
func (v Value) Float64() (float64, bool) { return v.v, v.ok }

// MarshalJSON encodes an available value as a number and Unavailable as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	return json.Marshal(v.v)
}

// UnmarshalJSON decodes null as Unavailable and numbers via SomeValue.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Unavailable
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = SomeValue(f)
	return nil
}
