package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_GDP(t *testing.T) {
	tests := []struct {
		name     string
		raw      float64
		expected float64
	}{
		{"trillions band typical", 26.95, 26.95e12},
		{"trillions band upper interior", 999.99, 999.99e12},
		{"billions band lower boundary inclusive", 1000, 1000e9},
		{"billions band typical", 1852.72, 1852.72e9},
		{"billions band upper interior", 999_999, 999_999e9},
		{"upper boundary passes through", 1_000_000, 1_000_000},
		{"already canonical", 1.8527e12, 1.8527e12},
		{"lower boundary passes through", 0.1, 0.1},
		{"below lower boundary passes through", 0.05, 0.05},
		{"zero passes through", 0, 0},
		{"negative passes through", -5, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Normalize(SomeValue(tt.raw), GDP).Float64()
			assert.True(t, ok)
			if tt.expected == 0 {
				assert.Zero(t, f)
			} else {
				assert.InEpsilon(t, tt.expected, f, 1e-9)
			}
		})
	}
}

func TestNormalize_GDP_TrillionsExample(t *testing.T) {
	// 1852.72 reads as billions; the same figure divided by a thousand
	// (1.85272) reads as trillions. Both land on the same canonical value.
	asBillions, _ := Normalize(SomeValue(1852.72), GDP).Float64()
	asTrillions, _ := Normalize(SomeValue(1.85272), GDP).Float64()
	assert.InEpsilon(t, 1.85272e12, asBillions, 1e-9)
	assert.InEpsilon(t, 1.85272e12, asTrillions, 1e-9)
}

func TestNormalize_Population(t *testing.T) {
	tests := []struct {
		name     string
		raw      float64
		expected float64
	}{
		{"millions band", 130.86, 130.86e6},
		{"thousands band lower boundary inclusive", 1000, 1000e3},
		{"thousands band typical", 331_900, 331_900e3},
		{"upper boundary passes through", 1_000_000, 1_000_000},
		{"already canonical", 331_900_000, 331_900_000},
		{"lower boundary passes through", 0.1, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Normalize(SomeValue(tt.raw), Population).Float64()
			assert.True(t, ok)
			assert.InEpsilon(t, tt.expected, f, 1e-9)
		})
	}
}

func TestNormalize_InflationRate(t *testing.T) {
	t.Run("percentage points pass through by default", func(t *testing.T) {
		f, ok := Normalize(SomeValue(3.79), InflationRate).Float64()
		assert.True(t, ok)
		assert.Equal(t, 3.79, f)
	})

	t.Run("negative rates pass through", func(t *testing.T) {
		f, ok := Normalize(SomeValue(-1.2), InflationRate).Float64()
		assert.True(t, ok)
		assert.Equal(t, -1.2, f)
	})

	t.Run("fractional convention rescales to percentage points", func(t *testing.T) {
		opts := Options{FractionalRates: true}
		f, ok := NormalizeWithOptions(SomeValue(0.05), InflationRate, opts).Float64()
		assert.True(t, ok)
		assert.InEpsilon(t, 5.0, f, 1e-9)
	})

	t.Run("fractional convention leaves other indicators alone", func(t *testing.T) {
		opts := Options{FractionalRates: true}
		f, ok := NormalizeWithOptions(SomeValue(1852.72), GDP, opts).Float64()
		assert.True(t, ok)
		assert.InEpsilon(t, 1852.72e9, f, 1e-9)
	})
}

func TestNormalize_UnavailablePropagates(t *testing.T) {
	for _, kind := range Kinds() {
		assert.Equal(t, Unavailable, Normalize(Unavailable, kind), kind.String())
	}
}

func TestSomeValue_NonFinite(t *testing.T) {
	assert.Equal(t, Unavailable, SomeValue(math.NaN()))
	assert.Equal(t, Unavailable, SomeValue(math.Inf(1)))
	assert.Equal(t, Unavailable, SomeValue(math.Inf(-1)))
}
