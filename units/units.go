// Package units converts values between length, weight, and time
// units. Each unit is defined by its factor relative to its category's
// base unit (metre, kilogram, second); a conversion routes the value
// through the base: result = value * from_factor / to_factor. Units
// from different categories never convert into each other.
package units

import "fmt"

type category map[string]float64

var categories = []category{
	// length, base metre
	{
		"m":  1,
		"cm": 0.01,
		"mm": 0.001,
		"km": 1000,
		"in": 0.0254,
		"ft": 0.3048,
		"yd": 0.9144,
		"mi": 1609.34,
	},
	// weight, base kilogram
	{
		"kg":  1,
		"g":   0.001,
		"mg":  1e-6,
		"lb":  0.453592,
		"oz":  0.0283495,
		"ton": 1000,
	},
	// time, base second
	{
		"s":   1,
		"ms":  0.001,
		"min": 60,
		"h":   3600,
		"d":   86400,
	},
}

// Convert translates v from one unit to another of the same category.
// Unknown units and cross-category pairs are an error.
func Convert(v float64, from, to string) (float64, error) {
	for _, c := range categories {
		fromFactor, okFrom := c[from]
		toFactor, okTo := c[to]
		if okFrom && okTo {
			return v * fromFactor / toFactor, nil
		}
	}
	return 0, fmt.Errorf("unsupported conversion: %s -> %s", from, to)
}
