package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to string
		want     float64
	}{
		{"metres to centimetres", 1, "m", "cm", 100},
		{"kilometres to metres", 2, "km", "m", 2000},
		{"miles to kilometres", 1, "mi", "km", 1.60934},
		{"feet to inches", 3, "ft", "in", 36},
		{"kilograms to grams", 1, "kg", "g", 1000},
		{"pounds to kilograms", 1, "lb", "kg", 0.453592},
		{"metric tons to kilograms", 1, "ton", "kg", 1000},
		{"seconds to milliseconds", 1, "s", "ms", 1000},
		{"days to hours", 1, "d", "h", 24},
		{"identity", 123.456, "kg", "kg", 123.456},
		{"zero value", 0, "m", "cm", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestConvert_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
	}{
		{"length to weight", "m", "kg"},
		{"time to weight", "s", "lb"},
		{"unknown source", "furlong", "m"},
		{"unknown target", "kg", "stone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(1, tt.from, tt.to)
			assert.Error(t, err)
			assert.Zero(t, got)
		})
	}
}
