package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quanta-dev/quanta/pkg/expr"
	"github.com/quanta-dev/quanta/pkg/registry"
)

func TestRender(t *testing.T) {
	reg := registry.Default()

	tests := []struct {
		input string
		want  string
	}{
		// Named catalog units render by their first symbol.
		{"N", "N"},
		{"kg*m/s^2", "N"},
		{"J", "J"},
		{"deg", "deg"},
		{"min", "min"},
		// Prefixed canonical units reconstruct the prefix.
		{"km", "km"},
		{"kilometer", "km"},
		{"mg", "mg"},
		{"kJ", "kJ"},
		{"10^3*m", "km"},
		// Mass at identity scale is the kilogram.
		{"kg", "kg"},
		// Unnamed dimensions fall back to the systematic form.
		{"m/s^2", "m/s^2"},
		{"m/s", "m/s"},
		{"kg*m^2/s^3.A", "V"},
		// A^-1 inside a numerator factor stays in the numerator; only
		// the factors after '/' divide.
		{"kg*m^2/s^3*A^-1", "kg*m^2*A/s^3"},
		{"mol/s", "mol/s"},
		// Dimensionless forms.
		{"1", "1"},
		{"10^3", "10^3"},
		{"km/m", "10^3"},
		// Empirical units resolve to their storage neighbor.
		{"in", "cm"},
		{"mi", "km"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			r, err := expr.Evaluate(reg, tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, Render(reg, r))
		})
	}
}

func TestRenderRoundTrips(t *testing.T) {
	reg := registry.Default()

	// Render output must itself evaluate back to the same resolved
	// unit, so serialized quantities survive a decode.
	inputs := []string{
		"km", "kg", "N", "J/kg.K", "m/s^2", "deg", "min",
		"10^3", "1", "kWh", "µm", "mol",
	}
	for _, input := range inputs {
		r, err := expr.Evaluate(reg, input)
		require.NoError(t, err)
		rendered := Render(reg, r)
		back, err := expr.Evaluate(reg, rendered)
		require.NoError(t, err, "rendered form %q of %q", rendered, input)
		assert.Equal(t, r, back, "%q rendered as %q", input, rendered)
	}
}

func TestQuantityString(t *testing.T) {
	assert.Equal(t, "5 km", mustNew(t, 5, "km").String())
	assert.Equal(t, "2.54 cm", mustNew(t, 1, "in").String())
	assert.Equal(t, "273.15 K", mustNew(t, 0, "degC").String())
	assert.Equal(t, "3.5 1", mustNew(t, 3.5, "1").String())
}
