package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qerrors "github.com/quanta-dev/quanta/pkg/errors"
	"github.com/quanta-dev/quanta/pkg/registry"
)

func TestRescale(t *testing.T) {
	reg := registry.Default()

	tests := []struct {
		value    float64
		from, to string
		want     float64
		delta    float64
	}{
		{1000, "m", "km", 1, 0},
		{1, "km", "mm", 1e6, 0},
		{1, "in", "cm", 2.54, 0},
		{1, "mi", "km", 1.609344, 1e-12},
		{0, "degC", "K", 273.15, 0},
		{100, "degC", "K", 373.15, 1e-12},
		{32, "degF", "degC", 0, 1e-10},
		{212, "degF", "degC", 100, 1e-10},
		{0, "K", "degC", -273.15, 0},
		{1, "h", "s", 3600, 0},
		{90, "deg", "grad", 100, 1e-12},
		{1, "kWh", "J", 3.6e6, 1e-6},
		{1, "m/s", "km/h", 3.6, 1e-12},
		{1, "L", "mL", 1000, 0},
		{1, "acre", "m^2", 4046.8564224, 1e-8},
	}
	for _, tc := range tests {
		t.Run(tc.from+"->"+tc.to, func(t *testing.T) {
			got, err := Rescale(reg, tc.value, tc.from, tc.to)
			require.NoError(t, err)
			if tc.delta == 0 {
				assert.Equal(t, tc.want, got)
			} else {
				assert.InDelta(t, tc.want, got, tc.delta)
			}
		})
	}

	t.Run("dimension mismatch", func(t *testing.T) {
		_, err := Rescale(reg, 1, "m", "s")
		require.Error(t, err)
		assert.True(t, qerrors.IsType(err, qerrors.ErrorTypeDimensionMismatch))
	})

	t.Run("unknown unit", func(t *testing.T) {
		_, err := Rescale(reg, 1, "m", "xyz")
		assert.True(t, qerrors.IsType(err, qerrors.ErrorTypeUnknownUnit))
	})
}

func TestRescaleRoundTrip(t *testing.T) {
	reg := registry.Default()

	units := []string{"m", "km", "in", "ft", "yd", "mi", "nmi", "ly"}
	for _, from := range units {
		for _, to := range units {
			v, err := Rescale(reg, 123.25, from, to)
			require.NoError(t, err)
			back, err := Rescale(reg, v, to, from)
			require.NoError(t, err)
			assert.InDelta(t, 123.25, back, 1e-9, "%s -> %s -> %s", from, to, from)
		}
	}
}

func TestConverter(t *testing.T) {
	reg := registry.Default()

	t.Run("storage exact", func(t *testing.T) {
		c, err := NewConverter(reg, "km")
		require.NoError(t, err)
		assert.True(t, c.IsStorageExact())
		assert.Equal(t, 5.0, c.ToStorage(5))
		assert.Equal(t, 5.0, c.FromStorage(5))
	})

	t.Run("empirical", func(t *testing.T) {
		c, err := NewConverter(reg, "in")
		require.NoError(t, err)
		assert.False(t, c.IsStorageExact())
		assert.Equal(t, 2.54, c.ToStorage(1))
		assert.InDelta(t, 1.0, c.FromStorage(2.54), 1e-15)
	})

	t.Run("affine", func(t *testing.T) {
		c, err := NewConverter(reg, "degC")
		require.NoError(t, err)
		assert.Equal(t, 273.15, c.ToStorage(0))
		assert.Equal(t, 0.0, c.FromStorage(273.15))
	})

	t.Run("compound expression", func(t *testing.T) {
		c, err := NewConverter(reg, "in/s")
		require.NoError(t, err)
		assert.Equal(t, 2.54, c.Factor)
	})
}

func TestErase(t *testing.T) {
	t.Run("dimensionless at identity", func(t *testing.T) {
		v, err := Erase(operand(t, 3.5, "1"))
		require.NoError(t, err)
		assert.Equal(t, 3.5, v)
	})

	t.Run("dimensionless at a scale folds it in", func(t *testing.T) {
		v, err := Erase(operand(t, 2, "10^3"))
		require.NoError(t, err)
		assert.Equal(t, 2000.0, v)

		v, err = Erase(operand(t, 5, "km/m"))
		require.NoError(t, err)
		assert.Equal(t, 5000.0, v)
	})

	t.Run("radians erase as-is", func(t *testing.T) {
		v, err := Erase(operand(t, 1.57, "rad"))
		require.NoError(t, err)
		assert.Equal(t, 1.57, v)
	})

	t.Run("degrees refuse to erase", func(t *testing.T) {
		_, err := Erase(operand(t, 90, "deg"))
		require.Error(t, err)
		assert.True(t, qerrors.IsType(err, qerrors.ErrorTypeDimensionMismatch))
	})

	t.Run("dimensioned quantities refuse to erase", func(t *testing.T) {
		_, err := Erase(operand(t, 1, "m"))
		require.Error(t, err)
		assert.True(t, qerrors.IsType(err, qerrors.ErrorTypeDimensionMismatch))
	})
}

func BenchmarkRescale(b *testing.B) {
	reg := registry.Default()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Rescale(reg, 1234.5, "mi", "km"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRescaleConverted(b *testing.B) {
	reg := registry.Default()
	src, err := NewConverter(reg, "mi")
	if err != nil {
		b.Fatal(err)
	}
	dst, err := NewConverter(reg, "km")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := RescaleConverted(1234.5, src, dst); err != nil {
			b.Fatal(err)
		}
	}
}
