package policy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qerrors "github.com/quanta-dev/quanta/pkg/errors"
	"github.com/quanta-dev/quanta/pkg/expr"
	"github.com/quanta-dev/quanta/pkg/registry"
	"github.com/quanta-dev/quanta/pkg/scale"
)

func operand(t *testing.T, value float64, unit string) Operand {
	t.Helper()
	r, err := expr.Evaluate(registry.Default(), unit)
	require.NoError(t, err)
	return Operand{Value: value, Unit: r}
}

func TestAdd(t *testing.T) {
	t.Run("same scale", func(t *testing.T) {
		sum, err := Add(operand(t, 1, "m"), operand(t, 2, "m"), Strict)
		require.NoError(t, err)
		assert.Equal(t, 3.0, sum.Value)
		assert.Equal(t, scale.Identity, sum.Unit.Scale)
	})

	t.Run("smaller wins rescales to the finer unit", func(t *testing.T) {
		sum, err := Add(operand(t, 1, "m"), operand(t, 500, "mm"), SmallerWins)
		require.NoError(t, err)
		assert.Equal(t, 1500.0, sum.Value)
		assert.Equal(t, scale.Base10(-3), sum.Unit.Scale)
	})

	t.Run("left hand wins keeps the left scale", func(t *testing.T) {
		sum, err := Add(operand(t, 1, "km"), operand(t, 500, "m"), LeftHandWins)
		require.NoError(t, err)
		assert.Equal(t, 1.5, sum.Value)
		assert.Equal(t, scale.Base10(3), sum.Unit.Scale)
	})

	t.Run("strict rejects differing scales", func(t *testing.T) {
		_, err := Add(operand(t, 1, "km"), operand(t, 500, "m"), Strict)
		assert.True(t, qerrors.IsType(err, qerrors.ErrorTypeScaleMismatch))
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		_, err := Add(operand(t, 1, "m"), operand(t, 1, "s"), SmallerWins)
		require.Error(t, err)
		assert.True(t, qerrors.IsType(err, qerrors.ErrorTypeDimensionMismatch))
	})
}

func TestSub(t *testing.T) {
	// The meter's identity scale leaves every axis unused, so the
	// kilometer's exponents carry through under SmallerWins.
	diff, err := Sub(operand(t, 2, "km"), operand(t, 500, "m"), SmallerWins)
	require.NoError(t, err)
	assert.Equal(t, 1.5, diff.Value)
	assert.Equal(t, scale.Base10(3), diff.Unit.Scale)
}

func TestMulDiv(t *testing.T) {
	t.Run("mul composes dimensions and scales", func(t *testing.T) {
		p := Mul(operand(t, 3, "km"), operand(t, 2, "km"))
		assert.Equal(t, 6.0, p.Value)
		assert.Equal(t, scale.Base10(6), p.Unit.Scale)
		area, err := expr.Evaluate(registry.Default(), "m^2")
		require.NoError(t, err)
		assert.Equal(t, area.Dimension, p.Unit.Dimension)
	})

	t.Run("div cancels dimensions", func(t *testing.T) {
		v := Div(operand(t, 100, "m"), operand(t, 10, "s"))
		assert.Equal(t, 10.0, v.Value)
		speed, err := expr.Evaluate(registry.Default(), "m/s")
		require.NoError(t, err)
		assert.Equal(t, speed.Dimension, v.Unit.Dimension)
	})

	t.Run("div by zero value is IEEE infinity", func(t *testing.T) {
		v := Div(operand(t, 1, "m"), operand(t, 0, "s"))
		assert.True(t, math.IsInf(v.Value, 1))
	})
}

func TestPow(t *testing.T) {
	sq := Pow(operand(t, 3, "km"), 2)
	assert.Equal(t, 9.0, sq.Value)
	assert.Equal(t, scale.Base10(6), sq.Unit.Scale)

	inv := Pow(operand(t, 2, "s"), -1)
	assert.Equal(t, 0.5, inv.Value)
}

func TestRescaleValue(t *testing.T) {
	t.Run("identity shortcut", func(t *testing.T) {
		v, err := RescaleValue(42, scale.Base10(3), scale.Base10(3))
		require.NoError(t, err)
		assert.Equal(t, 42.0, v)
	})

	t.Run("between powers of ten", func(t *testing.T) {
		v, err := RescaleValue(1.5, scale.Base10(3), scale.Identity)
		require.NoError(t, err)
		assert.Equal(t, 1500.0, v)
	})

	t.Run("nearby astronomical scales lose no precision", func(t *testing.T) {
		v, err := RescaleValue(7, scale.Base10(100), scale.Base10(99))
		require.NoError(t, err)
		assert.Equal(t, 70.0, v)
	})

	t.Run("overflow guard", func(t *testing.T) {
		_, err := RescaleValue(1, scale.Base10(400), scale.Identity)
		require.Error(t, err)
		assert.True(t, qerrors.IsType(err, qerrors.ErrorTypeScaleOverflow))

		_, err = RescaleValue(1, scale.Identity, scale.Base10(400))
		require.Error(t, err)
		assert.True(t, qerrors.IsType(err, qerrors.ErrorTypeScaleOverflow))
	})
}
