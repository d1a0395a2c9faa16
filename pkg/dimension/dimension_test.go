package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorAlgebra(t *testing.T) {
	force := Vector{1, 1, -2, 0, 0, 0, 0, 0}
	length := Basis(Length)

	t.Run("add", func(t *testing.T) {
		energy := force.Add(length)
		assert.Equal(t, Vector{1, 2, -2, 0, 0, 0, 0, 0}, energy)
	})

	t.Run("sub", func(t *testing.T) {
		pressure := force.Sub(length.Scale(2))
		assert.Equal(t, Vector{1, -1, -2, 0, 0, 0, 0, 0}, pressure)
	})

	t.Run("neg", func(t *testing.T) {
		assert.Equal(t, Vector{-1, -1, 2, 0, 0, 0, 0, 0}, force.Neg())
		assert.Equal(t, Zero, Zero.Neg())
	})

	t.Run("scale", func(t *testing.T) {
		assert.Equal(t, Vector{0, 2, 0, 0, 0, 0, 0, 0}, length.Scale(2))
		assert.Equal(t, Zero, force.Scale(0))
	})

	t.Run("add then sub round-trips", func(t *testing.T) {
		assert.Equal(t, force, force.Add(length).Sub(length))
	})
}

func TestVectorPredicates(t *testing.T) {
	t.Run("zero is dimensionless", func(t *testing.T) {
		assert.True(t, Zero.IsZero())
		assert.False(t, Basis(Mass).IsZero())
		assert.True(t, Basis(Mass).Sub(Basis(Mass)).IsZero())
	})

	t.Run("equal", func(t *testing.T) {
		assert.True(t, Basis(Time).Equal(Basis(Time)))
		assert.False(t, Basis(Time).Equal(Basis(Length)))
	})

	t.Run("basis detection", func(t *testing.T) {
		axis, ok := Basis(Temperature).IsBasis()
		assert.True(t, ok)
		assert.Equal(t, Temperature, axis)

		_, ok = Zero.IsBasis()
		assert.False(t, ok)
		_, ok = Basis(Length).Scale(2).IsBasis()
		assert.False(t, ok)
		_, ok = Basis(Length).Add(Basis(Time)).IsBasis()
		assert.False(t, ok)
	})

	t.Run("pure angle", func(t *testing.T) {
		assert.True(t, Basis(Angle).IsPureAngle())
		assert.True(t, Basis(Angle).Scale(2).IsPureAngle())
		assert.False(t, Zero.IsPureAngle())
		assert.False(t, Basis(Angle).Add(Basis(Time)).IsPureAngle())
	})
}

func TestVectorString(t *testing.T) {
	assert.Equal(t, "1", Zero.String())
	assert.Equal(t, "L^1", Basis(Length).String())
	assert.Equal(t, "M^1*L^2*T^-2", Vector{1, 2, -2, 0, 0, 0, 0, 0}.String())
}
