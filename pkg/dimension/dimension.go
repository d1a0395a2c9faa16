// Package dimension implements the eight-axis physical dimension vector.
//
// A dimension vector records the integer exponent of each orthogonal
// physical axis (mass, length, time, current, temperature, amount,
// luminosity, angle). Multiplying two units adds their vectors, dividing
// subtracts them, and raising a unit to a power scales the vector.
// The all-zero vector identifies a dimensionless quantity.
package dimension

import "strconv"

// Axis indexes into a Vector.
type Axis int

const (
	// Mass is the mass axis (SI base: gram storage).
	Mass Axis = iota
	// Length is the length axis (SI base: meter).
	Length
	// Time is the time axis (SI base: second).
	Time
	// Current is the electric current axis (SI base: ampere).
	Current
	// Temperature is the thermodynamic temperature axis (SI base: kelvin).
	Temperature
	// Amount is the amount-of-substance axis (SI base: mole).
	Amount
	// Luminosity is the luminous intensity axis (SI base: candela).
	Luminosity
	// Angle is the plane angle axis (base: radian).
	Angle

	// NumAxes is the number of physical axes tracked.
	NumAxes
)

// axisSymbols are the conventional one-letter dimension symbols.
var axisSymbols = [NumAxes]string{"M", "L", "T", "I", "Θ", "N", "J", "A"}

// Symbol returns the conventional symbol for the axis.
func (a Axis) Symbol() string {
	return axisSymbols[a]
}

// Vector is an exponent per physical axis. The zero value is the
// dimensionless vector. Vectors are small value types; all operations
// return new vectors and never mutate their receivers.
type Vector [NumAxes]int

// Zero is the dimensionless vector.
var Zero = Vector{}

// Basis returns the vector with a single 1 on the given axis.
func Basis(a Axis) Vector {
	var v Vector
	v[a] = 1
	return v
}

// Add returns the elementwise sum of v and o. This is the dimension of
// the product of two units.
func (v Vector) Add(o Vector) Vector {
	var out Vector
	for i := range v {
		out[i] = v[i] + o[i]
	}
	return out
}

// Sub returns the elementwise difference of v and o. This is the
// dimension of the quotient of two units.
func (v Vector) Sub(o Vector) Vector {
	return v.Add(o.Neg())
}

// Neg returns the elementwise negation of v.
func (v Vector) Neg() Vector {
	var out Vector
	for i := range v {
		out[i] = -v[i]
	}
	return out
}

// Scale returns v with every exponent multiplied by n. This is the
// dimension of a unit raised to the n-th power.
func (v Vector) Scale(n int) Vector {
	var out Vector
	for i := range v {
		out[i] = v[i] * n
	}
	return out
}

// IsZero reports whether v is dimensionless.
func (v Vector) IsZero() bool {
	return v == Zero
}

// Equal reports whether v and o are the same dimension.
func (v Vector) Equal(o Vector) bool {
	return v == o
}

// IsBasis reports whether v has exactly one axis with exponent 1 and
// returns that axis.
func (v Vector) IsBasis() (Axis, bool) {
	found := Axis(-1)
	for i, x := range v {
		if x == 0 {
			continue
		}
		if x != 1 || found >= 0 {
			return -1, false
		}
		found = Axis(i)
	}
	if found < 0 {
		return -1, false
	}
	return found, true
}

// IsPureAngle reports whether the angle axis is the only nonzero axis.
func (v Vector) IsPureAngle() bool {
	if v[Angle] == 0 {
		return false
	}
	for i, x := range v {
		if Axis(i) != Angle && x != 0 {
			return false
		}
	}
	return true
}

// String renders the vector as a product of axis symbols, e.g.
// "M^1*L^2*T^-2". The dimensionless vector renders as "1".
func (v Vector) String() string {
	var b []byte
	for i, x := range v {
		if x == 0 {
			continue
		}
		if len(b) > 0 {
			b = append(b, '*')
		}
		b = append(b, axisSymbols[i]...)
		b = append(b, '^')
		b = strconv.AppendInt(b, int64(x), 10)
	}
	if len(b) == 0 {
		return "1"
	}
	return string(b)
}
