// Package scale implements the exact multiplicative scale factor used to
// relate a unit to its dimension's base unit.
//
// A scale is encoded as an integer exponent vector over the primes 2, 3,
// 5 and the transcendental π, representing the factor
// 2^a · 3^b · 5^c · π^d. Composition of scales is pure integer
// arithmetic on the exponents; no rounding occurs until Float is called
// at the boundary where an exact factor must become a floating value.
//
// The basis covers every scale the catalog needs: powers of ten
// (10 = 2·5) for SI prefixes, powers of six (6 = 2·3) for the sexagesimal
// time units, and π for angular units such as the degree (π/180).
package scale

import (
	"math"
	"strconv"
)

// Vector holds the exponents of 2, 3, 5 and π, in that order.
type Vector [4]int

// Identity is the scale factor 1.
var Identity = Vector{}

// Base2 returns the scale 2^e.
func Base2(e int) Vector {
	return Vector{e, 0, 0, 0}
}

// Base6 returns the scale 6^e, factored as 2^e · 3^e.
func Base6(e int) Vector {
	return Vector{e, e, 0, 0}
}

// Base10 returns the scale 10^e, factored as 2^e · 5^e.
func Base10(e int) Vector {
	return Vector{e, 0, e, 0}
}

// Mul returns the scale of the product: exponents add elementwise.
func (v Vector) Mul(o Vector) Vector {
	var out Vector
	for i := range v {
		out[i] = v[i] + o[i]
	}
	return out
}

// Div returns the scale of the quotient v/o.
func (v Vector) Div(o Vector) Vector {
	return v.Mul(o.Neg())
}

// Neg returns the reciprocal scale: exponents negate elementwise.
func (v Vector) Neg() Vector {
	var out Vector
	for i := range v {
		out[i] = -v[i]
	}
	return out
}

// ScalarExp returns the scale raised to the n-th power.
func (v Vector) ScalarExp(n int) Vector {
	var out Vector
	for i := range v {
		out[i] = v[i] * n
	}
	return out
}

// IsIdentity reports whether v is the scale factor 1.
func (v Vector) IsIdentity() bool {
	return v == Identity
}

// Log10 reports the exponent e such that v == 10^e exactly. The second
// return is false when v is not a clean power of ten.
func (v Vector) Log10() (int, bool) {
	if v[1] == 0 && v[3] == 0 && v[0] == v[2] {
		return v[0], true
	}
	return 0, false
}

// Float evaluates the scale to a floating value. This is the only place
// the exact representation is allowed to degrade to a float; callers
// must keep composing vectors and defer Float to the final conversion
// or display step.
func (v Vector) Float() float64 {
	return math.Pow(2, float64(v[0])) *
		math.Pow(3, float64(v[1])) *
		math.Pow(5, float64(v[2])) *
		math.Pow(math.Pi, float64(v[3]))
}

// RatioFloat evaluates v/o by forming the per-axis exponent difference
// first and evaluating that single small vector. Evaluating the
// difference keeps the intermediate magnitudes small, which loses less
// floating precision than computing v.Float()/o.Float().
func RatioFloat(v, o Vector) float64 {
	return v.Div(o).Float()
}

// String renders the factor in prime-power form, e.g. "2^3*5^3".
// The identity renders as "1".
func (v Vector) String() string {
	bases := [4]string{"2", "3", "5", "pi"}
	var b []byte
	for i, e := range v {
		if e == 0 {
			continue
		}
		if len(b) > 0 {
			b = append(b, '*')
		}
		b = append(b, bases[i]...)
		b = append(b, '^')
		b = strconv.AppendInt(b, int64(e), 10)
	}
	if len(b) == 0 {
		return "1"
	}
	return string(b)
}
