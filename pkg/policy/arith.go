package policy

import (
	"math"

	qerrors "github.com/quanta-dev/quanta/pkg/errors"
	"github.com/quanta-dev/quanta/pkg/expr"
	"github.com/quanta-dev/quanta/pkg/scale"
)

// Operand is a numeric value at a resolved unit. The value is assumed
// to already be expressed at the unit's storage scale; empirical
// factors and affine offsets are folded in before an Operand is formed
// (see Rescale and pkg/quantity).
type Operand struct {
	Value float64
	Unit  expr.Resolved
}

// Add combines two same-dimension operands additively. Equal scales
// add directly; differing scales are reconciled by the policy and the
// losing operand is rescaled before the numeric add.
func Add(a, b Operand, p RescalePolicy) (Operand, error) {
	return combine(a, b, p, 1)
}

// Sub is Add with the right operand negated.
func Sub(a, b Operand, p RescalePolicy) (Operand, error) {
	return combine(a, b, p, -1)
}

func combine(a, b Operand, p RescalePolicy, sign float64) (Operand, error) {
	if !a.Unit.Dimension.Equal(b.Unit.Dimension) {
		return Operand{}, qerrors.Newf(qerrors.ErrorTypeDimensionMismatch,
			"cannot add %s and %s", a.Unit.Dimension, b.Unit.Dimension).
			WithDetail("expected", a.Unit.Dimension.String()).
			WithDetail("actual", b.Unit.Dimension.String())
	}

	target, err := ResolveScale(a.Unit.Scale, b.Unit.Scale, p)
	if err != nil {
		return Operand{}, err
	}
	av, err := RescaleValue(a.Value, a.Unit.Scale, target)
	if err != nil {
		return Operand{}, err
	}
	bv, err := RescaleValue(b.Value, b.Unit.Scale, target)
	if err != nil {
		return Operand{}, err
	}
	return Operand{
		Value: av + sign*bv,
		Unit:  expr.Resolved{Dimension: a.Unit.Dimension, Scale: target},
	}, nil
}

// Mul multiplies two operands. Always legal: the result unit is the
// algebraic composition, so no rescale is involved.
func Mul(a, b Operand) Operand {
	return Operand{
		Value: a.Value * b.Value,
		Unit: expr.Resolved{
			Dimension: a.Unit.Dimension.Add(b.Unit.Dimension),
			Scale:     a.Unit.Scale.Mul(b.Unit.Scale),
		},
	}
}

// Div divides two operands. Division by a zero value follows IEEE
// semantics and yields an infinite value, not an error.
func Div(a, b Operand) Operand {
	return Operand{
		Value: a.Value / b.Value,
		Unit: expr.Resolved{
			Dimension: a.Unit.Dimension.Sub(b.Unit.Dimension),
			Scale:     a.Unit.Scale.Div(b.Unit.Scale),
		},
	}
}

// Pow raises an operand to an integer power.
func Pow(a Operand, n int) Operand {
	return Operand{
		Value: math.Pow(a.Value, float64(n)),
		Unit: expr.Resolved{
			Dimension: a.Unit.Dimension.Scale(n),
			Scale:     a.Unit.Scale.ScalarExp(n),
		},
	}
}

// RescaleValue moves a value between two storage scales of the same
// dimension by the exact prime-power ratio. The ratio is evaluated
// from the per-axis exponent difference, so nearby scales cost no
// precision even when both are astronomically far from identity.
func RescaleValue(value float64, from, to scale.Vector) (float64, error) {
	if from == to {
		return value, nil
	}
	r, err := ratio(from, to)
	if err != nil {
		return 0, err
	}
	return value * r, nil
}

// ratio evaluates from/to as a float, failing with scale_overflow when
// the exponent difference leaves the floating range. Unreachable for
// realistic physical exponents; the guard exists so a pathological
// catalog or expression fails loudly instead of propagating Inf.
func ratio(from, to scale.Vector) (float64, error) {
	f := scale.RatioFloat(from, to)
	if math.IsInf(f, 0) || f == 0 {
		return 0, qerrors.Newf(qerrors.ErrorTypeScaleOverflow,
			"scale ratio %s to %s is not representable as float64", from, to)
	}
	return f, nil
}
