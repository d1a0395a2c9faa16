package expr

import (
	"math"

	"github.com/quanta-dev/quanta/pkg/dimension"
	qerrors "github.com/quanta-dev/quanta/pkg/errors"
	"github.com/quanta-dev/quanta/pkg/registry"
	"github.com/quanta-dev/quanta/pkg/scale"
)

// Mode selects how empirically-converted units are treated during
// evaluation.
type Mode int

const (
	// Tolerant accepts every registered unit, including empirical and
	// affine ones. This is the mode for quantity values, where the
	// numeric value absorbs the empirical factor.
	Tolerant Mode = iota
	// Strict accepts only storage-exact units. Use it where the result
	// must stand alone as an exact scale, with no numeric value to
	// carry an empirical factor.
	Strict
)

// Resolved is the evaluator output: a location in dimension space plus
// an exact scale, with no reference to the source text.
type Resolved struct {
	Dimension dimension.Vector
	Scale     scale.Vector
}

// IsDimensionless reports whether the resolved unit has no dimension.
func (r Resolved) IsDimensionless() bool {
	return r.Dimension.IsZero()
}

// Evaluate parses and evaluates a unit expression in Tolerant mode.
// Evaluation is pure: the same input always yields the same Resolved.
func Evaluate(reg *registry.Registry, input string) (Resolved, error) {
	return EvaluateMode(reg, input, Tolerant)
}

// EvaluateMode parses and evaluates a unit expression in the given
// mode.
func EvaluateMode(reg *registry.Registry, input string, mode Mode) (Resolved, error) {
	e, err := Parse(input)
	if err != nil {
		return Resolved{}, err
	}
	return Eval(reg, e, mode)
}

// Eval reduces a parsed expression to a Resolved unit. Multiplication
// adds dimension vectors and multiplies scales, division subtracts and
// divides, exponentiation scales both vectors by the exponent. Unknown
// unit names fail with unknown_unit.
func Eval(reg *registry.Registry, e Expr, mode Mode) (Resolved, error) {
	switch n := e.(type) {
	case one:
		return Resolved{}, nil

	case powerOfTen:
		return Resolved{Scale: scale.Base10(n.exp)}, nil

	case unitAtom:
		pe, err := reg.Resolve(n.name)
		if err != nil {
			return Resolved{}, err
		}
		if mode == Strict && pe.Unit.HasConversion() {
			return Resolved{}, qerrors.Newf(qerrors.ErrorTypeInvalidFormat,
				"empirical unit %q is not an exact scale; evaluate it in tolerant mode",
				n.name)
		}
		return Resolved{
			Dimension: pe.Dimension.Exponents.Scale(n.exp),
			Scale:     pe.Unit.Scale.Mul(pe.Prefix.Scale()).ScalarExp(n.exp),
		}, nil

	case mulExpr:
		a, err := Eval(reg, n.a, mode)
		if err != nil {
			return Resolved{}, err
		}
		b, err := Eval(reg, n.b, mode)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{
			Dimension: a.Dimension.Add(b.Dimension),
			Scale:     a.Scale.Mul(b.Scale),
		}, nil

	case divExpr:
		a, err := Eval(reg, n.a, mode)
		if err != nil {
			return Resolved{}, err
		}
		b, err := Eval(reg, n.b, mode)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{
			Dimension: a.Dimension.Sub(b.Dimension),
			Scale:     a.Scale.Div(b.Scale),
		}, nil

	case powExpr:
		base, err := Eval(reg, n.base, mode)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{
			Dimension: base.Dimension.Scale(n.exp),
			Scale:     base.Scale.ScalarExp(n.exp),
		}, nil

	default:
		return Resolved{}, qerrors.Newf(qerrors.ErrorTypeInternal,
			"unhandled expression node %T", e)
	}
}

// Factors computes the compound empirical conversion factor and affine
// offset of an expression: the residue the exact scale vector cannot
// carry. Storage-exact expressions yield (1, 0).
//
// Composition rules: factors multiply through products and divide
// through quotients; an affine offset on one side of a product is
// scaled by the other side's factor, an offset in a numerator is
// divided by the denominator's factor, and exponentiation raises the
// factor to the power while multiplying the offset by it.
func Factors(reg *registry.Registry, e Expr) (factor, offset float64, err error) {
	switch n := e.(type) {
	case one, powerOfTen:
		return 1, 0, nil

	case unitAtom:
		pe, err := reg.Resolve(n.name)
		if err != nil {
			return 0, 0, err
		}
		factor = pe.Unit.ConversionFactor
		offset = pe.Unit.AffineOffset
		if n.exp != 1 {
			factor = math.Pow(factor, float64(n.exp))
			offset *= float64(n.exp)
		}
		return factor, offset, nil

	case mulExpr:
		fa, oa, err := Factors(reg, n.a)
		if err != nil {
			return 0, 0, err
		}
		fb, ob, err := Factors(reg, n.b)
		if err != nil {
			return 0, 0, err
		}
		var o float64
		switch {
		case oa != 0 && ob != 0:
			o = oa*fb + ob*fa
		case oa != 0:
			o = oa * fb
		default:
			o = ob * fa
		}
		return fa * fb, o, nil

	case divExpr:
		fa, oa, err := Factors(reg, n.a)
		if err != nil {
			return 0, 0, err
		}
		fb, _, err := Factors(reg, n.b)
		if err != nil {
			return 0, 0, err
		}
		return fa / fb, oa / fb, nil

	case powExpr:
		f, o, err := Factors(reg, n.base)
		if err != nil {
			return 0, 0, err
		}
		return math.Pow(f, float64(n.exp)), o * float64(n.exp), nil

	default:
		return 0, 0, qerrors.Newf(qerrors.ErrorTypeInternal,
			"unhandled expression node %T", e)
	}
}
