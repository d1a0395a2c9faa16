// Package quantity pairs a numeric value with a resolved unit and
// checks every operation against the unit algebra at runtime. Values
// are normalized to their unit's storage scale on construction: a
// quantity created from 1 inch holds 2.54 at centimeter scale, and
// 0 degrees Celsius holds 273.15 at kelvin scale.
package quantity

import (
	"github.com/quanta-dev/quanta/pkg/expr"
	"github.com/quanta-dev/quanta/pkg/policy"
	"github.com/quanta-dev/quanta/pkg/registry"
)

// Quantity is a value at a resolved unit's storage scale.
type Quantity struct {
	Value float64
	Unit  expr.Resolved
}

// New builds a quantity from a value as written in the given unit
// expression, folding any empirical factor and affine offset into the
// stored value.
func New(reg *registry.Registry, value float64, unit string) (Quantity, error) {
	c, err := policy.NewConverter(reg, unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: c.ToStorage(value), Unit: c.Unit}, nil
}

// Convert expresses the quantity's value in the target unit, which
// must have the same dimension.
func (q Quantity) Convert(reg *registry.Registry, unit string) (float64, error) {
	dst, err := policy.NewConverter(reg, unit)
	if err != nil {
		return 0, err
	}
	return policy.RescaleConverted(q.Value, policy.Converter{Unit: q.Unit, Factor: 1}, dst)
}

// In returns the quantity rescaled to the target unit's storage scale.
func (q Quantity) In(reg *registry.Registry, unit string) (Quantity, error) {
	dst, err := policy.NewConverter(reg, unit)
	if err != nil {
		return Quantity{}, err
	}
	if !q.Unit.Dimension.Equal(dst.Unit.Dimension) {
		return Quantity{}, dimensionMismatch(reg, dst.Unit, q.Unit)
	}
	v, err := policy.RescaleValue(q.Value, q.Unit.Scale, dst.Unit.Scale)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: v, Unit: dst.Unit}, nil
}

// Add combines two same-dimension quantities under the given policy.
func (q Quantity) Add(other Quantity, p policy.RescalePolicy) (Quantity, error) {
	out, err := policy.Add(operand(q), operand(other), p)
	if err != nil {
		return Quantity{}, err
	}
	return fromOperand(out), nil
}

// Sub subtracts a same-dimension quantity under the given policy.
func (q Quantity) Sub(other Quantity, p policy.RescalePolicy) (Quantity, error) {
	out, err := policy.Sub(operand(q), operand(other), p)
	if err != nil {
		return Quantity{}, err
	}
	return fromOperand(out), nil
}

// Mul multiplies two quantities; the result unit is the composition.
func (q Quantity) Mul(other Quantity) Quantity {
	return fromOperand(policy.Mul(operand(q), operand(other)))
}

// Div divides two quantities.
func (q Quantity) Div(other Quantity) Quantity {
	return fromOperand(policy.Div(operand(q), operand(other)))
}

// Pow raises the quantity to an integer power.
func (q Quantity) Pow(n int) Quantity {
	return fromOperand(policy.Pow(operand(q), n))
}

// Erase converts a dimensionless or radian-scale angle quantity to a
// bare number.
func (q Quantity) Erase() (float64, error) {
	return policy.Erase(operand(q))
}

// IsDimensionless reports whether the quantity has no dimension.
func (q Quantity) IsDimensionless() bool {
	return q.Unit.IsDimensionless()
}

// DimensionName returns the catalog name of the quantity's dimension,
// if its vector matches a registered dimension.
func (q Quantity) DimensionName(reg *registry.Registry) (string, bool) {
	d, ok := reg.FindDimensionByVector(q.Unit.Dimension)
	if !ok {
		return "", false
	}
	return d.Name, true
}

func operand(q Quantity) policy.Operand {
	return policy.Operand{Value: q.Value, Unit: q.Unit}
}

func fromOperand(o policy.Operand) Quantity {
	return Quantity{Value: o.Value, Unit: o.Unit}
}
