package policy

import (
	qerrors "github.com/quanta-dev/quanta/pkg/errors"
	"github.com/quanta-dev/quanta/pkg/expr"
	"github.com/quanta-dev/quanta/pkg/registry"
	"github.com/quanta-dev/quanta/pkg/scale"
)

// Converter is one compiled end of a conversion: the resolved unit
// plus the compound empirical factor and affine offset of the source
// expression. It maps values between "as written" (inches, degrees
// Celsius) and the exact storage scale.
type Converter struct {
	Unit   expr.Resolved
	Factor float64
	Offset float64
}

// NewConverter parses and compiles a unit expression into a Converter.
func NewConverter(reg *registry.Registry, unit string) (Converter, error) {
	e, err := expr.Parse(unit)
	if err != nil {
		return Converter{}, err
	}
	r, err := expr.Eval(reg, e, expr.Tolerant)
	if err != nil {
		return Converter{}, err
	}
	factor, offset, err := expr.Factors(reg, e)
	if err != nil {
		return Converter{}, err
	}
	return Converter{Unit: r, Factor: factor, Offset: offset}, nil
}

// ToStorage folds the empirical factor and affine offset into a
// written value, yielding the value at the unit's storage scale.
// 0 degC becomes 273.15 (kelvin storage), 1 inch becomes 2.54
// (centimeter storage).
func (c Converter) ToStorage(v float64) float64 {
	return v*c.Factor + c.Offset
}

// FromStorage is the inverse of ToStorage: it unfolds a storage-scale
// value back to the written unit.
func (c Converter) FromStorage(v float64) float64 {
	return v/c.Factor - c.Offset
}

// IsStorageExact reports whether the converter is the identity mapping.
func (c Converter) IsStorageExact() bool {
	return c.Factor == 1.0 && c.Offset == 0.0
}

// Rescale converts a value from one unit expression to another of the
// same dimension: the source's factor and offset fold the value into
// storage, the exact prime-power ratio moves it between the two
// storage scales, and the target's factor and offset unfold it.
func Rescale(reg *registry.Registry, value float64, from, to string) (float64, error) {
	src, err := NewConverter(reg, from)
	if err != nil {
		return 0, err
	}
	dst, err := NewConverter(reg, to)
	if err != nil {
		return 0, err
	}
	return RescaleConverted(value, src, dst)
}

// RescaleConverted is Rescale over pre-compiled converters, for
// callers converting many values between one fixed pair of units.
func RescaleConverted(value float64, src, dst Converter) (float64, error) {
	if !src.Unit.Dimension.Equal(dst.Unit.Dimension) {
		return 0, qerrors.Newf(qerrors.ErrorTypeDimensionMismatch,
			"cannot rescale %s to %s", src.Unit.Dimension, dst.Unit.Dimension).
			WithDetail("expected", dst.Unit.Dimension.String()).
			WithDetail("actual", src.Unit.Dimension.String())
	}
	storage := src.ToStorage(value)
	scaled, err := RescaleValue(storage, src.Unit.Scale, dst.Unit.Scale)
	if err != nil {
		return 0, err
	}
	return dst.FromStorage(scaled), nil
}

// Erase converts a dimensionless or pure-angle operand to a bare
// number. This is the only sanctioned exit from the unit system:
// a zero dimension vector erases by rescaling to the identity scale,
// and a pure-angle operand erases only when it is already at radian
// (identity) scale. Everything else fails with dimension_mismatch.
func Erase(o Operand) (float64, error) {
	switch {
	case o.Unit.Dimension.IsZero():
		return RescaleValue(o.Value, o.Unit.Scale, scale.Identity)
	case o.Unit.Dimension.IsPureAngle() && o.Unit.Scale.IsIdentity():
		return o.Value, nil
	case o.Unit.Dimension.IsPureAngle():
		return 0, qerrors.Newf(qerrors.ErrorTypeDimensionMismatch,
			"angle quantity at scale %s is not in radians; rescale to rad before erasing",
			o.Unit.Scale)
	default:
		return 0, qerrors.Newf(qerrors.ErrorTypeDimensionMismatch,
			"cannot erase quantity of dimension %s to a bare number", o.Unit.Dimension)
	}
}
