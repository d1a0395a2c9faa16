package quantity

import (
	"strconv"
	"strings"

	"github.com/quanta-dev/quanta/pkg/dimension"
	qerrors "github.com/quanta-dev/quanta/pkg/errors"
	"github.com/quanta-dev/quanta/pkg/expr"
	"github.com/quanta-dev/quanta/pkg/registry"
)

// Parse reads a quantity from its textual form "<number> <unit-expr>".
// The space is optional: "9.81m/s2" splits at the longest leading run
// that parses as a number. A missing or unparsable unit portion is an
// invalid_format error.
func Parse(reg *registry.Registry, s string) (Quantity, error) {
	num, unit, err := splitQuantity(s)
	if err != nil {
		return Quantity{}, err
	}
	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Quantity{}, qerrors.Wrap(err, qerrors.ErrorTypeInvalidFormat,
			"bad numeric value in quantity "+strconv.Quote(s))
	}
	return New(reg, value, unit)
}

// ParseInto parses a quantity and validates it against a target unit
// expression, returning the quantity rescaled to the target's storage
// scale. A dimension disagreement is a dimension_mismatch carrying the
// expected and actual dimension vectors.
func ParseInto(reg *registry.Registry, s, target string) (Quantity, error) {
	q, err := Parse(reg, s)
	if err != nil {
		return Quantity{}, err
	}
	return q.In(reg, target)
}

// splitQuantity separates the numeric and unit portions of a quantity
// string.
func splitQuantity(s string) (num, unit string, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", qerrors.New(qerrors.ErrorTypeInvalidFormat, "empty quantity string")
	}

	if i := strings.IndexAny(s, " \t"); i >= 0 {
		num, unit = s[:i], strings.TrimSpace(s[i+1:])
	} else {
		num, unit = splitNumericPrefix(s)
	}

	if unit == "" {
		return "", "", qerrors.Newf(qerrors.ErrorTypeInvalidFormat,
			"quantity %q has no unit", s)
	}
	if num == "" {
		return "", "", qerrors.Newf(qerrors.ErrorTypeInvalidFormat,
			"quantity %q has no numeric value", s)
	}
	return num, unit, nil
}

// splitNumericPrefix splits a no-space quantity like "9.81m/s2" at the
// longest leading substring that parses as a float.
func splitNumericPrefix(s string) (num, unit string) {
	for end := len(s); end > 0; end-- {
		if _, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return s[:end], s[end:]
		}
	}
	return "", s
}

func dimensionMismatch(reg *registry.Registry, expected, actual expr.Resolved) error {
	return qerrors.Newf(qerrors.ErrorTypeDimensionMismatch,
		"expected %s, got %s",
		describeDimension(reg, expected.Dimension),
		describeDimension(reg, actual.Dimension)).
		WithDetail("expected", expected.Dimension.String()).
		WithDetail("actual", actual.Dimension.String())
}

// describeDimension names a dimension vector by its catalog entry when
// one exists, falling back to the raw exponent form.
func describeDimension(reg *registry.Registry, v dimension.Vector) string {
	if d, ok := reg.FindDimensionByVector(v); ok {
		return d.Name + " (" + v.String() + ")"
	}
	return v.String()
}
