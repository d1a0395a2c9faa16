package quantity

import (
	"strconv"
	"strings"

	"github.com/quanta-dev/quanta/pkg/dimension"
	"github.com/quanta-dev/quanta/pkg/expr"
	"github.com/quanta-dev/quanta/pkg/registry"
)

// axisSymbols are the storage-exact unit symbols at identity scale,
// one per dimension axis. The mass axis uses kg: the identity scale of
// the mass dimension is the kilogram, with the gram at 10^-3.
var axisSymbols = [dimension.NumAxes]string{
	"kg", "m", "s", "A", "K", "mol", "cd", "rad",
}

// Render names a resolved unit as a parseable unit expression. Named
// catalog units and prefixed canonical units are preferred ("deg",
// "km"); anything else renders as a product of the per-axis base
// symbols with an explicit 10^n factor for clean power-of-ten scales.
// Scales outside the power-of-ten family that match no catalog unit
// fall back to prime-power notation, which is display-only.
func Render(reg *registry.Registry, r expr.Resolved) string {
	if r.Dimension.IsZero() {
		if r.Scale.IsIdentity() {
			return "1"
		}
		if e, ok := r.Scale.Log10(); ok {
			return "10^" + strconv.Itoa(e)
		}
		return r.Scale.String()
	}

	if name, ok := renderNamed(reg, r); ok {
		return name
	}
	return renderSystematic(r)
}

// renderNamed matches the resolved unit against the catalog: first an
// exact storage-exact unit of the same dimension and scale, then a
// prefixed form of the dimension's canonical unit.
func renderNamed(reg *registry.Registry, r expr.Resolved) (string, bool) {
	d, ok := reg.FindDimensionByVector(r.Dimension)
	if !ok {
		return "", false
	}
	for _, u := range d.Units {
		if u.IsStorageExact() && u.Scale == r.Scale && len(u.Symbols) > 0 {
			return u.Symbols[0], true
		}
	}
	base := d.Base()
	if base == nil || !d.Prefixable(base) || len(base.Symbols) == 0 {
		return "", false
	}
	e, ok := r.Scale.Div(base.Scale).Log10()
	if !ok {
		return "", false
	}
	for _, p := range registry.Prefixes {
		if p.Exp10 == e {
			return p.Symbol + base.Symbols[0], true
		}
	}
	return "", false
}

// renderSystematic builds the per-axis base-symbol product, e.g.
// "10^3*kg*m/s^2".
func renderSystematic(r expr.Resolved) string {
	var num, den []string

	if !r.Scale.IsIdentity() {
		if e, ok := r.Scale.Log10(); ok {
			num = append(num, "10^"+strconv.Itoa(e))
		} else {
			num = append(num, r.Scale.String())
		}
	}

	for axis := dimension.Axis(0); axis < dimension.NumAxes; axis++ {
		exp := r.Dimension[axis]
		switch {
		case exp > 0:
			num = append(num, axisTerm(axis, exp))
		case exp < 0:
			den = append(den, axisTerm(axis, -exp))
		}
	}

	if len(num) == 0 {
		num = append(num, "1")
	}
	out := strings.Join(num, "*")
	if len(den) > 0 {
		out += "/" + strings.Join(den, "*")
	}
	return out
}

func axisTerm(axis dimension.Axis, exp int) string {
	if exp == 1 {
		return axisSymbols[axis]
	}
	return axisSymbols[axis] + "^" + strconv.Itoa(exp)
}

// String renders the quantity as "<value> <unit>" against the default
// registry.
func (q Quantity) String() string {
	return strconv.FormatFloat(q.Value, 'g', -1, 64) + " " +
		Render(registry.Default(), q.Unit)
}
