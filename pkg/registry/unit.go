package registry

import (
	"github.com/quanta-dev/quanta/pkg/dimension"
	"github.com/quanta-dev/quanta/pkg/scale"
)

// System classifies which unit system a unit belongs to.
type System int

const (
	// Metric covers SI and metric-derived units.
	Metric System = iota
	// Imperial covers US customary and UK imperial units.
	Imperial
	// Astronomical covers units for astronomical distances.
	Astronomical
)

// String returns the system identifier.
func (s System) String() string {
	switch s {
	case Metric:
		return "Metric"
	case Imperial:
		return "Imperial"
	case Astronomical:
		return "Astronomical"
	default:
		return "Unknown"
	}
}

// Unit is a single entry in the static catalog.
//
// Each unit is assigned a "storage unit": the scale its values are
// actually stored at, always an exact product of powers of 2, 3, 5 and
// π relative to the dimension's SI base. For example:
//
//   - kilometer has a scale factor of 10^3 = 2^3 · 5^3
//   - degree has a scale factor of π/180 = 2^-2 · 3^-2 · 5^-1 · π^1
//
// Units whose true ratio to the base is not expressible in that basis
// carry an empirical ConversionFactor and are stored at their nearest
// power-of-ten neighbor: an inch value is multiplied by 2.54 and stored
// as centimeters, a yard by 0.9144 and stored as meters, a mile by
// 1.609344 and stored as kilometers.
//
// Units are immutable: defined once at catalog construction and never
// mutated or destroyed.
type Unit struct {
	// Name is the long unit name, unique and lowercase, e.g. "meter".
	Name string

	// Symbols used for lookup. Must stay unique within the catalog,
	// including against every legal prefix+base-symbol combination
	// (see the uniqueness check in registry.go and cmd/unitlint).
	Symbols []string

	// Scale is the exact base-units-per-storage-unit factor. A value
	// stored with scale 10^3 in the length dimension is in kilometers:
	// stored 123 means 123000 meters.
	Scale scale.Vector

	// ConversionFactor is storage units per this unit. 1.0 identifies
	// a storage-exact unit; anything else marks the unit as
	// empirically converted (inch, pound, ...). To go from a value in
	// this unit to a storage-unit value, multiply by it.
	ConversionFactor float64

	// AffineOffset is the zero-point offset of this unit's measurement
	// scale from the numeric zero of its storage unit. Celsius has
	// offset 273.15: 0 °C is stored as 273.15 K. To go from a value in
	// this unit to a storage value, add the offset.
	AffineOffset float64

	// System is the unit system the unit belongs to.
	System System
}

// HasConversion reports whether the unit carries an empirical
// conversion factor.
func (u *Unit) HasConversion() bool {
	return u.ConversionFactor != 1.0
}

// HasAffineOffset reports whether the unit has a zero-point offset.
func (u *Unit) HasAffineOffset() bool {
	return u.AffineOffset != 0.0
}

// IsStorageExact reports whether values in this unit are stored without
// any empirical factor or offset.
func (u *Unit) IsStorageExact() bool {
	return !u.HasConversion() && !u.HasAffineOffset()
}

// Dimension groups the units of one point in dimension space.
type Dimension struct {
	// Name of the dimension, e.g. "Energy".
	Name string
	// Symbol in conventional dimension notation, e.g. "ML²T⁻²".
	Symbol string
	// Exponents locate the dimension in dimension space and uniquely
	// identify it within the catalog.
	Exponents dimension.Vector
	// Units supported for this dimension, in declaration order. The
	// first unit is the canonical unit and the only candidate for SI
	// prefixing.
	Units []*Unit
}

// Base returns the canonical (first) unit of the dimension, or nil for
// derived dimensions with no atomic units of their own.
func (d *Dimension) Base() *Unit {
	if len(d.Units) == 0 {
		return nil
	}
	return d.Units[0]
}

// IsBasis reports whether the dimension is one of the eight atomic
// axes.
func (d *Dimension) IsBasis() bool {
	_, ok := d.Exponents.IsBasis()
	return ok
}

// Prefixable reports whether u may take SI prefixes within d: it must
// be the dimension's canonical unit, metric, and storage-exact in its
// multiplicative part.
func (d *Dimension) Prefixable(u *Unit) bool {
	return len(d.Units) > 0 && d.Units[0] == u &&
		u.System == Metric && !u.HasConversion()
}
