// Package registry holds the static unit catalog: dimensions, units,
// SI prefixes, and the lookup indexes over them. The catalog is built
// once and never mutated.
package registry

import (
	"strings"
	"sync"

	"github.com/quanta-dev/quanta/pkg/dimension"
	qerrors "github.com/quanta-dev/quanta/pkg/errors"
)

// Entry pairs a unit with the dimension that declares it.
type Entry struct {
	Unit      *Unit
	Dimension *Dimension
}

// PrefixedEntry is a prefix-stripping match: the stripped prefix plus
// the base unit the remainder resolved to.
type PrefixedEntry struct {
	Prefix Prefix
	Entry
}

// Registry indexes the static catalog for lookup. Build it with New or
// use the shared Default instance.
type Registry struct {
	dimensions []*Dimension

	bySymbol map[string]Entry
	byName   map[string]Entry
	byVector map[dimension.Vector]*Dimension
}

// allowedAmbiguities lists prefix+symbol combinations that are accepted
// despite colliding with a registered unit symbol. Keys are lowercase.
// "ft" is foot, not femto-tesla; "pa" is pascal, not peta-ampere;
// "grad" is gradian, not giga-radian; "ct" is carat, not centi-tesla;
// "nm" is nanometer (the newton-meter keeps the distinct symbol "Nm");
// "pc" is parsec, not pico-coulomb; "ev" is electron-volt, not
// exa-volt.
var allowedAmbiguities = map[string]bool{
	"ft":   true,
	"pa":   true,
	"grad": true,
	"ct":   true,
	"nm":   true,
	"pc":   true,
	"ev":   true,
}

// New builds a registry over the static catalog and enforces the
// symbol uniqueness invariant: no registered symbol may also be a
// valid prefix+base-symbol combination, outside the known allow-list.
// A violation is a defect in the catalog itself, so it surfaces as a
// config error at construction, never at lookup time.
func New() (*Registry, error) {
	return newRegistry(Dimensions)
}

func newRegistry(dims []*Dimension) (*Registry, error) {
	r := &Registry{
		dimensions: dims,
		bySymbol:   make(map[string]Entry),
		byName:     make(map[string]Entry),
		byVector:   make(map[dimension.Vector]*Dimension, len(dims)),
	}

	for _, d := range dims {
		if _, dup := r.byVector[d.Exponents]; dup {
			return nil, qerrors.Newf(qerrors.ErrorTypeConfig,
				"duplicate dimension vector %s for %q", d.Exponents, d.Name)
		}
		r.byVector[d.Exponents] = d

		for _, u := range d.Units {
			entry := Entry{Unit: u, Dimension: d}
			name := strings.ToLower(u.Name)
			if prev, dup := r.byName[name]; dup {
				return nil, qerrors.Newf(qerrors.ErrorTypeConfig,
					"unit name %q registered twice (%s and %s)",
					u.Name, prev.Dimension.Name, d.Name)
			}
			r.byName[name] = entry

			// Symbols are first-wins: celsius "C" shadows coulomb "C"
			// because Temperature is declared before Electric Charge.
			for _, sym := range u.Symbols {
				if _, taken := r.bySymbol[sym]; !taken {
					r.bySymbol[sym] = entry
				}
			}
		}
	}

	if err := r.checkPrefixCollisions(); err != nil {
		return nil, err
	}
	return r, nil
}

// checkPrefixCollisions rejects catalogs where a registered unit symbol
// is also parseable as prefix+prefixable-unit, unless allow-listed. The
// probe is case-insensitive, like the linter's conflict scan: lookup
// keeps case distinctions ("Pa" never resolves as peta-ampere), but a
// symbol one case flip away from a prefixed form is still a trap worth
// rejecting at construction.
func (r *Registry) checkPrefixCollisions() error {
	prefixable := make(map[string]Entry)
	for _, d := range r.dimensions {
		for _, u := range d.Units {
			if !d.Prefixable(u) {
				continue
			}
			for _, s := range u.Symbols {
				prefixable[strings.ToLower(s)] = Entry{Unit: u, Dimension: d}
			}
		}
	}

	for sym := range r.bySymbol {
		lower := strings.ToLower(sym)
		if allowedAmbiguities[lower] {
			continue
		}
		for _, p := range Prefixes {
			rest, ok := strings.CutPrefix(lower, strings.ToLower(p.Symbol))
			if !ok || rest == "" {
				continue
			}
			if e, found := prefixable[rest]; found {
				return qerrors.Newf(qerrors.ErrorTypeConfig,
					"unit symbol %q is ambiguous with %s-%s (%s%s)",
					sym, p.Name, e.Unit.Name, p.Symbol, e.Unit.Symbols[0])
			}
		}
	}
	return nil
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the shared registry over the built-in catalog. The
// catalog is static, so the uniqueness check cannot fail here unless
// the catalog source itself is broken; that panics rather than
// returning an error every caller would have to ignore.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := New()
		if err != nil {
			panic(err)
		}
		defaultReg = r
	})
	return defaultReg
}

// Dimensions returns the catalog dimensions in declaration order. The
// returned slice is shared and must not be modified.
func (r *Registry) Dimensions() []*Dimension {
	return r.dimensions
}

// FindUnitBySymbol looks a unit up by exact, case-sensitive symbol.
func (r *Registry) FindUnitBySymbol(symbol string) (Entry, bool) {
	e, ok := r.bySymbol[symbol]
	return e, ok
}

// FindUnitByName looks a unit up by case-insensitive long name.
func (r *Registry) FindUnitByName(name string) (Entry, bool) {
	e, ok := r.byName[strings.ToLower(name)]
	return e, ok
}

// FindDimension looks a dimension up by case-insensitive name.
func (r *Registry) FindDimension(name string) (*Dimension, bool) {
	for _, d := range r.dimensions {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return nil, false
}

// FindDimensionByVector returns the named dimension at a point in
// dimension space, if the catalog declares one. This is how a derived
// result like mass·length²·time⁻² gets recognized as Energy.
func (r *Registry) FindDimensionByVector(v dimension.Vector) (*Dimension, bool) {
	d, ok := r.byVector[v]
	return d, ok
}

// StripAnyPrefix matches text against all prefixes, by symbol first
// and then by name. It succeeds only when the remainder resolves to a
// unit that may carry a prefix: the canonical metric unit of its
// dimension, with no empirical conversion.
func (r *Registry) StripAnyPrefix(text string) (PrefixedEntry, bool) {
	if pe, ok := r.stripPrefixSymbol(text); ok {
		return pe, true
	}
	return r.stripPrefixName(text)
}

func (r *Registry) stripPrefixSymbol(text string) (PrefixedEntry, bool) {
	for _, p := range Prefixes {
		rest, ok := p.StripSymbol(text)
		if !ok {
			continue
		}
		e, found := r.FindUnitBySymbol(rest)
		if found && e.Dimension.Prefixable(e.Unit) {
			return PrefixedEntry{Prefix: p, Entry: e}, true
		}
	}
	return PrefixedEntry{}, false
}

func (r *Registry) stripPrefixName(text string) (PrefixedEntry, bool) {
	for _, p := range Prefixes {
		rest, ok := p.StripName(text)
		if !ok {
			continue
		}
		e, found := r.FindUnitByName(rest)
		if found && e.Dimension.Prefixable(e.Unit) {
			return PrefixedEntry{Prefix: p, Entry: e}, true
		}
	}
	return PrefixedEntry{}, false
}

// Resolve maps a bare unit atom to a unit, trying symbol, then name,
// then prefix stripping. The returned PrefixedEntry carries the
// identity prefix (Exp10 0) when no prefix was involved.
func (r *Registry) Resolve(atom string) (PrefixedEntry, error) {
	if e, ok := r.FindUnitBySymbol(atom); ok {
		return PrefixedEntry{Entry: e}, nil
	}
	if e, ok := r.FindUnitByName(atom); ok {
		return PrefixedEntry{Entry: e}, nil
	}
	if pe, ok := r.StripAnyPrefix(atom); ok {
		return pe, nil
	}
	return PrefixedEntry{}, qerrors.Newf(qerrors.ErrorTypeUnknownUnit,
		"unknown unit %q", atom).WithDetail("atom", atom)
}
