// Package lint implements the build-time catalog checks: symbol
// uniqueness against prefix+base combinations and conversion-factor
// hygiene. It runs over the registry's static data surface and is not
// part of the runtime engine.
package lint

import (
	"sort"
	"strings"

	"github.com/quanta-dev/quanta/pkg/registry"
)

// knownExceptions lists symbols allowed to collide with a prefix+base
// combination. Lowercase.
var knownExceptions = map[string]bool{
	"ft":   true, // foot vs femto+tesla
	"pa":   true, // pascal vs pico+ampere
	"grad": true, // gradian vs giga+radian
	"ct":   true, // carat vs centi+tesla
	"nm":   true, // nanometer vs newton-meter
	"pc":   true, // parsec vs pico+coulomb
	"ev":   true, // electron-volt vs exa+volt
}

// SymbolConflict is a concrete unit symbol that also reads as a
// prefix+base combination.
type SymbolConflict struct {
	Symbol        string
	Unit          string
	Dimension     string
	Prefix        string
	Base          string
	BaseDimension string
}

// Duplicate is a symbol claimed by more than one unit. The first
// declaring unit wins at lookup time; later claims are shadowed.
type Duplicate struct {
	Symbol string
	Units  []string // "unit (dimension)"
}

type ownedSymbol struct {
	unit      string
	dimension string
}

// collectSymbols maps every lowercase unit symbol to its owning unit.
func collectSymbols(dims []*registry.Dimension) map[string]ownedSymbol {
	out := make(map[string]ownedSymbol)
	for _, d := range dims {
		for _, u := range d.Units {
			for _, s := range u.Symbols {
				key := strings.ToLower(s)
				if _, taken := out[key]; !taken {
					out[key] = ownedSymbol{unit: u.Name, dimension: d.Name}
				}
			}
		}
	}
	return out
}

type prefixedSymbol struct {
	prefix        string
	base          string
	baseDimension string
}

// collectPrefixed enumerates every prefix+symbol combination over each
// dimension's first non-empirical unit, lowercased.
func collectPrefixed(dims []*registry.Dimension) map[string]prefixedSymbol {
	out := make(map[string]prefixedSymbol)
	for _, d := range dims {
		var prefixable *registry.Unit
		for _, u := range d.Units {
			if !u.HasConversion() {
				prefixable = u
				break
			}
		}
		if prefixable == nil {
			continue
		}
		for _, s := range prefixable.Symbols {
			for _, p := range registry.Prefixes {
				key := strings.ToLower(p.Symbol + s)
				out[key] = prefixedSymbol{
					prefix:        p.Symbol,
					base:          s,
					baseDimension: d.Name,
				}
			}
		}
	}
	return out
}

// SymbolConflicts finds concrete symbols that read as prefix+base
// combinations, excluding the known exceptions.
func SymbolConflicts(dims []*registry.Dimension) []SymbolConflict {
	concrete := collectSymbols(dims)
	prefixed := collectPrefixed(dims)

	var conflicts []SymbolConflict
	for sym, owner := range concrete {
		if knownExceptions[sym] {
			continue
		}
		pre, ok := prefixed[sym]
		if !ok {
			continue
		}
		conflicts = append(conflicts, SymbolConflict{
			Symbol:        sym,
			Unit:          owner.unit,
			Dimension:     owner.dimension,
			Prefix:        pre.prefix,
			Base:          pre.base,
			BaseDimension: pre.baseDimension,
		})
	}
	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].Symbol < conflicts[j].Symbol
	})
	return conflicts
}

// DuplicateSymbols finds symbols declared by more than one unit,
// case-insensitively.
func DuplicateSymbols(dims []*registry.Dimension) []Duplicate {
	claims := make(map[string][]string)
	for _, d := range dims {
		for _, u := range d.Units {
			for _, s := range u.Symbols {
				key := strings.ToLower(s)
				claims[key] = append(claims[key], u.Name+" ("+d.Name+")")
			}
		}
	}

	var dups []Duplicate
	for sym, units := range claims {
		if len(units) > 1 {
			dups = append(dups, Duplicate{Symbol: sym, Units: units})
		}
	}
	sort.Slice(dups, func(i, j int) bool { return dups[i].Symbol < dups[j].Symbol })
	return dups
}
