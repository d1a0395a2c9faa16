package registry

import (
	"strings"

	"github.com/quanta-dev/quanta/pkg/scale"
)

// Prefix is an SI prefix as defined by BIPM/CGPM. Prefixes are
// statically enumerated; the catalog carries all 24 standard prefixes.
type Prefix struct {
	// Name is the lowercase prefix name, e.g. "kilo".
	Name string
	// Symbol is the prefix symbol. Not always a single character:
	// deca's symbol "da" is the exception.
	Symbol string
	// Exp10 is the base-10 exponent of the multiplying factor, e.g. 3
	// for kilo (10^3).
	Exp10 int
}

// Scale returns the prefix factor as an exact scale vector.
func (p Prefix) Scale() scale.Vector {
	return scale.Base10(p.Exp10)
}

// StripSymbol removes the prefix symbol from the front of s. The match
// is exact and case-sensitive; the remainder must be non-empty.
func (p Prefix) StripSymbol(s string) (string, bool) {
	rest, ok := strings.CutPrefix(s, p.Symbol)
	if !ok || rest == "" {
		return "", false
	}
	return rest, true
}

// StripName removes the prefix name from the front of s. The first
// character may be upper- or lowercase ("Megameter" and "megameter"
// both match); the rest must be lowercase.
func (p Prefix) StripName(s string) (string, bool) {
	if len(s) <= len(p.Name) {
		return "", false
	}
	head := s[:len(p.Name)]
	if head != p.Name && head != strings.ToUpper(p.Name[:1])+p.Name[1:] {
		return "", false
	}
	return s[len(p.Name):], true
}

// Prefixes lists all 24 standard SI prefixes, submultiples first.
var Prefixes = []Prefix{
	{Name: "quecto", Symbol: "q", Exp10: -30},
	{Name: "ronto", Symbol: "r", Exp10: -27},
	{Name: "yocto", Symbol: "y", Exp10: -24},
	{Name: "zepto", Symbol: "z", Exp10: -21},
	{Name: "atto", Symbol: "a", Exp10: -18},
	{Name: "femto", Symbol: "f", Exp10: -15},
	{Name: "pico", Symbol: "p", Exp10: -12},
	{Name: "nano", Symbol: "n", Exp10: -9},
	{Name: "micro", Symbol: "µ", Exp10: -6},
	{Name: "milli", Symbol: "m", Exp10: -3},
	{Name: "centi", Symbol: "c", Exp10: -2},
	{Name: "deci", Symbol: "d", Exp10: -1},
	{Name: "deca", Symbol: "da", Exp10: 1},
	{Name: "hecto", Symbol: "h", Exp10: 2},
	{Name: "kilo", Symbol: "k", Exp10: 3},
	{Name: "mega", Symbol: "M", Exp10: 6},
	{Name: "giga", Symbol: "G", Exp10: 9},
	{Name: "tera", Symbol: "T", Exp10: 12},
	{Name: "peta", Symbol: "P", Exp10: 15},
	{Name: "exa", Symbol: "E", Exp10: 18},
	{Name: "zetta", Symbol: "Z", Exp10: 21},
	{Name: "yotta", Symbol: "Y", Exp10: 24},
	{Name: "ronna", Symbol: "R", Exp10: 27},
	{Name: "quetta", Symbol: "Q", Exp10: 30},
}

// PrefixBySymbol looks up a prefix by exact symbol.
func PrefixBySymbol(symbol string) (Prefix, bool) {
	for _, p := range Prefixes {
		if p.Symbol == symbol {
			return p, true
		}
	}
	return Prefix{}, false
}
