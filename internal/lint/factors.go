package lint

import (
	"math"
	"strconv"
	"strings"

	"github.com/quanta-dev/quanta/pkg/registry"
)

// Empirical conversion factors must stay within a decade of 1 so each
// unit sits at its nearest power-of-ten storage neighbor; anything
// outside [1/√10, √10] means the unit's scale vector is misassigned.
const (
	MinFactor = 0.3162277660168379
	MaxFactor = 3.1622776601683795
)

// FactorKind classifies a conversion-factor finding.
type FactorKind int

const (
	// FactorTooSmall and FactorTooLarge are range violations.
	FactorTooSmall FactorKind = iota
	FactorTooLarge
	// FactorExactlyRepresentable flags a factor that is an exact
	// product of powers of 2, 3 and 5, so it belongs in the scale
	// vector instead of an empirical float.
	FactorExactlyRepresentable
)

// FactorViolation is one conversion-factor finding.
type FactorViolation struct {
	Unit      string
	Dimension string
	Factor    float64
	Kind      FactorKind
	// PrimeForm holds the exact factorization for
	// FactorExactlyRepresentable findings, e.g. "2^2 * 5^-1".
	PrimeForm string
}

// FactorViolations scans every unit with a non-identity conversion
// factor for range violations and exactly-representable factors.
func FactorViolations(dims []*registry.Dimension) []FactorViolation {
	var out []FactorViolation
	for _, d := range dims {
		for _, u := range d.Units {
			cf := u.ConversionFactor
			if cf == 1.0 {
				continue
			}
			if prime, ok := exactPrimeForm(cf); ok {
				out = append(out, FactorViolation{
					Unit: u.Name, Dimension: d.Name, Factor: cf,
					Kind: FactorExactlyRepresentable, PrimeForm: prime,
				})
				continue
			}
			switch {
			case cf < MinFactor:
				out = append(out, FactorViolation{
					Unit: u.Name, Dimension: d.Name, Factor: cf, Kind: FactorTooSmall,
				})
			case cf > MaxFactor:
				out = append(out, FactorViolation{
					Unit: u.Name, Dimension: d.Name, Factor: cf, Kind: FactorTooLarge,
				})
			}
		}
	}
	return out
}

// exactPrimeForm searches for an exact 2^a·3^b·5^c representation of
// the factor within practical exponent bounds.
func exactPrimeForm(factor float64) (string, bool) {
	const maxExp = 20
	for e2 := -maxExp; e2 <= maxExp; e2++ {
		for e3 := -maxExp; e3 <= maxExp; e3++ {
			for e5 := -maxExp; e5 <= maxExp; e5++ {
				v := math.Pow(2, float64(e2)) * math.Pow(3, float64(e3)) * math.Pow(5, float64(e5))
				if math.Abs(factor-v) < 1e-15 {
					return formatPrimeForm(e2, e3, e5), true
				}
			}
		}
	}
	return "", false
}

func formatPrimeForm(e2, e3, e5 int) string {
	var terms []string
	for _, t := range []struct {
		base string
		exp  int
	}{{"2", e2}, {"3", e3}, {"5", e5}} {
		if t.exp == 0 {
			continue
		}
		if t.exp == 1 {
			terms = append(terms, t.base)
		} else {
			terms = append(terms, t.base+"^"+strconv.Itoa(t.exp))
		}
	}
	if len(terms) == 0 {
		return "1"
	}
	return strings.Join(terms, " * ")
}
