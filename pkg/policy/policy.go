// Package policy implements the conversion and arithmetic rules for
// combining resolved quantities: addition and subtraction with
// configurable scale reconciliation, multiplication and division by
// plain vector algebra, explicit rescaling between same-dimension
// units, and erasure of dimensionless and angle quantities to bare
// numbers.
package policy

import (
	"strings"

	qerrors "github.com/quanta-dev/quanta/pkg/errors"
	"github.com/quanta-dev/quanta/pkg/scale"
)

// RescalePolicy decides which scale an additive result adopts when the
// two operands are stored at different scales.
type RescalePolicy int

const (
	// Strict refuses differing scales; the caller must rescale
	// explicitly.
	Strict RescalePolicy = iota
	// SmallerWins picks, per prime axis independently, the smaller of
	// the two exponents, i.e. the representation closer to the base
	// unit; an axis unused (zero) on one side adopts the other side's
	// exponent unconditionally.
	SmallerWins
	// LeftHandWins always adopts the left operand's scale.
	LeftHandWins
	// LargerWins is the symmetric opposite of SmallerWins.
	LargerWins
)

// String returns the policy's configuration name.
func (p RescalePolicy) String() string {
	switch p {
	case Strict:
		return "strict"
	case SmallerWins:
		return "smaller_wins"
	case LeftHandWins:
		return "left_hand_wins"
	case LargerWins:
		return "larger_wins"
	default:
		return "unknown"
	}
}

// ParsePolicy maps a configuration string to a policy. Matching is
// case-insensitive and accepts hyphens for underscores.
func ParsePolicy(s string) (RescalePolicy, error) {
	switch strings.ReplaceAll(strings.ToLower(s), "-", "_") {
	case "strict":
		return Strict, nil
	case "smaller_wins":
		return SmallerWins, nil
	case "left_hand_wins":
		return LeftHandWins, nil
	case "larger_wins":
		return LargerWins, nil
	default:
		return Strict, qerrors.Newf(qerrors.ErrorTypeConfig,
			"unknown rescale policy %q (want strict, smaller_wins, left_hand_wins or larger_wins)", s)
	}
}

// ResolveScale picks the result scale for an additive combination of
// two operands stored at scales a and b. Equal scales pass through
// unchanged under every policy.
//
// SmallerWins and LargerWins resolve each of the four prime axes
// independently, treating a zero exponent as "axis unused": the other
// side's exponent is adopted as-is, and only when both sides use an
// axis are the exponents actually compared. Because axes are resolved
// independently, the combined magnitude of a SmallerWins result is not
// guaranteed to be the smaller of the two inputs when the operands mix
// axes differently; that per-axis behavior is deliberate and relied
// upon.
func ResolveScale(a, b scale.Vector, p RescalePolicy) (scale.Vector, error) {
	if a == b {
		return a, nil
	}
	switch p {
	case Strict:
		return scale.Vector{}, qerrors.Newf(qerrors.ErrorTypeScaleMismatch,
			"operand scales %s and %s differ under strict policy; rescale explicitly", a, b).
			WithDetail("scale_a", a.String()).
			WithDetail("scale_b", b.String())
	case LeftHandWins:
		return a, nil
	case SmallerWins:
		return resolvePerAxis(a, b, func(x, y int) int {
			if x < y {
				return x
			}
			return y
		}), nil
	case LargerWins:
		return resolvePerAxis(a, b, func(x, y int) int {
			if x > y {
				return x
			}
			return y
		}), nil
	default:
		return scale.Vector{}, qerrors.Newf(qerrors.ErrorTypeConfig,
			"invalid rescale policy %d", p)
	}
}

func resolvePerAxis(a, b scale.Vector, pick func(x, y int) int) scale.Vector {
	var out scale.Vector
	for i := range out {
		switch {
		case a[i] == 0:
			out[i] = b[i]
		case b[i] == 0:
			out[i] = a[i]
		default:
			out[i] = pick(a[i], b[i])
		}
	}
	return out
}
