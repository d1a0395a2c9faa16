package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qerrors "github.com/quanta-dev/quanta/pkg/errors"
	"github.com/quanta-dev/quanta/pkg/scale"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want RescalePolicy
	}{
		{"strict", Strict},
		{"smaller_wins", SmallerWins},
		{"smaller-wins", SmallerWins},
		{"Left_Hand_Wins", LeftHandWins},
		{"LARGER_WINS", LargerWins},
	}
	for _, tc := range tests {
		got, err := ParsePolicy(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParsePolicy("loudest_wins")
	assert.True(t, qerrors.IsType(err, qerrors.ErrorTypeConfig))
}

func TestPolicyString(t *testing.T) {
	for _, p := range []RescalePolicy{Strict, SmallerWins, LeftHandWins, LargerWins} {
		parsed, err := ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
}

func TestResolveScale(t *testing.T) {
	km := scale.Base10(3)
	mm := scale.Base10(-3)

	t.Run("equal scales pass under every policy", func(t *testing.T) {
		for _, p := range []RescalePolicy{Strict, SmallerWins, LeftHandWins, LargerWins} {
			got, err := ResolveScale(km, km, p)
			require.NoError(t, err)
			assert.Equal(t, km, got)
		}
	})

	t.Run("strict refuses differing scales", func(t *testing.T) {
		_, err := ResolveScale(km, mm, Strict)
		require.Error(t, err)
		assert.True(t, qerrors.IsType(err, qerrors.ErrorTypeScaleMismatch))
		a, ok := qerrors.Detail(err, "scale_a")
		require.True(t, ok)
		assert.Equal(t, km.String(), a)
	})

	t.Run("left hand wins", func(t *testing.T) {
		got, err := ResolveScale(km, mm, LeftHandWins)
		require.NoError(t, err)
		assert.Equal(t, km, got)

		got, err = ResolveScale(mm, km, LeftHandWins)
		require.NoError(t, err)
		assert.Equal(t, mm, got)
	})

	t.Run("smaller wins", func(t *testing.T) {
		got, err := ResolveScale(km, mm, SmallerWins)
		require.NoError(t, err)
		assert.Equal(t, mm, got)
	})

	t.Run("larger wins", func(t *testing.T) {
		got, err := ResolveScale(km, mm, LargerWins)
		require.NoError(t, err)
		assert.Equal(t, km, got)
	})

	t.Run("unused axis adopts the other side", func(t *testing.T) {
		// {0,1,0,0} vs {2,0,0,0}: each axis is used on one side only,
		// so both exponents carry through regardless of magnitude.
		a := scale.Vector{0, 1, 0, 0}
		b := scale.Vector{2, 0, 0, 0}
		got, err := ResolveScale(a, b, SmallerWins)
		require.NoError(t, err)
		assert.Equal(t, scale.Vector{2, 1, 0, 0}, got)

		got, err = ResolveScale(a, b, LargerWins)
		require.NoError(t, err)
		assert.Equal(t, scale.Vector{2, 1, 0, 0}, got)
	})

	t.Run("axes resolve independently", func(t *testing.T) {
		a := scale.Vector{3, -1, 0, 0}
		b := scale.Vector{1, 2, 0, 0}
		got, err := ResolveScale(a, b, SmallerWins)
		require.NoError(t, err)
		assert.Equal(t, scale.Vector{1, -1, 0, 0}, got)

		got, err = ResolveScale(a, b, LargerWins)
		require.NoError(t, err)
		assert.Equal(t, scale.Vector{3, 2, 0, 0}, got)
	})
}
