package tangram

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_WellFormed(t *testing.T) {
	for _, enc := range []Encoding{
		"RYBBPS",
		"PURYBY",
		"RRRRUD",
		"YBPYBS",
	} {
		assert.NoError(t, Validate(enc), "encoding %s", enc)
	}
}

func TestValidate_SizeMismatch(t *testing.T) {
	tests := []struct {
		name string
		enc  Encoding
		want int
	}{
		{"empty", "", 0},
		{"short", "RYBBP", 5},
		{"long", "RYBBPSS", 7},
		{"garbage is irrelevant when size is wrong", "zz", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.enc)
			require.Error(t, err)

			var sizeErr *SizeError
			require.True(t, errors.As(err, &sizeErr))
			assert.Equal(t, tt.want, sizeErr.Len)
		})
	}
}

func TestValidate_InvalidSymbol(t *testing.T) {
	err := Validate("RYXBPS")
	require.Error(t, err)

	var symErr *SymbolError
	require.True(t, errors.As(err, &symErr))
	assert.Equal(t, 2, symErr.Index)
	assert.Equal(t, byte('X'), symErr.Symbol)
}

func TestValidate_Counts(t *testing.T) {
	tests := []struct {
		name string
		enc  Encoding
		want error
	}{
		{"three colors", "RYBPUS", &ColorCountError{Count: 3}},
		{"five colors", "RYBBYP", &ColorCountError{Count: 5}},
		{"all colors", "RYBBYR", &ColorCountError{Count: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.enc)
			require.Error(t, err)
			assert.Equal(t, tt.want.Error(), err.Error())

			var colorErr *ColorCountError
			assert.True(t, errors.As(err, &colorErr))
		})
	}

	// Color count is checked first, so an arrow count error only surfaces
	// for encodings that still have exactly four colors. Size 6 with four
	// colors forces exactly two non-colors, so ArrowCountError is
	// unreachable through Validate; its message is still exercised here.
	arrowErr := &ArrowCountError{Count: 1}
	assert.Equal(t, "incorrect arrow count 1, want 2", arrowErr.Error())
}

func TestValidatePair_OppositeArrows(t *testing.T) {
	// P at index 4 faces S, S at index 5 faces P.
	assert.NoError(t, ValidatePair("RYBBPS", "RYBBSP"))

	// Colors need not match exactly, only class.
	assert.NoError(t, ValidatePair("RYBBPS", "BBYRSP"))
}

func TestValidatePair_SameArrowFails(t *testing.T) {
	err := ValidatePair("RYBBPS", "RYBBPS")
	require.Error(t, err)

	var pairErr *PairError
	require.True(t, errors.As(err, &pairErr))
	assert.Equal(t, 4, pairErr.Index)
	assert.Equal(t, byte('P'), pairErr.Source)
	assert.Equal(t, byte('P'), pairErr.Target)
	assert.Equal(t, "non-matching arrows, index 4: P P", err.Error())
}

func TestValidatePair_ColorAgainstArrow(t *testing.T) {
	err := ValidatePair("RYBBPS", "RYBUPS")
	require.Error(t, err)

	var pairErr *PairError
	require.True(t, errors.As(err, &pairErr))
	assert.Equal(t, 3, pairErr.Index)
	assert.Equal(t, "arrow color mismatch, index 3: B U", err.Error())
}

func TestValidatePair_ArrowAgainstColor(t *testing.T) {
	err := ValidatePair("PRYBBS", "RRYBBP")
	require.Error(t, err)

	var pairErr *PairError
	require.True(t, errors.As(err, &pairErr))
	assert.Equal(t, 0, pairErr.Index)
	assert.Equal(t, byte('P'), pairErr.Source)
	assert.Equal(t, byte('R'), pairErr.Target)
}

func TestValidatePair_StopsAtFirstMismatch(t *testing.T) {
	// Mismatches at indices 0 (U vs U, not opposite) and 5 (S vs S);
	// only the first is reported.
	err := ValidatePair("URYBBS", "URYBBS")
	require.Error(t, err)

	var pairErr *PairError
	require.True(t, errors.As(err, &pairErr))
	assert.Equal(t, 0, pairErr.Index)
}

func TestValidatePair_SucceedingPairRespectsInvolution(t *testing.T) {
	src := Encoding("RYBBPS")
	dst := Encoding("YYRBSP")
	require.NoError(t, ValidatePair(src, dst))

	for i := 0; i < len(src); i++ {
		if !IsArrow(src[i]) {
			continue
		}

		opp, ok := Opposite(src[i])
		require.True(t, ok)
		assert.Equal(t, opp, dst[i], "index %d", i)

		back, _ := Opposite(opp)
		assert.Equal(t, src[i], back)
	}
}
