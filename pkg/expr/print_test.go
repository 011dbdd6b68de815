package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		terms    []Term
		expected string
	}{
		{terms: nil, expected: ""},
		{terms: []Term{Pos(42)}, expected: "42"},
		{terms: []Term{Pos(12), Pos(5), Neg(3)}, expected: "12 + 5 - 3"},
		{terms: []Term{Pos(0), Neg(0)}, expected: "0 - 0"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, Format(tt.terms))
		})
	}
}

func TestTermString(t *testing.T) {
	require.Equal(t, "+7", Pos(7).String())
	require.Equal(t, "-7", Neg(7).String())
}

func TestValue(t *testing.T) {
	require.Equal(t, int64(14), Value([]Term{Pos(12), Pos(5), Neg(3)}))
	require.Equal(t, int64(-5), Value([]Term{Pos(0), Neg(5)}))
	require.Equal(t, int64(0), Value(nil))

	// wraps like the hardware register
	require.Equal(t, int64(math.MinInt64), Value([]Term{Pos(math.MaxInt64), Pos(1)}))
}
