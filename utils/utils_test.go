package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	require.Equal(t, 1, Min(1, 2))
	require.Equal(t, -3, Min(4, -3))
	require.Equal(t, 2.5, Max(2.5, -1.0))
	require.Equal(t, 0.0, Clamp(-1.0, 0.0, 1.0))
	require.Equal(t, 0.5, Clamp(0.5, 0.0, 1.0))
	require.Equal(t, 1.0, Clamp(3.0, 0.0, 1.0))
}

func TestCombinatorics(t *testing.T) {
	require.Equal(t, 1.0, Factorial(0))
	require.Equal(t, 120.0, Factorial(5))
	require.Equal(t, 1.0, Combination(4, 0))
	require.Equal(t, 6.0, Combination(4, 2))
	require.Equal(t, 10.0, Combination(5, 3))
	require.Equal(t, 0.0, Combination(3, 4))
}
