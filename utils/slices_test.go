package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSortedKeys(t *testing.T) {
	m := map[int]int{1: 1, 3: 3, 2: 2}
	require.Equal(t, []int{1, 2, 3}, GetSortedKeys(m))
	m = map[int]int{-1: 1, -3: 3, -2: 2}
	require.Equal(t, []int{-3, -2, -1}, GetSortedKeys(m))
	exponents := map[int8]float64{3: 1, -2: 1, 0: 1}
	require.Equal(t, []int8{-2, 0, 3}, GetSortedKeys(exponents))
}

func TestArgMinMax(t *testing.T) {
	identity := func(x float64) float64 { return x }
	require.Equal(t, 1, ArgMin([]float64{3, -1, 2}, identity))
	require.Equal(t, 0, ArgMax([]float64{3, -1, 2}, identity))
	require.Equal(t, -1, ArgMax([]float64{}, identity))
}
