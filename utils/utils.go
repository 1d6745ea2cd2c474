package utils

import (
	"golang.org/x/exp/constraints"
)

// Min returns the minimum value of the two inputs.
func Min[V constraints.Ordered](a, b V) (r V) {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum value of the two inputs.
func Max[V constraints.Ordered](a, b V) (r V) {
	if a >= b {
		return a
	}
	return b
}

// Clamp returns x restricted to the interval [lo, hi].
func Clamp[V constraints.Ordered](x, lo, hi V) V {
	return Min(Max(x, lo), hi)
}

// Factorial returns n!.
func Factorial(n int) (r float64) {
	r = 1
	for i := 2; i <= n; i++ {
		r *= float64(i)
	}
	return
}

// Combination returns the binomial coefficient n choose k,
// computed multiplicatively to stay exact for small inputs.
func Combination(n, k int) (r float64) {
	if k < 0 || k > n {
		return 0
	}
	k = Min(k, n-k)
	r = 1
	for i := 1; i <= k; i++ {
		r = r * float64(n-k+i) / float64(i)
	}
	return
}
