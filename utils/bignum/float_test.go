package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	testFunc1("Log", 1.4142135623730951, math.Log, Log, 1e-15, t)
	testFunc1("Exp", 1.4142135623730951, math.Exp, Exp, 1e-15, t)
	testFunc1("LogAbs", -1.4142135623730951, func(x float64) float64 { return math.Log(math.Abs(x)) }, LogAbs, 1e-15, t)
	testFunc2("Pow", 2, 1.4142135623730951, math.Pow, Pow, 1e-15, t)

	t.Run("LogAbsZero", func(t *testing.T) {
		y := LogAbs(NewFloat(0, 128))
		require.True(t, y.IsInf())
		require.Equal(t, -1, y.Sign())
	})

	t.Run("IntPow", func(t *testing.T) {
		for _, n := range []int{-3, -1, 0, 1, 2, 5} {
			y, _ := IntPow(NewFloat(-1.5, 128), n).Float64()
			require.InDelta(t, math.Pow(-1.5, float64(n)), y, 1e-12)
		}
	})
}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53)).Float64()
		require.InDelta(t, f(x), y, delta)
	})
}

func testFunc2(name string, x, e float64, f func(x, e float64) (y float64), g func(x, e *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53), NewFloat(e, 53)).Float64()
		require.InDelta(t, f(x, e), y, delta)
	})
}
