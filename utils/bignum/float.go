// Package bignum implements arbitrary precision arithmetic helpers used to
// evaluate analytic expressions where float64 cancellation is a concern.
package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valide types for x are: int, int64, uint, uint64, float64, *big.Int or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec) // decimal precision

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valide types are int, int64, uint, uint64, float64, *big.Int or *big.Float but is %T", x))
	}

	return
}

// Log return ln(x) with the precision of x.
// The function panics if x is negative.
func Log(x *big.Float) (ln *big.Float) {
	return bigfloat.Log(x)
}

// Exp returns exp(x) with the precision of x.
func Exp(x *big.Float) (exp *big.Float) {
	return bigfloat.Exp(x)
}

// Pow returns x^y for x > 0.
func Pow(x, y *big.Float) (pow *big.Float) {
	return bigfloat.Pow(x, y)
}

// IntPow returns x^n for any sign of x, by repeated squaring.
// Negative n returns 1/x^|n|.
func IntPow(x *big.Float, n int) (pow *big.Float) {

	prec := x.Prec()

	pow = NewFloat(1, prec)
	base := new(big.Float).SetPrec(prec).Set(x)

	neg := n < 0
	if neg {
		n = -n
	}

	for n > 0 {
		if n&1 == 1 {
			pow.Mul(pow, base)
		}
		base.Mul(base, base)
		n >>= 1
	}

	if neg {
		pow.Quo(NewFloat(1, prec), pow)
	}

	return
}

// LogAbs returns ln|x|, which is -Inf for x = 0.
func LogAbs(x *big.Float) (ln *big.Float) {
	if x.Sign() == 0 {
		return new(big.Float).SetPrec(x.Prec()).SetInf(true)
	}
	return Log(new(big.Float).Abs(x))
}
