package analytic

import (
	"math"
	"math/big"

	"github.com/tuneinsight/analytic/utils/bignum"
)

// PreciseIntegral returns the definite integral of p over [lo, hi] computed
// with prec bits of precision, the degree -1 term contributing p[-1]*ln|x|.
// It avoids the cancellation that IntegralOver suffers from when the
// antiderivative is large compared to its variation over [lo, hi].
//
// A pole at one of the bounds yields ±Inf. ok is false if the integral is
// undefined, for example when two poles of opposite signs meet, in which
// case IntegralOver returns NaN.
func (p Polynomial) PreciseIntegral(lo, hi float64, prec uint) (y *big.Float, ok bool) {

	defer func() {
		if r := recover(); r != nil {
			if _, isNaN := r.(big.ErrNaN); !isNaN {
				panic(r)
			}
			y, ok = nil, false
		}
	}()

	return new(big.Float).SetPrec(prec).Sub(p.preciseAntiderivative(hi, prec), p.preciseAntiderivative(lo, prec)), true
}

func (p Polynomial) preciseAntiderivative(x float64, prec uint) (y *big.Float) {

	y = bignum.NewFloat(0, prec)
	bx := bignum.NewFloat(x, prec)
	term := new(big.Float).SetPrec(prec)

	for j, k := range p.Coeffs {
		if k == 0 {
			continue
		}

		bk := bignum.NewFloat(k, prec)

		if i := p.lo + j; i == -1 {
			term.Mul(bk, bignum.LogAbs(bx))
		} else {
			term.Mul(bk, bignum.IntPow(bx, i+1))
			term.Quo(term, bignum.NewFloat(i+1, prec))
		}

		y.Add(y, term)
	}

	return
}

// PreciseDistance returns Distance(p, q, lo, hi) with the integral
// computed with prec bits of precision.
// It returns NaN where Distance does: for an empty interval or an undefined integral.
func (p Polynomial) PreciseDistance(q Polynomial, lo, hi float64, prec uint) float64 {

	width := hi - lo
	if width == 0 || math.IsInf(width, 0) || math.IsNaN(width) {
		return math.NaN()
	}

	d := p.Sub(q)
	y, ok := d.Mul(d).PreciseIntegral(lo, hi, prec)
	if !ok {
		return math.NaN()
	}

	y.Quo(y, bignum.NewFloat(width, prec))
	y.Abs(y)
	f, _ := y.Sqrt(y).Float64()
	return f
}
