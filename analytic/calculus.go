package analytic

import (
	"fmt"
	"math"

	"github.com/tuneinsight/analytic/utils"
)

// Derivative returns dp/dx.
// The exponent i is mapped to i-1 with coefficient i*p[i], and the constant
// term vanishes. The result range is [Lo-1, Hi-1], starting at 0 instead
// of -1 when Lo is 0.
func (p Polynomial) Derivative() (d Polynomial) {

	lo := p.lo - 1
	if p.lo == 0 {
		lo = 0
	}

	d = NewZeroPolynomial(lo, utils.Max(p.Hi()-1, lo))

	for j, k := range p.Coeffs {
		if i := p.lo + j; i != 0 {
			d.Coeffs[i-1-lo] = float64(i) * k
		}
	}

	return
}

// DerivativeAt returns dp/dx evaluated at x.
func (p Polynomial) DerivativeAt(x float64) (y float64) {
	for j, k := range p.Coeffs {
		if i := p.lo + j; i != 0 && k != 0 {
			y += float64(i) * k * math.Pow(x, float64(i-1))
		}
	}
	return
}

// Integral returns the antiderivative of p with a zero constant of integration.
// Returns ErrLogarithmicTerm if -1 is in the range of p.
func (p Polynomial) Integral() (Polynomial, error) {

	if p.lo <= -1 && -1 <= p.Hi() && len(p.Coeffs) != 0 {
		return Polynomial{}, fmt.Errorf("cannot Integral: [%d, %d]: %w", p.lo, p.Hi(), ErrLogarithmicTerm)
	}

	r := NewPolynomial(p.lo+1, p.Coeffs...)
	for j := range r.Coeffs {
		r.Coeffs[j] /= float64(p.lo + j + 1)
	}

	return r, nil
}

// AntiderivativeAt evaluates at x the antiderivative of p with a zero
// constant of integration, using p[-1]*ln|x| for the degree -1 term.
func (p Polynomial) AntiderivativeAt(x float64) (y float64) {
	for j, k := range p.Coeffs {
		if k == 0 {
			continue
		}
		if i := p.lo + j; i == -1 {
			y += k * math.Log(math.Abs(x))
		} else {
			y += k * math.Pow(x, float64(i+1)) / float64(i+1)
		}
	}
	return
}

// IntegralOver returns the definite integral of p over [lo, hi].
// It is defined for any range, the degree -1 term contributing p[-1]*ln|x|.
// The interval must not contain 0 if p has non-zero negative exponents.
func (p Polynomial) IntegralOver(lo, hi float64) float64 {
	return p.AntiderivativeAt(hi) - p.AntiderivativeAt(lo)
}

// Derivative returns the derivative of r by the quotient rule (p'q - q'p)/q^2.
func (r Rational) Derivative() Rational {
	num := r.P.Derivative().Mul(r.Q).Sub(r.Q.Derivative().Mul(r.P))
	return Rational{P: num, Q: r.Q.Mul(r.Q)}
}

// DerivativeAt returns dr/dx evaluated at x.
func (r Rational) DerivativeAt(x float64) float64 {
	q := r.Q.Evaluate(x)
	return (r.P.DerivativeAt(x)*q - r.Q.DerivativeAt(x)*r.P.Evaluate(x)) / (q * q)
}
