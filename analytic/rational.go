package analytic

import (
	"fmt"
)

// Rational is the ratio P(x)/Q(x) of two polynomials.
// Q is expected to not be the zero polynomial, and evaluating r where Q
// vanishes yields ±Inf or NaN.
type Rational struct {
	P, Q Polynomial
}

// NewRational creates a new Rational p/q. The polynomials are copied.
func NewRational(p, q Polynomial) Rational {
	return Rational{P: p.Clone(), Q: q.Clone()}
}

// Evaluate returns P(x)/Q(x).
func (r Rational) Evaluate(x float64) float64 {
	return r.P.Evaluate(x) / r.Q.Evaluate(x)
}

// Clone returns a deep copy of r.
func (r Rational) Clone() Rational {
	return NewRational(r.P, r.Q)
}

// Add returns r + s = (r.P*s.Q + s.P*r.Q)/(r.Q*s.Q).
func (r Rational) Add(s Rational) Rational {
	return Rational{P: r.P.Mul(s.Q).Add(s.P.Mul(r.Q)), Q: r.Q.Mul(s.Q)}
}

// Sub returns r - s = (r.P*s.Q - s.P*r.Q)/(r.Q*s.Q).
func (r Rational) Sub(s Rational) Rational {
	return Rational{P: r.P.Mul(s.Q).Sub(s.P.Mul(r.Q)), Q: r.Q.Mul(s.Q)}
}

// Mul returns r * s = (r.P*s.P)/(r.Q*s.Q).
func (r Rational) Mul(s Rational) Rational {
	return Rational{P: r.P.Mul(s.P), Q: r.Q.Mul(s.Q)}
}

// Div returns r / s = (r.P*s.Q)/(r.Q*s.P).
func (r Rational) Div(s Rational) Rational {
	return Rational{P: r.P.Mul(s.Q), Q: r.Q.Mul(s.P)}
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{P: r.P.Neg(), Q: r.Q.Clone()}
}

// AddPolynomial returns r + p = (P + p*Q)/Q.
func (r Rational) AddPolynomial(p Polynomial) Rational {
	return Rational{P: r.P.Add(p.Mul(r.Q)), Q: r.Q.Clone()}
}

// SubPolynomial returns r - p = (P - p*Q)/Q.
func (r Rational) SubPolynomial(p Polynomial) Rational {
	return Rational{P: r.P.Sub(p.Mul(r.Q)), Q: r.Q.Clone()}
}

// MulPolynomial returns r * p = (P*p)/Q.
func (r Rational) MulPolynomial(p Polynomial) Rational {
	return Rational{P: r.P.Mul(p), Q: r.Q.Clone()}
}

// DivPolynomial returns r / p = P/(Q*p).
func (r Rational) DivPolynomial(p Polynomial) Rational {
	return Rational{P: r.P.Clone(), Q: r.Q.Mul(p)}
}

// AddScalar returns r + k.
func (r Rational) AddScalar(k float64) Rational {
	return r.AddPolynomial(NewPolynomial(0, k))
}

// SubScalar returns r - k.
func (r Rational) SubScalar(k float64) Rational {
	return r.SubPolynomial(NewPolynomial(0, k))
}

// MulScalar returns k * r, scaling the numerator.
func (r Rational) MulScalar(k float64) Rational {
	return Rational{P: r.P.MulScalar(k), Q: r.Q.Clone()}
}

// DivScalar returns r / k, scaling the denominator.
func (r Rational) DivScalar(k float64) Rational {
	return Rational{P: r.P.Clone(), Q: r.Q.MulScalar(k)}
}

// AddScalarAssign sets r to r + k by adding k*Q to P.
// Returns ErrRangeMismatch if the range of Q is not contained in the range of P.
func (r Rational) AddScalarAssign(k float64) (err error) {
	if err = r.P.AddAssign(r.Q.MulScalar(k)); err != nil {
		return fmt.Errorf("cannot AddScalarAssign: %w", err)
	}
	return
}

// SubScalarAssign sets r to r - k by subtracting k*Q from P.
// Returns ErrRangeMismatch if the range of Q is not contained in the range of P.
func (r Rational) SubScalarAssign(k float64) (err error) {
	if err = r.P.SubAssign(r.Q.MulScalar(k)); err != nil {
		return fmt.Errorf("cannot SubScalarAssign: %w", err)
	}
	return
}

// MulScalarAssign sets r to k * r.
func (r Rational) MulScalarAssign(k float64) {
	r.P.MulScalarAssign(k)
}

// DivScalarAssign sets r to r / k.
func (r Rational) DivScalarAssign(k float64) {
	r.Q.MulScalarAssign(k)
}

// Pow returns r^n for any integer n, negative powers swapping P and Q.
func (r Rational) Pow(n int) Rational {
	if n < 0 {
		return Rational{P: r.Q.Pow(-n), Q: r.P.Pow(-n)}
	}
	return Rational{P: r.P.Pow(n), Q: r.Q.Pow(n)}
}

// Inverse returns 1/r.
func (r Rational) Inverse() Rational {
	return Rational{P: r.Q.Clone(), Q: r.P.Clone()}
}

func (r Rational) String() string {
	return "(" + r.P.String() + ")/(" + r.Q.String() + ")"
}
