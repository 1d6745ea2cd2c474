package analytic

import (
	"math"
)

// Distance returns the root mean square of p - q over [lo, hi], that is
// sqrt(integral((p-q)^2)/(hi-lo)), computed from the closed form integral.
// It is zero if p and q are identical and symmetric in p and q.
func (p Polynomial) Distance(q Polynomial, lo, hi float64) float64 {
	d := p.Sub(q)
	return math.Sqrt(math.Abs(d.Mul(d).IntegralOver(lo, hi) / (hi - lo)))
}

// Distance returns the distance between the cross products r.P*s.Q and s.P*r.Q over [lo, hi].
func (r Rational) Distance(s Rational, lo, hi float64) float64 {
	return r.P.Mul(s.Q).Distance(s.P.Mul(r.Q), lo, hi)
}

// Distance returns the distance over [lo, hi] between two operands accepted by Add.
// Rationals are compared by clearing the denominators, and operands that are
// both sparse are compared without conversion to the dense form.
func Distance(a, b interface{}, lo, hi float64) float64 {

	if p, q, ok := sparsePair(a, b); ok {
		return p.Distance(q, lo, hi)
	}

	x, y := operand(a), operand(b)

	_, xIsRational := x.(Rational)
	_, yIsRational := y.(Rational)

	if xIsRational || yIsRational {
		return rational(x).Distance(rational(y), lo, hi)
	}

	return polynomial(x).Distance(polynomial(y), lo, hi)
}

// sparsePair returns the operands as sparse rationals if both are sparse.
func sparsePair(a, b interface{}) (p, q SparseRational, ok bool) {
	if p, ok = asSparseRational(a); !ok {
		return
	}
	q, ok = asSparseRational(b)
	return
}

func asSparseRational(x interface{}) (SparseRational, bool) {
	switch x := x.(type) {
	case Sparse:
		return SparseRational{P: x, Q: Sparse{Coeffs: map[int8]float64{0: 1}}}, true
	case SparseRational:
		return x, true
	}
	return SparseRational{}, false
}
