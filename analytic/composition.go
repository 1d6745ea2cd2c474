package analytic

import (
	"fmt"
	"math"

	"github.com/tuneinsight/analytic/utils"
)

// ComposeScaling returns p(a*x), rescaling each coefficient of x^i by a^i.
func (p Polynomial) ComposeScaling(f Scaling) (r Polynomial) {
	r = p.Clone()
	for j := range r.Coeffs {
		r.Coeffs[j] *= math.Pow(f.Factor, float64(p.lo+j))
	}
	return
}

// ComposeShifting returns p(x+b) over [0, Hi] by binomial expansion:
// the coefficient of x^i is the sum over j >= i of p[j]*C(j, j-i)*b^(j-i).
// Returns ErrLaurentComposition if p has negative exponents.
func (p Polynomial) ComposeShifting(f Shifting) (r Polynomial, err error) {

	if p.lo < 0 {
		return Polynomial{}, fmt.Errorf("cannot ComposeShifting: %w", ErrLaurentComposition)
	}

	hi := p.Hi()
	r = NewZeroPolynomial(0, hi)

	for j := p.lo; j <= hi; j++ {
		k := p.Coeff(j)
		if k == 0 {
			continue
		}
		for i := 0; i <= j; i++ {
			r.Coeffs[i] += k * utils.Combination(j, j-i) * math.Pow(f.Offset, float64(j-i))
		}
	}

	return
}

// Compose returns p(q(x)) over [p.Lo*q.Lo, p.Hi*q.Hi].
// Returns ErrLaurentComposition if p or q has negative exponents.
func (p Polynomial) Compose(q Polynomial) (Polynomial, error) {
	if p.lo < 0 || q.lo < 0 {
		return Polynomial{}, fmt.Errorf("cannot Compose: %w", ErrLaurentComposition)
	}
	return composeHorner(p, q), nil
}

// composeHorner evaluates p at q with p(x) = p0 + x*p'(x), composing
// the degree-reduced p' recursively.
func composeHorner(p, q Polynomial) Polynomial {

	if p.lo > 0 {
		return q.Mul(composeHorner(NewPolynomial(p.lo-1, p.Coeffs...), q))
	}

	if p.Hi() == 0 {
		return NewPolynomial(0, p.Coeff(0))
	}

	return q.Mul(composeHorner(NewPolynomial(0, p.Coeffs[1:]...), q)).AddScalar(p.Coeff(0))
}

// ComposeRational returns p(r(x)), by Horner evaluation over rationals.
// Returns ErrLaurentComposition if p has negative exponents.
func (p Polynomial) ComposeRational(r Rational) (Rational, error) {

	if p.lo < 0 {
		return Rational{}, fmt.Errorf("cannot ComposeRational: %w", ErrLaurentComposition)
	}

	acc := NewPolynomial(0, p.Coeff(p.Hi())).AsRational()
	for i := p.Hi() - 1; i >= 0; i-- {
		acc = acc.Mul(r).AddScalar(p.Coeff(i))
	}

	return acc, nil
}

// ComposeScaling returns r(a*x).
func (r Rational) ComposeScaling(f Scaling) Rational {
	return Rational{P: r.P.ComposeScaling(f), Q: r.Q.ComposeScaling(f)}
}

// ComposeShifting returns r(x+b).
// Returns ErrLaurentComposition if P or Q has negative exponents.
func (r Rational) ComposeShifting(f Shifting) (s Rational, err error) {
	if s.P, err = r.P.ComposeShifting(f); err != nil {
		return Rational{}, err
	}
	if s.Q, err = r.Q.ComposeShifting(f); err != nil {
		return Rational{}, err
	}
	return
}

// Compose returns r(q(x)) = P(q(x))/Q(q(x)).
// Returns ErrLaurentComposition if any of P, Q or q has negative exponents.
func (r Rational) Compose(q Polynomial) (s Rational, err error) {
	if s.P, err = r.P.Compose(q); err != nil {
		return Rational{}, err
	}
	if s.Q, err = r.Q.Compose(q); err != nil {
		return Rational{}, err
	}
	return
}

// ComposeRational returns r(t(x)) = P(t(x))/Q(t(x)).
// Returns ErrLaurentComposition if P or Q has negative exponents.
func (r Rational) ComposeRational(t Rational) (Rational, error) {
	p, err := r.P.ComposeRational(t)
	if err != nil {
		return Rational{}, err
	}
	q, err := r.Q.ComposeRational(t)
	if err != nil {
		return Rational{}, err
	}
	return p.Div(q), nil
}

// Compose returns the composition f(g(x)) of any two operands accepted by Add.
// Scalings and shiftings compose in closed form, a scalar inner function
// yields the constant f(g), and polynomials are composed by Horner's method.
// Returns ErrLaurentComposition if the general case meets negative exponents.
func Compose(f, g interface{}) (Expression, error) {

	outer, inner := operand(f), operand(g)

	if k, ok := inner.(Scalar); ok {
		return Scalar(outer.Evaluate(float64(k))), nil
	}

	switch outer := outer.(type) {
	case Scalar:
		return outer, nil
	case Identity:
		return inner, nil
	case Scaling:
		switch inner := inner.(type) {
		case Identity:
			return outer, nil
		case Scaling:
			return Scaling{Factor: outer.Factor * inner.Factor}, nil
		case Rational:
			return inner.MulScalar(outer.Factor), nil
		default:
			return polynomial(inner).MulScalar(outer.Factor), nil
		}
	case Shifting:
		switch inner := inner.(type) {
		case Identity:
			return outer, nil
		case Shifting:
			return Shifting{Offset: outer.Offset + inner.Offset}, nil
		case Rational:
			return inner.AddScalar(outer.Offset), nil
		default:
			return polynomial(inner).AddScalar(outer.Offset), nil
		}
	case Polynomial:
		switch inner := inner.(type) {
		case Identity:
			return outer.Clone(), nil
		case Scaling:
			return outer.ComposeScaling(inner), nil
		case Shifting:
			return expression(outer.ComposeShifting(inner))
		case Rational:
			return expression(outer.ComposeRational(inner))
		default:
			return expression(outer.Compose(polynomial(inner)))
		}
	case Rational:
		switch inner := inner.(type) {
		case Identity:
			return outer.Clone(), nil
		case Scaling:
			return outer.ComposeScaling(inner), nil
		case Shifting:
			return expression(outer.ComposeShifting(inner))
		case Rational:
			return expression(outer.ComposeRational(inner))
		default:
			return expression(outer.Compose(polynomial(inner)))
		}
	}

	panic(fmt.Errorf("invalid f.(type): %T", outer))
}

// expression drops the value of a failed operation.
func expression(e Expression, err error) (Expression, error) {
	if err != nil {
		return nil, err
	}
	return e, nil
}
