// Package analytic implements a closed algebra of one dimensional analytic
// functions: the identity, scalings, shiftings, dense and sparse Laurent
// polynomials and their ratios.
//
// Every type is a plain value and every operation, except the ones suffixed
// with Assign, returns a new value without modifying its operands.
package analytic

import (
	"fmt"
	"strconv"
)

// Expression is a real function of a single real variable.
type Expression interface {
	Evaluate(x float64) float64
	fmt.Stringer
}

// Polynomializer is an Expression with an exact polynomial representation.
type Polynomializer interface {
	Expression
	AsPolynomial() Polynomial
}

// Scalar is the constant function.
type Scalar float64

// Evaluate returns the constant, whatever x.
func (k Scalar) Evaluate(x float64) float64 {
	return float64(k)
}

// AsPolynomial returns the constant as a polynomial over [0, 0].
func (k Scalar) AsPolynomial() Polynomial {
	return NewPolynomial(0, float64(k))
}

func (k Scalar) String() string {
	return formatFloat(float64(k))
}

// operand converts x to an Expression.
// Accepted types are float64, int, Scalar, Identity, Scaling, Shifting,
// Polynomial, Sparse, Rational and SparseRational. Sparse operands are
// converted to their dense counterpart.
func operand(x interface{}) Expression {
	switch x := x.(type) {
	case float64:
		return Scalar(x)
	case int:
		return Scalar(float64(x))
	case Scalar:
		return x
	case Identity:
		return x
	case Scaling:
		return x
	case Shifting:
		return x
	case Polynomial:
		return x
	case Rational:
		return x
	case Sparse:
		return x.Dense()
	case SparseRational:
		return x.Dense()
	default:
		panic(fmt.Errorf("invalid operand.(type): accepted types are float64, int, Scalar, Identity, Scaling, Shifting, Polynomial, Sparse, Rational or SparseRational but is %T", x))
	}
}

// polynomial returns the polynomial form of a non rational expression.
func polynomial(x Expression) Polynomial {
	switch x := x.(type) {
	case Polynomial:
		return x
	case Polynomializer:
		return x.AsPolynomial()
	default:
		panic(fmt.Errorf("invalid x.(type): %T has no polynomial representation", x))
	}
}

// rational returns the rational form of an expression.
func rational(x Expression) Rational {
	if r, ok := x.(Rational); ok {
		return r
	}
	return polynomial(x).AsRational()
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
