package analytic

import (
	"fmt"
	"math"
)

// Identity is the function f(x) = x.
type Identity struct{}

// Evaluate returns x.
func (Identity) Evaluate(x float64) float64 {
	return x
}

// AsPolynomial returns x as a polynomial over [1, 1].
func (Identity) AsPolynomial() Polynomial {
	return NewPolynomial(1, 1)
}

func (Identity) String() string {
	return "x"
}

// Derivative returns the constant 1.
func (Identity) Derivative() Scalar {
	return 1
}

// Integral returns x^2/2.
func (Identity) Integral() Polynomial {
	return NewPolynomial(2, 0.5)
}

// Inverse returns the identity.
func (f Identity) Inverse() Identity {
	return f
}

// Scaling is the function f(x) = Factor * x.
type Scaling struct {
	Factor float64
}

// NewScaling creates a new Scaling with the given factor.
func NewScaling(factor float64) Scaling {
	return Scaling{Factor: factor}
}

// Evaluate returns Factor * x.
func (f Scaling) Evaluate(x float64) float64 {
	return f.Factor * x
}

// AsPolynomial returns Factor * x as a polynomial over [1, 1].
func (f Scaling) AsPolynomial() Polynomial {
	return NewPolynomial(1, f.Factor)
}

func (f Scaling) String() string {
	return formatFloat(f.Factor) + "*x"
}

// Derivative returns the constant Factor.
func (f Scaling) Derivative() Scalar {
	return Scalar(f.Factor)
}

// Integral returns Factor * x^2/2.
func (f Scaling) Integral() Polynomial {
	return NewPolynomial(2, f.Factor/2)
}

// Inverse returns the scaling by 1/Factor.
// Returns ErrNotInvertible if Factor is zero.
func (f Scaling) Inverse() (Scaling, error) {
	if f.Factor == 0 {
		return Scaling{}, fmt.Errorf("cannot Inverse: %w", ErrNotInvertible)
	}
	return Scaling{Factor: 1 / f.Factor}, nil
}

// Shifting is the function f(x) = x + Offset.
type Shifting struct {
	Offset float64
}

// NewShifting creates a new Shifting with the given offset.
func NewShifting(offset float64) Shifting {
	return Shifting{Offset: offset}
}

// Evaluate returns x + Offset.
func (f Shifting) Evaluate(x float64) float64 {
	return x + f.Offset
}

// AsPolynomial returns x + Offset as a polynomial over [0, 1].
func (f Shifting) AsPolynomial() Polynomial {
	return NewPolynomial(0, f.Offset, 1)
}

func (f Shifting) String() string {
	if math.Signbit(f.Offset) {
		return "x - " + formatFloat(-f.Offset)
	}
	return "x + " + formatFloat(f.Offset)
}

// Derivative returns the constant 1.
func (f Shifting) Derivative() Scalar {
	return 1
}

// Integral returns Offset * x + x^2/2.
func (f Shifting) Integral() Polynomial {
	return NewPolynomial(1, f.Offset, 0.5)
}

// Inverse returns the shifting by -Offset.
func (f Shifting) Inverse() Shifting {
	return Shifting{Offset: -f.Offset}
}
