package analytic

import (
	"fmt"
)

// NewtonPolynomial returns the polynomial of degree len(xs)-1 that
// interpolates the points (xs[i], ys[i]), built from Newton's divided differences.
// The method panics if xs and ys have different or zero lengths.
func NewtonPolynomial(xs, ys []float64) (p Polynomial) {

	if len(xs) != len(ys) || len(xs) == 0 {
		panic(fmt.Errorf("invalid interpolation points: len(xs)=%d and len(ys)=%d", len(xs), len(ys)))
	}

	n := len(xs)

	dd := make([]float64, n)
	copy(dd, ys)

	for j := 1; j < n; j++ {
		for i := n - 1; i >= j; i-- {
			dd[i] = (dd[i] - dd[i-1]) / (xs[i] - xs[i-j])
		}
	}

	// Horner over the nested form dd[0] + (x-x0)*(dd[1] + (x-x1)*(...)).
	p = NewPolynomial(0, dd[n-1])
	for i := n - 2; i >= 0; i-- {
		p = p.Mul(Shifting{Offset: -xs[i]}.AsPolynomial()).AddScalar(dd[i])
	}

	return
}

// SampledNewtonPolynomial returns the polynomial interpolating f at xs.
func SampledNewtonPolynomial(f func(x float64) float64, xs ...float64) Polynomial {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return NewtonPolynomial(xs, ys)
}

// TaylorSeries returns the Taylor expansion of f around x0 up to the given
// order, between one and three, with derivatives estimated by central
// finite differences of step dx.
func TaylorSeries(f func(x float64) float64, x0, dx float64, order int) (Polynomial, error) {

	if order < 1 || order > 3 {
		return Polynomial{}, fmt.Errorf("cannot TaylorSeries: invalid order %d: must be between 1 and 3", order)
	}

	fm2, fm1, f0, fp1, fp2 := f(x0-2*dx), f(x0-dx), f(x0), f(x0+dx), f(x0+2*dx)

	coeffs := []float64{
		f0,
		(fp1 - fm1) / (2 * dx),
		(fp1 - 2*f0 + fm1) / (dx * dx) / 2,
		(fp2 - 2*fp1 + 2*fm1 - fm2) / (2 * dx * dx * dx) / 6,
	}

	// Expanded in (x - x0).
	return NewPolynomial(0, coeffs[:order+1]...).ComposeShifting(Shifting{Offset: -x0})
}

// CubicHermiteSpline returns the cubic polynomial p with p(x1) = y1,
// p(x2) = y2, p'(x1) = dydx1 and p'(x2) = dydx2.
func CubicHermiteSpline(x1, x2, y1, y2, dydx1, dydx2 float64) Polynomial {

	h := x2 - x1

	// Hermite basis in t = (x - x1)/h.
	h00 := NewPolynomial(0, 1, 0, -3, 2)
	h10 := NewPolynomial(0, 0, 1, -2, 1)
	h01 := NewPolynomial(0, 0, 0, 3, -2)
	h11 := NewPolynomial(0, 0, 0, -1, 1)

	p := h00.MulScalar(y1).
		Add(h10.MulScalar(h * dydx1)).
		Add(h01.MulScalar(y2)).
		Add(h11.MulScalar(h * dydx2))

	p, _ = p.ComposeScaling(Scaling{Factor: 1 / h}).ComposeShifting(Shifting{Offset: -x1})

	return p
}

// Legendre returns the Legendre polynomial of degree n, by Bonnet's recursion
// (n+1)P[n+1] = (2n+1)xP[n] - nP[n-1].
// The method panics if n is negative.
func Legendre(n int) Polynomial {

	if n < 0 {
		panic(fmt.Errorf("invalid Legendre degree: %d", n))
	}

	p0, p1 := NewPolynomial(0, 1), NewPolynomial(0, 0, 1)

	if n == 0 {
		return p0
	}

	x := NewPolynomial(1, 1)
	for i := 1; i < n; i++ {
		p0, p1 = p1, x.Mul(p1).MulScalar(float64(2*i+1)).Sub(p0.MulScalar(float64(i))).DivScalar(float64(i+1))
	}

	return p1
}
