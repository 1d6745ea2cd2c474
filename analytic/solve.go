package analytic

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/tuneinsight/analytic/utils"
)

// Solve returns the x such that p(x) = y.
// The degree is the one of the trimmed polynomial, which must be between
// one and three with no negative exponent. The returned slice views the
// fixed size array of SolveLinear, SolveQuadratic or SolveCubic and holds
// as many complex roots as the degree, real roots having a zero imaginary part.
// Returns ErrUnsolvable otherwise.
func (p Polynomial) Solve(y float64) (roots []complex128, err error) {

	t := p.SubScalar(y).Trim()

	if t.lo < 0 {
		return nil, fmt.Errorf("cannot Solve: negative exponent %d: %w", t.lo, ErrUnsolvable)
	}

	a0, a1, a2, a3 := t.Coeff(0), t.Coeff(1), t.Coeff(2), t.Coeff(3)

	switch t.Hi() {
	case 1:
		r := SolveLinear(a0, a1)
		return r[:], nil
	case 2:
		r := SolveQuadratic(a0, a1, a2)
		return r[:], nil
	case 3:
		r := SolveCubic(a0, a1, a2, a3)
		return r[:], nil
	default:
		return nil, fmt.Errorf("cannot Solve: degree %d: %w", t.Hi(), ErrUnsolvable)
	}
}

// SolveLinear returns the root of a0 + a1*x.
func SolveLinear(a0, a1 float64) [1]complex128 {
	return [1]complex128{complex(-a0/a1, 0)}
}

// SolveQuadratic returns the two roots of a0 + a1*x + a2*x^2.
// A negative discriminant yields a pair of complex conjugates.
func SolveQuadratic(a0, a1, a2 float64) [2]complex128 {
	sqrtD := cmplx.Sqrt(complex(a1*a1-4*a2*a0, 0))
	b, den := complex(-a1, 0), complex(2*a2, 0)
	return [2]complex128{(b + sqrtD) / den, (b - sqrtD) / den}
}

// SolveCubic returns the three roots of a0 + a1*x + a2*x^2 + a3*x^3,
// by substitution into a depressed cubic and complex cube roots.
func SolveCubic(a0, a1, a2, a3 float64) (roots [3]complex128) {

	a0, a1, a2 = a0/a3, a1/a3, a2/a3

	q := a1/3 - a2*a2/9
	r := (a1*a2-3*a0)/6 - a2*a2*a2/27

	sqrtD := cmplx.Sqrt(complex(q*q*q+r*r, 0))

	s1 := cmplx.Pow(complex(r, 0)+sqrtD, complex(1.0/3, 0))

	var s2 complex128
	if s1 == 0 {
		s2 = cmplx.Pow(complex(r, 0)-sqrtD, complex(1.0/3, 0))
	} else {
		s2 = complex(-q, 0) / s1
	}

	shift := complex(a2/3, 0)
	rot := complex(0, math.Sqrt(3)/2) * (s1 - s2)

	roots[0] = s1 + s2 - shift
	roots[1] = -(s1+s2)/2 - shift + rot
	roots[2] = -(s1+s2)/2 - shift - rot

	return
}

// RealRoots returns the real parts of the roots whose imaginary part is
// negligible, in increasing order.
func RealRoots(roots []complex128) (reals []float64) {
	for _, z := range roots {
		if math.Abs(imag(z)) <= 1e-9*(1+math.Abs(real(z))) {
			reals = append(reals, real(z))
		}
	}
	sort.Float64s(reals)
	return
}

// Extrema returns the real roots of dp/dx, the candidate locations
// of the local extrema of p, in increasing order.
// Returns ErrUnsolvable if dp/dx cannot be solved in closed form.
func (p Polynomial) Extrema() (xs []float64, err error) {
	roots, err := p.Derivative().Solve(0)
	if err != nil {
		return nil, fmt.Errorf("cannot Extrema: %w", err)
	}
	return RealRoots(roots), nil
}

// Extremum returns the vertex -a1/(2*a2) of a polynomial of degree two.
// Returns ErrUnsolvable for any other degree.
func (p Polynomial) Extremum() (float64, error) {
	t := p.Trim()
	if t.lo < 0 || t.Hi() != 2 {
		return 0, fmt.Errorf("cannot Extremum: %s is not quadratic: %w", p, ErrUnsolvable)
	}
	return -t.Coeff(1) / (2 * t.Coeff(2)), nil
}

// Maximum returns the location in [lo, hi] at which p is the largest.
func (p Polynomial) Maximum(lo, hi float64) (float64, error) {
	return p.best(lo, hi, func(a, b float64) bool { return a > b })
}

// Minimum returns the location in [lo, hi] at which p is the smallest.
func (p Polynomial) Minimum(lo, hi float64) (float64, error) {
	return p.best(lo, hi, func(a, b float64) bool { return a < b })
}

// best returns the location in [lo, hi] that is preferred by better.
// Polynomials of degree at most one are monotonic and degree two has a
// single vertex, so only the general case searches the extrema.
func (p Polynomial) best(lo, hi float64, better func(a, b float64) bool) (x float64, err error) {

	t := p.Trim()

	pick := func(candidates ...float64) (x float64) {
		x = candidates[0]
		for _, c := range candidates[1:] {
			if better(t.Evaluate(c), t.Evaluate(x)) {
				x = c
			}
		}
		return
	}

	switch {
	case t.lo >= 0 && t.Hi() <= 1:
		return pick(lo, hi), nil
	case t.lo >= 0 && t.Hi() == 2:
		v, _ := t.Extremum()
		return pick(utils.Clamp(v, lo, hi), hi, lo), nil
	}

	xs, err := t.Extrema()
	if err != nil {
		return 0, err
	}

	candidates := []float64{lo, hi}
	for _, c := range xs {
		candidates = append(candidates, utils.Clamp(c, lo, hi))
	}

	return pick(candidates...), nil
}
