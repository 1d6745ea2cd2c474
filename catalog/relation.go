package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/tuneinsight/analytic/analytic"
)

var (
	// ErrOutOfRange is returned when probing a relation outside of its validity interval.
	ErrOutOfRange = errors.New("catalog: outside of validity interval")

	// ErrNotPolynomial is returned by operations that have no closed form for rationals.
	ErrNotPolynomial = errors.New("catalog: relation is not a polynomial")
)

// Relation is a named analytic function with the interval over which it is valid.
type Relation struct {
	Name   string
	Lo, Hi float64
	// Function is either an analytic.Polynomial or an analytic.Rational.
	Function analytic.Expression
}

func (r Relation) String() string {
	return fmt.Sprintf("%s [%g, %g]: %s", r.Name, r.Lo, r.Hi, r.Function)
}

// Contains returns true if x is in the validity interval of r.
func (r Relation) Contains(x float64) bool {
	return r.Lo <= x && x <= r.Hi
}

// Evaluate returns the value of the relation at x.
// Returns ErrOutOfRange if x is outside of the validity interval.
func (r Relation) Evaluate(x float64) (float64, error) {
	if !r.Contains(x) {
		return 0, fmt.Errorf("cannot Evaluate %s at %g: %w", r.Name, x, ErrOutOfRange)
	}
	return r.Function.Evaluate(x), nil
}

// Derivative returns the derivative of the relation, valid over the same interval.
func (r Relation) Derivative() Relation {
	d := r
	d.Name = r.Name + "'"
	switch f := r.Function.(type) {
	case analytic.Polynomial:
		d.Function = f.Derivative()
	case analytic.Rational:
		d.Function = f.Derivative()
	}
	return d
}

// Integral returns the definite integral of the relation over its validity interval.
// Returns ErrNotPolynomial for rationals.
func (r Relation) Integral() (float64, error) {
	p, ok := r.Function.(analytic.Polynomial)
	if !ok {
		return 0, fmt.Errorf("cannot Integral %s: %w", r.Name, ErrNotPolynomial)
	}
	return p.IntegralOver(r.Lo, r.Hi), nil
}

// Solve returns the x of the validity interval, in increasing order, at which
// the relation equals y. A rational P/Q is solved as P - y*Q = 0, discarding
// the roots at which Q vanishes.
func (r Relation) Solve(y float64) (xs []float64, err error) {

	var p, q analytic.Polynomial
	switch f := r.Function.(type) {
	case analytic.Polynomial:
		p, q = f.SubScalar(y), analytic.NewPolynomial(0, 1)
	case analytic.Rational:
		p, q = f.P.Sub(f.Q.MulScalar(y)), f.Q
	}

	roots, err := p.Solve(0)
	if err != nil {
		return nil, fmt.Errorf("cannot Solve %s: %w", r.Name, err)
	}

	for _, x := range analytic.RealRoots(roots) {
		if r.Contains(x) && q.Evaluate(x) != 0 {
			xs = append(xs, x)
		}
	}

	sort.Float64s(xs)

	return
}

// Maximum returns the location of the largest value of the relation over its validity interval.
// Returns ErrNotPolynomial for rationals.
func (r Relation) Maximum() (float64, error) {
	p, ok := r.Function.(analytic.Polynomial)
	if !ok {
		return 0, fmt.Errorf("cannot Maximum %s: %w", r.Name, ErrNotPolynomial)
	}
	return p.Maximum(r.Lo, r.Hi)
}

// Minimum returns the location of the smallest value of the relation over its validity interval.
// Returns ErrNotPolynomial for rationals.
func (r Relation) Minimum() (float64, error) {
	p, ok := r.Function.(analytic.Polynomial)
	if !ok {
		return 0, fmt.Errorf("cannot Minimum %s: %w", r.Name, ErrNotPolynomial)
	}
	return p.Minimum(r.Lo, r.Hi)
}

// Overlap returns the intersection of the validity intervals of r and s.
// Returns ErrOutOfRange if they are disjoint.
func (r Relation) Overlap(s Relation) (lo, hi float64, err error) {
	lo, hi = math.Max(r.Lo, s.Lo), math.Min(r.Hi, s.Hi)
	if !(lo < hi) {
		return 0, 0, fmt.Errorf("cannot Overlap %s and %s: %w", r.Name, s.Name, ErrOutOfRange)
	}
	return
}

// Distance returns the distance between r and s over the intersection of their validity intervals.
func (r Relation) Distance(s Relation) (float64, error) {
	lo, hi, err := r.Overlap(s)
	if err != nil {
		return 0, err
	}
	return analytic.Distance(r.Function, s.Function, lo, hi), nil
}

// Fingerprint returns the digest of the non-zero terms of the function of r.
func (r Relation) Fingerprint() [32]byte {
	switch f := r.Function.(type) {
	case analytic.Polynomial:
		return f.Fingerprint()
	case analytic.Rational:
		return f.Fingerprint()
	}
	panic(fmt.Errorf("invalid r.Function.(type): %T", r.Function))
}
