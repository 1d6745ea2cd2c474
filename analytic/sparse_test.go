package analytic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSparse(t *testing.T) {

	p := NewSparseFromPolynomial(fixtureP)
	r := NewSparseFromPolynomial(fixtureR)
	s := NewSparseFromPolynomial(fixtureS)

	// Every sparse operation must agree with its dense counterpart.
	same := func(t *testing.T, want Polynomial, have Sparse, lo, hi float64) {
		require.Less(t, want.Distance(have.Dense(), lo, hi), threshold)
	}

	t.Run("Construction", func(t *testing.T) {
		require.Equal(t, []int8{-2, -1, 0, 1, 2}, s.Exponents())
		require.Equal(t, -2, r.Lo())
		require.Equal(t, 2, r.Hi())
		require.Equal(t, 0.0, NewSparseFromPolynomial(fixtureQ).Coeff(1))
		require.Equal(t, 0.0, r.Coeff(300))
		require.Equal(t, []float64{1, 2, 3, 4, 5}, r.Dense().Coeffs)

		var zero Sparse
		require.Equal(t, 0.0, zero.Evaluate(2))
		require.Equal(t, 0, zero.Lo())
		require.Equal(t, "0", zero.String())

		require.Panics(t, func() { NewSparseFromPolynomial(NewPolynomial(128, 1)) })
		require.Panics(t, func() { r.Set(-129, 1) })
	})

	t.Run("Evaluate", func(t *testing.T) {
		for _, x := range []float64{-2, -0.5, 0.25, 3} {
			require.InDelta(t, fixtureR.Evaluate(x), r.Evaluate(x), 1e-12*(1+math.Abs(r.Evaluate(x))))
		}
	})

	t.Run("Arithmetic", func(t *testing.T) {
		same(t, fixtureR.Add(fixtureS), r.Add(s), laurentLo, laurentHi)
		same(t, fixtureR.Sub(fixtureS), r.Sub(s), laurentLo, laurentHi)
		same(t, fixtureR.Mul(fixtureS), r.Mul(s), laurentMidLo, laurentMidHi)
		same(t, fixtureP.Mul(fixtureR), p.Mul(r), laurentMidLo, laurentMidHi)
		same(t, fixtureR.Neg(), r.Neg(), laurentLo, laurentHi)
		same(t, fixtureR.AddScalar(2), r.AddScalar(2), laurentLo, laurentHi)
		same(t, fixtureR.SubScalar(2), r.SubScalar(2), laurentLo, laurentHi)
		same(t, fixtureR.MulScalar(2), r.MulScalar(2), laurentLo, laurentHi)
		same(t, fixtureR.DivScalar(2), r.DivScalar(2), laurentLo, laurentHi)

		q, err := p.DivMonomial(NewSparse(map[int8]float64{3: 2, 1: 0}))
		require.NoError(t, err)
		want, err := fixtureP.DivMonomial(NewPolynomial(3, 2))
		require.NoError(t, err)
		same(t, want, q, laurentLo, laurentHi)

		_, err = p.DivMonomial(s)
		require.ErrorIs(t, err, ErrNotMonomial)
	})

	t.Run("Assign", func(t *testing.T) {
		a := r.Clone()
		a.AddAssign(s)
		same(t, fixtureR.Add(fixtureS), a, laurentLo, laurentHi)
		a.SubAssign(s)
		a.MulScalarAssign(3)
		a.DivScalarAssign(3)
		same(t, fixtureR, a, laurentLo, laurentHi)

		// The receiver is the only value modified.
		same(t, fixtureS, s, laurentLo, laurentHi)

		var zero Sparse
		require.Panics(t, func() { zero.AddAssign(s) })
		empty := NewSparse(nil)
		empty.AddAssign(s)
		same(t, fixtureS, empty, laurentLo, laurentHi)
	})

	t.Run("Overflow", func(t *testing.T) {
		big := NewSparse(map[int8]float64{100: 1})
		require.Panics(t, func() { big.Mul(big) })
		require.Panics(t, func() { NewSparse(map[int8]float64{-128: 1}).Derivative() })
	})

	t.Run("Calculus", func(t *testing.T) {
		same(t, fixtureR.Derivative(), r.Derivative(), laurentLo, laurentHi)
		same(t, fixtureP.Derivative(), p.Derivative(), laurentLo, laurentHi)

		ip, err := p.Integral()
		require.NoError(t, err)
		same(t, fixtureP, ip.Derivative(), laurentLo, laurentHi)

		_, err = r.Integral()
		require.ErrorIs(t, err, ErrLogarithmicTerm)

		for _, bounds := range [][2]float64{{0.5, 3}, {-4, -1}} {
			want := fixtureR.IntegralOver(bounds[0], bounds[1])
			require.InDelta(t, want, r.IntegralOver(bounds[0], bounds[1]), 1e-12*(1+math.Abs(want)))
		}
	})

	t.Run("Distance", func(t *testing.T) {
		require.Equal(t, 0.0, Distance(r, r.Clone(), laurentLo, laurentHi))
		require.Equal(t, Distance(fixtureP, fixtureQ, laurentLo, laurentHi), Distance(p, NewSparseFromPolynomial(fixtureQ), laurentLo, laurentHi))
		require.Equal(t, Distance(r, s, laurentLo, laurentHi), Distance(s, r, laurentLo, laurentHi))
	})

	t.Run("Rational", func(t *testing.T) {
		a := p.Over(r)
		b := s.Over(p)
		da, db := a.Dense(), b.Dense()

		require.Less(t, Distance(a.Add(b), da.Add(db), laurentMidLo, laurentMidHi), threshold)
		require.Less(t, Distance(a.Sub(b), da.Sub(db), laurentMidLo, laurentMidHi), threshold)
		require.Less(t, Distance(a.Mul(b), da.Mul(db), laurentMidLo, laurentMidHi), threshold)
		require.Less(t, Distance(a.Div(b), da.Div(db), laurentMidLo, laurentMidHi), threshold)
		require.Less(t, Distance(a.Neg(), da.Neg(), laurentLo, laurentHi), threshold)
		require.Less(t, Distance(a.AddScalar(2), da.AddScalar(2), laurentLo, laurentHi), threshold)
		require.Less(t, Distance(a.SubScalar(2), da.SubScalar(2), laurentLo, laurentHi), threshold)
		require.Less(t, Distance(a.MulScalar(2), da.MulScalar(2), laurentLo, laurentHi), threshold)
		require.Less(t, Distance(a.DivScalar(2), da.DivScalar(2), laurentLo, laurentHi), threshold)
		require.Less(t, Distance(a.Derivative(), da.Derivative(), laurentMidLo, laurentMidHi), threshold)

		require.Equal(t, 0.0, a.Distance(a, laurentLo, laurentHi))
		require.InDelta(t, da.Evaluate(2), a.Evaluate(2), 1e-12)
		require.Equal(t, "(1 + 2*x + 3*x^2 + 4*x^3 + 5*x^4)/(x^-2 + 2*x^-1 + 3 + 4*x + 5*x^2)", a.String())
	})
}
