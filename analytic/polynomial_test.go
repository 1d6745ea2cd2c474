package analytic

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestPolynomial(t *testing.T) {

	t.Run("Range", func(t *testing.T) {
		require.Equal(t, 0, fixtureP.Lo())
		require.Equal(t, 4, fixtureP.Hi())
		require.Equal(t, -2, fixtureR.Lo())
		require.Equal(t, 2, fixtureR.Hi())

		var zero Polynomial
		require.Equal(t, 0.0, zero.Evaluate(3))
		require.True(t, zero.IsZero())
		require.Equal(t, "0", zero.String())
	})

	t.Run("Coeff", func(t *testing.T) {
		require.Equal(t, 3.0, fixtureR.Coeff(0))
		require.Equal(t, 1.0, fixtureR.Coeff(-2))
		require.Equal(t, 0.0, fixtureR.Coeff(-3))
		require.Equal(t, 0.0, fixtureR.Coeff(7))

		p := fixtureP.Clone()
		p.Set(2, 7)
		require.Equal(t, 7.0, p.Coeff(2))
		require.Equal(t, 3.0, fixtureP.Coeff(2))
		require.Panics(t, func() { p.Set(5, 1) })
		require.Panics(t, func() { NewZeroPolynomial(2, 1) })
	})

	t.Run("Evaluate", func(t *testing.T) {
		require.Equal(t, 129.0, fixtureP.Evaluate(2))
		require.Equal(t, 32.25, fixtureR.Evaluate(2))
		require.Equal(t, 3.0, NewPolynomial(-3, 0, 0, 0, 3).Evaluate(0))
		require.Equal(t, 12.0, NewPolynomial(2, 3).Evaluate(2))
		require.Equal(t, -0.125, NewPolynomial(-3, 1).Evaluate(-2))
		require.True(t, math.IsInf(NewPolynomial(-1, 1).Evaluate(0), 1))
	})

	t.Run("Trim", func(t *testing.T) {
		p := NewPolynomial(-2, 0, 0, 1, 0, 2, 0)
		tp := p.Trim()
		require.Equal(t, 0, tp.Lo())
		require.Equal(t, 2, tp.Hi())
		require.Equal(t, []float64{1, 0, 2}, tp.Coeffs)

		tz := NewZeroPolynomial(-3, 3).Trim()
		require.Equal(t, 0, tz.Lo())
		require.Equal(t, 0, tz.Hi())
	})

	t.Run("Monomial", func(t *testing.T) {
		n, k, ok := NewPolynomial(-1, 0, 0, 0, 4, 0).Monomial()
		require.True(t, ok)
		require.Equal(t, 2, n)
		require.Equal(t, 4.0, k)

		_, _, ok = fixtureP.Monomial()
		require.False(t, ok)
	})

	t.Run("Add", func(t *testing.T) {
		r := fixtureP.Add(fixtureR)
		require.Equal(t, -2, r.Lo())
		require.Equal(t, 4, r.Hi())
		require.Equal(t, []float64{1, 2, 4, 6, 8, 4, 5}, r.Coeffs)

		d := fixtureP.Sub(fixtureR)
		require.Equal(t, []float64{-1, -2, -2, -2, -2, 4, 5}, d.Coeffs)
	})

	t.Run("Mul", func(t *testing.T) {
		r := NewPolynomial(-1, 1, 1).Mul(NewPolynomial(1, -1, 1))
		require.Equal(t, 0, r.Lo())
		require.Equal(t, 2, r.Hi())
		require.Equal(t, []float64{-1, 0, 1}, r.Coeffs)

		m := fixtureR.Mul(fixtureS)
		require.Equal(t, -4, m.Lo())
		require.Equal(t, 4, m.Hi())
		for _, x := range []float64{-3, -0.5, 0.25, 2} {
			require.InDelta(t, fixtureR.Evaluate(x)*fixtureS.Evaluate(x), m.Evaluate(x), 1e-9*math.Abs(m.Evaluate(x)))
		}
	})

	t.Run("Scalar", func(t *testing.T) {
		r := fixtureR.AddScalar(2)
		require.Equal(t, -2, r.Lo())
		require.Equal(t, 5.0, r.Coeff(0))

		s := NewPolynomial(2, 1).SubScalar(3)
		require.Equal(t, 0, s.Lo())
		require.Equal(t, []float64{-3, 0, 1}, s.Coeffs)

		require.Equal(t, []float64{2, 4, 6, 8, 10}, fixtureP.MulScalar(2).Coeffs)
		require.Equal(t, []float64{0.5, 1, 1.5, 2, 2.5}, fixtureP.DivScalar(2).Coeffs)
		require.Equal(t, []float64{-1, -2, -3, -4, -5}, fixtureP.Neg().Coeffs)
	})

	t.Run("DivMonomial", func(t *testing.T) {
		r, err := fixtureP.DivMonomial(NewPolynomial(2, 2))
		require.NoError(t, err)
		require.Equal(t, -2, r.Lo())
		require.Equal(t, 2, r.Hi())
		require.Equal(t, []float64{0.5, 1, 1.5, 2, 2.5}, r.Coeffs)

		_, err = fixtureP.DivMonomial(fixtureQ)
		require.ErrorIs(t, err, ErrNotMonomial)

		z, err := fixtureP.DivMonomial(NewPolynomial(0, 0))
		require.NoError(t, err)
		require.True(t, math.IsInf(z.Coeff(0), 1))
	})

	t.Run("Assign", func(t *testing.T) {
		p := fixtureR.Clone()
		require.NoError(t, p.AddAssign(fixtureS))
		require.Equal(t, []float64{0, 3, 1, 6, 8}, p.Coeffs)
		require.NoError(t, p.SubAssign(fixtureS))
		require.Equal(t, fixtureR.Coeffs, p.Coeffs)

		require.ErrorIs(t, p.AddAssign(fixtureP), ErrRangeMismatch)
		require.ErrorIs(t, NewPolynomial(1, 1).AddScalarAssign(1), ErrRangeMismatch)
		require.ErrorIs(t, p.MulAssign(NewPolynomial(1, 1)), ErrRangeMismatch)

		require.NoError(t, p.AddScalarAssign(1))
		require.NoError(t, p.SubScalarAssign(1))
		require.NoError(t, p.MulAssign(NewPolynomial(0, 2)))
		p.DivScalarAssign(2)
		p.MulScalarAssign(3)
		p.DivScalarAssign(3)
		require.Equal(t, fixtureR.Coeffs, p.Coeffs)
	})

	t.Run("Pow", func(t *testing.T) {
		p := NewPolynomial(0, 1, 1)
		require.Equal(t, []float64{1, 4, 6, 4, 1}, p.Pow(4).Coeffs)
		require.Equal(t, []float64{1}, p.Pow(0).Coeffs)
		require.Equal(t, -3, NewPolynomial(-1, 2).Pow(3).Lo())
		require.Panics(t, func() { p.Pow(-1) })
	})

	t.Run("Inverse", func(t *testing.T) {
		p := NewPolynomial(0, 3, 2)
		inv, err := p.Inverse()
		require.NoError(t, err)
		for _, x := range []float64{-2, 0, 1.5} {
			require.InDelta(t, x, inv.Evaluate(p.Evaluate(x)), 1e-12)
		}

		_, err = fixtureP.Inverse()
		require.ErrorIs(t, err, ErrNotInvertible)
		_, err = NewPolynomial(0, 3).Inverse()
		require.ErrorIs(t, err, ErrNotInvertible)
	})

	t.Run("String", func(t *testing.T) {
		require.Equal(t, "1 - 2*x + 3*x^2", NewPolynomial(0, 1, -2, 3).String())
		require.Equal(t, "-x^-1 + 4*x^2", NewPolynomial(-1, -1, 0, 0, 4).String())
	})
}

func TestCalculus(t *testing.T) {

	t.Run("Derivative", func(t *testing.T) {
		d := fixtureP.Derivative()
		require.Equal(t, 0, d.Lo())
		require.Equal(t, []float64{2, 6, 12, 20}, d.Coeffs)

		d = fixtureR.Derivative()
		require.Equal(t, -3, d.Lo())
		require.Equal(t, 1, d.Hi())
		require.Equal(t, []float64{-2, -2, 0, 4, 10}, d.Coeffs)

		d = NewPolynomial(0, 7).Derivative()
		require.True(t, d.IsZero())

		for _, x := range []float64{-1.5, 0.5, 3} {
			require.InDelta(t, fixtureR.Derivative().Evaluate(x), fixtureR.DerivativeAt(x), 1e-9)
		}
	})

	t.Run("Integral", func(t *testing.T) {
		for _, p := range []Polynomial{fixtureP, fixtureQ, NewPolynomial(-4, 1, 2), NewPolynomial(2, 3, 1)} {
			ip, err := p.Integral()
			require.NoError(t, err)
			require.Less(t, p.Distance(ip.Derivative(), laurentLo, laurentHi), threshold)
		}

		_, err := fixtureR.Integral()
		require.ErrorIs(t, err, ErrLogarithmicTerm)

		ip, err := NewPolynomial(-3, 2).Integral()
		require.NoError(t, err)
		require.Equal(t, -2, ip.Lo())
		require.Equal(t, []float64{-1}, ip.Coeffs)
	})

	t.Run("IntegralOver", func(t *testing.T) {
		require.InDelta(t, 1.0, NewPolynomial(-1, 1).IntegralOver(1, math.E), 1e-12)
		require.InDelta(t, math.Log(2), NewPolynomial(-1, 1).IntegralOver(-1, -2), 1e-12)
		require.InDelta(t, 2.0/3, NewPolynomial(0, 0, 0, 1).IntegralOver(-1, 1), 1e-12)

		ip, err := fixtureP.Integral()
		require.NoError(t, err)
		require.InDelta(t, ip.Evaluate(2)-ip.Evaluate(-1), fixtureP.IntegralOver(-1, 2), 1e-12)
		require.InDelta(t, ip.Evaluate(2), fixtureP.AntiderivativeAt(2), 1e-12)
	})

	t.Run("Rational", func(t *testing.T) {
		r := fixtureP.Over(NewPolynomial(0, 1, 0, 1))
		d := r.Derivative()
		for _, x := range []float64{-2, -0.5, 0.75, 3} {
			h := 1e-6
			approx := (r.Evaluate(x+h) - r.Evaluate(x-h)) / (2 * h)
			require.InDelta(t, approx, d.Evaluate(x), 1e-4*(1+math.Abs(approx)))
			require.InDelta(t, d.Evaluate(x), r.DerivativeAt(x), 1e-9*(1+math.Abs(approx)))
		}
	})
}

func TestPrecise(t *testing.T) {

	prec := uint(128)

	t.Run("Integral", func(t *testing.T) {
		for _, p := range []Polynomial{fixtureP, fixtureR.Mul(fixtureR), NewPolynomial(-1, 1)} {
			want := p.IntegralOver(0.5, 3)
			y, ok := p.PreciseIntegral(0.5, 3, prec)
			require.True(t, ok)
			have, _ := y.Float64()
			require.InDelta(t, want, have, 1e-9*math.Abs(want))
		}
	})

	t.Run("Distance", func(t *testing.T) {
		require.Equal(t, 0.0, fixtureP.PreciseDistance(fixtureP, lo, hi, prec))
		require.InDelta(t, 3.0, fixtureP.PreciseDistance(fixtureP.AddScalar(3), -2, 5, prec), 1e-12)

		a := fixtureP.Mul(fixtureP)
		b := a.AddScalar(1e-3)
		require.InDelta(t, 1e-3, a.PreciseDistance(b, lo, hi, prec), 1e-12)
	})

	t.Run("Poles", func(t *testing.T) {
		// x^-2 - x^-1 has poles of opposite signs at 0.
		p := NewPolynomial(-2, 1, -1)
		require.True(t, math.IsNaN(p.IntegralOver(0, 1)))
		_, ok := p.PreciseIntegral(0, 1, prec)
		require.False(t, ok)

		// A single pole at a bound diverges.
		p = NewPolynomial(-2, 1)
		require.True(t, math.IsInf(p.IntegralOver(0, 1), 1))
		y, ok := p.PreciseIntegral(0, 1, prec)
		require.True(t, ok)
		require.True(t, y.IsInf())
		require.Equal(t, 1, y.Sign())

		require.True(t, math.IsNaN(fixtureP.Distance(fixtureQ, 1, 1)))
		require.True(t, math.IsNaN(fixtureP.PreciseDistance(fixtureQ, 1, 1, prec)))
		require.True(t, math.IsNaN(NewPolynomial(-2, 1, -1).PreciseDistance(fixtureP, 0, 1, prec)))
	})
}

func TestFingerprint(t *testing.T) {
	padded := NewPolynomial(-1, 0, 1, 2, 3, 4, 5, 0, 0)
	require.Equal(t, fixtureP.Fingerprint(), padded.Fingerprint())
	require.NotEqual(t, fixtureP.Fingerprint(), fixtureQ.Fingerprint())
	require.NotEqual(t, fixtureP.Fingerprint(), NewPolynomial(1, 1, 2, 3, 4, 5).Fingerprint())
	require.Equal(t, NewPolynomial(0, 1, 0, 2).Fingerprint(), NewPolynomial(0, 1, math.Copysign(0, -1), 2).Fingerprint())

	r := fixtureP.Over(fixtureQ)
	require.Equal(t, r.Fingerprint(), padded.Over(fixtureQ).Fingerprint())
	require.NotEqual(t, r.Fingerprint(), fixtureQ.Over(fixtureP).Fingerprint())
}

func TestInterpolation(t *testing.T) {

	approx := cmpopts.EquateApprox(0, 1e-9)

	t.Run("Newton", func(t *testing.T) {
		cube := func(x float64) float64 { return x * x * x }
		p := SampledNewtonPolynomial(cube, -1, 0, 1, 2)
		require.True(t, cmp.Equal([]float64{0, 0, 0, 1}, p.Coeffs, approx), p.String())

		line := NewtonPolynomial([]float64{1, 3}, []float64{2, 6})
		require.True(t, cmp.Equal([]float64{0, 2}, line.Coeffs, approx), line.String())

		require.Panics(t, func() { NewtonPolynomial([]float64{1}, nil) })
	})

	t.Run("Taylor", func(t *testing.T) {
		p, err := TaylorSeries(math.Exp, 1, 1e-3, 3)
		require.NoError(t, err)
		require.InDelta(t, math.Exp(1.1), p.Evaluate(1.1), 1e-4)

		p, err = TaylorSeries(math.Sin, 0, 1e-3, 1)
		require.NoError(t, err)
		require.InDelta(t, 0.01, p.Evaluate(0.01), 1e-6)

		_, err = TaylorSeries(math.Sin, 0, 1e-3, 4)
		require.Error(t, err)
	})

	t.Run("CubicHermiteSpline", func(t *testing.T) {
		p := CubicHermiteSpline(1, 3, 2, -1, 0.5, 4)
		require.InDelta(t, 2.0, p.Evaluate(1), 1e-12)
		require.InDelta(t, -1.0, p.Evaluate(3), 1e-12)
		require.InDelta(t, 0.5, p.DerivativeAt(1), 1e-12)
		require.InDelta(t, 4.0, p.DerivativeAt(3), 1e-12)
	})

	t.Run("Legendre", func(t *testing.T) {
		require.Equal(t, []float64{1}, Legendre(0).Coeffs)
		require.Equal(t, []float64{0, 1}, Legendre(1).Coeffs)
		require.True(t, cmp.Equal([]float64{-0.5, 0, 1.5}, Legendre(2).Trim().Coeffs, approx))
		require.True(t, cmp.Equal([]float64{0, -1.5, 0, 2.5}, Legendre(3).Coeffs, approx))

		for i := 0; i < 5; i++ {
			for j := 0; j < i; j++ {
				require.InDelta(t, 0, Legendre(i).Mul(Legendre(j)).IntegralOver(-1, 1), 1e-12)
			}
			require.InDelta(t, 1.0, Legendre(i).Evaluate(1), 1e-12)
		}
	})
}
