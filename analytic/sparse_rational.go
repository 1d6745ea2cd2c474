package analytic

// SparseRational is the ratio P(x)/Q(x) of two sparse polynomials.
type SparseRational struct {
	P, Q Sparse
}

// NewSparseRational creates a new SparseRational p/q. The polynomials are copied.
func NewSparseRational(p, q Sparse) SparseRational {
	return SparseRational{P: p.Clone(), Q: q.Clone()}
}

// Evaluate returns P(x)/Q(x).
func (r SparseRational) Evaluate(x float64) float64 {
	return r.P.Evaluate(x) / r.Q.Evaluate(x)
}

// Dense returns r as a Rational.
func (r SparseRational) Dense() Rational {
	return Rational{P: r.P.Dense(), Q: r.Q.Dense()}
}

// Add returns r + s by cross-multiplication.
func (r SparseRational) Add(s SparseRational) SparseRational {
	return SparseRational{P: r.P.Mul(s.Q).Add(s.P.Mul(r.Q)), Q: r.Q.Mul(s.Q)}
}

// Sub returns r - s by cross-multiplication.
func (r SparseRational) Sub(s SparseRational) SparseRational {
	return SparseRational{P: r.P.Mul(s.Q).Sub(s.P.Mul(r.Q)), Q: r.Q.Mul(s.Q)}
}

// Mul returns r * s.
func (r SparseRational) Mul(s SparseRational) SparseRational {
	return SparseRational{P: r.P.Mul(s.P), Q: r.Q.Mul(s.Q)}
}

// Div returns r / s.
func (r SparseRational) Div(s SparseRational) SparseRational {
	return SparseRational{P: r.P.Mul(s.Q), Q: r.Q.Mul(s.P)}
}

// Neg returns -r.
func (r SparseRational) Neg() SparseRational {
	return SparseRational{P: r.P.Neg(), Q: r.Q.Clone()}
}

// AddScalar returns r + k.
func (r SparseRational) AddScalar(k float64) SparseRational {
	return SparseRational{P: r.P.Add(r.Q.MulScalar(k)), Q: r.Q.Clone()}
}

// SubScalar returns r - k.
func (r SparseRational) SubScalar(k float64) SparseRational {
	return SparseRational{P: r.P.Sub(r.Q.MulScalar(k)), Q: r.Q.Clone()}
}

// MulScalar returns k * r.
func (r SparseRational) MulScalar(k float64) SparseRational {
	return SparseRational{P: r.P.MulScalar(k), Q: r.Q.Clone()}
}

// DivScalar returns r / k.
func (r SparseRational) DivScalar(k float64) SparseRational {
	return SparseRational{P: r.P.Clone(), Q: r.Q.MulScalar(k)}
}

// Derivative returns the derivative of r by the quotient rule.
func (r SparseRational) Derivative() SparseRational {
	num := r.P.Derivative().Mul(r.Q).Sub(r.Q.Derivative().Mul(r.P))
	return SparseRational{P: num, Q: r.Q.Mul(r.Q)}
}

// Distance returns the distance between r and s over [lo, hi],
// computed between the cross products r.P*s.Q and s.P*r.Q.
func (r SparseRational) Distance(s SparseRational, lo, hi float64) float64 {
	return r.P.Mul(s.Q).Distance(s.P.Mul(r.Q), lo, hi)
}

func (r SparseRational) String() string {
	return "(" + r.P.String() + ")/(" + r.Q.String() + ")"
}
