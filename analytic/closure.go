package analytic

// Add returns a + b.
//
// Operands can be float64, int, Scalar, Identity, Scaling, Shifting,
// Polynomial, Sparse, Rational or SparseRational, sparse operands being
// converted to their dense form. Pairs of primitives that stay primitive
// are resolved in closed form, otherwise the operands are promoted to
// polynomials, or to rationals if either of them is a Rational.
//
// The function panics on any other operand type.
func Add(a, b interface{}) Expression {

	x, y := operand(a), operand(b)

	switch x := x.(type) {
	case Scalar:
		switch y := y.(type) {
		case Scalar:
			return x + y
		case Identity:
			return Shifting{Offset: float64(x)}
		case Shifting:
			return Shifting{Offset: y.Offset + float64(x)}
		}
	case Identity:
		switch y := y.(type) {
		case Scalar:
			return Shifting{Offset: float64(y)}
		case Identity:
			return Scaling{Factor: 2}
		case Scaling:
			return Scaling{Factor: 1 + y.Factor}
		}
	case Scaling:
		switch y := y.(type) {
		case Identity:
			return Scaling{Factor: x.Factor + 1}
		case Scaling:
			return Scaling{Factor: x.Factor + y.Factor}
		}
	case Shifting:
		if y, ok := y.(Scalar); ok {
			return Shifting{Offset: x.Offset + float64(y)}
		}
	}

	xr, xIsRational := x.(Rational)
	yr, yIsRational := y.(Rational)

	switch {
	case xIsRational && yIsRational:
		return xr.Add(yr)
	case xIsRational:
		return xr.AddPolynomial(polynomial(y))
	case yIsRational:
		return yr.AddPolynomial(polynomial(x))
	}

	return polynomial(x).Add(polynomial(y))
}

// Sub returns a - b for the operands accepted by Add.
func Sub(a, b interface{}) Expression {

	x, y := operand(a), operand(b)

	switch x := x.(type) {
	case Scalar:
		if y, ok := y.(Scalar); ok {
			return x - y
		}
	case Identity:
		switch y := y.(type) {
		case Scalar:
			return Shifting{Offset: -float64(y)}
		case Identity:
			return Scaling{Factor: 0}
		case Scaling:
			return Scaling{Factor: 1 - y.Factor}
		}
	case Scaling:
		switch y := y.(type) {
		case Identity:
			return Scaling{Factor: x.Factor - 1}
		case Scaling:
			return Scaling{Factor: x.Factor - y.Factor}
		}
	case Shifting:
		switch y := y.(type) {
		case Scalar:
			return Shifting{Offset: x.Offset - float64(y)}
		case Identity:
			return Scalar(x.Offset)
		case Shifting:
			return Scalar(x.Offset - y.Offset)
		}
	}

	xr, xIsRational := x.(Rational)
	yr, yIsRational := y.(Rational)

	switch {
	case xIsRational && yIsRational:
		return xr.Sub(yr)
	case xIsRational:
		return xr.SubPolynomial(polynomial(y))
	case yIsRational:
		return yr.Neg().AddPolynomial(polynomial(x))
	}

	return polynomial(x).Sub(polynomial(y))
}

// Mul returns a * b for the operands accepted by Add.
func Mul(a, b interface{}) Expression {

	x, y := operand(a), operand(b)

	// Scalars commute with everything.
	if _, ok := y.(Scalar); ok {
		x, y = y, x
	}

	if k, ok := x.(Scalar); ok {
		switch y := y.(type) {
		case Scalar:
			return k * y
		case Identity:
			return Scaling{Factor: float64(k)}
		case Scaling:
			return Scaling{Factor: float64(k) * y.Factor}
		case Rational:
			return y.MulScalar(float64(k))
		default:
			return polynomial(y).MulScalar(float64(k))
		}
	}

	xr, xIsRational := x.(Rational)
	yr, yIsRational := y.(Rational)

	switch {
	case xIsRational && yIsRational:
		return xr.Mul(yr)
	case xIsRational:
		return xr.MulPolynomial(polynomial(y))
	case yIsRational:
		return yr.MulPolynomial(polynomial(x))
	}

	return polynomial(x).Mul(polynomial(y))
}

// Div returns a / b for the operands accepted by Add.
//
// The quotient of two monomials of the same degree is a Scalar, the
// quotient by a monomial is a Polynomial and any other quotient is a Rational.
// A zero divisor yields ±Inf or NaN coefficients.
func Div(a, b interface{}) Expression {

	x, y := operand(a), operand(b)

	if k, ok := y.(Scalar); ok {
		switch x := x.(type) {
		case Scalar:
			return x / k
		case Identity:
			return Scaling{Factor: 1 / float64(k)}
		case Scaling:
			return Scaling{Factor: x.Factor / float64(k)}
		case Rational:
			return x.DivScalar(float64(k))
		default:
			return polynomial(x).DivScalar(float64(k))
		}
	}

	xr, xIsRational := x.(Rational)
	yr, yIsRational := y.(Rational)

	switch {
	case xIsRational && yIsRational:
		return xr.Div(yr)
	case xIsRational:
		return xr.DivPolynomial(polynomial(y))
	case yIsRational:
		return yr.Inverse().MulPolynomial(polynomial(x))
	}

	p, q := polynomial(x), polynomial(y)

	if n, k, ok := q.Monomial(); ok {
		if m, c, ok := p.Monomial(); ok && m == n && k != 0 {
			return Scalar(c / k)
		}
		r, _ := p.DivMonomial(q)
		return r
	}

	return p.Over(q)
}

// Neg returns -a for the operands accepted by Add.
func Neg(a interface{}) Expression {
	switch x := operand(a).(type) {
	case Scalar:
		return -x
	case Identity:
		return Scaling{Factor: -1}
	case Scaling:
		return Scaling{Factor: -x.Factor}
	case Rational:
		return x.Neg()
	default:
		return polynomial(x).Neg()
	}
}
