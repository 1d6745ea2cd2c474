package analytic

import (
	"fmt"
	"math"
	"strings"

	"github.com/tuneinsight/analytic/utils"
)

// Polynomial is a dense Laurent polynomial: one coefficient per integer
// exponent of the range [Lo, Hi], with Coeffs[i] the coefficient of x^(Lo+i).
//
// The zero value is the zero polynomial over [0, 0].
type Polynomial struct {
	lo     int
	Coeffs []float64
}

// NewPolynomial creates a new Polynomial whose first coefficient is the one
// of x^lo. The exponent range is [lo, lo+len(coeffs)-1]. The coefficients are copied.
func NewPolynomial(lo int, coeffs ...float64) Polynomial {
	if len(coeffs) == 0 {
		return NewZeroPolynomial(lo, lo)
	}
	p := Polynomial{lo: lo, Coeffs: make([]float64, len(coeffs))}
	copy(p.Coeffs, coeffs)
	return p
}

// NewZeroPolynomial creates a new zero Polynomial over [lo, hi].
// The method panics if hi < lo.
func NewZeroPolynomial(lo, hi int) Polynomial {
	if hi < lo {
		panic(fmt.Errorf("invalid exponent range: hi=%d < lo=%d", hi, lo))
	}
	return Polynomial{lo: lo, Coeffs: make([]float64, hi-lo+1)}
}

// NewMonomial creates the Polynomial k * x^n over [n, n].
func NewMonomial(n int, k float64) Polynomial {
	return NewPolynomial(n, k)
}

// Lo returns the smallest exponent of the range of p.
func (p Polynomial) Lo() int {
	return p.lo
}

// Hi returns the largest exponent of the range of p.
func (p Polynomial) Hi() int {
	if len(p.Coeffs) == 0 {
		return p.lo
	}
	return p.lo + len(p.Coeffs) - 1
}

// Coeff returns the coefficient of x^i, which is zero outside of the range of p.
func (p Polynomial) Coeff(i int) float64 {
	if j := i - p.lo; j >= 0 && j < len(p.Coeffs) {
		return p.Coeffs[j]
	}
	return 0
}

// Set sets the coefficient of x^i to k.
// The method panics if i is outside of the range of p.
func (p Polynomial) Set(i int, k float64) {
	if i < p.lo || i > p.Hi() || len(p.Coeffs) == 0 {
		panic(fmt.Errorf("cannot Set: exponent %d outside of range [%d, %d]", i, p.lo, p.Hi()))
	}
	p.Coeffs[i-p.lo] = k
}

// Clone returns a deep copy of p.
func (p Polynomial) Clone() Polynomial {
	return NewPolynomial(p.lo, p.Coeffs...)
}

// Evaluate returns p(x).
// Negative exponents are evaluated with an explicit power and
// non-negative exponents incrementally from x^max(Lo, 0).
func (p Polynomial) Evaluate(x float64) (y float64) {

	hi := p.Hi()

	for i := p.lo; i < 0 && i <= hi; i++ {
		if k := p.Coeff(i); k != 0 {
			y += k * math.Pow(x, float64(i))
		}
	}

	start := utils.Max(p.lo, 0)
	if start > hi || len(p.Coeffs) == 0 {
		return
	}

	xi := math.Pow(x, float64(start))
	for i := start; i <= hi; i++ {
		y += p.Coeff(i) * xi
		xi *= x
	}

	return
}

// AsPolynomial returns a deep copy of p.
func (p Polynomial) AsPolynomial() Polynomial {
	return p.Clone()
}

// AsRational returns p/1.
func (p Polynomial) AsRational() Rational {
	return Rational{P: p.Clone(), Q: NewPolynomial(0, 1)}
}

// Trim returns a copy of p over the narrowest range holding all of its non-zero coefficients.
// The zero polynomial is returned over [0, 0].
func (p Polynomial) Trim() Polynomial {
	first, last := -1, -1
	for i, k := range p.Coeffs {
		if k != 0 {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return NewZeroPolynomial(0, 0)
	}
	return NewPolynomial(p.lo+first, p.Coeffs[first:last+1]...)
}

// IsZero returns true if all the coefficients of p are zero.
func (p Polynomial) IsZero() bool {
	for _, k := range p.Coeffs {
		if k != 0 {
			return false
		}
	}
	return true
}

// Monomial returns the exponent and coefficient of the single non-zero term of p.
// The zero polynomial is reported as the monomial 0 * x^Lo.
// ok is false if p holds more than one non-zero term.
func (p Polynomial) Monomial() (n int, k float64, ok bool) {
	n, ok = p.lo, true
	found := false
	for i, c := range p.Coeffs {
		if c != 0 {
			if found {
				return 0, 0, false
			}
			found = true
			n, k = p.lo+i, c
		}
	}
	return
}

// Add returns p + q over the union of both ranges.
func (p Polynomial) Add(q Polynomial) (r Polynomial) {
	r = NewZeroPolynomial(utils.Min(p.lo, q.lo), utils.Max(p.Hi(), q.Hi()))
	for i := r.lo; i <= r.Hi(); i++ {
		r.Coeffs[i-r.lo] = p.Coeff(i) + q.Coeff(i)
	}
	return
}

// Sub returns p - q over the union of both ranges.
func (p Polynomial) Sub(q Polynomial) (r Polynomial) {
	r = NewZeroPolynomial(utils.Min(p.lo, q.lo), utils.Max(p.Hi(), q.Hi()))
	for i := r.lo; i <= r.Hi(); i++ {
		r.Coeffs[i-r.lo] = p.Coeff(i) - q.Coeff(i)
	}
	return
}

// Mul returns p * q over [p.Lo + q.Lo, p.Hi + q.Hi].
func (p Polynomial) Mul(q Polynomial) (r Polynomial) {
	r = NewZeroPolynomial(p.lo+q.lo, p.Hi()+q.Hi())
	for i, a := range p.Coeffs {
		for j, b := range q.Coeffs {
			r.Coeffs[i+j] += a * b
		}
	}
	return
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	return p.MulScalar(-1)
}

// AddScalar returns p + k over the union of the range of p and [0, 0].
func (p Polynomial) AddScalar(k float64) Polynomial {
	return p.Add(NewPolynomial(0, k))
}

// SubScalar returns p - k over the union of the range of p and [0, 0].
func (p Polynomial) SubScalar(k float64) Polynomial {
	return p.Sub(NewPolynomial(0, k))
}

// MulScalar returns k * p.
func (p Polynomial) MulScalar(k float64) (r Polynomial) {
	r = p.Clone()
	for i := range r.Coeffs {
		r.Coeffs[i] *= k
	}
	return
}

// DivScalar returns p / k.
func (p Polynomial) DivScalar(k float64) (r Polynomial) {
	r = p.Clone()
	for i := range r.Coeffs {
		r.Coeffs[i] /= k
	}
	return
}

// DivMonomial returns p / q for a single term q = k * x^n, that is p
// with every exponent decreased by n and every coefficient divided by k.
// Returns ErrNotMonomial if q holds more than one non-zero term.
func (p Polynomial) DivMonomial(q Polynomial) (r Polynomial, err error) {
	n, k, ok := q.Monomial()
	if !ok {
		return Polynomial{}, fmt.Errorf("cannot DivMonomial: %w", ErrNotMonomial)
	}
	r = p.DivScalar(k)
	r.lo -= n
	return r, nil
}

// Over returns the Rational p/q.
func (p Polynomial) Over(q Polynomial) Rational {
	return NewRational(p, q)
}

// Pow returns p^n for n >= 0, computed by repeated squaring.
// The method panics if n is negative.
func (p Polynomial) Pow(n int) (r Polynomial) {
	if n < 0 {
		panic(fmt.Errorf("cannot Pow: negative exponent %d, use Rational.Pow instead", n))
	}
	r = NewPolynomial(0, 1)
	base := p.Clone()
	for n > 0 {
		if n&1 == 1 {
			r = r.Mul(base)
		}
		if n >>= 1; n > 0 {
			base = base.Mul(base)
		}
	}
	return
}

// fits returns true if [lo, hi] is contained in the range of p.
func (p Polynomial) fits(lo, hi int) bool {
	return len(p.Coeffs) != 0 && lo >= p.lo && hi <= p.Hi()
}

// AddAssign sets p to p + q.
// Returns ErrRangeMismatch if the range of q is not contained in the range of p.
func (p Polynomial) AddAssign(q Polynomial) (err error) {
	if !p.fits(q.lo, q.Hi()) {
		return fmt.Errorf("cannot AddAssign: [%d, %d] not in [%d, %d]: %w", q.lo, q.Hi(), p.lo, p.Hi(), ErrRangeMismatch)
	}
	for j, k := range q.Coeffs {
		p.Coeffs[q.lo+j-p.lo] += k
	}
	return
}

// SubAssign sets p to p - q.
// Returns ErrRangeMismatch if the range of q is not contained in the range of p.
func (p Polynomial) SubAssign(q Polynomial) (err error) {
	if !p.fits(q.lo, q.Hi()) {
		return fmt.Errorf("cannot SubAssign: [%d, %d] not in [%d, %d]: %w", q.lo, q.Hi(), p.lo, p.Hi(), ErrRangeMismatch)
	}
	for j, k := range q.Coeffs {
		p.Coeffs[q.lo+j-p.lo] -= k
	}
	return
}

// MulAssign sets p to p * q.
// Returns ErrRangeMismatch if the range of the product is not the range of p,
// which only happens if q is over [0, 0].
func (p Polynomial) MulAssign(q Polynomial) (err error) {
	if q.lo != 0 || q.Hi() != 0 {
		return fmt.Errorf("cannot MulAssign: [%d, %d] is not [0, 0]: %w", q.lo, q.Hi(), ErrRangeMismatch)
	}
	p.MulScalarAssign(q.Coeff(0))
	return
}

// AddScalarAssign sets p to p + k.
// Returns ErrRangeMismatch if 0 is outside of the range of p.
func (p Polynomial) AddScalarAssign(k float64) (err error) {
	return p.AddAssign(NewPolynomial(0, k))
}

// SubScalarAssign sets p to p - k.
// Returns ErrRangeMismatch if 0 is outside of the range of p.
func (p Polynomial) SubScalarAssign(k float64) (err error) {
	return p.SubAssign(NewPolynomial(0, k))
}

// MulScalarAssign sets p to k * p.
func (p Polynomial) MulScalarAssign(k float64) {
	for i := range p.Coeffs {
		p.Coeffs[i] *= k
	}
}

// DivScalarAssign sets p to p / k.
func (p Polynomial) DivScalarAssign(k float64) {
	for i := range p.Coeffs {
		p.Coeffs[i] /= k
	}
}

// Inverse returns the inverse function of a polynomial of degree one.
// Returns ErrNotInvertible if p is not of the form a + b*x with b != 0.
func (p Polynomial) Inverse() (Polynomial, error) {
	t := p.Trim()
	if t.lo < 0 || t.Hi() > 1 || t.Coeff(1) == 0 {
		return Polynomial{}, fmt.Errorf("cannot Inverse: %s: %w", p, ErrNotInvertible)
	}
	a, b := t.Coeff(0), t.Coeff(1)
	return NewPolynomial(0, -a/b, 1/b), nil
}

// String returns p as a sum of terms, omitting zero coefficients.
func (p Polynomial) String() string {
	var sb strings.Builder
	for i, k := range p.Coeffs {
		if k == 0 {
			continue
		}
		if sb.Len() > 0 {
			if math.Signbit(k) {
				sb.WriteString(" - ")
				k = -k
			} else {
				sb.WriteString(" + ")
			}
		}
		sb.WriteString(formatTerm(k, p.lo+i))
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

func formatTerm(k float64, n int) string {

	if n == 0 {
		return formatFloat(k)
	}

	var coeff string
	switch k {
	case 1:
	case -1:
		coeff = "-"
	default:
		coeff = formatFloat(k) + "*"
	}

	if n == 1 {
		return coeff + "x"
	}

	return fmt.Sprintf("%sx^%d", coeff, n)
}
