package analytic

import (
	"fmt"
	"math"
	"strings"

	"github.com/tuneinsight/analytic/utils"
)

// Sparse is a Laurent polynomial stored as a map from exponent to
// coefficient. Absent exponents have a zero coefficient and the exponent
// range is implied by the populated keys.
//
// Exponents are bounded to [math.MinInt8, math.MaxInt8]: operations whose
// result would hold an exponent outside of these bounds panic.
// Terms are always iterated by increasing exponent, so that evaluation
// and arithmetic are deterministic.
//
// The zero value is the zero polynomial, but it has no map: Set, AddAssign
// and SubAssign panic on it and need a value created by NewSparse. Methods suffixed with Assign mutate the map of the receiver,
// which is shared by its shallow copies.
type Sparse struct {
	Coeffs map[int8]float64
}

// NewSparse creates a new Sparse from a map of exponent to coefficient. The map is copied.
func NewSparse(coeffs map[int8]float64) Sparse {
	p := Sparse{Coeffs: make(map[int8]float64, len(coeffs))}
	for i, k := range coeffs {
		p.Coeffs[i] = k
	}
	return p
}

// NewSparseFromPolynomial creates a new Sparse holding the non-zero terms of p.
// The method panics if p has a non-zero term whose exponent does not fit an int8.
func NewSparseFromPolynomial(p Polynomial) Sparse {
	s := Sparse{Coeffs: map[int8]float64{}}
	for j, k := range p.Coeffs {
		if k != 0 {
			s.Coeffs[exponent(p.lo+j)] = k
		}
	}
	return s
}

// exponent converts i to an int8, panicking if it overflows.
func exponent(i int) int8 {
	if i < math.MinInt8 || i > math.MaxInt8 {
		panic(fmt.Errorf("invalid exponent: %d is outside of [%d, %d]", i, math.MinInt8, math.MaxInt8))
	}
	return int8(i)
}

// Exponents returns the populated exponents in increasing order.
func (p Sparse) Exponents() []int8 {
	return utils.GetSortedKeys(p.Coeffs)
}

// Lo returns the smallest populated exponent, or 0 if p is empty.
func (p Sparse) Lo() int {
	if e := p.Exponents(); len(e) != 0 {
		return int(e[0])
	}
	return 0
}

// Hi returns the largest populated exponent, or 0 if p is empty.
func (p Sparse) Hi() int {
	if e := p.Exponents(); len(e) != 0 {
		return int(e[len(e)-1])
	}
	return 0
}

// Coeff returns the coefficient of x^i.
func (p Sparse) Coeff(i int) float64 {
	if i < math.MinInt8 || i > math.MaxInt8 {
		return 0
	}
	return p.Coeffs[int8(i)]
}

// Set sets the coefficient of x^i to k.
// The method panics if i does not fit an int8 or if p has no map.
func (p Sparse) Set(i int, k float64) {
	p.Coeffs[exponent(i)] = k
}

// Clone returns a deep copy of p.
func (p Sparse) Clone() Sparse {
	return NewSparse(p.Coeffs)
}

// Evaluate returns p(x).
func (p Sparse) Evaluate(x float64) (y float64) {
	for _, i := range p.Exponents() {
		y += p.Coeffs[i] * math.Pow(x, float64(i))
	}
	return
}

// Dense returns p as a Polynomial over [Lo, Hi].
func (p Sparse) Dense() Polynomial {
	d := NewZeroPolynomial(p.Lo(), p.Hi())
	for i, k := range p.Coeffs {
		d.Coeffs[int(i)-d.lo] = k
	}
	return d
}

// AsPolynomial returns p as a Polynomial over [Lo, Hi].
func (p Sparse) AsPolynomial() Polynomial {
	return p.Dense()
}

// Trim returns a copy of p without its zero coefficients.
func (p Sparse) Trim() Sparse {
	s := Sparse{Coeffs: map[int8]float64{}}
	for i, k := range p.Coeffs {
		if k != 0 {
			s.Coeffs[i] = k
		}
	}
	return s
}

// Add returns p + q.
func (p Sparse) Add(q Sparse) (r Sparse) {
	r = p.Clone()
	for i, k := range q.Coeffs {
		r.Coeffs[i] += k
	}
	return
}

// Sub returns p - q.
func (p Sparse) Sub(q Sparse) (r Sparse) {
	r = p.Clone()
	for i, k := range q.Coeffs {
		r.Coeffs[i] -= k
	}
	return
}

// Mul returns p * q.
// The method panics if a product term has an exponent that does not fit an int8.
func (p Sparse) Mul(q Sparse) (r Sparse) {
	r = Sparse{Coeffs: map[int8]float64{}}
	for _, i := range p.Exponents() {
		for _, j := range q.Exponents() {
			r.Coeffs[exponent(int(i)+int(j))] += p.Coeffs[i] * q.Coeffs[j]
		}
	}
	return
}

// Neg returns -p.
func (p Sparse) Neg() Sparse {
	return p.MulScalar(-1)
}

// AddScalar returns p + k.
func (p Sparse) AddScalar(k float64) (r Sparse) {
	r = p.Clone()
	r.Coeffs[0] += k
	return
}

// SubScalar returns p - k.
func (p Sparse) SubScalar(k float64) (r Sparse) {
	r = p.Clone()
	r.Coeffs[0] -= k
	return
}

// MulScalar returns k * p.
func (p Sparse) MulScalar(k float64) (r Sparse) {
	r = p.Clone()
	r.MulScalarAssign(k)
	return
}

// DivScalar returns p / k.
func (p Sparse) DivScalar(k float64) (r Sparse) {
	r = p.Clone()
	r.DivScalarAssign(k)
	return
}

// DivMonomial returns p / q for a single term q = k * x^n.
// Returns ErrNotMonomial if q holds more than one non-zero term.
func (p Sparse) DivMonomial(q Sparse) (r Sparse, err error) {
	t := q.Trim()
	if len(t.Coeffs) > 1 {
		return Sparse{}, fmt.Errorf("cannot DivMonomial: %w", ErrNotMonomial)
	}
	var n int8
	var k float64
	for i, c := range t.Coeffs {
		n, k = i, c
	}
	r = Sparse{Coeffs: make(map[int8]float64, len(p.Coeffs))}
	for i, c := range p.Coeffs {
		r.Coeffs[exponent(int(i)-int(n))] = c / k
	}
	return r, nil
}

// Over returns the SparseRational p/q.
func (p Sparse) Over(q Sparse) SparseRational {
	return NewSparseRational(p, q)
}

// AddAssign sets p to p + q.
func (p Sparse) AddAssign(q Sparse) {
	for i, k := range q.Coeffs {
		p.Coeffs[i] += k
	}
}

// SubAssign sets p to p - q.
func (p Sparse) SubAssign(q Sparse) {
	for i, k := range q.Coeffs {
		p.Coeffs[i] -= k
	}
}

// MulScalarAssign sets p to k * p.
func (p Sparse) MulScalarAssign(k float64) {
	for i := range p.Coeffs {
		p.Coeffs[i] *= k
	}
}

// DivScalarAssign sets p to p / k.
func (p Sparse) DivScalarAssign(k float64) {
	for i := range p.Coeffs {
		p.Coeffs[i] /= k
	}
}

// Derivative returns dp/dx.
func (p Sparse) Derivative() (d Sparse) {
	d = Sparse{Coeffs: map[int8]float64{}}
	for i, k := range p.Coeffs {
		if i != 0 {
			d.Coeffs[exponent(int(i)-1)] = float64(i) * k
		}
	}
	return
}

// Integral returns the antiderivative of p with a zero constant of integration.
// Returns ErrLogarithmicTerm if the exponent -1 is populated.
func (p Sparse) Integral() (r Sparse, err error) {
	if _, ok := p.Coeffs[-1]; ok {
		return Sparse{}, fmt.Errorf("cannot Integral: %w", ErrLogarithmicTerm)
	}
	r = Sparse{Coeffs: map[int8]float64{}}
	for i, k := range p.Coeffs {
		r.Coeffs[exponent(int(i)+1)] = k / float64(int(i)+1)
	}
	return r, nil
}

// AntiderivativeAt evaluates at x the antiderivative of p with a zero
// constant of integration, using p[-1]*ln|x| for the degree -1 term.
func (p Sparse) AntiderivativeAt(x float64) (y float64) {
	for _, i := range p.Exponents() {
		k := p.Coeffs[i]
		if k == 0 {
			continue
		}
		if i == -1 {
			y += k * math.Log(math.Abs(x))
		} else {
			y += k * math.Pow(x, float64(i)+1) / (float64(i) + 1)
		}
	}
	return
}

// IntegralOver returns the definite integral of p over [lo, hi].
func (p Sparse) IntegralOver(lo, hi float64) float64 {
	return p.AntiderivativeAt(hi) - p.AntiderivativeAt(lo)
}

// Distance returns the root mean square of p - q over [lo, hi].
func (p Sparse) Distance(q Sparse, lo, hi float64) float64 {
	d := p.Sub(q)
	return math.Sqrt(math.Abs(d.Mul(d).IntegralOver(lo, hi) / (hi - lo)))
}

func (p Sparse) String() string {
	var sb strings.Builder
	for _, i := range p.Exponents() {
		k := p.Coeffs[i]
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
		sb.WriteString(formatTerm(k, int(i)))
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}
