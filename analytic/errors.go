package analytic

import "errors"

// Sentinel errors returned by the fallible operations of the package.
// Callers should match them with errors.Is, the returned errors being
// wrapped with the name of the failing operation.
var (
	// ErrLogarithmicTerm is returned when an antiderivative would require a ln|x| term.
	ErrLogarithmicTerm = errors.New("analytic: exponent range contains -1")

	// ErrUnsolvable is returned when no closed form root formula exists for the operand.
	ErrUnsolvable = errors.New("analytic: no closed form solution")

	// ErrNotMonomial is returned when a divisor holds more than one non-zero term.
	ErrNotMonomial = errors.New("analytic: divisor is not a monomial")

	// ErrLaurentComposition is returned when composing with negative exponents.
	ErrLaurentComposition = errors.New("analytic: composition requires non-negative exponents")

	// ErrRangeMismatch is returned by in-place operations whose result does not fit the receiver.
	ErrRangeMismatch = errors.New("analytic: exponent range mismatch")

	// ErrNotInvertible is returned when inverting a function that has no polynomial inverse.
	ErrNotInvertible = errors.New("analytic: function is not invertible")
)
