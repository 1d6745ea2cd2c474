package analytic

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuneinsight/analytic/utils/buffer"
)

// maxCoefficients bounds the number of coefficients accepted when decoding.
const maxCoefficients = 1 << 20

// BinarySize returns the size in bytes that the object once marshalled into a binary form.
// Assumes that each coefficient takes 8 bytes.
func (p Polynomial) BinarySize() int {
	return 16 + len(p.Coeffs)<<3
}

// WriteTo writes the object on an io.Writer.
// The encoding is the lowest exponent as an int64, the number of
// coefficients as an uint64, then each coefficient as a float64, all little endian.
// To ensure optimal efficiency and minimal allocations, the user is encouraged
// to provide a struct implementing the interface buffer.Writer, which defines
// a subset of the method of the bufio.Writer.
// If w is not compliant to the buffer.Writer interface, it will be wrapped in
// a new bufio.Writer.
func (p Polynomial) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteAsUint64[int64](w, int64(p.lo)); err != nil {
			return n + inc, err
		}

		n += inc

		if inc, err = buffer.WriteUint64(w, uint64(len(p.Coeffs))); err != nil {
			return n + inc, err
		}

		n += inc

		if inc, err = buffer.WriteAsUint64Slice[float64](w, p.Coeffs); err != nil {
			return n + inc, err
		}

		n += inc

		return n, w.Flush()

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface, it will be wrapped into
// a bufio.Reader. Since this requires allocation, it is preferable to pass
// a buffer.Reader directly:
//
//   - When reading multiple values from a io.Reader, it is preferable to first
//     wrap io.Reader in a pre-allocated bufio.Reader.
//   - When reading from a var b []byte, it is preferable to pass a buffer.NewBuffer(b).
func (p *Polynomial) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var lo int64
		var inc int64
		if inc, err = buffer.ReadAsUint64[int64](r, &lo); err != nil {
			return n + inc, fmt.Errorf("cannot ReadFrom: lo: %w", err)
		}

		n += inc

		var size uint64
		if inc, err = buffer.ReadUint64(r, &size); err != nil {
			return n + inc, fmt.Errorf("cannot ReadFrom: size: %w", err)
		}

		n += inc

		if size > maxCoefficients {
			return n, fmt.Errorf("cannot ReadFrom: invalid number of coefficients %d", size)
		}

		if cap(p.Coeffs) < int(size) {
			p.Coeffs = make([]float64, size)
		}

		p.Coeffs = p.Coeffs[:size]

		if inc, err = buffer.ReadAsUint64Slice[float64](r, p.Coeffs); err != nil {
			return n + inc, fmt.Errorf("cannot ReadFrom: coefficients: %w", err)
		}

		n += inc

		p.lo = int(lo)

		return n, nil

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p Polynomial) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (p *Polynomial) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}

// BinarySize returns the size in bytes that the object once marshalled into a binary form.
func (r Rational) BinarySize() int {
	return r.P.BinarySize() + r.Q.BinarySize()
}

// WriteTo writes the numerator then the denominator of r on w.
func (r Rational) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = r.P.WriteTo(w); err != nil {
			return n + inc, err
		}

		n += inc

		if inc, err = r.Q.WriteTo(w); err != nil {
			return n + inc, err
		}

		return n + inc, nil

	default:
		return r.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads the numerator then the denominator of r from rd.
func (r *Rational) ReadFrom(rd io.Reader) (n int64, err error) {
	switch rd := rd.(type) {
	case buffer.Reader:

		var inc int64
		if inc, err = r.P.ReadFrom(rd); err != nil {
			return n + inc, err
		}

		n += inc

		if inc, err = r.Q.ReadFrom(rd); err != nil {
			return n + inc, err
		}

		return n + inc, nil

	default:
		return r.ReadFrom(bufio.NewReader(rd))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (r Rational) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(r.BinarySize())
	_, err = r.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (r *Rational) UnmarshalBinary(data []byte) (err error) {
	_, err = r.ReadFrom(buffer.NewBuffer(data))
	return
}
