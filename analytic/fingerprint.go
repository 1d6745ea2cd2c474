package analytic

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a digest of the non-zero terms of p.
// Polynomials that only differ by zero padding of their range share the same fingerprint.
func (p Polynomial) Fingerprint() (digest [32]byte) {
	h := blake3.New()
	writeTerms(h, p.Trim())
	copy(digest[:], h.Sum(nil))
	return
}

// Fingerprint returns a digest of the non-zero terms of P and Q.
func (r Rational) Fingerprint() (digest [32]byte) {
	h := blake3.New()
	writeTerms(h, r.P.Trim())
	h.Write([]byte{'/'})
	writeTerms(h, r.Q.Trim())
	copy(digest[:], h.Sum(nil))
	return
}

func writeTerms(h *blake3.Hasher, p Polynomial) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(p.lo)))
	h.Write(buf[:])
	for _, k := range p.Coeffs {
		if k == 0 {
			k = 0 // -0 and +0 hash alike
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(k))
		h.Write(buf[:])
	}
}
