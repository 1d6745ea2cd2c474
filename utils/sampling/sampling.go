// Package sampling implements keyed and unkeyed sampling of the points
// at which analytic expressions are probed.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"io"
)

// RandFloat64 returns a random float between min and max.
func RandFloat64(min, max float64) float64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return scale(binary.LittleEndian.Uint64(b), min, max)
}

// Float64 reads 8 bytes from r and maps them to a float between min and max.
// Reading from a [KeyedPRNG] makes the result reproducible for a given key.
func Float64(r io.Reader, min, max float64) (f float64, err error) {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err = io.ReadFull(r, b); err != nil {
		return 0, err
	}
	return scale(binary.LittleEndian.Uint64(b), min, max), nil
}

// Float64s returns n floats between min and max read from r.
func Float64s(r io.Reader, n int, min, max float64) (fs []float64, err error) {
	fs = make([]float64, n)
	for i := range fs {
		if fs[i], err = Float64(r, min, max); err != nil {
			return nil, err
		}
	}
	return
}

func scale(u uint64, min, max float64) float64 {
	f := float64(u) / 1.8446744073709552e+19
	return min + f*(max-min)
}
