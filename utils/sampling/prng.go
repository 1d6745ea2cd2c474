package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// PRNG is a source of random bytes.
type PRNG interface {
	io.Reader
}

// EntropyPRNG reads from the entropy source of the operating system.
// It is safe for concurrent use and its stream cannot be replayed.
type EntropyPRNG struct{}

// NewPRNG returns a PRNG reading from the entropy source of the operating system.
func NewPRNG() (*EntropyPRNG, error) {
	return &EntropyPRNG{}, nil
}

// Read fills sum with random bytes.
func (EntropyPRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG is a replayable stream of bytes drawn from the blake2b XOF
// keyed with a user key: two KeyedPRNG with the same key yield the same
// sample points. Reads are serialized, but concurrent readers interleave
// in an unspecified order and so lose the reproducibility of their points.
type KeyedPRNG struct {
	mu  sync.Mutex
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG returns a KeyedPRNG keyed with a copy of key.
// A nil key is the empty key. Keys longer than 64 bytes are rejected.
func NewKeyedPRNG(key []byte) (prng *KeyedPRNG, err error) {
	prng = &KeyedPRNG{key: append([]byte{}, key...)}
	if prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, prng.key); err != nil {
		return nil, err
	}
	return
}

// NewSeededPRNG returns the KeyedPRNG whose key is the 8 bytes
// little-endian encoding of seed.
func NewSeededPRNG(seed uint64) (*KeyedPRNG, error) {
	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return NewKeyedPRNG(key[:])
}

// Key returns a copy of the key of prng, from which NewKeyedPRNG
// replays the same stream.
func (prng *KeyedPRNG) Key() []byte {
	return append([]byte{}, prng.key...)
}

// Read fills sum with the next bytes of the stream.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mu.Lock()
	defer prng.mu.Unlock()
	return prng.xof.Read(sum)
}

// Reset rewinds the stream to its first byte.
func (prng *KeyedPRNG) Reset() {
	prng.mu.Lock()
	defer prng.mu.Unlock()
	prng.xof.Reset()
}
