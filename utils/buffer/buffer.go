// Package buffer implements the fixed width little-endian words the analytic
// types are encoded with, read and written through interfaces that expose
// their internal buffers so that coefficient slices are copied only once.
package buffer

import (
	"errors"
	"io"
)

// Writer is an io.Writer whose internal buffer can be written to directly.
// *bufio.Writer and *Buffer implement it.
type Writer interface {
	io.Writer
	Flush() (err error)
	AvailableBuffer() []byte
	Available() int
}

// Reader is an io.Reader whose buffered bytes can be inspected before
// being consumed. *bufio.Reader and *Buffer implement it.
type Reader interface {
	io.Reader
	Size() int
	Peek(n int) ([]byte, error)
	Discard(n int) (discarded int, err error)
}

// ErrFull is returned when writing past the capacity of a Buffer.
var ErrFull = errors.New("buffer: full")

// Buffer is a Writer and Reader over a fixed []byte. Writes fill the slice
// from its start and fail with ErrFull once it is exhausted, the slice is
// never grown. Reads consume the slice from its start, independently of writes.
type Buffer struct {
	data   []byte
	wr, rd int
}

// NewBuffer returns a Buffer over data, whose content is
// readable and overwritten by writes.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// NewBufferSize returns a Buffer over a new slice of size bytes.
func NewBufferSize(size int) *Buffer {
	return NewBuffer(make([]byte, size))
}

// Write appends p to the written bytes of b.
// Writing the slice returned by AvailableBuffer does not copy.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if len(p) > b.Available() {
		return 0, ErrFull
	}
	n = copy(b.data[b.wr:], p)
	b.wr += n
	return
}

// Flush is a no-op, writes go straight to the backing slice.
func (b *Buffer) Flush() (err error) {
	return nil
}

// AvailableBuffer returns an empty slice over the unwritten part of b,
// to append to and pass to Write before any other write.
func (b *Buffer) AvailableBuffer() []byte {
	return b.data[b.wr:b.wr]
}

// Available returns the number of bytes that can still be written.
func (b *Buffer) Available() int {
	return len(b.data) - b.wr
}

// Bytes returns the written bytes.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.wr]
}

// Reset rewinds the read and write offsets to the start of the slice.
func (b *Buffer) Reset() {
	b.wr, b.rd = 0, 0
}

// Read consumes up to len(p) bytes into p, returning io.EOF
// if fewer than len(p) bytes were left.
func (b *Buffer) Read(p []byte) (n int, err error) {
	n = copy(p, b.data[b.rd:])
	b.rd += n
	if n < len(p) {
		err = io.EOF
	}
	return
}

// Size returns the number of bytes left to read.
func (b *Buffer) Size() int {
	return len(b.data) - b.rd
}

// Peek returns the next n bytes without consuming them, as a view of the
// backing slice. It returns the remaining bytes and io.EOF if fewer than n are left.
func (b *Buffer) Peek(n int) ([]byte, error) {
	if n > b.Size() {
		return b.data[b.rd:], io.EOF
	}
	return b.data[b.rd : b.rd+n], nil
}

// Discard consumes the next n bytes, or the remaining ones with
// io.EOF if fewer than n are left.
func (b *Buffer) Discard(n int) (discarded int, err error) {
	if left := b.Size(); n > left {
		b.rd = len(b.data)
		return left, io.EOF
	}
	b.rd += n
	return n, nil
}
