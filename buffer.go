package cstr

import (
	"strings"
	"unicode/utf8"
)

// InlineSize is the capacity of the inline storage, terminator included.
// Content up to InlineSize-1 bytes lives directly in the Buffer value;
// anything longer is promoted to an exactly-sized heap allocation. This is
// a compile-time tunable: the promotion semantics hold for any value >= 1.
const InlineSize = 512

// Buffer accumulates UTF-8 text destined for C-style APIs that expect a
// NUL-terminated byte sequence. Short strings (under InlineSize bytes,
// terminator included) stay in a fixed array embedded in the value and
// never touch the heap; longer strings are promoted to a heap-backed
// NUL-terminated buffer. The external contract is identical in both states.
//
// The zero value is an empty Buffer ready for use. Content is only ever
// extended through the write methods; writers must supply valid UTF-8 with
// no embedded NUL bytes. A Buffer is an owned value and is not safe for
// concurrent mutation.
type Buffer struct {
	inline [InlineSize]byte
	heap   []byte // nil while inline; otherwise len == n+1 with heap[n] == 0
	n      int
}

// New returns an empty Buffer. Equivalent to the zero value; no allocation.
func New() Buffer {
	return Buffer{}
}

// From builds a Buffer holding s. The result is promoted only when s does
// not fit the inline storage.
func From(s string) Buffer {
	var b Buffer
	b.WriteString(s)
	return b
}

// FromBytes builds a Buffer holding a copy of p.
func FromBytes(p []byte) Buffer {
	var b Buffer
	b.Write(p)
	return b
}

// WriteString appends s to the buffer, promoting to heap storage if the
// accumulated content no longer fits inline. Implements io.StringWriter;
// the returned error is always nil. Panics with ErrEmbeddedNUL if s
// contains a NUL byte.
func (b *Buffer) WriteString(s string) (int, error) {
	if strings.IndexByte(s, 0) >= 0 {
		panic(ErrEmbeddedNUL)
	}
	b.append(s)
	return len(s), nil
}

// TryWriteString is the checked variant of WriteString: it reports
// ErrEmbeddedNUL instead of panicking and leaves the buffer untouched.
func (b *Buffer) TryWriteString(s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return ErrEmbeddedNUL
	}
	b.append(s)
	return nil
}

// Write appends p to the buffer. Implements io.Writer so fmt and the JSON
// encoders can format straight into a Buffer; the returned error is always
// nil. Panics with ErrEmbeddedNUL if p contains a NUL byte.
func (b *Buffer) Write(p []byte) (int, error) {
	return b.WriteString(b2s(p))
}

// WriteByte appends a single byte. Implements io.ByteWriter.
func (b *Buffer) WriteByte(c byte) error {
	if c == 0 {
		panic(ErrEmbeddedNUL)
	}
	tmp := [1]byte{c}
	b.append(b2s(tmp[:]))
	return nil
}

// WriteRune appends the UTF-8 encoding of r.
func (b *Buffer) WriteRune(r rune) (int, error) {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	b.append(b2s(tmp[:n]))
	return n, nil
}

// append is the promotion protocol shared by every write method. The
// caller has already rejected embedded NUL bytes, so prior content is
// NUL-free by induction.
func (b *Buffer) append(s string) {
	if len(s) == 0 {
		// No-op; in particular never promotes an inline buffer.
		return
	}
	newLen := b.n + len(s)
	if b.heap == nil && newLen < InlineSize {
		copy(b.inline[b.n:], s)
		b.inline[newLen] = 0
		b.n = newLen
		return
	}
	// Promote: copy the full prior content plus the new fragment into a
	// fresh exactly-sized allocation. Already-promoted buffers take this
	// path too; the previous allocation is dropped for the collector.
	buf := make([]byte, 0, newLen+1)
	buf = append(buf, b.Bytes()...)
	buf = append(buf, s...)
	buf = append(buf, 0)
	b.heap = buf
	b.n = newLen
}

// Len returns the content length in bytes, terminator excluded.
func (b *Buffer) Len() int {
	return b.n
}

// Cap returns the content capacity of the current storage, terminator
// excluded.
func (b *Buffer) Cap() int {
	if b.heap != nil {
		return cap(b.heap) - 1
	}
	return InlineSize - 1
}

// Promoted reports whether the content has outgrown the inline storage and
// lives on the heap. Promotion is one-way: once promoted a Buffer never
// returns to inline storage short of a Reset.
func (b *Buffer) Promoted() bool {
	return b.heap != nil
}

// Reset truncates the buffer to an empty inline state, dropping any
// promoted storage. Used by BufferPool before reuse.
func (b *Buffer) Reset() {
	b.heap = nil
	b.n = 0
	b.inline[0] = 0
}
