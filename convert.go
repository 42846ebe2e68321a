package cstr

import (
	"strings"
	"unicode/utf8"
	"unsafe"
)

// CPointer returns a pointer to the start of the NUL-terminated byte
// sequence, uniform across inline and promoted storage. This is the value
// handed to native calls. The pointer stays valid until the next write;
// any subsequent append may relocate storage.
func (b *Buffer) CPointer() *byte {
	if b.heap != nil {
		return &b.heap[0]
	}
	return &b.inline[0]
}

// CPointerUnsafe returns CPointer as an unsafe.Pointer, ready to cast to
// *C.char at a cgo call site.
func (b *Buffer) CPointerUnsafe() unsafe.Pointer {
	return unsafe.Pointer(b.CPointer())
}

// Bytes returns the content as a byte slice, terminator excluded. The
// slice borrows the buffer's storage: no copy is made, and it is only
// valid until the next write.
func (b *Buffer) Bytes() []byte {
	if b.heap != nil {
		return b.heap[:b.n]
	}
	return b.inline[:b.n]
}

// BytesWithNUL returns the content including the trailing NUL, suitable
// for syscall-style consumers that take a NUL-terminated byte slice. Same
// borrowing rules as Bytes.
func (b *Buffer) BytesWithNUL() []byte {
	if b.heap != nil {
		return b.heap[:b.n+1]
	}
	return b.inline[:b.n+1]
}

// UnsafeString reinterprets the content as a string without validation or
// copy. The caller upholds the write-path invariant that only valid UTF-8
// was appended; the string borrows the buffer's storage and is only valid
// until the next write.
func (b *Buffer) UnsafeString() string {
	return b2s(b.Bytes())
}

// StringLossy returns the content as text, substituting U+FFFD for any
// invalid UTF-8 sequences. When the bytes are already valid UTF-8 (always
// true under normal operation) the result borrows the buffer's storage
// with no copy; otherwise an owned repaired copy is returned. A safety net
// for display, not a normal path.
func (b *Buffer) StringLossy() string {
	p := b.Bytes()
	if utf8.Valid(p) {
		return b2s(p)
	}
	return strings.ToValidUTF8(b2s(p), "�")
}

// String returns an owned copy of the content with lossy UTF-8 repair.
// Implements fmt.Stringer; use this when the buffer's interop job is done
// and an ordinary Go string is needed.
func (b *Buffer) String() string {
	p := b.Bytes()
	if utf8.Valid(p) {
		return string(p)
	}
	return strings.ToValidUTF8(b2s(p), "�")
}
