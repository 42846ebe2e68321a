package cstr

import "unsafe"

// b2s converts a byte slice to a string without copying. The string shares
// memory with the slice, so the slice must not be mutated while the string
// is live. Used for the zero-copy borrow accessors.
func b2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
