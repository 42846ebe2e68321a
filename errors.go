package cstr

import "errors"

var (
	// ErrEmbeddedNUL reports an interior NUL byte in written content,
	// which would silently truncate the exported C string. The unchecked
	// write methods panic with this value; TryWriteString returns it.
	ErrEmbeddedNUL = errors.New("cstr: embedded NUL byte in content")
)
