// Package cstr provides a hybrid string buffer for boundary crossings into
// C-style APIs that expect a NUL-terminated byte sequence.
//
// A Buffer keeps short strings (under InlineSize bytes, terminator
// included) in a fixed array embedded in the value, paying no heap
// allocation in the common case. Content that outgrows the inline array is
// promoted, once and irreversibly, to an exactly-sized heap allocation
// carrying the same trailing NUL. Pointer export, text views, and the
// formatting entry points behave identically in both states.
//
//	b := cstr.Sprintf("plugin-%d.so", id)
//	load(b.CPointerUnsafe()) // cast to *C.char at the cgo call site
//
// Writers must supply valid UTF-8 with no embedded NUL bytes; the buffer
// does not validate UTF-8 on write and only repairs invalid bytes lazily
// in the lossy text views.
package cstr
