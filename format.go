package cstr

import (
	"fmt"
	"strconv"
	"time"
)

// Sprintf formats into a fresh Buffer through the normal append path. The
// content is byte-for-byte what fmt.Sprintf would produce, but promoted
// storage is only allocated when the total formatted length no longer fits
// inline. Broken templates yield fmt's usual %! diagnostics in the content,
// the same as every other fmt entry point.
func Sprintf(format string, args ...any) Buffer {
	var b Buffer
	fmt.Fprintf(&b, format, args...)
	return b
}

// Appendf formats into the buffer in place, appending after the current
// content.
func (b *Buffer) Appendf(format string, args ...any) {
	fmt.Fprintf(b, format, args...)
}

// Typed appenders for the common scalar cases. These format through a
// stack scratch array and strconv's Append functions, skipping fmt's
// reflection machinery entirely.

// WriteInt appends the decimal representation of v.
func (b *Buffer) WriteInt(v int64) {
	var scratch [20]byte // fits MinInt64
	b.append(b2s(strconv.AppendInt(scratch[:0], v, 10)))
}

// WriteUint appends the decimal representation of v.
func (b *Buffer) WriteUint(v uint64) {
	var scratch [20]byte // fits MaxUint64
	b.append(b2s(strconv.AppendUint(scratch[:0], v, 10)))
}

// WriteFloat appends the shortest representation of v that round-trips.
func (b *Buffer) WriteFloat(v float64) {
	var scratch [32]byte
	b.append(b2s(strconv.AppendFloat(scratch[:0], v, 'g', -1, 64)))
}

// WriteBool appends "true" or "false".
func (b *Buffer) WriteBool(v bool) {
	if v {
		b.append("true")
	} else {
		b.append("false")
	}
}

// WriteQuote appends s as a double-quoted Go string literal. Quoting
// escapes any NUL bytes in s, so this is also the safe way to embed
// arbitrary strings in content bound for a C consumer.
func (b *Buffer) WriteQuote(s string) {
	var scratch [64]byte
	b.append(b2s(strconv.AppendQuote(scratch[:0], s)))
}

// WriteDuration appends v in time.Duration's string form (e.g. "1.5s").
func (b *Buffer) WriteDuration(v time.Duration) {
	b.append(v.String())
}
