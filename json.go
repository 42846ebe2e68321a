package cstr

import (
	gojson "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
)

// Use json-iterator as a drop-in replacement for the standard json package.
// This instance is configured for maximum speed and compatibility.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AppendJSON encodes v as JSON and appends it to the buffer. Encoding
// streams through a borrowed jsoniter stream flushing straight into the
// buffer's writer, so small values stay on the inline path. JSON text
// never contains raw NUL bytes (they encode as \u0000), so the append
// cannot violate the C-string contract.
func (b *Buffer) AppendJSON(v any) error {
	stream := json.BorrowStream(b)
	defer json.ReturnStream(stream)

	stream.WriteVal(v)
	if stream.Error != nil {
		return stream.Error
	}
	return stream.Flush()
}

// SprintJSON encodes v into a fresh Buffer using goccy/go-json, the faster
// engine for one-shot marshals of struct values.
func SprintJSON(v any) (Buffer, error) {
	data, err := gojson.Marshal(v)
	if err != nil {
		return Buffer{}, err
	}
	var b Buffer
	b.Write(data)
	return b, nil
}

// StreamingEncoderPool manages goccy JSON encoders bound to Buffers, for
// callers that stream several values into one buffer. go-json encoders
// cannot be reused, so no backing pool is kept; the type exists for the
// acquire/release surface so call sites stay stable if pooling becomes
// possible.
type StreamingEncoderPool struct{}

// NewStreamingEncoderPool creates a new streaming encoder pool.
func NewStreamingEncoderPool() *StreamingEncoderPool {
	return &StreamingEncoderPool{}
}

// AcquireEncoder gets a JSON encoder writing into b.
func (p *StreamingEncoderPool) AcquireEncoder(b *Buffer) *gojson.Encoder {
	// go-json encoders have no Reset, so a new encoder is created each
	// time; still faster than alternatives due to go-json's speed.
	return gojson.NewEncoder(b)
}

// ReleaseEncoder is a no-op for go-json compatibility.
func (p *StreamingEncoderPool) ReleaseEncoder(encoder *gojson.Encoder) {
	// No-op since go-json encoders cannot be reused.
}
