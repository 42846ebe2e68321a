package cstr

import (
	"sync"
)

// BufferPool manages Buffer reuse for hot paths that build many short
// C strings. Pooled buffers are reset before reuse, so they sit at the
// inline footprint with no retained heap storage.
type BufferPool struct {
	pool sync.Pool
}

// NewBufferPool creates a new buffer pool that pools *Buffer values.
func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new(Buffer)
			},
		},
	}
}

// Acquire gets a Buffer from the pool.
func (p *BufferPool) Acquire() *Buffer {
	return p.pool.Get().(*Buffer)
}

// Release returns a Buffer to the pool after resetting it. Any promoted
// storage is dropped here rather than cached: pooling long-lived large
// allocations would defeat the inline design.
func (p *BufferPool) Release(b *Buffer) {
	b.Reset()
	p.pool.Put(b)
}
