package pools

import (
	"sync"
	"sync/atomic"
)

// BytePool is a multi-tiered byte slice pool for request read buffers
type BytePool struct {
	pools []*sync.Pool
	sizes []int

	// Statistics
	hits   []atomic.Uint64
	misses atomic.Uint64
}

// Size tiers for typical HTTP/1.0 requests: most fit the first two
var defaultSizes = []int{
	1024,
	4096,
	16384,
	65536,
}

// NewBytePool creates a byte pool with the standard size tiers
func NewBytePool() *BytePool {
	return NewBytePoolWithSizes(defaultSizes)
}

// NewBytePoolWithSizes creates a byte pool with custom size tiers,
// which must be in ascending order
func NewBytePoolWithSizes(sizes []int) *BytePool {
	bp := &BytePool{
		pools: make([]*sync.Pool, len(sizes)),
		sizes: sizes,
		hits:  make([]atomic.Uint64, len(sizes)),
	}

	for i, size := range sizes {
		sz := size // Capture for closure
		bp.pools[i] = &sync.Pool{
			New: func() any {
				buf := make([]byte, sz)
				return &buf
			},
		}
	}

	return bp
}

// Get returns a byte slice of exactly the requested length, backed by a
// pooled buffer when a tier is large enough
func (bp *BytePool) Get(size int) []byte {
	for i, poolSize := range bp.sizes {
		if size <= poolSize {
			bp.hits[i].Add(1)
			buf := *(bp.pools[i].Get().(*[]byte))
			return buf[:size]
		}
	}

	// Larger than every tier: plain allocation, not pooled
	bp.misses.Add(1)
	return make([]byte, size)
}

// Put returns a buffer to its tier. Buffers whose capacity matches no
// tier are dropped for the GC.
func (bp *BytePool) Put(buf []byte) {
	c := cap(buf)
	for i, poolSize := range bp.sizes {
		if c == poolSize {
			full := buf[:c]
			bp.pools[i].Put(&full)
			return
		}
	}
}

// Stats returns per-tier hit counts and the miss count
func (bp *BytePool) Stats() (hits []uint64, misses uint64) {
	hits = make([]uint64, len(bp.hits))
	for i := range bp.hits {
		hits[i] = bp.hits[i].Load()
	}
	return hits, bp.misses.Load()
}
