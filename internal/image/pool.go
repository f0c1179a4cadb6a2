// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package image provides scratch pixel buffers for the compositor.
package image

import "sync"

// Pool is a thread-safe pool for reusing pixel buffers.
//
// Pool groups buffers by byte length, so every surface of the same
// dimensions shares one bucket. Buffers come back from Get with stale
// contents: the compositor always overwrites the whole buffer with the
// current snapshot before stamping into it.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]byte
	maxSize int // max buffers per bucket
}

// NewPool creates a new buffer pool with the given maximum buffers per bucket.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
	}
}

// Get returns a buffer of exactly size bytes, reusing a pooled one when
// available. Non-positive sizes return nil.
func (p *Pool) Get(size int) []byte {
	if size <= 0 {
		return nil
	}

	p.mu.Lock()
	bucket := p.buckets[size]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		bucket[n-1] = nil
		p.buckets[size] = bucket[:n-1]
		p.mu.Unlock()
		return buf
	}
	p.mu.Unlock()

	return make([]byte, size)
}

// Put returns a buffer to the pool for reuse.
// If buf is empty or its bucket is at max capacity, the buffer is discarded.
func (p *Pool) Put(buf []byte) {
	if len(buf) == 0 {
		return
	}
	size := len(buf)

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[size]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		// Bucket full, discard buffer (GC will clean up)
		return
	}
	p.buckets[size] = append(bucket, buf[:size:size])
}

// Len returns the number of pooled buffers of the given size.
func (p *Pool) Len(size int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[size])
}

// defaultPool is the package-level pool shared by compositors that are not
// given their own.
var defaultPool = NewPool(4)

// Default returns the package-level pool.
func Default() *Pool {
	return defaultPool
}
