// pool.go: Buffer pooling for block and message scratch space.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package kryptos

import (
	"sync"
)

var (
	// blockBufferPool serves 16-byte scratch blocks used by the mode drivers
	// for chaining state and keystream material.
	blockBufferPool = sync.Pool{
		New: func() interface{} {
			buf := make([]byte, BlockSize)
			return &buf
		},
	}

	// messageBufferPool serves medium scratch buffers for whole-message work
	// such as streaming chunk staging.
	messageBufferPool = sync.Pool{
		New: func() interface{} {
			buf := make([]byte, 4*1024)
			return &buf
		},
	}
)

// getBuffer retrieves a pooled buffer of the requested size. Sizes beyond
// the message pool capacity are allocated directly and never pooled.
func getBuffer(size int) *[]byte {
	switch {
	case size <= BlockSize:
		buf := blockBufferPool.Get().(*[]byte)
		*buf = (*buf)[:size]
		return buf
	case size <= 4*1024:
		buf := messageBufferPool.Get().(*[]byte)
		*buf = (*buf)[:size]
		return buf
	default:
		buf := make([]byte, size)
		return &buf
	}
}

// putBuffer zeroizes a buffer and returns it to its pool. Buffers holding
// chaining state or keystream bytes must not leak into the next borrower.
func putBuffer(buf *[]byte) {
	if buf == nil {
		return
	}
	full := (*buf)[:cap(*buf)]
	for i := range full {
		full[i] = 0
	}
	switch cap(*buf) {
	case BlockSize:
		blockBufferPool.Put(buf)
	case 4 * 1024:
		messageBufferPool.Put(buf)
		// Non-standard capacities are dropped for the GC to collect.
	}
}
