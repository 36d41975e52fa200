// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package memory

import "sync/atomic"

// Buffer is a reference counted wrapper around a raw byte slice
// obtained from an Allocator. Selection kernels never mutate a buffer
// they didn't just allocate themselves, so a shared Buffer can safely
// be Retain()'d into multiple arrays (dictionaries, sliced values)
// without copying.
type Buffer struct {
	refCount int64

	buf      []byte
	length   int
	mutable  bool
	resizable bool

	mem Allocator
}

// NewBufferBytes wraps an existing, immutable byte slice. Such a
// buffer cannot be resized and Release is a no-op since the caller
// retains ownership of buf.
func NewBufferBytes(buf []byte) *Buffer {
	return &Buffer{refCount: 1, buf: buf, length: len(buf)}
}

// NewResizableBuffer returns a zero-length buffer backed by mem that
// can grow or shrink via Resize.
func NewResizableBuffer(mem Allocator) *Buffer {
	return &Buffer{refCount: 1, mutable: true, resizable: true, mem: mem}
}

// Retain increases the reference count by 1.
func (b *Buffer) Retain() {
	if b == nil {
		return
	}
	atomic.AddInt64(&b.refCount, 1)
}

// Release decreases the reference count by 1, freeing the underlying
// allocation through its Allocator once the count reaches zero.
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	if atomic.AddInt64(&b.refCount, -1) == 0 {
		if b.mem != nil && b.buf != nil {
			b.mem.Free(b.buf)
		}
		b.buf = nil
		b.length = 0
	}
}

// Len returns the number of valid bytes currently stored in the buffer.
func (b *Buffer) Len() int { return b.length }

// Cap returns the number of bytes backing the buffer, which may
// exceed Len for a resizable buffer that has shrunk.
func (b *Buffer) Cap() int { return len(b.buf) }

// Bytes returns the valid portion of the buffer.
func (b *Buffer) Bytes() []byte {
	if b.buf == nil {
		return nil
	}
	return b.buf[:b.length]
}

// Mutable reports whether the buffer's contents may be written to in
// place.
func (b *Buffer) Mutable() bool { return b.mutable }

// Resize adjusts the buffer to hold newSize bytes, allocating or
// growing the backing allocation as needed. Resize panics if the
// buffer was not created with NewResizableBuffer.
func (b *Buffer) Resize(newSize int) {
	b.resize(newSize, true)
}

// ResizeNoShrink behaves like Resize but never shrinks the backing
// allocation, only the reported length.
func (b *Buffer) ResizeNoShrink(newSize int) {
	b.resize(newSize, false)
}

func (b *Buffer) resize(newSize int, shrink bool) {
	if !b.resizable {
		panic("arrow/memory: buffer is not resizable")
	}
	if newSize == b.length {
		return
	}

	if !shrink && newSize <= len(b.buf) {
		b.length = newSize
		return
	}

	if newSize < b.length && shrink {
		if newSize < len(b.buf)/2 {
			b.buf = b.mem.Reallocate(newSize, b.buf)
		}
		b.length = newSize
		return
	}

	if b.buf == nil {
		b.buf = b.mem.Allocate(newSize)
	} else {
		b.buf = b.mem.Reallocate(newSize, b.buf)
	}
	b.length = newSize
	b.mutable = true
}

// Reset discards the current contents, replacing them with newBytes.
// The buffer's resizable and mutable flags are left as they were.
func (b *Buffer) Reset(newBytes []byte) {
	if b.mem != nil && b.buf != nil {
		b.mem.Free(b.buf)
	}
	b.buf = newBytes
	b.length = len(newBytes)
}

// SliceBuffer returns a new Buffer viewing buf[offset : offset+length]
// without copying. The returned buffer retains buf so it must be
// Release()'d independently once the caller is done with the slice.
func SliceBuffer(buf *Buffer, offset, length int) *Buffer {
	buf.Retain()
	return &Buffer{
		refCount: 1,
		buf:      buf.buf[offset : offset+length],
		length:   length,
		mutable:  false,
		mem:      &releaseOnFree{parent: buf},
	}
}

// releaseOnFree adapts a parent Buffer's Release into the Allocator
// interface so a slice view can drop its parent's reference when the
// slice itself is freed, without ever calling Allocate/Reallocate.
type releaseOnFree struct {
	parent *Buffer
}

func (r *releaseOnFree) Allocate(size int) []byte          { panic("arrow/memory: slice buffer cannot allocate") }
func (r *releaseOnFree) Reallocate(size int, b []byte) []byte {
	panic("arrow/memory: slice buffer cannot reallocate")
}
func (r *releaseOnFree) Free(b []byte) { r.parent.Release() }
