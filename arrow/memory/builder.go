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

import (
	"unsafe"

	"github.com/arrowkit/selectcore/arrow/bitutil"
)

// bufferBuilder accumulates raw bytes into a resizable Buffer,
// growing geometrically the way the C++ BufferBuilder does, so that
// output kernels can reserve once up front and then append without
// repeated reallocation.
type bufferBuilder struct {
	buffer   *Buffer
	capacity int
	length   int
	mem      Allocator
}

func newBufferBuilder(mem Allocator) *bufferBuilder {
	return &bufferBuilder{mem: mem}
}

func (b *bufferBuilder) Reserve(additionalBytes int) {
	if b.buffer == nil {
		b.buffer = NewResizableBuffer(b.mem)
	}
	if b.length+additionalBytes <= b.capacity {
		return
	}
	newCap := bitutil.NextPowerOf2(b.length + additionalBytes)
	b.buffer.Resize(newCap)
	b.capacity = newCap
}

func (b *bufferBuilder) Append(data []byte) {
	b.Reserve(len(data))
	copy(b.buffer.Bytes()[b.length:], data)
	b.length += len(data)
}

func (b *bufferBuilder) Len() int { return b.length }

// Finish returns the accumulated Buffer, shrinking it to exactly the
// bytes written, and resets the builder for reuse.
func (b *bufferBuilder) Finish() *Buffer {
	if b.buffer == nil {
		return NewResizableBuffer(b.mem)
	}
	b.buffer.Resize(b.length)
	out := b.buffer
	b.buffer = nil
	b.capacity = 0
	b.length = 0
	return out
}

// TypedBufferBuilder builds a buffer of fixed-width elements of type
// T, such as the output of a primitive Take kernel.
type TypedBufferBuilder[T any] struct {
	inner *bufferBuilder
	n     int
}

// NewTypedBufferBuilder returns a builder for elements of type T
// backed by mem.
func NewTypedBufferBuilder[T any](mem Allocator) *TypedBufferBuilder[T] {
	return &TypedBufferBuilder[T]{inner: newBufferBuilder(mem)}
}

func sizeOf[T any]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

// Reserve ensures space for n additional elements of type T.
func (t *TypedBufferBuilder[T]) Reserve(n int) {
	t.inner.Reserve(n * sizeOf[T]())
}

// UnsafeAppend appends a single value without bounds checking;
// callers must have called Reserve first.
func (t *TypedBufferBuilder[T]) UnsafeAppend(v T) {
	sz := sizeOf[T]()
	dst := t.inner.buffer.Bytes()[t.inner.length : t.inner.length+sz]
	src := unsafe.Slice((*byte)(unsafe.Pointer(&v)), sz)
	copy(dst, src)
	t.inner.length += sz
	t.n++
}

// Append reserves space for and appends a single value.
func (t *TypedBufferBuilder[T]) Append(v T) {
	t.Reserve(1)
	t.UnsafeAppend(v)
}

// AppendZero reserves space for and appends n zero-valued elements,
// used to pre-zero null output slots.
func (t *TypedBufferBuilder[T]) AppendZero(n int) {
	t.Reserve(n)
	var zero T
	for i := 0; i < n; i++ {
		t.UnsafeAppend(zero)
	}
}

// Len returns the number of elements appended so far.
func (t *TypedBufferBuilder[T]) Len() int { return t.n }

// Finish returns the backing Buffer, resetting the builder.
func (t *TypedBufferBuilder[T]) Finish() *Buffer {
	t.n = 0
	return t.inner.Finish()
}

// ValidityBuilder accumulates a validity (null) bitmap bit by bit,
// tracking the null count as it goes so callers don't need a second
// pass over the data just to populate Data.NullN.
type ValidityBuilder struct {
	bits     *bufferBuilder
	length   int
	nullN    int
	anyNulls bool
}

// NewValidityBuilder returns a bitmap builder backed by mem.
func NewValidityBuilder(mem Allocator) *ValidityBuilder {
	return &ValidityBuilder{bits: newBufferBuilder(mem)}
}

// Reserve ensures space for n additional bits.
func (v *ValidityBuilder) Reserve(n int) {
	v.bits.Reserve(int(bitutil.BytesForBits(int64(v.length + n))))
}

// UnsafeAppend appends a single bit without bounds checking; callers
// must have called Reserve first.
func (v *ValidityBuilder) UnsafeAppend(valid bool) {
	byteIdx := v.length / 8
	if byteIdx >= v.bits.length {
		v.bits.length = byteIdx + 1
	}
	if valid {
		bitutil.SetBit(v.bits.buffer.Bytes(), v.length)
	} else {
		bitutil.ClearBit(v.bits.buffer.Bytes(), v.length)
		v.nullN++
		v.anyNulls = true
	}
	v.length++
}

// Append reserves space for and appends a single bit.
func (v *ValidityBuilder) Append(valid bool) {
	v.Reserve(1)
	v.UnsafeAppend(valid)
}

// AppendN reserves space for and appends n copies of valid.
func (v *ValidityBuilder) AppendN(valid bool, n int) {
	v.Reserve(n)
	for i := 0; i < n; i++ {
		v.UnsafeAppend(valid)
	}
}

// NullN returns the number of false bits appended so far.
func (v *ValidityBuilder) NullN() int { return v.nullN }

// HasNulls reports whether any bit appended so far was false.
func (v *ValidityBuilder) HasNulls() bool { return v.anyNulls }

// Finish returns the backing Buffer, or nil if no bit was ever
// cleared (matching Arrow's convention that an all-valid array need
// not carry a validity buffer).
func (v *ValidityBuilder) Finish() *Buffer {
	length, nullN := v.length, v.nullN
	v.length, v.nullN, v.anyNulls = 0, 0, false
	if nullN == 0 {
		v.bits.Finish()
		return nil
	}
	v.bits.length = int(bitutil.BytesForBits(int64(length)))
	return v.bits.Finish()
}
