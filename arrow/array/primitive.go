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

package array

import (
	"fmt"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/arrowkit/selectcore/arrow"
	"github.com/arrowkit/selectcore/arrow/memory"
)

// PrimitiveValue is the set of Go types the generic Primitive array
// and its Take/Filter kernels are monomorphized over: every physical
// byte-width Arrow supports as a plain fixed-width number, covering
// the C3 kernel's int8/.../float64 dispatch table without repeating
// the same code nine times.
type PrimitiveValue interface {
	constraints.Integer | constraints.Float
}

// Primitive is a fixed-width numeric array, generic over its physical
// Go element type. A single generic implementation covers every
// numeric DataType in the C3 take kernel and the boolean-mask filter
// path, the way the spec's "physical byte-width, not logical type"
// dispatch rule calls for.
type Primitive[T PrimitiveValue] struct {
	array
	values []T
}

// NewPrimitiveData wraps data in a Primitive[T] array. data's buffer
// at index 1 must hold len(T)*data.Len() bytes starting at
// data.Offset(); no copy is made.
func NewPrimitiveData[T PrimitiveValue](data arrow.ArrayData) *Primitive[T] {
	d := data.(*Data)
	d.Retain()
	p := &Primitive[T]{}
	p.setData(d)
	return p
}

func (p *Primitive[T]) setData(data *Data) {
	p.array.setData(data)
	var zero T
	width := int(unsafe.Sizeof(zero))
	if buf := data.Buffer(1); buf != nil && len(buf.Bytes()) > 0 {
		raw := buf.Bytes()
		total := len(raw) / width
		p.values = unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), total)
	} else {
		p.values = nil
	}
}

// Value returns the element at logical index i, regardless of
// validity; callers must check IsValid/IsNull first if nullability
// matters.
func (p *Primitive[T]) Value(i int) T { return p.values[i+p.data.Offset()] }

// Values returns the array's Len() values, starting at its offset
// into the backing slice.
func (p *Primitive[T]) Values() []T {
	return p.values[p.data.Offset() : p.data.Offset()+p.Len()]
}

func (p *Primitive[T]) String() string {
	var o strings.Builder
	o.WriteString("[")
	for i := 0; i < p.Len(); i++ {
		if i > 0 {
			o.WriteString(" ")
		}
		if p.IsNull(i) {
			o.WriteString("(null)")
		} else {
			fmt.Fprintf(&o, "%v", p.Value(i))
		}
	}
	o.WriteString("]")
	return o.String()
}

var _ arrow.Array = (*Primitive[int32])(nil)

// PrimitiveBuilder accumulates values of type T and their validity
// bit by bit, the generic counterpart of the teacher's per-type
// Int32Builder/Float64Builder/etc.
type PrimitiveBuilder[T PrimitiveValue] struct {
	dtype  arrow.DataType
	mem    memory.Allocator
	valid  *memory.ValidityBuilder
	values *memory.TypedBufferBuilder[T]
	length int
}

// NewPrimitiveBuilder returns a builder for dtype (an integer/float
// DataType whose BitWidth matches T) backed by mem.
func NewPrimitiveBuilder[T PrimitiveValue](mem memory.Allocator, dtype arrow.DataType) *PrimitiveBuilder[T] {
	return &PrimitiveBuilder[T]{
		dtype:  dtype,
		mem:    mem,
		valid:  memory.NewValidityBuilder(mem),
		values: memory.NewTypedBufferBuilder[T](mem),
	}
}

func (b *PrimitiveBuilder[T]) Append(v T) {
	b.values.Append(v)
	b.valid.Append(true)
	b.length++
}

func (b *PrimitiveBuilder[T]) AppendNull() {
	var zero T
	b.values.Append(zero)
	b.valid.Append(false)
	b.length++
}

// AppendNulls appends n null slots in one call, the bulk path the
// run-end-encoded filter algorithm uses for a null run instead of
// looping one null at a time.
func (b *PrimitiveBuilder[T]) AppendNulls(n int) {
	b.values.AppendZero(n)
	b.valid.AppendN(false, n)
	b.length += n
}

func (b *PrimitiveBuilder[T]) Reserve(n int) {
	b.values.Reserve(n)
	b.valid.Reserve(n)
}

func (b *PrimitiveBuilder[T]) Len() int { return b.length }

// NewArray finalizes the builder into an immutable Primitive[T]
// array, resetting the builder for reuse.
func (b *PrimitiveBuilder[T]) NewArray() *Primitive[T] {
	length := b.length
	nullN := b.valid.NullN()
	validBuf := b.valid.Finish()
	valueBuf := b.values.Finish()
	data := NewData(b.dtype, length, []*memory.Buffer{validBuf, valueBuf}, nil, nullN, 0)
	defer data.Release()
	b.length = 0
	return NewPrimitiveData[T](data)
}
