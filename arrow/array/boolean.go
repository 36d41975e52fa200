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

	"github.com/arrowkit/selectcore/arrow"
	"github.com/arrowkit/selectcore/arrow/bitutil"
	"github.com/arrowkit/selectcore/arrow/memory"
)

// Boolean is a 1-bit-packed array of true/false values, the
// specialization the C4 take/filter kernels dispatch to instead of
// the generic byte-width primitive path.
type Boolean struct {
	array
	values []byte
}

func NewBooleanData(data arrow.ArrayData) *Boolean {
	d := data.(*Data)
	d.Retain()
	b := &Boolean{}
	b.setData(d)
	return b
}

func (b *Boolean) setData(data *Data) {
	b.array.setData(data)
	if buf := data.Buffer(1); buf != nil {
		b.values = buf.Bytes()
	} else {
		b.values = nil
	}
}

// Value returns the boolean stored at logical index i, regardless of
// whether the slot is null.
func (b *Boolean) Value(i int) bool {
	return bitutil.BitIsSet(b.values, i+b.data.Offset())
}

func (b *Boolean) String() string {
	var o strings.Builder
	o.WriteString("[")
	for i := 0; i < b.Len(); i++ {
		if i > 0 {
			o.WriteString(" ")
		}
		switch {
		case b.IsNull(i):
			o.WriteString("(null)")
		case b.Value(i):
			o.WriteString("true")
		default:
			o.WriteString("false")
		}
	}
	o.WriteString("]")
	return o.String()
}

var _ arrow.Array = (*Boolean)(nil)

// BooleanBuilder builds a Boolean array bit by bit. Since both the
// validity bitmap and the value bitmap are just bit-packed booleans,
// it reuses ValidityBuilder for both rather than duplicating its
// growth logic.
type BooleanBuilder struct {
	mem    memory.Allocator
	valid  *memory.ValidityBuilder
	values *memory.ValidityBuilder
	length int
}

func NewBooleanBuilder(mem memory.Allocator) *BooleanBuilder {
	return &BooleanBuilder{
		mem:    mem,
		valid:  memory.NewValidityBuilder(mem),
		values: memory.NewValidityBuilder(mem),
	}
}

func (bb *BooleanBuilder) Append(v bool) {
	bb.values.Append(v)
	bb.valid.Append(true)
	bb.length++
}

func (bb *BooleanBuilder) AppendNull() {
	bb.values.Append(false)
	bb.valid.Append(false)
	bb.length++
}

// AppendNulls appends n null slots in one call.
func (bb *BooleanBuilder) AppendNulls(n int) {
	bb.values.AppendN(false, n)
	bb.valid.AppendN(false, n)
	bb.length += n
}

func (bb *BooleanBuilder) Len() int { return bb.length }

// NewArray finalizes the builder into an immutable Boolean array,
// resetting the builder for reuse.
func (bb *BooleanBuilder) NewArray() *Boolean {
	length := bb.length
	nullN := bb.valid.NullN()
	validBuf := bb.valid.Finish()
	valueBuf := bb.values.Finish()
	if valueBuf == nil {
		// ValidityBuilder.Finish returns nil when every bit it saw was
		// true; the value bitmap needs the buffer regardless, so force
		// it by re-running the full-length fill.
		valueBuf = memory.NewResizableBuffer(bb.mem)
		valueBuf.Resize(int(bitutil.BytesForBits(int64(length))))
		bitutil.SetBitsTo(valueBuf.Bytes(), 0, int64(length), true)
	}
	data := NewData(&arrow.BooleanType{}, length, []*memory.Buffer{validBuf, valueBuf}, nil, nullN, 0)
	defer data.Release()
	bb.length = 0
	return NewBooleanData(data)
}

var _ fmt.Stringer = (*Boolean)(nil)
