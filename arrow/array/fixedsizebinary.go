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
	"github.com/arrowkit/selectcore/arrow/memory"
)

// FixedSizeBinary is an array of opaque byte strings all sharing the
// same width, e.g. the 16-byte storage a UUID extension is built on.
type FixedSizeBinary struct {
	array
	width int
	bytes []byte
}

func NewFixedSizeBinaryData(data arrow.ArrayData) *FixedSizeBinary {
	d := data.(*Data)
	d.Retain()
	f := &FixedSizeBinary{width: d.DataType().(*arrow.FixedSizeBinaryType).ByteWidth}
	f.setData(d)
	return f
}

func (f *FixedSizeBinary) setData(data *Data) {
	f.array.setData(data)
	if buf := data.Buffer(1); buf != nil {
		f.bytes = buf.Bytes()
	} else {
		f.bytes = nil
	}
}

// Value returns the width-byte slice at logical index i. The
// returned slice aliases the array's backing buffer.
func (f *FixedSizeBinary) Value(i int) []byte {
	start := (i + f.data.Offset()) * f.width
	return f.bytes[start : start+f.width]
}

func (f *FixedSizeBinary) String() string {
	var o strings.Builder
	o.WriteString("[")
	for i := 0; i < f.Len(); i++ {
		if i > 0 {
			o.WriteString(" ")
		}
		if f.IsNull(i) {
			o.WriteString("(null)")
		} else {
			fmt.Fprintf(&o, "%x", f.Value(i))
		}
	}
	o.WriteString("]")
	return o.String()
}

var _ arrow.Array = (*FixedSizeBinary)(nil)

// FixedSizeBinaryBuilder accumulates width-byte strings and validity.
type FixedSizeBinaryBuilder struct {
	dtype  *arrow.FixedSizeBinaryType
	valid  *memory.ValidityBuilder
	values *memory.TypedBufferBuilder[byte]
	length int
}

func NewFixedSizeBinaryBuilder(mem memory.Allocator, dtype *arrow.FixedSizeBinaryType) *FixedSizeBinaryBuilder {
	return &FixedSizeBinaryBuilder{
		dtype:  dtype,
		valid:  memory.NewValidityBuilder(mem),
		values: memory.NewTypedBufferBuilder[byte](mem),
	}
}

func (b *FixedSizeBinaryBuilder) Append(v []byte) {
	if len(v) != b.dtype.ByteWidth {
		panic("arrow/array: fixed size binary value has wrong width")
	}
	for _, by := range v {
		b.values.Append(by)
	}
	b.valid.Append(true)
	b.length++
}

func (b *FixedSizeBinaryBuilder) AppendNull() {
	for i := 0; i < b.dtype.ByteWidth; i++ {
		b.values.Append(0)
	}
	b.valid.Append(false)
	b.length++
}

func (b *FixedSizeBinaryBuilder) Len() int { return b.length }

func (b *FixedSizeBinaryBuilder) NewArray() *FixedSizeBinary {
	length := b.length
	nullN := b.valid.NullN()
	validBuf := b.valid.Finish()
	valueBuf := b.values.Finish()
	data := NewData(b.dtype, length, []*memory.Buffer{validBuf, valueBuf}, nil, nullN, 0)
	defer data.Release()
	b.length = 0
	return NewFixedSizeBinaryData(data)
}
