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

	"github.com/arrowkit/selectcore/arrow"
	"github.com/arrowkit/selectcore/arrow/bitutil"
)

// array is the embeddable base for every concrete array type in this
// package: it implements the validity-bitmap bookkeeping shared by
// all of them, leaving Value/ValueStr-style accessors to the
// concrete wrapper.
type array struct {
	data       *Data
	nullBitmap []byte
}

func (a *array) setData(data *Data) {
	a.data = data
	if buf := data.Buffer(0); buf != nil {
		a.nullBitmap = buf.Bytes()
	} else {
		a.nullBitmap = nil
	}
}

func (a *array) DataType() arrow.DataType { return a.data.DataType() }
func (a *array) Len() int                 { return a.data.Len() }
func (a *array) NullN() int               { return a.data.NullN() }
func (a *array) Data() arrow.ArrayData    { return a.data }
func (a *array) Retain()                  { a.data.Retain() }
func (a *array) Release()                 { a.data.Release() }

// IsNull reports whether the logical element at index i is null.
func (a *array) IsNull(i int) bool {
	return a.nullBitmap != nil && a.data.NullN() != 0 &&
		!bitutil.BitIsSet(a.nullBitmap, i+a.data.Offset())
}

// IsValid reports whether the logical element at index i is not null.
func (a *array) IsValid(i int) bool {
	return a.nullBitmap == nil || a.data.NullN() == 0 ||
		bitutil.BitIsSet(a.nullBitmap, i+a.data.Offset())
}

func (a *array) String() string {
	return fmt.Sprintf("%s array, len=%d, nulls=%d", a.data.DataType().Name(), a.data.Len(), a.data.NullN())
}

var _ arrow.Array = (*array)(nil)

// MakeFromData wraps an ArrayData in the concrete Array
// implementation appropriate for its DataType, dispatching the way
// the C6/C5 kernels expect to dispatch on logical type.
func MakeFromData(data arrow.ArrayData) arrow.Array {
	switch dt := data.DataType().(type) {
	case *arrow.NullType:
		return NewNullData(data)
	case *arrow.BooleanType:
		return NewBooleanData(data)
	case *arrow.FixedSizeBinaryType:
		return NewFixedSizeBinaryData(data)
	case *arrow.Int8Type:
		return NewPrimitiveData[int8](data)
	case *arrow.Int16Type:
		return NewPrimitiveData[int16](data)
	case *arrow.Int32Type:
		return NewPrimitiveData[int32](data)
	case *arrow.Int64Type:
		return NewPrimitiveData[int64](data)
	case *arrow.Uint8Type:
		return NewPrimitiveData[uint8](data)
	case *arrow.Uint16Type:
		return NewPrimitiveData[uint16](data)
	case *arrow.Uint32Type:
		return NewPrimitiveData[uint32](data)
	case *arrow.Uint64Type:
		return NewPrimitiveData[uint64](data)
	case *arrow.Float32Type:
		return NewPrimitiveData[float32](data)
	case *arrow.Float64Type:
		return NewPrimitiveData[float64](data)
	case *arrow.DictionaryType:
		return NewDictionaryData(data)
	case *arrow.RunLengthEncodedType:
		return NewRunEndEncodedData(data)
	case *arrow.FixedSizeListType:
		return NewFixedSizeListData(data)
	case *arrow.ListType:
		return NewListData(data)
	case *arrow.StructType:
		return NewStructData(data)
	default:
		if ext, ok := dt.(arrow.ExtensionType); ok {
			return NewExtensionData(data, ext)
		}
		panic(fmt.Sprintf("arrow/array: unsupported data type %s", data.DataType().Name()))
	}
}

// NewSlice returns a zero-copy slice of arr covering [i, j). The
// returned array must be Release()'d after use.
func NewSlice(arr arrow.Array, i, j int64) arrow.Array {
	data := arr.Data().(*Data)
	sliced := NewSliceData(data, i, j)
	defer sliced.Release()
	return MakeFromData(sliced)
}

// NewSliceData returns a zero-copy ArrayData slice of data covering
// [i, j), adjusting the offset and null count appropriately. Buffers
// and children are shared (retained, not copied) with the parent.
func NewSliceData(data *Data, i, j int64) *Data {
	if j > int64(data.Len()) || i > j || i < 0 {
		panic("arrow/array: index out of range")
	}
	length := int(j - i)

	var nullN int
	switch {
	case data.NullN() == 0:
		nullN = 0
	case length == data.Len():
		nullN = data.NullN()
	default:
		nullN = arrow.UnknownNullCount
	}

	sliced := NewData(data.dtype, length, data.buffers, data.childData, nullN, data.offset+int(i))
	if data.dictionary != nil {
		data.dictionary.Retain()
		sliced.dictionary = data.dictionary
	}
	return sliced
}
