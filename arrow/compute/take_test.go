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

package compute_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrowkit/selectcore/arrow"
	"github.com/arrowkit/selectcore/arrow/array"
	"github.com/arrowkit/selectcore/arrow/compute"
	"github.com/arrowkit/selectcore/arrow/extensions"
	"github.com/arrowkit/selectcore/arrow/memory"
)

func int32Array(t *testing.T, vals []int32, valid []bool) *array.Primitive[int32] {
	t.Helper()
	b := array.NewPrimitiveBuilder[int32](memory.DefaultAllocator, arrow.PrimitiveTypes.Int32)
	for i, v := range vals {
		if valid != nil && !valid[i] {
			b.AppendNull()
			continue
		}
		b.Append(v)
	}
	return b.NewArray()
}

func indexArray(t *testing.T, idx []int64, valid []bool) *array.Primitive[int64] {
	t.Helper()
	b := array.NewPrimitiveBuilder[int64](memory.DefaultAllocator, &arrow.Int64Type{})
	for i, v := range idx {
		if valid != nil && !valid[i] {
			b.AppendNull()
			continue
		}
		b.Append(v)
	}
	return b.NewArray()
}

func TestTakeArrayPrimitive(t *testing.T) {
	values := int32Array(t, []int32{10, 20, 30, 40}, nil)
	defer values.Release()
	indices := indexArray(t, []int64{3, 0, 0, 2}, nil)
	defer indices.Release()

	out, err := compute.TakeArray(values, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.NoError(t, err)
	defer out.Release()

	got := out.(*array.Primitive[int32])
	require.Equal(t, 4, got.Len())
	assert.Equal(t, []int32{40, 10, 10, 30}, got.Values())
}

func TestTakeArrayPrimitiveNullIndex(t *testing.T) {
	values := int32Array(t, []int32{10, 20, 30}, nil)
	defer values.Release()
	indices := indexArray(t, []int64{1, 0, 0}, []bool{true, false, true})
	defer indices.Release()

	out, err := compute.TakeArray(values, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.NoError(t, err)
	defer out.Release()

	got := out.(*array.Primitive[int32])
	assert.True(t, got.IsValid(0))
	assert.Equal(t, int32(20), got.Value(0))
	assert.True(t, got.IsNull(1))
	assert.True(t, got.IsValid(2))
	assert.Equal(t, int32(10), got.Value(2))
}

func TestTakeArrayPrimitiveNullValue(t *testing.T) {
	values := int32Array(t, []int32{10, 20, 30}, []bool{true, false, true})
	defer values.Release()
	indices := indexArray(t, []int64{1, 2}, nil)
	defer indices.Release()

	out, err := compute.TakeArray(values, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.NoError(t, err)
	defer out.Release()

	got := out.(*array.Primitive[int32])
	assert.True(t, got.IsNull(0))
	assert.True(t, got.IsValid(1))
	assert.Equal(t, int32(30), got.Value(1))
}

func TestTakeArrayOutOfBounds(t *testing.T) {
	values := int32Array(t, []int32{1, 2, 3}, nil)
	defer values.Release()
	indices := indexArray(t, []int64{5}, nil)
	defer indices.Release()

	_, err := compute.TakeArray(values, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.Error(t, err)
	assert.True(t, errors.Is(err, arrow.ErrIndex))
}

func TestTakeArrayNegativeIndexOutOfBounds(t *testing.T) {
	values := int32Array(t, []int32{1, 2, 3}, nil)
	defer values.Release()
	indices := indexArray(t, []int64{-1}, nil)
	defer indices.Release()

	_, err := compute.TakeArray(values, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.Error(t, err)
	assert.True(t, errors.Is(err, arrow.ErrIndex))
}

func TestTakeArrayBoundsCheckDisabled(t *testing.T) {
	values := int32Array(t, []int32{1, 2, 3}, nil)
	defer values.Release()
	indices := indexArray(t, []int64{0, 1, 2}, nil)
	defer indices.Release()

	opts := compute.TakeOptions{BoundsCheck: false}
	out, err := compute.TakeArray(values, indices, opts, memory.DefaultAllocator)
	require.NoError(t, err)
	defer out.Release()
	assert.Equal(t, 3, out.Len())
}

func TestTakeArrayEmptyIndices(t *testing.T) {
	values := int32Array(t, []int32{1, 2, 3}, nil)
	defer values.Release()
	indices := indexArray(t, nil, nil)
	defer indices.Release()

	out, err := compute.TakeArray(values, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.NoError(t, err)
	defer out.Release()
	assert.Equal(t, 0, out.Len())
}

func TestTakeArrayBoolean(t *testing.T) {
	bb := array.NewBooleanBuilder(memory.DefaultAllocator)
	bb.Append(true)
	bb.Append(false)
	bb.AppendNull()
	bb.Append(true)
	values := bb.NewArray()
	defer values.Release()

	indices := indexArray(t, []int64{3, 1, 2, 0}, nil)
	defer indices.Release()

	out, err := compute.TakeArray(values, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.NoError(t, err)
	defer out.Release()

	got := out.(*array.Boolean)
	require.Equal(t, 4, got.Len())
	assert.True(t, got.Value(0))
	assert.False(t, got.Value(1))
	assert.True(t, got.IsNull(2))
	assert.True(t, got.Value(3))
}

func TestTakeArrayNull(t *testing.T) {
	values := array.NewNull(5)
	defer values.Release()
	indices := indexArray(t, []int64{0, 4, 2}, nil)
	defer indices.Release()

	out, err := compute.TakeArray(values, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.NoError(t, err)
	defer out.Release()

	assert.Equal(t, 3, out.Len())
	assert.Equal(t, 3, out.NullN())
}

func TestTakeArrayNullOutOfBounds(t *testing.T) {
	values := array.NewNull(2)
	defer values.Release()
	indices := indexArray(t, []int64{9}, nil)
	defer indices.Release()

	_, err := compute.TakeArray(values, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.Error(t, err)
	assert.True(t, errors.Is(err, arrow.ErrIndex))
}

func newDictionary(t *testing.T) *array.Dictionary {
	t.Helper()
	dictValues := int32Array(t, []int32{100, 200, 300}, nil)
	defer dictValues.Release()

	ib := array.NewPrimitiveBuilder[int8](memory.DefaultAllocator, arrow.PrimitiveTypes.Int8)
	ib.Append(2)
	ib.Append(0)
	ib.Append(1)
	idx := ib.NewArray()
	defer idx.Release()

	dt := &arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int8, ValueType: arrow.PrimitiveTypes.Int32}
	data := array.NewDataWithDictionary(dt, idx.Len(), idx.Data().(*array.Data).Buffers(), idx.NullN(), 0, dictValues.Data())
	defer data.Release()
	return array.NewDictionaryData(data)
}

func TestTakeArrayDictionary(t *testing.T) {
	values := newDictionary(t)
	defer values.Release()
	indices := indexArray(t, []int64{2, 0}, nil)
	defer indices.Release()

	out, err := compute.TakeArray(values, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.NoError(t, err)
	defer out.Release()

	got := out.(*array.Dictionary)
	require.Equal(t, 2, got.Len())
	// The dictionary pointer is shared, never copied.
	assert.Same(t, values.Data().Dictionary(), got.Data().Dictionary())
	gotIdx := got.Indices().(*array.Primitive[int8])
	assert.Equal(t, int8(1), gotIdx.Value(0))
	assert.Equal(t, int8(2), gotIdx.Value(1))
}

func newFixedSizeBinary(t *testing.T, vals [][]byte) *array.FixedSizeBinary {
	t.Helper()
	dt := &arrow.FixedSizeBinaryType{ByteWidth: 16}
	b := array.NewFixedSizeBinaryBuilder(memory.DefaultAllocator, dt)
	for _, v := range vals {
		b.Append(v)
	}
	return b.NewArray()
}

func TestTakeArrayFixedSizeBinary(t *testing.T) {
	a := uuid.New()
	c := uuid.New()
	aBytes, _ := a.MarshalBinary()
	bBytes, _ := uuid.New().MarshalBinary()
	cBytes, _ := c.MarshalBinary()

	values := newFixedSizeBinary(t, [][]byte{aBytes, bBytes, cBytes})
	defer values.Release()
	indices := indexArray(t, []int64{2, 0}, nil)
	defer indices.Release()

	out, err := compute.TakeArray(values, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.NoError(t, err)
	defer out.Release()

	got := out.(*array.FixedSizeBinary)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, cBytes, got.Value(0))
	assert.Equal(t, aBytes, got.Value(1))
	// The returned slice must be a copy, not an alias of values' buffer.
	got.Value(0)[0] ^= 0xff
	assert.Equal(t, cBytes[0]^0xff, got.Value(0)[0])
	assert.NotEqual(t, values.Value(2)[0], got.Value(0)[0])
}

func TestTakeArrayFixedSizeBinaryNulls(t *testing.T) {
	dt := &arrow.FixedSizeBinaryType{ByteWidth: 16}
	b := array.NewFixedSizeBinaryBuilder(memory.DefaultAllocator, dt)
	b.Append(make([]byte, 16))
	b.AppendNull()
	values := b.NewArray()
	defer values.Release()

	indices := indexArray(t, []int64{1, 0}, nil)
	defer indices.Release()

	out, err := compute.TakeArray(values, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.NoError(t, err)
	defer out.Release()

	got := out.(*array.FixedSizeBinary)
	assert.True(t, got.IsNull(0))
	assert.True(t, got.IsValid(1))
}

func TestTakeArrayUUIDExtension(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	aBytes, _ := a.MarshalBinary()
	bBytes, _ := b.MarshalBinary()
	cBytes, _ := c.MarshalBinary()

	storage := newFixedSizeBinary(t, [][]byte{aBytes, bBytes, cBytes})
	data := array.NewData(extensions.UUID, storage.Len(), storage.Data().(*array.Data).Buffers(), nil, storage.NullN(), 0)
	defer data.Release()
	values := extensions.WrapUUIDArray(data)
	defer values.Release()

	indices := indexArray(t, []int64{1, 2}, nil)
	defer indices.Release()

	// TakeArray dispatches on the concrete *array.Extension type, so
	// the UUID wrapper's embedded field -- not the UUIDArray itself --
	// is what a caller passes in.
	out, err := compute.TakeArray(values.Extension, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.NoError(t, err)
	defer out.Release()

	got := extensions.WrapUUIDArray(out.Data())
	defer got.Release()
	require.Equal(t, 2, got.Len())
	assert.Equal(t, b, got.Value(0))
	assert.Equal(t, c, got.Value(1))
}

func newRunEndEncoded(t *testing.T, runEnds []int32, values arrow.Array) *array.RunEndEncoded {
	t.Helper()
	reb := array.NewPrimitiveBuilder[int32](memory.DefaultAllocator, arrow.PrimitiveTypes.Int32)
	for _, e := range runEnds {
		reb.Append(e)
	}
	runEndsArr := reb.NewArray()
	defer runEndsArr.Release()

	length := 0
	if len(runEnds) > 0 {
		length = int(runEnds[len(runEnds)-1])
	}
	dt := arrow.RunLengthEncodedOf(values.DataType())
	data := array.NewData(dt, length, nil, []arrow.ArrayData{runEndsArr.Data(), values.Data()}, 0, 0)
	defer data.Release()
	return array.NewRunEndEncodedData(data)
}

func TestTakeArrayRunEndEncoded(t *testing.T) {
	// Logical values: [A A A B B C], runs at 3, 5, 6.
	runValues := int32Array(t, []int32{1, 2, 3}, nil)
	defer runValues.Release()
	values := newRunEndEncoded(t, []int32{3, 5, 6}, runValues)
	defer values.Release()

	// Row 0/2 land in run "A" (physical 0), row 4 lands in run "B" (physical 1).
	indices := indexArray(t, []int64{0, 2, 4}, nil)
	defer indices.Release()

	out, err := compute.TakeArray(values, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.NoError(t, err)
	defer out.Release()

	got := out.(*array.Primitive[int32])
	require.Equal(t, 3, got.Len())
	assert.Equal(t, []int32{1, 1, 2}, got.Values())
}

func TestTakeArrayRunEndEncodedOutOfBounds(t *testing.T) {
	runValues := int32Array(t, []int32{1, 2}, nil)
	defer runValues.Release()
	values := newRunEndEncoded(t, []int32{2, 4}, runValues)
	defer values.Release()

	indices := indexArray(t, []int64{10}, nil)
	defer indices.Release()

	_, err := compute.TakeArray(values, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.Error(t, err)
	assert.True(t, errors.Is(err, arrow.ErrIndex))
}

func TestTakeArrayUnsupportedType(t *testing.T) {
	field := int32Array(t, []int32{1, 2, 3}, nil)
	defer field.Release()

	dt := arrow.StructOf(arrow.Field{Name: "f", Type: arrow.PrimitiveTypes.Int32})
	data := array.NewData(dt, field.Len(), nil, []arrow.ArrayData{field.Data()}, 0, 0)
	defer data.Release()
	values := array.NewStructData(data)
	defer values.Release()

	indices := indexArray(t, []int64{0}, nil)
	defer indices.Release()

	_, err := compute.TakeArray(values, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.Error(t, err)
	assert.True(t, errors.Is(err, arrow.ErrNotImplemented))
}
