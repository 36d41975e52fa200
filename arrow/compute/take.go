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

package compute

import (
	"fmt"

	"github.com/arrowkit/selectcore/arrow"
	"github.com/arrowkit/selectcore/arrow/array"
	"github.com/arrowkit/selectcore/arrow/memory"
	"github.com/arrowkit/selectcore/internal/bitutils"
)

// TakeArray gathers values[indices[i]] into a freshly allocated array
// of values' logical type and indices' length -- the single-array
// entry point C3/C4/C5 share, and the leaf C7 recurses down to.
func TakeArray(values, indices arrow.Array, opts TakeOptions, mem memory.Allocator) (arrow.Array, error) {
	switch v := values.(type) {
	case *array.Null:
		return takeNull(v, indices, opts)
	case *array.Boolean:
		return takeBoolean(v, indices, opts, mem)
	case *array.Dictionary:
		return takeDictionary(v, indices, opts, mem)
	case *array.Extension:
		return takeExtension(v, indices, opts, mem)
	case *array.RunEndEncoded:
		return takeRunEndEncoded(v, indices, opts, mem)
	case *array.FixedSizeBinary:
		return takeFixedSizeBinary(v, indices, opts, mem)
	case *array.Primitive[int8]:
		return takePrimitive[int8](v, indices, opts, mem)
	case *array.Primitive[int16]:
		return takePrimitive[int16](v, indices, opts, mem)
	case *array.Primitive[int32]:
		return takePrimitive[int32](v, indices, opts, mem)
	case *array.Primitive[int64]:
		return takePrimitive[int64](v, indices, opts, mem)
	case *array.Primitive[uint8]:
		return takePrimitive[uint8](v, indices, opts, mem)
	case *array.Primitive[uint16]:
		return takePrimitive[uint16](v, indices, opts, mem)
	case *array.Primitive[uint32]:
		return takePrimitive[uint32](v, indices, opts, mem)
	case *array.Primitive[uint64]:
		return takePrimitive[uint64](v, indices, opts, mem)
	case *array.Primitive[float32]:
		return takePrimitive[float32](v, indices, opts, mem)
	case *array.Primitive[float64]:
		return takePrimitive[float64](v, indices, opts, mem)
	default:
		return nil, fmt.Errorf("%w: compute: take over values of type %s is not implemented by this module; list/struct/union take is an external kernel contract",
			arrow.ErrNotImplemented, values.DataType())
	}
}

// indexAt returns the logical value of indices[i] as an int64, and
// whether that slot is null. Index arrays are always one of the
// eight fixed-width integer types; the value is widened to int64
// after the caller's bounds check reinterprets unsigned types as
// non-negative.
func indexAt(indices arrow.Array, i int) (int64, bool) {
	if indices.IsNull(i) {
		return 0, true
	}
	switch idx := indices.(type) {
	case *array.Primitive[int8]:
		return int64(idx.Value(i)), false
	case *array.Primitive[int16]:
		return int64(idx.Value(i)), false
	case *array.Primitive[int32]:
		return int64(idx.Value(i)), false
	case *array.Primitive[int64]:
		return idx.Value(i), false
	case *array.Primitive[uint8]:
		return int64(idx.Value(i)), false
	case *array.Primitive[uint16]:
		return int64(idx.Value(i)), false
	case *array.Primitive[uint32]:
		return int64(idx.Value(i)), false
	case *array.Primitive[uint64]:
		return int64(idx.Value(i)), false
	default:
		panic(fmt.Sprintf("compute: unsupported index array type %s", indices.DataType()))
	}
}

// checkIndex validates k against valuesLen per opts.BoundsCheck,
// raising IndexError for an out-of-range or negative index.
func checkIndex(k int64, valuesLen int, opts TakeOptions) error {
	if !opts.BoundsCheck {
		return nil
	}
	if k < 0 || k >= int64(valuesLen) {
		return fmt.Errorf("%w: compute: index %d out of bounds for values of length %d", arrow.ErrIndex, k, valuesLen)
	}
	return nil
}

// takeNull implements C5's null-type take: bounds-check every
// non-null index (there is no value to be out of range of, but an
// index pointing past a zero-length values array is still an error),
// and return a null array of indices' length.
func takeNull(values *array.Null, indices arrow.Array, opts TakeOptions) (arrow.Array, error) {
	for i := 0; i < indices.Len(); i++ {
		k, isNull := indexAt(indices, i)
		if isNull {
			continue
		}
		if err := checkIndex(k, values.Len(), opts); err != nil {
			return nil, err
		}
	}
	return array.NewNull(indices.Len()), nil
}

// takeDictionary implements C5's dictionary take: only the physical
// index column is taken; the dictionary pointer is reused verbatim.
func takeDictionary(values *array.Dictionary, indices arrow.Array, opts TakeOptions, mem memory.Allocator) (arrow.Array, error) {
	takenIndices, err := TakeArray(values.Indices(), indices, opts, mem)
	if err != nil {
		return nil, err
	}
	defer takenIndices.Release()

	idata := takenIndices.Data().(*array.Data)
	dt := values.DataType().(*arrow.DictionaryType)
	data := array.NewDataWithDictionary(dt, idata.Len(), idata.Buffers(), idata.NullN(), 0, values.Data().Dictionary())
	defer data.Release()
	return array.NewDictionaryData(data), nil
}

// takeExtension implements C5's extension take: recurse on the
// physical storage array, then rewrap in the same extension type.
func takeExtension(values *array.Extension, indices arrow.Array, opts TakeOptions, mem memory.Allocator) (arrow.Array, error) {
	takenStorage, err := TakeArray(values.Storage(), indices, opts, mem)
	if err != nil {
		return nil, err
	}
	defer takenStorage.Release()

	sdata := takenStorage.Data().(*array.Data)
	data := array.NewData(values.ExtensionType(), sdata.Len(), sdata.Buffers(), sdata.Children(), sdata.NullN(), 0)
	defer data.Release()
	return array.NewExtensionData(data, values.ExtensionType()), nil
}

// takeRunEndEncoded implements C5's run-end-encoded take: each
// logical index is translated to a physical index via
// RunEndEncoded.PhysicalIndex, then the gather is delegated to
// TakeArray over the run's values child. A null input index or an
// out-of-range logical index is handled here, against the REE's
// logical length, before the physical index array is ever built --
// the recursive take then sees only in-range physical indices.
func takeRunEndEncoded(values *array.RunEndEncoded, indices arrow.Array, opts TakeOptions, mem memory.Allocator) (arrow.Array, error) {
	b := array.NewPrimitiveBuilder[int32](mem, arrow.PrimitiveTypes.Int32)
	for i := 0; i < indices.Len(); i++ {
		k, isNull := indexAt(indices, i)
		if isNull {
			b.AppendNull()
			continue
		}
		if err := checkIndex(k, values.Len(), opts); err != nil {
			return nil, err
		}
		b.Append(int32(values.PhysicalIndex(int(k))))
	}
	physIndices := b.NewArray()
	defer physIndices.Release()

	// Every physical index was derived from PhysicalIndex, so it is
	// guaranteed in range for the values child; re-checking bounds
	// there would be redundant.
	noBoundsCheck := opts
	noBoundsCheck.BoundsCheck = false
	return TakeArray(values.Values(), physIndices, noBoundsCheck, mem)
}

// takeFixedSizeBinary implements C5's fixed-width-binary take, the
// path the UUID extension's 16-byte storage (A2) recurses into from
// takeExtension. It mirrors takePrimitive's block-scanning shape, but
// gathers each row with a copy() of the width-byte slice instead of a
// scalar assignment.
func takeFixedSizeBinary(values *array.FixedSizeBinary, indices arrow.Array, opts TakeOptions, mem memory.Allocator) (arrow.Array, error) {
	dt := values.DataType().(*arrow.FixedSizeBinaryType)
	b := array.NewFixedSizeBinaryBuilder(mem, dt)
	valuesMayBeNull := values.NullN() != 0
	buf := make([]byte, dt.ByteWidth)

	obc := bitutils.NewOptionalBitBlockCounter(indicesValidityBitmap(indices), int64(indices.Data().Offset()), int64(indices.Len()))
	pos := 0
	for pos < indices.Len() {
		block := obc.NextBlock()
		if block.Len == 0 {
			break
		}
		if block.NoneSet() {
			for i := 0; i < int(block.Len); i++ {
				b.AppendNull()
			}
			pos += int(block.Len)
			continue
		}
		for i := 0; i < int(block.Len); i++ {
			row := pos + i
			k, isNull := indexAt(indices, row)
			if isNull {
				b.AppendNull()
				continue
			}
			if err := checkIndex(k, values.Len(), opts); err != nil {
				return nil, err
			}
			if valuesMayBeNull && values.IsNull(int(k)) {
				b.AppendNull()
				continue
			}
			copy(buf, values.Value(int(k)))
			b.Append(buf)
		}
		pos += int(block.Len)
	}
	return b.NewArray(), nil
}

func takeBoolean(values *array.Boolean, indices arrow.Array, opts TakeOptions, mem memory.Allocator) (arrow.Array, error) {
	b := array.NewBooleanBuilder(mem)
	valuesMayBeNull := values.NullN() != 0

	obc := bitutils.NewOptionalBitBlockCounter(indicesValidityBitmap(indices), int64(indices.Data().Offset()), int64(indices.Len()))
	pos := 0
	for pos < indices.Len() {
		block := obc.NextBlock()
		if block.Len == 0 {
			break
		}
		if block.NoneSet() {
			b.AppendNulls(int(block.Len))
			pos += int(block.Len)
			continue
		}
		for i := 0; i < int(block.Len); i++ {
			row := pos + i
			k, isNull := indexAt(indices, row)
			if isNull {
				b.AppendNull()
				continue
			}
			if err := checkIndex(k, values.Len(), opts); err != nil {
				return nil, err
			}
			if valuesMayBeNull && values.IsNull(int(k)) {
				b.AppendNull()
				continue
			}
			b.Append(values.Value(int(k)))
		}
		pos += int(block.Len)
	}
	return b.NewArray(), nil
}

func takePrimitive[T array.PrimitiveValue](values *array.Primitive[T], indices arrow.Array, opts TakeOptions, mem memory.Allocator) (arrow.Array, error) {
	b := array.NewPrimitiveBuilder[T](mem, values.DataType())
	valuesMayBeNull := values.NullN() != 0

	obc := bitutils.NewOptionalBitBlockCounter(indicesValidityBitmap(indices), int64(indices.Data().Offset()), int64(indices.Len()))
	pos := 0
	for pos < indices.Len() {
		block := obc.NextBlock()
		if block.Len == 0 {
			break
		}
		if block.NoneSet() {
			b.AppendNulls(int(block.Len))
			pos += int(block.Len)
			continue
		}
		if block.AllSet() && !valuesMayBeNull {
			// Fast path: every index in the block is valid and
			// values has no nulls to check, so every output slot is
			// a straight gather.
			for i := 0; i < int(block.Len); i++ {
				k, _ := indexAt(indices, pos+i)
				if err := checkIndex(k, values.Len(), opts); err != nil {
					return nil, err
				}
				b.Append(values.Value(int(k)))
			}
			pos += int(block.Len)
			continue
		}
		for i := 0; i < int(block.Len); i++ {
			row := pos + i
			k, isNull := indexAt(indices, row)
			if isNull {
				b.AppendNull()
				continue
			}
			if err := checkIndex(k, values.Len(), opts); err != nil {
				return nil, err
			}
			if valuesMayBeNull && values.IsNull(int(k)) {
				b.AppendNull()
				continue
			}
			b.Append(values.Value(int(k)))
		}
		pos += int(block.Len)
	}
	return b.NewArray(), nil
}

// indicesValidityBitmap returns the raw validity bitmap backing
// indices, or nil if it has none (all-valid).
func indicesValidityBitmap(indices arrow.Array) []byte {
	if buf := indices.Data().Buffer(0); buf != nil {
		return buf.Bytes()
	}
	return nil
}
