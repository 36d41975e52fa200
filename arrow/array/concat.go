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
	"github.com/arrowkit/selectcore/arrow/memory"
)

// Concatenate joins arrs, which must all share arrs[0]'s logical
// type, into a single array, the primitive C7's "concatenate outputs"
// step relies on when re-assembling a per-chunk-of-indices take back
// into one chunk. Every kept array must still be Released by the
// caller; Concatenate retains nothing from its inputs.
//
// Unlike the teacher's buffer-splicing implementation, this walks
// element-by-element through each input's builder; it trades the
// memcpy fast path for one code path shared by the types it supports:
// Null, Boolean, the numeric primitives, and Dictionary arrays that
// share one dictionary. Any other type returns ErrNotImplemented.
// See DESIGN.md for why that
// trade was made.
func Concatenate(arrs []arrow.Array, mem memory.Allocator) (arrow.Array, error) {
	if len(arrs) == 0 {
		return nil, fmt.Errorf("%w: array/concat: must pass at least one array", arrow.ErrInvalid)
	}
	dtype := arrs[0].DataType()
	for _, a := range arrs[1:] {
		if !arrow.TypeEqual(a.DataType(), dtype) {
			return nil, fmt.Errorf("%w: array/concat: arrays to be concatenated must be identically typed, got %s and %s",
				arrow.ErrInvalid, dtype, a.DataType())
		}
	}

	switch dtype.(type) {
	case *arrow.NullType:
		n := 0
		for _, a := range arrs {
			n += a.Len()
		}
		return NewNull(n), nil
	case *arrow.BooleanType:
		b := NewBooleanBuilder(mem)
		for _, a := range arrs {
			ba := a.(*Boolean)
			for i := 0; i < ba.Len(); i++ {
				if ba.IsNull(i) {
					b.AppendNull()
				} else {
					b.Append(ba.Value(i))
				}
			}
		}
		return b.NewArray(), nil
	case *arrow.DictionaryType:
		return concatDictionary(arrs, mem)
	default:
		out, err := concatPrimitive(dtype, arrs, mem)
		if err != nil {
			return nil, err
		}
		if out != nil {
			return out, nil
		}
		return nil, fmt.Errorf("%w: array/concat: unsupported type %s", arrow.ErrNotImplemented, dtype)
	}
}

// concatPrimitive handles every numeric Primitive[T] instantiation;
// it returns (nil, nil) for any other type so the caller can fall
// through to a NotImplemented error.
func concatPrimitive(dtype arrow.DataType, arrs []arrow.Array, mem memory.Allocator) (arrow.Array, error) {
	switch dtype.(type) {
	case *arrow.Int8Type:
		return concatPrimitiveT[int8](dtype, arrs, mem), nil
	case *arrow.Int16Type:
		return concatPrimitiveT[int16](dtype, arrs, mem), nil
	case *arrow.Int32Type:
		return concatPrimitiveT[int32](dtype, arrs, mem), nil
	case *arrow.Int64Type:
		return concatPrimitiveT[int64](dtype, arrs, mem), nil
	case *arrow.Uint8Type:
		return concatPrimitiveT[uint8](dtype, arrs, mem), nil
	case *arrow.Uint16Type:
		return concatPrimitiveT[uint16](dtype, arrs, mem), nil
	case *arrow.Uint32Type:
		return concatPrimitiveT[uint32](dtype, arrs, mem), nil
	case *arrow.Uint64Type:
		return concatPrimitiveT[uint64](dtype, arrs, mem), nil
	case *arrow.Float32Type:
		return concatPrimitiveT[float32](dtype, arrs, mem), nil
	case *arrow.Float64Type:
		return concatPrimitiveT[float64](dtype, arrs, mem), nil
	default:
		return nil, nil
	}
}

func concatPrimitiveT[T PrimitiveValue](dtype arrow.DataType, arrs []arrow.Array, mem memory.Allocator) arrow.Array {
	b := NewPrimitiveBuilder[T](mem, dtype)
	for _, a := range arrs {
		pa := a.(*Primitive[T])
		for i := 0; i < pa.Len(); i++ {
			if pa.IsNull(i) {
				b.AppendNull()
			} else {
				b.Append(pa.Value(i))
			}
		}
	}
	return b.NewArray()
}

// concatDictionary requires every input to share the same dictionary
// pointer (the common case for take/filter results, which never
// rebuild the dictionary); it concatenates only the index arrays and
// reuses that shared dictionary, matching the "reuse pointer" rule
// C5 applies to a single dictionary take.
func concatDictionary(arrs []arrow.Array, mem memory.Allocator) (arrow.Array, error) {
	first := arrs[0].(*Dictionary)
	dict := first.data.Dictionary()
	indexArrs := make([]arrow.Array, len(arrs))
	for i, a := range arrs {
		d := a.(*Dictionary)
		if d.data.Dictionary() != dict {
			return nil, fmt.Errorf("%w: array/concat: dictionary arrays with differing dictionaries are not supported", arrow.ErrNotImplemented)
		}
		indexArrs[i] = d.Indices()
	}
	indices, err := Concatenate(indexArrs, mem)
	if err != nil {
		return nil, err
	}
	defer indices.Release()
	idata := indices.Data().(*Data)
	data := NewDataWithDictionary(first.DataType(), idata.Len(), idata.Buffers(), idata.NullN(), 0, dict)
	defer data.Release()
	return NewDictionaryData(data), nil
}
