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
	"math"

	"github.com/arrowkit/selectcore/arrow"
	"github.com/arrowkit/selectcore/arrow/array"
	"github.com/arrowkit/selectcore/arrow/bitutil"
	"github.com/arrowkit/selectcore/arrow/memory"
	"github.com/arrowkit/selectcore/internal/bitutils"

	"golang.org/x/exp/constraints"
)

// GetTakeIndices converts filter (boolean, or run-end-encoded over
// boolean) into an index array honoring opts.NullSelection, the C2
// filter->indices builder.
func GetTakeIndices(filter arrow.Array, opts FilterOptions, mem memory.Allocator) (arrow.Array, error) {
	switch f := filter.(type) {
	case *array.Boolean:
		return getTakeIndicesBoolean(f, opts, mem)
	case *array.RunEndEncoded:
		return getTakeIndicesREE(f, opts, mem)
	default:
		return nil, fmt.Errorf("%w: compute: filter must be boolean or run-end-encoded, got %s",
			arrow.ErrInvalid, filter.DataType())
	}
}

// Filter selects values whose corresponding filter row is true,
// honoring opts.NullSelection for null filter rows. It is defined as
// get_take_indices followed by take, the round-trip law §8.6 in the
// spec requires.
func Filter(values arrow.Array, filter arrow.Array, opts FilterOptions, mem memory.Allocator) (arrow.Array, error) {
	if values.Len() != filter.Len() {
		return nil, fmt.Errorf("%w: compute: filter length %d does not match values length %d",
			arrow.ErrInvalid, filter.Len(), values.Len())
	}
	indices, err := GetTakeIndices(filter, opts, mem)
	if err != nil {
		return nil, err
	}
	defer indices.Release()
	return TakeArray(values, indices, DefaultTakeOptions, mem)
}

func getTakeIndicesBoolean(filter *array.Boolean, opts FilterOptions, mem memory.Allocator) (arrow.Array, error) {
	n := filter.Len()
	if n > math.MaxUint32 {
		return nil, fmt.Errorf("%w: compute: boolean filter of length %d exceeds the maximum supported length %d",
			arrow.ErrNotImplemented, n, uint32(math.MaxUint32))
	}

	data := filter.Data()
	offset := int64(data.Offset())
	length := int64(n)

	var values, valid []byte
	if buf := data.Buffer(1); buf != nil {
		values = buf.Bytes()
	}
	if buf := data.Buffer(0); buf != nil {
		valid = buf.Bytes()
	}

	if n <= 1<<16-1 {
		return buildBooleanIndices[uint16](&arrow.Uint16Type{}, values, valid, offset, length, opts, mem)
	}
	return buildBooleanIndices[uint32](&arrow.Uint32Type{}, values, valid, offset, length, opts, mem)
}

func buildBooleanIndices[T constraints.Unsigned](dtype arrow.DataType, values, valid []byte, offset, length int64, opts FilterOptions, mem memory.Allocator) (arrow.Array, error) {
	b := array.NewPrimitiveBuilder[T](mem, dtype)

	if valid == nil {
		// No null filter rows exist, so DROP and EMIT_NULL coincide:
		// emit one index per true bit.
		appendTrueRanges[T](b, values, offset, length)
		return b.NewArray(), nil
	}

	switch opts.NullSelection {
	case Drop:
		counter := bitutils.NewBinaryBitBlockCounter(values, offset, valid, offset, length)
		pos := int64(0)
		for pos < length {
			block := counter.NextAndWord()
			if block.Len == 0 {
				break
			}
			switch {
			case block.NoneSet():
				// nothing selected in this block
			case block.AllSet():
				// Every row in the block is valid and true: append
				// the consecutive index range with no per-bit tests.
				for i := int64(0); i < int64(block.Len); i++ {
					b.Append(T(pos + i))
				}
			default:
				for i := int64(0); i < int64(block.Len); i++ {
					if bitutil.BitIsSet(values, int(offset+pos+i)) && bitutil.BitIsSet(valid, int(offset+pos+i)) {
						b.Append(T(pos + i))
					}
				}
			}
			pos += int64(block.Len)
		}
	case EmitNull:
		counter := bitutils.NewBinaryBitBlockCounter(values, offset, valid, offset, length)
		allSetCounter := bitutils.NewBinaryBitBlockCounter(values, offset, valid, offset, length)
		pos := int64(0)
		for pos < length {
			block := counter.NextOrNotWord()
			allSetBlock := allSetCounter.NextAndWord()
			if block.Len == 0 {
				break
			}
			switch {
			case block.NoneSet():
				// nothing selected in this block
			case allSetBlock.AllSet():
				// Every row in the block is valid and true: append
				// the consecutive index range with no per-bit tests.
				for i := int64(0); i < int64(block.Len); i++ {
					b.Append(T(pos + i))
				}
			default:
				for i := int64(0); i < int64(block.Len); i++ {
					switch {
					case !bitutil.BitIsSet(valid, int(offset+pos+i)):
						b.AppendNull()
					case bitutil.BitIsSet(values, int(offset+pos+i)):
						b.Append(T(pos + i))
					}
				}
			}
			pos += int64(block.Len)
		}
	}
	return b.NewArray(), nil
}

// appendTrueRanges scans values (no validity bitmap: every row is
// valid) and appends one index per set bit, skipping none-set blocks
// in bulk via C1.
func appendTrueRanges[T constraints.Unsigned](b *array.PrimitiveBuilder[T], values []byte, offset, length int64) {
	counter := bitutils.NewBitBlockCounter(values, offset, length)
	pos := int64(0)
	for pos < length {
		block := counter.NextWord()
		if block.Len == 0 {
			break
		}
		switch {
		case block.NoneSet():
			// nothing selected in this block
		case block.AllSet():
			for i := int64(0); i < int64(block.Len); i++ {
				b.Append(T(pos + i))
			}
		default:
			for i := int64(0); i < int64(block.Len); i++ {
				if bitutil.BitIsSet(values, int(offset+pos+i)) {
					b.Append(T(pos + i))
				}
			}
		}
		pos += int64(block.Len)
	}
}

func getTakeIndicesREE(filter *array.RunEndEncoded, opts FilterOptions, mem memory.Allocator) (arrow.Array, error) {
	boolVals, ok := filter.Values().(*array.Boolean)
	if !ok {
		return nil, fmt.Errorf("%w: compute: run-end-encoded filter must have boolean values, got %s",
			arrow.ErrInvalid, filter.Values().DataType())
	}

	b := array.NewPrimitiveBuilder[int32](mem, &arrow.Int32Type{})
	runEnds := filter.RunEnds().Values()
	start := int32(0)
	for i, end := range runEnds {
		length := int(end - start)
		switch {
		case boolVals.IsNull(i):
			if opts.NullSelection == EmitNull {
				b.AppendNulls(length)
			}
		case boolVals.Value(i):
			for j := int32(0); j < int32(length); j++ {
				b.Append(start + j)
			}
		}
		start = end
	}
	return b.NewArray(), nil
}
