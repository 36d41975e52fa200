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
)

// TakeChunked implements C6: values is chunked, indices is a flat
// array. It groups requested offsets per chunk, performs one take per
// non-empty chunk, and re-assembles the result in request order.
func TakeChunked(values *array.Chunked, indices arrow.Array, opts TakeOptions, mem memory.Allocator) (*array.Chunked, error) {
	if indices.Len() == 0 {
		return array.NewChunked(values.DataType(), nil), nil
	}

	if values.NumChunks() <= 1 {
		var chunk arrow.Array
		if values.NumChunks() == 1 {
			chunk = values.Chunk(0)
		} else {
			chunk = array.MakeFromData(array.NewData(values.DataType(), 0, nil, nil, 0, 0))
		}
		out, err := TakeArray(chunk, indices, opts, mem)
		if err != nil {
			return nil, err
		}
		defer out.Release()
		return array.NewChunked(values.DataType(), []arrow.Array{out}), nil
	}

	numChunks := values.NumChunks()
	// perChunkOffsets[c] accumulates the within-chunk offsets
	// requested of chunk c, in the order they were first needed.
	perChunkOffsets := make([][]int64, numChunks)
	// assignment[j] names the chunk (or -1 for a null index) that the
	// j'th requested row resolves to, so the result can be
	// re-assembled in original order after the batched per-chunk
	// takes below.
	assignment := make([]int, indices.Len())

	for j := 0; j < indices.Len(); j++ {
		k, isNull := indexAt(indices, j)
		if isNull {
			assignment[j] = -1
			continue
		}
		if err := checkIndex(k, values.Len(), opts); err != nil {
			return nil, err
		}
		loc := values.Resolve(k)
		if loc.ChunkIndex >= numChunks {
			return nil, fmt.Errorf("%w: compute: chunk resolver returned out-of-range chunk %d for index %d", arrow.ErrIndex, loc.ChunkIndex, k)
		}
		assignment[j] = loc.ChunkIndex
		perChunkOffsets[loc.ChunkIndex] = append(perChunkOffsets[loc.ChunkIndex], loc.IndexInChunk)
	}

	// One batched take per non-empty chunk (step c).
	lookups := make([]arrow.Array, numChunks)
	cursors := make([]int, numChunks)
	for c := 0; c < numChunks; c++ {
		if len(perChunkOffsets[c]) == 0 {
			continue
		}
		chunkIndices, err := int64SliceToIndexArray(perChunkOffsets[c], mem)
		if err != nil {
			return nil, err
		}
		noBoundsCheck := TakeOptions{BoundsCheck: false} // offsets were already resolved in-range by Resolve
		out, err := TakeArray(values.Chunk(c), chunkIndices, noBoundsCheck, mem)
		chunkIndices.Release()
		if err != nil {
			return nil, err
		}
		lookups[c] = out
	}
	defer func() {
		for _, l := range lookups {
			if l != nil {
				l.Release()
			}
		}
	}()

	// Re-assemble in request order (step d): assembleByAssignment
	// builds one index array over the concatenated per-chunk lookup
	// arrays and gathers every row with a single TakeArray call.
	out, err := assembleByAssignment(values.DataType(), assignment, lookups, cursors, mem)
	if err != nil {
		return nil, err
	}
	defer out.Release()
	return array.NewChunked(values.DataType(), []arrow.Array{out}), nil
}

func int64SliceToIndexArray(offsets []int64, mem memory.Allocator) (arrow.Array, error) {
	b := array.NewPrimitiveBuilder[int64](mem, &arrow.Int64Type{})
	for _, o := range offsets {
		b.Append(o)
	}
	return b.NewArray(), nil
}

// assembleByAssignment re-assembles the rows in request order from
// the per-chunk lookup arrays with a single TakeArray call. A null assignment (-1) emits a null row
// directly rather than consulting any lookup array.
func assembleByAssignment(dtype arrow.DataType, assignment []int, lookups []arrow.Array, cursors []int, mem memory.Allocator) (arrow.Array, error) {
	// Build a synthetic per-row take over a concatenation of the
	// lookup arrays, by constructing one index array whose k'th
	// logical position in the concatenation the row wants, then
	// delegating to Concatenate+TakeArray so this path reuses the
	// same primitive/boolean/nested kernels rather than a third
	// gather implementation.
	var parts []arrow.Array
	base := make([]int64, len(lookups))
	offset := int64(0)
	for c, l := range lookups {
		if l == nil {
			continue
		}
		parts = append(parts, l)
		base[c] = offset
		offset += int64(l.Len())
	}

	if len(parts) == 0 {
		return array.MakeFromData(array.NewData(dtype, 0, nil, nil, 0, 0)), nil
	}

	concatenated, err := array.Concatenate(parts, mem)
	if err != nil {
		return nil, err
	}
	defer concatenated.Release()

	idxBuilder := array.NewPrimitiveBuilder[int64](mem, &arrow.Int64Type{})
	for _, c := range assignment {
		if c < 0 {
			idxBuilder.AppendNull()
			continue
		}
		idxBuilder.Append(base[c] + int64(cursors[c]))
		cursors[c]++
	}
	idx := idxBuilder.NewArray()
	defer idx.Release()

	return TakeArray(concatenated, idx, TakeOptions{BoundsCheck: false}, mem)
}
