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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrowkit/selectcore/arrow"
	"github.com/arrowkit/selectcore/arrow/array"
	"github.com/arrowkit/selectcore/arrow/compute"
	"github.com/arrowkit/selectcore/arrow/memory"
)

func newChunkedInt32(t *testing.T, chunks ...[]int32) *array.Chunked {
	t.Helper()
	arrs := make([]arrow.Array, len(chunks))
	for i, c := range chunks {
		arrs[i] = int32Array(t, c, nil)
	}
	out := array.NewChunked(arrow.PrimitiveTypes.Int32, arrs)
	for _, a := range arrs {
		a.Release()
	}
	return out
}

func TestTakeChunkedSingleChunk(t *testing.T) {
	values := newChunkedInt32(t, []int32{10, 20, 30})
	defer values.Release()
	indices := indexArray(t, []int64{2, 0}, nil)
	defer indices.Release()

	out, err := compute.TakeChunked(values, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.NoError(t, err)
	defer out.Release()

	require.Equal(t, 1, out.NumChunks())
	assert.Equal(t, []int32{30, 10}, out.Chunk(0).(*array.Primitive[int32]).Values())
}

func TestTakeChunkedMultipleChunksCrossesBoundaries(t *testing.T) {
	// Chunk 0: [10, 20, 30], chunk 1: [40, 50].
	values := newChunkedInt32(t, []int32{10, 20, 30}, []int32{40, 50})
	defer values.Release()
	// Logical indices 4, 0, 3, 1 span both chunks and are requested
	// out of order, forcing the per-chunk batching + reassembly path.
	indices := indexArray(t, []int64{4, 0, 3, 1}, nil)
	defer indices.Release()

	out, err := compute.TakeChunked(values, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.NoError(t, err)
	defer out.Release()

	require.Equal(t, 1, out.NumChunks())
	assert.Equal(t, []int32{50, 10, 40, 20}, out.Chunk(0).(*array.Primitive[int32]).Values())
}

func TestTakeChunkedNullIndex(t *testing.T) {
	values := newChunkedInt32(t, []int32{10, 20}, []int32{30, 40})
	defer values.Release()
	indices := indexArray(t, []int64{3, 0, 0}, []bool{true, false, true})
	defer indices.Release()

	out, err := compute.TakeChunked(values, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.NoError(t, err)
	defer out.Release()

	got := out.Chunk(0).(*array.Primitive[int32])
	assert.True(t, got.IsValid(0))
	assert.Equal(t, int32(40), got.Value(0))
	assert.True(t, got.IsNull(1))
	assert.True(t, got.IsValid(2))
	assert.Equal(t, int32(10), got.Value(2))
}

func TestTakeChunkedOutOfBounds(t *testing.T) {
	values := newChunkedInt32(t, []int32{10, 20}, []int32{30, 40})
	defer values.Release()
	indices := indexArray(t, []int64{99}, nil)
	defer indices.Release()

	_, err := compute.TakeChunked(values, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.Error(t, err)
	assert.True(t, errors.Is(err, arrow.ErrIndex))
}

func TestTakeChunkedEmptyIndices(t *testing.T) {
	values := newChunkedInt32(t, []int32{10, 20}, []int32{30, 40})
	defer values.Release()
	indices := indexArray(t, nil, nil)
	defer indices.Release()

	out, err := compute.TakeChunked(values, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.NoError(t, err)
	defer out.Release()
	assert.Equal(t, 0, out.NumChunks())
	assert.Equal(t, 0, out.Len())
}

func TestTakeChunkedNoChunks(t *testing.T) {
	values := array.NewChunked(arrow.PrimitiveTypes.Int32, nil)
	defer values.Release()
	indices := indexArray(t, nil, nil)
	defer indices.Release()

	out, err := compute.TakeChunked(values, indices, compute.DefaultTakeOptions, memory.DefaultAllocator)
	require.NoError(t, err)
	defer out.Release()
	assert.Equal(t, 0, out.Len())
}
