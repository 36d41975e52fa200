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

// Package chunkresolver maps a logical row index in a chunked array
// to the (chunk index, intra-chunk offset) pair a chunked take (C6)
// needs in order to group requests per physical chunk.
package chunkresolver

import (
	"fmt"
	"sort"

	"github.com/JohnCGriffin/overflow"
)

// Location is the result of resolving a logical index: which chunk it
// falls in, and its offset within that chunk.
type Location struct {
	ChunkIndex int
	IndexInChunk int64
}

// Resolver answers (chunk, offset) queries over a sequence of chunk
// lengths, amortizing the binary search setup across many Resolve
// calls the way C6's per-index resolution loop requires.
type Resolver struct {
	// offsets[i] is the cumulative logical length of chunks
	// [0,i); offsets has len(lengths)+1 entries, offsets[len]
	// being the total length.
	offsets []int64
	// cached is a hint set to the chunk found by the previous
	// Resolve call, since callers typically resolve indices in
	// increasing order and the next lookup is usually in the
	// same or the following chunk.
	cached int
}

// New builds a Resolver over chunkLengths, the logical length of each
// chunk in order.
func New(chunkLengths []int64) *Resolver {
	offsets := make([]int64, len(chunkLengths)+1)
	for i, n := range chunkLengths {
		sum, ok := overflow.Add64(offsets[i], n)
		if !ok {
			panic(fmt.Sprintf("chunkresolver: cumulative chunk length overflows int64 at chunk %d", i))
		}
		offsets[i+1] = sum
	}
	return &Resolver{offsets: offsets}
}

// NumChunks returns the number of chunks the resolver was built over.
func (r *Resolver) NumChunks() int { return len(r.offsets) - 1 }

// Total returns the sum of all chunk lengths.
func (r *Resolver) Total() int64 { return r.offsets[len(r.offsets)-1] }

// Resolve maps logical index i (0 <= i < Total()) to its chunk
// location. Behavior is undefined for i outside that range; callers
// must bounds-check beforehand (the spec treats out-of-range
// resolution as the caller's IndexError to raise).
func (r *Resolver) Resolve(i int64) Location {
	if r.inChunk(r.cached, i) {
		return Location{ChunkIndex: r.cached, IndexInChunk: i - r.offsets[r.cached]}
	}
	// offsets[1:] holds the exclusive end of each chunk; the first
	// end strictly greater than i identifies the chunk.
	chunk := sort.Search(len(r.offsets)-1, func(k int) bool { return r.offsets[k+1] > i })
	r.cached = chunk
	return Location{ChunkIndex: chunk, IndexInChunk: i - r.offsets[chunk]}
}

func (r *Resolver) inChunk(chunk int, i int64) bool {
	return chunk < r.NumChunks() && i >= r.offsets[chunk] && i < r.offsets[chunk+1]
}
