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
	"sync/atomic"

	"github.com/arrowkit/selectcore/arrow"
	"github.com/arrowkit/selectcore/arrow/internal/chunkresolver"
)

// Chunked is an ordered sequence of arrays sharing one logical type,
// the C6/C7 "ChunkedArray" container: a column whose chunk boundaries
// are independent of any other column's.
type Chunked struct {
	refCount int64

	dtype    arrow.DataType
	chunks   []arrow.Array
	length   int
	nullN    int
	resolver *chunkresolver.Resolver
}

// NewChunked builds a Chunked array of dtype over chunks, retaining
// each. All chunks must share dtype (by fingerprint); NewChunked
// panics otherwise, since a mixed-type chunked array can never be a
// valid take/filter input or output.
func NewChunked(dtype arrow.DataType, chunks []arrow.Array) *Chunked {
	c := &Chunked{refCount: 1, dtype: dtype, chunks: make([]arrow.Array, len(chunks))}
	lengths := make([]int64, len(chunks))
	for i, ch := range chunks {
		if !arrow.TypeEqual(ch.DataType(), dtype) {
			panic(fmt.Sprintf("arrow/array: chunk %d has type %s, expected %s", i, ch.DataType(), dtype))
		}
		ch.Retain()
		c.chunks[i] = ch
		c.length += ch.Len()
		c.nullN += ch.NullN()
		lengths[i] = int64(ch.Len())
	}
	c.resolver = chunkresolver.New(lengths)
	return c
}

func (c *Chunked) Retain()  { atomic.AddInt64(&c.refCount, 1) }
func (c *Chunked) Release() {
	if atomic.AddInt64(&c.refCount, -1) != 0 {
		return
	}
	for _, ch := range c.chunks {
		ch.Release()
	}
	c.chunks = nil
}

func (c *Chunked) DataType() arrow.DataType { return c.dtype }
func (c *Chunked) Len() int                 { return c.length }
func (c *Chunked) NullN() int               { return c.nullN }
func (c *Chunked) Chunks() []arrow.Array    { return c.chunks }
func (c *Chunked) NumChunks() int           { return len(c.chunks) }
func (c *Chunked) Chunk(i int) arrow.Array  { return c.chunks[i] }

// Resolve maps a logical row index into (chunk index, offset within
// that chunk), the primitive C6's chunked take groups requests with.
func (c *Chunked) Resolve(i int64) chunkresolver.Location { return c.resolver.Resolve(i) }

func (c *Chunked) String() string {
	return fmt.Sprintf("chunked %s, len=%d, chunks=%d", c.dtype.Name(), c.length, len(c.chunks))
}
