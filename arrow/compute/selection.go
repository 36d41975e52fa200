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

	"golang.org/x/sync/errgroup"

	"github.com/arrowkit/selectcore/arrow"
	"github.com/arrowkit/selectcore/arrow/array"
	"github.com/arrowkit/selectcore/arrow/memory"
)

// Take is the C7 selection metafunction: it dispatches on the
// (values container, indices container) product and accepts seven
// combinations: arrow.Array or *array.Chunked values with arrow.Array
// or *array.Chunked indices, *array.Record values with arrow.Array
// indices, and *array.Table values with arrow.Array or *array.Chunked
// indices.
func Take(values, indices any, opts TakeOptions, mem memory.Allocator) (any, error) {
	switch v := values.(type) {
	case arrow.Array:
		switch idx := indices.(type) {
		case arrow.Array:
			return TakeArray(v, idx, opts, mem)
		case *array.Chunked:
			return takeArrayByChunkedIndices(v, idx, opts, mem)
		default:
			return nil, unsupportedCombination(values, indices)
		}
	case *array.Chunked:
		switch idx := indices.(type) {
		case arrow.Array:
			return TakeChunked(v, idx, opts, mem)
		case *array.Chunked:
			return takeChunkedByChunkedIndices(v, idx, opts, mem)
		default:
			return nil, unsupportedCombination(values, indices)
		}
	case *array.Record:
		idx, ok := indices.(arrow.Array)
		if !ok {
			return nil, unsupportedCombination(values, indices)
		}
		return takeRecord(v, idx, opts, mem)
	case *array.Table:
		switch idx := indices.(type) {
		case arrow.Array:
			return takeTableByFlatIndices(v, idx, opts, mem)
		case *array.Chunked:
			return takeTableByChunkedIndices(v, idx, opts, mem)
		default:
			return nil, unsupportedCombination(values, indices)
		}
	default:
		return nil, unsupportedCombination(values, indices)
	}
}

func unsupportedCombination(values, indices any) error {
	return fmt.Errorf("%w: compute: take over values %T with indices %T is not a supported container combination",
		arrow.ErrNotImplemented, values, indices)
}

// takeArrayByChunkedIndices handles values=Array, indices=ChunkedArray:
// one Array/Array call per index chunk, concatenated into one array.
func takeArrayByChunkedIndices(values arrow.Array, indices *array.Chunked, opts TakeOptions, mem memory.Allocator) (arrow.Array, error) {
	parts := make([]arrow.Array, 0, indices.NumChunks())
	defer func() {
		for _, p := range parts {
			p.Release()
		}
	}()
	for _, chunk := range indices.Chunks() {
		out, err := TakeArray(values, chunk, opts, mem)
		if err != nil {
			return nil, err
		}
		parts = append(parts, out)
	}
	if len(parts) == 0 {
		return array.MakeFromData(array.NewData(values.DataType(), 0, nil, nil, 0, 0)), nil
	}
	return array.Concatenate(parts, mem)
}

// takeChunkedByChunkedIndices handles values=ChunkedArray,
// indices=ChunkedArray: one ChunkedArray/Array call per index chunk,
// each collapsed into a single chunk and concatenated together.
func takeChunkedByChunkedIndices(values *array.Chunked, indices *array.Chunked, opts TakeOptions, mem memory.Allocator) (*array.Chunked, error) {
	var parts []arrow.Array
	defer func() {
		for _, p := range parts {
			p.Release()
		}
	}()
	for _, chunk := range indices.Chunks() {
		out, err := TakeChunked(values, chunk, opts, mem)
		if err != nil {
			return nil, err
		}
		defer out.Release()
		for _, c := range out.Chunks() {
			c.Retain()
			parts = append(parts, c)
		}
	}
	if len(parts) == 0 {
		return array.NewChunked(values.DataType(), nil), nil
	}
	single, err := array.Concatenate(parts, mem)
	if err != nil {
		return nil, err
	}
	defer single.Release()
	return array.NewChunked(values.DataType(), []arrow.Array{single}), nil
}

// takeRecord handles values=RecordBatch, indices=Array: one
// per-column Array/Array take, run concurrently via errgroup since
// each column is independent, then reassembled under the original
// schema.
func takeRecord(values *array.Record, indices arrow.Array, opts TakeOptions, mem memory.Allocator) (*array.Record, error) {
	cols := make([]arrow.Array, values.NumCols())
	var g errgroup.Group
	for i := 0; i < values.NumCols(); i++ {
		i := i
		g.Go(func() error {
			out, err := TakeArray(values.Column(i), indices, opts, mem)
			if err != nil {
				return err
			}
			cols[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, c := range cols {
			if c != nil {
				c.Release()
			}
		}
		return nil, err
	}
	defer func() {
		for _, c := range cols {
			c.Release()
		}
	}()
	return array.NewRecord(values.Schema(), cols, int64(indices.Len())), nil
}

// takeTableByFlatIndices handles values=Table, indices=Array: one
// per-column ChunkedArray/Array take.
func takeTableByFlatIndices(values *array.Table, indices arrow.Array, opts TakeOptions, mem memory.Allocator) (*array.Table, error) {
	cols := make([]*array.Chunked, values.NumCols())
	var g errgroup.Group
	for i := 0; i < values.NumCols(); i++ {
		i := i
		g.Go(func() error {
			out, err := TakeChunked(values.Column(i), indices, opts, mem)
			if err != nil {
				return err
			}
			cols[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, c := range cols {
			if c != nil {
				c.Release()
			}
		}
		return nil, err
	}
	defer func() {
		for _, c := range cols {
			c.Release()
		}
	}()
	return array.NewTable(values.Schema(), cols, int64(indices.Len())), nil
}

// takeTableByChunkedIndices handles values=Table, indices=ChunkedArray:
// one per-column ChunkedArray/ChunkedArray take.
func takeTableByChunkedIndices(values *array.Table, indices *array.Chunked, opts TakeOptions, mem memory.Allocator) (*array.Table, error) {
	cols := make([]*array.Chunked, values.NumCols())
	var g errgroup.Group
	for i := 0; i < values.NumCols(); i++ {
		i := i
		g.Go(func() error {
			out, err := takeChunkedByChunkedIndices(values.Column(i), indices, opts, mem)
			if err != nil {
				return err
			}
			cols[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, c := range cols {
			if c != nil {
				c.Release()
			}
		}
		return nil, err
	}
	defer func() {
		for _, c := range cols {
			c.Release()
		}
	}()
	return array.NewTable(values.Schema(), cols, int64(indices.Len())), nil
}
