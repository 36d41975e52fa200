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

// Package array provides the concrete, reference-counted
// implementations of arrow.Array and arrow.ArrayData: the physical
// buffers and typed wrappers that the selection kernels read from
// and write to.
package array

import (
	"sync/atomic"

	"github.com/arrowkit/selectcore/arrow"
	"github.com/arrowkit/selectcore/arrow/internal/debug"
	"github.com/arrowkit/selectcore/arrow/memory"
)

// Data is the concrete, reference-counted implementation of
// arrow.ArrayData.
type Data struct {
	refCount int64

	dtype  arrow.DataType
	length int
	offset int
	nullN  int

	buffers    []*memory.Buffer
	childData  []arrow.ArrayData
	dictionary arrow.ArrayData
}

// NewData builds an ArrayData from its constituent parts, retaining
// every buffer, child, and dictionary passed in. The caller retains
// ownership of its own references and should Release them as usual.
func NewData(dtype arrow.DataType, length int, buffers []*memory.Buffer, childData []arrow.ArrayData, nullN, offset int) *Data {
	d := &Data{
		refCount:  1,
		dtype:     dtype,
		length:    length,
		offset:    offset,
		nullN:     nullN,
		buffers:   make([]*memory.Buffer, len(buffers)),
		childData: make([]arrow.ArrayData, len(childData)),
	}
	for i, b := range buffers {
		if b != nil {
			b.Retain()
		}
		d.buffers[i] = b
	}
	for i, c := range childData {
		if c != nil {
			c.Retain()
		}
		d.childData[i] = c
	}
	return d
}

// NewDataWithDictionary is NewData for a DICTIONARY-typed array,
// additionally retaining a shared pointer to the dictionary values.
func NewDataWithDictionary(dtype arrow.DataType, length int, buffers []*memory.Buffer, nullN, offset int, dict arrow.ArrayData) *Data {
	d := NewData(dtype, length, buffers, nil, nullN, offset)
	if dict != nil {
		dict.Retain()
	}
	d.dictionary = dict
	return d
}

func (d *Data) Retain() { atomic.AddInt64(&d.refCount, 1) }

func (d *Data) Release() {
	debug.Assert(atomic.LoadInt64(&d.refCount) > 0, "too many releases")
	if atomic.AddInt64(&d.refCount, -1) != 0 {
		return
	}
	for _, b := range d.buffers {
		if b != nil {
			b.Release()
		}
	}
	for _, c := range d.childData {
		if c != nil {
			c.Release()
		}
	}
	if d.dictionary != nil {
		d.dictionary.Release()
	}
	d.buffers, d.childData, d.dictionary = nil, nil, nil
}

func (d *Data) DataType() arrow.DataType       { return d.dtype }
func (d *Data) Len() int                       { return d.length }
func (d *Data) Offset() int                    { return d.offset }
func (d *Data) NullN() int                     { return d.nullN }
func (d *Data) Buffers() []*memory.Buffer      { return d.buffers }
func (d *Data) Children() []arrow.ArrayData    { return d.childData }
func (d *Data) Dictionary() arrow.ArrayData    { return d.dictionary }

// Buffer returns the i'th buffer, or nil if the array has fewer than
// i+1 buffer slots (e.g. an all-valid array with no validity bitmap).
func (d *Data) Buffer(i int) *memory.Buffer {
	if i >= len(d.buffers) {
		return nil
	}
	return d.buffers[i]
}

// Child returns the i'th child ArrayData.
func (d *Data) Child(i int) arrow.ArrayData { return d.childData[i] }

var _ arrow.ArrayData = (*Data)(nil)
