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

package arrow

import "github.com/arrowkit/selectcore/arrow/memory"

// ArrayData is the physical representation behind an Array: a data
// type, a logical length and offset into its buffers, a null count,
// and the buffers/children themselves. Selection kernels operate on
// ArrayData almost exclusively, constructing a new ArrayData for
// their output and letting the concrete array wrapper types in
// package array interpret it.
type ArrayData interface {
	// Retain increments the reference count by one.
	Retain()
	// Release decrements the reference count by one, freeing the
	// backing buffers once it reaches zero.
	Release()

	DataType() DataType
	Len() int
	Offset() int
	NullN() int

	Buffers() []*memory.Buffer
	// Buffer returns the i'th buffer, or nil if the array has fewer
	// than i+1 buffer slots (e.g. an all-valid array with no validity
	// bitmap).
	Buffer(i int) *memory.Buffer
	Children() []ArrayData
	// Child returns the i'th child ArrayData.
	Child(i int) ArrayData

	// Dictionary returns the dictionary values for a DICTIONARY typed
	// ArrayData, or nil otherwise.
	Dictionary() ArrayData
}

// Array is the logical, typed view over an ArrayData: it knows how to
// interpret the physical buffers as values of its DataType.
type Array interface {
	DataType() DataType
	Len() int
	NullN() int
	IsNull(i int) bool
	IsValid(i int) bool
	Data() ArrayData

	Retain()
	Release()

	String() string
}
