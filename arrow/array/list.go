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
	"unsafe"

	"github.com/arrowkit/selectcore/arrow"
)

// List is a variable-length list array: a single int32 offsets
// buffer plus a values child, the way the spec's Non-goals scope List
// Take/Filter out of this module's own kernels (they're served by an
// external per-element kernel contract) while still needing a
// concrete representation to slice and pass through.
type List struct {
	array
	offsets []int32
	values  arrow.Array
}

func NewListData(data arrow.ArrayData) *List {
	d := data.(*Data)
	d.Retain()
	l := &List{}
	l.setData(d)
	if buf := d.Buffer(1); buf != nil {
		raw := buf.Bytes()
		l.offsets = boundOffsets(raw)
	}
	l.values = MakeFromData(d.Child(0))
	return l
}

// ValueOffsets returns the [start, end) element-offset range for the
// list at logical index i within Values().
func (l *List) ValueOffsets(i int) (start, end int64) {
	idx := i + l.data.Offset()
	return int64(l.offsets[idx]), int64(l.offsets[idx+1])
}

// Values returns the flattened child array every list's elements are
// drawn from.
func (l *List) Values() arrow.Array { return l.values }

func (l *List) Release() {
	l.values.Release()
	l.array.Release()
}

func (l *List) String() string {
	return fmt.Sprintf("list, len=%d", l.Len())
}

var _ arrow.Array = (*List)(nil)

// boundOffsets reinterprets raw as an []int32, the way the generic
// Primitive array does for its own value buffer.
func boundOffsets(raw []byte) []int32 {
	if len(raw) == 0 {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(&raw[0])), len(raw)/4)
}
