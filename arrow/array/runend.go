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
	"sort"

	"github.com/arrowkit/selectcore/arrow"
)

// RunEndEncoded is a run-length encoded array: a run_ends child
// (always int32 in this module) paired with a values child, where
// run_ends[i] is the exclusive logical end index of the i'th run.
// C2's get_take_indices REE path and C7's "physical index, not
// logical index" rule both operate against this physical layout.
type RunEndEncoded struct {
	array
	runEnds *Primitive[int32]
	values  arrow.Array
}

func NewRunEndEncodedData(data arrow.ArrayData) *RunEndEncoded {
	d := data.(*Data)
	d.Retain()
	r := &RunEndEncoded{}
	r.setData(d)
	r.runEnds = NewPrimitiveData[int32](d.Child(0))
	r.values = MakeFromData(d.Child(1))
	return r
}

// RunEnds returns the physical run-ends child array.
func (r *RunEndEncoded) RunEnds() *Primitive[int32] { return r.runEnds }

// Values returns the physical values child array, one entry per run.
func (r *RunEndEncoded) Values() arrow.Array { return r.values }

// PhysicalIndex returns the index into Values() that covers logical
// index i, via binary search over RunEnds. Panics if i is out of
// bounds, matching the C++ original's ree_util::FindPhysicalIndex.
func (r *RunEndEncoded) PhysicalIndex(i int) int {
	logical := i + r.data.Offset()
	ends := r.runEnds.Values()
	phys := sort.Search(len(ends), func(k int) bool { return int(ends[k]) > logical })
	if phys >= len(ends) {
		panic("arrow/array: run-end-encoded index out of range")
	}
	return phys
}

func (r *RunEndEncoded) IsNull(i int) bool  { return r.values.IsNull(r.PhysicalIndex(i)) }
func (r *RunEndEncoded) IsValid(i int) bool { return r.values.IsValid(r.PhysicalIndex(i)) }

func (r *RunEndEncoded) Release() {
	r.runEnds.Release()
	r.values.Release()
	r.array.Release()
}

func (r *RunEndEncoded) String() string {
	return fmt.Sprintf("run_length_encoded, len=%d, runs=%d", r.Len(), r.runEnds.Len())
}

var _ arrow.Array = (*RunEndEncoded)(nil)
