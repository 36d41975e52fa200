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

	"github.com/arrowkit/selectcore/arrow"
)

// FixedSizeList is a list array where every element holds exactly N
// child values, so no offsets buffer is needed: element i occupies
// child values [i*N, (i+1)*N).
type FixedSizeList struct {
	array
	n      int32
	values arrow.Array
}

func NewFixedSizeListData(data arrow.ArrayData) *FixedSizeList {
	d := data.(*Data)
	d.Retain()
	l := &FixedSizeList{n: d.DataType().(*arrow.FixedSizeListType).Len()}
	l.setData(d)
	l.values = MakeFromData(d.Child(0))
	return l
}

// ValueOffsets returns the [start, end) range within Values() covered
// by the element at logical index i.
func (l *FixedSizeList) ValueOffsets(i int) (start, end int64) {
	idx := int64(i+l.data.Offset()) * int64(l.n)
	return idx, idx + int64(l.n)
}

func (l *FixedSizeList) Values() arrow.Array { return l.values }

func (l *FixedSizeList) Release() {
	l.values.Release()
	l.array.Release()
}

func (l *FixedSizeList) String() string {
	return fmt.Sprintf("fixed_size_list[%d], len=%d", l.n, l.Len())
}

var _ arrow.Array = (*FixedSizeList)(nil)
