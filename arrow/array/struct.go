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

// Struct is a nested array whose children share the parent's logical
// length. compute.TakeArray has no struct kernel: it returns
// ErrNotImplemented for a Struct.
type Struct struct {
	array
	fields []arrow.Array
}

func NewStructData(data arrow.ArrayData) *Struct {
	d := data.(*Data)
	d.Retain()
	s := &Struct{fields: make([]arrow.Array, len(d.Children()))}
	s.setData(d)
	for i, c := range d.Children() {
		s.fields[i] = MakeFromData(c)
	}
	return s
}

// Field returns the i'th child array.
func (s *Struct) Field(i int) arrow.Array { return s.fields[i] }

// NumField returns the number of child arrays.
func (s *Struct) NumField() int { return len(s.fields) }

func (s *Struct) Release() {
	for _, f := range s.fields {
		f.Release()
	}
	s.array.Release()
}

func (s *Struct) String() string {
	return fmt.Sprintf("struct, len=%d, fields=%d", s.Len(), len(s.fields))
}

var _ arrow.Array = (*Struct)(nil)
