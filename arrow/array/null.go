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

import "github.com/arrowkit/selectcore/arrow"

// Null is an array every one of whose slots is null; it has no
// physical storage at all.
type Null struct{ array }

// NewNullData wraps data (whose DataType must be *arrow.NullType) in
// a Null array, retaining data.
func NewNullData(data arrow.ArrayData) *Null {
	n := &Null{}
	d := data.(*Data)
	d.Retain()
	n.setData(d)
	return n
}

// NewNull returns a new length-n Null array of all-null values.
func NewNull(n int) *Null {
	data := NewData(&arrow.NullType{}, n, nil, nil, n, 0)
	defer data.Release()
	return NewNullData(data)
}

func (n *Null) IsNull(int) bool  { return true }
func (n *Null) IsValid(int) bool { return false }

var _ arrow.Array = (*Null)(nil)
