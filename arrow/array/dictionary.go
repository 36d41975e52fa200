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

// Dictionary is a dictionary-encoded ("categorical") array: an index
// array (physical storage, any fixed-width integer type) paired with
// a shared dictionary array of values. C5's dictionary Take kernel
// only ever rewrites the indices and shares the dictionary pointer,
// never copying the values.
type Dictionary struct {
	array
	indices arrow.Array
}

// NewDictionaryData wraps data (whose DataType is *arrow.DictionaryType
// and whose Dictionary() is non-nil) in a Dictionary array.
func NewDictionaryData(data arrow.ArrayData) *Dictionary {
	d := data.(*Data)
	d.Retain()
	dict := &Dictionary{}
	dict.setData(d)
	dict.indices = makeIndices(d)
	return dict
}

// makeIndices wraps the DictionaryType's physical index buffer in a
// plain array without going through the dictionary-typed DataType, so
// that Indices() exposes the raw index values.
func makeIndices(d *Data) arrow.Array {
	dt := d.DataType().(*arrow.DictionaryType)
	indexData := NewData(dt.IndexType, d.Len(), d.Buffers(), nil, d.NullN(), d.Offset())
	defer indexData.Release()
	return MakeFromData(indexData)
}

// Indices returns the physical index array; its values are offsets
// into Dictionary().
func (d *Dictionary) Indices() arrow.Array { return d.indices }

// Dictionary returns a new array over the shared dictionary values.
// Each call's array holds its own reference to the dictionary data,
// which that array's Release gives back.
func (d *Dictionary) Dictionary() arrow.Array {
	dict := d.data.Dictionary()
	if dict == nil {
		return nil
	}
	return MakeFromData(dict)
}

func (d *Dictionary) Release() {
	d.indices.Release()
	d.array.Release()
}

func (d *Dictionary) String() string {
	return fmt.Sprintf("dictionary, len=%d, nulls=%d, indices=%s", d.Len(), d.NullN(), d.indices)
}

var _ arrow.Array = (*Dictionary)(nil)
