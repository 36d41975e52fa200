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

// Extension wraps a storage array with its logical ExtensionType.
// C5's extension Take/Filter path runs the kernel entirely against
// Storage() and rewraps the result; it never needs to know what the
// extension means.
type Extension struct {
	array
	ext     arrow.ExtensionType
	storage arrow.Array
}

// NewExtensionData wraps data (whose DataType is ext) in an Extension
// array around its physical storage.
func NewExtensionData(data arrow.ArrayData, ext arrow.ExtensionType) *Extension {
	d := data.(*Data)
	d.Retain()
	e := &Extension{ext: ext}
	e.setData(d)
	storageData := NewData(ext.StorageType(), d.Len(), d.Buffers(), d.Children(), d.NullN(), d.Offset())
	defer storageData.Release()
	e.storage = MakeFromData(storageData)
	return e
}

// Storage returns the array's physical representation.
func (e *Extension) Storage() arrow.Array { return e.storage }

// ExtensionType returns the logical type this array was wrapped with.
func (e *Extension) ExtensionType() arrow.ExtensionType { return e.ext }

func (e *Extension) Release() {
	e.storage.Release()
	e.array.Release()
}

func (e *Extension) String() string {
	return fmt.Sprintf("%s extension array, storage=%s", e.ext.ExtensionName(), e.storage)
}

var _ arrow.Array = (*Extension)(nil)
