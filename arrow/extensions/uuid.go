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

// Package extensions holds concrete arrow.ExtensionType implementations,
// layered over a plain physical storage type the way the selection
// kernels expect: Take/Filter run entirely against Storage() and
// rewrap the result in the same extension.
package extensions

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/arrowkit/selectcore/arrow"
	"github.com/arrowkit/selectcore/arrow/array"
	"github.com/arrowkit/selectcore/arrow/memory"
)

// UUIDType is an extension type representing a FixedSizeBinary(16)
// as a google/uuid.UUID.
type UUIDType struct {
	arrow.BaseExtensionType
}

// NewUUIDType returns a UUIDType with the correct 16-byte storage.
func NewUUIDType() *UUIDType {
	return &UUIDType{BaseExtensionType: arrow.BaseExtensionType{
		Name_:   "uuid",
		Storage: &arrow.FixedSizeBinaryType{ByteWidth: 16},
	}}
}

var UUID = NewUUIDType()

// UUIDArray wraps a FixedSizeBinary(16) storage array with UUID value
// accessors.
type UUIDArray struct {
	*array.Extension
}

// WrapUUIDArray returns a UUIDArray view of data, whose DataType must
// be a *UUIDType.
func WrapUUIDArray(data arrow.ArrayData) *UUIDArray {
	ext := data.DataType().(*UUIDType)
	return &UUIDArray{Extension: array.NewExtensionData(data, ext)}
}

func (a *UUIDArray) Value(i int) uuid.UUID {
	if a.IsNull(i) {
		return uuid.Nil
	}
	raw := a.Storage().(*array.FixedSizeBinary).Value(i)
	return uuid.Must(uuid.FromBytes(raw))
}

func (a *UUIDArray) ValueStr(i int) string {
	if a.IsNull(i) {
		return "(null)"
	}
	return a.Value(i).String()
}

func (a *UUIDArray) String() string {
	return fmt.Sprintf("uuid array, len=%d", a.Len())
}

// UUIDBuilder builds a UUID extension array over a FixedSizeBinary(16)
// storage builder.
type UUIDBuilder struct {
	storage *array.FixedSizeBinaryBuilder
}

func NewUUIDBuilder(mem memory.Allocator) *UUIDBuilder {
	return &UUIDBuilder{storage: array.NewFixedSizeBinaryBuilder(mem, &arrow.FixedSizeBinaryType{ByteWidth: 16})}
}

func (b *UUIDBuilder) Append(v uuid.UUID) { b.storage.Append(v[:]) }
func (b *UUIDBuilder) AppendNull()        { b.storage.AppendNull() }
func (b *UUIDBuilder) Len() int           { return b.storage.Len() }

func (b *UUIDBuilder) NewArray() *UUIDArray {
	storageArr := b.storage.NewArray()
	defer storageArr.Release()
	data := array.NewData(NewUUIDType(), storageArr.Len(), storageArr.Data().(*array.Data).Buffers(), nil, storageArr.NullN(), 0)
	defer data.Release()
	return WrapUUIDArray(data)
}
