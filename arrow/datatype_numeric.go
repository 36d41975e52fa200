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

// the fixed-width numeric types. Each is a bare physical layout: the
// selection kernels dispatch on the concrete array.Primitive[T]
// instantiation rather than on these types, so there is deliberately
// no behavior here beyond identifying the type.

type Int8Type struct{}

func (*Int8Type) ID() Type            { return INT8 }
func (*Int8Type) Name() string        { return "int8" }
func (*Int8Type) String() string      { return "int8" }
func (*Int8Type) BitWidth() int       { return 8 }
func (t *Int8Type) Fingerprint() string { return typeFingerprint(t) }

type Int16Type struct{}

func (*Int16Type) ID() Type            { return INT16 }
func (*Int16Type) Name() string        { return "int16" }
func (*Int16Type) String() string      { return "int16" }
func (*Int16Type) BitWidth() int       { return 16 }
func (t *Int16Type) Fingerprint() string { return typeFingerprint(t) }

type Int32Type struct{}

func (*Int32Type) ID() Type            { return INT32 }
func (*Int32Type) Name() string        { return "int32" }
func (*Int32Type) String() string      { return "int32" }
func (*Int32Type) BitWidth() int       { return 32 }
func (t *Int32Type) Fingerprint() string { return typeFingerprint(t) }

type Int64Type struct{}

func (*Int64Type) ID() Type            { return INT64 }
func (*Int64Type) Name() string        { return "int64" }
func (*Int64Type) String() string      { return "int64" }
func (*Int64Type) BitWidth() int       { return 64 }
func (t *Int64Type) Fingerprint() string { return typeFingerprint(t) }

type Uint8Type struct{}

func (*Uint8Type) ID() Type            { return UINT8 }
func (*Uint8Type) Name() string        { return "uint8" }
func (*Uint8Type) String() string      { return "uint8" }
func (*Uint8Type) BitWidth() int       { return 8 }
func (t *Uint8Type) Fingerprint() string { return typeFingerprint(t) }

type Uint16Type struct{}

func (*Uint16Type) ID() Type            { return UINT16 }
func (*Uint16Type) Name() string        { return "uint16" }
func (*Uint16Type) String() string      { return "uint16" }
func (*Uint16Type) BitWidth() int       { return 16 }
func (t *Uint16Type) Fingerprint() string { return typeFingerprint(t) }

type Uint32Type struct{}

func (*Uint32Type) ID() Type            { return UINT32 }
func (*Uint32Type) Name() string        { return "uint32" }
func (*Uint32Type) String() string      { return "uint32" }
func (*Uint32Type) BitWidth() int       { return 32 }
func (t *Uint32Type) Fingerprint() string { return typeFingerprint(t) }

type Uint64Type struct{}

func (*Uint64Type) ID() Type            { return UINT64 }
func (*Uint64Type) Name() string        { return "uint64" }
func (*Uint64Type) String() string      { return "uint64" }
func (*Uint64Type) BitWidth() int       { return 64 }
func (t *Uint64Type) Fingerprint() string { return typeFingerprint(t) }

type Float32Type struct{}

func (*Float32Type) ID() Type            { return FLOAT32 }
func (*Float32Type) Name() string        { return "float32" }
func (*Float32Type) String() string      { return "float32" }
func (*Float32Type) BitWidth() int       { return 32 }
func (t *Float32Type) Fingerprint() string { return typeFingerprint(t) }

type Float64Type struct{}

func (*Float64Type) ID() Type            { return FLOAT64 }
func (*Float64Type) Name() string        { return "float64" }
func (*Float64Type) String() string      { return "float64" }
func (*Float64Type) BitWidth() int       { return 64 }
func (t *Float64Type) Fingerprint() string { return typeFingerprint(t) }

var (
	PrimitiveTypes = struct {
		Int8    *Int8Type
		Int16   *Int16Type
		Int32   *Int32Type
		Int64   *Int64Type
		Uint8   *Uint8Type
		Uint16  *Uint16Type
		Uint32  *Uint32Type
		Uint64  *Uint64Type
		Float32 *Float32Type
		Float64 *Float64Type
	}{
		Int8: &Int8Type{}, Int16: &Int16Type{}, Int32: &Int32Type{}, Int64: &Int64Type{},
		Uint8: &Uint8Type{}, Uint16: &Uint16Type{}, Uint32: &Uint32Type{}, Uint64: &Uint64Type{},
		Float32: &Float32Type{}, Float64: &Float64Type{},
	}
)
