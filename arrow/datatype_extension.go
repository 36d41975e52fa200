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

// ExtensionType is a user-defined logical type layered over a
// physical storage type. Take/Filter never need to understand the
// semantics of an extension type: they operate on StorageType() and
// rewrap the result.
type ExtensionType interface {
	DataType
	// ExtensionName returns the unique name the extension is
	// registered under.
	ExtensionName() string
	// StorageType returns the physical data type backing this
	// extension, e.g. FixedSizeBinary(16) for a UUID extension.
	StorageType() DataType
}

// BaseExtensionType provides the DataType plumbing extension types
// typically share; concrete extensions embed it and only add
// ExtensionName/StorageType (or override them).
type BaseExtensionType struct {
	Name_    string
	Storage  DataType
}

func (e *BaseExtensionType) ID() Type              { return EXTENSION }
func (e *BaseExtensionType) Name() string          { return e.Name_ }
func (e *BaseExtensionType) String() string        { return "extension<" + e.Name_ + ">" }
func (e *BaseExtensionType) Fingerprint() string    { return typeFingerprint(e) + "{" + e.Name_ + e.Storage.Fingerprint() + "}" }
func (e *BaseExtensionType) ExtensionName() string  { return e.Name_ }
func (e *BaseExtensionType) StorageType() DataType  { return e.Storage }
