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

import "fmt"

// DictionaryType represents a dictionary-encoded ("categorical")
// column: physical storage is an index array of IndexType, whose
// values look up into a shared ValueType dictionary array.
type DictionaryType struct {
	IndexType DataType
	ValueType DataType
	Ordered   bool
}

func (*DictionaryType) ID() Type     { return DICTIONARY }
func (*DictionaryType) Name() string { return "dictionary" }
func (t *DictionaryType) String() string {
	return fmt.Sprintf("dictionary<values=%s, indices=%s, ordered=%t>", t.ValueType, t.IndexType, t.Ordered)
}
func (t *DictionaryType) Fingerprint() string {
	return typeFingerprint(t) + "{" + t.IndexType.Fingerprint() + t.ValueType.Fingerprint() + "}"
}

// BitWidth delegates to the physical index type, since that's what
// actually occupies space in the index buffer.
func (t *DictionaryType) BitWidth() int {
	if fw, ok := t.IndexType.(FixedWidthDataType); ok {
		return fw.BitWidth()
	}
	return 0
}
