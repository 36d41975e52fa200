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

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arrowkit/selectcore/arrow/endian"
)

// Metadata is an immutable collection of key/value string pairs
// attached to a Field or Schema, such as provenance of a column
// produced by a take/filter operation.
type Metadata struct {
	keys   []string
	values []string
}

// NewMetadata builds a Metadata from parallel key/value slices. It
// panics if the slices have different lengths.
func NewMetadata(keys, values []string) Metadata {
	if len(keys) != len(values) {
		panic("arrow: len mismatch")
	}
	return Metadata{keys: keys, values: values}
}

// MetadataFrom builds a Metadata from a map, with the keys in sorted
// order so that String() and Equal are deterministic.
func MetadataFrom(kv map[string]string) Metadata {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	values := make([]string, 0, len(kv))
	for _, k := range keys {
		values = append(values, kv[k])
	}
	return Metadata{keys: keys, values: values}
}

func (m *Metadata) Len() int          { return len(m.keys) }
func (m *Metadata) Keys() []string    { return m.keys }
func (m *Metadata) Values() []string  { return m.values }

func (m *Metadata) clone() Metadata {
	if m.Len() == 0 {
		return Metadata{}
	}
	keys := make([]string, len(m.keys))
	values := make([]string, len(m.values))
	copy(keys, m.keys)
	copy(values, m.values)
	return Metadata{keys: keys, values: values}
}

// Equal reports whether m and other carry the same key/value pairs in
// the same order.
func (m Metadata) Equal(other Metadata) bool {
	if m.Len() != other.Len() {
		return false
	}
	for i := range m.keys {
		if m.keys[i] != other.keys[i] || m.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

// FindKey returns the index of key, or -1 if it is not present.
func (m *Metadata) FindKey(key string) int {
	for i, k := range m.keys {
		if k == key {
			return i
		}
	}
	return -1
}

// GetValue returns the value for key and whether it was found.
func (m *Metadata) GetValue(key string) (string, bool) {
	idx := m.FindKey(key)
	if idx < 0 {
		return "", false
	}
	return m.values[idx], true
}

// ToMap returns the metadata as a map, losing any duplicate-key or
// ordering information.
func (m *Metadata) ToMap() map[string]string {
	out := make(map[string]string, len(m.keys))
	for i, k := range m.keys {
		out[k] = m.values[i]
	}
	return out
}

func (m Metadata) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range m.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q: %q", m.keys[i], m.values[i])
	}
	b.WriteByte(']')
	return b.String()
}

// equalOption holds the comparison knobs TypeEqual accepts. Field and
// the nested types (List/Struct/Map, in datatype_nested.go) call
// TypeEqual on their children, so this lives alongside it rather than
// next to Field.
type equalOption struct {
	checkMetadata bool
}

// EqualOption configures a single TypeEqual/Field.Equal comparison.
type EqualOption func(*equalOption)

// CheckMetadata names metadata comparison as an EqualOption. TypeEqual
// does not consult its options, so passing it does not change
// TypeEqual's result; Field.Equal compares the two fields' Metadata
// whether or not it is passed.
func CheckMetadata() EqualOption {
	return func(o *equalOption) { o.checkMetadata = true }
}

// TypeEqual reports whether two data types are the same logical type,
// comparing by fingerprint so pointer identity is never required.
// Fingerprints don't encode metadata and opts are not consulted, so
// metadata nested inside a type (such as struct field metadata) never
// affects the result.
func TypeEqual(a, b DataType, opts ...EqualOption) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Fingerprint() == b.Fingerprint()
}

// Schema describes an ordered collection of fields, as carried by a
// RecordBatch or Table.
type Schema struct {
	fields   []Field
	index    map[string][]int
	meta     Metadata
	endian   endian.Endianness
}

// NewSchema returns a schema over fields, panicking if any field has
// a nil DataType. A nil metadata pointer means no metadata.
func NewSchema(fields []Field, metadata *Metadata) *Schema {
	return NewSchemaWithEndian(fields, metadata, endian.LittleEndian)
}

// NewSchemaWithEndian is like NewSchema but additionally records the
// byte order the schema was produced with.
func NewSchemaWithEndian(fields []Field, metadata *Metadata, e endian.Endianness) *Schema {
	s := &Schema{
		fields: make([]Field, len(fields)),
		index:  make(map[string][]int),
		endian: e,
	}
	copy(s.fields, fields)
	if metadata != nil {
		s.meta = metadata.clone()
	}
	for i, f := range s.fields {
		if f.Type == nil {
			panic("arrow: field with nil DataType")
		}
		s.index[f.Name] = append(s.index[f.Name], i)
	}
	return s
}

func (s *Schema) NumFields() int        { return len(s.fields) }
func (s *Schema) Field(i int) Field     { return s.fields[i] }
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}
func (s *Schema) Metadata() Metadata         { return s.meta }
func (s *Schema) Endianness() endian.Endianness { return s.endian }

// FieldsByName returns every field sharing the given name.
func (s *Schema) FieldsByName(name string) ([]Field, bool) {
	idxs, ok := s.index[name]
	if !ok {
		return nil, false
	}
	out := make([]Field, len(idxs))
	for i, idx := range idxs {
		out[i] = s.fields[idx]
	}
	return out, true
}

// HasField reports whether any field is named name.
func (s *Schema) HasField(name string) bool {
	_, ok := s.index[name]
	return ok
}

// FieldIndices returns the positions of every field named name.
func (s *Schema) FieldIndices(name string) []int { return s.index[name] }

// HasMetadata reports whether the schema carries any metadata.
func (s *Schema) HasMetadata() bool { return s.meta.Len() > 0 }

// WithEndianness returns a copy of s recorded with byte order e.
func (s *Schema) WithEndianness(e endian.Endianness) *Schema {
	return NewSchemaWithEndian(s.fields, &s.meta, e)
}

// AddField returns a copy of s with f inserted at position i, or an
// error if i is out of [0, NumFields()] range.
func (s *Schema) AddField(i int, f Field) (*Schema, error) {
	if i < 0 || i > len(s.fields) {
		return nil, fmt.Errorf("arrow: field index %d out of range [0, %d]", i, len(s.fields))
	}
	fields := make([]Field, 0, len(s.fields)+1)
	fields = append(fields, s.fields[:i]...)
	fields = append(fields, f)
	fields = append(fields, s.fields[i:]...)
	return NewSchemaWithEndian(fields, &s.meta, s.endian), nil
}

// Fingerprint returns a string that uniquely identifies the schema's
// field sequence and byte order, ignoring metadata.
func (s *Schema) Fingerprint() string {
	if s == nil {
		return "schema:nil"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "schema:%d:", s.endian)
	for _, f := range s.fields {
		b.WriteString(f.Fingerprint())
		b.WriteByte(';')
	}
	return b.String()
}

func (s *Schema) String() string {
	o := new(strings.Builder)
	o.WriteString("schema:\n")
	fmt.Fprintf(o, "  fields: %d\n", len(s.fields))
	for _, f := range s.fields {
		fmt.Fprintf(o, "    - %v\n", f)
	}
	out := strings.TrimRight(o.String(), "\n")
	if s.endian != endian.NativeEndian {
		out += "\n  endianness: " + s.endian.String()
	}
	if s.meta.Len() > 0 {
		out += "\n  metadata: " + s.meta.String()
	}
	return out
}

// Equal reports whether two schemas describe the same fields in the
// same order and were produced with the same endianness.
func (s *Schema) Equal(other *Schema) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	if s.endian != other.endian {
		return false
	}
	if len(s.fields) != len(other.fields) {
		return false
	}
	for i := range s.fields {
		if !s.fields[i].Equal(other.fields[i]) {
			return false
		}
	}
	return true
}
