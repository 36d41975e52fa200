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
	"sync/atomic"

	"github.com/arrowkit/selectcore/arrow"
)

// Record is a RecordBatch: an ordered set of equal-length columns
// sharing a schema, the row-major unit C7's "RecordBatch" container
// dispatches per-column Array/Array takes over.
type Record struct {
	refCount int64

	schema  *arrow.Schema
	columns []arrow.Array
	rows    int64
}

// NewRecord builds a Record over schema and columns, retaining each
// column. All columns must have equal length; NewRecord panics
// otherwise.
func NewRecord(schema *arrow.Schema, columns []arrow.Array, numRows int64) *Record {
	if schema.NumFields() != len(columns) {
		panic("arrow/array: number of columns does not match schema")
	}
	for i, c := range columns {
		if int64(c.Len()) != numRows {
			panic(fmt.Sprintf("arrow/array: column %d has length %d, expected %d", i, c.Len(), numRows))
		}
		c.Retain()
	}
	return &Record{refCount: 1, schema: schema, columns: columns, rows: numRows}
}

func (r *Record) Retain()  { atomic.AddInt64(&r.refCount, 1) }
func (r *Record) Release() {
	if atomic.AddInt64(&r.refCount, -1) != 0 {
		return
	}
	for _, c := range r.columns {
		c.Release()
	}
	r.columns = nil
}

func (r *Record) Schema() *arrow.Schema    { return r.schema }
func (r *Record) NumRows() int64           { return r.rows }
func (r *Record) NumCols() int             { return len(r.columns) }
func (r *Record) Column(i int) arrow.Array { return r.columns[i] }
func (r *Record) Columns() []arrow.Array   { return r.columns }

func (r *Record) String() string {
	return fmt.Sprintf("record, rows=%d, cols=%d", r.rows, len(r.columns))
}
