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

// Table is an ordered set of equal-logical-length Chunked columns
// whose chunk boundaries are independent per column, the C7 "Table"
// container.
type Table struct {
	refCount int64

	schema  *arrow.Schema
	columns []*Chunked
	rows    int64
}

// NewTable builds a Table over schema and columns, retaining each
// column. All columns must have equal logical length; NewTable
// panics otherwise.
func NewTable(schema *arrow.Schema, columns []*Chunked, numRows int64) *Table {
	if schema.NumFields() != len(columns) {
		panic("arrow/array: number of columns does not match schema")
	}
	for i, c := range columns {
		if int64(c.Len()) != numRows {
			panic(fmt.Sprintf("arrow/array: column %d has length %d, expected %d", i, c.Len(), numRows))
		}
		c.Retain()
	}
	return &Table{refCount: 1, schema: schema, columns: columns, rows: numRows}
}

func (t *Table) Retain()  { atomic.AddInt64(&t.refCount, 1) }
func (t *Table) Release() {
	if atomic.AddInt64(&t.refCount, -1) != 0 {
		return
	}
	for _, c := range t.columns {
		c.Release()
	}
	t.columns = nil
}

func (t *Table) Schema() *arrow.Schema  { return t.schema }
func (t *Table) NumRows() int64        { return t.rows }
func (t *Table) NumCols() int          { return len(t.columns) }
func (t *Table) Column(i int) *Chunked { return t.columns[i] }

func (t *Table) String() string {
	return fmt.Sprintf("table, rows=%d, cols=%d", t.rows, len(t.columns))
}
