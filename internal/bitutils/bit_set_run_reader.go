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

package bitutils

import "github.com/arrowkit/selectcore/arrow/bitutil"

// SetBitRun is a contiguous run of set bits, described by its
// starting position (relative to the reader's start offset) and
// length.
type SetBitRun struct {
	Position int64
	Length   int64
}

// SetBitRunReader walks a bitmap forward, yielding each maximal run
// of consecutive set bits.
type SetBitRunReader struct {
	bitmap []byte
	offset int64
	length int64
	pos    int64
}

// NewSetBitRunReader creates a reader over length bits of bitmap
// starting at bit offset.
func NewSetBitRunReader(bitmap []byte, offset, length int64) *SetBitRunReader {
	return &SetBitRunReader{bitmap: bitmap, offset: offset, length: length}
}

// NextRun returns the next run of set bits, or a zero-length run once
// the reader is exhausted.
func (r *SetBitRunReader) NextRun() SetBitRun {
	for r.pos < r.length && !bitutil.BitIsSet(r.bitmap, int(r.offset+r.pos)) {
		r.pos++
	}
	if r.pos >= r.length {
		return SetBitRun{}
	}
	start := r.pos
	for r.pos < r.length && bitutil.BitIsSet(r.bitmap, int(r.offset+r.pos)) {
		r.pos++
	}
	return SetBitRun{Position: start, Length: r.pos - start}
}

// VisitSetBitRuns invokes visit(pos, length) for every maximal run of
// set bits in length bits of bitmap starting at bit offset.
func VisitSetBitRuns(bitmap []byte, offset, length int64, visit func(pos, length int64) error) error {
	if bitmap == nil {
		if length > 0 {
			return visit(0, length)
		}
		return nil
	}
	reader := NewSetBitRunReader(bitmap, offset, length)
	for {
		run := reader.NextRun()
		if run.Length == 0 {
			return nil
		}
		if err := visit(run.Position, run.Length); err != nil {
			return err
		}
	}
}
