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

// Package compute implements the take/filter selection kernels: a
// bit-block scanner, byte-width-dispatched gather kernels, a
// filter-to-indices builder, chunked/table/record dispatch, and the
// error taxonomy and options tying them together.
package compute

// NullSelectionBehavior controls how a null filter-mask entry
// contributes to a filter's output.
type NullSelectionBehavior int

const (
	// EmitNull emits a null output slot for every null mask entry,
	// in addition to one slot per true entry. This is the default,
	// matching the source engine's default.
	EmitNull NullSelectionBehavior = iota
	// Drop discards null mask entries entirely; the output carries
	// no nulls.
	Drop
)

// TakeOptions configures a take() call.
type TakeOptions struct {
	// BoundsCheck, when true (the default), verifies every non-null
	// index against the values length before use.
	BoundsCheck bool
}

// DefaultTakeOptions is the process-wide read-only default, built
// once and safe for concurrent reads, matching the spec's "default
// options singleton" design note.
var DefaultTakeOptions = TakeOptions{BoundsCheck: true}

// FilterOptions configures a get_take_indices()/filter() call.
type FilterOptions struct {
	NullSelection NullSelectionBehavior
}

// DefaultFilterOptions is the process-wide read-only default.
var DefaultFilterOptions = FilterOptions{NullSelection: EmitNull}
