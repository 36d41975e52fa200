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

import "errors"

// Sentinel errors for the selection kernels, wrapped with fmt.Errorf
// ("%w: ...") at the call site so callers can still errors.Is against
// the category while getting a specific message.
var (
	// ErrOutOfMemory is returned when an allocator fails to satisfy a
	// request. Not recoverable by retrying the same call.
	ErrOutOfMemory = errors.New("arrow/compute: out of memory")

	// ErrIndex is returned when an index value is out of bounds for
	// its target array (and BoundsCheck was not disabled).
	ErrIndex = errors.New("arrow/compute: index out of bounds")

	// ErrInvalid is returned for malformed inputs: wrong array length,
	// non-boolean filter, mismatched value/indices container shape,
	// and so on. Callers can fix the input and retry.
	ErrInvalid = errors.New("arrow/compute: invalid argument")

	// ErrNotImplemented is returned for container/type combinations
	// the metafunction dispatch table has no kernel for.
	ErrNotImplemented = errors.New("arrow/compute: not implemented")
)
