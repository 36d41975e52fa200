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

// Package endian exposes the byte order used when reinterpreting raw
// buffers as machine words. The selection kernels only ever run on the
// little-endian hosts this module targets, so Native is fixed rather
// than probed at init time.
package endian

import "encoding/binary"

// Native is the byte order used to decode/encode words embedded in
// Arrow buffers.
var Native = binary.LittleEndian

// IsBigEndian reports whether the host requires byte-swapping, which
// is never the case for the little-endian order this module assumes.
const IsBigEndian = false

// Endianness records which byte order a schema was written with, so
// that a Table or RecordBatch read from another process can be
// identified even though this module itself only computes in
// little-endian.
type Endianness int8

const (
	LittleEndian Endianness = iota
	BigEndian
)

// NativeEndian and NonNativeEndian name the byte order of this host
// and its opposite; since IsBigEndian is always false for the hosts
// this module targets, NativeEndian is always LittleEndian.
const (
	NativeEndian    = LittleEndian
	NonNativeEndian = BigEndian
)

func (e Endianness) String() string {
	switch e {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return "unknown"
	}
}
