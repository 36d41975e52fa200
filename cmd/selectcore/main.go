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

// Command selectcore is a small demonstrator for the take/filter
// selection core: it builds int64 values and index/filter arrays from
// comma-separated literals and prints the result of get-take-indices,
// take, and filter.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/docopt/docopt-go"

	"github.com/arrowkit/selectcore/arrow"
	"github.com/arrowkit/selectcore/arrow/array"
	"github.com/arrowkit/selectcore/arrow/compute"
	"github.com/arrowkit/selectcore/arrow/memory"
)

const usage = `selectcore.

Usage:
  selectcore -h | --help
  selectcore take --values=VALUES --indices=INDICES [--no-boundscheck]
  selectcore filter --values=VALUES --filter=FILTER [--null-selection=POLICY]

Options:
  -h --help                 Show this screen.
  --values=VALUES            Comma-separated int64 values; "null" marks a null slot.
  --indices=INDICES          Comma-separated int64 indices; "null" marks a null index.
  --filter=FILTER             Comma-separated booleans; "true"/"false"/"null".
  --null-selection=POLICY     "emit_null" (default) or "drop".
  --no-boundscheck             Disable index bounds checking.`

func main() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		log.Fatal(err)
	}
	var config struct {
		Take            bool
		Filter          bool
		Values          string
		Indices         string
		FilterLit       string `docopt:"--filter"`
		NullSelection   string `docopt:"--null-selection"`
		NoBoundscheck   bool   `docopt:"--no-boundscheck"`
	}
	opts.Bind(&config)

	mem := memory.NewGoAllocator()
	values := buildInt64Array(mem, config.Values)
	defer values.Release()

	switch {
	case config.Take:
		indices := buildInt64Array(mem, config.Indices)
		defer indices.Release()
		out, err := compute.TakeArray(values, indices, compute.TakeOptions{BoundsCheck: !config.NoBoundscheck}, mem)
		if err != nil {
			log.Fatalf("take: %v", err)
		}
		defer out.Release()
		fmt.Println(out)
	case config.Filter:
		filter := buildBooleanArray(mem, config.FilterLit)
		defer filter.Release()
		fopts := compute.DefaultFilterOptions
		if strings.EqualFold(config.NullSelection, "drop") {
			fopts = compute.FilterOptions{NullSelection: compute.Drop}
		}
		indices, err := compute.GetTakeIndices(filter, fopts, mem)
		if err != nil {
			log.Fatalf("get_take_indices: %v", err)
		}
		defer indices.Release()
		fmt.Println("indices:", indices)

		out, err := compute.Filter(values, filter, fopts, mem)
		if err != nil {
			log.Fatalf("filter: %v", err)
		}
		defer out.Release()
		fmt.Println("filtered:", out)
	default:
		fmt.Fprintln(os.Stderr, "nothing to do: pass take or filter")
		os.Exit(1)
	}
}

func buildInt64Array(mem memory.Allocator, lit string) *array.Primitive[int64] {
	b := array.NewPrimitiveBuilder[int64](mem, &arrow.Int64Type{})
	for _, tok := range splitLiteral(lit) {
		if tok == "null" {
			b.AppendNull()
			continue
		}
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			log.Fatalf("invalid int64 literal %q: %v", tok, err)
		}
		b.Append(v)
	}
	return b.NewArray()
}

func buildBooleanArray(mem memory.Allocator, lit string) *array.Boolean {
	b := array.NewBooleanBuilder(mem)
	for _, tok := range splitLiteral(lit) {
		switch tok {
		case "null":
			b.AppendNull()
		case "true":
			b.Append(true)
		case "false":
			b.Append(false)
		default:
			log.Fatalf("invalid boolean literal %q", tok)
		}
	}
	return b.NewArray()
}

func splitLiteral(lit string) []string {
	if lit == "" {
		return nil
	}
	parts := strings.Split(lit, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
