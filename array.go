// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package arrayinit

import (
	"fmt"
	"reflect"

	"github.com/bufbuild/arrayinit/internal/unsafex"
)

// Array is like [Build], but produces a Go array instead of a slice. The
// length of the array type A is the number of elements.
//
// Elements are written straight into the array that is returned, so there is
// no intermediate slice to copy out of.
//
// A must be an array type whose element type is exactly T; otherwise, Array
// panics before calling gen:
//
//	squares := arrayinit.Array[[4]int](func(i int) int { return i * i })
func Array[A, T any](gen func(int) T, opts ...Option[T]) A {
	n := arrayLen[A, T]()

	var out A
	b := newBuilder(unsafex.ArrayData[T](&out, n), opts)
	defer b.Abandon()

	for i := range n {
		b.Push(gen(i))
	}
	b.Finish()
	return out
}

// arrayLen returns the length of A, which must be an array of T.
func arrayLen[A, T any]() int {
	ty := reflect.TypeFor[A]()
	elem := reflect.TypeFor[T]()
	if ty.Kind() != reflect.Array || ty.Elem() != elem {
		panic(fmt.Sprintf("arrayinit: %v is not an array of %v", ty, elem))
	}
	return ty.Len()
}
