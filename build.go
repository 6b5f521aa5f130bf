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
	"math"

	"golang.org/x/exp/constraints"
)

// Build returns a slice of n elements, where the element at index i is
// gen(i).
//
// gen is called exactly once per index, in ascending order. If it panics or
// calls [runtime.Goexit] at some index, it is not called again, the elements
// it already returned are released (see [Releaser] and [WithRelease]), and the
// panic continues unchanged. Nothing is recovered.
//
// gen may itself call Build; every call is independent.
//
// The returned slice has len and cap equal to n, and is never nil. Panics if
// n is negative.
func Build[T any, I constraints.Integer](n I, gen func(I) T, opts ...Option[T]) []T {
	b := NewBuilder(count(n), opts...)
	defer b.Abandon()

	for i := I(0); i < n; i++ {
		b.Push(gen(i))
	}
	return b.Finish()
}

// count converts a caller-provided length into an int, panicking if it does
// not fit.
func count[I constraints.Integer](n I) int {
	if n < 0 {
		panic(fmt.Sprintf("arrayinit: negative length %d", n))
	}
	if uint64(n) > math.MaxInt {
		panic(fmt.Sprintf("arrayinit: length %d overflows int", n))
	}
	return int(n)
}
