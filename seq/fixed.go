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


package seq

import (
	"slices"

	"github.com/bufbuild/arrayinit"
)

// Fixed is a sequence whose length is set when it is built and never
// changes afterwards. It implements [Setter], but deliberately has no way to
// insert or delete.
//
// A zero Fixed is empty.
type Fixed[T any] struct {
	elems []T
}

var _ Setter[int] = Fixed[int]{}

// Build builds a [Fixed] of length n whose element at index i is gen(i).
//
// See [arrayinit.Build] for what happens when gen panics.
func Build[T any](n int, gen func(int) T, opts ...arrayinit.Option[T]) Fixed[T] {
	return Fixed[T]{arrayinit.Build(n, gen, opts...)}
}

// NewFixed wraps a slice in a [Fixed]. The slice is clipped, so appending to
// it afterwards cannot affect the returned value's length.
func NewFixed[T any](elems []T) Fixed[T] {
	return Fixed[T]{slices.Clip(elems)}
}

// Len implements [Indexer].
func (f Fixed[T]) Len() int {
	return len(f.elems)
}

// At implements [Indexer].
func (f Fixed[T]) At(idx int) T {
	return f.elems[idx]
}

// SetAt implements [Setter].
func (f Fixed[T]) SetAt(idx int, value T) {
	f.elems[idx] = value
}

// Slice returns the elements of f. The result aliases f.
func (f Fixed[T]) Slice() []T {
	return f.elems
}
