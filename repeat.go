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

import "golang.org/x/exp/constraints"

// Cloner is a type that can duplicate itself.
type Cloner[T any] interface {
	Clone() T
}

// Repeat returns a slice of n clones of v.
//
// v is evaluated once, by the caller, and cloned once per index; it is never
// stored in the result itself and remains valid afterwards. Aborts in Clone
// behave like aborts in the generator passed to [Build].
func Repeat[T Cloner[T], I constraints.Integer](v T, n I, opts ...Option[T]) []T {
	return RepeatFunc(v, n, func(v T) T { return v.Clone() }, opts...)
}

// RepeatFunc is like [Repeat], but uses clone to duplicate v.
func RepeatFunc[T any, I constraints.Integer](v T, n I, clone func(T) T, opts ...Option[T]) []T {
	return Build(n, func(I) T { return clone(v) }, opts...)
}

// Fill returns a slice of n copies of v, made by ordinary assignment.
//
// This is only correct for types where assignment is a complete copy; for
// anything that shares state through a pointer, use [Repeat] instead.
func Fill[T any, I constraints.Integer](v T, n I) []T {
	return Build(n, func(I) T { return v })
}
