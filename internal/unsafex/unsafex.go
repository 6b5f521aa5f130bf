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


// Package unsafex contains the unsafe layout helpers used to build directly
// into array storage.
//
// Importing this package should be treated as equivalent to importing unsafe.
package unsafex

import (
	"fmt"
	"unsafe"
)

// Layout is the layout of a type.
type Layout struct {
	Size, Align int
}

// LayoutOf returns the layout of some type.
func LayoutOf[T any]() Layout {
	var v T
	return Layout{
		Size:  int(unsafe.Sizeof(v)),
		Align: int(unsafe.Alignof(v)),
	}
}

// ArrayData returns a slice of length n that aliases the elements of the
// array pointed to by p.
//
// A must be an array type with n elements of type E. Because Go cannot
// express that constraint, the caller is expected to have checked it already;
// this function only verifies that the sizes agree, and panics otherwise.
func ArrayData[E, A any](p *A, n int) []E {
	if n*LayoutOf[E]().Size != LayoutOf[A]().Size || LayoutOf[E]().Align != LayoutOf[A]().Align {
		panic(badArray[E, A]{n})
	}
	if n == 0 {
		return []E{}
	}
	return unsafe.Slice((*E)(unsafe.Pointer(p)), n)
}

type badArray[E, A any] struct{ n int }

func (b badArray[E, A]) Error() string {
	var e E
	var a A
	return fmt.Sprintf(
		"unsafex: %T is not laid out like %d %T (%d != %d*%d)",
		a, b.n, e,
		LayoutOf[A]().Size, b.n, LayoutOf[E]().Size,
	)
}
