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

	"github.com/petermattis/goid"
)

// Releaser is implemented by elements that hold resources which must be let
// go of when a partially built sequence is thrown away.
//
// Release is only ever called by a [Builder] that is being abandoned, and only
// on elements that it will never hand out. A finished sequence is never
// released by this package: at that point, the caller owns the elements.
type Releaser interface {
	Release()
}

// Builder is a fixed-capacity buffer that is filled one element at a time.
//
// A Builder tracks how many of its leading slots hold elements. If it is
// abandoned before it is full, it releases exactly those elements, each once,
// and never touches the rest. Once full, [Builder.Finish] hands the storage
// to the caller and the Builder forgets it.
//
// The intended usage is
//
//	b := arrayinit.NewBuilder[T](n)
//	defer b.Abandon()
//	for ... {
//		b.Push(...)
//	}
//	return b.Finish()
//
// which releases the pushed prefix if anything in the loop panics or calls
// [runtime.Goexit], and does nothing otherwise.
//
// A Builder belongs to the goroutine that created it, and panics if it is
// used from any other.
type Builder[T any] struct {
	// Invariants:
	// 1. slots[:len] hold pushed elements, slots[len:] hold zero values.
	// 2. len only ever grows, by one, after the slot write.
	// 3. slots is nil once the builder is finished or abandoned.
	slots []T
	len   int

	release func(T)
	owner   int64
	state   builderState
}

type builderState byte

const (
	building builderState = iota
	finished
	abandoned
)

// NewBuilder returns a builder with room for exactly n elements.
//
// Panics if n is negative.
func NewBuilder[T any](n int, opts ...Option[T]) *Builder[T] {
	if n < 0 {
		panic(fmt.Sprintf("arrayinit: negative length %d", n))
	}
	return newBuilder(make([]T, n), opts)
}

// newBuilder returns a builder that fills slots, which must be all zeros.
func newBuilder[T any](slots []T, opts []Option[T]) *Builder[T] {
	var c config[T]
	for _, opt := range opts {
		opt(&c)
	}

	return &Builder[T]{
		slots:   slots,
		release: c.releaseFunc(),
		owner:   goid.Get(),
	}
}

// Len returns the number of elements pushed so far.
func (b *Builder[T]) Len() int {
	return b.len
}

// Cap returns the number of elements this builder was created for.
//
// Returns zero once the builder is finished or abandoned.
func (b *Builder[T]) Cap() int {
	return len(b.slots)
}

// Full returns whether every slot has been pushed to.
func (b *Builder[T]) Full() bool {
	return b.state == building && b.len == len(b.slots)
}

// Push writes v into the next empty slot.
//
// Panics if the builder is already full, finished, or abandoned.
func (b *Builder[T]) Push(v T) {
	b.check("Push")
	if b.len == len(b.slots) {
		panic(fmt.Sprintf("arrayinit: Push on full builder of length %d", len(b.slots)))
	}

	b.slots[b.len] = v
	b.len++
}

// Finish returns the built sequence, which has length and capacity equal to
// [Builder.Cap]. After this, the builder is empty and [Builder.Abandon] does
// nothing.
//
// Panics if the builder is not full.
func (b *Builder[T]) Finish() []T {
	b.check("Finish")
	if b.len != len(b.slots) {
		panic(fmt.Sprintf("arrayinit: Finish after %d of %d elements", b.len, len(b.slots)))
	}

	out := b.slots
	b.slots = nil
	b.len = 0
	b.state = finished
	return out
}

// Abandon releases every element pushed so far, in reverse order, and
// discards the builder's storage.
//
// Calling Abandon more than once, or after [Builder.Finish], does nothing.
//
// If releasing an element panics, the elements before it are still released
// before the panic continues.
func (b *Builder[T]) Abandon() {
	if b.state != building {
		return
	}
	b.check("Abandon")
	b.state = abandoned

	defer func() { b.slots = nil }()
	b.drain()
}

// drain releases and zeroes slots[:len], back to front.
func (b *Builder[T]) drain() {
	defer func() {
		// Only non-zero if release panicked.
		if b.len > 0 {
			b.drain()
		}
	}()

	var zero T
	for b.len > 0 {
		b.len--
		v := b.slots[b.len]
		b.slots[b.len] = zero
		b.release(v)
	}
}

// check panics if b cannot be used by the calling goroutine.
func (b *Builder[T]) check(op string) {
	switch b.state {
	case finished:
		panic(fmt.Sprintf("arrayinit: %s on finished builder", op))
	case abandoned:
		panic(fmt.Sprintf("arrayinit: %s on abandoned builder", op))
	}

	if id := goid.Get(); id != b.owner {
		panic(fmt.Sprintf("arrayinit: %s from goroutine %d on builder owned by goroutine %d", op, id, b.owner))
	}
}
