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


package arrayinit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/arrayinit"
)

func TestBuilder(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var tr tracker
	b := arrayinit.NewBuilder[handle](3)
	assert.Equal(0, b.Len())
	assert.Equal(3, b.Cap())
	assert.False(b.Full())

	for i := range 3 {
		b.Push(tr.handle(i))
		assert.Equal(i+1, b.Len())
	}
	assert.True(b.Full())

	out := b.Finish()
	assert.Equal([]int{0, 1, 2}, ids(out))
	assert.Equal(3, cap(out))
	assert.Equal(0, b.Cap())
	assert.False(b.Full())

	b.Abandon()
	assert.Empty(tr.released)
	assert.Equal([]int{0, 1, 2}, ids(out))
}

func TestBuilderAbandon(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var tr tracker
	b := arrayinit.NewBuilder[handle](5)
	b.Push(tr.handle(7))
	b.Push(tr.handle(8))

	b.Abandon()
	assert.Equal([]int{8, 7}, tr.released)
	assert.Equal(0, b.Len())
	assert.Equal(0, b.Cap())

	b.Abandon()
	assert.Equal([]int{8, 7}, tr.released)

	// A builder that was never pushed to has nothing to release.
	empty := arrayinit.NewBuilder[handle](5)
	empty.Abandon()
	assert.Equal([]int{8, 7}, tr.released)
}

func TestBuilderDeferred(t *testing.T) {
	t.Parallel()

	var tr tracker
	build := func(abort bool) []handle {
		b := arrayinit.NewBuilder[handle](4)
		defer b.Abandon()

		for i := range 4 {
			if abort && i == 2 {
				panic("abort")
			}
			b.Push(tr.handle(i))
		}
		return b.Finish()
	}

	assert.Equal(t, []int{0, 1, 2, 3}, ids(build(false)))
	assert.Empty(t, tr.released)

	assert.PanicsWithValue(t, "abort", func() { build(true) })
	assert.Equal(t, []int{1, 0}, tr.released)
}

func TestBuilderReleasePanics(t *testing.T) {
	t.Parallel()

	var released []int
	b := arrayinit.NewBuilder(3, arrayinit.WithRelease(func(v int) {
		released = append(released, v)
		if v == 1 {
			panic("release")
		}
	}))
	for i := range 3 {
		b.Push(i)
	}

	assert.PanicsWithValue(t, "release", b.Abandon)
	assert.Equal(t, []int{2, 1, 0}, released)
	assert.Equal(t, 0, b.Cap())

	b.Abandon()
	assert.Equal(t, []int{2, 1, 0}, released)
}

func TestBuilderMisuse(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "arrayinit: negative length -2", func() {
		arrayinit.NewBuilder[int](-2)
	})

	full := arrayinit.NewBuilder[int](1)
	full.Push(1)
	assert.PanicsWithValue(t, "arrayinit: Push on full builder of length 1", func() { full.Push(2) })
	assert.Equal(t, 1, full.Len())

	early := arrayinit.NewBuilder[int](2)
	early.Push(1)
	assert.PanicsWithValue(t, "arrayinit: Finish after 1 of 2 elements", func() { early.Finish() })

	finished := arrayinit.NewBuilder[int](0)
	finished.Finish()
	assert.PanicsWithValue(t, "arrayinit: Push on finished builder", func() { finished.Push(1) })
	assert.PanicsWithValue(t, "arrayinit: Finish on finished builder", func() { finished.Finish() })

	abandoned := arrayinit.NewBuilder[int](2)
	abandoned.Abandon()
	assert.PanicsWithValue(t, "arrayinit: Push on abandoned builder", func() { abandoned.Push(1) })
}

func TestBuilderOwner(t *testing.T) {
	t.Parallel()

	b := arrayinit.NewBuilder[int](2)
	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.Panics(t, func() { b.Push(1) })
		assert.Panics(t, b.Abandon)
	}()
	<-done

	assert.Equal(t, 0, b.Len())
	b.Push(1)
	b.Push(2)
	assert.Equal(t, []int{1, 2}, b.Finish())
}
