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

// Option configures a [Builder], or one of the functions that uses one.
type Option[T any] func(*config[T])

type config[T any] struct {
	release func(T)
}

// WithRelease sets the function used to release elements of an abandoned
// [Builder], overriding [Releaser].
//
// This is useful for element types that cannot carry a Release method, such
// as file descriptors or slices of handles.
func WithRelease[T any](release func(T)) Option[T] {
	return func(c *config[T]) {
		c.release = release
	}
}

// releaseFunc returns the function to call on each abandoned element.
func (c *config[T]) releaseFunc() func(T) {
	if c.release != nil {
		return c.release
	}
	return releaseAny[T]
}

func releaseAny[T any](v T) {
	if r, ok := any(v).(Releaser); ok {
		r.Release()
	}
}
