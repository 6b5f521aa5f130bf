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


// Package arrayinit builds fixed-length sequences by calling a generator once
// per index.
//
// The element type does not need to be cheap, or even correct, to copy: each
// element is produced by the generator and moved into place exactly once. If
// the generator panics partway through, the elements produced so far are
// released exactly once, and nothing else is touched.
//
//	arrayinit.Build(3, func(i int) int { return i * 2 })        // [0 2 4]
//	arrayinit.Repeat(buf, 3)                                    // 3 clones of buf
//	arrayinit.Array[[2]string](func(int) string { return "x" }) // [x x]
//
// # Releasing
//
// Go is garbage collected, so most elements need no cleanup at all. Elements
// that do, such as open files or pooled buffers, implement [Releaser], or have
// a release function passed in with [WithRelease]. When a build is cut short,
// every element already built is released, most recent first.
//
// # Builders
//
// [Build], [Repeat] and [Array] are thin loops over a [Builder], which can be
// used directly when elements are produced by something other than a
// function of their index.
package arrayinit
