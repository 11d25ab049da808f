// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wasm

package simd

// Detect returns the instruction sets the build configuration already
// guarantees. A WebAssembly engine rejects vector instructions it was not
// told to accept when it compiles the module, not at runtime, so runtime
// probing cannot observe anything the compiler did not already know. The
// Go toolchain never emits SIMD128, hence the empty set.
func Detect() Features {
	return 0
}
