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

//go:build !amd64 && !arm64

package simd

// DefaultT is the strongest tag type the build configuration guarantees.
// This includes wasm: the Go toolchain never emits WebAssembly SIMD128,
// so even there nothing beyond scalar may be assumed.
type DefaultT = ScalarT

// Default is the strongest tag guaranteed by the build configuration.
var Default DefaultT
