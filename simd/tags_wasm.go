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

const featSimd128 Features = 1 << 0

var tagNames = []tagEntry{
	{featSimd128, "Simd128"},
}

// Simd128T is the WebAssembly 128-bit SIMD tag type.
type Simd128T struct{}

// Simd128 selects 128-bit WebAssembly SIMD. Superset of Scalar. A wasm
// engine rejects undetected vector instructions at module compile time,
// so there is nothing to probe at runtime; the tag exists for manually
// built sets.
var Simd128 Simd128T

func (Simd128T) features() Features { return featSimd128 }
func (Simd128T) Features() Features { return featSimd128 }
func (Simd128T) Implies() Features  { return featSimd128 }
func (t Simd128T) String() string   { return t.Features().String() }

// AtLeastSimd128 admits exactly the tags that guarantee SIMD128.
type AtLeastSimd128 interface {
	Tag
	Simd128T
}
