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

// Package simd provides compile-time and runtime CPU instruction set
// detection and dispatch.
//
// The package defines capability tags for x86, ARM and WebAssembly
// instruction sets (Sse2, Avx2, Neon, Simd128, ...) together with a
// Features bitmask that can hold an arbitrary combination of them. Only
// the tags of the compiled GOARCH exist; referring to another
// architecture's tags is a compile error.
//
// # Compile-time dispatch
//
// Each tag is a distinct zero-size type, so an algorithm can be provided
// as a family of variants and a generic front constrained by the tag:
//
//	func Sum[T simd.Tag](tag T, x []float32) float32 {
//		imp := tag.Implies()
//		switch {
//		case imp.IsSupersetOf(simd.Make(simd.Avx2)):
//			return sumAvx2(x)
//		case imp.IsSupersetOf(simd.Make(simd.Sse3)):
//			return sumSse3(x)
//		default:
//			return sumScalar(x)
//		}
//	}
//
// For a concrete tag the switch folds to a single branch. Calling the
// family with a stronger tag than a variant needs still picks the most
// specific variant that tag guarantees: Sum(simd.Sse42, x) runs the SSE3
// variant above, never the AVX2 one and never the scalar fallback. The
// AtLeast* constraints go one step further and reject a too-weak tag at
// compile time:
//
//	func SumAvx2[T simd.AtLeastAvx2](tag T, x []float32) float32
//
// simd.Default names the strongest tag the build configuration already
// guarantees (for example Avx2 when built with GOAMD64=v3), so simple
// call sites need no explicit tag and no runtime check.
//
// # Runtime dispatch
//
// Detect queries the processor once and returns every instruction set the
// CPU and operating system support. The result is an ordinary value;
// detect once, keep the value, and test it in capability order:
//
//	features := simd.Detect()
//	switch {
//	case features.Has(simd.Avx2):
//		// ...
//	case features.Has(simd.Sse41):
//		// ...
//	default:
//		// scalar
//	}
//
// Nothing stops a caller from editing the detected set, either to avoid a
// known-slow path or to force one that failed autodetection; the package
// never verifies a Features value against real hardware.
package simd
