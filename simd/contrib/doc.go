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

// Package contrib provides vectorizable reference kernels dispatched
// through the simd package.
//
// Every kernel exists in several variants keyed by capability level, all
// of them agreeing with the scalar reference up to floating-point
// reassociation. The exported entry points pick a variant two ways:
//
//   - Sum and MulAdd consult a package-level Features value cached from
//     simd.Detect() at startup (runtime dispatch). The cache can be
//     inspected with Active and replaced with SetActive, and setting the
//     SIMD_DISABLE environment variable forces it to scalar.
//
//   - SumWith and MulAddWith take an explicit capability tag and resolve
//     the most specific variant that tag guarantees (compile-time
//     dispatch); pass simd.Default to use what the build configuration
//     already promises.
//
// The variants here are plain Go loops with wider accumulator unrolling
// at higher levels; they stand in for real vector kernels and keep the
// dispatch machinery honest.
package contrib
