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

package contrib

import "github.com/mgood7123/corrade/simd"

// Sum adds up x. Detection never reports Simd128, but a caller may force
// it through SetActive on an engine known to accept vector code.
func Sum(x []float32) float32 {
	if Active().Has(simd.Simd128) {
		return sumLanes4(x)
	}
	return sumScalar(x)
}

// MulAdd computes out[i] += x[i] * y[i] over the common length of the
// three slices, dispatching like Sum.
func MulAdd(x, y, out []float32) {
	if Active().Has(simd.Simd128) {
		mulAddLanes4(x, y, out)
		return
	}
	mulAddScalar(x, y, out)
}

// SumWith is Sum for an explicit capability tag.
func SumWith[T simd.Tag](tag T, x []float32) float32 {
	if tag.Implies().IsSupersetOf(simd.Simd128) {
		return sumLanes4(x)
	}
	return sumScalar(x)
}

// MulAddWith is MulAdd for an explicit capability tag.
func MulAddWith[T simd.Tag](tag T, x, y, out []float32) {
	if tag.Implies().IsSupersetOf(simd.Simd128) {
		mulAddLanes4(x, y, out)
		return
	}
	mulAddScalar(x, y, out)
}
