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

//go:build amd64

package contrib

import "github.com/mgood7123/corrade/simd"

// Sum adds up x with the widest variant the active feature set allows.
func Sum(x []float32) float32 {
	f := Active()
	switch {
	case f.Has(simd.Avx2):
		return sumLanes8(x)
	case f.Has(simd.Sse41):
		return sumLanes4(x)
	default:
		return sumScalar(x)
	}
}

// MulAdd computes out[i] += x[i] * y[i] over the common length of the
// three slices, dispatching like Sum.
func MulAdd(x, y, out []float32) {
	f := Active()
	switch {
	case f.Has(simd.Avx2):
		mulAddLanes8(x, y, out)
	case f.Has(simd.Sse41):
		mulAddLanes4(x, y, out)
	default:
		mulAddScalar(x, y, out)
	}
}

// SumWith is Sum for an explicit capability tag: the most specific
// variant the tag guarantees is chosen, so SumWith(simd.Sse42, x) runs
// the 4-lane variant and SumWith(simd.Avx512f, x) the 8-lane one. For a
// concrete tag the selection folds away at compile time.
func SumWith[T simd.Tag](tag T, x []float32) float32 {
	imp := tag.Implies()
	switch {
	case imp.IsSupersetOf(simd.Avx2):
		return sumLanes8(x)
	case imp.IsSupersetOf(simd.Sse41):
		return sumLanes4(x)
	default:
		return sumScalar(x)
	}
}

// MulAddWith is MulAdd for an explicit capability tag.
func MulAddWith[T simd.Tag](tag T, x, y, out []float32) {
	imp := tag.Implies()
	switch {
	case imp.IsSupersetOf(simd.Avx2):
		mulAddLanes8(x, y, out)
	case imp.IsSupersetOf(simd.Sse41):
		mulAddLanes4(x, y, out)
	default:
		mulAddScalar(x, y, out)
	}
}

// SumAvx2 runs the 8-lane variant unconditionally. The constraint turns
// an unsupported tag into a compile error instead of a wrong dispatch;
// the caller vouches for AVX2 being safe.
func SumAvx2[T simd.AtLeastAvx2](_ T, x []float32) float32 {
	return sumLanes8(x)
}
