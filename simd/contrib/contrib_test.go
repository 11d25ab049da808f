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

package contrib

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mgood7123/corrade/simd"
)

// Variants reassociate additions, so compare with a relative tolerance.
func closeEnough(a, b float32) bool {
	if a == b {
		return true
	}
	diff := math.Abs(float64(a - b))
	scale := math.Max(math.Abs(float64(a)), math.Abs(float64(b)))
	return diff <= 1e-4*math.Max(scale, 1)
}

func testInput(n int) []float32 {
	rng := rand.New(rand.NewSource(42))
	x := make([]float32, n)
	for i := range x {
		x[i] = rng.Float32()*2 - 1
	}
	return x
}

func TestSumVariantsAgree(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 7, 8, 64, 1023} {
		x := testInput(n)
		want := sumScalar(x)
		if got := sumLanes4(x); !closeEnough(got, want) {
			t.Errorf("n=%d: sumLanes4 = %g, scalar = %g", n, got, want)
		}
		if got := sumLanes8(x); !closeEnough(got, want) {
			t.Errorf("n=%d: sumLanes8 = %g, scalar = %g", n, got, want)
		}
		if got := Sum(x); !closeEnough(got, want) {
			t.Errorf("n=%d: Sum = %g, scalar = %g", n, got, want)
		}
		if got := SumWith(simd.Default, x); !closeEnough(got, want) {
			t.Errorf("n=%d: SumWith(Default) = %g, scalar = %g", n, got, want)
		}
	}
}

func TestMulAddVariantsAgree(t *testing.T) {
	for _, n := range []int{0, 1, 5, 8, 100} {
		x := testInput(n)
		y := testInput(n)

		want := make([]float32, n)
		mulAddScalar(x, y, want)

		for name, fn := range map[string]func(x, y, out []float32){
			"mulAddLanes4": mulAddLanes4,
			"mulAddLanes8": mulAddLanes8,
			"MulAdd":       MulAdd,
		} {
			out := make([]float32, n)
			fn(x, y, out)
			for i := range out {
				// No reassociation here: results are exact.
				if out[i] != want[i] {
					t.Errorf("n=%d: %s[%d] = %g, want %g", n, name, i, out[i], want[i])
					break
				}
			}
		}

		out := make([]float32, n)
		MulAddWith(simd.Default, x, y, out)
		for i := range out {
			if out[i] != want[i] {
				t.Errorf("n=%d: MulAddWith(Default)[%d] = %g, want %g", n, i, out[i], want[i])
				break
			}
		}
	}
}

func TestActiveDefaultsToDetection(t *testing.T) {
	if !Active().IsSupersetOf(simd.Default) {
		t.Errorf("Active() = %v does not cover the compile-time default", Active())
	}
}

func TestSetActiveOverride(t *testing.T) {
	saved := Active()
	defer SetActive(saved)

	// Forcing scalar must still produce correct results through the
	// runtime-dispatched fronts.
	SetActive(simd.Make(simd.Scalar))
	if Active().Any() {
		t.Fatalf("Active() = %v after forcing scalar", Active())
	}
	x := testInput(37)
	if got, want := Sum(x), sumScalar(x); got != want {
		t.Errorf("Sum under forced scalar = %g, want %g", got, want)
	}
}
