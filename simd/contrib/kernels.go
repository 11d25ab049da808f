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

// Kernel variants. The wider variants process independent accumulator
// lanes the way a vector unit would. Reductions reassociate additions,
// so the sum variants agree with scalar only up to floating-point
// rounding; the element-wise variants are exact.

func sumScalar(x []float32) float32 {
	var s float32
	for _, v := range x {
		s += v
	}
	return s
}

// sumLanes4 models a 128-bit lane layout: four running sums, reduced
// pairwise.
func sumLanes4(x []float32) float32 {
	var s0, s1, s2, s3 float32
	i := 0
	for ; i+4 <= len(x); i += 4 {
		s0 += x[i]
		s1 += x[i+1]
		s2 += x[i+2]
		s3 += x[i+3]
	}
	s := (s0 + s2) + (s1 + s3)
	// Scalar tail
	for ; i < len(x); i++ {
		s += x[i]
	}
	return s
}

// sumLanes8 models a 256-bit lane layout.
func sumLanes8(x []float32) float32 {
	var s [8]float32
	i := 0
	for ; i+8 <= len(x); i += 8 {
		for l := 0; l < 8; l++ {
			s[l] += x[i+l]
		}
	}
	total := ((s[0] + s[4]) + (s[2] + s[6])) + ((s[1] + s[5]) + (s[3] + s[7]))
	for ; i < len(x); i++ {
		total += x[i]
	}
	return total
}

func mulAddScalar(x, y, out []float32) {
	n := min(len(x), min(len(y), len(out)))
	for i := 0; i < n; i++ {
		out[i] += x[i] * y[i]
	}
}

func mulAddLanes4(x, y, out []float32) {
	n := min(len(x), min(len(y), len(out)))
	i := 0
	for ; i+4 <= n; i += 4 {
		out[i] += x[i] * y[i]
		out[i+1] += x[i+1] * y[i+1]
		out[i+2] += x[i+2] * y[i+2]
		out[i+3] += x[i+3] * y[i+3]
	}
	for ; i < n; i++ {
		out[i] += x[i] * y[i]
	}
}

func mulAddLanes8(x, y, out []float32) {
	n := min(len(x), min(len(y), len(out)))
	i := 0
	for ; i+8 <= n; i += 8 {
		for l := 0; l < 8; l++ {
			out[i+l] += x[i+l] * y[i+l]
		}
	}
	for ; i < n; i++ {
		out[i] += x[i] * y[i]
	}
}
