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

package main

import "github.com/mgood7123/corrade/simd"

func featureMap(f simd.Features) map[string]bool {
	return map[string]bool{
		"SSE2":    f.Has(simd.Sse2),
		"SSE3":    f.Has(simd.Sse3),
		"SSSE3":   f.Has(simd.Ssse3),
		"SSE41":   f.Has(simd.Sse41),
		"SSE42":   f.Has(simd.Sse42),
		"AVX":     f.Has(simd.Avx),
		"AVXF16C": f.Has(simd.AvxF16c),
		"AVXFMA":  f.Has(simd.AvxFma),
		"AVX2":    f.Has(simd.Avx2),
		"AVX512F": f.Has(simd.Avx512f),
	}
}
