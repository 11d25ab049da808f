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

package simd

import (
	"fmt"
	"testing"
)

func TestStringVerbose(t *testing.T) {
	out := fmt.Sprintln(Make(Scalar), Union(Avx2, Ssse3, Sse41))
	if want := "Simd::Scalar Simd::Ssse3|Simd::Sse41|Simd::Avx2\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestStringPacked(t *testing.T) {
	out := fmt.Sprintln(Make(Scalar).Packed(), Union(Avx2, Ssse3, Sse41).Packed())
	if want := "Scalar Ssse3|Sse41|Avx2\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestStringSingleTag(t *testing.T) {
	if got := Avx2.String(); got != "Simd::Avx2" {
		t.Errorf("Avx2.String() = %q", got)
	}
	if got := Scalar.String(); got != "Simd::Scalar" {
		t.Errorf("Scalar.String() = %q", got)
	}
	if got := Make(Sse41).Packed(); got != "Sse41" {
		t.Errorf("Make(Sse41).Packed() = %q", got)
	}
}

func TestStringOrderIsLowToHigh(t *testing.T) {
	f := Union(Avx512f, Sse2, AvxFma)
	if got, want := f.Packed(), "Sse2|AvxFma|Avx512f"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStringIgnoresUnknownBits(t *testing.T) {
	f := Union(Sse2, Features(1<<30))
	if got, want := f.Packed(), "Sse2"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
