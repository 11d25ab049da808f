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

import "testing"

func TestMakeFromTag(t *testing.T) {
	if got := uint32(Make(Sse3)); got != 2 {
		t.Errorf("uint32(Make(Sse3)) = %d, want 2", got)
	}
	if got := uint32(Sse2.Features()); got != 1 {
		t.Errorf("uint32(Sse2.Features()) = %d, want 1", got)
	}
	for _, e := range tagNames {
		if e.bit == 0 || e.bit&(e.bit-1) != 0 {
			t.Errorf("tag %s has index %#x, want a power of two", e.name, uint32(e.bit))
		}
	}
}

func TestUnionWithTags(t *testing.T) {
	f := Union(Sse3, Sse2)
	if got := uint32(f); got != 3 {
		t.Errorf("uint32(Sse3|Sse2) = %d, want 3", got)
	}
	if got := uint32(Union(f, Ssse3)); got != 7 {
		t.Errorf("uint32(features|Ssse3) = %d, want 7", got)
	}
	if got := uint32(Union(Ssse3, f)); got != 7 {
		t.Errorf("uint32(Ssse3|features) = %d, want 7", got)
	}
	f |= Make(Ssse3)
	if got := uint32(f); got != 7 {
		t.Errorf("after |= Ssse3, got %d, want 7", got)
	}
}

func TestIntersectWithTags(t *testing.T) {
	if got := uint32(Intersect(Sse3, Sse2)); got != 0 {
		t.Errorf("uint32(Sse3 & Sse2) = %d, want 0", got)
	}

	f := Union(Sse41, Sse2, Sse3)
	if got := uint32(Intersect(f, Sse41)); got != 8 {
		t.Errorf("uint32(features & Sse41) = %d, want 8", got)
	}
	if got := uint32(Intersect(Sse41, f)); got != 8 {
		t.Errorf("uint32(Sse41 & features) = %d, want 8", got)
	}
	if got := uint32(Intersect(f, Ssse3)); got != 0 {
		t.Errorf("uint32(features & Ssse3) = %d, want 0", got)
	}

	f2 := Union(Sse41, Sse2, Ssse3)
	if got := uint32(f & f2); got != 9 {
		t.Errorf("uint32(features & features2) = %d, want 9", got)
	}
	f &= f2
	if got := uint32(f); got != 9 {
		t.Errorf("after &=, got %d, want 9", got)
	}
}

func TestXorWithTags(t *testing.T) {
	if got := uint32(Xor(Sse3, Sse3)); got != 0 {
		t.Errorf("uint32(Sse3 ^ Sse3) = %d, want 0", got)
	}
	if got := uint32(Xor(Sse3, Sse2)); got != 3 {
		t.Errorf("uint32(Sse3 ^ Sse2) = %d, want 3", got)
	}

	f := Union(Sse41, Sse2, Sse3)
	if got := uint32(Xor(f, Ssse3)); got != 15 {
		t.Errorf("uint32(features ^ Ssse3) = %d, want 15", got)
	}
	if got := uint32(Xor(Ssse3, f)); got != 15 {
		t.Errorf("uint32(Ssse3 ^ features) = %d, want 15", got)
	}
	if got := uint32(Xor(f, Sse41)); got != 3 {
		t.Errorf("uint32(features ^ Sse41) = %d, want 3", got)
	}

	f2 := Union(Sse41, Sse2, Ssse3)
	f ^= f2
	if got := uint32(f); got != 6 {
		t.Errorf("after ^=, got %d, want 6", got)
	}
}

func TestHasAndAny(t *testing.T) {
	f := Union(Sse3, Sse2)
	if f.Has(Sse41) {
		t.Error("features.Has(Sse41) = true, want false")
	}
	if !f.Has(Sse3) {
		t.Error("features.Has(Sse3) = false, want true")
	}
	if !f.Any() {
		t.Error("features.Any() = false, want true")
	}
}

func TestComplement(t *testing.T) {
	if got := uint32(Complement(Scalar)); got != 0xffffffff {
		t.Errorf("uint32(~Scalar) = %#x, want 0xffffffff", got)
	}
	if got := uint32(Complement(Union(Sse41, Sse3))); got != 4294967285 {
		t.Errorf("uint32(~(Sse41|Sse3)) = %d, want 4294967285", got)
	}
	if got := uint32(Complement(Sse41)); got != 4294967287 {
		t.Errorf("uint32(~Sse41) = %d, want 4294967287", got)
	}
}

func TestCompare(t *testing.T) {
	f := Union(Sse41, Sse2, Sse3)
	g := f
	if f != g {
		t.Error("features != copy of features")
	}
	if Make(Sse3) != Make(Sse3) {
		t.Error("Make(Sse3) != Make(Sse3)")
	}
	if Make(Sse3) == Make(Sse41) {
		t.Error("Make(Sse3) == Make(Sse41)")
	}

	if !Make(Scalar).IsSubsetOf(Sse41) {
		t.Error("Scalar is not a subset of Sse41")
	}
	if !Make(Sse41).IsSupersetOf(Scalar) {
		t.Error("Sse41 is not a superset of Scalar")
	}
	if !Make(Sse41).IsSubsetOf(Sse41) || !Make(Sse41).IsSupersetOf(Sse41) {
		t.Error("Sse41 does not compare equal to itself")
	}
	if !Make(Sse41).IsSubsetOf(f) || !f.IsSupersetOf(Sse41) {
		t.Error("Sse41 is not contained in {Sse41, Sse2, Sse3}")
	}

	wider := Union(Sse41, Sse2, Sse3, Ssse3)
	if !f.IsSubsetOf(wider) {
		t.Error("features is not a subset of the wider set")
	}
	if f.IsSupersetOf(wider) {
		t.Error("features must not be a superset of the wider set")
	}
}

func TestImplies(t *testing.T) {
	if got := Scalar.Implies(); got != 0 {
		t.Errorf("Scalar.Implies() = %v, want the empty set", got)
	}
	if got, want := Sse42.Implies(), Union(Sse2, Sse3, Ssse3, Sse41, Sse42); got != want {
		t.Errorf("Sse42.Implies() = %v, want %v", got, want)
	}
	if !Avx512f.Implies().IsSupersetOf(Avx2.Implies()) {
		t.Error("Avx512f must imply everything Avx2 implies")
	}
	// Walking down the order, every tag implies its predecessor's closure.
	order := []Tag{Sse2, Sse3, Ssse3, Sse41, Sse42, Avx, AvxF16c, AvxFma, Avx2, Avx512f}
	for i := 1; i < len(order); i++ {
		if !order[i].Implies().IsSupersetOf(order[i-1].Implies()) {
			t.Errorf("%v does not imply %v", order[i], order[i-1])
		}
	}
}

// atLeastSse41 exists to prove the constraint accepts every stronger tag;
// the assertions are compile-time.
func atLeastSse41[T AtLeastSse41](tag T) Features { return tag.Features() }

func TestConstraintAcceptsStrongerTags(t *testing.T) {
	if got := atLeastSse41(Sse41); got != featSse41 {
		t.Errorf("atLeastSse41(Sse41) = %v", got)
	}
	if got := atLeastSse41(Sse42); got != featSse42 {
		t.Errorf("atLeastSse41(Sse42) = %v", got)
	}
	if got := atLeastSse41(Avx512f); got != featAvx512f {
		t.Errorf("atLeastSse41(Avx512f) = %v", got)
	}
}
