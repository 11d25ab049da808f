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

package simd

// Features is a set of capability tags backed by a bitmask. Because it is
// a defined unsigned type, the native |, &, ^ and == operators (and their
// assigning forms) work directly between two Features values; the Union,
// Intersect, Xor and Complement functions additionally accept tags in
// either operand position.
//
// The zero value is the empty set, equal to Make(Scalar). uint32(f)
// exposes the raw mask for testing; apart from Scalar always being zero,
// the bit positions are unspecified and not stable across architectures,
// so raw masks must never be persisted or transmitted.
//
// A Features value is immutable for concurrent readers in the usual Go
// sense: it is a plain value, copy it and go.
type Features uint32

func (f Features) features() Features { return f }

// Make converts a tag or another set to a Features value. Make(Sse42)
// has exactly one bit set; it does not include the levels the tag
// implies, for those use Sse42.Implies().
func Make(src FeatureSource) Features { return src.features() }

// Union returns the union of all given tags and sets. With no arguments
// it returns the empty set.
func Union(parts ...FeatureSource) Features {
	var f Features
	for _, p := range parts {
		f |= p.features()
	}
	return f
}

// Intersect returns the intersection of two tags or sets.
func Intersect(a, b FeatureSource) Features {
	return a.features() & b.features()
}

// Xor returns the symmetric difference of two tags or sets.
func Xor(a, b FeatureSource) Features {
	return a.features() ^ b.features()
}

// Complement returns the complement of a tag or set. Every bit is
// flipped, including bits that correspond to no known tag; intersect the
// result with a meaningful mask before relying on it.
func Complement(a FeatureSource) Features {
	return ^a.features()
}

// IsSupersetOf reports whether f contains every feature of o, in other
// words (f & o) == o. Superset and subset are a partial order: two
// unrelated sets compare false both ways.
func (f Features) IsSupersetOf(o FeatureSource) bool {
	m := o.features()
	return f&m == m
}

// IsSubsetOf reports whether every feature of f is contained in o, in
// other words (f & o) == f.
func (f Features) IsSubsetOf(o FeatureSource) bool {
	return f&o.features() == f
}

// Has reports whether f and o share at least one feature. With a
// single-tag argument this is the usual cascade membership test:
//
//	if features.Has(simd.Avx2) { ... }
func (f Features) Has(o FeatureSource) bool {
	return f&o.features() != 0
}

// Any reports whether at least one feature beyond Scalar is present.
func (f Features) Any() bool { return f != 0 }
