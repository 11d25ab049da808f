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

// FeatureSource is anything convertible to a Features set: a Features
// value itself or any capability tag. It is satisfied only by types of
// this package.
type FeatureSource interface {
	features() Features
}

// Tag is implemented by every capability tag type (ScalarT, Sse2T, NeonT,
// ...). Tags are zero-size markers; their value carries no state beyond
// the type identity. Tag is useful both as a generic constraint and as a
// runtime value driving a dispatch cascade.
type Tag interface {
	FeatureSource

	// Features returns the set containing exactly this tag. Scalar is the
	// empty set.
	Features() Features

	// Implies returns every capability level guaranteed by holding this
	// tag, the tag itself included. Sse42 implies Sse2 through Sse42;
	// Scalar implies nothing.
	Implies() Features

	// String renders the tag the same way its single-element Features set
	// renders.
	String() string
}

// tagEntry is one row of the per-architecture trait table consumed by the
// formatter, ordered from least to most capable.
type tagEntry struct {
	bit  Features
	name string
}

// ScalarT is the scalar tag type, available on every architecture.
type ScalarT struct{}

// Scalar tags code that is not optimized for any particular instruction
// set. It is the fallback when nothing else is available and converts to
// the empty Features set.
var Scalar ScalarT

func (ScalarT) features() Features { return 0 }

// Features returns the empty set; scalar code needs nothing.
func (ScalarT) Features() Features { return 0 }

// Implies returns the empty set.
func (ScalarT) Implies() Features { return 0 }

func (t ScalarT) String() string { return t.Features().String() }
