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

//go:build arm64

package simd

// Bit indices of the ARM tags. Stable within one binary only.
const (
	featNeon Features = 1 << iota
	featNeonFp16
	featNeonFma
)

// Capability order Neon < NeonFp16 < NeonFma.
const (
	impliedNeon     = featNeon
	impliedNeonFp16 = impliedNeon | featNeonFp16
	impliedNeonFma  = impliedNeonFp16 | featNeonFma
)

var tagNames = []tagEntry{
	{featNeon, "Neon"},
	{featNeonFp16, "NeonFp16"},
	{featNeonFma, "NeonFma"},
}

// NeonT is the NEON tag type.
type NeonT struct{}

// NeonFp16T is the NEON FP16 tag type.
type NeonFp16T struct{}

// NeonFmaT is the NEON FMA tag type.
type NeonFmaT struct{}

var (
	// Neon selects ARM Advanced SIMD, mandatory in the ARMv8 A64 state.
	// Superset of Scalar, implied by NeonFp16.
	Neon NeonT

	// NeonFp16 selects NEON with half-precision arithmetic. Superset of
	// Neon, implied by NeonFma.
	NeonFp16 NeonFp16T

	// NeonFma selects NEON with fused multiply-add. Superset of NeonFp16.
	NeonFma NeonFmaT
)

func (NeonT) features() Features     { return featNeon }
func (NeonFp16T) features() Features { return featNeonFp16 }
func (NeonFmaT) features() Features  { return featNeonFma }

func (NeonT) Features() Features     { return featNeon }
func (NeonFp16T) Features() Features { return featNeonFp16 }
func (NeonFmaT) Features() Features  { return featNeonFma }

func (NeonT) Implies() Features     { return impliedNeon }
func (NeonFp16T) Implies() Features { return impliedNeonFp16 }
func (NeonFmaT) Implies() Features  { return impliedNeonFma }

func (t NeonT) String() string     { return t.Features().String() }
func (t NeonFp16T) String() string { return t.Features().String() }
func (t NeonFmaT) String() string  { return t.Features().String() }

// The AtLeast* constraints admit exactly the tags that guarantee the
// named level.
type (
	AtLeastNeon interface {
		Tag
		NeonT | NeonFp16T | NeonFmaT
	}
	AtLeastNeonFp16 interface {
		Tag
		NeonFp16T | NeonFmaT
	}
	AtLeastNeonFma interface {
		Tag
		NeonFmaT
	}
)
