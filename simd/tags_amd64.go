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

// Bit indices of the x86 tags. Unique within this architecture and stable
// for the lifetime of a binary only; nothing outside the process may
// depend on the values.
const (
	featSse2 Features = 1 << iota
	featSse3
	featSsse3
	featSse41
	featSse42
	featAvx
	featAvxF16c
	featAvxFma
	featAvx2
	featAvx512f
)

// Transitive closures of the capability order
// Sse2 < Sse3 < Ssse3 < Sse41 < Sse42 < Avx < AvxF16c < AvxFma < Avx2 < Avx512f.
const (
	impliedSse2    = featSse2
	impliedSse3    = impliedSse2 | featSse3
	impliedSsse3   = impliedSse3 | featSsse3
	impliedSse41   = impliedSsse3 | featSse41
	impliedSse42   = impliedSse41 | featSse42
	impliedAvx     = impliedSse42 | featAvx
	impliedAvxF16c = impliedAvx | featAvxF16c
	impliedAvxFma  = impliedAvxF16c | featAvxFma
	impliedAvx2    = impliedAvxFma | featAvx2
	impliedAvx512f = impliedAvx2 | featAvx512f
)

// tagNames drives the formatter, least capable first.
var tagNames = []tagEntry{
	{featSse2, "Sse2"},
	{featSse3, "Sse3"},
	{featSsse3, "Ssse3"},
	{featSse41, "Sse41"},
	{featSse42, "Sse42"},
	{featAvx, "Avx"},
	{featAvxF16c, "AvxF16c"},
	{featAvxFma, "AvxFma"},
	{featAvx2, "Avx2"},
	{featAvx512f, "Avx512f"},
}

// Sse2T is the SSE2 tag type.
type Sse2T struct{}

// Sse3T is the SSE3 tag type.
type Sse3T struct{}

// Ssse3T is the SSSE3 tag type.
type Ssse3T struct{}

// Sse41T is the SSE4.1 tag type.
type Sse41T struct{}

// Sse42T is the SSE4.2 tag type.
type Sse42T struct{}

// AvxT is the AVX tag type.
type AvxT struct{}

// AvxF16cT is the AVX F16C tag type.
type AvxF16cT struct{}

// AvxFmaT is the AVX FMA3 tag type.
type AvxFmaT struct{}

// Avx2T is the AVX2 tag type.
type Avx2T struct{}

// Avx512fT is the AVX-512 Foundation tag type.
type Avx512fT struct{}

var (
	// Sse2 selects Streaming SIMD Extensions 2, the baseline of every
	// 64-bit x86 processor. Superset of Scalar, implied by Sse3.
	Sse2 Sse2T

	// Sse3 selects Streaming SIMD Extensions 3. Superset of Sse2, implied
	// by Ssse3.
	Sse3 Sse3T

	// Ssse3 selects Supplemental Streaming SIMD Extensions 3. Superset of
	// Sse3, implied by Sse41.
	//
	// Certain older AMD processors have SSE4a but neither SSSE3 nor
	// SSE4.1. Both can be treated as a subset of SSE4.1 to a large
	// extent, so prefer Sse41 to handle those.
	Ssse3 Ssse3T

	// Sse41 selects Streaming SIMD Extensions 4.1. Superset of Ssse3,
	// implied by Sse42.
	Sse41 Sse41T

	// Sse42 selects Streaming SIMD Extensions 4.2. Superset of Sse41,
	// implied by Avx.
	Sse42 Sse42T

	// Avx selects Advanced Vector Extensions. Superset of Sse42, implied
	// by AvxF16c. Reported at runtime only when the operating system
	// confirms it preserves the widened registers across context
	// switches.
	Avx AvxT

	// AvxF16c selects the half-precision conversion extension on top of
	// AVX. Superset of Avx, implied by AvxFma.
	AvxF16c AvxF16cT

	// AvxFma selects three-operand fused multiply-add on top of AVX.
	// Superset of AvxF16c, implied by Avx2.
	AvxFma AvxFmaT

	// Avx2 selects Advanced Vector Extensions 2. Superset of AvxFma,
	// implied by Avx512f.
	Avx2 Avx2T

	// Avx512f selects the AVX-512 Foundation subset. Superset of Avx2.
	Avx512f Avx512fT
)

func (Sse2T) features() Features    { return featSse2 }
func (Sse3T) features() Features    { return featSse3 }
func (Ssse3T) features() Features   { return featSsse3 }
func (Sse41T) features() Features   { return featSse41 }
func (Sse42T) features() Features   { return featSse42 }
func (AvxT) features() Features     { return featAvx }
func (AvxF16cT) features() Features { return featAvxF16c }
func (AvxFmaT) features() Features  { return featAvxFma }
func (Avx2T) features() Features    { return featAvx2 }
func (Avx512fT) features() Features { return featAvx512f }

func (Sse2T) Features() Features    { return featSse2 }
func (Sse3T) Features() Features    { return featSse3 }
func (Ssse3T) Features() Features   { return featSsse3 }
func (Sse41T) Features() Features   { return featSse41 }
func (Sse42T) Features() Features   { return featSse42 }
func (AvxT) Features() Features     { return featAvx }
func (AvxF16cT) Features() Features { return featAvxF16c }
func (AvxFmaT) Features() Features  { return featAvxFma }
func (Avx2T) Features() Features    { return featAvx2 }
func (Avx512fT) Features() Features { return featAvx512f }

func (Sse2T) Implies() Features    { return impliedSse2 }
func (Sse3T) Implies() Features    { return impliedSse3 }
func (Ssse3T) Implies() Features   { return impliedSsse3 }
func (Sse41T) Implies() Features   { return impliedSse41 }
func (Sse42T) Implies() Features   { return impliedSse42 }
func (AvxT) Implies() Features     { return impliedAvx }
func (AvxF16cT) Implies() Features { return impliedAvxF16c }
func (AvxFmaT) Implies() Features  { return impliedAvxFma }
func (Avx2T) Implies() Features    { return impliedAvx2 }
func (Avx512fT) Implies() Features { return impliedAvx512f }

func (t Sse2T) String() string    { return t.Features().String() }
func (t Sse3T) String() string    { return t.Features().String() }
func (t Ssse3T) String() string   { return t.Features().String() }
func (t Sse41T) String() string   { return t.Features().String() }
func (t Sse42T) String() string   { return t.Features().String() }
func (t AvxT) String() string     { return t.Features().String() }
func (t AvxF16cT) String() string { return t.Features().String() }
func (t AvxFmaT) String() string  { return t.Features().String() }
func (t Avx2T) String() string    { return t.Features().String() }
func (t Avx512fT) String() string { return t.Features().String() }

// The AtLeast* constraints admit exactly the tags that guarantee the
// named level. A function generic over [T AtLeastSse3] accepts Sse3 and
// every stronger tag without a cast and rejects the rest at compile time.
type (
	AtLeastSse2 interface {
		Tag
		Sse2T | Sse3T | Ssse3T | Sse41T | Sse42T | AvxT | AvxF16cT | AvxFmaT | Avx2T | Avx512fT
	}
	AtLeastSse3 interface {
		Tag
		Sse3T | Ssse3T | Sse41T | Sse42T | AvxT | AvxF16cT | AvxFmaT | Avx2T | Avx512fT
	}
	AtLeastSsse3 interface {
		Tag
		Ssse3T | Sse41T | Sse42T | AvxT | AvxF16cT | AvxFmaT | Avx2T | Avx512fT
	}
	AtLeastSse41 interface {
		Tag
		Sse41T | Sse42T | AvxT | AvxF16cT | AvxFmaT | Avx2T | Avx512fT
	}
	AtLeastSse42 interface {
		Tag
		Sse42T | AvxT | AvxF16cT | AvxFmaT | Avx2T | Avx512fT
	}
	AtLeastAvx interface {
		Tag
		AvxT | AvxF16cT | AvxFmaT | Avx2T | Avx512fT
	}
	AtLeastAvxF16c interface {
		Tag
		AvxF16cT | AvxFmaT | Avx2T | Avx512fT
	}
	AtLeastAvxFma interface {
		Tag
		AvxFmaT | Avx2T | Avx512fT
	}
	AtLeastAvx2 interface {
		Tag
		Avx2T | Avx512fT
	}
	AtLeastAvx512f interface {
		Tag
		Avx512fT
	}
)
