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

// Implemented in cpuid_amd64.s.

// cpuid executes the CPUID instruction for the given leaf and subleaf.
func cpuid(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)

// xgetbv reads the given extended control register. The caller must have
// established that CPUID reports OSXSAVE, otherwise the instruction
// faults.
func xgetbv(index uint32) (eax, edx uint32)

// CPUID bit positions.
// https://en.wikipedia.org/wiki/CPUID#EAX=1:_Processor_Info_and_Feature_Bits
const (
	leaf1CSse3    = 1 << 0
	leaf1CSsse3   = 1 << 9
	leaf1CFma     = 1 << 12
	leaf1CSse41   = 1 << 19
	leaf1CSse42   = 1 << 20
	leaf1COsxsave = 1 << 27
	leaf1CAvx     = 1 << 28
	leaf1CF16c    = 1 << 29

	leaf1DSse2 = 1 << 26

	leaf7BAvx2    = 1 << 5
	leaf7BAvx512f = 1 << 16
)

// xcr0AvxState covers the XMM (bit 1) and YMM (bit 2) register state.
const xcr0AvxState = 0x6

// Detect queries the processor for its supported instruction sets. The
// result holds every tag the CPU and operating system support, which is a
// genuine arbitrary set, not necessarily contiguous in the capability
// order.
//
// AVX is reported only when the CPU additionally reports XSAVE support
// and the operating system confirms it saves the widened registers across
// context switches; without that confirmation AVX code would corrupt
// state on the first interrupt. When AVX is absent no later extension is
// probed at all: F16C, FMA, AVX2 and AVX-512 are meaningless without the
// AVX baseline they build on.
//
// Detection executes a handful of CPUID instructions and is not free;
// detect once and keep the value instead of calling this per operation.
func Detect() Features {
	var f Features

	maxLeaf, _, _, _ := cpuid(0, 0)
	if maxLeaf < 1 {
		// Leaf 1 predates 64-bit x86 entirely.
		panic("simd: CPUID has no feature leaf")
	}

	_, _, ecx, edx := cpuid(1, 0)
	if edx&leaf1DSse2 != 0 {
		f |= featSse2
	}
	if ecx&leaf1CSse3 != 0 {
		f |= featSse3
	}
	if ecx&leaf1CSsse3 != 0 {
		f |= featSsse3
	}
	if ecx&leaf1CSse41 != 0 {
		f |= featSse41
	}
	if ecx&leaf1CSse42 != 0 {
		f |= featSse42
	}

	if ecx&leaf1COsxsave != 0 && ecx&leaf1CAvx != 0 && osSavesAvxState() {
		f |= featAvx
	}
	if f&featAvx == 0 {
		return f
	}

	if ecx&leaf1CF16c != 0 {
		f |= featAvxF16c
	}
	if ecx&leaf1CFma != 0 {
		f |= featAvxFma
	}

	// https://en.wikipedia.org/wiki/CPUID#EAX=7,_ECX=0:_Extended_Features
	if maxLeaf >= 7 {
		_, ebx, _, _ := cpuid(7, 0)
		if ebx&leaf7BAvx2 != 0 {
			f |= featAvx2
		}
		if ebx&leaf7BAvx512f != 0 {
			f |= featAvx512f
		}
	}
	return f
}

// osSavesAvxState reports whether the operating system enabled saving of
// the XMM and YMM register state, the precondition for safely running AVX
// code on an AVX-capable CPU. Only valid when CPUID reports OSXSAVE.
// https://en.wikipedia.org/wiki/Advanced_Vector_Extensions#Operating_system_support
func osSavesAvxState() bool {
	eax, _ := xgetbv(0)
	return eax&xcr0AvxState == xcr0AvxState
}
