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

// Detect returns the instruction sets the build configuration already
// guarantees. On ARM that is the compile-time answer on purpose: several
// shipped chips misreport their capability bits, so runtime introspection
// is not attempted. The arm64 port requires ARMv8 and with it NEON; the
// FP16 and FMA variants are never reported and must be opted into by
// hand-building a Features value.
func Detect() Features {
	return featNeon
}
