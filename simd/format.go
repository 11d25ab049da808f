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

import "strings"

// qualifier is the namespace token prepended to every tag name in verbose
// output.
const qualifier = "Simd::"

// String renders the set as a pipe-joined list of qualified tag names in
// capability order, least capable first: "Simd::Ssse3|Simd::Sse41|Simd::Avx2".
// The empty set renders as "Simd::Scalar". Bits with no tag assigned are
// omitted.
func (f Features) String() string { return f.join(qualifier) }

// Packed renders like String but without the namespace qualifier:
// "Ssse3|Sse41|Avx2". The empty set renders as "Scalar".
func (f Features) Packed() string { return f.join("") }

func (f Features) join(prefix string) string {
	if f == 0 {
		return prefix + "Scalar"
	}
	var b strings.Builder
	first := true
	for _, t := range tagNames {
		if f&t.bit == 0 {
			continue
		}
		if !first {
			b.WriteByte('|')
		}
		first = false
		b.WriteString(prefix)
		b.WriteString(t.name)
	}
	return b.String()
}
