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

import "testing"

func TestDetectCoversDefault(t *testing.T) {
	features := Detect()
	t.Logf("compile-time default: %v", Default)
	t.Logf("runtime-detected: %v", features)

	// Whatever the build already assumes must be present at runtime,
	// otherwise this test could not even be executing.
	if !features.IsSupersetOf(Default) {
		t.Errorf("Detect() = %v does not cover Default = %v", features, Default)
	}
}

func TestDetectDeterministic(t *testing.T) {
	if a, b := Detect(), Detect(); a != b {
		t.Errorf("consecutive detections disagree: %v vs %v", a, b)
	}
}
