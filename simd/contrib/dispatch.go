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

package contrib

import (
	"sync"

	"github.com/xyproto/env/v2"

	"github.com/mgood7123/corrade/simd"
)

var (
	activeMu sync.RWMutex
	active   simd.Features
)

func init() {
	// SIMD_DISABLE forces the scalar paths regardless of what the CPU
	// offers, for testing and debugging.
	if env.Bool("SIMD_DISABLE") {
		return
	}
	active = simd.Detect()
}

// Active returns the feature set the runtime-dispatched kernels consult.
func Active() simd.Features {
	activeMu.RLock()
	defer activeMu.RUnlock()
	return active
}

// SetActive replaces the feature set used for runtime dispatch. The value
// is taken as-is: clearing a bit avoids a known-slow path, setting one
// forces a variant past failed autodetection, and claiming capabilities
// the hardware lacks is the caller's problem.
func SetActive(f simd.Features) {
	activeMu.Lock()
	defer activeMu.Unlock()
	active = f
}
