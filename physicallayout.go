// Copyright 2025 The TCell Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dmk

// PhysicalLayout is the engine's hardware collaborator: it reports how
// many keys the layout has and a coherent snapshot of which of them are
// currently pressed. Deliberately out of scope for this package is how
// that snapshot gets built (pin scanning, debouncing, matrix decoding) —
// PhysicalLayout only needs to hand the engine a bitmap each iteration.
type PhysicalLayout interface {
	// KeyCount reports the number of addressable keys, <= MaxKeys.
	// Indices [0, KeyCount) are authoritative in GetBitmap's result; the
	// engine never reads beyond that.
	KeyCount() int

	// GetBitmap returns a coherent snapshot of pressed state, true
	// meaning pressed. The engine ignores indices >= KeyCount.
	GetBitmap() [MaxKeys]bool
}
