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

// Layer is a fixed-length mapping from physical-key index to an optional
// behavior, tagged with the layout's key count. A nil-equivalent slot
// (never set) resolves the same as an explicit Transparent: both fall
// through to the next layer down.
type Layer struct {
	keyCount  int
	behaviors [MaxKeys]Behavior
	set       [MaxKeys]bool
}

// NewLayer builds an empty Layer (every slot Transparent) for a layout
// with the given key count.
func NewLayer(keyCount int) Layer {
	if keyCount < 0 || keyCount > MaxKeys {
		panicConfig(ErrLayerIndexRange, "layer key count %d exceeds MaxKeys %d", keyCount, MaxKeys)
	}
	return Layer{keyCount: keyCount}
}

// KeyCount returns the number of addressable keys on this layer.
func (l *Layer) KeyCount() int { return l.keyCount }

// Set assigns the behavior for a key index.
func (l *Layer) Set(key int, b Behavior) {
	l.checkRange(key)
	l.behaviors[key] = b
	l.set[key] = true
}

// Get returns the behavior assigned to key, or Transparent if no behavior
// was ever set there.
func (l *Layer) Get(key int) Behavior {
	l.checkRange(key)
	if !l.set[key] {
		return TransparentBehavior()
	}
	return l.behaviors[key]
}

func (l *Layer) checkRange(key int) {
	if key < 0 || key >= l.keyCount {
		panicConfig(ErrLayerIndexRange, "key index %d out of range [0, %d)", key, l.keyCount)
	}
}
