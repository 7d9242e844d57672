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

// VirtualKeyboard is the engine's output surface: the set of virtual keys
// currently pressed, as seen by a downstream HID report emitter. It is a
// pure function of the stream of KeyEvents applied to it.
type VirtualKeyboard struct {
	pressed [keyCount]bool
}

// Apply adds or removes ke.Key from the pressed set. Repeated presses of
// an already-pressed key (or releases of an already-released one) are
// idempotent.
func (v *VirtualKeyboard) Apply(ke KeyEvent) {
	if int(ke.Key) < 0 || int(ke.Key) >= len(v.pressed) {
		return
	}
	v.pressed[ke.Key] = ke.IsPress
}

// IsPressed reports whether k is currently in the pressed set.
func (v *VirtualKeyboard) IsPressed(k Key) bool {
	if int(k) < 0 || int(k) >= len(v.pressed) {
		return false
	}
	return v.pressed[k]
}

// Pressed returns a snapshot slice of every key currently pressed, in
// ascending Key order. Intended for the HID emitter and for tests; the
// engine itself never calls this.
func (v *VirtualKeyboard) Pressed() []Key {
	var out []Key
	for k, p := range v.pressed {
		if p {
			out = append(out, Key(k))
		}
	}
	return out
}
