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

import "fmt"

// Key is a virtual keycode emitted by the engine toward the downstream HID
// report emitter. The set is closed and known at compile time: every value
// is a named constant, equality is by discriminant, and a Key is never
// constructed from arbitrary runtime input.
type Key int16

const (
	KeyNone Key = iota

	// Alphanumerics.
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Modifiers.
	KeyLCtrl
	KeyLShift
	KeyLAlt
	KeyLGui
	KeyRCtrl
	KeyRShift
	KeyRAlt
	KeyRGui

	// Navigation cluster.
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
	KeyInsert
	KeyDelete

	// Editing / control.
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyTab
	KeySpace
	KeyCapsLock
	KeyPrintScreen
	KeyPause
	KeyMenu

	// Function row, F1 through F24.
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	// Symbols.
	KeyMinus
	KeyEqual
	KeyLBracket
	KeyRBracket
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash

	keyCount
)

// Aliases kept for readability at call sites (hold-tap mod key, etc).
const (
	KeyLSFT = KeyLShift
	KeyRSFT = KeyRShift
	KeyLCTL = KeyLCtrl
	KeyRCTL = KeyRCtrl
)

var keyNames = [...]string{
	KeyNone: "None",
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F",
	KeyG: "G", KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L",
	KeyM: "M", KeyN: "N", KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R",
	KeyS: "S", KeyT: "T", KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X",
	KeyY: "Y", KeyZ: "Z",
	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",
	KeyLCtrl: "LCtrl", KeyLShift: "LShift", KeyLAlt: "LAlt", KeyLGui: "LGui",
	KeyRCtrl: "RCtrl", KeyRShift: "RShift", KeyRAlt: "RAlt", KeyRGui: "RGui",
	KeyUp: "Up", KeyDown: "Down", KeyLeft: "Left", KeyRight: "Right",
	KeyHome: "Home", KeyEnd: "End", KeyPgUp: "PgUp", KeyPgDn: "PgDn",
	KeyInsert: "Insert", KeyDelete: "Delete",
	KeyEnter: "Enter", KeyEsc: "Esc", KeyBackspace: "Backspace",
	KeyTab: "Tab", KeySpace: "Space", KeyCapsLock: "CapsLock",
	KeyPrintScreen: "PrintScreen", KeyPause: "Pause", KeyMenu: "Menu",
	KeyMinus: "Minus", KeyEqual: "Equal", KeyLBracket: "LBracket",
	KeyRBracket: "RBracket", KeyBackslash: "Backslash",
	KeySemicolon: "Semicolon", KeyQuote: "Quote", KeyGrave: "Grave",
	KeyComma: "Comma", KeyPeriod: "Period", KeySlash: "Slash",
}

// String returns a printable name for k, in the style of "F13" for keys in
// the function row and "Key(n)" for anything out of the closed enumeration
// (which should not occur in practice, since Key is never built from
// runtime input).
func (k Key) String() string {
	if k >= KeyF1 && k <= KeyF24 {
		return fmt.Sprintf("F%d", int(k-KeyF1)+1)
	}
	if int(k) >= 0 && int(k) < len(keyNames) && keyNames[k] != "" {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// keysByName is built once, reversing String() for every named key, so
// config loaders can turn a human-written key name back into a Key without
// hand-maintaining a second table.
var keysByName = func() map[string]Key {
	m := make(map[string]Key, keyCount)
	for k := Key(1); k < keyCount; k++ {
		m[k.String()] = k
	}
	return m
}()

// ParseKey looks up a Key by its String() name (e.g. "A", "F13", "LShift"),
// reporting false if name does not match any named key.
func ParseKey(name string) (Key, bool) {
	k, ok := keysByName[name]
	return k, ok
}
