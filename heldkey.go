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

// HeldKeyEntry pairs a physical key index with the exact behavior instance
// it activated. It is the engine's authoritative record of which behavior
// a release must be applied to: the behavior returned by
// LayerStack.FindKeyBehavior at release time may differ from what was
// resolved at press time (an intervening layer change), so releases must
// always use the stored, possibly-evolved instance.
type HeldKeyEntry struct {
	KeyIndex int
	Behavior Behavior
}

// HeldKey is a bounded, ordered vector of HeldKeyEntry, capacity MaxKeys.
// At most one entry exists per KeyIndex.
type HeldKey struct {
	entries [MaxKeys]HeldKeyEntry
	len     int
}

// Len reports how many keys are currently tracked as held.
func (h *HeldKey) Len() int { return h.len }

func (h *HeldKey) indexOf(keyIndex int) int {
	for i := 0; i < h.len; i++ {
		if h.entries[i].KeyIndex == keyIndex {
			return i
		}
	}
	return -1
}

// Push records a newly-pressed key and the behavior instance it resolved
// to. Panics if keyIndex is already held (a scan-phase invariant
// violation) or if the set is already at MaxKeys.
func (h *HeldKey) Push(keyIndex int, b Behavior) {
	if h.indexOf(keyIndex) >= 0 {
		panicConfig(ErrUnknownHeldKey, "key index %d pressed while already held", keyIndex)
	}
	if h.len >= MaxKeys {
		panicConfig(ErrHeldKeyFull, "held key set overflow, capacity %d", MaxKeys)
	}
	h.entries[h.len] = HeldKeyEntry{KeyIndex: keyIndex, Behavior: b}
	h.len++
}

// ReplaceByKey overwrites the behavior stored for keyIndex, used by Phase A
// to reconcile a HoldTap's post-AfterDelay state back into the held-key
// set. Reports false if no entry exists for keyIndex.
func (h *HeldKey) ReplaceByKey(keyIndex int, b Behavior) bool {
	i := h.indexOf(keyIndex)
	if i < 0 {
		return false
	}
	h.entries[i].Behavior = b
	return true
}

// FindByBehavior returns the key index of the entry whose stored behavior
// is the same instance as b (§4.6.1's structural-equality lookup), or -1
// if none matches.
func (h *HeldKey) FindByBehavior(b Behavior) int {
	for i := 0; i < h.len; i++ {
		if sameInstance(h.entries[i].Behavior, b) {
			return h.entries[i].KeyIndex
		}
	}
	return -1
}

// TryRemoveByKey removes and returns the entry for keyIndex, reporting
// false if none exists.
func (h *HeldKey) TryRemoveByKey(keyIndex int) (Behavior, bool) {
	i := h.indexOf(keyIndex)
	if i < 0 {
		return Behavior{}, false
	}
	b := h.entries[i].Behavior
	copy(h.entries[i:h.len-1], h.entries[i+1:h.len])
	h.len--
	return b, true
}

// Iter returns a snapshot slice of every held-key entry, for tests and
// diagnostics.
func (h *HeldKey) Iter() []HeldKeyEntry {
	out := make([]HeldKeyEntry, h.len)
	copy(out, h.entries[:h.len])
	return out
}
