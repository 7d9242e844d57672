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

import "testing"

func TestHeldKeyPushAndRemove(t *testing.T) {
	var h HeldKey
	h.Push(3, KeyPress(KeyA))

	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}

	b, ok := h.TryRemoveByKey(3)
	if !ok {
		t.Fatalf("TryRemoveByKey(3) reported not found")
	}
	if b.Kind != BehaviorKeyPress || b.Key != KeyA {
		t.Errorf("TryRemoveByKey(3) = %+v, want KeyPress(A)", b)
	}
	if h.Len() != 0 {
		t.Errorf("Len() = %d after remove, want 0", h.Len())
	}
}

func TestHeldKeyDoublePressPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for double-press of same key index")
		}
	}()
	var h HeldKey
	h.Push(1, KeyPress(KeyA))
	h.Push(1, KeyPress(KeyB))
}

func TestHeldKeyReplaceByKey(t *testing.T) {
	var h HeldKey
	h.Push(1, NewHoldTap(SimpleKeyPress(KeyLShift), SimpleKeyPress(KeyA), Milliseconds(200), false))

	entries := h.Iter()
	decided := entries[0].Behavior
	decided.HoldTap.State = holdTapDecidedHold

	if !h.ReplaceByKey(1, decided) {
		t.Fatalf("ReplaceByKey(1) reported not found")
	}

	entries = h.Iter()
	if entries[0].Behavior.HoldTap.State != holdTapDecidedHold {
		t.Errorf("state after ReplaceByKey = %v, want DecidedHold", entries[0].Behavior.HoldTap.State)
	}
}

func TestHeldKeyFindByBehaviorStructuralMatch(t *testing.T) {
	var h HeldKey
	ht := NewHoldTap(SimpleKeyPress(KeyLShift), SimpleKeyPress(KeyA), Milliseconds(200), false)
	h.Push(5, ht)

	if idx := h.FindByBehavior(ht); idx != 5 {
		t.Errorf("FindByBehavior() = %d, want 5", idx)
	}
	if idx := h.FindByBehavior(KeyPress(KeyB)); idx != -1 {
		t.Errorf("FindByBehavior() for absent behavior = %d, want -1", idx)
	}
}

func TestHeldKeyOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on overflow")
		}
	}()
	var h HeldKey
	for i := 0; i <= MaxKeys; i++ {
		h.Push(i, KeyPress(KeyA))
	}
}
