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

// fakeClock is a manually-advanced Timer, letting tests place timeouts at
// exact, deterministic instants instead of racing a wall clock.
type fakeClock struct {
	now Instant
}

func (c *fakeClock) Now() Instant                  { return c.now }
func (c *fakeClock) AddDuration(d Duration) Instant { return c.now + Instant(d) }

// fakeLayout is a settable bitmap PhysicalLayout, standing in for real
// matrix-scan hardware in tests.
type fakeLayout struct {
	count int
	bmp   [MaxKeys]bool
}

func (l *fakeLayout) KeyCount() int            { return l.count }
func (l *fakeLayout) GetBitmap() [MaxKeys]bool { return l.bmp }

// pressAndSettle sets key k down and steps the engine twice: once for the
// scan phase to notice the edge and queue a BehaviorKeyEvent, once more to
// fully drain that event (and anything it chains) through the queue. A
// physical edge seen in Phase C of one Step is only processed by Phase B of
// the next — see §4.6.
func (l *fakeLayout) pressAndSettle(e *Engine, k int) {
	l.bmp[k] = true
	e.Step()
	e.Step()
}

func (l *fakeLayout) releaseAndSettle(e *Engine, k int) {
	l.bmp[k] = false
	e.Step()
	e.Step()
}

// newHoldTapEngine builds a single-layer engine whose only key (index 0) is
// a HoldTap between a shift hold and an 'a' tap.
func newHoldTapEngine(holdWhileUndecided bool) (*Engine, *fakeClock, *fakeLayout) {
	layer := NewLayer(1)
	layer.Set(0, NewHoldTap(SimpleKeyPress(KeyLShift), SimpleKeyPress(KeyA), Milliseconds(200), holdWhileUndecided))

	clock := &fakeClock{}
	layout := &fakeLayout{count: 1}
	e := NewEngine([]Layer{layer}, layout, clock)
	return e, clock, layout
}

// Scenario: pure tap. The key is pressed and released well inside the
// timeout; the engine must resolve a tap, which presses then (after
// TapDuration) releases the tapped key.
func TestEngineScenarioPureTap(t *testing.T) {
	e, clock, layout := newHoldTapEngine(false)

	layout.pressAndSettle(e, 0)
	if e.VirtualKeyboard().IsPressed(KeyLShift) {
		t.Fatalf("shift pressed before any decision (non-optimistic)")
	}

	clock.now = 50_000 // 50ms, still well under the 200ms timeout
	layout.releaseAndSettle(e, 0)

	if !e.VirtualKeyboard().IsPressed(KeyA) {
		t.Fatalf("tap key 'a' not pressed after release-before-timeout")
	}
	if e.VirtualKeyboard().IsPressed(KeyLShift) {
		t.Errorf("shift pressed after a decided tap")
	}

	clock.now = 50_000 + Instant(TapDuration)
	e.Step()

	if e.VirtualKeyboard().IsPressed(KeyA) {
		t.Errorf("tap key 'a' still pressed after TapDuration elapsed")
	}
}

// Scenario: hold-tap resolved as a hold by the optimistic path. With
// hold_while_undecided set, the hold argument activates immediately on
// press, and a timeout arriving before release simply confirms the
// decision without emitting a second press.
func TestEngineScenarioOptimisticHold(t *testing.T) {
	e, clock, layout := newHoldTapEngine(true)

	layout.pressAndSettle(e, 0)
	if !e.VirtualKeyboard().IsPressed(KeyLShift) {
		t.Fatalf("shift not pressed immediately under hold_while_undecided")
	}

	clock.now = 200_000 // exactly at the timeout
	e.Step()
	if !e.VirtualKeyboard().IsPressed(KeyLShift) {
		t.Errorf("shift no longer pressed after timeout decided hold")
	}

	layout.releaseAndSettle(e, 0)
	if e.VirtualKeyboard().IsPressed(KeyLShift) {
		t.Errorf("shift still pressed after release following decided hold")
	}
}

// Scenario: hold-tap decided as a hold via a plain (non-optimistic) timeout,
// with the key still down when the timer fires.
func TestEngineScenarioNonOptimisticHoldOnTimeout(t *testing.T) {
	e, clock, layout := newHoldTapEngine(false)

	layout.pressAndSettle(e, 0)
	if e.VirtualKeyboard().IsPressed(KeyLShift) {
		t.Fatalf("shift pressed before any decision")
	}

	clock.now = 200_000
	e.Step()
	if !e.VirtualKeyboard().IsPressed(KeyLShift) {
		t.Fatalf("shift not pressed after non-optimistic timeout fired")
	}

	layout.releaseAndSettle(e, 0)
	if e.VirtualKeyboard().IsPressed(KeyLShift) {
		t.Errorf("shift still pressed after release following decided hold")
	}
}

// Scenario: momentary layer. Holding key 0 (a MomentaryLayer) exposes key 1
// under the overlay; releasing it restores the base mapping.
func TestEngineScenarioMomentaryLayer(t *testing.T) {
	base := NewLayer(2)
	base.Set(1, KeyPress(KeyB))
	base.Set(0, MomentaryLayer(1))

	nav := NewLayer(2)
	nav.Set(1, KeyPress(KeyUp))

	clock := &fakeClock{}
	layout := &fakeLayout{count: 2}
	e := NewEngine([]Layer{base, nav}, layout, clock)

	layout.pressAndSettle(e, 0) // hold the momentary-layer key

	layout.pressAndSettle(e, 1)
	if !e.VirtualKeyboard().IsPressed(KeyUp) {
		t.Fatalf("overlay mapping not applied while momentary layer held")
	}

	layout.releaseAndSettle(e, 1)
	layout.releaseAndSettle(e, 0)

	layout.pressAndSettle(e, 1)
	if !e.VirtualKeyboard().IsPressed(KeyB) {
		t.Errorf("base mapping not restored after momentary layer released")
	}
}

// Scenario: queue draining ordering. Releasing a Pending (non-optimistic)
// hold-tap produces a SpecialEvent that is itself processed within the same
// drain call — the tap key goes down in the same Step that finishes
// draining the release, without waiting for a further Step.
func TestEngineScenarioQueueDrainingWithinOneStep(t *testing.T) {
	e, _, layout := newHoldTapEngine(false)

	layout.bmp[0] = true
	e.Step() // Phase C queues the press BehaviorKeyEvent
	e.Step() // Phase B arms the Pending state, no visible output yet

	layout.bmp[0] = false
	e.Step() // Phase C queues the release BehaviorKeyEvent

	if e.VirtualKeyboard().IsPressed(KeyA) {
		t.Fatalf("tap key pressed before the release event was drained")
	}

	e.Step() // Phase B drains release -> SpecialEvent -> tap press, all in one call

	if !e.VirtualKeyboard().IsPressed(KeyA) {
		t.Errorf("tap key not pressed by the end of the Step that drained the release")
	}
}

// A hold-tap's timeout timer cannot be unscheduled once a tap decision
// removes the key from HeldKey first (§5). When that stale timer later
// fires, it must be absorbed as a no-op rather than re-pressing the hold
// argument from its stale, still-Pending snapshot.
func TestEngineStaleHoldTimeoutAfterTapIsAbsorbed(t *testing.T) {
	e, clock, layout := newHoldTapEngine(false)

	layout.pressAndSettle(e, 0)

	clock.now = 50_000
	layout.releaseAndSettle(e, 0)
	if !e.VirtualKeyboard().IsPressed(KeyA) {
		t.Fatalf("tap key not pressed after release-before-timeout")
	}

	clock.now = 50_000 + Instant(TapDuration)
	e.Step()
	if e.VirtualKeyboard().IsPressed(KeyA) {
		t.Fatalf("tap key still pressed after TapDuration elapsed")
	}

	// Advance past the original 200ms hold-tap timeout. The stale timer
	// armed at press time must not resurrect the hold argument.
	clock.now = 200_000
	e.Step()

	if e.VirtualKeyboard().IsPressed(KeyLShift) {
		t.Errorf("stale hold timeout re-pressed shift after the key was already released and decided as a tap")
	}
}
