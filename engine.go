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

// Engine is the phase orchestrator: it owns the LayerStack, the
// VirtualKeyboard, the event and timer queues, the held-key set, and the
// host's PhysicalLayout/Timer collaborators, and ties them together in
// Step. Step never blocks, spawns, or yields; it runs one iteration of
// timer-drain, event-drain, physical-scan to completion and returns.
type Engine struct {
	layers  *LayerStack
	layout  PhysicalLayout
	clock   Timer
	vboard  VirtualKeyboard
	events  EventQueue
	timers  TimerQueue
	held    HeldKey
	prevBmp [MaxKeys]bool
}

// NewEngine builds an Engine over the given layer set, physical layout,
// and clock. layers[0] is the base layer (see NewLayerStack).
func NewEngine(layers []Layer, layout PhysicalLayout, clock Timer) *Engine {
	return &Engine{
		layers: NewLayerStack(layers),
		layout: layout,
		clock:  clock,
	}
}

// VirtualKeyboard returns the engine's current output surface, for a
// downstream HID emitter to pull from.
func (e *Engine) VirtualKeyboard() *VirtualKeyboard { return &e.vboard }

// LayerStack exposes the engine's layer stack, mainly for tests and
// diagnostics.
func (e *Engine) LayerStack() *LayerStack { return e.layers }

// HeldKey exposes the engine's held-key set, mainly for tests and
// diagnostics.
func (e *Engine) HeldKey() *HeldKey { return &e.held }

// Step runs one main-loop iteration: drain due timers (Phase A), drain the
// event queue (Phase B), then scan the physical layout for edges (Phase
// C). See §4.6 for the full semantics of each phase.
func (e *Engine) Step() {
	e.drainTimers()
	e.drainEvents()
	e.scan()
}

// drainTimers is Phase A: pop every timer trigger whose deadline has
// arrived and apply its consequence, in earliest-deadline-first order.
func (e *Engine) drainTimers() {
	now := e.clock.Now()
	for {
		t, ok := e.timers.PeekFront()
		if !ok || t.Time > now {
			return
		}
		e.timers.PopFront()

		switch t.Kind {
		case TimerTriggerBehavior:
			b := t.Behav
			keyIdx := e.held.FindByBehavior(b)
			if keyIdx < 0 {
				// The key this timer was armed for has already been released
				// and resolved some other way (e.g. a tap decided by release
				// before the timeout). There is no way to unschedule a timer
				// (section 5), so a fire with no live matching instance is
				// absorbed here rather than acted on from a stale snapshot.
				continue
			}
			ev := b.AfterDelay()
			for i := 0; i < ev.Len(); i++ {
				e.events.PushBack(ev.At(i))
			}
			e.held.ReplaceByKey(keyIdx, b)
		case TimerTriggerEvent:
			e.events.PushBack(t.Ev)
		}
	}
}

// drainEvents is Phase B: repeatedly pop from the event queue and apply,
// until the queue is empty. Events produced while applying an event (e.g.
// a HoldTap's BehaviorKeyEvent(hold) emitted by its own on_press) are
// processed in this same call, not deferred to the next Step.
func (e *Engine) drainEvents() {
	for {
		ev, ok := e.events.PopFront()
		if !ok {
			return
		}
		e.applyEvent(ev)
	}
}

func (e *Engine) applyEvent(ev Event) {
	switch ev.Kind {
	case EventNone:
		// Padding slot, no-op.

	case EventKeyEvent:
		e.vboard.Apply(ev.KeyEvent)

	case EventLayerEvent:
		switch ev.LayerEvent.Kind {
		case LayerEventAddLayer:
			e.layers.Push(ev.LayerEvent.LayerID)
		case LayerEventRemoveDownToLayer:
			e.layers.PopUntil(ev.LayerEvent.LayerID)
		}

	case EventSpecialEvent:
		e.applySpecialEvent(ev.Special)

	case EventBehaviorKeyEvent:
		e.applyBehaviorKeyEvent(ev.BehaviorKey)
	}
}

func (e *Engine) applyBehaviorKeyEvent(bke BehaviorKeyEvent) {
	b := bke.Behavior
	var produced EVec
	if bke.IsPress {
		produced = b.OnPress()
	} else {
		produced = b.OnRelease()
	}
	for i := 0; i < produced.Len(); i++ {
		e.events.PushBack(produced.At(i))
	}
	if bke.IsPress {
		if d, ok := b.TryGetDelay(); ok {
			e.timers.Insert(BehaviorTrigger(e.clock.AddDuration(d), b))
		}
	}
}

// applySpecialEvent handles SpecialEvent::TapBehavior: emit the tapped
// behavior's press events immediately, then schedule its release
// TapDuration later so a downstream HID consumer sees a complete
// press/release pair.
func (e *Engine) applySpecialEvent(se SpecialEvent) {
	switch se.Kind {
	case SpecialEventTapBehavior:
		b := se.Behavior
		pressed := b.OnPress()
		for i := 0; i < pressed.Len(); i++ {
			e.events.PushBack(pressed.At(i))
		}
		e.timers.Insert(EventTrigger(
			e.clock.AddDuration(TapDuration),
			NewBehaviorKeyEvent(BehaviorKeyEvent{Behavior: b, IsPress: false}),
		))
	}
}

// scan is Phase C: read the physical bitmap, diff against the previous
// one, and enqueue exactly one BehaviorKeyDown/BehaviorKeyUp per edge.
func (e *Engine) scan() {
	bmp := e.layout.GetBitmap()
	count := e.layout.KeyCount()

	for k := 0; k < count; k++ {
		now := bmp[k]
		was := e.prevBmp[k]

		switch {
		case now && !was:
			b := e.layers.FindKeyBehavior(k)
			e.events.PushBack(NewBehaviorKeyEvent(BehaviorKeyEvent{Behavior: b, IsPress: true}))
			e.held.Push(k, b)

		case !now && was:
			b, ok := e.held.TryRemoveByKey(k)
			if !ok {
				panicConfig(ErrUnknownHeldKey, "release observed for key index %d with no held entry", k)
			}
			e.events.PushBack(NewBehaviorKeyEvent(BehaviorKeyEvent{Behavior: b, IsPress: false}))
		}
	}

	e.prevBmp = bmp
}
