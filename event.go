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

// KeyEvent is a single virtual-key transition applied to a VirtualKeyboard.
type KeyEvent struct {
	Key     Key
	IsPress bool
}

// LayerEventKind tags the variants of LayerEvent.
type LayerEventKind uint8

const (
	// LayerEventAddLayer pushes a layer id onto the LayerStack.
	LayerEventAddLayer LayerEventKind = iota
	// LayerEventRemoveDownToLayer pops the LayerStack down to and
	// including the named layer id.
	LayerEventRemoveDownToLayer
)

// LayerEvent mutates the LayerStack.
type LayerEvent struct {
	Kind    LayerEventKind
	LayerID int
}

// SpecialEventKind tags the variants of SpecialEvent.
type SpecialEventKind uint8

const (
	// SpecialEventTapBehavior synthesizes a full press/release pair for
	// a simple behavior, separated by TapDuration.
	SpecialEventTapBehavior SpecialEventKind = iota
)

// SpecialEvent carries a payload that needs engine-level synthesis rather
// than a direct container mutation — currently only the "tap" half of a
// hold-tap decision.
type SpecialEvent struct {
	Kind     SpecialEventKind
	Behavior Behavior
}

// EventKind tags the variants of Event.
type EventKind uint8

const (
	// EventNone is a no-op padding slot.
	EventNone EventKind = iota
	// EventKeyEvent applies a KeyEvent to the VirtualKeyboard.
	EventKeyEvent
	// EventLayerEvent mutates the LayerStack.
	EventLayerEvent
	// EventSpecialEvent is handled specially by the engine (see
	// SpecialEventKind).
	EventSpecialEvent
	// EventBehaviorKeyEvent invokes a Behavior's OnPress or OnRelease.
	EventBehaviorKeyEvent
)

// Event is the closed sum type queued by EventQueue and produced by
// Behavior operations. Exactly one of the typed fields is meaningful,
// selected by Kind; this mirrors the tagged-union shape used throughout
// this package instead of an interface, so an Event stays a plain,
// copyable value that fits in a fixed-size queue slot.
type Event struct {
	Kind        EventKind
	KeyEvent    KeyEvent
	LayerEvent  LayerEvent
	Special     SpecialEvent
	BehaviorKey BehaviorKeyEvent
}

// NoneEvent returns the no-op padding event.
func NoneEvent() Event { return Event{Kind: EventNone} }

// NewKeyEvent wraps a KeyEvent as an Event.
func NewKeyEvent(ke KeyEvent) Event {
	return Event{Kind: EventKeyEvent, KeyEvent: ke}
}

// NewLayerEvent wraps a LayerEvent as an Event.
func NewLayerEvent(le LayerEvent) Event {
	return Event{Kind: EventLayerEvent, LayerEvent: le}
}

// NewSpecialEvent wraps a SpecialEvent as an Event.
func NewSpecialEvent(se SpecialEvent) Event {
	return Event{Kind: EventSpecialEvent, Special: se}
}

// NewBehaviorKeyEvent wraps a BehaviorKeyEvent as an Event.
func NewBehaviorKeyEvent(bke BehaviorKeyEvent) Event {
	return Event{Kind: EventBehaviorKeyEvent, BehaviorKey: bke}
}

// BehaviorKeyEvent names a physical-key transition (press or release) that
// must be applied to a specific Behavior instance — the one retrieved from
// the LayerStack at press time, or from the HeldKey set at release time.
type BehaviorKeyEvent struct {
	Behavior Behavior
	IsPress  bool
}

// EVec is a bounded, stack-allocated vector of up to EVecLen events, the
// return type of every Behavior operation. It never allocates and panics
// on overflow, since exceeding EVecLen is a configuration bug (a behavior
// producing more events than the static bound allows).
type EVec struct {
	items [EVecLen]Event
	len   int
}

// Len reports how many events are currently stored.
func (v *EVec) Len() int { return v.len }

// At returns the event at index i. Callers are expected to range over
// [0, Len()).
func (v *EVec) At(i int) Event { return v.items[i] }

// PushBack appends e, panicking if the vector is already at EVecLen.
func (v *EVec) PushBack(e Event) {
	if v.len >= EVecLen {
		panicConfig(ErrQueueFull, "EVec overflow, capacity %d", EVecLen)
	}
	v.items[v.len] = e
	v.len++
}

// PopBack removes and returns the last event, reporting false if empty.
func (v *EVec) PopBack() (Event, bool) {
	if v.len == 0 {
		return Event{}, false
	}
	v.len--
	return v.items[v.len], true
}

// emptyEVec returns an EVec with no events, the usual return value for
// stateless or no-op behavior operations.
func emptyEVec() EVec {
	return EVec{}
}

// singleEVec builds an EVec containing exactly one event.
func singleEVec(e Event) EVec {
	var v EVec
	v.PushBack(e)
	return v
}
