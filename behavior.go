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

// BehaviorKind tags the closed universe of Behavior variants. Dispatch is
// a tagged-union switch rather than an interface: behaviors must remain
// plain, value-copyable data so they can be copied into a HeldKey entry
// or a queued TimerTrigger without any heap allocation or indirection,
// which matters both for no_std-style embedded targets and for the
// value-copy semantics this engine relies on for hold-tap state (§9).
type BehaviorKind uint8

const (
	// BehaviorNoOp emits nothing on press, release, or delay.
	BehaviorNoOp BehaviorKind = iota
	// BehaviorTransparent is meaningful only inside a Layer: it defers
	// resolution to the next layer down and emits nothing itself.
	BehaviorTransparent
	// BehaviorKeyPress emits a KeyDown/KeyUp pair for a single Key.
	BehaviorKeyPress
	// BehaviorMomentaryLayer pushes/pops a layer id.
	BehaviorMomentaryLayer
	// BehaviorHoldTap is the stateful hold/tap decision behavior; see
	// holdtap.go.
	BehaviorHoldTap
)

// IsSimple reports whether k is legal as a HoldTap hold/tap argument.
// Simple behaviors are exactly the ones with no embedded state machine:
// KeyPress and MomentaryLayer. The SimpleBehavior type below enforces the
// one-level nesting restriction from §3 at the type level: a HoldTap can
// only hold a SimpleBehavior, which has no field capable of naming another
// HoldTap.
func (k BehaviorKind) IsSimple() bool {
	return k == BehaviorKeyPress || k == BehaviorMomentaryLayer
}

// SimpleBehavior is the restricted subset of Behavior legal as a HoldTap's
// hold/tap argument: KeyPress or MomentaryLayer only, with no delay and no
// internal state. Keeping this as its own type (rather than reusing
// Behavior, which embeds a HoldTap) is what makes "a hold-tap whose hold
// or tap is itself a hold-tap" a compile error instead of a runtime check.
type SimpleBehavior struct {
	Kind    BehaviorKind // BehaviorKeyPress or BehaviorMomentaryLayer
	Key     Key          // BehaviorKeyPress
	LayerID int          // BehaviorMomentaryLayer
}

// SimpleKeyPress returns a SimpleBehavior that presses/releases k.
func SimpleKeyPress(k Key) SimpleBehavior {
	return SimpleBehavior{Kind: BehaviorKeyPress, Key: k}
}

// SimpleMomentaryLayer returns a SimpleBehavior that adds/removes layerID
// while held.
func SimpleMomentaryLayer(layerID int) SimpleBehavior {
	return SimpleBehavior{Kind: BehaviorMomentaryLayer, LayerID: layerID}
}

// onActivate returns the event emitted when s starts (on a directly
// pressed key, or when a HoldTap's hold/tap decision activates it).
func (s SimpleBehavior) onActivate() Event {
	switch s.Kind {
	case BehaviorKeyPress:
		return NewKeyEvent(KeyEvent{Key: s.Key, IsPress: true})
	case BehaviorMomentaryLayer:
		return NewLayerEvent(LayerEvent{Kind: LayerEventAddLayer, LayerID: s.LayerID})
	default:
		return NoneEvent()
	}
}

// onDeactivate returns the event emitted when s ends.
func (s SimpleBehavior) onDeactivate() Event {
	switch s.Kind {
	case BehaviorKeyPress:
		return NewKeyEvent(KeyEvent{Key: s.Key, IsPress: false})
	case BehaviorMomentaryLayer:
		return NewLayerEvent(LayerEvent{Kind: LayerEventRemoveDownToLayer, LayerID: s.LayerID})
	default:
		return NoneEvent()
	}
}

// asBehavior widens s back into a full Behavior, e.g. so a KeyPress or
// MomentaryLayer mapped directly onto a Layer slot and a KeyPress used as
// a HoldTap's tap argument share one representation for OnPress/OnRelease.
func (s SimpleBehavior) asBehavior() Behavior {
	return Behavior{Kind: s.Kind, Key: s.Key, LayerID: s.LayerID}
}

// Behavior is the central polymorphic value of the engine: a per-key
// state machine that turns press/release/delay notifications into events.
// Exactly the fields relevant to Kind are populated; HoldTap is an
// embedded value (not a pointer), so copying a Behavior copies its entire
// hold-tap state along with it — the mechanism §9 describes for carrying
// state between the HeldKey set and queued timer triggers.
type Behavior struct {
	Kind BehaviorKind

	// BehaviorKeyPress
	Key Key

	// BehaviorMomentaryLayer
	LayerID int

	// BehaviorHoldTap
	HoldTap HoldTap
}

// NoOp returns the stateless sentinel behavior that emits nothing.
func NoOp() Behavior { return Behavior{Kind: BehaviorNoOp} }

// TransparentBehavior returns the layer fallthrough sentinel.
func TransparentBehavior() Behavior { return Behavior{Kind: BehaviorTransparent} }

// KeyPress returns a stateless behavior that presses/releases k.
func KeyPress(k Key) Behavior {
	return Behavior{Kind: BehaviorKeyPress, Key: k}
}

// MomentaryLayer returns a stateless behavior that adds/removes layerID
// while held.
func MomentaryLayer(layerID int) Behavior {
	return Behavior{Kind: BehaviorMomentaryLayer, LayerID: layerID}
}

// NewHoldTap returns a Behavior wrapping a freshly-Pending HoldTap state
// machine. hold and tap are restricted to SimpleBehavior, enforcing the
// non-nesting rule at the call site.
func NewHoldTap(hold, tap SimpleBehavior, timeout Duration, holdWhileUndecided bool) Behavior {
	return Behavior{
		Kind: BehaviorHoldTap,
		HoldTap: HoldTap{
			State:              holdTapPending,
			Hold:               hold,
			Tap:                tap,
			Timeout:            timeout,
			HoldWhileUndecided: holdWhileUndecided,
		},
	}
}

// asSimple converts a KeyPress or MomentaryLayer Behavior back down to a
// SimpleBehavior. Callers must only invoke this on a behavior known to
// satisfy Kind.IsSimple().
func (b Behavior) asSimple() SimpleBehavior {
	return SimpleBehavior{Kind: b.Kind, Key: b.Key, LayerID: b.LayerID}
}

// OnPress is invoked when the behavior's source key transitions
// unpressed -> pressed. It returns at most EVecLen events.
func (b *Behavior) OnPress() EVec {
	switch b.Kind {
	case BehaviorKeyPress, BehaviorMomentaryLayer:
		return singleEVec(b.asSimple().onActivate())
	case BehaviorHoldTap:
		return b.HoldTap.onPress()
	default: // BehaviorNoOp, BehaviorTransparent
		return emptyEVec()
	}
}

// OnRelease is invoked when the behavior's source key transitions
// pressed -> unpressed.
func (b *Behavior) OnRelease() EVec {
	switch b.Kind {
	case BehaviorKeyPress, BehaviorMomentaryLayer:
		return singleEVec(b.asSimple().onDeactivate())
	case BehaviorHoldTap:
		return b.HoldTap.onRelease()
	default:
		return emptyEVec()
	}
}

// TryGetDelay returns the duration after which AfterDelay should fire, if
// this behavior arms a one-shot timer on press.
func (b Behavior) TryGetDelay() (Duration, bool) {
	if b.Kind == BehaviorHoldTap {
		return b.HoldTap.Timeout, true
	}
	return 0, false
}

// AfterDelay is invoked when a timer armed by TryGetDelay fires.
func (b *Behavior) AfterDelay() EVec {
	if b.Kind == BehaviorHoldTap {
		return b.HoldTap.afterDelay()
	}
	return emptyEVec()
}

// sameInstance reports whether a and b are the same behavior instance for
// the purpose of Phase A's HeldKey lookup (§4.6.1). Structural equality
// suffices over this closed variant set: two HoldTap behaviors are the
// same instance only while their full state (including the mutable
// hold-tap fields) still matches, which is exactly the comparison Phase A
// needs to decide whether a timer fire still corresponds to a live press.
func sameInstance(a, b Behavior) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case BehaviorKeyPress:
		return a.Key == b.Key
	case BehaviorMomentaryLayer:
		return a.LayerID == b.LayerID
	case BehaviorHoldTap:
		return a.HoldTap == b.HoldTap
	default:
		return true
	}
}
