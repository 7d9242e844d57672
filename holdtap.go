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

// holdTapStateKind is the HoldTap state machine's three states. Pending is
// the only non-terminal one; DecidedHold and DecidedTap are terminal for
// the life of the press (a HoldTap's state never reverts).
type holdTapStateKind uint8

const (
	holdTapPending holdTapStateKind = iota
	holdTapDecidedHold
	holdTapDecidedTap
)

// HoldTap is the most intricate behavior: on press it either optimistically
// starts its hold argument or waits, and the first of "release" or "timeout
// elapses" decides whether the key was a tap or a hold. See §4.3 for the
// full transition table; this type implements it exactly.
type HoldTap struct {
	State              holdTapStateKind
	Hold               SimpleBehavior
	Tap                SimpleBehavior
	Timeout            Duration
	HoldWhileUndecided bool
}

// onPress implements the Pending row of the on_press column. HoldTap never
// changes state on press; the decision is made on release or timeout.
func (h *HoldTap) onPress() EVec {
	if h.HoldWhileUndecided {
		return singleEVec(NewBehaviorKeyEvent(BehaviorKeyEvent{
			Behavior: h.Hold.asBehavior(),
			IsPress:  true,
		}))
	}
	return emptyEVec()
}

// onRelease implements the on_release column. A release while Pending
// always decides Tap; a release while DecidedHold ends the hold; a release
// while DecidedTap cannot legally occur (the key was already released to
// reach DecidedTap) and is a programmer-error panic, matching §7 category
// 1.
func (h *HoldTap) onRelease() EVec {
	switch h.State {
	case holdTapPending:
		h.State = holdTapDecidedTap
		var v EVec
		if h.HoldWhileUndecided {
			v.PushBack(NewBehaviorKeyEvent(BehaviorKeyEvent{
				Behavior: h.Hold.asBehavior(),
				IsPress:  false,
			}))
		}
		v.PushBack(NewSpecialEvent(SpecialEvent{
			Kind:     SpecialEventTapBehavior,
			Behavior: h.Tap.asBehavior(),
		}))
		return v
	case holdTapDecidedHold:
		return singleEVec(NewBehaviorKeyEvent(BehaviorKeyEvent{
			Behavior: h.Hold.asBehavior(),
			IsPress:  false,
		}))
	default: // holdTapDecidedTap
		panicConfig(ErrUnknownHeldKey, "on_release observed in DecidedTap state")
		return emptyEVec()
	}
}

// afterDelay implements the after_delay column. A stale fire that arrives
// after the decision is already made (DecidedHold or DecidedTap) is a safe
// no-op, per §5's cancellation model: there is no way to unschedule a
// timer, so the behavior itself must absorb a fire it no longer cares
// about.
func (h *HoldTap) afterDelay() EVec {
	if h.State != holdTapPending {
		return emptyEVec()
	}
	h.State = holdTapDecidedHold
	if h.HoldWhileUndecided {
		// The hold was already started optimistically at press time.
		return emptyEVec()
	}
	return singleEVec(NewBehaviorKeyEvent(BehaviorKeyEvent{
		Behavior: h.Hold.asBehavior(),
		IsPress:  true,
	}))
}
