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

// Instant is a monotonic microsecond timestamp.
type Instant int64

// Duration is a span of microseconds.
type Duration int64

// Milliseconds builds a Duration from a millisecond count, a convenience
// for behavior configuration (hold-tap timeouts are usually specified in
// whole milliseconds).
func Milliseconds(ms int64) Duration {
	return Duration(ms * 1000)
}

// Timer is the engine's clock collaborator: a monotonic microsecond clock
// supplied by the host. Resolution may be coarser than one microsecond,
// but ordering between successive calls must be preserved.
type Timer interface {
	// Now returns the current Instant. It must be nondecreasing over the
	// process lifetime.
	Now() Instant

	// AddDuration computes Now() + d.
	AddDuration(d Duration) Instant
}

// TimerTriggerKind tags the payload carried by a TimerTrigger.
type TimerTriggerKind uint8

const (
	// TimerTriggerBehavior invokes AfterDelay on the behavior stored in
	// the matching HeldKey entry.
	TimerTriggerBehavior TimerTriggerKind = iota
	// TimerTriggerEvent enqueues a fully-formed Event directly, used for
	// the synthesized tap release (§4.6.2).
	TimerTriggerEvent
)

// TimerTrigger is a deadline-ordered unit of pending work.
type TimerTrigger struct {
	Time  Instant
	Kind  TimerTriggerKind
	Behav Behavior
	Ev    Event
}

// BehaviorTrigger builds a TimerTrigger that will invoke AfterDelay on b
// when it fires.
func BehaviorTrigger(at Instant, b Behavior) TimerTrigger {
	return TimerTrigger{Time: at, Kind: TimerTriggerBehavior, Behav: b}
}

// EventTrigger builds a TimerTrigger that enqueues ev directly when it
// fires.
func EventTrigger(at Instant, ev Event) TimerTrigger {
	return TimerTrigger{Time: at, Kind: TimerTriggerEvent, Ev: ev}
}
