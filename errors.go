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

import (
	"errors"
	"fmt"
)

// Sentinel errors for the configuration/programmer-error category of §7:
// violations of a data-model invariant. The engine treats all of these as
// fatal and panics with a *ConfigError wrapping the relevant sentinel, so a
// host that recovers (for diagnostics only — continued execution would
// corrupt the key/behavior pairing invariant) can still identify the cause
// with errors.Is.
var (
	// ErrQueueFull indicates the event queue has reached EventQueueLen
	// and cannot accept another event, or that an EVec already holds
	// EVecLen events.
	ErrQueueFull = errors.New("event queue full")

	// ErrTimerQueueFull indicates the timer queue has reached
	// TimerQueueLen and cannot accept another trigger.
	ErrTimerQueueFull = errors.New("timer queue full")

	// ErrLayerStackFull indicates an overlay push was attempted with
	// MaxLayers overlays already resident.
	ErrLayerStackFull = errors.New("layer stack full")

	// ErrHeldKeyFull indicates the held-key set has reached MaxKeys
	// entries.
	ErrHeldKeyFull = errors.New("held key set full")

	// ErrUnknownHeldKey indicates a release was observed for a physical
	// key index with no corresponding held-key entry, violating the
	// invariant that every press is tracked until its matching release.
	// It is also raised when HeldKey.Push is given a key index that is
	// already held, and when a HoldTap in the DecidedTap state is released.
	ErrUnknownHeldKey = errors.New("release for key with no held entry")

	// ErrLayerIndexRange indicates a key index outside a layer's
	// declared key count was addressed.
	ErrLayerIndexRange = errors.New("key index out of layer range")
)

// ConfigError wraps one of the sentinels above with the context that
// triggered it. It is always fatal: the engine panics with a *ConfigError
// rather than attempting partial recovery, since continued execution past
// a violated invariant would corrupt the pairing between physical keys and
// the behavior instances held for them.
type ConfigError struct {
	Err error
	Msg string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("dmk: %s: %v", e.Msg, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func panicConfig(sentinel error, format string, args ...any) {
	panic(&ConfigError{Err: sentinel, Msg: fmt.Sprintf(format, args...)})
}
