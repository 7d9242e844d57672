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

// Static capacities. Every bounded container in this package is sized by
// one of these constants; sizing them larger costs RAM linearly, and
// exceeding one at runtime is a configuration bug, not a condition to
// gracefully degrade from.
const (
	// MaxKeys is the largest physical key count a PhysicalLayout may
	// report.
	MaxKeys = 110

	// MaxLayers is the overlay-stack capacity of a LayerStack, not
	// counting the always-resident base layer.
	MaxLayers = 10

	// EVecLen is the maximum number of events a single Behavior
	// operation (OnPress, OnRelease, AfterDelay) may produce.
	EVecLen = 5

	// EventQueueLen is the FIFO event queue capacity.
	EventQueueLen = 100

	// TimerQueueLen is the sorted timer-trigger queue capacity.
	TimerQueueLen = 100

	// TapDuration is the press/release spacing the engine synthesizes
	// for SpecialEventTapBehavior, in microseconds (100ms).
	TapDuration Duration = 100_000
)
