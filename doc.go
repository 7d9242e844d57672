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

// Package dmk is the decision core of a programmable mechanical-keyboard
// firmware. It turns a time-varying bitmap of physical-switch state into a
// stream of virtual-key and layer events, through configurable per-key
// behaviors (plain keypress, momentary layer, hold/tap).
//
// The engine is built for resource-constrained microcontrollers: every
// container is statically bounded, nothing allocates on the heap after
// construction, and control flow is a deterministic, single-threaded
// cooperative loop driven by a host main loop calling Engine.Step
// repeatedly. There is no preemption and no suspension point inside Step;
// the host supplies two narrow collaborators, PhysicalLayout and Timer, and
// pulls VirtualKeyboard state back out.
package dmk
