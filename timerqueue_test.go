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

func TestTimerQueueSortedInsert(t *testing.T) {
	var q TimerQueue
	q.Insert(EventTrigger(30, NoneEvent()))
	q.Insert(EventTrigger(10, NoneEvent()))
	q.Insert(EventTrigger(20, NoneEvent()))

	want := []Instant{10, 20, 30}
	for _, w := range want {
		tr, ok := q.PopFront()
		if !ok {
			t.Fatalf("PopFront() reported empty, want time %d", w)
		}
		if tr.Time != w {
			t.Errorf("PopFront().Time = %d, want %d", tr.Time, w)
		}
	}
}

func TestTimerQueuePeekDoesNotRemove(t *testing.T) {
	var q TimerQueue
	q.Insert(EventTrigger(5, NoneEvent()))

	if _, ok := q.PeekFront(); !ok {
		t.Fatalf("PeekFront() reported empty")
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d after Peek, want 1", q.Len())
	}
}

func TestTimerQueueOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on overflow")
		}
	}()
	var q TimerQueue
	for i := 0; i <= TimerQueueLen; i++ {
		q.Insert(EventTrigger(Instant(i), NoneEvent()))
	}
}
