package main

import (
	"sync"
	"time"

	"github.com/DylanBulfin/dmk"
)

// keyHoldWindow is how long a terminal keystroke is reported as "pressed"
// after it arrives. A terminal only ever tells us a key was struck, never
// released, so this demo approximates a press/release pair the same way
// the original Rust demo's CrosstermVirtKeys timestamps did — hold-window
// expiry standing in for a real key-up.
const keyHoldWindow = 400 * time.Millisecond

// termLayout is a dmk.PhysicalLayout backed by recent-keystroke timestamps
// instead of real matrix-scan hardware.
type termLayout struct {
	mu      sync.Mutex
	lastHit [dmk.MaxKeys]time.Time
	count   int
}

func newTermLayout(count int) *termLayout {
	return &termLayout{count: count}
}

func (l *termLayout) KeyCount() int { return l.count }

// hit records that the terminal just reported a keystroke mapped to idx.
func (l *termLayout) hit(idx int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if idx >= 0 && idx < l.count {
		l.lastHit[idx] = time.Now()
	}
}

func (l *termLayout) GetBitmap() [dmk.MaxKeys]bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	var bmp [dmk.MaxKeys]bool
	now := time.Now()
	for i := 0; i < l.count; i++ {
		if !l.lastHit[i].IsZero() && now.Sub(l.lastHit[i]) < keyHoldWindow {
			bmp[i] = true
		}
	}
	return bmp
}
