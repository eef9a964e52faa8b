package react

import (
	"sync"
	"time"
)

// Scheduler runs a callback once after a delay, with debounce semantics:
// scheduling under a key that is still pending discards the pending callback
// and restarts the window with the new one. Re-registering a key is also the
// only way to cancel it.
type Scheduler interface {
	Schedule(key string, delay time.Duration, fn func())
}

// TimerScheduler debounces on wall-clock timers. Callbacks run on the timer
// goroutine, so hosts that want the cooperative single-threaded model should
// pump a ManualScheduler from their own loop instead.
type TimerScheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{
		timers: map[string]*time.Timer{},
	}
}

func (ts *TimerScheduler) Schedule(key string, delay time.Duration, fn func()) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if prev, ok := ts.timers[key]; ok {
		prev.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		ts.mu.Lock()
		// A replaced timer can still expire before Stop lands; it must
		// not fire once it is no longer the current entry for its key.
		current := ts.timers[key] == t
		if current {
			delete(ts.timers, key)
		}
		ts.mu.Unlock()
		if current {
			fn()
		}
	})
	ts.timers[key] = t
}

// Stop cancels every pending key. Nothing fires afterwards.
func (ts *TimerScheduler) Stop() {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	for key, t := range ts.timers {
		t.Stop()
		delete(ts.timers, key)
	}
}

// ManualScheduler debounces on a virtual clock that only moves when the host
// calls Advance. Callbacks fire on the caller's goroutine in deadline order,
// which keeps delayed notification deterministic for game loops and tests.
type ManualScheduler struct {
	now     time.Duration
	seq     uint64
	pending map[string]*manualEntry
}

type manualEntry struct {
	key string
	due time.Duration
	seq uint64
	fn  func()
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{
		pending: map[string]*manualEntry{},
	}
}

func (ms *ManualScheduler) Schedule(key string, delay time.Duration, fn func()) {
	ms.seq++
	ms.pending[key] = &manualEntry{
		key: key,
		due: ms.now + delay,
		seq: ms.seq,
		fn:  fn,
	}
}

// Advance moves the clock by d and fires everything that came due, earliest
// deadline first. Callbacks may schedule again; entries falling due inside
// the same window fire in the same call.
func (ms *ManualScheduler) Advance(d time.Duration) {
	ms.now += d
	for {
		e := ms.nextDue()
		if e == nil {
			return
		}
		delete(ms.pending, e.key)
		e.fn()
	}
}

// Pending reports how many keys are waiting for the clock.
func (ms *ManualScheduler) Pending() int {
	return len(ms.pending)
}

func (ms *ManualScheduler) nextDue() *manualEntry {
	var next *manualEntry
	for _, e := range ms.pending {
		if e.due > ms.now {
			continue
		}
		if next == nil || e.due < next.due || (e.due == next.due && e.seq < next.seq) {
			next = e
		}
	}
	return next
}
