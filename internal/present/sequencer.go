package present

import (
	"sync"
	"time"
)

// Timer is the stoppable handle returned by a Clock.
type Timer interface {
	Stop() bool
}

// Clock abstracts timer creation so reveal schedules can be tested without
// waiting on wall-clock time.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock is the Clock used outside of tests.
type SystemClock struct{}

// AfterFunc delegates to time.AfterFunc.
func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Handle represents one scheduled reveal batch. Cancel neutralizes every
// reveal that has not fired yet; reveals already delivered are unaffected.
type Handle struct {
	mu       sync.Mutex
	timers   []Timer
	canceled bool
}

// Cancel stops all pending reveals. Safe to call more than once and safe to
// call concurrently with firing timers.
func (h *Handle) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.canceled {
		return
	}
	h.canceled = true
	for _, t := range h.timers {
		t.Stop()
	}
	h.timers = nil
}

// Canceled reports whether the batch has been canceled.
func (h *Handle) Canceled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.canceled
}

// Schedule registers unit i for reveal at offset i*delay from now and
// returns immediately; reveals fire asynchronously on their own timers.
// Offsets are relative to batch start, not chained on prior reveals, so a
// slow emit callback does not push later reveals back. A nil clock uses the
// system clock. A non-positive delay emits the whole batch synchronously,
// in order, before returning.
func Schedule[T any](clock Clock, units []T, delay time.Duration, emit func(index int, unit T)) *Handle {
	if clock == nil {
		clock = SystemClock{}
	}

	h := &Handle{}

	if delay <= 0 {
		for i, u := range units {
			emit(i, u)
		}
		return h
	}

	h.timers = make([]Timer, 0, len(units))
	for i, u := range units {
		i, u := i, u
		timer := clock.AfterFunc(time.Duration(i)*delay, func() {
			// The handle mutex makes cancellation a hard boundary: a
			// reveal either fires before Cancel returns or not at all.
			h.mu.Lock()
			defer h.mu.Unlock()
			if h.canceled {
				return
			}
			emit(i, u)
		})
		h.timers = append(h.timers, timer)
	}
	return h
}
