package handoff

import "sync/atomic"

// Flag signals "something changed" between goroutines. It carries no payload
// and does not count notifications.
type Flag struct {
	dirty atomic.Bool
}

// Set marks the flag dirty. Safe to call from any goroutine, any number of
// times.
func (f *Flag) Set() {
	f.dirty.Store(true)
}

// TestAndClear reports whether the flag was dirty and clears it in the same
// atomic step. Of several concurrent callers at most one observes true per
// Set.
func (f *Flag) TestAndClear() bool {
	return f.dirty.CompareAndSwap(true, false)
}

// IsSet reports the flag without consuming it.
func (f *Flag) IsSet() bool {
	return f.dirty.Load()
}
