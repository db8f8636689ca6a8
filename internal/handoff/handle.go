package handoff

import "sync/atomic"

// Handle holds a pointer to an immutable value of type T.
//
// Store must be given a value that is never written to afterwards. The zero
// Handle holds nil.
type Handle[T any] struct {
	p atomic.Pointer[T]
}

// NewHandle returns a Handle initialized with v.
func NewHandle[T any](v *T) *Handle[T] {
	h := &Handle[T]{}
	h.p.Store(v)

	return h
}

// Load returns the currently published value.
func (h *Handle[T]) Load() *T {
	return h.p.Load()
}

// Store publishes v, replacing the previous value.
func (h *Handle[T]) Store(v *T) {
	h.p.Store(v)
}

// Swap publishes v and returns the value it replaced.
func (h *Handle[T]) Swap(v *T) *T {
	return h.p.Swap(v)
}

// Update applies fn to the current value and publishes the result. fn must
// return a new value rather than modify its argument. It retries when another
// writer publishes concurrently, so fn may run more than once.
func (h *Handle[T]) Update(fn func(old *T) *T) {
	for {
		old := h.p.Load()
		if h.p.CompareAndSwap(old, fn(old)) {
			return
		}
	}
}
