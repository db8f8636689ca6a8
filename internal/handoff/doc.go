// Package handoff provides the lock-free primitives used to pass state from
// the control goroutine to the audio goroutine.
//
// [Handle] publishes immutable values by pointer swap: readers always observe
// either the previous or the next value in full, never a mixture. [Flag] is a
// dirty bit whose consumer clears it with a single compare-and-swap, so a
// burst of notifications collapses into one update cycle.
//
// Neither type blocks, allocates on the read side, or takes a lock.
package handoff
