// Package biquad provides second-order IIR filter primitives.
//
// [Coefficients] describes one section's transfer function with a0
// normalized to 1. [State] is the two-sample delay line of a Direct Form II
// Transposed section for one channel. Keeping them apart lets a coefficient
// set be replaced by pointer swap while the state keeps running, which is
// what the real-time EQ chain relies on.
//
// Block processing dispatches to the fastest kernel registered for the
// running CPU. Coefficient design lives in dsp/filter/design.
package biquad
