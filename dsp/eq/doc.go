// Package eq is a three-band parametric equalizer core: a variable-slope
// low cut, one peaking filter and a variable-slope high cut, processed in
// that order.
//
// The control side edits settings and calls
// [Processor.NotifyParameterChanged]. The update side polls
// [Processor.ApplyPendingChanges] (or runs [Processor.Watch]), which designs
// every coefficient set once and publishes it by pointer swap. The audio
// side calls [Processor.Process] once per buffer; it never locks, blocks or
// allocates, and coefficients may lag settings by one poll interval.
//
// [ComputeResponse] walks a [MonoChain] in the same order and with the same
// bypass flags as processing, so the drawn curve matches what is heard.
package eq
