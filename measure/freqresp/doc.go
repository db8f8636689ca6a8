// Package freqresp measures the magnitude response of a block processor by
// sending a unit impulse through it and transforming the captured impulse
// response with an FFT.
//
// The measurement is independent of how the processor computes its own
// response, so it is used to cross-check analytic curves against what the
// audio path actually does.
package freqresp
