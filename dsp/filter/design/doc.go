// Package design computes biquad coefficients for the EQ chain.
//
// Peak, Lowpass and Highpass follow the RBJ audio EQ cookbook. Cut slopes
// are built as cascades of second-order sections, either stacked identical
// Butterworth sections ([CutStacked]) or a true high-order Butterworth
// response ([CutButterworth]).
//
// Designers never return NaN, Inf or unstable coefficients. Frequencies are
// clamped into the range given by [Limits]; an invalid sample rate yields
// the identity section. Callers on the control path can therefore feed
// whatever the host reports without further checks.
package design
