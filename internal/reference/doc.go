// Package reference holds the scalar block transforms the accelerated
// kernels are checked against.
//
// IDCTIslow is the accurate integer inverse DCT used as the non-accelerated
// fallback. ExactIDCT evaluates the same transform in float64 through a
// length-32 FFT and serves as the accuracy oracle for both.
package reference
