// Package simd is the vector primitive toolkit used by the accelerated JPEG
// block kernels.
//
// Every value is a 128-bit register image. Vec128 holds the raw bytes and the
// lane views I8x16, I16x8, I32x4 and I64x2 reinterpret the same bits at a
// different element width. Lanes are numbered little-endian: lane 0 occupies
// the lowest addressed bytes of the register.
//
// # Operations
//
// Data layout:
//   - LoadStridedI16 / StoreStridedI16: one vector per block row, rows a stride apart
//   - Load8x1 / Store8x1: the low 8 bytes of a byte vector
//   - InterleaveLower* / InterleaveUpper*: merge the low (or high) halves of two vectors
//   - SlideDownBytes: shift bytes towards lane 0, zero filling
//   - Transpose8x8Bytes, Transpose4x4I32
//   - SplatI16 / SplatI32: broadcast one lane
//
// Arithmetic (wrapping, lane independent):
//   - Add2, Add4, Sub2, Sub4, Mul2, Mul4 over any Arith lane type
//   - ShiftLeft, ShiftRightArith, ShiftRightRound
//   - ClipI16, ClipI32, Clip0To255I16
//   - UnpackI16, PackEvenI16, PackEvenU8
//   - Butterfly4, Butterfly8 and their inverses
//
// All functions are pure. Nothing in this package retains or mutates caller
// memory except the destination slice passed to a store.
package simd
