package simd

import "encoding/binary"

// VecBytes is the width of every vector value in bytes.
const VecBytes = 16

// Vec128 is the raw bit pattern of one 128-bit vector register.
// Its byte lanes are unsigned.
type Vec128 [VecBytes]byte

// I8x16 views a vector as sixteen signed 8-bit lanes.
type I8x16 [16]int8

// I16x8 views a vector as eight signed 16-bit lanes.
type I16x8 [8]int16

// I32x4 views a vector as four signed 32-bit lanes.
type I32x4 [4]int32

// I64x2 views a vector as two signed 64-bit lanes.
type I64x2 [2]int64

// AsI8 reinterprets v as signed bytes.
func AsI8(v Vec128) (r I8x16) {
	for i := range r {
		r[i] = int8(v[i])
	}
	return r
}

// Vec returns the bit pattern of v.
func (v I8x16) Vec() (r Vec128) {
	for i := range v {
		r[i] = byte(v[i])
	}
	return r
}

// AsI16 reinterprets v as 16-bit lanes.
func AsI16(v Vec128) (r I16x8) {
	for i := range r {
		r[i] = int16(binary.LittleEndian.Uint16(v[2*i:]))
	}
	return r
}

// Vec returns the bit pattern of v.
func (v I16x8) Vec() (r Vec128) {
	for i := range v {
		binary.LittleEndian.PutUint16(r[2*i:], uint16(v[i]))
	}
	return r
}

// AsI32 reinterprets v as 32-bit lanes.
func AsI32(v Vec128) (r I32x4) {
	for i := range r {
		r[i] = int32(binary.LittleEndian.Uint32(v[4*i:]))
	}
	return r
}

// Vec returns the bit pattern of v.
func (v I32x4) Vec() (r Vec128) {
	for i := range v {
		binary.LittleEndian.PutUint32(r[4*i:], uint32(v[i]))
	}
	return r
}

// AsI64 reinterprets v as 64-bit lanes.
func AsI64(v Vec128) (r I64x2) {
	for i := range r {
		r[i] = int64(binary.LittleEndian.Uint64(v[8*i:]))
	}
	return r
}

// Vec returns the bit pattern of v.
func (v I64x2) Vec() (r Vec128) {
	for i := range v {
		binary.LittleEndian.PutUint64(r[8*i:], uint64(v[i]))
	}
	return r
}

// SetI16 fills every lane with x.
func SetI16(x int16) (r I16x8) {
	for i := range r {
		r[i] = x
	}
	return r
}

// SetI32 fills every lane with x.
func SetI32(x int32) (r I32x4) {
	for i := range r {
		r[i] = x
	}
	return r
}

// SplatI16 broadcasts lane idx of v. idx is taken modulo the lane count,
// matching the immediate encoding of the hardware splat.
func SplatI16(v I16x8, idx int) I16x8 {
	return SetI16(v[idx&7])
}

// SplatI32 broadcasts lane idx of v. idx is taken modulo the lane count.
func SplatI32(v I32x4, idx int) I32x4 {
	return SetI32(v[idx&3])
}

// Splat4I32 broadcasts each lane of v into its own vector.
func Splat4I32(v I32x4) [4]I32x4 {
	return [4]I32x4{SplatI32(v, 0), SplatI32(v, 1), SplatI32(v, 2), SplatI32(v, 3)}
}
