package simd

// ClipI16 clamps every signed lane of v into [lo, hi]. The lower bound is
// applied first with a signed max, then the upper bound with a signed min,
// so negative intermediates clamp to lo instead of wrapping.
func ClipI16(v I16x8, lo, hi int16) I16x8 {
	return SetI16(hi).Min(v.Max(SetI16(lo)))
}

// Clip0To255I16 clamps every signed lane of v into the 8-bit sample range.
func Clip0To255I16(v I16x8) I16x8 {
	return ClipI16(v, 0, 255)
}

// ClipI32 clamps every signed lane of v into [lo, hi] with the same
// max-then-min order as ClipI16.
func ClipI32(v I32x4, lo, hi int32) I32x4 {
	return SetI32(hi).Min(v.Max(SetI32(lo)))
}
