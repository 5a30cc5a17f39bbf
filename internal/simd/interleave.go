package simd

// Interleave operations put the first operand in the even lanes and the
// second in the odd lanes:
//
//	InterleaveLower([a0 a1 .. an], [b0 b1 .. bn]) = [a0 b0 a1 b1 .. a(n/2-1) b(n/2-1)]
//	InterleaveUpper([a0 a1 .. an], [b0 b1 .. bn]) = [a(n/2) b(n/2) .. an bn]
//
// The hardware right/left interleave ILVR(x, y) is InterleaveLower(y, x).

func interleaveLower[T any](dst, a, b []T) {
	half := len(dst) / 2
	for i := range half {
		dst[2*i] = a[i]
		dst[2*i+1] = b[i]
	}
}

func interleaveUpper[T any](dst, a, b []T) {
	half := len(dst) / 2
	for i := range half {
		dst[2*i] = a[half+i]
		dst[2*i+1] = b[half+i]
	}
}

// InterleaveLowerB interleaves the low eight bytes of a and b.
func InterleaveLowerB(a, b Vec128) (r Vec128) {
	interleaveLower(r[:], a[:], b[:])
	return r
}

// InterleaveUpperB interleaves the high eight bytes of a and b.
func InterleaveUpperB(a, b Vec128) (r Vec128) {
	interleaveUpper(r[:], a[:], b[:])
	return r
}

// InterleaveLowerI16 interleaves the low four halfwords of a and b.
func InterleaveLowerI16(a, b I16x8) (r I16x8) {
	interleaveLower(r[:], a[:], b[:])
	return r
}

// InterleaveUpperI16 interleaves the high four halfwords of a and b.
func InterleaveUpperI16(a, b I16x8) (r I16x8) {
	interleaveUpper(r[:], a[:], b[:])
	return r
}

// InterleaveLowerI32 interleaves the low two words of a and b.
func InterleaveLowerI32(a, b I32x4) (r I32x4) {
	interleaveLower(r[:], a[:], b[:])
	return r
}

// InterleaveUpperI32 interleaves the high two words of a and b.
func InterleaveUpperI32(a, b I32x4) (r I32x4) {
	interleaveUpper(r[:], a[:], b[:])
	return r
}

// InterleaveLowerI64 returns [a0 b0].
func InterleaveLowerI64(a, b I64x2) I64x2 {
	return I64x2{a[0], b[0]}
}

// InterleaveUpperI64 returns [a1 b1].
func InterleaveUpperI64(a, b I64x2) I64x2 {
	return I64x2{a[1], b[1]}
}

// SlideDownBytes moves every byte n lanes towards lane 0 and fills the
// vacated high lanes with zero. n is taken modulo 16.
func SlideDownBytes(v Vec128, n int) (r Vec128) {
	n &= VecBytes - 1
	copy(r[:], v[n:])
	return r
}

// UnpackI16 sign-extends the eight halfwords of v into two word vectors by
// interleaving v with its own sign mask: lo holds lanes 0-3, hi lanes 4-7.
func UnpackI16(v I16x8) (lo, hi I32x4) {
	sign := v.LessThanZero()
	lo = AsI32(InterleaveLowerI16(v, sign).Vec())
	hi = AsI32(InterleaveUpperI16(v, sign).Vec())
	return lo, hi
}

// PackEvenI16 keeps the even (low) halfword of every word: lanes 0-3 of the
// result come from lo, lanes 4-7 from hi. Values are truncated, not
// saturated.
func PackEvenI16(lo, hi I32x4) (r I16x8) {
	l := AsI16(lo.Vec())
	h := AsI16(hi.Vec())
	for i := range 4 {
		r[i] = l[2*i]
		r[4+i] = h[2*i]
	}
	return r
}

// PackEvenU8 keeps the even (low) byte of every halfword: bytes 0-7 of the
// result come from lo, bytes 8-15 from hi. Values are truncated.
func PackEvenU8(lo, hi I16x8) (r Vec128) {
	l := lo.Vec()
	h := hi.Vec()
	for i := range 8 {
		r[i] = l[2*i]
		r[8+i] = h[2*i]
	}
	return r
}
