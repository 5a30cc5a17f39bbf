package simd

// Transpose8x8Bytes transposes an 8x8 byte block. Row r of the input is held
// in the low eight bytes of in[r]; the high bytes are ignored. On return the
// low eight bytes of out[c] hold column c.
//
// The high eight bytes of the even outputs carry the next column
// (out[2k] = col 2k | col 2k+1) and those of the odd outputs are zero,
// since the odd outputs are produced by sliding the even ones down.
//
// Index mapping, with r_i[j] the byte at row i, column j:
//
//	t0 = [r0_0 r2_0 r0_1 r2_1 ..]   t1 = [r1_0 r3_0 ..]
//	t2 = [r4_0 r6_0 ..]             t3 = [r5_0 r7_0 ..]
//	t4 = [r0_0 r1_0 r2_0 r3_0 r0_1 r1_1 ..]  (columns 0-3, rows 0-3)
//	t5 = columns 4-7 rows 0-3, t6 = columns 0-3 rows 4-7, t7 = columns 4-7 rows 4-7
//	out0 = [t4.w0 t6.w0 t4.w1 t6.w1] = column 0 | column 1
func Transpose8x8Bytes(in [8]Vec128) (out [8]Vec128) {
	t0 := InterleaveLowerB(in[0], in[2])
	t1 := InterleaveLowerB(in[1], in[3])
	t2 := InterleaveLowerB(in[4], in[6])
	t3 := InterleaveLowerB(in[5], in[7])

	t4 := AsI32(InterleaveLowerB(t0, t1))
	t5 := AsI32(InterleaveUpperB(t0, t1))
	t6 := AsI32(InterleaveLowerB(t2, t3))
	t7 := AsI32(InterleaveUpperB(t2, t3))

	out[0] = InterleaveLowerI32(t4, t6).Vec()
	out[2] = InterleaveUpperI32(t4, t6).Vec()
	out[4] = InterleaveLowerI32(t5, t7).Vec()
	out[6] = InterleaveUpperI32(t5, t7).Vec()

	out[1] = SlideDownBytes(out[0], 8)
	out[3] = SlideDownBytes(out[2], 8)
	out[5] = SlideDownBytes(out[4], 8)
	out[7] = SlideDownBytes(out[6], 8)

	return out
}

// Transpose4x4I32 transposes a 4x4 block of words held one row per vector.
//
//	s0 = [a0 b0 a1 b1]  s1 = [a2 b2 a3 b3]  (a = in[0], b = in[1])
//	s2 = [c0 d0 c1 d1]  s3 = [c2 d2 c3 d3]  (c = in[2], d = in[3])
//	out0 = [s0.d0 s2.d0] = [a0 b0 c0 d0], out1 = [s0.d1 s2.d1], ...
func Transpose4x4I32(in [4]I32x4) (out [4]I32x4) {
	s0 := AsI64(InterleaveLowerI32(in[0], in[1]).Vec())
	s1 := AsI64(InterleaveUpperI32(in[0], in[1]).Vec())
	s2 := AsI64(InterleaveLowerI32(in[2], in[3]).Vec())
	s3 := AsI64(InterleaveUpperI32(in[2], in[3]).Vec())

	out[0] = AsI32(InterleaveLowerI64(s0, s2).Vec())
	out[1] = AsI32(InterleaveUpperI64(s0, s2).Vec())
	out[2] = AsI32(InterleaveLowerI64(s1, s3).Vec())
	out[3] = AsI32(InterleaveUpperI64(s1, s3).Vec())

	return out
}
