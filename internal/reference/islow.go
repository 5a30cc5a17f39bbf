package reference

const (
	constBits = 13
	pass1Bits = 2

	centerSample = 128
	maxSample    = 255
)

// Multipliers scaled by 2^13.
const (
	fix0_298631336 = 2446
	fix0_390180644 = 3196
	fix0_541196100 = 4433
	fix0_765366865 = 6270
	fix0_899976223 = 7373
	fix1_175875602 = 9633
	fix1_501321110 = 12299
	fix1_847759065 = 15137
	fix1_961570560 = 16069
	fix2_053119869 = 16819
	fix2_562915447 = 20995
	fix3_072711026 = 25172
)

func descale(x int64, n uint) int64 {
	return (x + 1<<(n-1)) >> n
}

func clampSample(x int64) byte {
	x += centerSample
	switch {
	case x < 0:
		return 0
	case x > maxSample:
		return maxSample
	default:
		return byte(x)
	}
}

// IDCTIslow dequantizes the 64 coefficients in coef with quant, both in
// natural order, and writes the 8x8 inverse DCT into out[r][outCol:outCol+8].
// Out-of-range samples are clamped.
//
// Columns or rows whose AC terms are all zero take a shortcut that yields
// exactly what the full computation would.
func IDCTIslow[C, Q ~int16](coef []C, quant []Q, out [][]byte, outCol int) {
	_, _ = coef[63], quant[63]

	var ws [64]int32

	// Pass 1: columns from input, results scaled up by 2^pass1Bits.
	for col := range 8 {
		in := func(row int) int64 {
			return int64(coef[row*8+col]) * int64(quant[row*8+col])
		}

		if coef[8+col] == 0 && coef[16+col] == 0 && coef[24+col] == 0 &&
			coef[32+col] == 0 && coef[40+col] == 0 && coef[48+col] == 0 &&
			coef[56+col] == 0 {
			dc := int32(in(0) << pass1Bits)
			for row := range 8 {
				ws[row*8+col] = dc
			}
			continue
		}

		var o [8]int64
		idct1D(&o, in(0), in(1), in(2), in(3), in(4), in(5), in(6), in(7))
		for row := range 8 {
			ws[row*8+col] = int32(descale(o[row], constBits-pass1Bits))
		}
	}

	// Pass 2: rows from the workspace.
	for row := range 8 {
		w := ws[row*8 : row*8+8]
		dst := out[row][outCol : outCol+8]

		if w[1] == 0 && w[2] == 0 && w[3] == 0 && w[4] == 0 &&
			w[5] == 0 && w[6] == 0 && w[7] == 0 {
			s := clampSample(descale(int64(w[0]), pass1Bits+3))
			for i := range dst {
				dst[i] = s
			}
			continue
		}

		var o [8]int64
		idct1D(&o, int64(w[0]), int64(w[1]), int64(w[2]), int64(w[3]),
			int64(w[4]), int64(w[5]), int64(w[6]), int64(w[7]))
		for i := range dst {
			dst[i] = clampSample(descale(o[i], constBits+pass1Bits+3))
		}
	}
}

// idct1D computes the undescaled 1-D transform of x0..x7 into o.
func idct1D(o *[8]int64, x0, x1, x2, x3, x4, x5, x6, x7 int64) {
	// Even part.
	z1 := (x2 + x6) * fix0_541196100
	tmp2 := z1 - x6*fix1_847759065
	tmp3 := z1 + x2*fix0_765366865

	tmp0 := (x0 + x4) << constBits
	tmp1 := (x0 - x4) << constBits

	tmp10 := tmp0 + tmp3
	tmp13 := tmp0 - tmp3
	tmp11 := tmp1 + tmp2
	tmp12 := tmp1 - tmp2

	// Odd part.
	t0, t1, t2, t3 := x7, x5, x3, x1

	z1 = t0 + t3
	z2 := t1 + t2
	z3 := t0 + t2
	z4 := t1 + t3
	z5 := (z3 + z4) * fix1_175875602

	t0 *= fix0_298631336
	t1 *= fix2_053119869
	t2 *= fix3_072711026
	t3 *= fix1_501321110
	z1 *= -fix0_899976223
	z2 *= -fix2_562915447
	z3 *= -fix1_961570560
	z4 *= -fix0_390180644

	z3 += z5
	z4 += z5

	t0 += z1 + z3
	t1 += z2 + z4
	t2 += z2 + z3
	t3 += z1 + z4

	o[0] = tmp10 + t3
	o[7] = tmp10 - t3
	o[1] = tmp11 + t2
	o[6] = tmp11 - t2
	o[2] = tmp12 + t1
	o[5] = tmp12 - t1
	o[3] = tmp13 + t0
	o[4] = tmp13 - t0
}
