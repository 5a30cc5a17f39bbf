package msa

import (
	"github.com/cwbudde/algo-jsimd/internal/simd"
	"github.com/cwbudde/algo-jsimd/jsimd/internal/arch/registry"
)

const (
	constBits = 13
	pass1Bits = 2

	pass1Shift = constBits - pass1Bits
	pass2Shift = constBits + pass1Bits + 3

	centerSample = 128
)

// Multipliers scaled by 2^13.
var (
	// FIX(0.541196100), -FIX(1.847759065), FIX(0.765366865), FIX(1.175875602)
	evenConst = simd.I32x4{4433, -15137, 6270, 9633}

	// FIX(0.298631336), FIX(2.053119869), FIX(3.072711026), FIX(1.501321110)
	oddConst = simd.I32x4{2446, 16819, 25172, 12299}

	// -FIX(0.899976223), -FIX(2.562915447), -FIX(1.961570560), -FIX(0.390180644)
	oddZConst = simd.I32x4{-7373, -20995, -16069, -3196}
)

// idctIslow is the accurate integer inverse DCT. Both passes run in 32-bit
// lanes, four columns (pass 1) or four rows (pass 2) per vector, and round
// with the same add-half-then-shift rule as the scalar code, so output is
// bit-identical whenever the dequantized coefficients fit in 16 bits.
func idctIslow(_ *registry.ImageInfo, comp *registry.Component, coef *registry.Block,
	out registry.SampleRows, outCol registry.Dimension,
) {
	var rows, quant [8]simd.I16x8
	simd.LoadStridedI16(rows[:], coef[:], 8)
	simd.LoadStridedI16(quant[:], comp.QuantTable[:], 8)

	for i := 0; i < 8; i += 4 {
		d := simd.Mul4([4]simd.I16x8(rows[i:i+4]), [4]simd.I16x8(quant[i:i+4]))
		copy(rows[i:i+4], d[:])
	}

	// Pass 1: columns. lo[k] holds columns 0-3 of row k, hi[k] columns 4-7.
	var lo, hi [8]simd.I32x4
	for k := range rows {
		lo[k], hi[k] = simd.UnpackI16(rows[k])
	}
	lo = idctPass(lo, pass1Shift)
	hi = idctPass(hi, pass1Shift)

	// Transpose the workspace so each vector holds one column of four rows.
	a := simd.Transpose4x4I32([4]simd.I32x4(lo[0:4]))
	b := simd.Transpose4x4I32([4]simd.I32x4(hi[0:4]))
	c := simd.Transpose4x4I32([4]simd.I32x4(lo[4:8]))
	d := simd.Transpose4x4I32([4]simd.I32x4(hi[4:8]))

	var top, bottom [8]simd.I32x4
	copy(top[0:4], a[:])
	copy(top[4:8], b[:])
	copy(bottom[0:4], c[:])
	copy(bottom[4:8], d[:])

	// Pass 2: rows. top[k] holds column k of rows 0-3, bottom[k] rows 4-7.
	top = idctPass(top, pass2Shift)
	bottom = idctPass(bottom, pass2Shift)

	center := simd.SetI32(centerSample)
	var cols [8]simd.I16x8
	for k := range cols {
		t := simd.ClipI32(top[k].Add(center), 0, 255)
		u := simd.ClipI32(bottom[k].Add(center), 0, 255)
		cols[k] = simd.PackEvenI16(t, u)
	}

	// Each byte vector now carries two columns; split them and transpose
	// back to rows.
	var block [8]simd.Vec128
	for k := 0; k < 8; k += 2 {
		v := simd.PackEvenU8(cols[k], cols[k+1])
		block[k] = v
		block[k+1] = simd.SlideDownBytes(v, 8)
	}
	block = simd.Transpose8x8Bytes(block)

	simd.StoreStrided8x1(out, int(outCol), block)
}

// idctPass runs the 1-D islow transform on eight input vectors, lane by
// lane, and descales the result by shift bits with rounding.
func idctPass(in [8]simd.I32x4, shift int) (out [8]simd.I32x4) {
	ec := simd.Splat4I32(evenConst)

	// Even part.
	z1 := in[2].Add(in[6]).Mul(ec[0])
	tmp2 := z1.Add(in[6].Mul(ec[1]))
	tmp3 := z1.Add(in[2].Mul(ec[2]))
	tmp0 := in[0].Add(in[4]).ShiftLeft(constBits)
	tmp1 := in[0].Sub(in[4]).ShiftLeft(constBits)
	even := simd.Butterfly4([4]simd.I32x4{tmp0, tmp1, tmp2, tmp3})

	// Odd part.
	t := [4]simd.I32x4{in[7], in[5], in[3], in[1]}
	z := simd.Add4(
		[4]simd.I32x4{t[0], t[1], t[0], t[1]},
		[4]simd.I32x4{t[3], t[2], t[2], t[3]},
	)
	z5 := z[2].Add(z[3]).Mul(ec[3])

	t = simd.Mul4(t, simd.Splat4I32(oddConst))
	z = simd.Mul4(z, simd.Splat4I32(oddZConst))
	z[2] = z[2].Add(z5)
	z[3] = z[3].Add(z5)

	t = simd.Add4(t, simd.Add4(
		[4]simd.I32x4{z[0], z[1], z[1], z[0]},
		[4]simd.I32x4{z[2], z[3], z[2], z[3]},
	))

	res := simd.Butterfly8([8]simd.I32x4{
		even[0], even[1], even[2], even[3],
		t[0], t[1], t[2], t[3],
	})
	for i := range res {
		out[i] = res[i].ShiftRightRound(shift)
	}
	return out
}
