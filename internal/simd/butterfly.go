package simd

// Butterfly4 pairs inputs symmetrically from both ends:
//
//	out0 = in0 + in3    out3 = in0 - in3
//	out1 = in1 + in2    out2 = in1 - in2
func Butterfly4[V Arith[V]](in [4]V) (out [4]V) {
	out[0] = in[0].Add(in[3])
	out[1] = in[1].Add(in[2])
	out[2] = in[1].Sub(in[2])
	out[3] = in[0].Sub(in[3])
	return out
}

// Butterfly8 is the eight-input form of Butterfly4:
//
//	out[k]   = in[k] + in[7-k]   for k = 0..3
//	out[7-k] = in[k] - in[7-k]
func Butterfly8[V Arith[V]](in [8]V) (out [8]V) {
	for k := range 4 {
		out[k] = in[k].Add(in[7-k])
		out[7-k] = in[k].Sub(in[7-k])
	}
	return out
}

// InverseButterfly4 undoes Butterfly4. in[k] = (out[k] + out[3-k]) / 2 is
// exact as long as the forward sums did not overflow.
func InverseButterfly4[V Shifter[V]](out [4]V) (in [4]V) {
	in[0] = out[0].Add(out[3]).ShiftRightArith(1)
	in[3] = out[0].Sub(out[3]).ShiftRightArith(1)
	in[1] = out[1].Add(out[2]).ShiftRightArith(1)
	in[2] = out[1].Sub(out[2]).ShiftRightArith(1)
	return in
}

// InverseButterfly8 undoes Butterfly8 under the same no-overflow condition.
func InverseButterfly8[V Shifter[V]](out [8]V) (in [8]V) {
	for k := range 4 {
		in[k] = out[k].Add(out[7-k]).ShiftRightArith(1)
		in[7-k] = out[k].Sub(out[7-k]).ShiftRightArith(1)
	}
	return in
}
