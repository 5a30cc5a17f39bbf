package simd

// Arith is implemented by the signed lane views. All operations wrap on
// overflow and never carry between lanes.
type Arith[V any] interface {
	Add(V) V
	Sub(V) V
	Mul(V) V
}

// Shifter is an Arith lane view that also supports arithmetic right shifts.
type Shifter[V any] interface {
	Arith[V]
	ShiftRightArith(n int) V
}

// Add2 adds two vector pairs: out[i] = a[i] + b[i].
func Add2[V Arith[V]](a, b [2]V) (out [2]V) {
	for i := range out {
		out[i] = a[i].Add(b[i])
	}
	return out
}

// Add4 adds four vector pairs.
func Add4[V Arith[V]](a, b [4]V) (out [4]V) {
	for i := range out {
		out[i] = a[i].Add(b[i])
	}
	return out
}

// Sub2 subtracts two vector pairs: out[i] = a[i] - b[i].
func Sub2[V Arith[V]](a, b [2]V) (out [2]V) {
	for i := range out {
		out[i] = a[i].Sub(b[i])
	}
	return out
}

// Sub4 subtracts four vector pairs.
func Sub4[V Arith[V]](a, b [4]V) (out [4]V) {
	for i := range out {
		out[i] = a[i].Sub(b[i])
	}
	return out
}

// Mul2 multiplies two vector pairs, keeping the low half of each product.
func Mul2[V Arith[V]](a, b [2]V) (out [2]V) {
	for i := range out {
		out[i] = a[i].Mul(b[i])
	}
	return out
}

// Mul4 multiplies four vector pairs, keeping the low half of each product.
func Mul4[V Arith[V]](a, b [4]V) (out [4]V) {
	for i := range out {
		out[i] = a[i].Mul(b[i])
	}
	return out
}

// Add returns v + w lane by lane.
func (v I16x8) Add(w I16x8) (r I16x8) {
	for i := range r {
		r[i] = v[i] + w[i]
	}
	return r
}

// Sub returns v - w lane by lane.
func (v I16x8) Sub(w I16x8) (r I16x8) {
	for i := range r {
		r[i] = v[i] - w[i]
	}
	return r
}

// Mul returns the low 16 bits of v * w lane by lane.
func (v I16x8) Mul(w I16x8) (r I16x8) {
	for i := range r {
		r[i] = v[i] * w[i]
	}
	return r
}

// Max returns the signed maximum of v and w lane by lane.
func (v I16x8) Max(w I16x8) (r I16x8) {
	for i := range r {
		r[i] = max(v[i], w[i])
	}
	return r
}

// Min returns the signed minimum of v and w lane by lane.
func (v I16x8) Min(w I16x8) (r I16x8) {
	for i := range r {
		r[i] = min(v[i], w[i])
	}
	return r
}

// LessThanZero returns all ones in lanes holding a negative value and zero
// elsewhere.
func (v I16x8) LessThanZero() (r I16x8) {
	for i := range r {
		if v[i] < 0 {
			r[i] = -1
		}
	}
	return r
}

// ShiftLeft shifts every lane left by n&15 bits.
func (v I16x8) ShiftLeft(n int) (r I16x8) {
	s := uint(n & 15)
	for i := range r {
		r[i] = v[i] << s
	}
	return r
}

// ShiftRightArith shifts every lane right by n&15 bits, replicating the sign.
func (v I16x8) ShiftRightArith(n int) (r I16x8) {
	s := uint(n & 15)
	for i := range r {
		r[i] = v[i] >> s
	}
	return r
}

// ShiftRightRound shifts every lane right arithmetically by n&15 bits and
// adds back the last bit shifted out, which rounds half up.
func (v I16x8) ShiftRightRound(n int) (r I16x8) {
	s := uint(n & 15)
	if s == 0 {
		return v
	}
	for i := range r {
		r[i] = v[i]>>s + (v[i]>>(s-1))&1
	}
	return r
}

// Add returns v + w lane by lane.
func (v I32x4) Add(w I32x4) (r I32x4) {
	for i := range r {
		r[i] = v[i] + w[i]
	}
	return r
}

// Sub returns v - w lane by lane.
func (v I32x4) Sub(w I32x4) (r I32x4) {
	for i := range r {
		r[i] = v[i] - w[i]
	}
	return r
}

// Mul returns the low 32 bits of v * w lane by lane.
func (v I32x4) Mul(w I32x4) (r I32x4) {
	for i := range r {
		r[i] = v[i] * w[i]
	}
	return r
}

// Max returns the signed maximum of v and w lane by lane.
func (v I32x4) Max(w I32x4) (r I32x4) {
	for i := range r {
		r[i] = max(v[i], w[i])
	}
	return r
}

// Min returns the signed minimum of v and w lane by lane.
func (v I32x4) Min(w I32x4) (r I32x4) {
	for i := range r {
		r[i] = min(v[i], w[i])
	}
	return r
}

// ShiftLeft shifts every lane left by n&31 bits.
func (v I32x4) ShiftLeft(n int) (r I32x4) {
	s := uint(n & 31)
	for i := range r {
		r[i] = v[i] << s
	}
	return r
}

// ShiftRightArith shifts every lane right by n&31 bits, replicating the sign.
func (v I32x4) ShiftRightArith(n int) (r I32x4) {
	s := uint(n & 31)
	for i := range r {
		r[i] = v[i] >> s
	}
	return r
}

// ShiftRightRound shifts every lane right arithmetically by n&31 bits and
// adds back the last bit shifted out. For any x this equals
// floor(x/2^n + 1/2) without the intermediate overflow of x + 2^(n-1).
func (v I32x4) ShiftRightRound(n int) (r I32x4) {
	s := uint(n & 31)
	if s == 0 {
		return v
	}
	for i := range r {
		r[i] = v[i]>>s + (v[i]>>(s-1))&1
	}
	return r
}

// Add returns v + w lane by lane.
func (v I64x2) Add(w I64x2) (r I64x2) {
	for i := range r {
		r[i] = v[i] + w[i]
	}
	return r
}

// Sub returns v - w lane by lane.
func (v I64x2) Sub(w I64x2) (r I64x2) {
	for i := range r {
		r[i] = v[i] - w[i]
	}
	return r
}

// Mul returns the low 64 bits of v * w lane by lane.
func (v I64x2) Mul(w I64x2) (r I64x2) {
	for i := range r {
		r[i] = v[i] * w[i]
	}
	return r
}

// ShiftRightArith shifts every lane right by n&63 bits, replicating the sign.
func (v I64x2) ShiftRightArith(n int) (r I64x2) {
	s := uint(n & 63)
	for i := range r {
		r[i] = v[i] >> s
	}
	return r
}
