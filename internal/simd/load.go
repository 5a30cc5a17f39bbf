package simd

// LoadStridedI16 loads len(dst) rows of eight halfwords from src. Row r
// starts at src[r*stride]. It panics if src is too short.
func LoadStridedI16[T ~int16](dst []I16x8, src []T, stride int) {
	for r := range dst {
		row := src[r*stride : r*stride+8]
		for i := range dst[r] {
			dst[r][i] = int16(row[i])
		}
	}
}

// StoreStridedI16 writes len(src) rows of eight halfwords to dst, row r at
// dst[r*stride].
func StoreStridedI16[T ~int16](dst []T, src []I16x8, stride int) {
	for r := range src {
		row := dst[r*stride : r*stride+8]
		for i := range row {
			row[i] = T(src[r][i])
		}
	}
}

// Load8x1 loads eight bytes into the low half of a vector. The high half is
// zero.
func Load8x1(src []byte) (v Vec128) {
	copy(v[:8], src[:8])
	return v
}

// Store8x1 writes the low eight bytes of v to dst.
func Store8x1(dst []byte, v Vec128) {
	copy(dst[:8], v[:8])
}

// LoadStrided8x1 loads one 8-byte row from each of rows starting at column col.
func LoadStrided8x1(rows [][]byte, col int) (out [8]Vec128) {
	for r := range out {
		out[r] = Load8x1(rows[r][col:])
	}
	return out
}

// StoreStrided8x1 writes the low eight bytes of each vector to rows[r][col:].
func StoreStrided8x1(rows [][]byte, col int, in [8]Vec128) {
	for r := range in {
		Store8x1(rows[r][col:], in[r])
	}
}
