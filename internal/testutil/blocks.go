package testutil

import "math/rand"

// DCOnlyBlock returns a coefficient block whose only non-zero entry is the
// DC term.
func DCOnlyBlock(dc int16) *[64]int16 {
	var b [64]int16
	b[0] = dc
	return &b
}

// CheckerboardBlock returns a block with only the highest-frequency
// coefficient set. Its inverse transform alternates sign on every sample.
func CheckerboardBlock(amp int16) *[64]int16 {
	var b [64]int16
	b[63] = amp
	return &b
}

// RandomBlock returns a block of uniform coefficients in [-amp, amp-1],
// generated with a fixed seed for reproducibility.
func RandomBlock(seed int64, amp int) *[64]int16 {
	rng := rand.New(rand.NewSource(seed))
	var b [64]int16
	for i := range b {
		b[i] = int16(rng.Intn(2*amp) - amp)
	}
	return &b
}

// FlatQuant returns a quantization table with every entry set to q.
func FlatQuant(q int16) *[64]int16 {
	var t [64]int16
	for i := range t {
		t[i] = q
	}
	return &t
}

// RandomQuant returns a quantization table with entries in [1, maxQ].
func RandomQuant(seed int64, maxQ int) *[64]int16 {
	rng := rand.New(rand.NewSource(seed))
	var t [64]int16
	for i := range t {
		t[i] = int16(1 + rng.Intn(maxQ))
	}
	return &t
}

// SampleRows allocates rows of width bytes filled with fill.
func SampleRows(rows, width int, fill byte) [][]byte {
	out := make([][]byte, rows)
	for r := range out {
		out[r] = make([]byte, width)
		for c := range out[r] {
			out[r][c] = fill
		}
	}
	return out
}

// CloneRows returns a deep copy of rows.
func CloneRows(rows [][]byte) [][]byte {
	out := make([][]byte, len(rows))
	for r := range rows {
		out[r] = append([]byte(nil), rows[r]...)
	}
	return out
}
