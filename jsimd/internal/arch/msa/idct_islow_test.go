package msa

import (
	"testing"

	"github.com/cwbudde/algo-jsimd/internal/reference"
	"github.com/cwbudde/algo-jsimd/internal/testutil"
	"github.com/cwbudde/algo-jsimd/jsimd/internal/arch/registry"
)

func toBlock(src *[64]int16) *registry.Block {
	var b registry.Block
	for i, v := range src {
		b[i] = registry.Coef(v)
	}
	return &b
}

func toQuant(src *[64]int16) *[64]registry.IslowMult {
	var q [64]registry.IslowMult
	for i, v := range src {
		q[i] = registry.IslowMult(v)
	}
	return &q
}

// runBoth decodes one block with the kernel and with the scalar reference
// at column offset 8 of a 24-wide buffer.
func runBoth(t *testing.T, coef, quant *[64]int16) (got, want [][]byte) {
	t.Helper()

	got = testutil.SampleRows(8, 24, 0x5a)
	want = testutil.CloneRows(got)

	comp := &registry.Component{QuantTable: toQuant(quant)}
	idctIslow(nil, comp, toBlock(coef), got, 8)
	reference.IDCTIslow(coef[:], quant[:], want, 8)

	return got, want
}

func TestIDCTIslowDCOnly(t *testing.T) {
	tests := []struct {
		name  string
		dc    int16
		quant int16
		want  byte
	}{
		{"zero", 0, 1, 128},
		{"flat", 100, 8, 228},
		{"negative", -100, 8, 28},
		{"saturates high", 2000, 1, 255},
		{"saturates low", -2000, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, want := runBoth(t, testutil.DCOnlyBlock(tc.dc), testutil.FlatQuant(tc.quant))
			testutil.RequireRowsEqual(t, got, want)

			for r := range got {
				for c := 8; c < 16; c++ {
					if got[r][c] != tc.want {
						t.Fatalf("sample (%d,%d) = %d, want %d", r, c-8, got[r][c], tc.want)
					}
				}
			}
		})
	}
}

func TestIDCTIslowCheckerboard(t *testing.T) {
	got, want := runBoth(t, testutil.CheckerboardBlock(1000), testutil.FlatQuant(16))
	testutil.RequireRowsEqual(t, got, want)

	for y := range 8 {
		for x := range 8 {
			w := byte(0)
			if (x+y)%2 == 0 {
				w = 255
			}
			if got[y][8+x] != w {
				t.Fatalf("sample (%d,%d) = %d, want %d", y, x, got[y][8+x], w)
			}
		}
	}
}

func TestIDCTIslowLeavesNeighboursAlone(t *testing.T) {
	got, _ := runBoth(t, testutil.RandomBlock(9, 256), testutil.RandomQuant(10, 2))
	for r := range got {
		for c := range got[r] {
			if (c < 8 || c >= 16) && got[r][c] != 0x5a {
				t.Fatalf("kernel wrote outside its block at (%d,%d)", r, c)
			}
		}
	}
}

func TestIDCTIslowMatchesReference(t *testing.T) {
	// Dequantized magnitudes stay well inside 16 bits and the 32-bit
	// intermediates cannot overflow.
	for seed := int64(1); seed <= 500; seed++ {
		got, want := runBoth(t, testutil.RandomBlock(seed, 256), testutil.RandomQuant(seed+5000, 2))
		for r := range got {
			for c := range got[r] {
				if got[r][c] != want[r][c] {
					t.Fatalf("seed %d: sample (%d,%d) = %d, want %d", seed, r, c, got[r][c], want[r][c])
				}
			}
		}
	}
}

func TestIDCTIslowSingleCoefficient(t *testing.T) {
	for pos := range 64 {
		for _, v := range []int16{-300, -1, 1, 300} {
			var coef [64]int16
			coef[pos] = v
			got, want := runBoth(t, &coef, testutil.FlatQuant(3))
			for r := range got {
				for c := range got[r] {
					if got[r][c] != want[r][c] {
						t.Fatalf("coef[%d]=%d: sample (%d,%d) = %d, want %d", pos, v, r, c, got[r][c], want[r][c])
					}
				}
			}
		}
	}
}

func BenchmarkIDCTIslow(b *testing.B) {
	coef := toBlock(testutil.RandomBlock(1, 256))
	comp := &registry.Component{QuantTable: toQuant(testutil.RandomQuant(2, 4))}
	out := testutil.SampleRows(8, 8, 0)

	b.ReportAllocs()
	for b.Loop() {
		idctIslow(nil, comp, coef, out, 0)
	}
}
