package simd

import (
	"math"
	"math/rand"
	"testing"
)

func TestShiftRightRoundI16Exhaustive(t *testing.T) {
	for s := 1; s < 16; s++ {
		for x := math.MinInt16; x <= math.MaxInt16; x++ {
			got := SetI16(int16(x)).ShiftRightRound(s)[0]
			want := int16(math.Floor(float64(x)/float64(int(1)<<s) + 0.5))
			if got != want {
				t.Fatalf("round(%d >> %d) = %d, want %d", x, s, got, want)
			}
		}
	}
}

func TestShiftRightRoundI32(t *testing.T) {
	tests := []struct {
		x    int32
		n    int
		want int32
	}{
		{x: 1024, n: 11, want: 1},
		{x: 1023, n: 11, want: 0},
		{x: -1024, n: 11, want: 0},
		{x: -1025, n: 11, want: -1},
		{x: math.MaxInt32, n: 18, want: 8192},
		{x: math.MinInt32, n: 18, want: -8192},
		{x: 7, n: 0, want: 7},
	}
	for _, tc := range tests {
		got := SetI32(tc.x).ShiftRightRound(tc.n)
		if got != SetI32(tc.want) {
			t.Errorf("ShiftRightRound(%d, %d) = %v, want %d", tc.x, tc.n, got, tc.want)
		}
	}
}

func TestLaneArithmeticWraps(t *testing.T) {
	a := SetI16(math.MaxInt16)
	if got := a.Add(SetI16(1)); got != SetI16(math.MinInt16) {
		t.Fatalf("add overflow: got %v", got)
	}
	if got := SetI16(300).Mul(SetI16(300)); got != SetI16(int16(90000 - 65536)) {
		t.Fatalf("mul overflow: got %v", got)
	}
	if got := SetI32(3).ShiftLeft(13); got != SetI32(24576) {
		t.Fatalf("shift left: got %v", got)
	}
}

func TestMulAddFour(t *testing.T) {
	a := [4]I32x4{SetI32(1), SetI32(2), SetI32(3), SetI32(4)}
	b := [4]I32x4{SetI32(10), SetI32(20), SetI32(30), SetI32(40)}

	sum := Add4(a, b)
	diff := Sub4(b, a)
	prod := Mul4(a, b)
	for i := range 4 {
		x := int32(i + 1)
		if sum[i] != SetI32(11*x) {
			t.Errorf("Add4[%d] = %v", i, sum[i])
		}
		if diff[i] != SetI32(9*x) {
			t.Errorf("Sub4[%d] = %v", i, diff[i])
		}
		if prod[i] != SetI32(10*x*x) {
			t.Errorf("Mul4[%d] = %v", i, prod[i])
		}
	}

	p2 := Mul2([2]I16x8{SetI16(-3), SetI16(5)}, [2]I16x8{SetI16(7), SetI16(-2)})
	if p2[0] != SetI16(-21) || p2[1] != SetI16(-10) {
		t.Errorf("Mul2 = %v", p2)
	}
	s2 := Sub2(Add2([2]I16x8{SetI16(1), SetI16(2)}, [2]I16x8{SetI16(4), SetI16(8)}), [2]I16x8{SetI16(1), SetI16(2)})
	if s2[0] != SetI16(4) || s2[1] != SetI16(8) {
		t.Errorf("Add2/Sub2 = %v", s2)
	}
}

func TestClip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 1000 {
		var v I16x8
		for i := range v {
			v[i] = int16(rng.Intn(1 << 16))
		}
		c := Clip0To255I16(v)
		for i := range c {
			want := min(max(v[i], 0), 255)
			if c[i] != want {
				t.Fatalf("lane %d: clip(%d) = %d, want %d", i, v[i], c[i], want)
			}
		}
		if again := Clip0To255I16(c); again != c {
			t.Fatalf("clip not idempotent: %v -> %v", c, again)
		}
	}

	w := ClipI32(I32x4{-70000, -1, 300, 1 << 30}, 0, 255)
	if w != (I32x4{0, 0, 255, 255}) {
		t.Fatalf("ClipI32 = %v", w)
	}
}
