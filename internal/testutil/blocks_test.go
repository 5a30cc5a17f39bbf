package testutil

import "testing"

func TestRandomBlockReproducible(t *testing.T) {
	a := RandomBlock(42, 256)
	b := RandomBlock(42, 256)
	if *a != *b {
		t.Fatal("same seed produced different blocks")
	}
	for i, v := range a {
		if v < -256 || v > 255 {
			t.Fatalf("coef %d = %d out of range", i, v)
		}
	}
	if *RandomBlock(1, 256) == *RandomBlock(2, 256) {
		t.Fatal("different seeds produced identical blocks")
	}
}

func TestRandomQuantRange(t *testing.T) {
	q := RandomQuant(7, 4)
	for i, v := range q {
		if v < 1 || v > 4 {
			t.Fatalf("quant %d = %d out of [1, 4]", i, v)
		}
	}
}

func TestFixtures(t *testing.T) {
	dc := DCOnlyBlock(100)
	if dc[0] != 100 {
		t.Fatalf("dc = %d, want 100", dc[0])
	}
	for i := 1; i < 64; i++ {
		if dc[i] != 0 {
			t.Fatalf("coef %d = %d, want 0", i, dc[i])
		}
	}

	cb := CheckerboardBlock(1000)
	if cb[63] != 1000 || cb[0] != 0 {
		t.Fatalf("checkerboard = %v", cb)
	}

	if q := FlatQuant(8); q[0] != 8 || q[63] != 8 {
		t.Fatalf("flat quant = %v", q)
	}
}

func TestSampleRowsClone(t *testing.T) {
	rows := SampleRows(8, 16, 0xaa)
	clone := CloneRows(rows)
	RequireRowsEqual(t, clone, rows)

	clone[3][5] = 0
	if rows[3][5] != 0xaa {
		t.Fatal("CloneRows shares memory with its input")
	}
}
