package coords

import "testing"

func TestFloorDivMod(t *testing.T) {
	cases := []struct{ a, b, wantDiv, wantMod int }{
		{0, 16, 0, 0},
		{15, 16, 0, 15},
		{16, 16, 1, 0},
		{-1, 16, -1, 15},
		{-16, 16, -1, 0},
		{-17, 16, -2, 15},
		{31, 16, 1, 15},
	}
	for _, c := range cases {
		if got := FloorDiv(c.a, c.b); got != c.wantDiv {
			t.Errorf("FloorDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.wantDiv)
		}
		if got := FloorMod(c.a, c.b); got != c.wantMod {
			t.Errorf("FloorMod(%d,%d) = %d, want %d", c.a, c.b, got, c.wantMod)
		}
	}
}

func TestExactCover(t *testing.T) {
	for w := -200; w <= 200; w++ {
		reconstructed := ChunkOf(w)*Dimension + LocalOf(w)
		if reconstructed != w {
			t.Fatalf("ChunkOf(%d)*16 + LocalOf(%d) = %d, want %d", w, w, reconstructed, w)
		}
		local := LocalOf(w)
		if local < 0 || local >= Dimension {
			t.Fatalf("LocalOf(%d) = %d out of [0,%d)", w, local, Dimension)
		}
	}
}
