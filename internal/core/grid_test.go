package core

import "testing"

func TestMooreOffsetsAreUniqueAndCentered(t *testing.T) {
	if len(MooreOffsets) != 8 {
		t.Fatalf("expected 8 offsets, got %d", len(MooreOffsets))
	}
	seen := map[[2]int]bool{}
	for _, off := range MooreOffsets {
		if off == [2]int{0, 0} {
			t.Fatal("neighborhood must not include the cell itself")
		}
		if off[0] < -1 || off[0] > 1 || off[1] < -1 || off[1] > 1 {
			t.Fatalf("offset %v outside the Moore ring", off)
		}
		if seen[off] {
			t.Fatalf("duplicate offset %v", off)
		}
		seen[off] = true
	}
}

func TestInBounds(t *testing.T) {
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{4, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{5, 0, false},
		{0, 3, false},
	}
	for _, tc := range cases {
		if got := InBounds(5, 3, tc.x, tc.y); got != tc.want {
			t.Fatalf("InBounds(5,3,%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestIndexRowMajor(t *testing.T) {
	if got := Index(7, 3, 2); got != 17 {
		t.Fatalf("Index(7,3,2) = %d, want 17", got)
	}
}
