package core

// MooreOffsets enumerates the 8-neighbor Moore neighborhood in row-major
// order. Callers must clip against the grid bounds; there is no wraparound.
var MooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// InBounds reports whether (x, y) lies inside a w by h grid.
func InBounds(w, h, x, y int) bool {
	return x >= 0 && x < w && y >= 0 && y < h
}

// Index returns the row-major slice index for coordinates (x, y).
func Index(w, x, y int) int { return y*w + x }
