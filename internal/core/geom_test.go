package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping tiles", NewRect(0, 0, 32, 32), NewRect(16, 16, 32, 32), true},
		{"adjacent horizontal", NewRect(0, 0, 32, 32), NewRect(32, 0, 32, 32), false},
		{"adjacent vertical", NewRect(0, 0, 32, 32), NewRect(0, 32, 32, 32), false},
		{"contained", NewRect(0, 0, 64, 64), NewRect(8, 8, 8, 8), true},
		{"far apart", NewRect(0, 0, 8, 8), NewRect(100, 100, 8, 8), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := NewRect(64, 32, 32, 32)
	if c := r.Center(); c != Pt(80, 48) {
		t.Errorf("Center() = %v, expected (80,48)", c)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, expected int
	}{
		{0, 32, 0},
		{31, 32, 0},
		{32, 32, 1},
		{-1, 32, -1},
		{-32, 32, -1},
		{-33, 32, -2},
		{639, 32, 19},
	}

	for _, tc := range tests {
		if got := FloorDiv(tc.a, tc.b); got != tc.expected {
			t.Errorf("FloorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestMod(t *testing.T) {
	if got := Mod(-1, 20); got != 19 {
		t.Errorf("Mod(-1, 20) = %d, expected 19", got)
	}
	if got := Mod(21, 20); got != 1 {
		t.Errorf("Mod(21, 20) = %d, expected 1", got)
	}
}

func TestPointDist(t *testing.T) {
	a, b := Pt(0, 0), Pt(3, 4)
	if a.DistSq(b) != 25 {
		t.Errorf("DistSq = %d, expected 25", a.DistSq(b))
	}
	if a.Dist(b) != 5 {
		t.Errorf("Dist = %v, expected 5", a.Dist(b))
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp returned a value outside the range")
	}
}
