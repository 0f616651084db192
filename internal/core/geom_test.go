package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"touching side", NewRect(0, 0, 8, 15), NewRect(8, 0, 16, 16), false},
		{"touching floor", NewRect(50, 81, 8, 15), NewRect(48, 96, 16, 16), false},
		{"one pixel into floor", NewRect(50, 82, 8, 15), NewRect(48, 96, 16, 16), true},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"negative space", NewRect(-20, -20, 16, 16), NewRect(-10, -10, 4, 4), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"last pixel", 29, 24, true},
		{"left of rect", 9, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(4, 6, 8, 15)
	if r.Right() != 12 || r.Bottom() != 21 {
		t.Errorf("edges = (%d, %d), expected (12, 21)", r.Right(), r.Bottom())
	}

	r.SetRight(48)
	r.SetBottom(96)
	if r.X != 40 || r.Y != 81 {
		t.Errorf("after SetRight/SetBottom got (%d, %d), expected (40, 81)", r.X, r.Y)
	}
	if cx, cy := r.Center(); cx != 44 || cy != 88 {
		t.Errorf("Center() = (%d, %d), expected (44, 88)", cx, cy)
	}
}

func TestRectAtFloors(t *testing.T) {
	tests := []struct {
		pos  Vec2
		x, y int
	}{
		{V(50, 81.6), 50, 81},
		{V(-0.5, -15.1), -1, -16},
		{V(3.999, 0), 3, 0},
	}
	for _, tc := range tests {
		r := RectAt(tc.pos, 8, 15)
		if r.X != tc.x || r.Y != tc.y {
			t.Errorf("RectAt(%v) origin = (%d, %d), expected (%d, %d)", tc.pos, r.X, r.Y, tc.x, tc.y)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, expected int }{
		{33, 16, 2},
		{32, 16, 2},
		{0, 16, 0},
		{-1, 16, -1},
		{-16, 16, -1},
		{-17, 16, -2},
	}
	for _, tc := range tests {
		if got := FloorDiv(tc.a, tc.b); got != tc.expected {
			t.Errorf("FloorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestMod(t *testing.T) {
	tests := []struct{ a, b, expected float64 }{
		{5, 3, 2},
		{-1, 352, 351},
		{-352, 352, 0},
		{10.5, 4, 2.5},
	}
	for _, tc := range tests {
		if got := Mod(tc.a, tc.b); got != tc.expected {
			t.Errorf("Mod(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
	if got := ClampF(7.5, 0, 5); got != 5 {
		t.Errorf("ClampF(7.5, 0, 5) = %v, expected 5", got)
	}
}

func TestAbsSign(t *testing.T) {
	tests := []struct{ in, abs, sign int }{
		{-60, 60, -1},
		{0, 0, 0},
		{51, 51, 1},
	}
	for _, tc := range tests {
		if Abs(tc.in) != tc.abs || Sign(tc.in) != tc.sign {
			t.Errorf("Abs/Sign(%d) = %d/%d, expected %d/%d", tc.in, Abs(tc.in), Sign(tc.in), tc.abs, tc.sign)
		}
	}
}

func TestVec2(t *testing.T) {
	v := V(1.5, -2).Add(V(0.5, 1)).Scale(2).Sub(V(1, 1))
	if v != V(3, -3) {
		t.Errorf("got %v, expected (3, -3)", v)
	}
}
