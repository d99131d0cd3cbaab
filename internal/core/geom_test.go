package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectFits(t *testing.T) {
	outer := NewRect(0, 0, 42, 17)

	tests := []struct {
		name     string
		inner    Rect
		expected bool
	}{
		{"same size", outer, true},
		{"inside", NewRect(2, 2, 10, 5), true},
		{"too wide", NewRect(0, 0, 43, 17), false},
		{"pokes out the bottom", NewRect(0, 10, 10, 8), false},
		{"starts left of outer", NewRect(-1, 0, 5, 5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := outer.Fits(tc.inner); got != tc.expected {
				t.Errorf("Fits(%+v) = %v, expected %v", tc.inner, got, tc.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(2, 3, 10, 6).Inset(1)
	if r != NewRect(3, 4, 8, 4) {
		t.Errorf("Inset(1) = %+v", r)
	}

	if r := NewRect(0, 0, 3, 3).Inset(2); r.W != 0 || r.H != 0 {
		t.Errorf("over-inset should collapse to zero size, got %+v", r)
	}
}

func TestRectCentered(t *testing.T) {
	screen := NewRect(0, 0, 80, 24)
	box := screen.Centered(42, 17)

	if box != NewRect(19, 3, 42, 17) {
		t.Errorf("Centered = %+v", box)
	}
	if !screen.Fits(box) {
		t.Error("centered box should fit")
	}
}
