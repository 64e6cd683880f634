package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"inside", Pt(15, 15), true},
		{"top-left corner", Pt(10, 10), true},
		{"bottom-right edge (exclusive)", Pt(30, 25), false},
		{"outside left", Pt(5, 15), false},
		{"outside right", Pt(35, 15), false},
		{"outside top", Pt(15, 5), false},
		{"outside bottom", Pt(15, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.p)
			if result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	c := r.Center()
	if c.X != 15 || c.Y != 17.5 {
		t.Errorf("Center() = %v, expected (15, 17.5)", c)
	}
	if r.Empty() {
		t.Error("non-zero rect should not be empty")
	}
	if !NewRect(0, 0, 0, 10).Empty() {
		t.Error("zero-width rect should be empty")
	}
}

func TestDistSq(t *testing.T) {
	if d := Pt(0, 0).DistSq(Pt(3, 4)); d != 25 {
		t.Errorf("DistSq = %v, expected 25", d)
	}
	if d := Pt(7, 7).DistSq(Pt(7, 7)); d != 0 {
		t.Errorf("DistSq of same point = %v, expected 0", d)
	}
}
