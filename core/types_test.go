package core

import "testing"

func TestRectangleContainsExactOffset(t *testing.T) {
	r := NewRectangle(10, 10, 100, 50) // Left=10,Top=10,Right=110,Bottom=60

	tests := []struct {
		name   string
		p      Point
		offset int
		want   bool
	}{
		{"inside", Point{50, 30}, 0, true},
		{"on left edge", Point{10, 30}, 0, true},
		{"on right edge is exclusive", Point{110, 30}, 0, false},
		{"on top edge", Point{50, 10}, 0, true},
		{"on bottom edge is exclusive", Point{50, 60}, 0, false},
		{"just outside left, no offset", Point{9, 30}, 0, false},
		{"just outside left, covered by offset", Point{9, 30}, 15, true},
		{"far outside even with offset", Point{-100, 30}, 15, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p, tt.offset); got != tt.want {
				t.Errorf("Contains(%v, %d) = %v, want %v", tt.p, tt.offset, got, tt.want)
			}
		})
	}
}

func TestRectangleWidthHeight(t *testing.T) {
	r := NewRectangle(5, 5, 20, 10)
	if r.Width() != 20 {
		t.Errorf("Width() = %d, want 20", r.Width())
	}
	if r.Height() != 10 {
		t.Errorf("Height() = %d, want 10", r.Height())
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{DirectionNone, "None"},
		{Up, "Up"},
		{Down, "Down"},
		{Left, "Left"},
		{Right, "Right"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}
