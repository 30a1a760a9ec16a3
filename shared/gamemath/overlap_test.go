package gamemath

import "testing"

func TestRectsOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"intersecting", Rect{15, 0, 10, 10}, Rect{20, 0, 10, 10}, true},
		{"touching right edge", Rect{10, 0, 10, 10}, Rect{20, 0, 10, 10}, false},
		{"touching bottom edge", Rect{0, 0, 10, 10}, Rect{0, 10, 10, 10}, false},
		{"left of", Rect{0, 0, 5, 5}, Rect{20, 0, 10, 10}, false},
		{"above", Rect{0, -30, 10, 10}, Rect{0, 0, 10, 10}, false},
		{"contained", Rect{2, 2, 2, 2}, Rect{0, 0, 10, 10}, true},
		{"identical", Rect{3, 4, 5, 6}, Rect{3, 4, 5, 6}, true},
		{"zero size inside", Rect{5, 5, 0, 0}, Rect{0, 0, 10, 10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectsOverlap(tt.a, tt.b); got != tt.want {
				t.Errorf("RectsOverlap(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRectsOverlapSymmetric(t *testing.T) {
	rects := []Rect{
		{0, 0, 10, 10},
		{5, 5, 10, 10},
		{10, 0, 10, 10},
		{-5, -5, 3, 3},
		{20, 0, 10, 10},
		{15, 0, 10, 10},
		{0, 9.5, 1, 1},
		{4, 4, 0, 0},
	}
	for _, a := range rects {
		for _, b := range rects {
			if RectsOverlap(a, b) != RectsOverlap(b, a) {
				t.Errorf("RectsOverlap not symmetric for %v and %v", a, b)
			}
		}
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Circle
		want bool
	}{
		{"apart", Circle{0, 0, 5}, Circle{20, 0, 5}, false},
		{"touching", Circle{0, 0, 5}, Circle{10, 0, 5}, false},
		{"overlapping", Circle{0, 0, 5}, Circle{9, 0, 5}, true},
		{"same centre", Circle{1, 1, 1}, Circle{1, 1, 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesOverlap(tt.a, tt.b); got != tt.want {
				t.Errorf("CirclesOverlap(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCircleRectOverlap(t *testing.T) {
	tests := []struct {
		name string
		c    Circle
		r    Rect
		want bool
	}{
		// Closest point clamps to (10,10): squared distance 200 > 25.
		{"corner far away", Circle{0, 0, 5}, Rect{10, 10, 5, 5}, false},
		{"edge overlap", Circle{0, 5, 5}, Rect{3, 0, 10, 10}, true},
		{"centre inside", Circle{5, 5, 1}, Rect{0, 0, 10, 10}, true},
		{"touching edge", Circle{0, 5, 5}, Rect{5, 0, 10, 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleRectOverlap(tt.c, tt.r); got != tt.want {
				t.Errorf("CircleRectOverlap(%v, %v) = %v, want %v", tt.c, tt.r, got, tt.want)
			}
		})
	}
}

func TestCircleRectMatchesCircleCircleForPointRect(t *testing.T) {
	circles := []Circle{{0, 0, 5}, {3, 4, 5}, {3, 4, 6}, {-2, 7, 1}, {10, 10, 0}}
	points := [][2]float64{{0, 0}, {3, 4}, {6, 8}, {-2, 7.5}, {10, 10}}
	for _, c := range circles {
		for _, p := range points {
			rect := Rect{X: p[0], Y: p[1]}
			point := Circle{X: p[0], Y: p[1]}
			if CircleRectOverlap(c, rect) != CirclesOverlap(c, point) {
				t.Errorf("circle %v vs point %v: rect test %v, circle test %v",
					c, p, CircleRectOverlap(c, rect), CirclesOverlap(c, point))
			}
		}
	}
}

func TestBoxesOverlap(t *testing.T) {
	a := Boxes{{0, 0, 4, 1}, {0, 1, 10, 1}}
	hit := Boxes{{9, 1.5, 2, 2}}
	miss := Boxes{{5, 0, 4, 1}, {20, 20, 1, 1}}

	if !BoxesOverlap(a, hit) {
		t.Errorf("BoxesOverlap(%v, %v) = false, want true", a, hit)
	}
	if BoxesOverlap(a, miss) {
		t.Errorf("BoxesOverlap(%v, %v) = true, want false", a, miss)
	}
	if BoxesOverlap(a, nil) {
		t.Error("BoxesOverlap with empty set = true, want false")
	}
}

func TestOverlapsDispatch(t *testing.T) {
	box := Rect{10, 10, 5, 5}
	tests := []struct {
		name string
		a, b Shape
		want bool
	}{
		{"rect rect", Rect{12, 12, 5, 5}, box, true},
		{"rect circle", box, Circle{0, 0, 5}, false},
		{"circle rect", Circle{9, 9, 2}, box, true},
		{"circle boxes", Circle{9, 9, 2}, Boxes{box}, true},
		{"boxes circle", Boxes{{0, 0, 1, 1}}, Circle{9, 9, 2}, false},
		{"boxes rect", Boxes{{0, 0, 1, 1}, {11, 11, 1, 1}}, box, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestBoxesBounds(t *testing.T) {
	b := Boxes{{2, 0, 6, 1}, {0, 1, 10, 2}, {3, 3, 4, 1}}
	want := Rect{0, 0, 10, 4}
	if got := b.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if got := (Boxes{}).Bounds(); got != (Rect{}) {
		t.Errorf("empty Bounds() = %v, want zero rect", got)
	}
}

func TestCircleBounds(t *testing.T) {
	want := Rect{-5, 0, 10, 10}
	if got := (Circle{0, 5, 5}).Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}
