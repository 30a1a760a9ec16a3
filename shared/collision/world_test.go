package collision

import (
	"testing"

	"github.com/automoto/blitkit/shared/gamemath"
)

func newTestWorld() *World {
	return NewWorld(640, 480, 32, 32)
}

func TestMoveRejectsOverlappingAxis(t *testing.T) {
	w := newTestWorld()
	w.AddObstacle(gamemath.Rect{X: 20, Y: 0, W: 10, H: 10})
	b := w.AddBody(0, 0, BoxCollider{W: 10, H: 10})

	movedX, movedY := w.Move(b, 15, 0)
	if movedX || movedY {
		t.Errorf("Move() = (%v, %v), want (false, false)", movedX, movedY)
	}
	if b.X != 0 || b.Y != 0 {
		t.Errorf("position = (%v, %v), want (0, 0)", b.X, b.Y)
	}
	if got := b.Shape(); got != (gamemath.Rect{W: 10, H: 10}) {
		t.Errorf("Shape() = %v, want geometry reverted to origin", got)
	}
}

func TestMoveResolvesAxesIndependently(t *testing.T) {
	w := newTestWorld()
	w.AddObstacle(gamemath.Rect{X: 15, Y: 0, W: 10, H: 50})
	b := w.AddBody(0, 0, BoxCollider{W: 10, H: 10})

	movedX, movedY := w.Move(b, 10, 5)
	if movedX {
		t.Error("X axis accepted, want rejected")
	}
	if !movedY {
		t.Error("Y axis rejected, want accepted")
	}
	if b.X != 0 || b.Y != 5 {
		t.Errorf("position = (%v, %v), want (0, 5)", b.X, b.Y)
	}
}

func TestMoveAllowsTouching(t *testing.T) {
	w := newTestWorld()
	w.AddObstacle(gamemath.Rect{X: 20, Y: 0, W: 10, H: 10})
	b := w.AddBody(0, 0, BoxCollider{W: 10, H: 10})

	if movedX, _ := w.Move(b, 10, 0); !movedX {
		t.Fatal("move to an edge-adjacent position rejected")
	}
	if b.X != 10 {
		t.Errorf("X = %v, want 10", b.X)
	}
}

func TestMoveRejectsOutOfBounds(t *testing.T) {
	w := newTestWorld()
	b := w.AddBody(630, 0, BoxCollider{W: 10, H: 10})

	tests := []struct {
		name   string
		dx, dy float64
	}{
		{"right edge", 1, 0},
		{"top edge", 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movedX, movedY := w.Move(b, tt.dx, tt.dy)
			if movedX || movedY {
				t.Errorf("Move(%v, %v) = (%v, %v), want rejected", tt.dx, tt.dy, movedX, movedY)
			}
			if b.X != 630 || b.Y != 0 {
				t.Errorf("position = (%v, %v), want (630, 0)", b.X, b.Y)
			}
		})
	}

	if _, movedY := w.Move(b, 0, 470); !movedY {
		t.Error("move to the bottom edge rejected")
	}
}

func TestCircleBodyAgainstBoxObstacle(t *testing.T) {
	w := newTestWorld()
	w.AddObstacle(gamemath.Rect{X: 100, Y: 100, W: 20, H: 20})
	b := w.AddBody(80, 110, CircleCollider{R: 10})

	if movedX, _ := w.Move(b, 5, 0); movedX {
		t.Error("circle moved into box, want rejected")
	}
	if b.X != 80 {
		t.Errorf("X = %v, want 80", b.X)
	}
	if _, movedY := w.Move(b, 0, -50); !movedY {
		t.Error("circle moving away from box rejected")
	}
}

func TestBodiesBlockEachOther(t *testing.T) {
	w := newTestWorld()
	a := w.AddBody(0, 0, PixelCollider{Width: 20, Rows: DotRows}, "dot")
	other := w.AddBody(100, 0, PixelCollider{Width: 20, Rows: DotRows}, "dot")

	if movedX, _ := w.Move(a, 85, 0); movedX {
		t.Error("dot moved through another dot")
	}
	if w.Blocked(other) {
		t.Error("Blocked() = true for an untouched dot")
	}

	// The rounded corners leave room for a diagonal graze that a bounding
	// box would reject.
	w.RemoveBody(other)
	w.AddBody(20, 18, BoxCollider{W: 2, H: 2})
	if movedX, _ := w.Move(a, 0.5, 0); !movedX {
		t.Error("move past the dot's cut corner rejected")
	}
}

func TestBlockedFiltersTags(t *testing.T) {
	w := newTestWorld()
	w.AddObstacle(gamemath.Rect{X: 0, Y: 0, W: 50, H: 50}, "water")
	b := w.AddBody(10, 10, BoxCollider{W: 5, H: 5})

	if !w.Blocked(b) {
		t.Error("Blocked() = false, want true")
	}
	if !w.Blocked(b, "water") {
		t.Error(`Blocked("water") = false, want true`)
	}
	if w.Blocked(b, "wall") {
		t.Error(`Blocked("wall") = true, want false`)
	}
}

func TestRemoveObstacle(t *testing.T) {
	w := newTestWorld()
	o := w.AddObstacle(gamemath.Rect{X: 20, Y: 0, W: 10, H: 10})
	b := w.AddBody(0, 0, BoxCollider{W: 10, H: 10})

	w.RemoveObstacle(o)
	w.RemoveObstacle(o)

	if movedX, _ := w.Move(b, 15, 0); !movedX {
		t.Error("move rejected after obstacle removal")
	}
}

func TestOverlapping(t *testing.T) {
	w := newTestWorld()
	wall := w.AddObstacle(gamemath.Rect{X: 0, Y: 0, W: 40, H: 40}, "wall")
	w.AddObstacle(gamemath.Rect{X: 200, Y: 200, W: 40, H: 40}, "wall")

	got := w.Overlapping(gamemath.Circle{X: 45, Y: 20, R: 10}, "wall")
	if len(got) != 1 || got[0] != wall {
		t.Errorf("Overlapping() = %v, want [%v]", got, wall)
	}
	if got := w.Overlapping(gamemath.Circle{X: 100, Y: 100, R: 5}); len(got) != 0 {
		t.Errorf("Overlapping() = %v, want none", got)
	}
}

func TestPixelColliderShape(t *testing.T) {
	c := PixelCollider{Width: 20, Rows: DotRows}
	boxes, ok := c.ShapeAt(100, 50).(gamemath.Boxes)
	if !ok {
		t.Fatalf("ShapeAt() returned %T, want gamemath.Boxes", c.ShapeAt(100, 50))
	}
	if len(boxes) != len(DotRows) {
		t.Fatalf("len(boxes) = %d, want %d", len(boxes), len(DotRows))
	}
	if first := boxes[0]; first != (gamemath.Rect{X: 107, Y: 50, W: 6, H: 1}) {
		t.Errorf("first row = %v", first)
	}
	want := gamemath.Rect{X: 100, Y: 50, W: 20, H: 20}
	if got := boxes.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}
