package collision

import (
	"github.com/automoto/blitkit/shared/gamemath"
	"github.com/solarlune/resolv"
)

// broadphaseMargin pads every resolv object so that cell lookups stay
// conservative for fractional positions.
const broadphaseMargin = 1.0

// World holds the obstacles and bodies of one scene. The resolv space only
// narrows down candidates; overlap itself is decided by the exact
// gamemath predicates.
type World struct {
	bounds gamemath.Rect
	space  *resolv.Space
}

// Obstacle is a static shape registered with a World.
type Obstacle struct {
	Shape  gamemath.Shape
	object *resolv.Object
}

// Body is a moving entity. Its shape is recomputed from the collider after
// every position change.
type Body struct {
	X, Y     float64
	Collider Collider

	shape  gamemath.Shape
	object *resolv.Object
}

// NewWorld creates a world spanning (0,0)-(width,height). Bodies may never
// leave those bounds.
func NewWorld(width, height, cellWidth, cellHeight int) *World {
	return &World{
		bounds: gamemath.Rect{W: float64(width), H: float64(height)},
		space:  resolv.NewSpace(width, height, cellWidth, cellHeight),
	}
}

// Bounds returns the permitted area for bodies.
func (w *World) Bounds() gamemath.Rect {
	return w.bounds
}

// AddObstacle registers a static shape.
func (w *World) AddObstacle(shape gamemath.Shape, tags ...string) *Obstacle {
	o := &Obstacle{Shape: shape}
	o.object = newBroadphaseObject(shape.Bounds(), tags...)
	o.object.Data = o
	w.space.Add(o.object)
	return o
}

// RemoveObstacle unregisters o. Removing an obstacle twice is a no-op.
func (w *World) RemoveObstacle(o *Obstacle) {
	if o == nil || o.object == nil {
		return
	}
	w.space.Remove(o.object)
	o.object = nil
}

// AddBody places a body at (x, y). Placement is not checked against
// obstacles.
func (w *World) AddBody(x, y float64, c Collider, tags ...string) *Body {
	b := &Body{X: x, Y: y, Collider: c}
	b.shape = c.ShapeAt(x, y)
	b.object = newBroadphaseObject(b.shape.Bounds(), tags...)
	b.object.Data = b
	w.space.Add(b.object)
	return b
}

// RemoveBody unregisters b.
func (w *World) RemoveBody(b *Body) {
	if b == nil || b.object == nil {
		return
	}
	w.space.Remove(b.object)
	b.object = nil
}

// Shape returns the body's current geometry.
func (b *Body) Shape() gamemath.Shape {
	return b.shape
}

// SetPosition moves the body without any collision checks.
func (b *Body) SetPosition(x, y float64) {
	b.X, b.Y = x, y
	b.shape = b.Collider.ShapeAt(x, y)
	if b.object != nil {
		syncBroadphaseObject(b.object, b.shape.Bounds())
	}
}

// Move applies dx and then dy to the body, each axis on its own. An axis is
// rejected outright when the moved shape would leave the world bounds or
// overlap any obstacle or other body; there is no partial sliding.
func (w *World) Move(b *Body, dx, dy float64) (movedX, movedY bool) {
	if dx != 0 {
		movedX = w.tryAxis(b, dx, 0)
	}
	if dy != 0 {
		movedY = w.tryAxis(b, 0, dy)
	}
	return movedX, movedY
}

func (w *World) tryAxis(b *Body, dx, dy float64) bool {
	prevX, prevY := b.X, b.Y
	b.SetPosition(b.X+dx, b.Y+dy)

	if w.OutOfBounds(b.shape) || w.Blocked(b) {
		b.SetPosition(prevX, prevY)
		return false
	}
	return true
}

// OutOfBounds reports whether shape extends past the world bounds.
func (w *World) OutOfBounds(shape gamemath.Shape) bool {
	return !w.bounds.Contains(shape.Bounds())
}

// Blocked reports whether the body currently overlaps an obstacle or another
// body. When tags are given only objects carrying them are considered.
func (w *World) Blocked(b *Body, tags ...string) bool {
	if b.object == nil {
		return false
	}
	check := b.object.Check(0, 0, tags...)
	if check == nil {
		return false
	}
	for _, other := range check.Objects {
		if gamemath.Overlaps(b.shape, shapeOf(other)) {
			return true
		}
	}
	return false
}

// Overlapping returns every registered obstacle and body whose shape
// overlaps shape, optionally filtered by tags.
func (w *World) Overlapping(shape gamemath.Shape, tags ...string) []interface{} {
	bounds := shape.Bounds()
	probe := newBroadphaseObject(bounds)
	w.space.Add(probe)
	defer w.space.Remove(probe)

	check := probe.Check(0, 0, tags...)
	if check == nil {
		return nil
	}

	var found []interface{}
	for _, other := range check.Objects {
		if gamemath.Overlaps(shape, shapeOf(other)) {
			found = append(found, other.Data)
		}
	}
	return found
}

func shapeOf(obj *resolv.Object) gamemath.Shape {
	switch owner := obj.Data.(type) {
	case *Obstacle:
		return owner.Shape
	case *Body:
		return owner.shape
	}
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

func newBroadphaseObject(bounds gamemath.Rect, tags ...string) *resolv.Object {
	return resolv.NewObject(
		bounds.X-broadphaseMargin,
		bounds.Y-broadphaseMargin,
		bounds.W+broadphaseMargin*2,
		bounds.H+broadphaseMargin*2,
		tags...,
	)
}

func syncBroadphaseObject(obj *resolv.Object, bounds gamemath.Rect) {
	obj.X = bounds.X - broadphaseMargin
	obj.Y = bounds.Y - broadphaseMargin
	obj.W = bounds.W + broadphaseMargin*2
	obj.H = bounds.H + broadphaseMargin*2
	obj.Update()
}
