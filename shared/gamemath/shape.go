package gamemath

// Shape is any collider geometry the overlap predicates understand.
type Shape interface {
	// Bounds returns the axis-aligned rectangle enclosing the shape.
	Bounds() Rect
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Bounds() Rect { return r }

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Contains reports whether other lies entirely inside r.
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Circle is positioned by its centre.
type Circle struct {
	X, Y, R float64
}

func (c Circle) Bounds() Rect {
	return Rect{X: c.X - c.R, Y: c.Y - c.R, W: c.R * 2, H: c.R * 2}
}

// Boxes is an ordered set of rectangles treated as one collider.
type Boxes []Rect

func (b Boxes) Bounds() Rect {
	if len(b) == 0 {
		return Rect{}
	}
	minX, minY := b[0].X, b[0].Y
	maxX, maxY := b[0].Right(), b[0].Bottom()
	for _, r := range b[1:] {
		minX = min(minX, r.X)
		minY = min(minY, r.Y)
		maxX = max(maxX, r.Right())
		maxY = max(maxY, r.Bottom())
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
