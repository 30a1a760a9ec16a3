package gamemath

// RectsOverlap reports whether two rectangles intersect. Rectangles that only
// share an edge do not overlap.
func RectsOverlap(a, b Rect) bool {
	if a.Bottom() <= b.Y {
		return false
	}
	if a.Y >= b.Bottom() {
		return false
	}
	if a.Right() <= b.X {
		return false
	}
	if a.X >= b.Right() {
		return false
	}
	return true
}

// CirclesOverlap reports whether the squared centre distance is below the
// squared sum of radii.
func CirclesOverlap(a, b Circle) bool {
	totalRadius := a.R + b.R
	return DistanceSquared(a.X, a.Y, b.X, b.Y) < totalRadius*totalRadius
}

// CircleRectOverlap tests the circle against the point of the rectangle
// closest to its centre.
func CircleRectOverlap(c Circle, r Rect) bool {
	closestX := ClampFloat(c.X, r.X, r.Right())
	closestY := ClampFloat(c.Y, r.Y, r.Bottom())
	return DistanceSquared(c.X, c.Y, closestX, closestY) < c.R*c.R
}

// BoxesOverlap reports whether any rectangle of a intersects any rectangle of b.
func BoxesOverlap(a, b Boxes) bool {
	for _, ra := range a {
		for _, rb := range b {
			if RectsOverlap(ra, rb) {
				return true
			}
		}
	}
	return false
}

// DistanceSquared returns the squared distance between two points.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Overlaps dispatches to the predicate matching the concrete shapes.
// Unknown shape types are compared by their bounds.
func Overlaps(a, b Shape) bool {
	switch sa := a.(type) {
	case Rect:
		switch sb := b.(type) {
		case Rect:
			return RectsOverlap(sa, sb)
		case Circle:
			return CircleRectOverlap(sb, sa)
		case Boxes:
			return BoxesOverlap(Boxes{sa}, sb)
		}
	case Circle:
		switch sb := b.(type) {
		case Rect:
			return CircleRectOverlap(sa, sb)
		case Circle:
			return CirclesOverlap(sa, sb)
		case Boxes:
			return circleBoxesOverlap(sa, sb)
		}
	case Boxes:
		switch sb := b.(type) {
		case Rect:
			return BoxesOverlap(sa, Boxes{sb})
		case Circle:
			return circleBoxesOverlap(sb, sa)
		case Boxes:
			return BoxesOverlap(sa, sb)
		}
	}
	return RectsOverlap(a.Bounds(), b.Bounds())
}

func circleBoxesOverlap(c Circle, boxes Boxes) bool {
	for _, r := range boxes {
		if CircleRectOverlap(c, r) {
			return true
		}
	}
	return false
}
