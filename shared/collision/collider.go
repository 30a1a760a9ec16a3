package collision

import "github.com/automoto/blitkit/shared/gamemath"

// Collider derives a body's geometry from its position.
type Collider interface {
	ShapeAt(x, y float64) gamemath.Shape
}

// BoxCollider is a rectangle anchored at the body's top-left corner.
type BoxCollider struct {
	W, H float64
}

func (c BoxCollider) ShapeAt(x, y float64) gamemath.Shape {
	return gamemath.Rect{X: x, Y: y, W: c.W, H: c.H}
}

// CircleCollider is a circle centred on the body's position.
type CircleCollider struct {
	R float64
}

func (c CircleCollider) ShapeAt(x, y float64) gamemath.Shape {
	return gamemath.Circle{X: x, Y: y, R: c.R}
}

// Span is one row of a PixelCollider.
type Span struct {
	W, H float64
}

// PixelCollider approximates a sprite with stacked rows, each centred
// horizontally within Width and placed directly below the previous one.
type PixelCollider struct {
	Width float64
	Rows  []Span
}

func (c PixelCollider) ShapeAt(x, y float64) gamemath.Shape {
	boxes := make(gamemath.Boxes, len(c.Rows))
	r := 0.0
	for i, row := range c.Rows {
		boxes[i] = gamemath.Rect{
			X: x + (c.Width-row.W)/2,
			Y: y + r,
			W: row.W,
			H: row.H,
		}
		r += row.H
	}
	return boxes
}

// DotRows is the row profile of the 20x20 round dot sprite.
var DotRows = []Span{
	{W: 6, H: 1},
	{W: 10, H: 1},
	{W: 14, H: 1},
	{W: 16, H: 2},
	{W: 18, H: 2},
	{W: 20, H: 6},
	{W: 18, H: 2},
	{W: 16, H: 2},
	{W: 14, H: 1},
	{W: 10, H: 1},
	{W: 6, H: 1},
}
