// Package geom holds the world-space primitives shared by actors and the world.
// Coordinates are pixels with y growing upwards.
package geom

import "math"

// PixelPerMeter converts meters into world pixels (10 px per 30 cm).
const PixelPerMeter = 10.0 / 0.3

type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Dist2 is the squared pixel distance between two points.
func Dist2(x1, y1, x2, y2 float64) float64 {
	dx, dy := x1-x2, y1-y2
	return dx*dx + dy*dy
}

// Within reports whether the two points are closer than r meters.
func Within(x1, y1, x2, y2, r float64) bool {
	rp := PixelPerMeter * r
	return Dist2(x1, y1, x2, y2) < rp*rp
}

// Beyond reports whether the two points are further apart than r meters.
func Beyond(x1, y1, x2, y2, r float64) bool {
	rp := PixelPerMeter * r
	return Dist2(x1, y1, x2, y2) > rp*rp
}

// Rect is an axis-aligned box given by its left, bottom, right and top edges.
type Rect struct {
	Left, Bottom, Right, Top float64
}

// Box returns the rectangle of half extents hw, hh around (x, y).
func Box(x, y, hw, hh float64) Rect {
	return Rect{Left: x - hw, Bottom: y - hh, Right: x + hw, Top: y + hh}
}

// Overlaps reports whether r and o intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right && o.Left < r.Right && r.Bottom < o.Top && o.Bottom < r.Top
}

// Inset shrinks r by m on every side.
func (r Rect) Inset(m float64) Rect {
	return Rect{Left: r.Left + m, Bottom: r.Bottom + m, Right: r.Right - m, Top: r.Top - m}
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Top - r.Bottom }

// Heading returns the angle in radians from (x, y) towards (tx, ty).
func Heading(x, y, tx, ty float64) float64 {
	return math.Atan2(ty-y, tx-x)
}
