package world

import "math"

// Point is a position in logical canvas pixels.
type Point struct {
	X, Y float64
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Size is the canvas extent in logical pixels (independent of device pixel ratio).
type Size struct {
	W, H float64
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.W > 0 && s.H > 0
}

// Contains reports whether p lies within [0,W]x[0,H].
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.X <= s.W && p.Y >= 0 && p.Y <= s.H
}

// Center returns the middle of the canvas.
func (s Size) Center() Point {
	return Point{X: s.W / 2, Y: s.H / 2}
}

// Wrap maps a point that left the canvas onto the torus.
// A negative coordinate jumps to the far edge; one beyond the extent jumps to 0.
// Points inside the canvas (edges included) are returned unchanged.
func (s Size) Wrap(p Point) Point {
	if p.X < 0 {
		p.X = s.W
	}
	if p.X > s.W {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = s.H
	}
	if p.Y > s.H {
		p.Y = 0
	}
	return p
}

// Rect is an axis-aligned box, Min inclusive and Max exclusive.
type Rect struct {
	Min, Max Point
}

// RectAt returns the box with top-left (x, y) and size (w, h).
func RectAt(x, y, w, h float64) Rect {
	return Rect{Min: Point{X: x, Y: y}, Max: Point{X: x + w, Y: y + h}}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Grow expands r by d on every side (shrinks it for negative d).
func (r Rect) Grow(d float64) Rect {
	return Rect{Min: r.Min.Add(-d, -d), Max: r.Max.Add(d, d)}
}
