package world

import "math"

// Segment is a straight stroke from A to B.
type Segment struct {
	A, B Point
}

// Strokes splits a polyline into runs that can be drawn as continuous paths.
// A new run starts whenever two consecutive points are more than seam apart
// on either axis, which is what a torus wrap looks like. Runs never share
// points; single-point runs are kept so callers can still draw a dot.
func Strokes(points []Point, seam float64) [][]Point {
	if len(points) == 0 {
		return nil
	}
	var runs [][]Point
	start := 0
	for i := 1; i < len(points); i++ {
		p1, p2 := points[i-1], points[i]
		if math.Abs(p1.X-p2.X) > seam || math.Abs(p1.Y-p2.Y) > seam {
			runs = append(runs, points[start:i])
			start = i
		}
	}
	return append(runs, points[start:])
}

// MenuGlyph returns the three horizontal strokes of the stacked-lines glyph
// centered on the menu target: half width 12, rows at -7, 0 and +7.
func MenuGlyph(center Point) [3]Segment {
	const halfW, gap = 12, 7
	var lines [3]Segment
	for i, dy := range [3]float64{-gap, 0, gap} {
		lines[i] = Segment{
			A: Point{X: center.X - halfW, Y: center.Y + dy},
			B: Point{X: center.X + halfW, Y: center.Y + dy},
		}
	}
	return lines
}
