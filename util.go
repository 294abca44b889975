package sweepline

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance for comparing coordinates of intersection points.
const Epsilon = 1e-10

////////////////////////////////////////////////////////////////

// Point is a coordinate of an edge.
type Point struct {
	X, Y float64
}

// Equals returns true if P and Q are within Epsilon along both axes.
func (p Point) Equals(q Point) bool {
	return math.Abs(p.X-q.X) < Epsilon && math.Abs(p.Y-q.Y) < Epsilon
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle with its origin at (X,Y).
type Rect struct {
	X, Y, W, H float64
}

// rectFromPoints returns the bounding rectangle of a and b.
func rectFromPoints(a, b Point) Rect {
	x0, x1 := math.Min(a.X, b.X), math.Max(a.X, b.X)
	y0, y1 := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Add returns the smallest rectangle that contains both R and Q.
// Degenerate rectangles of horizontal or vertical edges are kept.
func (r Rect) Add(q Rect) Rect {
	x0 := math.Min(r.X, q.X)
	y0 := math.Min(r.Y, q.Y)
	x1 := math.Max(r.X+r.W, q.X+q.W)
	y1 := math.Max(r.Y+r.H, q.Y+q.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Touches returns true if R and Q overlap or touch, boundaries included.
func (r Rect) Touches(q Rect) bool {
	return r.X <= q.X+q.W && q.X <= r.X+r.W && r.Y <= q.Y+q.H && q.Y <= r.Y+r.H
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", r.X, r.Y, r.X+r.W, r.Y+r.H)
}
