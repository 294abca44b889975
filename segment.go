package sweepline

import (
	"fmt"
	"math"
)

// Segment is the interval along the sweep axis of one segment of an edge. It refers to the segment from Edge.Coords()[Index] to Edge.Coords()[Index+1]; the edge is shared and never modified. EdgeIndex is the position of the edge in the order edges were added to the sweep line, and identifies the edge by value.
type Segment struct {
	Edge       Edge
	EdgeIndex  int
	Index      int
	MinX, MaxX float64
}

func newSegment(edge Edge, edgeIndex, i int) Segment {
	coords := edge.Coords()
	x0, x1 := coords[i].X, coords[i+1].X
	return Segment{
		Edge:      edge,
		EdgeIndex: edgeIndex,
		Index:     i,
		MinX:      math.Min(x0, x1),
		MaxX:      math.Max(x0, x1),
	}
}

// Start returns the first coordinate of the segment.
func (s Segment) Start() Point {
	return s.Edge.Coords()[s.Index]
}

// End returns the second coordinate of the segment.
func (s Segment) End() Point {
	return s.Edge.Coords()[s.Index+1]
}

// Bounds returns the bounding box of the segment.
func (s Segment) Bounds() Rect {
	return rectFromPoints(s.Start(), s.End())
}

// Overlaps returns true if the x-extents of both segments overlap or touch.
func (s Segment) Overlaps(t Segment) bool {
	return s.MinX <= t.MaxX && t.MinX <= s.MaxX
}

// Adjacent returns true if both segments are consecutive segments of the same edge, including the last and first segment of a closed edge.
func (s Segment) Adjacent(t Segment) bool {
	if s.EdgeIndex != t.EdgeIndex {
		return false
	}
	d := s.Index - t.Index
	if d == 1 || d == -1 {
		return true
	}
	coords := s.Edge.Coords()
	if n := len(coords) - 1; 2 < n && coords[0].Equals(coords[n]) {
		return d == n-1 || d == 1-n
	}
	return false
}

// Test passes the segment pair to the intersector.
func (s Segment) Test(t Segment, si SegmentIntersector) {
	si.Test(s, t)
}

func (s Segment) String() string {
	return fmt.Sprintf("E%d.%d(%v−%v)", s.EdgeIndex, s.Index, s.Start(), s.End())
}
