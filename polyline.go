package sweepline

import "math"

// Edge is a polyline whose consecutive coordinates form the segments that are swept. Edges with fewer than two coordinates have no segments. Edges are only read, never modified.
type Edge interface {
	Coords() []Point
}

// Polyline defines a list of points in 2D space that form a polyline. If the last coordinate equals the first coordinate, we assume the polyline to close itself.
type Polyline struct {
	coords []Point
}

// NewPolyline returns a polyline through the given points.
func NewPolyline(coords ...Point) *Polyline {
	return &Polyline{coords}
}

// Empty returns true if the polyline has no segments.
func (p *Polyline) Empty() bool {
	return len(p.coords) < 2
}

// Len returns the number of segments.
func (p *Polyline) Len() int {
	if p.Empty() {
		return 0
	}
	return len(p.coords) - 1
}

// Add adds a new point to the polyline.
func (p *Polyline) Add(x, y float64) *Polyline {
	p.coords = append(p.coords, Point{x, y})
	return p
}

// Close adds a new point equal to the first, closing the polyline.
func (p *Polyline) Close() *Polyline {
	if 0 < len(p.coords) && !p.Closed() {
		p.coords = append(p.coords, p.coords[0])
	}
	return p
}

// Closed returns true if the last point coincides with the first.
func (p *Polyline) Closed() bool {
	return 1 < len(p.coords) && p.coords[0].Equals(p.coords[len(p.coords)-1])
}

// Coords returns the list of coordinates of the polyline.
func (p *Polyline) Coords() []Point {
	return p.coords
}

// Bounds returns the bounding box of the polyline.
func (p *Polyline) Bounds() Rect {
	if len(p.coords) == 0 {
		return Rect{}
	}
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, coord := range p.coords {
		x0 = math.Min(x0, coord.X)
		y0 = math.Min(y0, coord.Y)
		x1 = math.Max(x1, coord.X)
		y1 = math.Max(y1, coord.Y)
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// TransformFunc returns a new polyline with every coordinate passed through f.
func (p *Polyline) TransformFunc(f func(float64, float64) (float64, float64)) *Polyline {
	q := &Polyline{make([]Point, len(p.coords))}
	for i, coord := range p.coords {
		q.coords[i].X, q.coords[i].Y = f(coord.X, coord.Y)
	}
	return q
}

// BoundsOf returns the bounding box of all polylines. Polylines without coordinates are ignored.
func BoundsOf(ps []*Polyline) Rect {
	r, ok := Rect{}, false
	for _, p := range ps {
		if len(p.coords) == 0 {
			continue
		} else if !ok {
			r, ok = p.Bounds(), true
		} else {
			r = r.Add(p.Bounds())
		}
	}
	return r
}
