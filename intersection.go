package sweepline

import (
	"fmt"
	"sync"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy/lineintersection"
	"github.com/twpayne/go-geom/xy/lineintersector"
)

// Intersection is an intersection between two segments. A collinear intersection has two points, the ends of the shared part, otherwise it has one point. An intersection is proper when it is a single point in the interior of both segments.
type Intersection struct {
	A, B      Segment
	Points    []Point
	Proper    bool
	Collinear bool
}

func (z Intersection) String() string {
	extra := ""
	if z.Proper {
		extra = " proper"
	} else if z.Collinear {
		extra = " collinear"
	}
	return fmt.Sprintf("%v x %v at %v%s", z.A, z.B, z.Points, extra)
}

// Intersector is a SegmentIntersector that computes the actual intersections of the candidate pairs.
// Intersections between adjacent segments of the same edge at their shared vertex are trivial and are
// skipped unless IncludeTrivial is set. It is safe for concurrent use by multiple sweeps.
type Intersector struct {
	// Strategy is the line intersection algorithm, the robust algorithm is used when nil.
	Strategy       lineintersector.Strategy
	IncludeTrivial bool

	mu     sync.Mutex
	zs     []Intersection
	tests  int
	proper bool
}

// Test computes the intersection between a and b, if any.
func (x *Intersector) Test(a, b Segment) {
	x.mu.Lock()
	x.tests++
	x.mu.Unlock()

	// y-extents may not overlap as the sweep only considers x-extents
	if !a.Bounds().Touches(b.Bounds()) {
		return
	}

	strategy := x.Strategy
	if strategy == nil {
		strategy = lineintersector.RobustLineIntersector{}
	}
	a0, a1, b0, b1 := a.Start(), a.End(), b.Start(), b.End()
	res := lineintersector.LineIntersectsLine(strategy, toCoord(a0), toCoord(a1), toCoord(b0), toCoord(b1))
	if !res.HasIntersection() {
		return
	}

	coords := res.Intersection()
	z := Intersection{
		A:         a,
		B:         b,
		Points:    make([]Point, len(coords)),
		Collinear: res.Type() == lineintersection.CollinearIntersection,
	}
	for i, coord := range coords {
		z.Points[i] = Point{coord[0], coord[1]}
	}
	if !z.Collinear && len(z.Points) == 1 {
		p := z.Points[0]
		z.Proper = !p.Equals(a0) && !p.Equals(a1) && !p.Equals(b0) && !p.Equals(b1)
	}
	if !x.IncludeTrivial && trivialIntersection(z) {
		return
	}

	x.mu.Lock()
	x.zs = append(x.zs, z)
	x.proper = x.proper || z.Proper
	x.mu.Unlock()
}

// trivialIntersection returns true if the intersection is the shared vertex of adjacent segments of the same edge.
func trivialIntersection(z Intersection) bool {
	if z.Collinear || len(z.Points) != 1 || !z.A.Adjacent(z.B) {
		return false
	}
	p := z.Points[0]
	return (p.Equals(z.A.Start()) || p.Equals(z.A.End())) && (p.Equals(z.B.Start()) || p.Equals(z.B.End()))
}

// Intersections returns a copy of the found intersections, in the order they were found.
func (x *Intersector) Intersections() []Intersection {
	x.mu.Lock()
	defer x.mu.Unlock()
	return append([]Intersection(nil), x.zs...)
}

// HasIntersection returns true if any non-trivial intersection was found.
func (x *Intersector) HasIntersection() bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	return 0 < len(x.zs)
}

// HasProper returns true if any proper intersection was found.
func (x *Intersector) HasProper() bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.proper
}

// Tests returns the number of tested segment pairs.
func (x *Intersector) Tests() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.tests
}

func toCoord(p Point) geom.Coord {
	return geom.Coord{p.X, p.Y}
}
