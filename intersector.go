package sweepline

import "sync"

// SegmentIntersector receives the candidate segment pairs of a sweep, ie. pairs whose x-extents overlap and whose groups allow testing. It performs the actual intersection test and keeps its own results. Test is called sequentially from a single sweep; implementations shared between concurrent sweeps must synchronize themselves.
type SegmentIntersector interface {
	Test(a, b Segment)
}

// SegmentIntersectorFunc is a function that implements SegmentIntersector.
type SegmentIntersectorFunc func(Segment, Segment)

// Test calls f(a, b).
func (f SegmentIntersectorFunc) Test(a, b Segment) {
	f(a, b)
}

// Pair is a candidate segment pair, A was activated before B.
type Pair struct {
	A, B Segment
}

// Pairs collects candidate pairs in the order they are reported. It is safe for concurrent use.
type Pairs struct {
	mu    sync.Mutex
	pairs []Pair
}

// Test records the pair.
func (c *Pairs) Test(a, b Segment) {
	c.mu.Lock()
	c.pairs = append(c.pairs, Pair{a, b})
	c.mu.Unlock()
}

// Len returns the number of collected pairs.
func (c *Pairs) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pairs)
}

// Pairs returns a copy of the collected pairs.
func (c *Pairs) Pairs() []Pair {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Pair(nil), c.pairs...)
}
