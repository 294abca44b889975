package sweepline

import (
	"math/rand/v2"
	"sync"
)

// RandomPolylines returns n polylines of m segments within a square of the given size, with each segment no longer than step along both axes.
func RandomPolylines(rng *rand.Rand, n, m int, size, step float64) []*Polyline {
	ps := make([]*Polyline, n)
	for i := range ps {
		x, y := rng.Float64()*size, rng.Float64()*size
		p := &Polyline{}
		p.Add(x, y)
		for j := 0; j < m; j++ {
			x += (rng.Float64() - 0.5) * step
			y += (rng.Float64() - 0.5) * step
			p.Add(x, y)
		}
		ps[i] = p
	}
	return ps
}

type pairKey struct {
	a, b [2]int
}

// key identifies an unordered segment pair by edge and segment index.
func key(a, b Segment) pairKey {
	ka, kb := [2]int{a.EdgeIndex, a.Index}, [2]int{b.EdgeIndex, b.Index}
	if kb[0] < ka[0] || kb[0] == ka[0] && kb[1] < ka[1] {
		ka, kb = kb, ka
	}
	return pairKey{ka, kb}
}

// bruteForce returns all pairs of distinct segments with overlapping x-extents for which eligible holds.
func bruteForce(edges []*Polyline, eligible func(a, b Segment) bool) map[pairKey]bool {
	var segs []Segment
	for i, edge := range edges {
		for j := 0; j < edge.Len(); j++ {
			segs = append(segs, newSegment(edge, i, j))
		}
	}

	pairs := map[pairKey]bool{}
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			if segs[i].Overlaps(segs[j]) && eligible(segs[i], segs[j]) {
				pairs[key(segs[i], segs[j])] = true
			}
		}
	}
	return pairs
}

// countingIntersector counts the number of reported pairs per unordered pair.
type countingIntersector struct {
	sync.Mutex
	n      int
	counts map[pairKey]int
}

func (c *countingIntersector) Test(a, b Segment) {
	c.Lock()
	defer c.Unlock()
	if c.counts == nil {
		c.counts = map[pairKey]int{}
	}
	c.n++
	c.counts[key(a, b)]++
}
