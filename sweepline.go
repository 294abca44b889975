package sweepline

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNoIntersector is returned when no SegmentIntersector is given.
	ErrNoIntersector = errors.New("sweepline: nil segment intersector")

	// ErrReused is returned when a sweep line is computed more than once.
	ErrReused = errors.New("sweepline: sweep line already computed")
)

// Stats are informational counts of a computation.
// Overlaps counts all activated segments examined in the span of another segment,
// including those skipped by the group filter. Pairs counts the pairs passed to the intersector.
type Stats struct {
	Edges    int
	Segments int
	Events   int
	Overlaps int
	Pairs    int
}

func (s Stats) String() string {
	return fmt.Sprintf("edges=%d segments=%d events=%d overlaps=%d pairs=%d", s.Edges, s.Segments, s.Events, s.Overlaps, s.Pairs)
}

// SweepLine finds all segment pairs of one or more sets of edges whose x-extents overlap, using a simple
// sweep line along the x-axis. While still O(n^2) in the worst case, e.g. when all segments span the same
// x-range, it drastically improves on the average case of testing all pairs.
//
// A SweepLine is used for a single computation by a single goroutine. Different sweep lines may run
// concurrently, even over the same edges, as edges are only read.
type SweepLine struct {
	segments []Segment
	events   sweepEvents
	stats    Stats
	computed bool
}

// NewSweepLine returns an empty sweep line.
func NewSweepLine() *SweepLine {
	return &SweepLine{}
}

// AddEdge adds the segments of the edge with the given group. Edges with fewer than two coordinates add no segments.
func (s *SweepLine) AddEdge(edge Edge, group Group) {
	edgeIndex := s.stats.Edges
	s.stats.Edges++

	coords := edge.Coords()
	for i := 0; i < len(coords)-1; i++ {
		seg := newSegment(edge, edgeIndex, i)
		s.events.add(seg, len(s.segments), group)
		s.segments = append(s.segments, seg)
	}
	s.stats.Segments = len(s.segments)
	s.stats.Events = len(s.events)
}

// Add adds the edges with the given group.
func (s *SweepLine) Add(group Group, edges ...Edge) {
	for _, edge := range edges {
		s.AddEdge(edge, group)
	}
}

// AddSelf adds the edges each under their own group, so that segments of the same edge are not tested against each other.
func (s *SweepLine) AddSelf(edges ...Edge) {
	for _, edge := range edges {
		s.AddEdge(edge, EdgeGroup(s.stats.Edges))
	}
}

// Compute passes all segment pairs with overlapping x-extents and eligible groups to si, exactly once per
// unordered pair. Pairs are reported in order of activation of their first segment.
// It returns ErrNoIntersector if si is nil and ErrReused when called a second time.
func (s *SweepLine) Compute(si SegmentIntersector) error {
	if si == nil {
		return ErrNoIntersector
	} else if s.computed {
		return ErrReused
	}
	s.computed = true

	s.prepare()
	s.sweep(si)

	Logger().Debug("sweep line computed",
		"edges", s.stats.Edges,
		"segments", s.stats.Segments,
		"overlaps", s.stats.Overlaps,
		"pairs", s.stats.Pairs)
	return nil
}

// Stats returns the counts of the added edges and, once computed, of the computation.
func (s *SweepLine) Stats() Stats {
	return s.stats
}

// prepare sorts the events from left to right and links each activate event to the index of its deactivate event, which bounds the range of events to scan for overlaps.
func (s *SweepLine) prepare() {
	sort.Stable(s.events)
	s.events.resolve(len(s.segments))
}

func (s *SweepLine) sweep(si SegmentIntersector) {
	for i, ev := range s.events {
		if ev.kind == activate {
			s.processOverlaps(i, ev, si)
		}
	}
}

// processOverlaps tests the segment of ev0 against all segments activated while it is active.
// Deactivate events in the range belong to segments that were tested when they were activated.
func (s *SweepLine) processOverlaps(start int, ev0 sweepEvent, si SegmentIntersector) {
	seg0 := s.segments[ev0.segment]
	for i := start + 1; i < ev0.other; i++ {
		ev1 := s.events[i]
		if ev1.kind != activate {
			continue
		}
		s.stats.Overlaps++
		if ev0.group.eligible(ev1.group) {
			seg0.Test(s.segments[ev1.segment], si)
			s.stats.Pairs++
		}
	}
}

////////////////////////////////////////////////////////////////

// FindAll passes all candidate pairs between the segments of the given edges to si.
// By default every edge forms its own group and only pairs between segments of different edges are tested.
// If exhaustive is true no groups are used and all overlapping pairs are tested, including segments of the
// same edge, which is needed to find self-intersections.
func FindAll[E Edge](edges []E, si SegmentIntersector, exhaustive bool) (Stats, error) {
	if si == nil {
		return Stats{}, ErrNoIntersector
	}
	s := NewSweepLine()
	for _, edge := range edges {
		if exhaustive {
			s.AddEdge(edge, NoGroup)
		} else {
			s.AddSelf(edge)
		}
	}
	err := s.Compute(si)
	return s.Stats(), err
}

// FindBetween passes all candidate pairs between a segment of edgesA and a segment of edgesB to si. Pairs within edgesA or within edgesB are not tested.
func FindBetween[E, F Edge](edgesA []E, edgesB []F, si SegmentIntersector) (Stats, error) {
	if si == nil {
		return Stats{}, ErrNoIntersector
	}
	s := NewSweepLine()
	for _, edge := range edgesA {
		s.AddEdge(edge, GroupA)
	}
	for _, edge := range edgesB {
		s.AddEdge(edge, GroupB)
	}
	err := s.Compute(si)
	return s.Stats(), err
}
