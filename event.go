package sweepline

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

type groupKind uint8

const (
	noGroup groupKind = iota
	edgeGroup
	namedGroup
)

// Group tags the segments of a sweep with the input they came from. Only segment pairs of differing groups
// are tested, except for segments without a group which are tested against all others.
// Groups are compared by value.
type Group struct {
	kind groupKind
	id   int
	name string
}

// NoGroup disables group filtering for the segments it tags.
var NoGroup = Group{}

// GroupA and GroupB tag the two inputs of FindBetween.
var (
	GroupA = NamedGroup("A")
	GroupB = NamedGroup("B")
)

// EdgeGroup returns the group of a single edge, identified by its edge index.
func EdgeGroup(id int) Group {
	return Group{kind: edgeGroup, id: id}
}

// NamedGroup returns a group identified by name.
func NamedGroup(name string) Group {
	return Group{kind: namedGroup, name: name}
}

// IsNone returns true for NoGroup.
func (g Group) IsNone() bool {
	return g.kind == noGroup
}

// eligible returns true if a segment tagged g must be tested against one tagged h.
func (g Group) eligible(h Group) bool {
	return g.IsNone() || g != h
}

func (g Group) String() string {
	switch g.kind {
	case edgeGroup:
		return fmt.Sprintf("E%d", g.id)
	case namedGroup:
		return g.name
	}
	return "-"
}

////////////////////////////////////////////////////////////////

type eventKind uint8

const (
	activate eventKind = iota // sorts before deactivate at equal coordinates
	deactivate
)

// sweepEvent marks where a segment enters or leaves the sweep line.
// Before sorting, other is the index of the paired event as appended; after sorting, it is the sorted index.
type sweepEvent struct {
	x       float64
	kind    eventKind
	group   Group
	segment int // index into the segments of the sweep line
	other   int
}

func (ev sweepEvent) String() string {
	kind := "+"
	if ev.kind == deactivate {
		kind = "-"
	}
	return fmt.Sprintf("%s%d@%g/%v", kind, ev.segment, ev.x, ev.group)
}

// sweepEvents is the arena of events, sorted from left to right.
type sweepEvents []sweepEvent

func (q sweepEvents) Len() int {
	return len(q)
}

func (q sweepEvents) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

// Less orders by coordinate and puts activations first when coordinates coincide, so that segments touching at an endpoint overlap. NaN coordinates sort first.
func (q sweepEvents) Less(i, j int) bool {
	if c := cmp.Compare(q[i].x, q[j].x); c != 0 {
		return c < 0
	}
	return q[i].kind < q[j].kind
}

// add appends the activate and deactivate events of a segment.
func (q *sweepEvents) add(s Segment, seg int, group Group) {
	n := len(*q)
	*q = append(*q,
		sweepEvent{x: s.MinX, kind: activate, group: group, segment: seg, other: n + 1},
		sweepEvent{x: s.MaxX, kind: deactivate, group: group, segment: seg, other: n},
	)
}

// resolve links every activate event to the sorted index of its deactivate event and vice versa. Events must be sorted.
func (q sweepEvents) resolve(nSegments int) {
	pos := make([]int, nSegments)
	for i := range q {
		if q[i].kind == activate {
			pos[q[i].segment] = i
		} else {
			j := pos[q[i].segment]
			q[j].other = i
			q[i].other = j
		}
	}
}

func (q sweepEvents) Print(w io.Writer) {
	for i, ev := range q {
		fmt.Fprintln(w, i, ev)
	}
}

func (q sweepEvents) String() string {
	sb := strings.Builder{}
	q.Print(&sb)
	return strings.TrimSuffix(sb.String(), "\n")
}
