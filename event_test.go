package sweepline

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/tdewolff/test"
)

func TestGroup(t *testing.T) {
	test.That(t, NoGroup.IsNone())
	test.That(t, !GroupA.IsNone())
	test.T(t, EdgeGroup(3), EdgeGroup(3))
	test.That(t, EdgeGroup(3) != EdgeGroup(4))
	test.That(t, NamedGroup("A") == GroupA)
	test.That(t, NamedGroup("3") != EdgeGroup(3))

	var tts = []struct {
		g, h     Group
		eligible bool
	}{
		{NoGroup, NoGroup, true},
		{NoGroup, GroupA, true},
		{GroupA, NoGroup, true},
		{GroupA, GroupA, false},
		{GroupA, GroupB, true},
		{EdgeGroup(1), EdgeGroup(1), false},
		{EdgeGroup(1), EdgeGroup(2), true},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.g, "x", tt.h), func(t *testing.T) {
			test.T(t, tt.g.eligible(tt.h), tt.eligible)
		})
	}

	test.String(t, NoGroup.String(), "-")
	test.String(t, EdgeGroup(7).String(), "E7")
	test.String(t, GroupB.String(), "B")
}

func TestSweepEventsOrder(t *testing.T) {
	var tts = []struct {
		extents [][2]float64
		order   string
	}{
		{[][2]float64{{0, 10}, {5, 15}}, "+0 +1 -0 -1"},
		{[][2]float64{{5, 15}, {0, 10}}, "+1 +0 -1 -0"},
		{[][2]float64{{0, 5}, {5, 10}}, "+0 +1 -0 -1"}, // activate before deactivate
		{[][2]float64{{5, 10}, {0, 5}}, "+1 +0 -1 -0"},
		{[][2]float64{{3, 3}, {3, 3}}, "+0 +1 -0 -1"}, // vertical segments
		{[][2]float64{{0, 1}, {0, 1}, {0, 1}}, "+0 +1 +2 -0 -1 -2"},
		{[][2]float64{{0, 1}, {math.NaN(), math.NaN()}}, "+1 -1 +0 -0"},
	}
	for _, tt := range tts {
		t.Run(tt.order, func(t *testing.T) {
			q := sweepEvents{}
			for i, ext := range tt.extents {
				q.add(Segment{MinX: ext[0], MaxX: ext[1]}, i, NoGroup)
			}
			sort.Stable(q)
			q.resolve(len(tt.extents))

			order := ""
			for i, ev := range q {
				if i != 0 {
					order += " "
				}
				if ev.kind == activate {
					order += "+"
					test.That(t, i < ev.other, "activate before its deactivate")
				} else {
					order += "-"
				}
				order += fmt.Sprint(ev.segment)
				test.T(t, q[ev.other].segment, ev.segment)
				test.T(t, q[ev.other].other, i)
			}
			test.String(t, order, tt.order)
		})
	}
}

func TestSweepEventsAdd(t *testing.T) {
	q := sweepEvents{}
	q.add(Segment{MinX: 1, MaxX: 2}, 0, GroupA)
	q.add(Segment{MinX: 0, MaxX: 4}, 1, GroupB)
	test.T(t, len(q), 4)
	test.T(t, q[0], sweepEvent{x: 1, kind: activate, group: GroupA, segment: 0, other: 1})
	test.T(t, q[1], sweepEvent{x: 2, kind: deactivate, group: GroupA, segment: 0, other: 0})
	test.T(t, q[2].other, 3)
	test.T(t, q[3].other, 2)
	test.String(t, q.String(), "0 +0@1/A\n1 -0@2/A\n2 +1@0/B\n3 -1@4/B")
}
