package sweepline

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPoint(t *testing.T) {
	p := Point{3, 4}
	test.That(t, p.Equals(Point{3, 4 + Epsilon/2.0}))
	test.That(t, !p.Equals(Point{3, 4.001}))
	test.String(t, p.String(), "[3; 4]")
}

func TestRect(t *testing.T) {
	r := Rect{0, 0, 5, 5}
	test.T(t, r.Add(Rect{5, 5, 5, 5}), Rect{0, 0, 10, 10})
	test.T(t, r.Add(Rect{2, 8, 0, 0}), Rect{0, 0, 5, 8})
	test.T(t, rectFromPoints(Point{4, 1}, Point{1, 3}), Rect{1, 1, 3, 2})
	test.That(t, r.Touches(Rect{5, 5, 1, 1}))
	test.That(t, r.Touches(Rect{1, 1, 1, 1}))
	test.That(t, r.Touches(Rect{2, 2, 0, 0}))
	test.That(t, !r.Touches(Rect{6, 0, 1, 1}))
	test.That(t, !r.Touches(Rect{0, -2, 5, 1}))
	test.String(t, r.String(), "[0; 0]--[5; 5]")
}
