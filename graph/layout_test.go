package graph

import (
	"math"
	"testing"
)

func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func TestLayoutAnchorsKeepMinimumGap(t *testing.T) {
	cases := [][][2]int{
		{{0, 0}, {0, 1}},                           // tightest possible pair
		{{0, 0}, {0, 8}},                           // opposite sides
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},           // clustered run
		{{0, 0}, {0, 3}, {0, 7}, {0, 12}, {0, 15}}, // irregular spread
	}
	for _, cells := range cases {
		r := newFakeRenderer()
		l := NewLayout(r, 100, 80) // small viewport forces the collision minimum
		_, seq := gridWith(cells...)
		for _, grp := range seq {
			for i, id := range grp.Nodes {
				r.AddNode(id, grp.Pitches[i].Name(), Point{})
			}
		}
		l.Apply(seq)

		for i := range seq {
			for j := i + 1; j < len(seq); j++ {
				a, _ := l.AnchorPos(seq[i].Step)
				b, _ := l.AnchorPos(seq[j].Step)
				if d := dist(a, b); d < minNodeGap {
					t.Fatalf("cells %v: anchors %d,%d only %.2f apart, want >= %v",
						cells, seq[i].Step, seq[j].Step, d, minNodeGap)
				}
			}
		}
	}
}

func TestLayoutStepZeroAtTop(t *testing.T) {
	r := newFakeRenderer()
	l := NewLayout(r, 400, 400)
	_, seq := gridWith([2]int{0, 0}, [2]int{0, 4}, [2]int{0, 8}, [2]int{0, 12})
	for _, grp := range seq {
		r.AddNode(grp.Anchor(), "", Point{})
	}
	l.Apply(seq)

	top, _ := l.AnchorPos(0)
	right, _ := l.AnchorPos(4)
	bottom, _ := l.AnchorPos(8)
	left, _ := l.AnchorPos(12)

	cx, cy := 200.0, 200.0
	if !(top.Y < cy && math.Abs(top.X-cx) < 1e-6) {
		t.Fatalf("step 0 should sit at the top, got %+v", top)
	}
	if !(right.X > cx) || !(bottom.Y > cy) || !(left.X < cx) {
		t.Fatalf("steps 4/8/12 should run clockwise right/bottom/left, got %+v %+v %+v", right, bottom, left)
	}
}

func TestLayoutStacksPointOutward(t *testing.T) {
	r := newFakeRenderer()
	l := NewLayout(r, 400, 400)
	groups, seq := gridWith([2]int{2, 4}, [2]int{6, 4}, [2]int{11, 4}) // 3-note chord at the right
	for _, grp := range seq {
		for _, id := range grp.Nodes {
			r.AddNode(id, "", Point{})
		}
	}
	l.Apply(seq)

	grp := groups[4]
	anchor, _ := l.NodePos(grp.Anchor())
	prev := anchor
	// Walking from anchor upward in pitch, each member sits further from
	// the center along the same radial direction (here: +X).
	for i := len(grp.Nodes) - 2; i >= 0; i-- {
		pos, ok := l.NodePos(grp.Nodes[i])
		if !ok {
			t.Fatalf("no position recorded for %s", grp.Nodes[i])
		}
		if pos.X <= prev.X {
			t.Fatalf("stack member %s should sit outward of its lower neighbor: %+v vs %+v", grp.Nodes[i], pos, prev)
		}
		if math.Abs(pos.Y-anchor.Y) > 1e-6 {
			t.Fatalf("stack must stay on the anchor's radial line, got Y=%v want %v", pos.Y, anchor.Y)
		}
		prev = pos
	}
}

func TestLayoutFitsViewAfterApply(t *testing.T) {
	r := newFakeRenderer()
	l := NewLayout(r, 400, 400)
	_, seq := gridWith([2]int{0, 0})
	r.AddNode(seq[0].Anchor(), "", Point{})
	l.Apply(seq)
	if r.fitCalls != 1 {
		t.Fatalf("apply must end with a fit pass, fit calls = %d", r.fitCalls)
	}
}

func TestProvisionalPosMatchesStepAngle(t *testing.T) {
	r := newFakeRenderer()
	l := NewLayout(r, 400, 400)
	p := l.ProvisionalPos(0)
	if !(p.Y < 200) || math.Abs(p.X-200) > 1e-6 {
		t.Fatalf("provisional position for step 0 should be straight up, got %+v", p)
	}
}

func TestStepAngleQuarterTurnOffset(t *testing.T) {
	if got := StepAngle(0); math.Abs(got+math.Pi/2) > 1e-9 {
		t.Fatalf("step 0 angle = %v, want -pi/2", got)
	}
	if got := StepAngle(4); math.Abs(got) > 1e-9 {
		t.Fatalf("step 4 angle = %v, want 0", got)
	}
}
