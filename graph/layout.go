package graph

import (
	"math"

	"graphseq/debug"
	"graphseq/sequencer"
)

// Layout tuning. Units are layout-space, not cells; the renderer's fit
// pass maps them to whatever it draws on.
const (
	nodeDiameter  = 14.0
	minNodeGap    = 8.0
	stackSpacing  = 18.0
	fitPadding    = 24.0
	baseRadiusFit = 0.38 // base radius as a fraction of the smaller viewport dimension
)

// StepAngle returns the angle for a step on the circle: step 0 at the
// top, increasing clockwise, one full turn over the 16 steps.
func StepAngle(step int) float64 {
	return 2*math.Pi*float64(step)/sequencer.NumSteps - math.Pi/2
}

// Layout places chord anchors on a circle spaced by step angle and
// stacks the remaining chord members radially outward, then fits the
// renderer's view. It remembers the positions it assigned so the
// animator can glide the marker between anchors.
type Layout struct {
	r             Renderer
	width, height float64

	anchors   map[int]Point // step -> anchor position, from the last Apply
	positions map[sequencer.NodeID]Point
}

func NewLayout(r Renderer, width, height float64) *Layout {
	return &Layout{
		r:         r,
		width:     width,
		height:    height,
		anchors:   map[int]Point{},
		positions: map[sequencer.NodeID]Point{},
	}
}

// Resize updates the viewport dimensions. The caller reruns Apply (and
// debounces burst resizes) itself.
func (l *Layout) Resize(width, height float64) {
	l.width, l.height = width, height
}

// AnchorPos returns the anchor position computed for a step by the most
// recent Apply.
func (l *Layout) AnchorPos(step int) (Point, bool) {
	p, ok := l.anchors[step]
	return p, ok
}

// NodePos returns the position assigned to a node by the most recent
// Apply.
func (l *Layout) NodePos(id sequencer.NodeID) (Point, bool) {
	p, ok := l.positions[id]
	return p, ok
}

// ProvisionalPos seeds a node at its step's angle on the base circle
// before a layout pass has run.
func (l *Layout) ProvisionalPos(step int) Point {
	return l.onCircle(StepAngle(step), l.baseRadius())
}

// Apply positions every node of the sequence and fits the view. Anchors
// go on a circle whose radius is the larger of the viewport-proportional
// base radius and the smallest radius that keeps every pair of anchors
// at least minNodeGap apart; higher chord members stack outward along
// their step's radial direction.
func (l *Layout) Apply(seq []*sequencer.ChordGroup) {
	l.anchors = make(map[int]Point, len(seq))
	l.positions = make(map[sequencer.NodeID]Point)
	if len(seq) == 0 {
		return
	}

	radius := l.radiusFor(seq)
	for _, grp := range seq {
		angle := StepAngle(grp.Step)
		anchor := l.onCircle(angle, radius)
		l.anchors[grp.Step] = anchor

		// Nodes run high to low; the anchor is last at rank 0 and each
		// higher pitch sits one rank further out from the center.
		dx, dy := math.Cos(angle), math.Sin(angle)
		n := len(grp.Nodes)
		for i, id := range grp.Nodes {
			rank := float64(n - 1 - i)
			pos := Point{anchor.X + dx*stackSpacing*rank, anchor.Y + dy*stackSpacing*rank}
			l.positions[id] = pos
			l.r.SetNodePosition(id, pos)
		}
	}

	l.r.FitView(fitPadding)
	debug.Log("layout", "applied: chords=%d radius=%.1f", len(seq), radius)
}

func (l *Layout) baseRadius() float64 {
	return baseRadiusFit * math.Min(l.width, l.height)
}

// radiusFor combines the base radius with the collision-free minimum.
// Anchors sit at step angles, so the tightest pair is the one with the
// smallest step separation; the chord-length formula gives the radius at
// which that pair still clears nodeDiameter+minNodeGap center to center.
func (l *Layout) radiusFor(seq []*sequencer.ChordGroup) float64 {
	radius := l.baseRadius()
	if len(seq) < 2 {
		return radius
	}
	minSep := sequencer.NumSteps
	for i := range seq {
		next := seq[(i+1)%len(seq)]
		sep := (next.Step - seq[i].Step + sequencer.NumSteps) % sequencer.NumSteps
		if sep < 1 {
			sep = 1
		}
		if sep < minSep {
			minSep = sep
		}
	}
	theta := 2 * math.Pi * float64(minSep) / sequencer.NumSteps
	required := (nodeDiameter + minNodeGap) / (2 * math.Sin(theta/2))
	if required > radius {
		radius = required
	}
	return radius
}

func (l *Layout) onCircle(angle, radius float64) Point {
	cx, cy := l.width/2, l.height/2
	return Point{cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)}
}
