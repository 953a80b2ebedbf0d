package graph

import (
	"time"

	"graphseq/sequencer"
)

type fakeNode struct {
	label       string
	pos         Point
	visible     bool
	highlighted bool
	animTo      *Point
	animDur     time.Duration
}

type fakeEdge struct {
	source, target sequencer.NodeID
	kind           EdgeKind
	steps          int
}

// fakeRenderer records every drawing call so tests can assert on the
// resulting scene instead of call sequences.
type fakeRenderer struct {
	nodes    map[sequencer.NodeID]*fakeNode
	edges    map[string]fakeEdge
	fitCalls int
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{
		nodes: map[sequencer.NodeID]*fakeNode{},
		edges: map[string]fakeEdge{},
	}
}

func (f *fakeRenderer) AddNode(id sequencer.NodeID, label string, pos Point) {
	f.nodes[id] = &fakeNode{label: label, pos: pos, visible: true}
}

func (f *fakeRenderer) RemoveNode(id sequencer.NodeID) {
	delete(f.nodes, id)
}

func (f *fakeRenderer) AddEdge(id string, source, target sequencer.NodeID, kind EdgeKind, steps int) {
	f.edges[id] = fakeEdge{source: source, target: target, kind: kind, steps: steps}
}

func (f *fakeRenderer) RemoveAllEdges() {
	f.edges = map[string]fakeEdge{}
}

func (f *fakeRenderer) SetNodePosition(id sequencer.NodeID, pos Point) {
	if n, ok := f.nodes[id]; ok {
		n.pos = pos
		n.animTo = nil
	}
}

func (f *fakeRenderer) AnimatePosition(id sequencer.NodeID, to Point, d time.Duration) {
	if n, ok := f.nodes[id]; ok {
		n.animTo = &to
		n.animDur = d
	}
}

func (f *fakeRenderer) SetHighlighted(id sequencer.NodeID, on bool) {
	if n, ok := f.nodes[id]; ok {
		n.highlighted = on
	}
}

func (f *fakeRenderer) SetVisible(id sequencer.NodeID, on bool) {
	if n, ok := f.nodes[id]; ok {
		n.visible = on
		if !on {
			n.animTo = nil
		}
	}
}

func (f *fakeRenderer) FitView(float64) {
	f.fitCalls++
}

// eventNodes counts renderer nodes excluding the permanent marker.
func (f *fakeRenderer) eventNodes() int {
	n := len(f.nodes)
	if _, ok := f.nodes[MarkerID]; ok {
		n--
	}
	return n
}

// gridWith builds a derivation from (pitch, step) pairs.
func gridWith(cells ...[2]int) (map[int]*sequencer.ChordGroup, []*sequencer.ChordGroup) {
	g := sequencer.NewGrid()
	for _, c := range cells {
		g.Set(sequencer.Pitch(c[0]), c[1], true)
	}
	return sequencer.Groups(g)
}
