package graph

import (
	"time"

	"graphseq/sequencer"
)

// MarkerID is the dedicated traversal-marker node. It is created once,
// never removed, and hidden rather than deleted when it has nowhere to
// point.
const MarkerID sequencer.NodeID = "playhead"

// Point is a position in layout space. Units are abstract; the renderer
// maps them to screen cells when fitting the view.
type Point struct {
	X, Y float64
}

// EdgeKind distinguishes the two edge families of the chord graph.
type EdgeKind int

const (
	// EdgeChord links consecutive stack members top-to-bottom within one
	// step. Purely structural, no direction semantics.
	EdgeChord EdgeKind = iota
	// EdgeSequence links a chord's anchor to the next chord's anchor in
	// step order, annotated with the step distance between them.
	EdgeSequence
)

// Renderer is the drawing collaborator. The synchronizer, layout engine
// and animator drive it by node id; it owns nothing musical. Contract
// notes: SetNodePosition and SetVisible(id, false) both cancel any
// animation in flight for that node, so a halted marker never keeps
// gliding toward a node that is about to disappear.
type Renderer interface {
	AddNode(id sequencer.NodeID, label string, pos Point)
	RemoveNode(id sequencer.NodeID)
	AddEdge(id string, source, target sequencer.NodeID, kind EdgeKind, steps int)
	RemoveAllEdges()
	SetNodePosition(id sequencer.NodeID, pos Point)
	AnimatePosition(id sequencer.NodeID, to Point, d time.Duration)
	SetHighlighted(id sequencer.NodeID, on bool)
	SetVisible(id sequencer.NodeID, on bool)
	FitView(padding float64)
}
