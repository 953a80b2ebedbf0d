package graph

import (
	"fmt"

	"graphseq/debug"
	"graphseq/sequencer"
)

// Synchronizer keeps the rendered graph consistent with the chord
// derivation. Every grid mutation triggers a full rebuild: nodes are
// diffed by id set, edges are dropped and rebuilt unconditionally, and
// the layout pass reruns. The traversal marker lives outside the diff;
// it is created once and only ever hidden.
type Synchronizer struct {
	r      Renderer
	layout *Layout
	anim   *Animator

	nodes map[sequencer.NodeID]bool // nodes currently in the renderer, marker excluded
}

func NewSynchronizer(r Renderer, layout *Layout, anim *Animator) *Synchronizer {
	r.AddNode(MarkerID, "", Point{})
	r.SetVisible(MarkerID, false)
	return &Synchronizer{
		r:      r,
		layout: layout,
		anim:   anim,
		nodes:  map[sequencer.NodeID]bool{},
	}
}

// Rebuild replaces the graph topology with one derived from the given
// grouping. The marker is halted first: an in-flight glide may reference
// a node this rebuild removes.
func (s *Synchronizer) Rebuild(groups map[int]*sequencer.ChordGroup, seq []*sequencer.ChordGroup) {
	s.anim.Halt()

	valid := make(map[sequencer.NodeID]bool)
	for _, grp := range seq {
		for _, id := range grp.Nodes {
			valid[id] = true
		}
	}

	// Node diff: drop stale ids, clear highlight on survivors so a
	// removed chord member never leaves a lit neighbor behind.
	for id := range s.nodes {
		if !valid[id] {
			s.r.RemoveNode(id)
			delete(s.nodes, id)
			continue
		}
		s.r.SetHighlighted(id, false)
	}
	for _, grp := range seq {
		for i, id := range grp.Nodes {
			if s.nodes[id] {
				continue
			}
			s.r.AddNode(id, grp.Pitches[i].Name(), s.layout.ProvisionalPos(grp.Step))
			s.nodes[id] = true
		}
	}

	// Edges are cheap at this scale: rebuild all of them every time.
	s.r.RemoveAllEdges()
	for _, grp := range seq {
		for i := 0; i+1 < len(grp.Nodes); i++ {
			id := fmt.Sprintf("stack:%s>%s", grp.Nodes[i], grp.Nodes[i+1])
			s.r.AddEdge(id, grp.Nodes[i], grp.Nodes[i+1], EdgeChord, 0)
		}
	}
	if len(seq) >= 2 {
		for i, grp := range seq {
			next := seq[(i+1)%len(seq)]
			dist := (next.Step - grp.Step + sequencer.NumSteps) % sequencer.NumSteps
			if dist < 1 {
				dist = 1
			}
			id := fmt.Sprintf("seq:%s>%s", grp.Anchor(), next.Anchor())
			s.r.AddEdge(id, grp.Anchor(), next.Anchor(), EdgeSequence, dist)
		}
	}

	debug.Log("graph", "rebuild: nodes=%d chords=%d", len(s.nodes), len(seq))
	if len(seq) == 0 {
		return // nothing to lay out
	}
	s.layout.Apply(seq)
}
