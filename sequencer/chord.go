package sequencer

import "fmt"

// NodeID identifies one (pitch, step) event in the derived graph. The id
// is unique per occurrence: the same pitch at two different steps yields
// two distinct ids, so repeated notes never collapse into one graph node.
type NodeID string

// EventNodeID builds the canonical id for a pitch sounding at a step.
func EventNodeID(p Pitch, step int) NodeID {
	return NodeID(fmt.Sprintf("%s@%d", p.Name(), step))
}

// ChordGroup is the set of pitches active at one step, treated as a
// single simultaneous musical event. Pitches and Nodes run in grid row
// order, highest pitch first, so the anchor (the lowest pitch) is always
// the last element.
type ChordGroup struct {
	Step    int
	Pitches []Pitch
	Nodes   []NodeID
}

func (c *ChordGroup) Size() int {
	return len(c.Pitches)
}

// AnchorPitch returns the lowest pitch in the group.
func (c *ChordGroup) AnchorPitch() Pitch {
	return c.Pitches[len(c.Pitches)-1]
}

// Anchor returns the event-node id of the lowest pitch in the group. It
// is the group's representative for sequence edges and layout.
func (c *ChordGroup) Anchor() NodeID {
	return c.Nodes[len(c.Nodes)-1]
}

// Groups derives the chord-group map and the step sequence from a grid.
// The map holds one group per step that has at least one active pitch;
// the sequence lists the same groups by increasing step index. Both are
// built from scratch on every call; callers replace their previous
// derivation wholesale.
func Groups(g *Grid) (map[int]*ChordGroup, []*ChordGroup) {
	groups := make(map[int]*ChordGroup)
	var seq []*ChordGroup
	for step := 0; step < NumSteps; step++ {
		var grp *ChordGroup
		for p := Pitch(0); p < NumPitches; p++ {
			if !g.Active(p, step) {
				continue
			}
			if grp == nil {
				grp = &ChordGroup{Step: step}
			}
			grp.Pitches = append(grp.Pitches, p)
			grp.Nodes = append(grp.Nodes, EventNodeID(p, step))
		}
		if grp != nil {
			groups[step] = grp
			seq = append(seq, grp)
		}
	}
	return groups, seq
}
