package sequencer

import (
	"testing"
)

func TestGroupsEmptyGrid(t *testing.T) {
	groups, seq := Groups(NewGrid())
	if len(groups) != 0 {
		t.Fatalf("empty grid should derive no groups, got %d", len(groups))
	}
	if len(seq) != 0 {
		t.Fatalf("empty grid should derive an empty sequence, got %d", len(seq))
	}
}

func TestGroupsPresentIffStepActive(t *testing.T) {
	g := NewGrid()
	g.Set(3, 2, true)
	g.Set(7, 2, true)
	g.Set(0, 9, true)

	groups, seq := Groups(g)
	for step := 0; step < NumSteps; step++ {
		_, ok := groups[step]
		want := step == 2 || step == 9
		if ok != want {
			t.Fatalf("step %d: group present = %v, want %v", step, ok, want)
		}
	}
	if len(seq) != 2 || seq[0].Step != 2 || seq[1].Step != 9 {
		t.Fatalf("sequence should list steps [2 9], got %+v", seq)
	}
}

func TestGroupPitchOrderHighToLow(t *testing.T) {
	g := NewGrid()
	// Toggle in scrambled order; derivation must still come out high to low.
	g.Set(9, 5, true)
	g.Set(1, 5, true)
	g.Set(5, 5, true)

	groups, _ := Groups(g)
	grp := groups[5]
	if grp == nil {
		t.Fatal("expected a group at step 5")
	}
	want := []Pitch{1, 5, 9}
	if len(grp.Pitches) != len(want) {
		t.Fatalf("group size = %d, want %d", len(grp.Pitches), len(want))
	}
	for i := range want {
		if grp.Pitches[i] != want[i] {
			t.Fatalf("pitch order = %v, want %v", grp.Pitches, want)
		}
	}
}

func TestAnchorIsLowestPitch(t *testing.T) {
	g := NewGrid()
	g.Set(2, 0, true)
	g.Set(6, 0, true)
	g.Set(11, 0, true)

	groups, _ := Groups(g)
	grp := groups[0]
	if grp.AnchorPitch() != 11 {
		t.Fatalf("anchor pitch = %v, want 11 (the lowest)", grp.AnchorPitch())
	}
	if grp.Anchor() != grp.Nodes[len(grp.Nodes)-1] {
		t.Fatalf("anchor node must be the last node in the stack")
	}
}

func TestEventNodeIDsDistinctAcrossSteps(t *testing.T) {
	// Same pitch at two steps must be two distinct graph entities,
	// otherwise repeated notes collapse into self-loop edges.
	a := EventNodeID(4, 0)
	b := EventNodeID(4, 8)
	if a == b {
		t.Fatalf("ids for the same pitch at different steps must differ, both %q", a)
	}
	if a != EventNodeID(4, 0) {
		t.Fatal("ids must be deterministic")
	}
}

func TestSingleCellDerivation(t *testing.T) {
	g := NewGrid()
	g.Set(Pitch(NumPitches-1), 0, true) // C4 at step 0

	groups, seq := Groups(g)
	if len(seq) != 1 {
		t.Fatalf("sequence length = %d, want 1", len(seq))
	}
	grp := groups[0]
	if grp == nil || grp.Size() != 1 {
		t.Fatalf("expected a single-member group at step 0, got %+v", grp)
	}
	if grp.AnchorPitch().Name() != "C4" {
		t.Fatalf("anchor = %s, want C4", grp.AnchorPitch().Name())
	}
}

func TestGridToggleAndClear(t *testing.T) {
	g := NewGrid()
	if !g.Toggle(0, 0) {
		t.Fatal("first toggle should turn the cell on")
	}
	if g.Toggle(0, 0) {
		t.Fatal("second toggle should turn the cell off")
	}
	g.Set(1, 1, true)
	g.Set(2, 2, true)
	if g.ActiveCount() != 2 {
		t.Fatalf("active count = %d, want 2", g.ActiveCount())
	}
	g.Clear()
	if g.ActiveCount() != 0 {
		t.Fatal("clear should empty the grid")
	}
	// Out-of-range coordinates are ignored, not errors.
	g.Toggle(-1, 0)
	g.Toggle(0, NumSteps)
	if g.ActiveCount() != 0 {
		t.Fatal("out-of-range toggles must be no-ops")
	}
}
