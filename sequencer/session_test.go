package sequencer

import "testing"

func TestSessionToggleFiresChange(t *testing.T) {
	s := NewSession(&fakeOut{})

	var gotGroups map[int]*ChordGroup
	var gotSeq []*ChordGroup
	calls := 0
	s.OnChange(func(groups map[int]*ChordGroup, seq []*ChordGroup) {
		gotGroups, gotSeq = groups, seq
		calls++
	})

	s.Toggle(2, 4)
	if calls != 1 {
		t.Fatalf("onChange calls = %d, want 1", calls)
	}
	if len(gotSeq) != 1 || gotSeq[0].Step != 4 {
		t.Fatalf("derived sequence = %+v, want one chord at step 4", gotSeq)
	}
	if gotGroups[4] == nil {
		t.Fatal("derived groups missing step 4")
	}

	// Toggling the same cell off rederives to empty.
	s.Toggle(2, 4)
	if calls != 2 || len(gotSeq) != 0 {
		t.Fatalf("after untoggle: calls=%d seq=%d, want 2 and empty", calls, len(gotSeq))
	}
}

func TestSessionClear(t *testing.T) {
	s := NewSession(&fakeOut{})
	s.Toggle(0, 0)
	s.Toggle(5, 8)
	s.Clear()
	if len(s.Groups()) != 0 || len(s.Sequence()) != 0 {
		t.Fatal("clear must empty the derivation")
	}
	snap := s.GridSnapshot()
	for p := range snap {
		for st := range snap[p] {
			if snap[p][st] {
				t.Fatalf("cell (%d,%d) still active after clear", p, st)
			}
		}
	}
}

func TestSessionGroupsReplacedWholesale(t *testing.T) {
	s := NewSession(&fakeOut{})
	s.Toggle(0, 0)
	before := s.Groups()
	s.Toggle(1, 0)
	after := s.Groups()
	if len(before[0].Pitches) != 1 {
		t.Fatal("earlier derivation must not be mutated in place")
	}
	if len(after[0].Pitches) != 2 {
		t.Fatalf("new derivation should hold 2 pitches, got %d", len(after[0].Pitches))
	}
}
