package sequencer

// Grid is the note/step matrix: 13 pitch rows by 16 step columns of
// booleans. It is the single source of truth for the pattern; everything
// else (chord groups, graph topology) is derived from it. The grid is
// only ever toggled cell-by-cell or cleared, never resized.
type Grid struct {
	cells [NumPitches][NumSteps]bool
}

func NewGrid() *Grid {
	return &Grid{}
}

// Toggle flips the cell at (pitch, step) and reports its new state.
// Out-of-range coordinates are ignored.
func (g *Grid) Toggle(pitch Pitch, step int) bool {
	if !pitch.Valid() || step < 0 || step >= NumSteps {
		return false
	}
	g.cells[pitch][step] = !g.cells[pitch][step]
	return g.cells[pitch][step]
}

// Set writes the cell at (pitch, step) directly.
func (g *Grid) Set(pitch Pitch, step int, on bool) {
	if !pitch.Valid() || step < 0 || step >= NumSteps {
		return
	}
	g.cells[pitch][step] = on
}

// Active reports whether the cell at (pitch, step) is on.
func (g *Grid) Active(pitch Pitch, step int) bool {
	if !pitch.Valid() || step < 0 || step >= NumSteps {
		return false
	}
	return g.cells[pitch][step]
}

// Clear switches every cell off.
func (g *Grid) Clear() {
	g.cells = [NumPitches][NumSteps]bool{}
}

// ActiveCount returns the number of cells currently on.
func (g *Grid) ActiveCount() int {
	n := 0
	for p := 0; p < NumPitches; p++ {
		for s := 0; s < NumSteps; s++ {
			if g.cells[p][s] {
				n++
			}
		}
	}
	return n
}

// Snapshot returns a copy of the cell matrix for rendering.
func (g *Grid) Snapshot() [NumPitches][NumSteps]bool {
	return g.cells
}
