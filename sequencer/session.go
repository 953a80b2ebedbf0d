package sequencer

import (
	"sync"

	"graphseq/audio"
	"graphseq/debug"
)

// Session is the single owner of mutable musical state for one run of
// the program: the grid, the chord derivation, and the playback clock.
// All mutation goes through it; every mutation recomputes the chord
// groups wholesale and fires the change callback so the graph layer can
// rebuild. Nothing in a session is persisted.
type Session struct {
	mu     sync.Mutex
	grid   *Grid
	groups map[int]*ChordGroup
	seq    []*ChordGroup

	clock *Clock

	// onChange is invoked after every grid mutation with the fresh
	// derivation. Set once during wiring, before any mutation.
	onChange func(groups map[int]*ChordGroup, seq []*ChordGroup)
}

func NewSession(out audio.Output) *Session {
	s := &Session{
		grid:   NewGrid(),
		groups: map[int]*ChordGroup{},
	}
	s.clock = NewClock(out, s.Groups)
	return s
}

func (s *Session) Clock() *Clock {
	return s.clock
}

// OnChange registers the derived-state listener (the graph
// synchronizer). It is not called for the initial empty grid.
func (s *Session) OnChange(fn func(map[int]*ChordGroup, []*ChordGroup)) {
	s.onChange = fn
}

// Toggle flips one grid cell and rederives chord state.
func (s *Session) Toggle(pitch Pitch, step int) {
	s.mu.Lock()
	on := s.grid.Toggle(pitch, step)
	groups, seq := Groups(s.grid)
	s.groups, s.seq = groups, seq
	s.mu.Unlock()

	debug.Log("session", "toggle %s step=%d on=%v chords=%d", pitch.Name(), step, on, len(seq))
	if s.onChange != nil {
		s.onChange(groups, seq)
	}
}

// Clear empties the grid and rederives chord state.
func (s *Session) Clear() {
	s.mu.Lock()
	s.grid.Clear()
	groups, seq := Groups(s.grid)
	s.groups, s.seq = groups, seq
	s.mu.Unlock()

	debug.Log("session", "grid cleared")
	if s.onChange != nil {
		s.onChange(groups, seq)
	}
}

// Groups returns the current chord-group map. The map is replaced, never
// mutated, on grid changes, so holders may read it without locking.
func (s *Session) Groups() map[int]*ChordGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.groups
}

// Sequence returns the current step sequence, in increasing step order.
func (s *Session) Sequence() []*ChordGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}

// GridSnapshot returns a copy of the grid cells for rendering.
func (s *Session) GridSnapshot() [NumPitches][NumSteps]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Snapshot()
}
