package graph

import (
	"time"

	"graphseq/debug"
	"graphseq/sequencer"
)

// Animator drives the per-tick visuals: chord highlighting and the
// marker's glide between consecutively sounding chords. It walks the
// clock's step-order array, so its visit order is mode-dependent even
// though the graph topology never is.
type Animator struct {
	r      Renderer
	layout *Layout

	lit []sequencer.NodeID // nodes highlighted by the previous tick
}

func NewAnimator(r Renderer, layout *Layout) *Animator {
	return &Animator{r: r, layout: layout}
}

// Halt hides the marker and cancels its in-flight animation. Called
// before every structural rebuild and on stop.
func (a *Animator) Halt() {
	a.r.SetVisible(MarkerID, false)
}

// ClearHighlights unlights whatever the previous tick lit.
func (a *Animator) ClearHighlights() {
	for _, id := range a.lit {
		a.r.SetHighlighted(id, false)
	}
	a.lit = a.lit[:0]
}

// Tick applies one tick's visuals. An empty current step is a rest:
// previous highlights are cleared and any glide already in flight keeps
// going, which is what makes the marker move smoothly across runs of
// empty steps instead of stuttering at each one.
func (a *Animator) Tick(ev sequencer.TickEvent, groups map[int]*sequencer.ChordGroup) {
	a.ClearHighlights()

	grp := groups[ev.Step]
	if grp == nil {
		return
	}
	for _, id := range grp.Nodes {
		a.r.SetHighlighted(id, true)
		a.lit = append(a.lit, id)
	}

	// With fewer than two chords there is nowhere to glide: either the
	// grid is empty or the only chord is the one sounding right now.
	if len(groups) < 2 {
		a.Halt()
		return
	}

	target, ticksAway := nextActive(ev, groups)
	if target == nil {
		a.Halt()
		return
	}

	from, okFrom := a.layout.AnchorPos(grp.Step)
	to, okTo := a.layout.AnchorPos(target.Step)
	if !okFrom || !okTo {
		return
	}
	a.r.SetNodePosition(MarkerID, from)
	a.r.SetVisible(MarkerID, true)
	a.r.AnimatePosition(MarkerID, to, time.Duration(ticksAway)*ev.Sixteenth)
	debug.LogEvery(16, "anim", "glide step %d -> %d over %d ticks", grp.Step, target.Step, ticksAway)
}

// nextActive walks the active step order from the next cursor position,
// wrapping, until it finds a step with a chord. The returned tick count
// is how many raw sixteenths away that chord sounds; it is clamped to a
// minimum of 1 so an animation never gets a zero duration.
func nextActive(ev sequencer.TickEvent, groups map[int]*sequencer.ChordGroup) (*sequencer.ChordGroup, int) {
	n := len(ev.Order)
	for i := 0; i < n; i++ {
		step := ev.Order[(ev.NextCursor+i)%n]
		if grp := groups[step]; grp != nil {
			ticks := i + 1
			if ticks < 1 {
				ticks = 1
			}
			return grp, ticks
		}
	}
	return nil, 0
}
