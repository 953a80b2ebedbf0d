package sequencer

import (
	"math"
	"sync"
	"time"

	"graphseq/audio"
	"graphseq/debug"
)

// gateNum/gateDen set the note gate to 80% of a sixteenth, as a fraction
// so the division stays in time.Duration arithmetic.
const (
	gateNum = 80
	gateDen = 100

	minTempo = 20
	maxTempo = 300
)

// TickEvent describes one sixteenth-note tick as resolved by the clock.
// It carries everything the traversal animator needs: the step that just
// fired, the order array in effect and the cursor position of the
// following tick, the tick's own timestamp, and the wall-clock length of
// one sixteenth at the tempo the tick was resolved under.
type TickEvent struct {
	Step       int
	NextStep   int
	NextCursor int
	Order      []int
	At         time.Time
	Sixteenth  time.Duration
}

// Clock drives playback: one tick per sixteenth note. Each tick resolves
// the current step through the mode's step-order array, triggers the
// audio output with the step's chord, and publishes a TickEvent for the
// UI. Mode changes requested while running are buffered in a pending
// slot and applied only when the cursor returns to position 0, so a
// switch never lands mid-pass.
type Clock struct {
	mu       sync.Mutex
	tempo    int
	mode     Mode
	pending  *Mode
	order    []int
	cursor   int
	playing  bool
	stopChan chan struct{}

	out    audio.Output
	chords func() map[int]*ChordGroup

	// Ticks receives one event per tick. Sends are non-blocking; a slow
	// reader drops events rather than stalling the clock.
	Ticks chan TickEvent
}

// NewClock creates a stopped clock at 120 BPM in forward mode. The
// chords supplier is called once per tick to read the current grouping.
func NewClock(out audio.Output, chords func() map[int]*ChordGroup) *Clock {
	return &Clock{
		tempo:  120,
		mode:   ModeForward,
		order:  StepOrder(ModeForward),
		out:    out,
		chords: chords,
		Ticks:  make(chan TickEvent, 1),
	}
}

func (c *Clock) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

func (c *Clock) Tempo() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tempo
}

func (c *Clock) SetTempo(bpm int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if bpm < minTempo {
		bpm = minTempo
	}
	if bpm > maxTempo {
		bpm = maxTempo
	}
	c.tempo = bpm
}

func (c *Clock) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// PendingMode returns the buffered mode request, or the active mode and
// false when nothing is pending.
func (c *Clock) PendingMode() (Mode, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return c.mode, false
	}
	return *c.pending, true
}

// Sixteenth returns the wall-clock duration of one sixteenth note at the
// current tempo.
func (c *Clock) Sixteenth() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sixteenthLocked()
}

func (c *Clock) sixteenthLocked() time.Duration {
	return time.Duration(float64(time.Second) * 60.0 / float64(c.tempo) / 4.0)
}

// RequestMode asks for a traversal mode change. While running the
// request is buffered and applied at the next pass boundary; while
// stopped there is no audio to disrupt, so it applies immediately.
// Requesting the active mode cancels any pending request.
func (c *Clock) RequestMode(m Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.playing {
		c.mode = m
		c.pending = nil
		c.order = StepOrder(m)
		c.cursor = 0
		return
	}
	if m == c.mode {
		c.pending = nil
		return
	}
	mode := m
	c.pending = &mode
	debug.Log("clock", "mode %s pending, applies at pass boundary", m)
}

// Play starts the tick loop. No-op if already running.
func (c *Clock) Play() {
	c.mu.Lock()
	if c.playing {
		c.mu.Unlock()
		return
	}
	c.playing = true
	c.stopChan = make(chan struct{})
	c.mu.Unlock()

	debug.Log("clock", "play tempo=%d mode=%s", c.Tempo(), c.Mode())
	go c.loop()
}

// Stop halts the tick loop, resets the cursor to 0, and flushes any
// pending mode request: with playback stopped the boundary rule no
// longer applies, so the buffered mode takes effect right away.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.playing {
		return
	}
	c.playing = false
	close(c.stopChan)
	c.cursor = 0
	if c.pending != nil {
		c.mode = *c.pending
		c.pending = nil
		c.order = StepOrder(c.mode)
	}
	debug.Log("clock", "stop, cursor reset")
}

func (c *Clock) loop() {
	next := time.Now()
	for {
		c.mu.Lock()
		if !c.playing {
			c.mu.Unlock()
			return
		}
		stop := c.stopChan
		c.mu.Unlock()

		ev, ok := c.Tick(next)
		if !ok {
			return
		}

		// Schedule the next tick against the previous tick's timestamp,
		// not time.Now(), so render jitter never accumulates into drift.
		next = next.Add(ev.Sixteenth)
		wait := time.Until(next)
		if wait < 0 {
			next = time.Now()
			wait = 0
		}
		select {
		case <-stop:
			return
		case <-time.After(wait):
		}
	}
}

// Tick performs one sixteenth-note tick at the given timestamp: applies
// a pending mode if the cursor sits at a pass boundary, resolves and
// advances the cursor, triggers the step's chord, and publishes the
// event. Returns false when the clock is not running.
func (c *Clock) Tick(now time.Time) (TickEvent, bool) {
	c.mu.Lock()
	if !c.playing {
		c.mu.Unlock()
		return TickEvent{}, false
	}

	// Pass boundary: the only safe point to swap the step order.
	if c.cursor == 0 && c.pending != nil {
		c.mode = *c.pending
		c.pending = nil
		c.order = StepOrder(c.mode)
		debug.Log("clock", "mode applied at boundary: %s", c.mode)
	}

	step := c.order[c.cursor]
	nextCursor := (c.cursor + 1) % len(c.order)
	c.cursor = nextCursor
	ev := TickEvent{
		Step:       step,
		NextStep:   c.order[nextCursor],
		NextCursor: nextCursor,
		Order:      c.order,
		At:         now,
		Sixteenth:  c.sixteenthLocked(),
	}
	c.mu.Unlock()

	c.trigger(ev)

	select {
	case c.Ticks <- ev:
	default:
	}
	return ev, true
}

// trigger sounds the chord at the event's step, if any. A step with no
// group is a rest. Velocity follows the equal-power law 1/sqrt(k) so a
// chord and a single note read at comparable loudness.
func (c *Clock) trigger(ev TickEvent) {
	grp := c.chords()[ev.Step]
	if grp == nil {
		return
	}
	notes := make([]uint8, len(grp.Pitches))
	for i, p := range grp.Pitches {
		notes[i] = p.Note()
	}
	vel := 1.0 / math.Sqrt(float64(len(notes)))
	gate := ev.Sixteenth * gateNum / gateDen
	c.out.TriggerNotes(notes, gate, ev.At, vel)
	debug.LogEvery(16, "clock", "tick step=%d notes=%d vel=%.2f", ev.Step, len(notes), vel)
}
