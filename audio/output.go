package audio

import "time"

// Output is the audio collaborator: something that can sound a set of
// MIDI notes as one simultaneous event. The velocity is normalized 0-1;
// chord triggers arrive already equal-power compensated, so backends
// apply it directly without further scaling across voices.
type Output interface {
	// TriggerNotes sounds every note in the set at the given velocity,
	// releasing after dur. The at timestamp is the musical tick time the
	// event belongs to; backends that cannot schedule ahead play
	// immediately.
	TriggerNotes(notes []uint8, dur time.Duration, at time.Time, velocity float64)
	Close() error
}

// Silent is an Output that discards every trigger. Used when no backend
// could be opened; the sequencer and graph keep running without sound.
type Silent struct{}

func (Silent) TriggerNotes([]uint8, time.Duration, time.Time, float64) {}

func (Silent) Close() error { return nil }
