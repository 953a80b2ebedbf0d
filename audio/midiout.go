package audio

import (
	"fmt"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"graphseq/debug"
)

// MIDIOut sends chord triggers to a MIDI output port on channel 0.
type MIDIOut struct {
	port drivers.Out
	send func(midi.Message) error
}

// ListPorts returns the names of the available MIDI output ports.
func ListPorts() []string {
	outs := midi.GetOutPorts()
	names := make([]string, len(outs))
	for i, out := range outs {
		names[i] = out.String()
	}
	return names
}

// OpenMIDI opens the named output port, or the first available port when
// name is empty.
func OpenMIDI(name string) (*MIDIOut, error) {
	outs := midi.GetOutPorts()
	if len(outs) == 0 {
		return nil, fmt.Errorf("no MIDI output ports available")
	}
	port := outs[0]
	if name != "" {
		found := false
		for _, out := range outs {
			if out.String() == name {
				port = out
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("MIDI port %q not found", name)
		}
	}
	send, err := midi.SendTo(port)
	if err != nil {
		return nil, fmt.Errorf("failed to open port %q: %w", port.String(), err)
	}
	debug.Log("midi", "opened port %q", port.String())
	return &MIDIOut{port: port, send: send}, nil
}

// TriggerNotes sends a NoteOn per note immediately and schedules the
// matching NoteOffs after the gate duration. The normalized velocity is
// scaled to the 1-127 MIDI range.
func (m *MIDIOut) TriggerNotes(notes []uint8, dur time.Duration, _ time.Time, velocity float64) {
	vel := uint8(velocity*126 + 1)
	if velocity <= 0 {
		vel = 1
	} else if velocity >= 1 {
		vel = 127
	}
	for _, note := range notes {
		m.send(midi.NoteOn(0, note, vel))
	}
	off := make([]uint8, len(notes))
	copy(off, notes)
	go func() {
		time.Sleep(dur)
		for _, note := range off {
			m.send(midi.NoteOff(0, note))
		}
	}()
}

func (m *MIDIOut) Close() error {
	midi.CloseDriver()
	return nil
}
