package sequencer

const (
	NumPitches = 13 // grid rows, highest pitch first
	NumSteps   = 16 // sixteenth-note slots per loop
)

// Pitch indexes a grid row. Row 0 is the highest pitch; rows descend
// chromatically to the octave below.
type Pitch int

type pitchInfo struct {
	Name string
	Note uint8 // MIDI note number
}

// pitchTable is the fixed chromatic row C5 down to C4, matching the
// top-to-bottom order of the grid.
var pitchTable = [NumPitches]pitchInfo{
	{"C5", 72},
	{"B4", 71},
	{"A#4", 70},
	{"A4", 69},
	{"G#4", 68},
	{"G4", 67},
	{"F#4", 66},
	{"F4", 65},
	{"E4", 64},
	{"D#4", 63},
	{"D4", 62},
	{"C#4", 61},
	{"C4", 60},
}

func (p Pitch) Valid() bool {
	return p >= 0 && p < NumPitches
}

func (p Pitch) Name() string {
	if !p.Valid() {
		return "?"
	}
	return pitchTable[p].Name
}

// Note returns the MIDI note number for the pitch.
func (p Pitch) Note() uint8 {
	if !p.Valid() {
		return 0
	}
	return pitchTable[p].Note
}
