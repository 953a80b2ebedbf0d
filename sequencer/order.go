package sequencer

// Mode selects the traversal direction of the step cursor.
type Mode int

const (
	ModeForward Mode = iota
	ModeReverse
	ModePingPong
)

func (m Mode) String() string {
	switch m {
	case ModeForward:
		return "forward"
	case ModeReverse:
		return "reverse"
	case ModePingPong:
		return "pingpong"
	default:
		return "unknown"
	}
}

// ModeFromString parses a mode name, defaulting to forward.
func ModeFromString(s string) Mode {
	switch s {
	case "reverse":
		return ModeReverse
	case "pingpong":
		return ModePingPong
	default:
		return ModeForward
	}
}

// StepOrder returns the sequence of step indices one full pass visits in
// the given mode: 16 entries for forward and reverse, 32 for pingpong
// (the forward pass immediately followed by the reverse pass, so both
// boundary steps are visited twice per pass).
func StepOrder(m Mode) []int {
	switch m {
	case ModeReverse:
		order := make([]int, NumSteps)
		for i := range order {
			order[i] = NumSteps - 1 - i
		}
		return order
	case ModePingPong:
		order := make([]int, 0, 2*NumSteps)
		for i := 0; i < NumSteps; i++ {
			order = append(order, i)
		}
		for i := NumSteps - 1; i >= 0; i-- {
			order = append(order, i)
		}
		return order
	default:
		order := make([]int, NumSteps)
		for i := range order {
			order[i] = i
		}
		return order
	}
}
