package types

// Mode represents the state of the terminal modal
type Mode int

const (
	// Closed is the initial mode: the modal is hidden and only the splash shows
	Closed Mode = iota
	// Booting plays the boot sequence with input disabled
	Booting
	// Ready accepts commands
	Ready
)

func (m Mode) String() string {
	switch m {
	case Booting:
		return "booting"
	case Ready:
		return "ready"
	default:
		return "closed"
	}
}
