package gui

// Port identifies where the input is going
type Port int

// List of valid ports. input sent to the Undefined port is delivered to
// every peripheral
const (
	Undefined Port = iota
	Panel
	Player0
	Player1
)

type Action int

// Input from the user. the type of the Data field depends on the Action. for
// all current actions it is a bool indicating whether the control is active
type Input struct {
	Port   Port
	Action Action
	Data   any
}

// List of valid actions
const (
	Nothing Action = iota

	StickLeft
	StickUp
	StickRight
	StickDown
	StickButtonA
	StickButtonB

	Coin1
	Coin2
	Start1
	Start2

	// actions that are handled by the emulation loop rather than a peripheral
	Pause
	Reset
)

func (a Action) String() string {
	switch a {
	case Nothing:
		return "nothing"
	case StickLeft:
		return "left"
	case StickUp:
		return "up"
	case StickRight:
		return "right"
	case StickDown:
		return "down"
	case StickButtonA:
		return "fire"
	case StickButtonB:
		return "loop"
	case Coin1:
		return "coin 1"
	case Coin2:
		return "coin 2"
	case Start1:
		return "start 1"
	case Start2:
		return "start 2"
	case Pause:
		return "pause"
	case Reset:
		return "reset"
	}
	return "unknown"
}
