// Package peripherals translates user input into the bits of the board's
// input ports.
//
// Bits are set while a control is active. The inversion to the active-low
// values seen by the main processor happens when the ports are sampled at
// the start of each frame.
package peripherals

import "github.com/jetsetilly/test1942/gui"

// Ports is implemented by the input latches of the board. The data is written
// to the bits not covered by the mask
type Ports interface {
	PortWrite(port int, data uint8, mask uint8)
}

// the input ports used by the peripherals
const (
	PortSystem = iota
	PortPlayer1
	PortPlayer2
)

// Peripheral is implemented by all devices that can be connected to a port
type Peripheral interface {
	Reset()
	Update(inp gui.Input) error
}
