package peripherals

import (
	"fmt"

	"github.com/jetsetilly/test1942/gui"
)

// bits of the player ports
const (
	stickRight = 0x01
	stickLeft  = 0x02
	stickDown  = 0x04
	stickUp    = 0x08
	stickFire  = 0x10
	stickLoop  = 0x20
)

// Stick is an eight-way joystick with two buttons. button A is fire and
// button B is the loop
type Stick struct {
	ports Ports
	port  int
}

func NewStick(ports Ports, port int) *Stick {
	st := &Stick{
		ports: ports,
		port:  port,
	}
	st.Reset()
	return st
}

func (st *Stick) Reset() {
	st.ports.PortWrite(st.port, 0x00, 0x00)
}

func (st *Stick) Update(inp gui.Input) error {
	var bit uint8
	var opposite uint8

	switch inp.Action {
	case gui.StickLeft:
		bit = stickLeft
		opposite = stickRight
	case gui.StickRight:
		bit = stickRight
		opposite = stickLeft
	case gui.StickUp:
		bit = stickUp
		opposite = stickDown
	case gui.StickDown:
		bit = stickDown
		opposite = stickUp
	case gui.StickButtonA:
		bit = stickFire
	case gui.StickButtonB:
		bit = stickLoop
	default:
		return nil
	}

	pressed, ok := inp.Data.(bool)
	if !ok {
		return fmt.Errorf("stick: unexpected data for %v", inp.Action)
	}

	if pressed {
		// unset the opposite direction first
		if opposite != 0x00 {
			st.ports.PortWrite(st.port, 0x00, ^opposite)
		}
		st.ports.PortWrite(st.port, bit, ^bit)
	} else {
		st.ports.PortWrite(st.port, 0x00, ^bit)
	}

	return nil
}
