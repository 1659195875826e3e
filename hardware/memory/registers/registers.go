// Package registers holds the device registers of the board. The registers
// are written by the main processor through the address decoder and read by
// the address decoders, the video circuitry and the frame scheduler.
package registers

import (
	"fmt"
	"strings"
)

// number of bytes in the input snapshot. only the first five are connected
const NumInputs = 8

// default values of the input snapshot. the first three bytes are the
// player controls and are all active-low. the last two connected bytes are
// the DIP switches
var defaultInputs = [NumInputs]uint8{0xff, 0xff, 0xff, 0x37, 0x57 | 0x80 | 0x08}

// Registers is the single aggregate of device state written by the main
// processor
type Registers struct {
	// bank select is masked to the number of banks when written. the banked
	// window is recalculated by the address decoder
	BankSelect uint8

	// scroll is written a byte at a time
	Scroll uint16

	// only the lower two bits are significant
	PaletteBank uint8

	// last value written by the main processor. read by the sound processor
	SoundLatch uint8

	// flip screen bit. stored but not used by the video circuitry
	Flip bool

	// input and DIP switch snapshot. refreshed once per frame
	Inputs [NumInputs]uint8
}

// NewRegisters returns an instance of Registers with the input snapshot set
// to the idle position and the DIP switches set to their defaults
func NewRegisters() *Registers {
	r := &Registers{
		Inputs: defaultInputs,
	}
	r.Reset()
	return r
}

// Reset device registers. the input snapshot is not affected by a reset
func (r *Registers) Reset() {
	r.BankSelect = 0
	r.Scroll = 0
	r.PaletteBank = 0
	r.SoundLatch = 0
	r.Flip = false
}

// SetScrollLow changes the low byte of the scroll register
func (r *Registers) SetScrollLow(data uint8) {
	r.Scroll = (r.Scroll & 0xff00) | uint16(data)
}

// SetScrollHigh changes the high byte of the scroll register
func (r *Registers) SetScrollHigh(data uint8) {
	r.Scroll = (r.Scroll & 0x00ff) | (uint16(data) << 8)
}

func (r *Registers) Label() string {
	return "registers"
}

func (r *Registers) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("bank: %d  scroll: %04x  palette: %d  latch: %02x  flip: %v\n",
		r.BankSelect, r.Scroll, r.PaletteBank, r.SoundLatch, r.Flip))
	s.WriteString(fmt.Sprintf("inputs: % 02x", r.Inputs[:]))
	return s.String()
}
