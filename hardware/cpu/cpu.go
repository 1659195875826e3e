// Package cpu defines the interface between the board and a processor
// implementation. The board has two processors and each is an instance of a
// Session.
//
// The instruction interpreter is not part of this package. An interpreter is
// attached to the board with a Factory. Without an interpreter the board uses
// the Idle session, which consumes every cycle it is given and acknowledges
// interrupts without executing any instructions.
package cpu

// Bus is the interface used by a processor to access memory
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Vector is called by the processor when it acknowledges an interrupt. the
// line argument is the interrupt line that was asserted. the returned byte is
// placed on the data bus during the acknowledge cycle
type Vector func(line uint8) uint8

// Session is a single processor instance
type Session interface {
	Label() string

	// Reset the processor to its power-on state. pending interrupts are
	// cleared
	Reset()

	// Execute runs the processor for the number of cycles. the number of
	// cycles actually executed is returned and may be greater than requested
	// because instructions are not interrupted
	Execute(cycles int) int

	// AssertIRQ raises the interrupt line. the line remains asserted until
	// ClearIRQ() is called, usually by the Vector function
	AssertIRQ(line uint8)
	ClearIRQ(line uint8)
}

// Factory creates a new Session connected to the bus. the vector function
// must be called on interrupt acknowledge
type Factory func(label string, bus Bus, vector Vector) Session
