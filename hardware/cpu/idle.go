package cpu

import "fmt"

// Idle is a Session that executes no instructions. every interrupt is
// acknowledged immediately through the vector function
type Idle struct {
	label  string
	bus    Bus
	vector Vector

	// interrupt lines currently asserted. a bit for each line
	pending uint8

	// the most recent vector returned by the vector function
	LastVector uint8

	// running totals since the last reset
	Cycles int
	Acks   int
}

// NewIdle is a Factory for the Idle session
func NewIdle(label string, bus Bus, vector Vector) Session {
	return &Idle{
		label:  label,
		bus:    bus,
		vector: vector,
	}
}

func (c *Idle) Label() string {
	return c.label
}

func (c *Idle) String() string {
	return fmt.Sprintf("%s: cycles=%d acks=%d pending=%08b vector=%02x", c.label, c.Cycles, c.Acks, c.pending, c.LastVector)
}

func (c *Idle) Reset() {
	c.pending = 0
	c.LastVector = 0
	c.Cycles = 0
	c.Acks = 0
}

func (c *Idle) Execute(cycles int) int {
	c.Cycles += cycles
	return cycles
}

func (c *Idle) AssertIRQ(line uint8) {
	c.pending |= 1 << (line & 0x07)

	// the idle processor always has interrupts enabled so the interrupt is
	// acknowledged immediately
	if c.vector != nil {
		c.LastVector = c.vector(line)
		c.Acks++
	}
}

func (c *Idle) ClearIRQ(line uint8) {
	c.pending &^= 1 << (line & 0x07)
}

// Pending returns true if the interrupt line is asserted
func (c *Idle) Pending(line uint8) bool {
	return c.pending&(1<<(line&0x07)) != 0
}
