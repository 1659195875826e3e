package psg

import "fmt"

// the output sequence of the seventeen bit noise shift register
var poly17bit []uint8

// noise steps through the polynomial sequence at a rate determined by the
// noise period
type noise struct {
	period  uint8
	counter uint8
	ct17bit int
}

func (n *noise) String() string {
	return fmt.Sprintf("noise: period=%02x poly=%05x", n.period, n.ct17bit)
}

func (n *noise) reset() {
	n.period = 0
	n.counter = 0
	n.ct17bit = 0
}

func (n *noise) step() {
	n.counter++

	// the noise generator runs at half the rate of the tone generators
	if n.counter >= max(n.period, 1)*2 {
		n.counter = 0
		n.ct17bit++
		if n.ct17bit >= len(poly17bit) {
			n.ct17bit = 0
		}
	}
}

func (n *noise) output() bool {
	return poly17bit[n.ct17bit] == 0x01
}

func init() {
	// the shift register is fed back from bits zero and three and starts
	// with only the lowest bit set
	b := uint32(1)
	poly17bit = make([]uint8, (1<<17)-1)
	for i := range poly17bit {
		poly17bit[i] = uint8(b & 0x01)
		bit := (b ^ (b >> 3)) & 0x01
		b = (b >> 1) | (bit << 16)
	}
}
