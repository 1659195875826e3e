package psg

import (
	"fmt"
	"strings"
)

const NumChannels = 3

// PSG is a single AY-3-8910
type PSG struct {
	label string

	// input clock and output sample rate
	clk        int
	sampleRate int

	// the internal generators are clocked at one sixteenth of the input
	// clock. the accumulator counts towards the next output sample
	acc int

	// register currently selected by port zero
	selected uint8
	regs     [numRegisters]uint8

	channel  [NumChannels]channel
	noise    noise
	envelope envelope
}

// Create a new PSG. clk is the input clock of the chip and sampleRate is the
// rate at which samples are output by Render()
func Create(label string, clk int, sampleRate int) *PSG {
	p := &PSG{
		label:      label,
		clk:        clk,
		sampleRate: sampleRate,
	}
	for i := range p.channel {
		p.channel[i].num = i
	}
	p.Reset()
	return p
}

func (p *PSG) Label() string {
	return p.label
}

// Reset all registers to zero
func (p *PSG) Reset() {
	p.acc = 0
	p.selected = 0
	clear(p.regs[:])
	for i := range p.channel {
		p.channel[i].reset()
	}
	p.noise.reset()
	p.envelope.reset()
}

// WritePort writes to one of the two ports of the PSG. port zero selects the
// register and port one writes data to the selected register
func (p *PSG) WritePort(port uint8, data uint8) {
	if port&0x01 == 0x00 {
		p.selected = data & 0x0f
		return
	}
	p.writeRegister(p.selected, data)
}

// Register returns the current value of the register
func (p *PSG) Register(reg uint8) uint8 {
	return p.regs[reg&0x0f]
}

func (p *PSG) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("%s: reg=%x\n", p.label, p.selected))
	for i := range p.channel {
		s.WriteString(p.channel[i].String())
		s.WriteString("\n")
	}
	s.WriteString(p.noise.String())
	s.WriteString("\n")
	s.WriteString(p.envelope.String())
	return s.String()
}

// step the generators by one tick of the internal clock
func (p *PSG) step() {
	p.noise.step()
	p.envelope.step()
	for i := range p.channel {
		p.channel[i].step()
	}
}

// output of the channel for the current state of the generators
func (p *PSG) output(i int) int {
	ch := &p.channel[i]
	if !ch.mixed(p.noise.output()) {
		return 0
	}
	if ch.useEnvelope {
		return int(volume[p.envelope.volume])
	}
	return int(volume[ch.amplitude])
}

// Render n samples for each channel. each sample is the average of the
// channel output over the period of the sample
func (p *PSG) Render(n int) [NumChannels][]int16 {
	var out [NumChannels][]int16
	for i := range out {
		out[i] = make([]int16, n)
	}

	tickRate := p.clk / 16

	for s := range n {
		var sum [NumChannels]int
		var ct int

		p.acc += tickRate
		for p.acc >= p.sampleRate {
			p.acc -= p.sampleRate
			p.step()
			for i := range sum {
				sum[i] += p.output(i)
			}
			ct++
		}

		for i := range out {
			if ct > 0 {
				out[i][s] = int16(sum[i] / ct)
			} else {
				out[i][s] = int16(p.output(i))
			}
		}
	}

	return out
}
