package psg

// list of registers
const (
	regToneFineA = iota
	regToneCoarseA
	regToneFineB
	regToneCoarseB
	regToneFineC
	regToneCoarseC
	regNoisePeriod
	regMixer
	regAmplitudeA
	regAmplitudeB
	regAmplitudeC
	regEnvelopeFine
	regEnvelopeCoarse
	regEnvelopeShape
	regPortA
	regPortB
	numRegisters
)

// the significant bits of each register
var registerMask = [numRegisters]uint8{
	0xff, 0x0f, 0xff, 0x0f, 0xff, 0x0f,
	0x1f, 0xff,
	0x1f, 0x1f, 0x1f,
	0xff, 0xff, 0x0f,
	0xff, 0xff,
}

func (p *PSG) writeRegister(reg uint8, data uint8) {
	reg &= 0x0f
	data &= registerMask[reg]
	p.regs[reg] = data

	switch reg {
	case regToneFineA, regToneCoarseA:
		p.channel[0].period = uint16(p.regs[regToneFineA]) | uint16(p.regs[regToneCoarseA])<<8
	case regToneFineB, regToneCoarseB:
		p.channel[1].period = uint16(p.regs[regToneFineB]) | uint16(p.regs[regToneCoarseB])<<8
	case regToneFineC, regToneCoarseC:
		p.channel[2].period = uint16(p.regs[regToneFineC]) | uint16(p.regs[regToneCoarseC])<<8
	case regNoisePeriod:
		p.noise.period = data
	case regMixer:
		// a set bit disables the output
		for i := range p.channel {
			p.channel[i].toneDisable = (data>>i)&0x01 == 0x01
			p.channel[i].noiseDisable = (data>>(i+3))&0x01 == 0x01
		}
	case regAmplitudeA, regAmplitudeB, regAmplitudeC:
		ch := &p.channel[reg-regAmplitudeA]
		ch.amplitude = data & 0x0f
		ch.useEnvelope = data&0x10 == 0x10
	case regEnvelopeFine, regEnvelopeCoarse:
		p.envelope.period = uint16(p.regs[regEnvelopeFine]) | uint16(p.regs[regEnvelopeCoarse])<<8
	case regEnvelopeShape:
		p.envelope.shape(data)
	case regPortA, regPortB:
		// the IO ports are not connected
	}
}
