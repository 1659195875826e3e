package psg

import (
	"testing"

	"github.com/jetsetilly/test1942/test"
)

const (
	testClock      = 1500000
	testSampleRate = 44100
)

func TestPolynomial(t *testing.T) {
	test.ExpectEquality(t, len(poly17bit), 131071)

	// a maximal length sequence has one more 1 bit than 0 bits
	var ct int
	for _, v := range poly17bit {
		if v == 1 {
			ct++
		}
	}
	test.ExpectEquality(t, ct, (len(poly17bit)/2)+1)
}

func TestRegisterSelect(t *testing.T) {
	p := Create("psg", testClock, testSampleRate)

	p.WritePort(0, regToneFineA)
	p.WritePort(1, 0x34)
	p.WritePort(0, regToneCoarseA)
	p.WritePort(1, 0xf2)
	test.ExpectEquality(t, p.Register(regToneFineA), 0x34)
	test.ExpectEquality(t, p.Register(regToneCoarseA), 0x02)
	test.ExpectEquality(t, p.channel[0].period, 0x234)

	// the register is selected with the lower four bits only
	p.WritePort(0, 0x18)
	p.WritePort(1, 0x1f)
	test.ExpectEquality(t, p.channel[0].amplitude, 0x0f)
	test.ExpectSuccess(t, p.channel[0].useEnvelope)

	// odd port numbers are the data port
	p.WritePort(0, regNoisePeriod)
	p.WritePort(3, 0xff)
	test.ExpectEquality(t, p.noise.period, 0x1f)
}

func TestMixer(t *testing.T) {
	p := Create("psg", testClock, testSampleRate)
	p.WritePort(0, regMixer)
	p.WritePort(1, 0b00101010)

	test.ExpectEquality(t, p.channel[0].toneDisable, false)
	test.ExpectEquality(t, p.channel[1].toneDisable, true)
	test.ExpectEquality(t, p.channel[2].toneDisable, false)
	test.ExpectEquality(t, p.channel[0].noiseDisable, true)
	test.ExpectEquality(t, p.channel[1].noiseDisable, false)
	test.ExpectEquality(t, p.channel[2].noiseDisable, true)
}

func TestSilence(t *testing.T) {
	p := Create("psg", testClock, testSampleRate)
	out := p.Render(735)
	for i := range out {
		test.ExpectEquality(t, len(out[i]), 735)
		for _, v := range out[i] {
			if !test.ExpectEquality(t, v, 0) {
				return
			}
		}
	}
}

func TestFixedAmplitude(t *testing.T) {
	p := Create("psg", testClock, testSampleRate)

	// tone and noise disabled on channel A means the output is always high
	p.WritePort(0, regMixer)
	p.WritePort(1, 0xff)
	p.WritePort(0, regAmplitudeA)
	p.WritePort(1, 0x0f)

	out := p.Render(100)
	for _, v := range out[0] {
		if !test.ExpectEquality(t, v, volume[15]) {
			return
		}
	}
	for _, v := range out[1] {
		if !test.ExpectEquality(t, v, 0) {
			return
		}
	}
}

func TestToneFrequency(t *testing.T) {
	p := Create("psg", testClock, testSampleRate)

	// period of 0x100 gives a tone of 1500000 / (16 * 2 * 256) = 183Hz
	p.WritePort(0, regToneFineA)
	p.WritePort(1, 0x00)
	p.WritePort(0, regToneCoarseA)
	p.WritePort(1, 0x01)
	p.WritePort(0, regMixer)
	p.WritePort(1, 0b00111000)
	p.WritePort(0, regAmplitudeA)
	p.WritePort(1, 0x0f)

	out := p.Render(testSampleRate)

	// count rising edges over one second
	var edges int
	high := out[0][0] > volume[15]/2
	for _, v := range out[0][1:] {
		h := v > volume[15]/2
		if h && !high {
			edges++
		}
		high = h
	}
	test.ExpectSuccess(t, edges >= 182 && edges <= 184, edges)
}

func TestEnvelope(t *testing.T) {
	var e envelope

	// decay then hold at zero
	e.shape(0x00)
	test.ExpectEquality(t, e.volume, 15)
	for range 15 {
		e.step()
	}
	test.ExpectEquality(t, e.volume, 0)
	e.step()
	test.ExpectEquality(t, e.volume, 0)
	test.ExpectSuccess(t, e.holding)

	// attack then drop to zero
	e.shape(envAttack)
	test.ExpectEquality(t, e.volume, 0)
	for range 15 {
		e.step()
	}
	test.ExpectEquality(t, e.volume, 15)
	e.step()
	test.ExpectEquality(t, e.volume, 0)
	test.ExpectSuccess(t, e.holding)

	// repeating sawtooth
	e.shape(envContinue)
	for range 16 {
		e.step()
	}
	test.ExpectEquality(t, e.volume, 15)
	test.ExpectFailure(t, e.holding)

	// triangle
	e.shape(envContinue | envAlternate)
	for range 16 {
		e.step()
	}
	test.ExpectEquality(t, e.volume, 0)
	e.step()
	test.ExpectEquality(t, e.volume, 1)

	// attack and hold at maximum
	e.shape(envContinue | envAttack | envHold)
	for range 20 {
		e.step()
	}
	test.ExpectEquality(t, e.volume, 15)
	test.ExpectSuccess(t, e.holding)
}

func TestReset(t *testing.T) {
	p := Create("psg", testClock, testSampleRate)
	p.WritePort(0, regAmplitudeB)
	p.WritePort(1, 0x0c)
	p.Reset()
	test.ExpectEquality(t, p.Register(regAmplitudeB), 0)
	test.ExpectEquality(t, p.channel[1].amplitude, 0)
	test.ExpectEquality(t, p.selected, 0)
}
