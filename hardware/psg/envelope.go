package psg

import "fmt"

// envelope shape bits
const (
	envHold      = 0x01
	envAlternate = 0x02
	envAttack    = 0x04
	envContinue  = 0x08
)

type envelope struct {
	period  uint16
	counter uint16

	// the step counts down from fifteen to zero. the volume is the step
	// value inverted by the attack value
	level   int
	attack  uint8
	hold    bool
	alt     bool
	holding bool

	volume uint8
}

func (e *envelope) String() string {
	return fmt.Sprintf("envelope: period=%04x volume=%x holding=%v", e.period, e.volume, e.holding)
}

func (e *envelope) reset() {
	e.period = 0
	e.counter = 0
	e.shape(0)
}

// shape is called whenever the shape register is written to. the envelope
// restarts from the beginning
func (e *envelope) shape(data uint8) {
	if data&envAttack == envAttack {
		e.attack = 0x0f
	} else {
		e.attack = 0x00
	}

	if data&envContinue == envContinue {
		e.hold = data&envHold == envHold
		e.alt = data&envAlternate == envAlternate
	} else {
		// shapes without the continue bit drop to zero and stay there
		e.hold = true
		e.alt = e.attack == 0x0f
	}

	e.counter = 0
	e.level = 15
	e.holding = false
	e.volume = uint8(e.level) ^ e.attack
}

func (e *envelope) step() {
	if e.holding {
		return
	}

	e.counter++
	if e.counter < max(e.period, 1) {
		return
	}
	e.counter = 0

	e.level--
	if e.level < 0 {
		if e.hold {
			if e.alt {
				e.attack ^= 0x0f
			}
			e.holding = true
			e.level = 0
		} else {
			if e.alt {
				e.attack ^= 0x0f
			}
			e.level = 15
		}
	}

	e.volume = uint8(e.level) ^ e.attack
}
