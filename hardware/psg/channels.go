package psg

import "fmt"

// channel is a single square wave tone generator
type channel struct {
	num int

	// twelve bit period. a value of zero is treated the same as one
	period  uint16
	counter uint16
	tone    bool

	// mixer settings
	toneDisable  bool
	noiseDisable bool

	// fixed amplitude or amplitude from the envelope generator
	amplitude   uint8
	useEnvelope bool
}

func (ch *channel) String() string {
	var env string
	if ch.useEnvelope {
		env = " (env)"
	}
	return fmt.Sprintf("ch%d: period=%03x amp=%x%s tone=%v noise=%v", ch.num, ch.period, ch.amplitude, env, !ch.toneDisable, !ch.noiseDisable)
}

func (ch *channel) reset() {
	ch.period = 0
	ch.counter = 0
	ch.tone = false
	ch.toneDisable = false
	ch.noiseDisable = false
	ch.amplitude = 0
	ch.useEnvelope = false
}

func (ch *channel) step() {
	ch.counter++
	if ch.counter >= max(ch.period, 1) {
		ch.counter = 0
		ch.tone = !ch.tone
	}
}

// mixed returns true if the channel output is high. a disabled tone or noise
// is treated as being always high
func (ch *channel) mixed(noise bool) bool {
	return (ch.tone || ch.toneDisable) && (noise || ch.noiseDisable)
}
