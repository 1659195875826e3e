package spec

import "github.com/jetsetilly/test1942/hardware/clocks"

// dimensions of the framebuffer. the monitor on the board is mounted
// vertically but the framebuffer is stored as the hardware sees it
const (
	ScreenWidth  = 256
	ScreenHeight = 256
)

// Spec describes the timing of a frame
type Spec struct {
	ID string

	// frames per second
	FrameRate int

	// number of slices in a frame. processors run in turn for one slice
	// before the other processor runs for one slice
	Slices int

	// slices at which the main processor interrupt lines are asserted
	MainIRQ []Interrupt

	// slices at which the sound processor interrupt is asserted
	SoundIRQ []int

	// audio sample rate
	SampleRate int
}

// Interrupt is a slice number and the interrupt line that is asserted on
// that slice
type Interrupt struct {
	Slice int
	Line  uint8
}

// MainCycles is the number of cycles executed by the main processor in a
// single slice
func (s Spec) MainCycles() int {
	return clocks.SliceCycles(clocks.MainCPU, s.FrameRate, s.Slices)
}

// SoundCycles is the number of cycles executed by the sound processor in a
// single slice
func (s Spec) SoundCycles() int {
	return clocks.SliceCycles(clocks.SoundCPU, s.FrameRate, s.Slices)
}

// SamplesPerFrame is the number of audio samples generated at the end of
// every frame
func (s Spec) SamplesPerFrame() int {
	return s.SampleRate / s.FrameRate
}

// Standard is the specification used by the emulator
var Standard Spec

// Original runs at the 57Hz refresh rate of the board's monitor. it is
// selectable from the command line
var Original Spec

func init() {
	// slice 0 asserts line 2 (RST 08h) and slice 240 asserts line 1 (RST 10h)
	mainIRQ := []Interrupt{{Slice: 0, Line: 2}, {Slice: 240, Line: 1}}

	Standard = Spec{
		ID:         "60HZ",
		FrameRate:  60,
		Slices:     272,
		MainIRQ:    mainIRQ,
		SoundIRQ:   []int{10, 90, 170, 250},
		SampleRate: 44100,
	}

	Original = Standard
	Original.ID = "57HZ"
	Original.FrameRate = 57
}
