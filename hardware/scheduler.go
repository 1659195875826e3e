package hardware

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jetsetilly/test1942/hardware/audio"
	"github.com/jetsetilly/test1942/hardware/spec"
	"github.com/jetsetilly/test1942/hardware/video"
	"github.com/jetsetilly/test1942/logger"
)

// Coords is the position of the scheduler in the frame
type Coords struct {
	Frame int
	Slice int
}

func (c Coords) String() string {
	return fmt.Sprintf("frame: %d  slice: %d", c.Frame, c.Slice)
}

// ShortString is suitable for a prompt
func (c Coords) ShortString() string {
	return fmt.Sprintf("%d/%03d", c.Frame, c.Slice)
}

// Paused is returned by Run() when the user has requested that the emulation
// pause
var Paused = errors.New("paused")

// Step runs the board for a single slice. the main processor runs first and
// then the sound processor. interrupts are asserted after the processor has
// run for the slice
func (con *Console) Step() {
	sp := con.ctx.Spec()
	slice := con.Coords.Slice

	if slice == 0 {
		con.snapshotInput()
	}

	con.activate(mainProcessor)
	con.active.Execute(sp.MainCycles())
	for _, irq := range sp.MainIRQ {
		if irq.Slice == slice {
			con.active.AssertIRQ(irq.Line)
		}
	}

	con.activate(soundProcessor)
	con.active.Execute(sp.SoundCycles())
	if slices.Contains(sp.SoundIRQ, slice) {
		con.active.AssertIRQ(0)
	}

	con.activate(mainProcessor)

	con.Coords.Slice++
	if con.Coords.Slice >= sp.Slices {
		con.endFrame(sp)
		con.Coords.Slice = 0
		con.Coords.Frame++
	}
}

// RunFrame runs the board until the end of the current frame
func (con *Console) RunFrame() {
	con.Step()
	for con.Coords.Slice != 0 {
		con.Step()
	}
}

// Run the emulation until the hook function returns an error. the hook is
// called after every slice. the emulation is limited to the speed of the
// real board
func (con *Console) Run(hook func() error) error {
	for {
		con.handleInput()
		if con.pauseSignal {
			con.pauseSignal = false
			return Paused
		}

		con.Step()

		err := hook()
		if err != nil {
			return err
		}

		if con.Coords.Slice == 0 {
			con.limiter.Wait()
		}
	}
}

// endFrame renders the video and audio for the frame and forwards them to
// the GUI and any audio recorder
func (con *Console) endFrame(sp spec.Spec) {
	con.Video.Render()
	con.PushRender()

	n := sp.SamplesPerFrame()
	mix := audio.Mix(con.PSG[0].Render(n), con.PSG[1].Render(n))

	if con.ctx.UseAudio() {
		con.Audio.Push(mix)
	}

	if con.recorder != nil {
		err := con.recorder.SetAudio(mix)
		if err != nil {
			logger.Log(logger.Allow, "hardware", err.Error())
			con.recorder = nil
		}
	}
}

// PushRender sends the most recent frame to the GUI. the palette is sent
// before the first frame
func (con *Console) PushRender() {
	if con.g == nil {
		return
	}

	if !con.paletteSent {
		select {
		case con.g.SetPalette <- con.Video.Lookup().ColorPalette():
			con.paletteSent = true
		default:
			return
		}
	}

	frame := make([]uint8, len(con.Video.Frame))
	video.Rotate(frame, con.Video.Frame[:])

	select {
	case con.g.SetFrame <- frame:
	default:
	}
}
