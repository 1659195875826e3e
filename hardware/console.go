// Package hardware assembles the components of the board and runs them
// frame by frame.
package hardware

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/test1942/gui"
	"github.com/jetsetilly/test1942/hardware/audio"
	"github.com/jetsetilly/test1942/hardware/clocks"
	"github.com/jetsetilly/test1942/hardware/cpu"
	"github.com/jetsetilly/test1942/hardware/memory"
	"github.com/jetsetilly/test1942/hardware/memory/region"
	"github.com/jetsetilly/test1942/hardware/memory/registers"
	"github.com/jetsetilly/test1942/hardware/peripherals"
	"github.com/jetsetilly/test1942/hardware/psg"
	"github.com/jetsetilly/test1942/hardware/spec"
	"github.com/jetsetilly/test1942/hardware/video"
	"github.com/jetsetilly/test1942/logger"
)

// Context is the interface required by the hardware package
type Context interface {
	memory.Context
	Spec() spec.Spec
	UseAudio() bool
}

// AudioRecorder receives a copy of the mixed audio at the end of every frame
type AudioRecorder interface {
	SetAudio(samples []int16) error
}

// the two processors on the board
type processor int

const (
	mainProcessor processor = iota
	soundProcessor
)

func (p processor) String() string {
	switch p {
	case mainProcessor:
		return "main"
	case soundProcessor:
		return "sound"
	}
	return "unknown"
}

// interrupt vectors placed on the data bus when an interrupt is acknowledged
const (
	vectorRST08 = 0xcf
	vectorRST10 = 0xd7
	vectorRST38 = 0xff
)

// Console is the entire board
type Console struct {
	ctx Context
	g   *gui.GUI

	Regions *region.Table
	Regs    *registers.Registers
	Main    *memory.Main
	Sound   *memory.Sound
	PSG     [2]*psg.PSG
	Video   *video.Video

	MainCPU  cpu.Session
	SoundCPU cpu.Session

	// the session currently executing. changed by activate()
	active   cpu.Session
	activeID processor

	Coords Coords

	// input latches for the peripherals. the bits are active-high and are
	// inverted when copied into the input snapshot
	latches     [3]uint8
	panel       peripherals.Peripheral
	players     [2]peripherals.Peripheral
	pauseSignal bool

	Audio    *audio.Stream
	recorder AudioRecorder
	limiter  *limiter

	paletteSent bool
}

// Create a new console. the region table must already be loaded. a nil
// factory means the Idle processor is used for both sessions
func Create(ctx Context, g *gui.GUI, tbl *region.Table, factory cpu.Factory) (*Console, error) {
	if factory == nil {
		factory = cpu.NewIdle
	}

	con := &Console{
		ctx:     ctx,
		g:       g,
		Regions: tbl,
		Regs:    registers.NewRegisters(),
		limiter: newLimiter(ctx.Spec()),
	}

	con.Audio = audio.NewStream(con.limiter.Nudge)

	sampleRate := ctx.Spec().SampleRate
	con.PSG[0] = psg.Create("psg0", clocks.PSG, sampleRate)
	con.PSG[1] = psg.Create("psg1", clocks.PSG, sampleRate)

	var err error
	var addSoundReset memory.AddSoundReset

	con.Main, addSoundReset, err = memory.CreateMain(ctx, tbl, con.Regs)
	if err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}
	addSoundReset(con.ResetSound)

	con.Sound, err = memory.CreateSound(ctx, tbl, con.Regs, [2]memory.PSG{con.PSG[0], con.PSG[1]})
	if err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}

	lookup, err := video.DecodePROM(tbl)
	if err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}

	con.Video, err = video.Create(tbl, lookup, con.Regs, video.VRAM{
		Foreground: con.Main.Foreground.Bytes(),
		Background: con.Main.Background.Bytes(),
		Sprites:    con.Main.Sprites.Bytes(),
	})
	if err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}

	// the vector functions clear the interrupt line that caused the
	// interrupt. the main processor uses two different restart instructions
	// depending on the line
	con.MainCPU = factory("main", con.Main, func(line uint8) uint8 {
		con.MainCPU.ClearIRQ(line)
		if line == 1 {
			return vectorRST10
		}
		return vectorRST08
	})
	con.SoundCPU = factory("sound", con.Sound, func(line uint8) uint8 {
		con.SoundCPU.ClearIRQ(line)
		return vectorRST38
	})
	con.activate(mainProcessor)

	con.panel = peripherals.NewPanel(con)
	con.players[0] = peripherals.NewStick(con, peripherals.PortPlayer1)
	con.players[1] = peripherals.NewStick(con, peripherals.PortPlayer2)

	if g != nil && ctx.UseAudio() {
		select {
		case g.AudioSetup <- gui.AudioSetup{Freq: sampleRate, Read: con.Audio}:
		default:
		}
	}

	return con, nil
}

// Reset the board. the processors, the sound generators and the device
// registers are all reset. the input snapshot and the DIP switches are not
// affected
func (con *Console) Reset(random bool) {
	con.Regs.Reset()
	con.Main.Reset(random)
	con.Sound.Reset(random)
	con.PSG[0].Reset()
	con.PSG[1].Reset()
	con.MainCPU.Reset()
	con.SoundCPU.Reset()
	con.activate(mainProcessor)
	con.Coords.Slice = 0
}

// activate makes the processor the target of subsequent execution
func (con *Console) activate(p processor) {
	con.activeID = p
	switch p {
	case mainProcessor:
		con.active = con.MainCPU
	case soundProcessor:
		con.active = con.SoundCPU
	}
}

// ResetSound resets the sound processor. the main processor, which is
// usually the processor that requests the reset, is not affected
func (con *Console) ResetSound() {
	prev := con.activeID
	con.activate(soundProcessor)
	con.active.Reset()
	con.activate(prev)
	logger.Log(logger.Allow, "hardware", "sound processor reset")
}

// AddAudioRecorder attaches a recorder to the console. a nil recorder
// removes any existing recorder
func (con *Console) AddAudioRecorder(r AudioRecorder) {
	con.recorder = r
}

// LastAreaStatus returns information about the most recent write by the main
// processor. the information is cleared on return
func (con *Console) LastAreaStatus() string {
	if con.Main.Last == nil {
		return ""
	}
	s := con.Main.Last.Label()
	con.Main.Last = nil
	return s
}

func (con *Console) String() string {
	var s strings.Builder
	s.WriteString(con.Coords.String())
	s.WriteString("\n")
	if st, ok := con.MainCPU.(fmt.Stringer); ok {
		s.WriteString(st.String())
		s.WriteString("\n")
	}
	if st, ok := con.SoundCPU.(fmt.Stringer); ok {
		s.WriteString(st.String())
		s.WriteString("\n")
	}
	s.WriteString(con.Regs.String())
	return s.String()
}
