package hardware

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/test1942/gui"
	"github.com/jetsetilly/test1942/hardware/cpu"
	"github.com/jetsetilly/test1942/hardware/memory/region"
	"github.com/jetsetilly/test1942/hardware/spec"
	"github.com/jetsetilly/test1942/test"
)

type testContext struct {
	audio bool
}

func (ctx *testContext) Rand8Bit() uint8 {
	return 0x55
}

func (ctx *testContext) Spec() spec.Spec {
	return spec.Standard
}

func (ctx *testContext) UseAudio() bool {
	return ctx.audio
}

func newConsole(t *testing.T, g *gui.GUI, factory cpu.Factory) *Console {
	t.Helper()
	tbl := region.NewTable()
	tbl.MarkLoaded(region.ColorPROM)
	con, err := Create(&testContext{}, g, tbl, factory)
	test.DemandSuccess(t, err)
	con.Reset(false)
	return con
}

func idle(t *testing.T, s cpu.Session) *cpu.Idle {
	t.Helper()
	c, ok := s.(*cpu.Idle)
	if !ok {
		t.Fatalf("session is not an idle session")
	}
	return c
}

func TestInterruptCounts(t *testing.T) {
	con := newConsole(t, nil, nil)
	con.RunFrame()

	main := idle(t, con.MainCPU)
	sound := idle(t, con.SoundCPU)

	test.ExpectEquality(t, main.Acks, 2)
	test.ExpectEquality(t, sound.Acks, 4)
	test.ExpectEquality(t, main.LastVector, vectorRST10)
	test.ExpectEquality(t, sound.LastVector, vectorRST38)
	test.ExpectEquality(t, main.Cycles, 272*980)
	test.ExpectEquality(t, sound.Cycles, 272*732)

	// the vector functions clear the interrupt lines
	test.ExpectFailure(t, main.Pending(1))
	test.ExpectFailure(t, main.Pending(2))
	test.ExpectFailure(t, sound.Pending(0))

	test.ExpectEquality(t, con.Coords.Frame, 1)
	test.ExpectEquality(t, con.Coords.Slice, 0)

	con.RunFrame()
	test.ExpectEquality(t, main.Acks, 4)
	test.ExpectEquality(t, sound.Acks, 8)
}

// recorder is a session that records every event in the order it happens
type recorder struct {
	label  string
	con    **Console
	vector cpu.Vector
	events *[]string
}

func (r *recorder) event(s string) {
	// the console is not available while it is being created
	if *r.con == nil {
		return
	}
	*r.events = append(*r.events, fmt.Sprintf("%d %s %s", (*r.con).Coords.Slice, r.label, s))
}

func (r *recorder) Label() string {
	return r.label
}

func (r *recorder) Reset() {
	r.event("reset")
}

func (r *recorder) Execute(cycles int) int {
	r.event("exec")
	return cycles
}

func (r *recorder) AssertIRQ(line uint8) {
	r.event(fmt.Sprintf("irq %d %02x", line, r.vector(line)))
}

func (r *recorder) ClearIRQ(line uint8) {
	r.event(fmt.Sprintf("clear %d", line))
}

func TestInterruptOrder(t *testing.T) {
	var con *Console
	var events []string

	factory := func(label string, _ cpu.Bus, vector cpu.Vector) cpu.Session {
		return &recorder{
			label:  label,
			con:    &con,
			vector: vector,
			events: &events,
		}
	}

	con = newConsole(t, nil, factory)
	events = events[:0]
	con.RunFrame()

	// the slice number is recorded as it is before the slice counter is
	// advanced. the vector clears the line before the vector value is returned
	var interrupts []string
	for _, e := range events {
		var slice int
		var label, kind string
		fmt.Sscanf(e, "%d %s %s", &slice, &label, &kind)
		if kind == "irq" || kind == "clear" {
			interrupts = append(interrupts, e)
		}
	}

	expected := []string{
		"0 main clear 2", "0 main irq 2 cf",
		"10 sound clear 0", "10 sound irq 0 ff",
		"90 sound clear 0", "90 sound irq 0 ff",
		"170 sound clear 0", "170 sound irq 0 ff",
		"240 main clear 1", "240 main irq 1 d7",
		"250 sound clear 0", "250 sound irq 0 ff",
	}
	test.DemandEquality(t, len(interrupts), len(expected))
	for i := range expected {
		test.ExpectEquality(t, interrupts[i], expected[i])
	}

	// the main processor runs before the sound processor in every slice. the
	// interrupt for a slice comes after the processor has run
	test.ExpectEquality(t, events[0], "0 main exec")
	test.ExpectEquality(t, events[1], "0 main clear 2")
	test.ExpectEquality(t, events[2], "0 main irq 2 cf")
	test.ExpectEquality(t, events[3], "0 sound exec")
	test.ExpectEquality(t, events[4], "1 main exec")
	test.ExpectEquality(t, events[5], "1 sound exec")
}

func TestSoundResetIsolation(t *testing.T) {
	con := newConsole(t, nil, nil)
	con.RunFrame()

	main := idle(t, con.MainCPU)
	sound := idle(t, con.SoundCPU)
	mainCycles := main.Cycles
	mainAcks := main.Acks

	test.ExpectInequality(t, sound.Cycles, 0)

	// bit 4 of the control register resets the sound processor
	con.Main.Write(0xc804, 0x10)
	test.ExpectEquality(t, sound.Cycles, 0)
	test.ExpectEquality(t, sound.Acks, 0)
	test.ExpectEquality(t, main.Cycles, mainCycles)
	test.ExpectEquality(t, main.Acks, mainAcks)
	test.ExpectEquality(t, con.activeID, mainProcessor)

	// without bit 4 there is no reset
	con.RunFrame()
	con.Main.Write(0xc804, 0x80)
	test.ExpectInequality(t, sound.Cycles, 0)
	test.ExpectSuccess(t, con.Regs.Flip)
}

func TestInputSnapshot(t *testing.T) {
	con := newConsole(t, nil, nil)

	con.HandleInput(gui.Input{Port: gui.Panel, Action: gui.Coin1, Data: true})
	con.HandleInput(gui.Input{Port: gui.Player0, Action: gui.StickButtonA, Data: true})

	// the snapshot is taken at the start of the frame
	test.ExpectEquality(t, con.Main.Read(0xc000), 0xff)
	test.ExpectEquality(t, con.Main.Read(0xc001), 0xff)

	con.Step()
	test.ExpectEquality(t, con.Main.Read(0xc000), 0x7f)
	test.ExpectEquality(t, con.Main.Read(0xc001), 0xef)
	test.ExpectEquality(t, con.Main.Read(0xc002), 0xff)
	test.ExpectEquality(t, con.Main.Read(0xc003), 0x37)
	test.ExpectEquality(t, con.Main.Read(0xc004), 0xdf)

	// input changes part way through a frame are not seen until the next
	// frame
	con.HandleInput(gui.Input{Port: gui.Panel, Action: gui.Coin1, Data: false})
	con.Step()
	test.ExpectEquality(t, con.Main.Read(0xc000), 0x7f)
	con.RunFrame()
	con.Step()
	test.ExpectEquality(t, con.Main.Read(0xc000), 0xff)

	// reset does not affect the snapshot
	con.Reset(false)
	test.ExpectEquality(t, con.Main.Read(0xc001), 0xef)
}

func TestReset(t *testing.T) {
	con := newConsole(t, nil, nil)
	con.Main.Write(0xc806, 0x02)
	con.Main.Write(0xc802, 0x34)
	con.Main.Write(0xc803, 0x01)
	con.Main.Write(0xc805, 0x03)
	con.Main.Write(0xc800, 0x99)
	con.Main.Write(0xc804, 0x80)
	con.Step()

	test.ExpectEquality(t, con.Regs.BankSelect, 2)
	test.ExpectEquality(t, con.Main.Bank.Base, 0x18000)

	con.Reset(false)
	test.ExpectEquality(t, con.Regs.BankSelect, 0)
	test.ExpectEquality(t, con.Main.Bank.Base, 0x10000)
	test.ExpectEquality(t, con.Regs.Scroll, 0)
	test.ExpectEquality(t, con.Regs.PaletteBank, 0)
	test.ExpectEquality(t, con.Regs.SoundLatch, 0)
	test.ExpectFailure(t, con.Regs.Flip)
	test.ExpectEquality(t, con.Coords.Slice, 0)
	test.ExpectEquality(t, idle(t, con.MainCPU).Cycles, 0)
	test.ExpectEquality(t, idle(t, con.SoundCPU).Cycles, 0)
}

type audioRecorder struct {
	samples []int16
}

func (r *audioRecorder) SetAudio(samples []int16) error {
	r.samples = append(r.samples, samples...)
	return nil
}

func TestFrameOutput(t *testing.T) {
	g := gui.NewGUI(spec.ScreenHeight, spec.ScreenWidth)
	con := newConsole(t, g, nil)

	var rec audioRecorder
	con.AddAudioRecorder(&rec)
	con.RunFrame()

	select {
	case p := <-g.SetPalette:
		test.ExpectEquality(t, len(p), 256)
	default:
		t.Fatalf("palette was not sent")
	}

	select {
	case f := <-g.SetFrame:
		test.ExpectEquality(t, len(f), spec.ScreenWidth*spec.ScreenHeight)
	default:
		t.Fatalf("frame was not sent")
	}

	test.ExpectEquality(t, len(rec.samples), 735)

	// the palette is only sent once
	con.RunFrame()
	select {
	case <-g.SetPalette:
		t.Errorf("palette was sent more than once")
	default:
	}
	test.ExpectEquality(t, len(rec.samples), 735*2)
}

func TestPause(t *testing.T) {
	g := gui.NewGUI(spec.ScreenHeight, spec.ScreenWidth)
	con := newConsole(t, g, nil)

	var slices int
	g.UserInput <- gui.Input{Action: gui.Pause, Data: true}
	err := con.Run(func() error {
		slices++
		return nil
	})
	test.ExpectSuccess(t, errors.Is(err, Paused))
	test.ExpectEquality(t, slices, 0)

	stop := errors.New("stop")
	err = con.Run(func() error {
		slices++
		if slices == 10 {
			return stop
		}
		return nil
	})
	test.ExpectSuccess(t, errors.Is(err, stop))
	test.ExpectEquality(t, con.Coords.Slice, 10)
}
