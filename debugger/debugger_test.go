package debugger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/test1942/gui"
	"github.com/jetsetilly/test1942/hardware"
	"github.com/jetsetilly/test1942/hardware/memory/region"
	"github.com/jetsetilly/test1942/hardware/spec"
	"github.com/jetsetilly/test1942/test"
)

func newDebugger(t *testing.T) *debugger {
	t.Helper()

	m := &debugger{
		ctx: context{
			requestedSpec: "60HZ",
		},
		g:       gui.NewGUI(spec.ScreenHeight, spec.ScreenWidth),
		guiQuit: make(chan bool, 1),
		sig:     make(chan os.Signal, 1),
		input:   make(chan input, 1),
		styles:  newStyles(),
		watches: make(map[uint16]watch),
	}
	m.ctx.Reset()

	tbl := region.NewTable()
	tbl.MarkLoaded(region.ColorPROM)

	var err error
	m.console, err = hardware.Create(&m.ctx, m.g, tbl, nil)
	test.DemandSuccess(t, err)
	m.console.Reset(false)

	return m
}

func TestContext(t *testing.T) {
	ctx := context{requestedSpec: "57HZ"}
	ctx.Reset()
	test.ExpectEquality(t, ctx.Spec().FrameRate, 57)
	ctx.requestedSpec = "60HZ"
	test.ExpectEquality(t, ctx.Spec().FrameRate, 60)
	test.ExpectFailure(t, ctx.UseAudio())
}

func TestParseValue(t *testing.T) {
	v, err := parseValue("$c000", 16)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint64(0xc000))

	v, err = parseValue("0x10", 8)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint64(0x10))

	v, err = parseValue("255", 8)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint64(255))

	_, err = parseValue("256", 8)
	test.ExpectFailure(t, err)
	_, err = parseValue("foo", 16)
	test.ExpectFailure(t, err)
}

func TestAddressing(t *testing.T) {
	m := newDebugger(t)

	ma, err := m.parseAddress(m.selectBus(nil), "$e010", true)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ma.idx, uint16(0x0010))
	test.ExpectEquality(t, ma.area.Label(), "work ram")

	ma, err = m.parseAddress(m.selectBus([]string{"PEEK", "$4010", "sound"}), "$4010", true)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ma.area.Label(), "sound ram")

	// the sound latch is write-only for the main processor
	_, err = m.parseAddress(m.selectBus(nil), "$c800", true)
	test.ExpectFailure(t, err)
	_, err = m.parseAddress(m.selectBus(nil), "$c800", false)
	test.ExpectSuccess(t, err)
}

func TestPokeAndWatch(t *testing.T) {
	m := newDebugger(t)

	test.ExpectFailure(t, m.commands([]string{"POKE", "$e000", "$42"}))
	d, err := m.console.Main.Peek(0xe000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, 0x42)

	test.ExpectFailure(t, m.commands([]string{"WATCH", "$e000"}))
	test.ExpectEquality(t, len(m.watches), 1)

	w, err := m.checkWatches()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w == nil)

	m.console.Main.Write(0xe000, 0x43)
	w, err = m.checkWatches()
	test.ExpectSuccess(t, err)
	test.DemandSuccess(t, w != nil)
	test.ExpectEquality(t, w.prev, 0x42)
	test.ExpectEquality(t, w.data, 0x43)

	test.ExpectFailure(t, m.commands([]string{"WATCH", "DROP", "ALL"}))
	test.ExpectEquality(t, len(m.watches), 0)
}

func TestStepRules(t *testing.T) {
	m := newDebugger(t)

	// a single slice by default
	test.ExpectFailure(t, m.step())
	test.ExpectEquality(t, m.console.Coords.Slice, 1)

	test.ExpectSuccess(t, m.parseStepRule([]string{"SLICE", "100"}))
	test.ExpectFailure(t, m.step())
	test.ExpectEquality(t, m.console.Coords.Slice, 100)

	test.ExpectSuccess(t, m.parseStepRule([]string{"INTERRUPT"}))
	test.ExpectFailure(t, m.step())
	test.ExpectEquality(t, m.lastSlice(), 170)

	test.ExpectSuccess(t, m.parseStepRule([]string{"FRAME"}))
	test.ExpectFailure(t, m.step())
	test.ExpectEquality(t, m.console.Coords.Frame, 1)
	test.ExpectEquality(t, m.console.Coords.Slice, 0)

	test.ExpectFailure(t, m.parseStepRule([]string{"FRAME", "0"}))
	test.ExpectFailure(t, m.parseStepRule([]string{"SLICE", "1000"}))
	test.ExpectFailure(t, m.parseStepRule([]string{"FOO"}))

	test.ExpectFailure(t, m.commands([]string{"FRAME", "2"}))
	test.ExpectEquality(t, m.console.Coords.Frame, 3)
}

func TestScreenshot(t *testing.T) {
	m := newDebugger(t)
	m.console.RunFrame()

	pth := filepath.Join(t.TempDir(), "shot.png")
	test.ExpectSuccess(t, m.screenshot(pth, 2))
	_, err := os.Stat(pth)
	test.ExpectSuccess(t, err)

	test.ExpectFailure(t, m.screenshot(pth, 0))
}

func TestRecording(t *testing.T) {
	m := newDebugger(t)

	pth := filepath.Join(t.TempDir(), "audio.wav")
	test.DemandSuccess(t, m.startRecording(pth))
	m.console.RunFrame()
	test.ExpectEquality(t, m.recording.Samples(), 735)

	test.ExpectSuccess(t, m.endRecording())
	test.ExpectSuccess(t, m.recording == nil)
	_, err := os.Stat(pth)
	test.ExpectSuccess(t, err)
}
