package ebiten

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	input "github.com/quasilyte/ebitengine-input"

	"github.com/jetsetilly/test1942/gui"
	"github.com/jetsetilly/test1942/logger"
	"github.com/jetsetilly/test1942/version"
)

type windowGeometry struct {
	x, y int
	w, h int
}

func (g windowGeometry) valid() bool {
	return g.x >= 0 && g.y >= 0 && g.w > 0 && g.h > 0
}

type guiEbiten struct {
	g    *gui.GUI
	geom windowGeometry

	endGui chan bool

	state gui.State

	// the most recent palette received from the emulation. frames are
	// converted to RGBA with this palette as they arrive
	palette color.Palette

	main *ebiten.Image
	pix  []uint8

	// a simple counter used to implement a pulse effect on the screen when
	// the emulation is paused
	pauseFrame int

	// the audio player can be stopped and recreated as required
	audio audioPlayer

	// gamepad buttons are handled by the input system. the analogue stick is
	// handled separately
	inputSystem  input.System
	inputHandler *input.Handler

	// state of the left analogue stick of the first gamepad
	gamepadAnalogue [2]float64
}

func (eg *guiEbiten) Update() error {
	// deal with quit condition
	select {
	case <-eg.endGui:
		if eg.audio.p != nil {
			eg.audio.p.Close()
		}
		return ebiten.Termination
	default:
	}

	// handle user input
	eg.inputSystem.Update()
	err := eg.inputKeyboard()
	if err != nil {
		return ebiten.Termination
	}
	err = eg.inputGamepad()
	if err != nil {
		return ebiten.Termination
	}
	err = eg.inputGamepadAxis()
	if err != nil {
		return ebiten.Termination
	}

	// change state if necessary
	select {
	case eg.state = <-eg.g.State:
		eg.audio.setState(eg.state)
	default:
	}

	// create audio if necessary
	select {
	case s := <-eg.g.AudioSetup:
		quit, err := eg.audio.setup(s, eg.endGui)
		if err != nil {
			return fmt.Errorf("ebiten: %w", err)
		}
		if quit {
			return ebiten.Termination
		}
		eg.audio.setState(eg.state)
	default:
	}

	// run option update function
	if eg.g.UpdateGUI != nil {
		err := eg.g.UpdateGUI()
		if err != nil {
			return fmt.Errorf("ebiten: %w", err)
		}
	}

	// the palette always arrives before the frame that uses it
	select {
	case eg.palette = <-eg.g.SetPalette:
	default:
	}

	select {
	case frame := <-eg.g.SetFrame:
		eg.writeFrame(frame)
	default:
	}

	return nil
}

// writeFrame converts the indexed frame to RGBA and writes it to the main image
func (eg *guiEbiten) writeFrame(frame []uint8) {
	if eg.main == nil {
		eg.main = ebiten.NewImage(eg.g.Width, eg.g.Height)
		eg.pix = make([]uint8, eg.g.Width*eg.g.Height*4)
	}

	if len(frame) != eg.g.Width*eg.g.Height {
		logger.Logf(logger.Allow, "gui", "frame of %d pixels is the wrong size", len(frame))
		return
	}

	for i, c := range frame {
		if int(c) >= len(eg.palette) {
			eg.pix[i*4] = 0
			eg.pix[i*4+1] = 0
			eg.pix[i*4+2] = 0
			eg.pix[i*4+3] = 255
			continue
		}
		r, g, b, _ := eg.palette[c].RGBA()
		eg.pix[i*4] = uint8(r >> 8)
		eg.pix[i*4+1] = uint8(g >> 8)
		eg.pix[i*4+2] = uint8(b >> 8)
		eg.pix[i*4+3] = 255
	}

	eg.main.WritePixels(eg.pix)
}

func (eg *guiEbiten) Draw(screen *ebiten.Image) {
	eg.pauseFrame++

	if eg.main != nil {
		var op ebiten.DrawImageOptions

		// pulse the screen if emulation is paused
		if eg.state == gui.StatePaused {
			v := float32(math.Sin(float64(eg.pauseFrame)/20)*0.15 + 0.75)
			op.ColorScale.SetR(v)
			op.ColorScale.SetG(v)
			op.ColorScale.SetB(v)
			op.ColorScale.SetA(1.0)
		}

		screen.DrawImage(eg.main, &op)
	}

	eg.geom.x, eg.geom.y = ebiten.WindowPosition()
	eg.geom.w, eg.geom.h = ebiten.WindowSize()
}

func (eg *guiEbiten) Layout(width, height int) (int, int) {
	if eg.main != nil {
		return eg.g.Width, eg.g.Height
	}
	return width, height
}

func Launch(endGui chan bool, g *gui.GUI) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetWindowSize(g.Width*2, g.Height*2)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	eg := &guiEbiten{
		endGui: endGui,
		g:      g,
		state:  gui.StateRunning,
		audio: audioPlayer{
			state: gui.StateRunning,
		},
	}

	eg.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.GamepadDevice,
	})
	eg.inputHandler = eg.inputSystem.NewHandler(0, gamepadKeymap)

	// wait for the first state change and a possible quit request
	select {
	case eg.state = <-g.State:
		eg.audio.setState(eg.state)
	case <-endGui:
		return nil
	}

	var err error

	eg.geom, err = onWindowOpen()
	if err != nil {
		logger.Log(logger.Allow, "gui", err.Error())
	}
	if eg.geom.valid() {
		ebiten.SetWindowPosition(eg.geom.x, eg.geom.y)
		ebiten.SetWindowSize(eg.geom.w, eg.geom.h)
	}

	defer func() {
		err := onWindowClose(eg.geom)
		if err != nil {
			logger.Log(logger.Allow, "gui", err.Error())
			return
		}
	}()

	return ebiten.RunGame(eg)
}
