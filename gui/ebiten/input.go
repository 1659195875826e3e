package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	input "github.com/quasilyte/ebitengine-input"

	"github.com/jetsetilly/test1942/gui"
)

// actions for the gamepad input system. the values are the same as the
// corresponding gui.Action
const (
	actionStickLeft    = input.Action(gui.StickLeft)
	actionStickUp      = input.Action(gui.StickUp)
	actionStickRight   = input.Action(gui.StickRight)
	actionStickDown    = input.Action(gui.StickDown)
	actionStickButtonA = input.Action(gui.StickButtonA)
	actionStickButtonB = input.Action(gui.StickButtonB)
	actionCoin1        = input.Action(gui.Coin1)
	actionStart1       = input.Action(gui.Start1)
)

var gamepadKeymap = input.Keymap{
	actionStickLeft:    {input.KeyGamepadLeft},
	actionStickUp:      {input.KeyGamepadUp},
	actionStickRight:   {input.KeyGamepadRight},
	actionStickDown:    {input.KeyGamepadDown},
	actionStickButtonA: {input.KeyGamepadA, input.KeyGamepadX},
	actionStickButtonB: {input.KeyGamepadB, input.KeyGamepadY},
	actionCoin1:        {input.KeyGamepadBack},
	actionStart1:       {input.KeyGamepadStart},
}

// the order in which gamepad actions are checked
var gamepadActions = []input.Action{
	actionStickLeft, actionStickUp, actionStickRight, actionStickDown,
	actionStickButtonA, actionStickButtonB, actionCoin1, actionStart1,
}

// gamepadPort returns the port an action from the gamepad should be sent to
func gamepadPort(a gui.Action) gui.Port {
	switch a {
	case gui.Coin1, gui.Start1:
		return gui.Panel
	}
	return gui.Player0
}

// pause toggles the pause state of the emulation. when the emulation is
// running the pause request goes directly to the hardware. otherwise the
// debugger is asked to run
func (eg *guiEbiten) pause() {
	if eg.state == gui.StatePaused {
		select {
		case eg.g.Commands <- []string{"RUN"}:
		default:
		}
		return
	}
	select {
	case eg.g.UserInput <- gui.Input{Action: gui.Pause, Data: true}:
	default:
	}
}

func (eg *guiEbiten) inputGamepadAxis() error {
	const gamepad = 0
	const deadzone = 0.25

	// left and right direction of the stick
	v := ebiten.GamepadAxis(gamepad, 0)
	if eg.gamepadAnalogue[0] != 0 && v <= deadzone && v >= -deadzone {
		// stick is in the deadzone so make sure left/right input is nullified
		for _, v := range []gui.Input{
			{Port: gui.Player0, Action: gui.StickLeft, Data: false},
			{Port: gui.Player0, Action: gui.StickRight, Data: false},
		} {
			select {
			case eg.g.UserInput <- v:
			default:
				return nil
			}
		}

		// all values in the deadzone are reduced to zero
		eg.gamepadAnalogue[0] = 0

	} else if v != eg.gamepadAnalogue[0] {
		if v < -deadzone {
			select {
			case eg.g.UserInput <- gui.Input{Port: gui.Player0, Action: gui.StickLeft, Data: true}:
			default:
				return nil
			}
			eg.gamepadAnalogue[0] = v
		} else if v > deadzone {
			select {
			case eg.g.UserInput <- gui.Input{Port: gui.Player0, Action: gui.StickRight, Data: true}:
			default:
				return nil
			}
			eg.gamepadAnalogue[0] = v
		}
	}

	// up and down direction of the stick
	v = ebiten.GamepadAxis(gamepad, 1)
	if eg.gamepadAnalogue[1] != 0 && v <= deadzone && v >= -deadzone {
		for _, v := range []gui.Input{
			{Port: gui.Player0, Action: gui.StickUp, Data: false},
			{Port: gui.Player0, Action: gui.StickDown, Data: false},
		} {
			select {
			case eg.g.UserInput <- v:
			default:
				return nil
			}
		}
		eg.gamepadAnalogue[1] = 0

	} else if v != eg.gamepadAnalogue[1] {
		if v < -deadzone {
			select {
			case eg.g.UserInput <- gui.Input{Port: gui.Player0, Action: gui.StickUp, Data: true}:
			default:
				return nil
			}
			eg.gamepadAnalogue[1] = v
		} else if v > deadzone {
			select {
			case eg.g.UserInput <- gui.Input{Port: gui.Player0, Action: gui.StickDown, Data: true}:
			default:
				return nil
			}
			eg.gamepadAnalogue[1] = v
		}
	}

	return nil
}

func (eg *guiEbiten) inputGamepad() error {
	if eg.inputHandler == nil {
		return nil
	}

	for _, a := range gamepadActions {
		act := gui.Action(a)

		var inp gui.Input
		if eg.inputHandler.ActionIsJustPressed(a) {
			inp = gui.Input{Port: gamepadPort(act), Action: act, Data: true}
		} else if eg.inputHandler.ActionIsJustReleased(a) {
			inp = gui.Input{Port: gamepadPort(act), Action: act, Data: false}
		} else {
			continue
		}

		select {
		case eg.g.UserInput <- inp:
		default:
			return nil
		}
	}

	return nil
}

// keyboardInput returns the input for a key. the ok value is false if the key
// has no meaning to the emulation
func keyboardInput(key ebiten.Key, pressed bool) (gui.Input, bool) {
	switch key {
	case ebiten.KeyArrowLeft, ebiten.KeyNumpad4:
		return gui.Input{Port: gui.Player0, Action: gui.StickLeft, Data: pressed}, true
	case ebiten.KeyArrowRight, ebiten.KeyNumpad6:
		return gui.Input{Port: gui.Player0, Action: gui.StickRight, Data: pressed}, true
	case ebiten.KeyArrowUp, ebiten.KeyNumpad8:
		return gui.Input{Port: gui.Player0, Action: gui.StickUp, Data: pressed}, true
	case ebiten.KeyArrowDown, ebiten.KeyNumpad2:
		return gui.Input{Port: gui.Player0, Action: gui.StickDown, Data: pressed}, true
	case ebiten.KeySpace, ebiten.KeyZ:
		return gui.Input{Port: gui.Player0, Action: gui.StickButtonA, Data: pressed}, true
	case ebiten.KeyB, ebiten.KeyX:
		return gui.Input{Port: gui.Player0, Action: gui.StickButtonB, Data: pressed}, true

	// second player
	case ebiten.KeyJ:
		return gui.Input{Port: gui.Player1, Action: gui.StickLeft, Data: pressed}, true
	case ebiten.KeyL:
		return gui.Input{Port: gui.Player1, Action: gui.StickRight, Data: pressed}, true
	case ebiten.KeyI:
		return gui.Input{Port: gui.Player1, Action: gui.StickUp, Data: pressed}, true
	case ebiten.KeyK:
		return gui.Input{Port: gui.Player1, Action: gui.StickDown, Data: pressed}, true
	case ebiten.KeyA:
		return gui.Input{Port: gui.Player1, Action: gui.StickButtonA, Data: pressed}, true
	case ebiten.KeyS:
		return gui.Input{Port: gui.Player1, Action: gui.StickButtonB, Data: pressed}, true

	// panel
	case ebiten.Key5:
		return gui.Input{Port: gui.Panel, Action: gui.Coin1, Data: pressed}, true
	case ebiten.Key6:
		return gui.Input{Port: gui.Panel, Action: gui.Coin2, Data: pressed}, true
	case ebiten.Key1:
		return gui.Input{Port: gui.Panel, Action: gui.Start1, Data: pressed}, true
	case ebiten.Key2:
		return gui.Input{Port: gui.Panel, Action: gui.Start2, Data: pressed}, true
	}

	return gui.Input{}, false
}

func (eg *guiEbiten) inputKeyboard() error {
	var pressed []ebiten.Key
	var released []ebiten.Key
	pressed = inpututil.AppendJustPressedKeys(pressed)
	released = inpututil.AppendJustReleasedKeys(released)

	for _, r := range released {
		if r == ebiten.KeyEscape {
			return ebiten.Termination
		}

		inp, ok := keyboardInput(r, false)
		if !ok {
			continue
		}

		select {
		case eg.g.UserInput <- inp:
		default:
			return nil
		}
	}

	for _, p := range pressed {
		switch p {
		case ebiten.KeyF3:
			eg.pause()
			continue
		case ebiten.KeyF5:
			select {
			case eg.g.UserInput <- gui.Input{Action: gui.Reset, Data: true}:
			default:
			}
			continue
		case ebiten.KeyF12:
			select {
			case eg.g.Commands <- []string{"SCREENSHOT"}:
			default:
			}
			continue
		}

		inp, ok := keyboardInput(p, true)
		if !ok {
			continue
		}

		select {
		case eg.g.UserInput <- inp:
		default:
			return nil
		}
	}

	return nil
}
