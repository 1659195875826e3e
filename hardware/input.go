package hardware

import (
	"github.com/jetsetilly/test1942/gui"
	"github.com/jetsetilly/test1942/logger"
)

// PortWrite implements the peripherals.Ports interface
func (con *Console) PortWrite(port int, data uint8, mask uint8) {
	if port < 0 || port >= len(con.latches) {
		return
	}
	con.latches[port] = (con.latches[port] & mask) | data
}

// snapshotInput copies the input latches into the input registers. the
// inputs on the board are active-low. the DIP switches are not changed
func (con *Console) snapshotInput() {
	for i, l := range con.latches {
		con.Regs.Inputs[i] = l ^ 0xff
	}
}

func (con *Console) handleInput() {
	if con.g == nil {
		return
	}

	var drained bool
	for !drained {
		select {
		default:
			drained = true
		case inp := <-con.g.UserInput:
			con.HandleInput(inp)
		}
	}
}

// HandleInput forwards the input to the correct peripheral
func (con *Console) HandleInput(inp gui.Input) {
	var err error

	switch inp.Action {
	case gui.Pause:
		if b, ok := inp.Data.(bool); ok && b {
			con.pauseSignal = true
		}
		return
	case gui.Reset:
		if b, ok := inp.Data.(bool); ok && b {
			con.Reset(false)
			logger.Log(logger.Allow, "hardware", "console reset by user")
		}
		return
	}

	switch inp.Port {
	case gui.Panel:
		err = con.panel.Update(inp)
	case gui.Player0:
		err = con.players[0].Update(inp)
	case gui.Player1:
		err = con.players[1].Update(inp)
	case gui.Undefined:
		err = con.panel.Update(inp)
		if err == nil {
			err = con.players[0].Update(inp)
		}
	}

	if err != nil {
		logger.Log(logger.Allow, "hardware", err.Error())
	}
}
