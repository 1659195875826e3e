package peripherals

import (
	"fmt"

	"github.com/jetsetilly/test1942/gui"
)

// bits of the system port
const (
	panelStart1 = 0x01
	panelStart2 = 0x02
	panelCoin2  = 0x40
	panelCoin1  = 0x80
)

// Panel is the coin mechanism and the start buttons
type Panel struct {
	ports Ports
}

func NewPanel(ports Ports) *Panel {
	p := &Panel{
		ports: ports,
	}
	p.Reset()
	return p
}

func (p *Panel) Reset() {
	p.ports.PortWrite(PortSystem, 0x00, 0x00)
}

func (p *Panel) Update(inp gui.Input) error {
	var bit uint8

	switch inp.Action {
	case gui.Start1:
		bit = panelStart1
	case gui.Start2:
		bit = panelStart2
	case gui.Coin1:
		bit = panelCoin1
	case gui.Coin2:
		bit = panelCoin2
	default:
		return nil
	}

	pressed, ok := inp.Data.(bool)
	if !ok {
		return fmt.Errorf("panel: unexpected data for %v", inp.Action)
	}

	if pressed {
		p.ports.PortWrite(PortSystem, bit, ^bit)
	} else {
		p.ports.PortWrite(PortSystem, 0x00, ^bit)
	}

	return nil
}
