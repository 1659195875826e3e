package memory

import (
	"fmt"

	"github.com/jetsetilly/test1942/hardware/memory/ram"
	"github.com/jetsetilly/test1942/hardware/memory/region"
	"github.com/jetsetilly/test1942/hardware/memory/registers"
	"github.com/jetsetilly/test1942/hardware/memory/rom"
)

// PSG is the interface to a sound chip connected to the sound processor. the
// port is zero for the register select and one for the register data
type PSG interface {
	WritePort(port uint8, data uint8)
	Label() string
}

// Sound is the address decoder for the sound processor
type Sound struct {
	decoder

	ROM  *rom.Window
	Work *ram.RAM

	regs *registers.Registers
}

// CreateSound creates the sound processor address decoder
func CreateSound(ctx Context, tbl *region.Table, regs *registers.Registers, psg [2]PSG) (*Sound, error) {
	mem := &Sound{
		decoder: decoder{
			label: "sound",
		},
		Work: ram.Create(ctx, "sound ram", 0x800),
		regs: regs,
	}

	var err error

	mem.ROM, err = rom.NewWindow(tbl, "sound rom", region.SoundProgram, 0x0000, 0x4000)
	if err != nil {
		return nil, fmt.Errorf("memory: %w", err)
	}

	// 0000 to 3FFF    ROM
	// 4000 to 47FF    RAM
	// 6000            sound latch
	// 8000 to 8001    PSG 0
	// C000 to C001    PSG 1
	mem.table = []mapping{
		{origin: 0x0000, memtop: 0x3fff, read: mem.ROM},
		{origin: 0x4000, memtop: 0x47ff, read: mem.Work, write: mem.Work},
		{origin: 0x6000, memtop: 0x6000, read: port{
			label: "sound latch",
			read: func() uint8 {
				return regs.SoundLatch
			},
		}},
		{origin: 0x8000, memtop: 0x8001, write: psgArea{psg: psg[0]}},
		{origin: 0xc000, memtop: 0xc001, write: psgArea{psg: psg[1]}},
	}

	return mem, nil
}

// Reset sound RAM
func (mem *Sound) Reset(random bool) {
	mem.Work.Reset(random)
}

// psgArea forwards writes to a PSG. the index of the write selects the port
type psgArea struct {
	psg PSG
}

func (a psgArea) Label() string {
	return a.psg.Label()
}

func (a psgArea) Read(_ uint16) (uint8, error) {
	return 0, fmt.Errorf("%s: %w", a.psg.Label(), UnmappedAccess)
}

func (a psgArea) Write(idx uint16, data uint8) error {
	a.psg.WritePort(uint8(idx&0x01), data)
	return nil
}
