package memory

import (
	"fmt"

	"github.com/jetsetilly/test1942/hardware/memory/ram"
	"github.com/jetsetilly/test1942/hardware/memory/region"
	"github.com/jetsetilly/test1942/hardware/memory/registers"
	"github.com/jetsetilly/test1942/hardware/memory/rom"
)

// origin of the banked area of the main program region
const (
	bankOrigin = 0x10000
	bankSize   = 0x4000
	numBanks   = 4
)

// Main is the address decoder for the main processor
type Main struct {
	decoder

	ROM        *rom.Window
	Bank       *rom.Window
	Work       *ram.RAM
	Foreground *ram.RAM
	Background *ram.RAM
	Sprites    *ram.RAM

	regs       *registers.Registers
	resetSound func()
}

// AddSoundReset is returned by the CreateMain() function and should be called
// to finalise the memory creation process. the function will be called when
// the main processor resets the sound processor
type AddSoundReset func(resetSound func())

// CreateMain creates the main processor address decoder
func CreateMain(ctx Context, tbl *region.Table, regs *registers.Registers) (*Main, AddSoundReset, error) {
	mem := &Main{
		decoder: decoder{
			label: "main",
		},
		Work:       ram.Create(ctx, "work ram", 0x1000),
		Foreground: ram.Create(ctx, "fg ram", 0x800),
		Background: ram.Create(ctx, "bg ram", 0x400),
		Sprites:    ram.Create(ctx, "sprite ram", 0x80),
		regs:       regs,
	}

	var err error

	mem.ROM, err = rom.NewWindow(tbl, "main rom", region.MainProgram, 0x0000, 0x8000)
	if err != nil {
		return nil, nil, fmt.Errorf("memory: %w", err)
	}

	mem.Bank, err = rom.NewWindow(tbl, "bank", region.MainProgram, bankOrigin, bankSize)
	if err != nil {
		return nil, nil, fmt.Errorf("memory: %w", err)
	}

	// map taken from the board schematics:
	//
	// 0000 to 7FFF    ROM
	// 8000 to BFFF    banked ROM
	// C000 to C004    inputs and DIP switches
	// C800            sound latch
	// C802 to C803    scroll
	// C804            sound processor reset and flip screen
	// C805            palette bank
	// C806            bank select
	// CC00 to CC7F    sprite RAM
	// D000 to D7FF    foreground RAM
	// D800 to DBFF    background RAM
	// E000 to EFFF    work RAM
	mem.table = []mapping{
		{origin: 0x0000, memtop: 0x7fff, read: mem.ROM},
		{origin: 0x8000, memtop: 0xbfff, read: mem.Bank},
		{origin: 0xc000, memtop: 0xc004, read: inputArea{label: "inputs", regs: regs}},
		{origin: 0xc800, memtop: 0xc800, write: port{
			label: "sound latch",
			write: func(data uint8) {
				regs.SoundLatch = data
			},
		}},
		{origin: 0xc802, memtop: 0xc802, write: port{
			label: "scroll low",
			write: regs.SetScrollLow,
		}},
		{origin: 0xc803, memtop: 0xc803, write: port{
			label: "scroll high",
			write: regs.SetScrollHigh,
		}},
		{origin: 0xc804, memtop: 0xc804, write: port{
			label: "control",
			write: mem.control,
		}},
		{origin: 0xc805, memtop: 0xc805, write: port{
			label: "palette bank",
			write: func(data uint8) {
				regs.PaletteBank = data & 0x03
			},
		}},
		{origin: 0xc806, memtop: 0xc806, write: port{
			label: "bank select",
			write: mem.selectBank,
		}},
		{origin: 0xcc00, memtop: 0xcc7f, read: mem.Sprites, write: mem.Sprites},
		{origin: 0xd000, memtop: 0xd7ff, read: mem.Foreground, write: mem.Foreground},
		{origin: 0xd800, memtop: 0xdbff, read: mem.Background, write: mem.Background},
		{origin: 0xe000, memtop: 0xefff, read: mem.Work, write: mem.Work},
	}

	return mem, func(resetSound func()) {
		mem.resetSound = resetSound
	}, nil
}

// Reset RAM and synchronise the bank window with the bank select register
func (mem *Main) Reset(random bool) {
	mem.Work.Reset(random)
	mem.Foreground.Reset(random)
	mem.Background.Reset(random)
	mem.Sprites.Reset(random)
	mem.selectBank(mem.regs.BankSelect)
}

func (mem *Main) control(data uint8) {
	mem.regs.Flip = data&0x80 == 0x80
	if data&0x10 == 0x10 {
		if mem.resetSound != nil {
			mem.resetSound()
		}
	}
}

func (mem *Main) selectBank(data uint8) {
	// the main program region has room for four banks. values outside of
	// that range are masked
	mem.regs.BankSelect = data & (numBanks - 1)
	err := mem.Bank.Set(region.MainProgram, bankOrigin+int(mem.regs.BankSelect)*bankSize, bankSize)
	if err != nil {
		panic(err)
	}
}

// inputArea returns bytes from the input snapshot
type inputArea struct {
	label string
	regs  *registers.Registers
}

func (a inputArea) Label() string {
	return a.label
}

func (a inputArea) Read(idx uint16) (uint8, error) {
	return a.regs.Inputs[idx&(registers.NumInputs-1)], nil
}

func (a inputArea) Write(idx uint16, _ uint8) error {
	return fmt.Errorf("%s: %w", a.label, UnmappedAccess)
}
