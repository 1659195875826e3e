package memory

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/test1942/hardware/memory/ram"
	"github.com/jetsetilly/test1942/logger"
)

// Context is the interface required by the memory package
type Context interface {
	ram.Context
}

type Area interface {
	// read and write both take an index value. this is an address in the area
	// but with the area origin removed. in other words, the area doesn't need
	// to know about it's location in memory, only the relative placement of
	// addresses within the area
	Read(idx uint16) (uint8, error)
	Write(idx uint16, data uint8) error
	Label() string
}

// UnmappedAccess is the error for a read or write to an address that has no
// area for that direction of access
var UnmappedAccess = errors.New("unmapped access")

// a single entry in the decode table. a nil area means that the address
// range is not mapped for that direction
type mapping struct {
	origin uint16
	memtop uint16
	read   Area
	write  Area
}

type decoder struct {
	label string
	table []mapping

	// the most recent area to be written to
	Last Area
}

// MapAddress returns the memory area and index into the area corresponding
// to the address. the table is searched in order and the first entry with a
// range containing the address is used, even if the entry is not mapped for
// the direction of access
//
// It is possible for a nil Area to be returned. In which case, the index value
// will be zero.
func (d *decoder) MapAddress(address uint16, read bool) (uint16, Area) {
	for _, m := range d.table {
		if address >= m.origin && address <= m.memtop {
			var a Area
			if read {
				a = m.read
			} else {
				a = m.write
			}
			if a == nil {
				return 0, nil
			}
			return address - m.origin, a
		}
	}
	return 0, nil
}

// Peek reads the address and returns an error if the address is not mapped
// for reading
func (d *decoder) Peek(address uint16) (uint8, error) {
	idx, area := d.MapAddress(address, true)
	if area == nil {
		return 0, fmt.Errorf("%s: read %04x: %w", d.label, address, UnmappedAccess)
	}
	v, err := area.Read(idx)
	if err != nil {
		return 0, fmt.Errorf("%s: read %04x: %w", d.label, address, err)
	}
	return v, nil
}

// Poke writes to the address and returns an error if the address is not
// mapped for writing
func (d *decoder) Poke(address uint16, data uint8) error {
	idx, area := d.MapAddress(address, false)
	if area == nil {
		return fmt.Errorf("%s: write %04x: %w", d.label, address, UnmappedAccess)
	}
	d.Last = area
	err := area.Write(idx, data)
	if err != nil {
		return fmt.Errorf("%s: write %04x: %w", d.label, address, err)
	}
	return nil
}

// Read implements the processor bus. unmapped reads are logged and return zero
func (d *decoder) Read(address uint16) uint8 {
	v, err := d.Peek(address)
	if err != nil {
		logger.Log(logger.Allow, "memory", err.Error())
		return 0
	}
	return v
}

// Write implements the processor bus. unmapped writes are logged and have no
// other effect
func (d *decoder) Write(address uint16, data uint8) {
	err := d.Poke(address, data)
	if err != nil {
		logger.Log(logger.Allow, "memory", err.Error())
	}
}

func (d *decoder) Label() string {
	return d.label
}

// port is a memory area of a single address backed by functions
type port struct {
	label string
	read  func() uint8
	write func(uint8)
}

func (p port) Label() string {
	return p.label
}

func (p port) Read(_ uint16) (uint8, error) {
	if p.read == nil {
		return 0, fmt.Errorf("%s: %w", p.label, UnmappedAccess)
	}
	return p.read(), nil
}

func (p port) Write(_ uint16, data uint8) error {
	if p.write == nil {
		return fmt.Errorf("%s: %w", p.label, UnmappedAccess)
	}
	p.write(data)
	return nil
}
