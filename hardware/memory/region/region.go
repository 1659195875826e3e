// Package region holds the fixed-size byte buffers that are filled from ROM
// images at startup. Each buffer is identified by an ID.
//
// The address decoders and the graphics pipeline access region data by ID
// through Resolve(). The buffers are never resized after creation.
package region

import (
	"errors"
	"fmt"
	"strings"
)

// ID identifies a region
type ID int

// List of valid region IDs
const (
	MainProgram ID = iota
	SoundProgram
	CharGfx
	TileGfx
	SpriteGfx
	ColorPROM
	numRegions
)

func (id ID) String() string {
	switch id {
	case MainProgram:
		return "main program"
	case SoundProgram:
		return "sound program"
	case CharGfx:
		return "char gfx"
	case TileGfx:
		return "tile gfx"
	case SpriteGfx:
		return "sprite gfx"
	case ColorPROM:
		return "colour prom"
	}
	return fmt.Sprintf("region %d", int(id))
}

// sizes of each region
var sizes = [numRegions]int{
	MainProgram:  0x20000,
	SoundProgram: 0x4000,
	CharGfx:      0x2000,
	TileGfx:      0xc000,
	SpriteGfx:    0x10000,
	ColorPROM:    0x1000,
}

// UnknownRegion is returned by Resolve() when the ID is not a registered
// region. it indicates a programming error
var UnknownRegion = errors.New("unknown region")

// Table is the collection of all regions
type Table struct {
	data   [numRegions][]uint8
	loaded [numRegions]bool
}

// NewTable creates a table with every region allocated and zeroed
func NewTable() *Table {
	tbl := &Table{}
	for id := range numRegions {
		tbl.data[id] = make([]uint8, sizes[id])
	}
	return tbl
}

// IDs returns every region ID in the order they are declared
func IDs() []ID {
	ids := make([]ID, 0, numRegions)
	for id := range numRegions {
		ids = append(ids, id)
	}
	return ids
}

// Size returns the size of the region. Zero is returned for an unknown ID
func Size(id ID) int {
	if id < 0 || id >= numRegions {
		return 0
	}
	return sizes[id]
}

// Resolve returns the buffer for the region. The returned slice is the
// region's storage and not a copy
func (tbl *Table) Resolve(id ID) ([]uint8, error) {
	if id < 0 || id >= numRegions {
		return nil, fmt.Errorf("%w: %d", UnknownRegion, int(id))
	}
	return tbl.data[id], nil
}

// MustResolve is the same as Resolve() but panics if the ID is unknown. it
// should only be used with the ID constants declared in this package
func (tbl *Table) MustResolve(id ID) []uint8 {
	d, err := tbl.Resolve(id)
	if err != nil {
		panic(err)
	}
	return d
}

// MarkLoaded records that the region has been filled with data
func (tbl *Table) MarkLoaded(id ID) {
	if id < 0 || id >= numRegions {
		return
	}
	tbl.loaded[id] = true
}

// Loaded returns true if the region has been filled with data
func (tbl *Table) Loaded(id ID) bool {
	if id < 0 || id >= numRegions {
		return false
	}
	return tbl.loaded[id]
}

func (tbl *Table) String() string {
	var s strings.Builder
	for id := range numRegions {
		var l string
		if !tbl.loaded[id] {
			l = " (not loaded)"
		}
		s.WriteString(fmt.Sprintf("%-13s %6d bytes%s\n", id.String(), len(tbl.data[id]), l))
	}
	return strings.TrimSuffix(s.String(), "\n")
}
