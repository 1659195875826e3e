package video

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/jetsetilly/test1942/hardware/memory/region"
)

// PreconditionViolation is returned when the lookup tables are decoded before
// the colour PROM has been loaded
var PreconditionViolation = errors.New("precondition violation")

// layout of the colour PROM region. the remaining PROMs (from 0x600) are the
// timing and priority PROMs and are not used
const (
	promRed        = 0x000
	promGreen      = 0x100
	promBlue       = 0x200
	promChar       = 0x300
	promBackground = 0x400
	promSprite     = 0x500
	promUsed       = 0x600
)

// the contribution of each bit of a colour PROM entry to the channel
// intensity. the values come from the resistor network on the board
var weights = [4]uint32{0x0e, 0x1f, 0x43, 0x8f}

// offsets into the 256 entry palette for each layer
const (
	spriteColours = 0x40
	charColours   = 0x80
)

// Lookup contains the palette and the colour remap tables for each layer.
// the tables are created once from the colour PROM and never change
type Lookup struct {
	// packed 24bit RGB values
	Palette [256]uint32

	// remap tables return an index into the palette
	Background [1024]uint8
	Sprite     [256]uint8
	Char       [256]uint8
}

func intensity(v uint8) uint32 {
	var c uint32
	for b := range 4 {
		if (v>>b)&0x01 == 0x01 {
			c += weights[b]
		}
	}
	return c
}

// DecodePROM creates the palette and remap tables from the colour PROM
// region. the region must have been loaded
func DecodePROM(tbl *region.Table) (*Lookup, error) {
	if !tbl.Loaded(region.ColorPROM) {
		return nil, fmt.Errorf("video: %w: colour prom has not been loaded", PreconditionViolation)
	}

	prom, err := tbl.Resolve(region.ColorPROM)
	if err != nil {
		return nil, fmt.Errorf("video: %w: %w", PreconditionViolation, err)
	}
	if len(prom) < promUsed {
		return nil, fmt.Errorf("video: %w: colour prom is too short", PreconditionViolation)
	}

	l := &Lookup{}

	for i := range 256 {
		r := intensity(prom[promRed+i])
		g := intensity(prom[promGreen+i])
		b := intensity(prom[promBlue+i])
		l.Palette[i] = (r << 16) | (g << 8) | b
	}

	for i := range 256 {
		for row := range 4 {
			l.Background[i+256*row] = uint8(row<<4) | prom[promBackground+i]
		}
		l.Sprite[i] = spriteColours | prom[promSprite+i]
		l.Char[i] = charColours | prom[promChar+i]
	}

	return l, nil
}

// RGBA returns the palette entry as a color.RGBA value
func (l *Lookup) RGBA(idx uint8) color.RGBA {
	c := l.Palette[idx]
	return color.RGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: 255,
	}
}

// ColorPalette returns the palette in a form suitable for image.Paletted
func (l *Lookup) ColorPalette() color.Palette {
	p := make(color.Palette, len(l.Palette))
	for i := range l.Palette {
		p[i] = l.RGBA(uint8(i))
	}
	return p
}
