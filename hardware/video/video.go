// Package video implements the graphics circuitry of the board. The frame is
// composed of three layers, drawn in order: the scrolling background, the
// sprites and the foreground characters.
//
// The framebuffer contains palette indices, never raw pixel values. Every
// pixel goes through the remap table for its layer, which is created from
// the colour PROM by DecodePROM().
//
// The monitor on the board is mounted vertically. The framebuffer is stored
// as the video circuitry generates it and is rotated for display by the GUI.
package video

import (
	"fmt"
	"image"

	"github.com/jetsetilly/test1942/hardware/memory/region"
	"github.com/jetsetilly/test1942/hardware/memory/registers"
	"github.com/jetsetilly/test1942/hardware/spec"
)

const (
	ScreenWidth  = spec.ScreenWidth
	ScreenHeight = spec.ScreenHeight
)

// VRAM is the memory read by the video circuitry
type VRAM struct {
	Foreground []uint8
	Background []uint8
	Sprites    []uint8
}

// Video draws the frame from the contents of VRAM and the graphics regions
type Video struct {
	lookup *Lookup
	regs   *registers.Registers
	vram   VRAM

	chars   []uint8
	tiles   []uint8
	sprites []uint8

	// the background is drawn to the surface before being copied to the frame
	surface [surfaceWidth * surfaceHeight]uint8

	// the most recently rendered frame
	Frame [ScreenWidth * ScreenHeight]uint8

	// number of frames rendered since creation
	Count int
}

// Create the video circuitry. the graphics regions are resolved once on
// creation
func Create(tbl *region.Table, lookup *Lookup, regs *registers.Registers, vram VRAM) (*Video, error) {
	vid := &Video{
		lookup: lookup,
		regs:   regs,
		vram:   vram,
	}

	var err error

	vid.chars, err = tbl.Resolve(region.CharGfx)
	if err != nil {
		return nil, fmt.Errorf("video: %w", err)
	}
	vid.tiles, err = tbl.Resolve(region.TileGfx)
	if err != nil {
		return nil, fmt.Errorf("video: %w", err)
	}
	vid.sprites, err = tbl.Resolve(region.SpriteGfx)
	if err != nil {
		return nil, fmt.Errorf("video: %w", err)
	}

	if len(vram.Foreground) < fgTilesAcross*fgTilesDown*2 {
		return nil, fmt.Errorf("video: foreground ram is too small")
	}
	if len(vram.Background) < bgTilesAcross*bgTilesDown*2 {
		return nil, fmt.Errorf("video: background ram is too small")
	}
	if len(vram.Sprites) < numSprites*4 {
		return nil, fmt.Errorf("video: sprite ram is too small")
	}

	return vid, nil
}

// Render draws all three layers to the frame
func (vid *Video) Render() {
	vid.renderBackground()
	vid.renderSprites()
	vid.renderForeground()
	vid.Count++
}

// Lookup returns the lookup tables used by the video circuitry
func (vid *Video) Lookup() *Lookup {
	return vid.lookup
}

// Image returns a copy of the current frame as an image. the image is rotated
// so that it appears as it would on the vertically mounted monitor
func (vid *Video) Image() *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, ScreenHeight, ScreenWidth), vid.lookup.ColorPalette())
	Rotate(img.Pix, vid.Frame[:])
	return img
}

// Rotate copies the framebuffer to dest, rotating it ninety degrees anti
// clockwise. both slices must be ScreenWidth * ScreenHeight in length
func Rotate(dest []uint8, frame []uint8) {
	for y := range ScreenHeight {
		for x := range ScreenWidth {
			dest[(ScreenWidth-1-x)*ScreenHeight+y] = frame[y*ScreenWidth+x]
		}
	}
}

func (vid *Video) Label() string {
	return "video"
}

func (vid *Video) Status() string {
	return fmt.Sprintf("frame: %d  scroll: %03x  palette bank: %d", vid.Count, vid.regs.Scroll&0x1ff, vid.regs.PaletteBank&0x03)
}
