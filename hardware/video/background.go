package video

// the background is drawn to a surface larger than the screen. the visible
// part of the surface is selected by the scroll register
const (
	surfaceWidth  = 256
	surfaceHeight = 512
)

const (
	bgTilesAcross = 16
	bgTilesDown   = 32
	bgTileSize    = 16
	bgPlaneSize   = 0x2000
	bgUpperTiles  = 0x6000
)

// background tile attribute bits
const (
	bgAttrBank   = 0x80
	bgAttrFlipY  = 0x40
	bgAttrFlipX  = 0x20
	bgAttrColour = 0x1f
)

func (vid *Video) drawBackgroundTile(dest []uint8, idx int) {
	// each row of the background RAM holds the codes for sixteen tiles
	// followed by the attributes for the same sixteen tiles
	index := (idx & 0x0f) | ((idx & 0x1f0) << 1)
	tile := int(vid.vram.Background[index])
	attr := vid.vram.Background[index+16]

	plane0 := tile * 32
	if attr&bgAttrBank == bgAttrBank {
		plane0 += bgUpperTiles
	}
	plane1 := plane0 + bgPlaneSize
	plane2 := plane0 + bgPlaneSize*2

	flipY := attr&bgAttrFlipY == bgAttrFlipY
	flipX := attr&bgAttrFlipX == bgAttrFlipX

	colour := (int(attr&bgAttrColour) | int(vid.regs.PaletteBank&0x03)<<5) << 3

	dy := 0
	inc := 1
	if flipY {
		dy = bgTileSize - 1
		inc = -1
	}

	var tilebuf [bgTileSize][bgTileSize]uint8

	for y := range bgTileSize {
		for x := 7; x >= 0; x-- {
			for half, o := range [2]int{0, 16} {
				pixel := ((vid.tiles[plane0+y+o] >> x) & 0x01) << 2
				pixel |= ((vid.tiles[plane1+y+o] >> x) & 0x01) << 1
				pixel |= (vid.tiles[plane2+y+o] >> x) & 0x01
				tilebuf[dy][(7-x)+half*8] = vid.lookup.Background[int(pixel)|colour]
			}
		}
		dy += inc
	}

	// the tile is transposed as it is copied to the surface
	for y := range bgTileSize {
		for x := range bgTileSize {
			sx := x
			if flipX {
				sx = bgTileSize - 1 - x
			}
			dest[y+x*surfaceWidth] = tilebuf[y][sx]
		}
	}
}

func (vid *Video) renderBackground() {
	var idx int
	for ty := range bgTilesDown {
		for tx := range bgTilesAcross {
			o := tx*bgTileSize + ty*bgTileSize*surfaceWidth
			vid.drawBackgroundTile(vid.surface[o:], idx)
			idx++
		}
	}

	// copy the visible part of the surface to the screen. there is no
	// horizontal scrolling
	scroll := int(vid.regs.Scroll)
	for y := range ScreenHeight {
		sy := (y + scroll) & (surfaceHeight - 1)
		for x := range ScreenWidth {
			vid.Frame[y+x*ScreenWidth] = vid.surface[x+sy*surfaceWidth]
		}
	}
}
